// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package iscp

import (
	"fmt"
	"io"
)

const (
	stateStart = 1 << iota
	stateUnitType
	statePayload
)

// Frame is one command as it travels over the serial line:
//
//	Start      : '!'
//	Unit type  : '1'
//	Command    : 3 letter code + parameter
//	End        : CR (0x0D)
type Frame struct {
	UnitType byte
	Command  Command
}

// NewFrame addresses cmd to the receiver unit.
func NewFrame(cmd Command) Frame {
	return Frame{UnitType: UnitReceiver, Command: cmd}
}

// Encode renders the frame as ASCII bytes.
func (f Frame) Encode() (raw []byte, err error) {
	if len(f.Command.Code) != 3 {
		err = fmt.Errorf("%w: command code %q must be 3 characters", ErrInvalidCommand, f.Command.Code)
		return
	}
	payload := f.Command.String()
	if err = checkPayload(payload); err != nil {
		return
	}
	length := len(payload) + 3
	if length > MaxSize {
		err = fmt.Errorf("%w: length of frame '%v' must not be bigger than '%v'", ErrInvalidCommand, length, MaxSize)
		return
	}

	raw = make([]byte, 0, length)
	raw = append(raw, StartChar, f.UnitType)
	raw = append(raw, payload...)
	raw = append(raw, EndChar)
	return
}

// Decode parses one complete frame, terminator included.
func Decode(raw []byte) (f Frame, err error) {
	length := len(raw)
	if length < MinSize {
		err = fmt.Errorf("%w: length '%v' does not meet minimum '%v'", ErrInvalidFrame, length, MinSize)
		return
	}
	if raw[0] != StartChar {
		err = fmt.Errorf("%w: start byte 0x%02X", ErrInvalidFrame, raw[0])
		return
	}
	if raw[length-1] != EndChar {
		err = fmt.Errorf("%w: missing terminator", ErrInvalidFrame)
		return
	}
	payload := string(raw[2 : length-1])
	if err = checkPayload(payload); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidFrame, err)
		return
	}
	f.UnitType = raw[1]
	f.Command = Command{Code: payload[:3], Param: payload[3:]}
	return
}

// ReadFrame reads the next frame from r, skipping any noise before the
// start character.
func ReadFrame(r io.ByteReader) (Frame, error) {
	data := make([]byte, 0, MaxSize)
	state := stateStart

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && state != stateStart {
				err = io.ErrUnexpectedEOF
			}
			return Frame{}, err
		}

		switch state {
		case stateStart:
			if b == StartChar {
				data = append(data, b)
				state = stateUnitType
			}
		case stateUnitType:
			data = append(data, b)
			state = statePayload
		case statePayload:
			data = append(data, b)
			if b == EndChar {
				return Decode(data)
			}
			if len(data) >= MaxSize {
				return Frame{}, fmt.Errorf("%w: no terminator within %d bytes", ErrInvalidFrame, MaxSize)
			}
		}
	}
}

func (f Frame) String() string {
	return fmt.Sprintf("!%c%s", f.UnitType, f.Command)
}

// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package iscp

import (
	"fmt"
)

// Command is a command code plus its fixed width parameter, e.g. MVL + 0A.
type Command struct {
	Code  string
	Param string
}

func (c Command) String() string {
	return c.Code + c.Param
}

// Power switches the unit on or into standby.
func Power(on bool) Command {
	return Command{Code: CodePower, Param: onOff(on)}
}

// Volume sets the master volume. The level is sent as two hex digits.
func Volume(level int) (Command, error) {
	if level < MinVolume || level > MaxVolume {
		return Command{}, fmt.Errorf("%w: volume %d not in [%d, %d]", ErrInvalidRange, level, MinVolume, MaxVolume)
	}
	return Command{Code: CodeMasterVolume, Param: fmt.Sprintf("%02X", level)}, nil
}

func VolumeUp() Command {
	return Command{Code: CodeMasterVolume, Param: "UP"}
}

func VolumeDown() Command {
	return Command{Code: CodeMasterVolume, Param: "DOWN"}
}

// SelectInput switches the input selector. The selector number is sent as two decimal digits.
func SelectInput(in Input) (Command, error) {
	if !in.valid() {
		return Command{}, fmt.Errorf("%w: %v", ErrInvalidInput, in)
	}
	return Command{Code: CodeInputSelector, Param: fmt.Sprintf("%02d", in.Code())}, nil
}

func Tune(f Frequency) (Command, error) {
	if len(f.digits) != frequencyWidth {
		return Command{}, fmt.Errorf("%w: frequency not built by AM, FM or ParseFrequency", ErrInvalidFrequency)
	}
	return Command{Code: CodeTuning, Param: f.digits}, nil
}

// Preset recalls a tuner preset. The preset number is sent as two hex digits.
func Preset(n int) (Command, error) {
	if n < MinPreset || n > MaxPreset {
		return Command{}, fmt.Errorf("%w: preset %d not in [%d, %d]", ErrInvalidRange, n, MinPreset, MaxPreset)
	}
	return Command{Code: CodePreset, Param: fmt.Sprintf("%02X", n)}, nil
}

// SetTrigger switches a 12V trigger output.
func SetTrigger(t Trigger, on bool) (Command, error) {
	code := t.code()
	if code == "" {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidTrigger, t.String())
	}
	return Command{Code: code, Param: onOff(on)}, nil
}

func SetDimmer(d Dimmer) (Command, error) {
	if d < 0 || d >= dimmerCount {
		return Command{}, fmt.Errorf("%w: %v", ErrInvalidLevel, d)
	}
	return Command{Code: CodeDimmer, Param: fmt.Sprintf("%02d", int(d))}, nil
}

// Raw wraps an arbitrary command string such as "PWRQSTN". The first three
// characters become the code, the rest the parameter.
func Raw(s string) (Command, error) {
	if len(s) < 3 {
		return Command{}, fmt.Errorf("%w: %q is shorter than a command code", ErrInvalidCommand, s)
	}
	if err := checkPayload(s); err != nil {
		return Command{}, err
	}
	return Command{Code: s[:3], Param: s[3:]}, nil
}

// checkPayload rejects anything that would break framing on the wire.
func checkPayload(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c > 0x7E || c == StartChar {
			return fmt.Errorf("%w: byte 0x%02X at offset %d", ErrInvalidCommand, c, i)
		}
	}
	return nil
}

func onOff(on bool) string {
	if on {
		return "01"
	}
	return "00"
}

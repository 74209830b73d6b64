// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package receiver

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/ffutop/onkyo-rs232/iscp"
	"github.com/ffutop/onkyo-rs232/transport"
)

// DefaultCommandDelay is the minimum pause after every frame. The receiver
// handles commands one at a time and may drop input that arrives sooner.
const DefaultCommandDelay = 50 * time.Millisecond

// Receiver drives one Onkyo/Integra unit over a Link it owns.
//
// Every operation validates its arguments, writes exactly one frame and then
// waits out the command delay before returning. Nothing is written when
// validation fails. Receiver does no locking: concurrent callers must
// serialize access themselves, interleaved frames corrupt the line.
type Receiver struct {
	link  transport.Link
	delay time.Duration
}

// New wraps link. Delays below DefaultCommandDelay are raised to it.
func New(link transport.Link, delay time.Duration) *Receiver {
	if delay < DefaultCommandDelay {
		delay = DefaultCommandDelay
	}
	return &Receiver{link: link, delay: delay}
}

// Open connects link and returns a Receiver owning it. Release it with Close.
func Open(ctx context.Context, link transport.Link, delay time.Duration) (*Receiver, error) {
	if err := link.Connect(ctx); err != nil {
		return nil, err
	}
	return New(link, delay), nil
}

// Close releases the link.
func (r *Receiver) Close() error {
	return r.link.Close()
}

// Send frames cmd, writes it and waits for the command delay. Link errors
// are returned as they are.
func (r *Receiver) Send(ctx context.Context, cmd iscp.Command) error {
	raw, err := iscp.NewFrame(cmd).Encode()
	if err != nil {
		return err
	}
	if err := r.link.Write(ctx, raw); err != nil {
		slog.Error("Command failed", "command", cmd.String(), "err", err)
		return err
	}
	slog.Debug("SEND", "frame", strconv.Quote(string(raw)))
	r.link.Wait(r.delay)
	return nil
}

func (r *Receiver) PowerOn(ctx context.Context) error {
	return r.Send(ctx, iscp.Power(true))
}

func (r *Receiver) PowerOff(ctx context.Context) error {
	return r.Send(ctx, iscp.Power(false))
}

// SetVolume sets the master volume to level, 1 through 80.
func (r *Receiver) SetVolume(ctx context.Context, level int) error {
	cmd, err := iscp.Volume(level)
	if err != nil {
		return err
	}
	return r.Send(ctx, cmd)
}

func (r *Receiver) VolumeUp(ctx context.Context) error {
	return r.Send(ctx, iscp.VolumeUp())
}

func (r *Receiver) VolumeDown(ctx context.Context) error {
	return r.Send(ctx, iscp.VolumeDown())
}

// SetInput selects the named input, e.g. "cd" or "VIDEO2".
func (r *Receiver) SetInput(ctx context.Context, name string) error {
	in, err := iscp.ParseInput(name)
	if err != nil {
		return err
	}
	return r.selectInput(ctx, in)
}

func (r *Receiver) selectInput(ctx context.Context, in iscp.Input) error {
	cmd, err := iscp.SelectInput(in)
	if err != nil {
		return err
	}
	return r.Send(ctx, cmd)
}

// TuneFreq switches to the band's input and tunes to freq: an integer in
// kHz for "am", a one decimal value in MHz for "fm".
func (r *Receiver) TuneFreq(ctx context.Context, band, freq string) error {
	b, err := iscp.ParseBand(band)
	if err != nil {
		return err
	}
	f, err := iscp.ParseFrequency(b, freq)
	if err != nil {
		return err
	}
	return r.Tune(ctx, f)
}

// Tune switches to the frequency's band input, then tunes.
func (r *Receiver) Tune(ctx context.Context, f iscp.Frequency) error {
	cmd, err := iscp.Tune(f)
	if err != nil {
		return err
	}
	if err := r.selectInput(ctx, f.Band.Input()); err != nil {
		return err
	}
	return r.Send(ctx, cmd)
}

// TunePreset recalls preset n, 1 through 40.
func (r *Receiver) TunePreset(ctx context.Context, n int) error {
	cmd, err := iscp.Preset(n)
	if err != nil {
		return err
	}
	return r.Send(ctx, cmd)
}

// SendTrigger switches 12V trigger A, B or C.
func (r *Receiver) SendTrigger(ctx context.Context, trigger string, on bool) error {
	t, err := iscp.ParseTrigger(trigger)
	if err != nil {
		return err
	}
	cmd, err := iscp.SetTrigger(t, on)
	if err != nil {
		return err
	}
	return r.Send(ctx, cmd)
}

// SetDimmer sets the display to bright, dim, dark or off.
func (r *Receiver) SetDimmer(ctx context.Context, level string) error {
	d, err := iscp.ParseDimmer(level)
	if err != nil {
		return err
	}
	cmd, err := iscp.SetDimmer(d)
	if err != nil {
		return err
	}
	return r.Send(ctx, cmd)
}

// SendRaw sends a command string such as "PWRQSTN" as is.
func (r *Receiver) SendRaw(ctx context.Context, command string) error {
	cmd, err := iscp.Raw(command)
	if err != nil {
		return err
	}
	return r.Send(ctx, cmd)
}

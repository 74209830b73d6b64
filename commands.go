// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ffutop/onkyo-rs232/internal/api"
	"github.com/ffutop/onkyo-rs232/internal/config"
	"github.com/ffutop/onkyo-rs232/internal/receiver"
)

const usage = `Commands:
  power on|off
  volume <1-80>|up|down
  input <name>            video1-7, dvd, tape1, tape2, phono, cd, fm, am, tuner, xm, sirius
  tune am <kHz>|fm <MHz>  e.g. "tune am 540", "tune fm 93.3"
  preset <1-40>
  trigger a|b|c on|off
  dimmer bright|dim|dark|off
  raw <command>           e.g. "raw PWRQSTN"
  demo                    run through most commands
  serve                   start the HTTP control API
`

const demoStep = time.Second

// dispatch runs the command named by args[0] against rcv.
func dispatch(ctx context.Context, rcv *receiver.Receiver, cfg *config.Config, args []string) error {
	cmd, params := strings.ToLower(args[0]), args[1:]

	need := func(n int) error {
		if len(params) != n {
			return fmt.Errorf("%s: expected %d argument(s), got %d", cmd, n, len(params))
		}
		return nil
	}

	switch cmd {
	case "power":
		if err := need(1); err != nil {
			return err
		}
		on, err := parseOnOff(params[0])
		if err != nil {
			return err
		}
		if on {
			return rcv.PowerOn(ctx)
		}
		return rcv.PowerOff(ctx)
	case "volume":
		if err := need(1); err != nil {
			return err
		}
		switch strings.ToLower(params[0]) {
		case "up":
			return rcv.VolumeUp(ctx)
		case "down":
			return rcv.VolumeDown(ctx)
		}
		level, err := strconv.Atoi(params[0])
		if err != nil {
			return fmt.Errorf("volume: %q is not a level", params[0])
		}
		return rcv.SetVolume(ctx, level)
	case "input":
		if err := need(1); err != nil {
			return err
		}
		return rcv.SetInput(ctx, params[0])
	case "tune":
		if err := need(2); err != nil {
			return err
		}
		return rcv.TuneFreq(ctx, params[0], params[1])
	case "preset":
		if err := need(1); err != nil {
			return err
		}
		n, err := strconv.Atoi(params[0])
		if err != nil {
			return fmt.Errorf("preset: %q is not a number", params[0])
		}
		return rcv.TunePreset(ctx, n)
	case "trigger":
		if err := need(2); err != nil {
			return err
		}
		on, err := parseOnOff(params[1])
		if err != nil {
			return err
		}
		return rcv.SendTrigger(ctx, params[0], on)
	case "dimmer":
		if err := need(1); err != nil {
			return err
		}
		return rcv.SetDimmer(ctx, params[0])
	case "raw":
		if err := need(1); err != nil {
			return err
		}
		return rcv.SendRaw(ctx, params[0])
	case "demo":
		return runDemo(ctx, rcv, demoStep)
	case "serve":
		s := api.NewServer(rcv, api.BuildInfo{Version: buildVersion, BuildDate: buildDate})
		return s.Serve(ctx, cfg.HTTP.Address)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("%q is neither on nor off", s)
}

// runDemo walks through most commands, pausing step between them and ten
// steps after power on while the unit boots.
func runDemo(ctx context.Context, rcv *receiver.Receiver, step time.Duration) error {
	steps := []struct {
		name  string
		pause time.Duration
		run   func(context.Context) error
	}{
		{"power on", 0, rcv.PowerOn},
		{"tune 540 kHz AM", 10*step + step, func(ctx context.Context) error { return rcv.TuneFreq(ctx, "am", "540") }},
		{"tune 93.3 MHz FM", step, func(ctx context.Context) error { return rcv.TuneFreq(ctx, "fm", "93.3") }},
		{"volume 10", 0, func(ctx context.Context) error { return rcv.SetVolume(ctx, 10) }},
		{"dimmer off", step, func(ctx context.Context) error { return rcv.SetDimmer(ctx, "off") }},
		{"dimmer dim", step, func(ctx context.Context) error { return rcv.SetDimmer(ctx, "dim") }},
		{"dimmer dark", step, func(ctx context.Context) error { return rcv.SetDimmer(ctx, "dark") }},
		{"dimmer bright", step, func(ctx context.Context) error { return rcv.SetDimmer(ctx, "bright") }},
		{"input CD", step, func(ctx context.Context) error { return rcv.SetInput(ctx, "CD") }},
		{"volume up", step, rcv.VolumeUp},
		{"volume down", step, rcv.VolumeDown},
	}

	for _, s := range steps {
		if s.pause > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.pause):
			}
		}
		slog.Info("Demo", "step", s.name)
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

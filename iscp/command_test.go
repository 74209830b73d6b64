// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package iscp

import (
	"errors"
	"fmt"
	"testing"
)

func TestVolume(t *testing.T) {
	for level := MinVolume; level <= MaxVolume; level++ {
		cmd, err := Volume(level)
		if err != nil {
			t.Fatalf("Volume(%d) error: %v", level, err)
		}
		if want := fmt.Sprintf("MVL%02X", level); cmd.String() != want {
			t.Errorf("Volume(%d) = %v, want %v", level, cmd, want)
		}
	}

	cmd, _ := Volume(10)
	if cmd.String() != "MVL0A" {
		t.Errorf("Volume(10) = %v, want MVL0A", cmd)
	}

	for _, level := range []int{-1, 0, 81, 255} {
		if _, err := Volume(level); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Volume(%d) error = %v, want ErrInvalidRange", level, err)
		}
	}
}

func TestPreset(t *testing.T) {
	for n := MinPreset; n <= MaxPreset; n++ {
		cmd, err := Preset(n)
		if err != nil {
			t.Fatalf("Preset(%d) error: %v", n, err)
		}
		if want := fmt.Sprintf("PRS%02X", n); cmd.String() != want {
			t.Errorf("Preset(%d) = %v, want %v", n, cmd, want)
		}
	}

	cmd, _ := Preset(1)
	if cmd.String() != "PRS01" {
		t.Errorf("Preset(1) = %v, want PRS01", cmd)
	}

	for _, n := range []int{0, 41} {
		if _, err := Preset(n); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Preset(%d) error = %v, want ErrInvalidRange", n, err)
		}
	}
}

func TestFixedCommands(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Power(true), "PWR01"},
		{Power(false), "PWR00"},
		{VolumeUp(), "MVLUP"},
		{VolumeDown(), "MVLDOWN"},
	}
	for _, tt := range tests {
		if tt.cmd.String() != tt.want {
			t.Errorf("got %v, want %v", tt.cmd, tt.want)
		}
	}
}

func TestSetTrigger(t *testing.T) {
	tests := []struct {
		name string
		on   bool
		want string
	}{
		{"a", true, "TGA01"},
		{"A", false, "TGA00"},
		{"b", true, "TGB01"},
		{"C", false, "TGC00"},
	}
	for _, tt := range tests {
		trig, err := ParseTrigger(tt.name)
		if err != nil {
			t.Fatalf("ParseTrigger(%q): %v", tt.name, err)
		}
		cmd, err := SetTrigger(trig, tt.on)
		if err != nil {
			t.Fatalf("SetTrigger(%v, %v): %v", trig, tt.on, err)
		}
		if cmd.String() != tt.want {
			t.Errorf("SetTrigger(%v, %v) = %v, want %v", trig, tt.on, cmd, tt.want)
		}
	}

	for _, name := range []string{"D", "", "AB", "1"} {
		if _, err := ParseTrigger(name); !errors.Is(err, ErrInvalidTrigger) {
			t.Errorf("ParseTrigger(%q) error = %v, want ErrInvalidTrigger", name, err)
		}
	}
	if _, err := SetTrigger(Trigger('Z'), true); !errors.Is(err, ErrInvalidTrigger) {
		t.Errorf("SetTrigger('Z') error = %v, want ErrInvalidTrigger", err)
	}
}

func TestSetDimmer(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"bright", "DIM00"},
		{"dim", "DIM01"},
		{"DARK", "DIM02"},
		{"Off", "DIM03"},
	}
	for _, tt := range tests {
		d, err := ParseDimmer(tt.level)
		if err != nil {
			t.Fatalf("ParseDimmer(%q): %v", tt.level, err)
		}
		cmd, err := SetDimmer(d)
		if err != nil {
			t.Fatalf("SetDimmer(%v): %v", d, err)
		}
		if cmd.String() != tt.want {
			t.Errorf("SetDimmer(%q) = %v, want %v", tt.level, cmd, tt.want)
		}
	}

	if _, err := ParseDimmer("loud"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("ParseDimmer(loud) error = %v, want ErrInvalidLevel", err)
	}
	if _, err := SetDimmer(Dimmer(7)); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("SetDimmer(7) error = %v, want ErrInvalidLevel", err)
	}
}

func TestRaw(t *testing.T) {
	cmd, err := Raw("PWRQSTN")
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	if cmd.Code != "PWR" || cmd.Param != "QSTN" {
		t.Errorf("Raw(PWRQSTN) = %+v", cmd)
	}

	for _, s := range []string{"", "PW", "PWR\r", "!1PWR01", "MVL\x7f"} {
		if _, err := Raw(s); !errors.Is(err, ErrInvalidCommand) {
			t.Errorf("Raw(%q) error = %v, want ErrInvalidCommand", s, err)
		}
	}
}

func TestIsValidation(t *testing.T) {
	_, err := Volume(0)
	if !IsValidation(err) {
		t.Errorf("IsValidation(%v) = false", err)
	}
	if IsValidation(errors.New("write /dev/ttyS1: input/output error")) {
		t.Error("IsValidation reported a transport error as validation")
	}
	if IsValidation(nil) {
		t.Error("IsValidation(nil) = true")
	}
}

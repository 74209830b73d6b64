// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package iscp

import (
	"errors"
	"testing"
)

func TestInputTableComplete(t *testing.T) {
	seen := make(map[int]Input)
	for _, in := range Inputs() {
		info := inputTable[in]
		if info.name == "" {
			t.Errorf("input %d has no table entry", int(in))
		}
		if prev, ok := seen[info.code]; ok {
			t.Errorf("inputs %v and %v share code %d", prev, in, info.code)
		}
		seen[info.code] = in
	}
}

func TestSelectInput(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"cd", "SLI23", false},
		{"CD", "SLI23", false},
		{"video1", "SLI00", false},
		{"Video7", "SLI06", false},
		{"DVD", "SLI10", false},
		{"tape2", "SLI21", false},
		{"phono", "SLI22", false},
		{"FM", "SLI24", false},
		{"am", "SLI25", false},
		{"tuner", "SLI26", false},
		{"XM", "SLI31", false},
		{"sirius", "SLI32", false},
		{"BLU-RAY", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseInput(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ParseInput() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			cmd, err := SelectInput(in)
			if err != nil {
				t.Fatalf("SelectInput(%v): %v", in, err)
			}
			if cmd.String() != tt.want {
				t.Errorf("SelectInput(%v) = %v, want %v", in, cmd, tt.want)
			}
		})
	}
}

func TestSelectInputOutOfTable(t *testing.T) {
	if _, err := SelectInput(inputCount); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("SelectInput(inputCount) error = %v, want ErrInvalidInput", err)
	}
}

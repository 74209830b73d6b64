// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package iscp

import (
	"fmt"
	"strings"
)

// Dimmer is a front panel display brightness level. The value is the DIM code.
type Dimmer int

const (
	DimmerBright Dimmer = iota
	DimmerDim
	DimmerDark
	DimmerOff

	dimmerCount
)

var dimmerNames = [dimmerCount]string{
	DimmerBright: "bright",
	DimmerDim:    "dim",
	DimmerDark:   "dark",
	DimmerOff:    "off",
}

// ParseDimmer looks up a dimmer level by name, ignoring case.
func ParseDimmer(level string) (Dimmer, error) {
	lower := strings.ToLower(strings.TrimSpace(level))
	for d, name := range dimmerNames {
		if name == lower {
			return Dimmer(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}

func (d Dimmer) String() string {
	if d < 0 || d >= dimmerCount {
		return fmt.Sprintf("Dimmer(%d)", int(d))
	}
	return dimmerNames[d]
}

// Trigger identifies one of the 12V trigger outputs found on Integra units.
type Trigger byte

const (
	TriggerA Trigger = 'A'
	TriggerB Trigger = 'B'
	TriggerC Trigger = 'C'
)

// ParseTrigger accepts "a", "B", ... and rejects anything else.
func ParseTrigger(s string) (Trigger, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return TriggerA, nil
	case "B":
		return TriggerB, nil
	case "C":
		return TriggerC, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTrigger, s)
}

func (t Trigger) code() string {
	switch t {
	case TriggerA:
		return CodeTriggerA
	case TriggerB:
		return CodeTriggerB
	case TriggerC:
		return CodeTriggerC
	}
	return ""
}

func (t Trigger) String() string {
	return string(rune(t))
}

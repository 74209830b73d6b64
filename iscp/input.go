// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package iscp

import (
	"fmt"
	"strings"
)

// Input is a source on the receiver's input selector.
type Input int

const (
	InputVideo1 Input = iota
	InputVideo2
	InputVideo3
	InputVideo4
	InputVideo5
	InputVideo6
	InputVideo7
	InputDVD
	InputTape1
	InputTape2
	InputPhono
	InputCD
	InputFM
	InputAM
	InputTuner // cycles through all radio inputs
	InputXM
	InputSirius

	inputCount
)

type inputInfo struct {
	name string
	code int
}

var inputTable = [inputCount]inputInfo{
	InputVideo1: {"VIDEO1", 0},
	InputVideo2: {"VIDEO2", 1},
	InputVideo3: {"VIDEO3", 2},
	InputVideo4: {"VIDEO4", 3},
	InputVideo5: {"VIDEO5", 4},
	InputVideo6: {"VIDEO6", 5},
	InputVideo7: {"VIDEO7", 6},
	InputDVD:    {"DVD", 10},
	InputTape1:  {"TAPE1", 20},
	InputTape2:  {"TAPE2", 21},
	InputPhono:  {"PHONO", 22},
	InputCD:     {"CD", 23},
	InputFM:     {"FM", 24},
	InputAM:     {"AM", 25},
	InputTuner:  {"TUNER", 26},
	InputXM:     {"XM", 31},
	InputSirius: {"SIRIUS", 32},
}

// Inputs returns every known input in selector order.
func Inputs() []Input {
	all := make([]Input, 0, inputCount)
	for i := Input(0); i < inputCount; i++ {
		all = append(all, i)
	}
	return all
}

// ParseInput looks up an input by name, ignoring case.
func ParseInput(name string) (Input, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, info := range inputTable {
		if info.name == upper {
			return Input(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInput, name)
}

func (in Input) valid() bool {
	return in >= 0 && in < inputCount
}

// Code is the selector number sent as the SLI parameter.
func (in Input) Code() int {
	return inputTable[in].code
}

func (in Input) String() string {
	if !in.valid() {
		return fmt.Sprintf("Input(%d)", int(in))
	}
	return inputTable[in].name
}

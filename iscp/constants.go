// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package iscp

// Frame delimiters
const (
	StartChar byte = '!'
	EndChar   byte = '\r'

	// UnitReceiver is the only unit type addressed on the line.
	UnitReceiver byte = '1'

	// MinSize covers start char, unit type, a 3 letter code and the terminator.
	MinSize = 6
	MaxSize = 64
)

// Command Codes
const (
	CodePower         = "PWR"
	CodeMasterVolume  = "MVL"
	CodeInputSelector = "SLI"
	CodeTuning        = "TUN"
	CodePreset        = "PRS"
	CodeTriggerA      = "TGA"
	CodeTriggerB      = "TGB"
	CodeTriggerC      = "TGC"
	CodeDimmer        = "DIM"
)

const (
	MinVolume = 1
	MaxVolume = 80

	MinPreset = 1
	MaxPreset = 40

	frequencyWidth = 5
)

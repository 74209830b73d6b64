// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package iscp

import "errors"

var (
	ErrInvalidRange     = errors.New("iscp: value out of range")
	ErrInvalidInput     = errors.New("iscp: invalid input selector")
	ErrInvalidBand      = errors.New("iscp: invalid band")
	ErrInvalidFrequency = errors.New("iscp: invalid frequency")
	ErrInvalidTrigger   = errors.New("iscp: invalid 12V trigger")
	ErrInvalidLevel     = errors.New("iscp: invalid dimmer level")
	ErrInvalidCommand   = errors.New("iscp: invalid command")
	ErrInvalidFrame     = errors.New("iscp: invalid frame")
)

var validationErrors = []error{
	ErrInvalidRange,
	ErrInvalidInput,
	ErrInvalidBand,
	ErrInvalidFrequency,
	ErrInvalidTrigger,
	ErrInvalidLevel,
	ErrInvalidCommand,
}

// IsValidation reports whether err was raised while checking arguments,
// i.e. before anything reached the link.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package iscp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Band is a tuner band.
type Band int

const (
	BandAM Band = iota
	BandFM
)

// ParseBand accepts "am" or "fm" in any case.
func ParseBand(s string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "am":
		return BandAM, nil
	case "fm":
		return BandFM, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBand, s)
}

// Input is the selector that has to be active before tuning on this band.
func (b Band) Input() Input {
	if b == BandFM {
		return InputFM
	}
	return InputAM
}

func (b Band) String() string {
	switch b {
	case BandAM:
		return "AM"
	case BandFM:
		return "FM"
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

// Frequency is a tuner frequency already reduced to its 5 digit TUN parameter.
type Frequency struct {
	Band   Band
	digits string
}

// AM builds an AM frequency from kHz, e.g. 540 -> "00540".
func AM(kHz int) (Frequency, error) {
	if kHz < 0 || kHz > 99999 {
		return Frequency{}, fmt.Errorf("%w: %d kHz does not fit %d digits", ErrInvalidFrequency, kHz, frequencyWidth)
	}
	return Frequency{Band: BandAM, digits: fmt.Sprintf("%05d", kHz)}, nil
}

// FM builds an FM frequency from MHz. Only values with a single decimal
// place are representable: the point is dropped and a trailing zero
// appended, so 93.3 becomes "09330".
func FM(mhz float64) (Frequency, error) {
	if math.IsNaN(mhz) || math.IsInf(mhz, 0) || mhz <= 0 {
		return Frequency{}, fmt.Errorf("%w: %v MHz", ErrInvalidFrequency, mhz)
	}

	s := strconv.FormatFloat(mhz, 'f', -1, 64)
	whole, frac, found := strings.Cut(s, ".")
	if !found {
		frac = "0"
	}
	if len(frac) != 1 {
		return Frequency{}, fmt.Errorf("%w: %s MHz must have exactly one decimal place", ErrInvalidFrequency, s)
	}

	digits := whole + frac + "0"
	if len(digits) > frequencyWidth {
		return Frequency{}, fmt.Errorf("%w: %s MHz does not fit %d digits", ErrInvalidFrequency, s, frequencyWidth)
	}
	return Frequency{Band: BandFM, digits: strings.Repeat("0", frequencyWidth-len(digits)) + digits}, nil
}

// ParseFrequency parses a textual frequency for the given band. AM takes an
// integer literal in kHz, FM a fractional literal in MHz. Handing an integer
// to FM or a fraction to AM is a band mismatch.
func ParseFrequency(band Band, value string) (Frequency, error) {
	value = strings.TrimSpace(value)
	switch band {
	case BandAM:
		if strings.ContainsAny(value, ".eE") {
			return Frequency{}, fmt.Errorf("%w: AM expects an integer frequency, got %q", ErrInvalidBand, value)
		}
		kHz, err := strconv.Atoi(value)
		if err != nil {
			return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, value)
		}
		return AM(kHz)
	case BandFM:
		mhz, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Frequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, value)
		}
		if !strings.Contains(value, ".") {
			return Frequency{}, fmt.Errorf("%w: FM expects a fractional frequency, got %q", ErrInvalidBand, value)
		}
		return FM(mhz)
	}
	return Frequency{}, fmt.Errorf("%w: %v", ErrInvalidBand, band)
}

// Param is the fixed width TUN parameter.
func (f Frequency) Param() string {
	return f.digits
}

func (f Frequency) String() string {
	n, _ := strconv.Atoi(f.digits)
	if f.Band == BandFM {
		return fmt.Sprintf("%.1f MHz", float64(n)/100)
	}
	return fmt.Sprintf("%d kHz", n)
}

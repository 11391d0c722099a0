// SPDX-License-Identifier: MIT

package band

import (
	"fmt"
	"strings"
)

// Band is an ordered risk class. The zero value is Green.
type Band int

const (
	Green Band = iota
	Yellow
	Orange
	Red
	Black
)

// Count is the number of bands.
const Count = int(Black) + 1

var names = [Count]string{"green", "yellow", "orange", "red", "black"}

// String returns the lower-case band name.
func (b Band) String() string {
	if b < Green || b > Black {
		return fmt.Sprintf("band(%d)", int(b))
	}

	return names[b]
}

// Valid reports whether b is one of the five defined bands.
func (b Band) Valid() bool { return b >= Green && b <= Black }

// Parse maps a band name (case-insensitive) back to a Band.
func Parse(s string) (Band, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == key {
			return Band(i), nil
		}
	}

	return Green, fmt.Errorf("%q: %w", s, ErrUnknownBand)
}

// MarshalText encodes the band by name, so JSON and YAML output carry
// "red" rather than 3.
func (b Band) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("band(%d): %w", int(b), ErrUnknownBand)
	}

	return []byte(names[b]), nil
}

// UnmarshalText is the inverse of MarshalText.
func (b *Band) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v

	return nil
}

// SPDX-License-Identifier: MIT

package rho

import (
	"errors"
	"fmt"
	"strings"
)

// CriticalRho is the reference instability threshold. Values strictly above
// it are reported by Evaluator.Exceeds and fall in the top band of the
// default graph scale.
const CriticalRho = 0.7419

// DefaultEpsilon smooths the per-column normalization in Diversity so that
// an all-zero column never divides by zero.
const DefaultEpsilon = 1e-12

// ErrUnknownAxis is returned by ParseAxis for unrecognized names.
var ErrUnknownAxis = errors.New("rho: unknown axis")

// Axis selects which totals Authority compares.
type Axis int

const (
	// Columns compares column totals c_j = Σ_i w[i][j]. This is the
	// definition of authority and the default.
	Columns Axis = iota
	// Rows compares row totals r_i = Σ_j w[i][j].
	Rows
)

// String returns "columns" or "rows".
func (a Axis) String() string {
	switch a {
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis maps "columns"/"cols" and "rows" (case-insensitive) to an Axis.
// The empty string maps to Columns.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "columns", "cols", "column":
		return Columns, nil
	case "rows", "row":
		return Rows, nil
	default:
		return Columns, fmt.Errorf("%q: %w", s, ErrUnknownAxis)
	}
}

// SPDX-License-Identifier: MIT

package rho

import (
	"fmt"

	"github.com/katalvlaran/rholaw/matrix"
)

const (
	methodAuthority = "Authority"
	methodDiversity = "Diversity"
	methodEvaluate  = "Evaluate"
)

// Authority returns A = max_j c_j / Σ_j c_j over the column totals of W.
// Implementation:
//   - Stage 1: ValidateWeights (nil, square, N >= 2, finite, non-negative).
//   - Stage 2: ColumnSums in fixed order.
//   - Stage 3: ratio of the largest total to the grand total.
//
// An all-zero W yields 0 (not an error).
// Complexity: O(N^2) time, O(N) space.
func Authority(W matrix.Matrix) (float64, error) {
	return AuthorityAlong(W, Columns)
}

// AuthorityAlong is Authority computed over the totals selected by axis.
func AuthorityAlong(W matrix.Matrix, axis Axis) (float64, error) {
	if err := matrix.ValidateWeights(W); err != nil {
		return 0, fmt.Errorf("%s: %w", methodAuthority, err)
	}

	return authority(W, axis)
}

// authority skips validation; callers must have validated W.
func authority(W matrix.Matrix, axis Axis) (float64, error) {
	var totals []float64
	var err error
	switch axis {
	case Rows:
		totals, err = matrix.RowSums(W)
	case Columns:
		totals, err = matrix.ColumnSums(W)
	default:
		return 0, fmt.Errorf("%s: %v: %w", methodAuthority, axis, ErrUnknownAxis)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodAuthority, err)
	}

	return shareOfMax(totals), nil
}

// shareOfMax returns max(totals)/Σ totals clamped to [0,1], or 0 when the
// sum is not positive.
func shareOfMax(totals []float64) float64 {
	var sum, best float64
	for _, t := range totals {
		sum += t
		if t > best {
			best = t
		}
	}
	if sum <= 0 {
		return 0
	}

	return clamp01(best / sum)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}

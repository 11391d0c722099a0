// SPDX-License-Identifier: MIT
// Package: rholaw/builder
//
// impl_star_plunder.go - implementation of StarPlunder(n, p).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - Node 0 is the hub. Column 0 is uniform: w[i][0] = 1/n for every i.
//   - For every non-hub column j: w[0][j] = p and w[i][j] = (1−p)/(n−1) for
//     i ≥ 1, including the self weight w[j][j].
//   - Every column sums to 1.
//   - Returns only wrapped sentinel errors; never panics.
//
// Complexity:
//   - Time: O(n²). Space: O(n²) for the result.
//
// Determinism:
//   - No randomness; cells are written in fixed i→j order.

package builder

import (
	"github.com/katalvlaran/rholaw/matrix"
)

// StarPlunder returns the n×n star–plunder weight matrix for plunder
// parameter p.
func StarPlunder(n int, p float64) (*matrix.Dense, error) {
	// Validate the parameter domain early to avoid partial work.
	if err := validateMin(MethodStarPlunder, n, MinNodes); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodStarPlunder, p); err != nil {
		return nil, err
	}

	W, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(MethodStarPlunder, err, "NewDense(%d,%d)", n, n)
	}

	hub := 1.0 / float64(n)
	spread := (1.0 - p) / float64(n-1)

	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j == HubIndex:
				w = hub
			case i == HubIndex:
				w = p
			default:
				w = spread
			}
			if err = W.Set(i, j, w); err != nil {
				return nil, builderErrorf(MethodStarPlunder, err, "Set(%d,%d)", i, j)
			}
		}
	}

	return W, nil
}

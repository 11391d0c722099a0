// SPDX-License-Identifier: MIT
// Package: rholaw/builder
//
// impl_uniform.go - implementation of Uniform(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Every cell is 1/n, so every column is the uniform distribution and
//     every column total is 1.
//
// Complexity: O(n²).

package builder

import (
	"github.com/katalvlaran/rholaw/matrix"
)

// Uniform returns the n×n matrix with every entry equal to 1/n.
func Uniform(n int) (*matrix.Dense, error) {
	if err := validateMin(MethodUniform, n, MinNodes); err != nil {
		return nil, err
	}

	W, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(MethodUniform, err, "NewDense(%d,%d)", n, n)
	}
	if err = W.Fill(1.0 / float64(n)); err != nil {
		return nil, builderErrorf(MethodUniform, err, "Fill")
	}

	return W, nil
}

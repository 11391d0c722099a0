// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place element-wise kernels used by iterative callers that keep a
//     preallocated buffer alive across steps (no allocation per call).
//
// Determinism & Performance:
//   - Flat 0..n-1 order on Dense; i→j order on the fallback path.

package matrix

import "math"

// Clamp limits every element of X to [lo, hi] in place.
// Use hi = math.Inf(1) to clip negatives only.
// Errors:
//   - ErrNilMatrix; ErrNaNInf if lo/hi is NaN; ErrDimensionMismatch if lo > hi.
//
// Complexity: O(r*c) time, O(1) space.
func Clamp(X Matrix, lo, hi float64) error {
	if err := ValidateNotNil(X); err != nil {
		return matrixErrorf("Clamp", err)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return matrixErrorf("Clamp", ErrNaNInf)
	}
	if lo > hi {
		return matrixErrorf("Clamp", ErrDimensionMismatch)
	}

	if d, ok := X.(*Dense); ok {
		for k, v := range d.data {
			if v < lo {
				d.data[k] = lo
			} else if v > hi {
				d.data[k] = hi
			}
		}

		return nil
	}

	r, c := X.Rows(), X.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return matrixErrorf("Clamp", err)
			}
			if v < lo {
				err = X.Set(i, j, lo)
			} else if v > hi {
				err = X.Set(i, j, hi)
			}
			if err != nil {
				return matrixErrorf("Clamp", err)
			}
		}
	}

	return nil
}

// FillOffDiagonal sets every off-diagonal cell of a square matrix to off and
// every diagonal cell to diag.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (policy).
// Complexity: O(n^2).
func FillOffDiagonal(X Matrix, off, diag float64) error {
	if err := ValidateSquare(X); err != nil {
		return matrixErrorf("FillOffDiagonal", err)
	}

	n := X.Rows()
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = off
			if i == j {
				v = diag
			}
			if err := X.Set(i, j, v); err != nil {
				return matrixErrorf("FillOffDiagonal", err)
			}
		}
	}

	return nil
}

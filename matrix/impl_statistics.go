// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the axis reductions (column/row totals) and the column L1
//     normalization used to turn non-negative matrices into column-stochastic
//     influence matrices.
//
// Exposed API:
//   - ColumnSums(X)            -> c_j = Σ_i X[i,j]
//   - RowSums(X)               -> r_i = Σ_j X[i,j]
//   - NormalizeColumns(X, eps) -> in place X[i,j] /= (c_j + eps), returns c
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops, so sums are accumulated in
//     the same order on every call (bit-identical results).
//   - Dense fast-paths avoid At/Set and operate on the row-major flat buffer.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opColumnSums       = "ColumnSums"
	opRowSums          = "RowSums"
	opNormalizeColumns = "NormalizeColumns"
)

// ColumnSums returns c_j = Σ_i X[i,j] for every column j.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Accumulate down each column; rows visited in ascending order.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				sums[j] += d.data[base+j]
			}
		}

		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColumnSums, err)
			}
			sums[j] += v
		}
	}

	return sums, nil
}

// RowSums returns r_i = Σ_j X[i,j] for every row i.
// Complexity: Time O(r*c), Space O(r).
func RowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, r)

	var i, j int
	var s float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0
			base := i * c
			for j = 0; j < c; j++ {
				s += d.data[base+j]
			}
			sums[i] = s
		}

		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			s += v
		}
		sums[i] = s
	}

	return sums, nil
}

// NormalizeColumns divides every column of X in place by (c_j + eps) and
// returns the pre-normalization column totals c.
// Implementation:
//   - Stage 1: Validate X (non-nil) and eps (finite, >= 0).
//   - Stage 2: ColumnSums in fixed order.
//   - Stage 3: Divide each cell by (c_j + eps); a column whose divisor is 0
//     (eps = 0 and an all-zero column) is left unchanged.
//
// Behavior highlights:
//   - With eps > 0 an all-zero column stays all-zero instead of producing NaN.
//   - Entries are expected to be non-negative; callers clip first.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (bad eps), wrapped At/Set errors on fallback.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func NormalizeColumns(X Matrix, eps float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return nil, matrixErrorf(opNormalizeColumns, ErrNaNInf)
	}

	sums, err := ColumnSums(X)
	if err != nil {
		return nil, matrixErrorf(opNormalizeColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	dens := make([]float64, c)
	var i, j int
	for j = 0; j < c; j++ {
		dens[j] = sums[j] + eps
	}

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				if dens[j] > 0 {
					d.data[base+j] /= dens[j]
				}
			}
		}

		return sums, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if dens[j] <= 0 {
				continue
			}
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opNormalizeColumns, err)
			}
			if err = X.Set(i, j, v/dens[j]); err != nil {
				return nil, matrixErrorf(opNormalizeColumns, err)
			}
		}
	}

	return sums, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
//
// Purpose:
//   - One source of truth for structural and numeric checks so every kernel
//     reports the same sentinel for the same violation.
//
// Determinism & Performance:
//   - Shape checks are O(1); element scans are O(r*c) in fixed i→j order and
//     stop at the first violation, reporting its coordinates.

package matrix

import (
	"fmt"
	"math"
)

// MinWeightNodes is the smallest node count accepted by ValidateWeights.
// Diversity normalizes by ln N, which is zero for N = 1.
const MinWeightNodes = 2

// validatorErrorf labels a sentinel violation with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed-nil *Dense still satisfies the interface; treat it as nil.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMinSize checks that a square m has at least n nodes.
// Complexity: O(1).
func ValidateMinSize(m Matrix, n int) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateMinSize", err)
	}
	if m.Rows() < n {
		return validatorErrorf("ValidateMinSize", fmt.Errorf("n=%d < min=%d: %w", m.Rows(), n, ErrTooSmall))
	}

	return nil
}

// ValidateNonNegativeFinite scans every cell and rejects NaN/±Inf
// (ErrNaNInf) and negative values (ErrNegativeWeight).
// Implementation:
//   - Stage 1: nil-check.
//   - Stage 2: Dense fast-path over the flat buffer; At fallback otherwise.
//
// Complexity: O(r*c) time, O(1) space.
func ValidateNonNegativeFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegativeFinite", err)
	}

	r, c := m.Rows(), m.Cols()
	var i, j int
	var v float64
	check := func(i, j int, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return cellErrorf("ValidateNonNegativeFinite", i, j, ErrNaNInf)
		}
		if v < 0 {
			return cellErrorf("ValidateNonNegativeFinite", i, j, ErrNegativeWeight)
		}

		return nil
	}

	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				if err := check(i, j, d.data[base+j]); err != nil {
					return err
				}
			}
		}

		return nil
	}

	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegativeFinite", err)
			}
			if err = check(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateWeights is the composite check for an influence (weight) matrix:
// NotNil → Square → N >= MinWeightNodes → finite → non-negative.
// Self-loops (diagonal weight) are permitted.
// Complexity: O(n^2).
func ValidateWeights(m Matrix) error {
	if err := ValidateMinSize(m, MinWeightNodes); err != nil {
		return validatorErrorf("ValidateWeights", err)
	}
	if err := ValidateNonNegativeFinite(m); err != nil {
		return validatorErrorf("ValidateWeights", err)
	}

	return nil
}

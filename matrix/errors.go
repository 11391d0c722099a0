// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with %w) and tests
// match them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced by the validators, checked in tests):
// nil -> shape (non-square, too small) -> numeric (NaN/Inf) -> sign.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes or vector lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrTooSmall signals that a square matrix has fewer nodes than required
	// (weight matrices need N >= 2 for the ln N entropy normalizer).
	ErrTooSmall = errors.New("matrix: matrix too small")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative entry in a weight matrix.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf attaches an operation tag to err, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf attaches an operation tag and coordinates to err.
func cellErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, err)
}

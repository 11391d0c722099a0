// SPDX-License-Identifier: MIT
// Package: rholaw/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the node count is below the minimum for
// the requested constructor (every constructor here needs n >= 2).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval
// [0,1], or NaN.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// random stream (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates that a WeightFn produced a negative or
// non-finite value.
var ErrInvalidWeight = errors.New("builder: invalid weight")

// builderErrorf wraps err with the constructor name and a formatted detail:
// "<Method>: <detail>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// Package builder provides validation helpers to enforce
// parameter contracts in the matrix constructors.
//
// Each function returns a sentinel wrapped via builderErrorf
// when its precondition is violated.
package builder

import "math"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns ErrTooFewVertices wrapped with "<Method>: n=<got> < min=<min>".
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails the check (every comparison with NaN is false).
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%g not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}

// Package builder provides helper functions and types for configuring
// cell-weight distributions in the Random constructor.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultWeight is the weight assigned to each cell when no custom WeightFn
// is provided.
const DefaultWeight float64 = 1

// WeightFn produces a cell weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultWeight to keep a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || !(max >= min) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// SparseWeightFn wraps inner so that each cell is zero with probability
// 1−density. One Float64 is drawn per cell before inner runs, which keeps the
// stream layout fixed for a given seed. Panics if density is outside [0,1]
// or inner is nil. A nil rng delegates to inner.
func SparseWeightFn(density float64, inner WeightFn) WeightFn {
	if !(density >= 0 && density <= 1) {
		panic(fmt.Sprintf("SparseWeightFn: density must be in [0,1], got %g", density))
	}
	if inner == nil {
		panic("SparseWeightFn: inner is nil")
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return inner(nil)
		}
		if rng.Float64() >= density {
			return 0
		}

		return inner(rng)
	}
}

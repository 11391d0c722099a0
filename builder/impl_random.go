// SPDX-License-Identifier: MIT
// Package: rholaw/builder
//
// impl_random.go - implementation of Random(n, opts...).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Requires a random stream (WithSeed/WithRand), else ErrNeedRandSource.
//   - Each cell is cfg.weightFn(cfg.rng), drawn in fixed i→j order.
//   - A negative or non-finite draw is rejected with ErrInvalidWeight.
//
// Determinism:
//   - Identical seed and WeightFn ⇒ identical matrix.
//
// Complexity: O(n²) draws.

package builder

import (
	"math"

	"github.com/katalvlaran/rholaw/matrix"
)

// Random returns an n×n non-negative matrix of i.i.d. weights.
func Random(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateMin(MethodRandom, n, MinNodes); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandom, ErrNeedRandSource, "n=%d", n)
	}

	W, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(MethodRandom, err, "NewDense(%d,%d)", n, n)
	}

	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = cfg.weightFn(cfg.rng)
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, builderErrorf(MethodRandom, ErrInvalidWeight, "cell (%d,%d) = %g", i, j, w)
			}
			if err = W.Set(i, j, w); err != nil {
				return nil, builderErrorf(MethodRandom, err, "Set(%d,%d)", i, j)
			}
		}
	}

	return W, nil
}

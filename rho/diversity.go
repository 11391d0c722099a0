// SPDX-License-Identifier: MIT

package rho

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rholaw/matrix"
)

// Diversity returns the mean normalized Shannon entropy of the columns of W,
// using DefaultEpsilon as the normalization guard.
// Implementation:
//   - Stage 1: ValidateWeights.
//   - Stage 2: per column j, p_ij = w[i][j] / (c_j + ε); H_j = −Σ p ln p over
//     strictly positive p only (0·ln 0 is never evaluated).
//   - Stage 3: D = mean_j H_j / ln N, clamped to [0,1].
//
// Complexity: O(N^2) time, O(N) space.
func Diversity(W matrix.Matrix) (float64, error) {
	return DiversityWithEpsilon(W, DefaultEpsilon)
}

// DiversityWithEpsilon is Diversity with an explicit smoothing constant.
// eps must be finite and positive.
func DiversityWithEpsilon(W matrix.Matrix, eps float64) (float64, error) {
	if err := matrix.ValidateWeights(W); err != nil {
		return 0, fmt.Errorf("%s: %w", methodDiversity, err)
	}
	if !(eps > 0) || math.IsInf(eps, 0) {
		return 0, fmt.Errorf("%s: eps=%g: %w", methodDiversity, eps, matrix.ErrNaNInf)
	}

	return diversity(W, eps)
}

// diversity skips validation. N <= 1 yields 0: there is no distribution to
// spread over.
func diversity(W matrix.Matrix, eps float64) (float64, error) {
	n := W.Rows()
	if n <= 1 {
		return 0, nil
	}

	sums, err := matrix.ColumnSums(W)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodDiversity, err)
	}

	// Entropies accumulate per column in ascending row order.
	entropy := make([]float64, n)
	var i, j int
	var w, p float64
	for j = 0; j < n; j++ {
		den := sums[j] + eps
		for i = 0; i < n; i++ {
			if w, err = W.At(i, j); err != nil {
				return 0, fmt.Errorf("%s: %w", methodDiversity, err)
			}
			p = w / den
			if p > 0 {
				entropy[j] -= p * math.Log(p)
			}
		}
	}

	norm := math.Log(float64(n))
	var total float64
	for j = 0; j < n; j++ {
		total += entropy[j] / norm
	}

	return clamp01(total / float64(n)), nil
}

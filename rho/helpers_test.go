// SPDX-License-Identifier: MIT

package rho_test

import (
	"testing"

	"github.com/katalvlaran/rholaw/matrix"
	"github.com/stretchr/testify/require"
)

// raw is a Matrix over a plain [][]float64 that accepts any value,
// including NaN and Inf, so validation paths can be reached.
type raw [][]float64

func (m raw) Rows() int { return len(m) }
func (m raw) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
func (m raw) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}
	return m[i][j], nil
}
func (m raw) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m[i][j] = v
	return nil
}
func (m raw) Clone() matrix.Matrix {
	out := make(raw, len(m))
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}
	return out
}

// mustFrom builds a *Dense from rows or fails the test.
func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// permutation returns the n×n cyclic shift matrix (one-hot columns).
func permutation(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for j := 0; j < n; j++ {
		require.NoError(t, d.Set((j+1)%n, j, 1))
	}

	return d
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rholaw/matrix"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	vals := []float64{-0.5, 0.2, 1.7, 1}
	X := NewFilledDense(t, 2, 2, vals)
	Y := NewFilledDense(t, 2, 2, vals)

	require.NoError(t, matrix.Clamp(X, 0, 1))
	require.NoError(t, matrix.Clamp(hide{Y}, 0, 1))
	require.Equal(t, X.String(), Y.String())
	require.Equal(t, 0.0, MustAt(t, X, 0, 0))
	require.Equal(t, 0.2, MustAt(t, X, 0, 1))
	require.Equal(t, 1.0, MustAt(t, X, 1, 0))

	Z := NewFilledDense(t, 1, 2, []float64{-3, 5})
	require.NoError(t, matrix.Clamp(Z, 0, math.Inf(1)))
	require.Equal(t, 0.0, MustAt(t, Z, 0, 0))
	require.Equal(t, 5.0, MustAt(t, Z, 0, 1))

	require.ErrorIs(t, matrix.Clamp(nil, 0, 1), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.Clamp(X, math.NaN(), 1), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.Clamp(X, 2, 1), matrix.ErrDimensionMismatch)
}

func TestFillOffDiagonal(t *testing.T) {
	t.Parallel()

	X := MustDense(t, 3, 3)
	require.NoError(t, matrix.FillOffDiagonal(X, 0.5, 0))
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			want := 0.5
			if i == j {
				want = 0
			}
			require.Equal(t, want, MustAt(t, X, i, j))
		}
	}

	require.ErrorIs(t, matrix.FillOffDiagonal(MustDense(t, 2, 3), 1, 0), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.FillOffDiagonal(X, math.NaN(), 0), matrix.ErrNaNInf)
}

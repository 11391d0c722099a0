// SPDX-License-Identifier: MIT

package rho_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rholaw/builder"
	"github.com/katalvlaran/rholaw/matrix"
	"github.com/katalvlaran/rholaw/rho"
	"github.com/stretchr/testify/require"
)

const tight = 1e-12

// TestEvaluate_BoundsAndComposition checks 0<=A,D,rho<=1 and
// rho == A²(1−D) over seeded random matrices, dense and sparse.
func TestEvaluate_BoundsAndComposition(t *testing.T) {
	t.Parallel()

	fns := map[string]builder.WeightFn{
		"uniform": builder.UniformWeightFn(0, 5),
		"sparse":  builder.SparseWeightFn(0.3, builder.UniformWeightFn(0, 1)),
		"spiky":   builder.SparseWeightFn(0.05, builder.ConstantWeightFn(100)),
	}
	for name, fn := range fns {
		for seed := int64(1); seed <= 25; seed++ {
			n := 2 + int(seed%9)
			W, err := builder.Random(n, builder.WithSeed(seed), builder.WithWeightFn(fn))
			require.NoError(t, err)

			for _, axis := range []rho.Axis{rho.Columns, rho.Rows} {
				res, err := rho.NewEvaluator(rho.WithAxis(axis)).Evaluate(W)
				require.NoErrorf(t, err, "%s seed=%d", name, seed)
				for _, v := range []float64{res.A, res.D, res.Rho} {
					require.GreaterOrEqual(t, v, 0.0)
					require.LessOrEqual(t, v, 1.0)
				}
				require.InDelta(t, res.A*res.A*(1-res.D), res.Rho, tight)
			}
		}
	}
}

func TestAuthority_Extremes(t *testing.T) {
	t.Parallel()

	// All weight in column 1.
	W := mustFrom(t, [][]float64{
		{0, 3, 0},
		{0, 2, 0},
		{0, 5, 0},
	})
	a, err := rho.Authority(W)
	require.NoError(t, err)
	require.Equal(t, 1.0, a)

	// Equal column totals.
	U, err := builder.Uniform(8)
	require.NoError(t, err)
	a, err = rho.Authority(U)
	require.NoError(t, err)
	require.InDelta(t, 1.0/8, a, tight)

	// Zero matrix: no authority, not an error.
	Z, err := matrix.NewDense(4, 4)
	require.NoError(t, err)
	a, err = rho.Authority(Z)
	require.NoError(t, err)
	require.Zero(t, a)
}

func TestAuthorityAlong_Rows(t *testing.T) {
	t.Parallel()

	W := mustFrom(t, [][]float64{
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	a, err := rho.AuthorityAlong(W, rho.Rows)
	require.NoError(t, err)
	require.Equal(t, 1.0, a)

	a, err = rho.AuthorityAlong(W, rho.Columns)
	require.NoError(t, err)
	require.InDelta(t, 0.25, a, tight)

	_, err = rho.AuthorityAlong(W, rho.Axis(9))
	require.ErrorIs(t, err, rho.ErrUnknownAxis)
}

func TestDiversity_Extremes(t *testing.T) {
	t.Parallel()

	U, err := builder.Uniform(6)
	require.NoError(t, err)
	d, err := rho.Diversity(U)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d, 1e-9)

	d, err = rho.Diversity(permutation(t, 6))
	require.NoError(t, err)
	require.InDelta(t, 0.0, d, tight)

	Z, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	d, err = rho.Diversity(Z)
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestDiversity_ZeroColumnsContributeNothing(t *testing.T) {
	t.Parallel()

	// Column 0 uniform, columns 1..3 empty: D = (1 + 0 + 0 + 0) / 4.
	W := mustFrom(t, [][]float64{
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	})
	d, err := rho.Diversity(W)
	require.NoError(t, err)
	require.InDelta(t, 0.25, d, 1e-9)

	res, err := rho.Evaluate(W)
	require.NoError(t, err)
	require.Equal(t, 1.0, res.A)
	require.InDelta(t, 0.75, res.Rho, 1e-9)
}

func TestDiversityWithEpsilon_Errors(t *testing.T) {
	t.Parallel()

	U, err := builder.Uniform(3)
	require.NoError(t, err)
	for _, eps := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = rho.DiversityWithEpsilon(U, eps)
		require.ErrorIsf(t, err, matrix.ErrNaNInf, "eps=%g", eps)
	}
	d, err := rho.DiversityWithEpsilon(U, 1e-9)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d, 1e-6)
}

func TestEvaluate_Validation(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name string
		W    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"non-square", raw{{1, 2, 3}, {4, 5, 6}}, matrix.ErrNonSquare},
		{"single node", raw{{1}}, matrix.ErrTooSmall},
		{"NaN", raw{{1, math.NaN()}, {0, 1}}, matrix.ErrNaNInf},
		{"Inf", raw{{1, 0}, {math.Inf(1), 1}}, matrix.ErrNaNInf},
		{"negative", raw{{1, 0}, {-0.5, 1}}, matrix.ErrNegativeWeight},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := rho.Evaluate(tc.W)
			require.ErrorIs(t, err, tc.want)
			_, err = rho.Authority(tc.W)
			require.ErrorIs(t, err, tc.want)
			_, err = rho.Diversity(tc.W)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEvaluate_FallbackMatchesDense(t *testing.T) {
	t.Parallel()

	W, err := builder.Random(7, builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(0, 2)))
	require.NoError(t, err)

	rows := make(raw, 7)
	for i := range rows {
		rows[i] = make([]float64, 7)
		for j := range rows[i] {
			rows[i][j], err = W.At(i, j)
			require.NoError(t, err)
		}
	}

	got, err := rho.Evaluate(rows)
	require.NoError(t, err)
	want, err := rho.Evaluate(W)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRho_Compose(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, rho.Rho(1, 0))
	require.Equal(t, 0.0, rho.Rho(1, 1))
	require.Equal(t, 0.0, rho.Rho(0, 0))
	require.InDelta(t, 0.25*0.5, rho.Rho(0.5, 0.5), tight)
}

func TestGraphRhoResult_String(t *testing.T) {
	t.Parallel()

	r := rho.GraphRhoResult{A: 0.5, D: 0.25, Rho: 0.1875}
	require.Equal(t, "A=0.5000 D=0.2500 rho=0.1875", r.String())
}

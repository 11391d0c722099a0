// SPDX-License-Identifier: MIT

package trustsim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// zeroSource makes every Intn and Float64 draw return 0, so every pair
// collides until the offset fallback resolves it.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(_ int64) {}

func newTestEngine(t *testing.T, n, k int, r *rand.Rand) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.N, cfg.InteractionsPerStep, cfg.Steps = n, k, 1
	e, err := New(cfg, WithRand(r))
	require.NoError(t, err)

	return e
}

func TestDrawPairs_NoSelfPairs(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 5, 40} {
		e := newTestEngine(t, n, 500, rand.New(rand.NewSource(int64(n))))
		for rep := 0; rep < 20; rep++ {
			e.drawPairs()
			for k := range e.src {
				require.NotEqual(t, e.src[k], e.dst[k])
				require.GreaterOrEqual(t, e.src[k], 0)
				require.Less(t, e.src[k], n)
				require.GreaterOrEqual(t, e.dst[k], 0)
				require.Less(t, e.dst[k], n)
			}
		}
	}
}

func TestDrawPairs_BoundedFallback(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 7} {
		e := newTestEngine(t, n, 10, rand.New(zeroSource{}))
		e.drawPairs()
		for k := range e.src {
			require.Equal(t, 0, e.dst[k])
			require.Equal(t, 1, e.src[k])
		}
	}
}

// With N = 2 every pair is (0,1) or (1,0); both orientations occur.
func TestDrawPairs_TwoNodesBothOrientations(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 2, 200, rand.New(rand.NewSource(9)))
	e.drawPairs()
	seen := map[[2]int]bool{}
	for k := range e.src {
		seen[[2]int{e.src[k], e.dst[k]}] = true
	}
	require.Len(t, seen, 2)
	require.True(t, seen[[2]int{0, 1}])
	require.True(t, seen[[2]int{1, 0}])
}

func TestInteract_UpdateRules(t *testing.T) {
	t.Parallel()

	// zeroSource draws u = 0, so any PlunderProb > 0 plunders.
	cfg := Config{N: 3, Steps: 1, InteractionsPerStep: 2, PlunderProb: 0.5, GrowthRate: 0.1, DecayRate: 0.2}
	e, err := New(cfg, WithRand(rand.New(zeroSource{})))
	require.NoError(t, err)
	e.src[0], e.dst[0] = 1, 2
	e.src[1], e.dst[1] = 1, 2
	require.NoError(t, e.interact())
	v, err := e.trust.At(1, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.5*0.8*0.8, v, 1e-15)

	// PlunderProb = 0: u = 0 is never < 0, so trust grows.
	cfg.PlunderProb = 0
	e, err = New(cfg, WithRand(rand.New(zeroSource{})))
	require.NoError(t, err)
	e.src[0], e.dst[0] = 0, 1
	e.src[1], e.dst[1] = 0, 1
	require.NoError(t, e.interact())
	v, err = e.trust.At(0, 1)
	require.NoError(t, err)
	g := 0.5 + 0.1*0.5
	require.InDelta(t, g+0.1*(1-g), v, 1e-15)
}

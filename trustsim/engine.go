// SPDX-License-Identifier: MIT

package trustsim

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/rholaw/band"
	"github.com/katalvlaran/rholaw/matrix"
	"github.com/katalvlaran/rholaw/rho"
)

const (
	// initialTrust fills every off-diagonal cell at step 0.
	initialTrust = 0.5
	// influenceEpsilon guards the column normalization of the influence
	// matrix against empty columns.
	influenceEpsilon = 1e-6
	// maxRedrawRounds bounds the i != j redraw loop; leftovers after this
	// many rounds are resolved by an offset draw.
	maxRedrawRounds = 64
)

// Engine owns one run: its trust matrix, influence buffer, random stream
// and the snapshots recorded so far.
type Engine struct {
	cfg  Config
	seed int64
	// external is set when the stream came from WithRand.
	external bool

	rng    *rand.Rand
	eval   *rho.Evaluator
	bander *band.Bander
	log    *slog.Logger

	trust     *matrix.Dense
	influence *matrix.Dense
	src, dst  []int

	step      int
	snapshots []Snapshot
}

// New validates cfg, allocates the trust matrix and influence buffer,
// resolves the random stream and records snapshot 0.
// Stream priority: WithRand, then cfg.Seed, then a time-derived seed.
// Complexity: O(N^2).
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	o := newEngineOptions(opts...)

	e := &Engine{
		cfg:       cfg,
		eval:      o.eval,
		bander:    o.bander,
		snapshots: make([]Snapshot, 0, cfg.Steps+1),
		src:       make([]int, cfg.InteractionsPerStep),
		dst:       make([]int, cfg.InteractionsPerStep),
	}
	switch {
	case o.rng != nil:
		e.rng, e.external = o.rng, true
	case cfg.Seed != nil:
		e.seed = *cfg.Seed
		e.rng = rand.New(rand.NewSource(e.seed))
	default:
		e.seed = time.Now().UnixNano()
		e.rng = rand.New(rand.NewSource(e.seed))
	}
	e.log = o.log.With("n", cfg.N, "p_base", cfg.PlunderProb)

	var err error
	if e.trust, err = matrix.NewDense(cfg.N, cfg.N); err != nil {
		return nil, fmt.Errorf("New: trust: %w", err)
	}
	if err = matrix.FillOffDiagonal(e.trust, initialTrust, 0); err != nil {
		return nil, fmt.Errorf("New: trust: %w", err)
	}
	if e.influence, err = matrix.NewDense(cfg.N, cfg.N); err != nil {
		return nil, fmt.Errorf("New: influence: %w", err)
	}

	snap, err := e.observe()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	e.snapshots = append(e.snapshots, snap)

	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Seed returns the seed of the internal stream (0 when injected).
func (e *Engine) Seed() int64 { return e.seed }

// StepIndex returns the number of completed transitions.
func (e *Engine) StepIndex() int { return e.step }

// Done reports whether every configured step has run.
func (e *Engine) Done() bool { return e.step >= e.cfg.Steps }

// Trust returns a copy of the current trust matrix.
func (e *Engine) Trust() *matrix.Dense {
	return e.trust.Clone().(*matrix.Dense)
}

// Step performs one transition and returns its snapshot.
// Implementation:
//   - Stage 1: draw all sources, then all targets; redraw sources that
//     collide with their target.
//   - Stage 2: apply the interactions in draw order, one Float64 each.
//   - Stage 3: clamp T to [0,1], rebuild W, evaluate and band.
//
// Returns ErrRunComplete once Steps transitions have run.
// Complexity: O(InteractionsPerStep + N^2).
func (e *Engine) Step() (Snapshot, error) {
	if e.Done() {
		return Snapshot{}, fmt.Errorf("Step %d: %w", e.step, ErrRunComplete)
	}

	e.drawPairs()
	if err := e.interact(); err != nil {
		return Snapshot{}, fmt.Errorf("Step %d: %w", e.step+1, err)
	}
	if err := matrix.Clamp(e.trust, 0, 1); err != nil {
		return Snapshot{}, fmt.Errorf("Step %d: %w", e.step+1, err)
	}

	e.step++
	snap, err := e.observe()
	if err != nil {
		return Snapshot{}, fmt.Errorf("Step %d: %w", e.step, err)
	}
	e.snapshots = append(e.snapshots, snap)
	e.log.Debug("step", "step", snap.Step, "A", snap.A, "D", snap.D, "rho", snap.Rho, "band", snap.Band)

	return snap, nil
}

// Run performs the remaining steps and returns the result. ctx is checked
// between steps; on cancellation the partial result is discarded.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	for !e.Done() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Run: step %d: %w", e.step, err)
		}
		if _, err := e.Step(); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	res := e.Result()
	last := res.Snapshots[len(res.Snapshots)-1]
	e.log.Info("run complete", "steps", e.step, "seed", e.seed, "rho", last.Rho, "band", last.Band)

	return res, nil
}

// Result returns the snapshots recorded so far. The slice is copied; the
// engine may keep stepping without affecting it.
func (e *Engine) Result() *Result {
	snaps := make([]Snapshot, len(e.snapshots))
	copy(snaps, e.snapshots)

	return &Result{
		Config:       e.cfg,
		Seed:         e.seed,
		ExternalRand: e.external,
		Snapshots:    snaps,
	}
}

// drawPairs fills src/dst with ordered pairs, src[k] != dst[k].
// Colliding sources are redrawn for at most maxRedrawRounds rounds; any
// residue gets src = (dst + 1 + Intn(N-1)) mod N, which is uniform over the
// N-1 valid sources.
func (e *Engine) drawPairs() {
	n := e.cfg.N
	var k int
	for k = range e.src {
		e.src[k] = e.rng.Intn(n)
	}
	for k = range e.dst {
		e.dst[k] = e.rng.Intn(n)
	}

	for round := 0; round < maxRedrawRounds; round++ {
		clash := false
		for k = range e.src {
			if e.src[k] == e.dst[k] {
				e.src[k] = e.rng.Intn(n)
				clash = true
			}
		}
		if !clash {
			return
		}
	}
	for k = range e.src {
		if e.src[k] == e.dst[k] {
			e.src[k] = (e.dst[k] + 1 + e.rng.Intn(n-1)) % n
		}
	}
}

// interact applies the drawn pairs to the trust matrix in order.
func (e *Engine) interact() error {
	p, growth, decay := e.cfg.PlunderProb, e.cfg.GrowthRate, e.cfg.DecayRate

	var i, j int
	var t float64
	var err error
	for k := range e.src {
		i, j = e.src[k], e.dst[k]
		if t, err = e.trust.At(i, j); err != nil {
			return err
		}
		if e.rng.Float64() < p {
			t *= 1 - decay
		} else {
			t += growth * (1 - t)
		}
		if err = e.trust.Set(i, j, t); err != nil {
			return err
		}
	}

	return nil
}

// observe rebuilds the influence matrix from the current trust and scores it.
func (e *Engine) observe() (Snapshot, error) {
	if err := e.influence.CopyFrom(e.trust); err != nil {
		return Snapshot{}, err
	}
	if err := matrix.Clamp(e.influence, 0, math.Inf(1)); err != nil {
		return Snapshot{}, err
	}
	if _, err := matrix.NormalizeColumns(e.influence, influenceEpsilon); err != nil {
		return Snapshot{}, err
	}

	res, err := e.eval.Evaluate(e.influence)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Step: e.step,
		A:    res.A,
		D:    res.D,
		Rho:  res.Rho,
		Band: e.bander.Classify(res.Rho),
	}, nil
}

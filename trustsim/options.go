// SPDX-License-Identifier: MIT

package trustsim

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/rholaw/band"
	"github.com/katalvlaran/rholaw/rho"
)

// Option customizes an Engine. Option constructors panic on nil arguments;
// New and Step never panic.
type Option func(*engineOptions)

type engineOptions struct {
	rng    *rand.Rand
	eval   *rho.Evaluator
	bander *band.Bander
	log    *slog.Logger
}

func newEngineOptions(opts ...Option) engineOptions {
	o := engineOptions{
		eval:   rho.NewEvaluator(),
		bander: band.Default(),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRand injects the random stream, overriding Config.Seed. The engine
// takes ownership of r. Not accepted by RunAll.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("trustsim: WithRand(nil)")
	}
	return func(o *engineOptions) {
		o.rng = r
	}
}

// WithEvaluator replaces the default rho evaluator (column authority).
func WithEvaluator(e *rho.Evaluator) Option {
	if e == nil {
		panic("trustsim: WithEvaluator(nil)")
	}
	return func(o *engineOptions) {
		o.eval = e
	}
}

// WithBander replaces the default graph band scale.
func WithBander(b *band.Bander) Option {
	if b == nil {
		panic("trustsim: WithBander(nil)")
	}
	return func(o *engineOptions) {
		o.bander = b
	}
}

// WithLogger routes step (debug) and run (info) records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("trustsim: WithLogger(nil)")
	}
	return func(o *engineOptions) {
		o.log = l
	}
}

// SPDX-License-Identifier: MIT

package rho

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rholaw/matrix"
)

// Evaluator scores weight matrices with a fixed calibration.
// It is immutable after construction and safe for concurrent use.
type Evaluator struct {
	axis     Axis
	epsilon  float64
	critical float64
}

// Option customizes an Evaluator. Option constructors panic on meaningless
// values; evaluation itself never panics.
type Option func(*Evaluator)

// defaultEvaluator backs the package-level Evaluate. It is never mutated.
var defaultEvaluator = NewEvaluator()

// WithAxis selects the totals used for authority.
func WithAxis(a Axis) Option {
	if a != Columns && a != Rows {
		panic(fmt.Sprintf("rho: WithAxis(%d)", int(a)))
	}
	return func(e *Evaluator) {
		e.axis = a
	}
}

// WithEpsilon overrides the diversity smoothing constant. Panics unless
// eps is finite and > 0.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("rho: WithEpsilon(%g)", eps))
	}
	return func(e *Evaluator) {
		e.epsilon = eps
	}
}

// WithCritical overrides the critical rho used by Exceeds. Panics unless
// 0 <= c <= 1.
func WithCritical(c float64) Option {
	if !(c >= 0 && c <= 1) {
		panic(fmt.Sprintf("rho: WithCritical(%g)", c))
	}
	return func(e *Evaluator) {
		e.critical = c
	}
}

// NewEvaluator returns an Evaluator with column authority, DefaultEpsilon
// and CriticalRho, then applies opts in order (last wins).
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		axis:     Columns,
		epsilon:  DefaultEpsilon,
		critical: CriticalRho,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Axis reports the configured authority axis.
func (e *Evaluator) Axis() Axis { return e.axis }

// Epsilon reports the configured diversity smoothing constant.
func (e *Evaluator) Epsilon() float64 { return e.epsilon }

// Critical reports the configured critical rho.
func (e *Evaluator) Critical() float64 { return e.critical }

// Evaluate validates W once and computes A, D and rho.
// Complexity: O(N^2).
func (e *Evaluator) Evaluate(W matrix.Matrix) (GraphRhoResult, error) {
	if err := matrix.ValidateWeights(W); err != nil {
		return GraphRhoResult{}, fmt.Errorf("%s: %w", methodEvaluate, err)
	}

	a, err := authority(W, e.axis)
	if err != nil {
		return GraphRhoResult{}, fmt.Errorf("%s: %w", methodEvaluate, err)
	}
	d, err := diversity(W, e.epsilon)
	if err != nil {
		return GraphRhoResult{}, fmt.Errorf("%s: %w", methodEvaluate, err)
	}

	return GraphRhoResult{A: a, D: d, Rho: Rho(a, d)}, nil
}

// Exceeds reports whether res.Rho is strictly above the critical rho.
func (e *Evaluator) Exceeds(res GraphRhoResult) bool {
	return res.Rho > e.critical
}

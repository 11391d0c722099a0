// SPDX-License-Identifier: MIT

package trustsim

import "errors"

var (
	// ErrPopulationTooSmall indicates N < 2 (no ordered pair i != j exists).
	ErrPopulationTooSmall = errors.New("trustsim: population too small")

	// ErrNegativeSteps indicates Steps < 0.
	ErrNegativeSteps = errors.New("trustsim: negative steps")

	// ErrNegativeInteractions indicates InteractionsPerStep < 0.
	ErrNegativeInteractions = errors.New("trustsim: negative interactions per step")

	// ErrInvalidProbability indicates PlunderProb outside [0,1] or NaN.
	ErrInvalidProbability = errors.New("trustsim: plunder probability out of range")

	// ErrInvalidRate indicates GrowthRate or DecayRate outside [0,1] or NaN.
	ErrInvalidRate = errors.New("trustsim: rate out of range")

	// ErrSharedRand indicates that RunAll was given WithRand; one stream
	// cannot drive several independent runs.
	ErrSharedRand = errors.New("trustsim: random source cannot be shared across runs")

	// ErrRunComplete is returned by Step once all configured steps are done.
	ErrRunComplete = errors.New("trustsim: run complete")
)

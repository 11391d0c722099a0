// SPDX-License-Identifier: MIT
// Package: rholaw/builder
//
// config.go — resolved configuration shared by all constructors.

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for Random.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,             // no RNG unless explicitly set
		weightFn: DefaultWeightFn, // constant weight
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

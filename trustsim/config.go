// SPDX-License-Identifier: MIT

package trustsim

import (
	"fmt"
	"math"
)

// Defaults of the reference (low plunder) scenario.
const (
	DefaultN            = 40
	DefaultSteps        = 200
	DefaultInteractions = 200
	DefaultPlunderProb  = 0.01
	DefaultGrowthRate   = 0.05
	DefaultDecayRate    = 0.20
	DefaultSeed         = int64(42)
)

// Config parameterizes one simulation run.
type Config struct {
	// N is the population size; must be >= 2.
	N int `json:"n"`
	// Steps is the number of transitions; 0 yields only the initial snapshot.
	Steps int `json:"steps"`
	// InteractionsPerStep is the number of ordered pairs drawn per step.
	InteractionsPerStep int `json:"interactions_per_step"`
	// PlunderProb is the chance that an interaction erodes trust.
	PlunderProb float64 `json:"plunder_prob"`
	// GrowthRate pulls trust toward 1 on voluntary exchange.
	GrowthRate float64 `json:"growth_rate"`
	// DecayRate is the fraction of trust lost on plunder.
	DecayRate float64 `json:"decay_rate"`
	// Seed fixes the random stream. nil means a time-derived seed, which is
	// reported in Result.Seed so the run can be replayed.
	Seed *int64 `json:"seed,omitempty"`
}

// DefaultConfig returns the reference configuration with seed 42.
func DefaultConfig() Config {
	return Config{
		N:                   DefaultN,
		Steps:               DefaultSteps,
		InteractionsPerStep: DefaultInteractions,
		PlunderProb:         DefaultPlunderProb,
		GrowthRate:          DefaultGrowthRate,
		DecayRate:           DefaultDecayRate,
		Seed:                SeedPtr(DefaultSeed),
	}
}

// SeedPtr returns a pointer to v, for filling Config.Seed inline.
func SeedPtr(v int64) *int64 { return &v }

// Validate checks every field and returns the first violation, wrapped
// around its sentinel.
func (c Config) Validate() error {
	if c.N < 2 {
		return fmt.Errorf("N=%d: %w", c.N, ErrPopulationTooSmall)
	}
	if c.Steps < 0 {
		return fmt.Errorf("Steps=%d: %w", c.Steps, ErrNegativeSteps)
	}
	if c.InteractionsPerStep < 0 {
		return fmt.Errorf("InteractionsPerStep=%d: %w", c.InteractionsPerStep, ErrNegativeInteractions)
	}
	if !unit(c.PlunderProb) {
		return fmt.Errorf("PlunderProb=%g: %w", c.PlunderProb, ErrInvalidProbability)
	}
	if !unit(c.GrowthRate) {
		return fmt.Errorf("GrowthRate=%g: %w", c.GrowthRate, ErrInvalidRate)
	}
	if !unit(c.DecayRate) {
		return fmt.Errorf("DecayRate=%g: %w", c.DecayRate, ErrInvalidRate)
	}

	return nil
}

// unit reports x in [0,1]; NaN fails.
func unit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}

// Package config loads rholaw settings.
// Order: defaults -> YAML file -> environment variables -> CLI flags (the
// last step is applied by the command layer).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/rholaw/band"
	"github.com/katalvlaran/rholaw/internal/logging"
	"github.com/katalvlaran/rholaw/rho"
	"github.com/katalvlaran/rholaw/trustsim"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvLogLevel = "RHOLAW_LOG_LEVEL"
	EnvAxis     = "RHOLAW_AXIS"
)

// Config is the root configuration.
type Config struct {
	// Logging configures log output.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Evaluator configures rho evaluation.
	Evaluator EvaluatorConfig `json:"evaluator" yaml:"evaluator"`

	// Bands configures the band scale.
	Bands BandsConfig `json:"bands" yaml:"bands"`

	// Scenarios lists the simulation runs of `rholaw simulate`.
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level: "debug", "info", "warn" or "error". Default "info".
	Level string `json:"level" yaml:"level"`
}

// EvaluatorConfig mirrors the rho.Evaluator options.
type EvaluatorConfig struct {
	// Axis: "columns" (default) or "rows".
	Axis string `json:"axis" yaml:"axis"`
	// Critical is the rho value above which a state counts as critical.
	Critical float64 `json:"critical" yaml:"critical"`
}

// BandsConfig holds the four inclusive upper cuts of Green..Red.
type BandsConfig struct {
	Cuts []float64 `json:"cuts" yaml:"cuts"`
}

// Scenario is one named simulation configuration.
type Scenario struct {
	Name                string  `json:"name" yaml:"name"`
	N                   int     `json:"n" yaml:"n"`
	Steps               int     `json:"steps" yaml:"steps"`
	InteractionsPerStep int     `json:"interactions_per_step" yaml:"interactions_per_step"`
	PlunderProb         float64 `json:"plunder_prob" yaml:"plunder_prob"`
	GrowthRate          float64 `json:"growth_rate" yaml:"growth_rate"`
	DecayRate           float64 `json:"decay_rate" yaml:"decay_rate"`
	// Seed is optional; when absent the run uses a time-derived seed.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// SimConfig converts the scenario to a trustsim.Config.
func (s Scenario) SimConfig() trustsim.Config {
	return trustsim.Config{
		N:                   s.N,
		Steps:               s.Steps,
		InteractionsPerStep: s.InteractionsPerStep,
		PlunderProb:         s.PlunderProb,
		GrowthRate:          s.GrowthRate,
		DecayRate:           s.DecayRate,
		Seed:                s.Seed,
	}
}

// ScenarioFrom names a trustsim.Config.
func ScenarioFrom(name string, c trustsim.Config) Scenario {
	return Scenario{
		Name:                name,
		N:                   c.N,
		Steps:               c.Steps,
		InteractionsPerStep: c.InteractionsPerStep,
		PlunderProb:         c.PlunderProb,
		GrowthRate:          c.GrowthRate,
		DecayRate:           c.DecayRate,
		Seed:                c.Seed,
	}
}

// Default returns the built-in configuration: info logging, column
// authority, the graph band scale and the low/medium/high plunder
// scenarios on the reference population.
func Default() *Config {
	scale := band.GraphScale()
	scenarios := make([]Scenario, 0, 3)
	for _, sc := range []struct {
		name string
		p    float64
	}{{"low", 0.01}, {"medium", 0.05}, {"high", 0.15}} {
		cfg := trustsim.DefaultConfig()
		cfg.PlunderProb = sc.p
		scenarios = append(scenarios, ScenarioFrom(sc.name, cfg))
	}

	return &Config{
		Logging:   LoggingConfig{Level: "info"},
		Evaluator: EvaluatorConfig{Axis: rho.Columns.String(), Critical: rho.CriticalRho},
		Bands:     BandsConfig{Cuts: scale[:]},
		Scenarios: scenarios,
	}
}

// Load returns the defaults, overlaid with the YAML file at path (skipped
// when path is empty) and then with environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file. Keys absent from the
// file keep their default values; a scenarios list replaces the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvAxis); v != "" {
		cfg.Evaluator.Axis = v
	}
}

// Validate checks the log level, the evaluator settings, the band cuts and
// every scenario. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level))
	}
	if _, err := rho.ParseAxis(c.Evaluator.Axis); err != nil {
		errs = append(errs, fmt.Errorf("evaluator.axis: %w", err))
	}
	if !(c.Evaluator.Critical >= 0 && c.Evaluator.Critical <= 1) {
		errs = append(errs, fmt.Errorf("evaluator.critical must be between 0 and 1, got %g", c.Evaluator.Critical))
	}
	if _, err := c.NewBander(); err != nil {
		errs = append(errs, fmt.Errorf("bands: %w", err))
	}

	seen := make(map[string]bool, len(c.Scenarios))
	for k, s := range c.Scenarios {
		if s.Name != "" {
			if seen[s.Name] {
				errs = append(errs, fmt.Errorf("scenario %q: duplicate name", s.Name))
			}
			seen[s.Name] = true
		}
		if err := s.SimConfig().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("scenario %d (%s): %w", k, s.Name, err))
		}
	}

	return errors.Join(errs...)
}

// NewEvaluator builds the rho.Evaluator described by the evaluator section.
func (c *Config) NewEvaluator() (*rho.Evaluator, error) {
	axis, err := rho.ParseAxis(c.Evaluator.Axis)
	if err != nil {
		return nil, err
	}
	if !(c.Evaluator.Critical >= 0 && c.Evaluator.Critical <= 1) {
		return nil, fmt.Errorf("evaluator.critical=%g out of [0,1]", c.Evaluator.Critical)
	}

	return rho.NewEvaluator(rho.WithAxis(axis), rho.WithCritical(c.Evaluator.Critical)), nil
}

// NewBander builds the band.Bander described by the bands section.
func (c *Config) NewBander() (*band.Bander, error) {
	var scale band.Scale
	if len(c.Bands.Cuts) != len(scale) {
		return nil, fmt.Errorf("want %d cuts, got %d: %w", len(scale), len(c.Bands.Cuts), band.ErrBadScale)
	}
	copy(scale[:], c.Bands.Cuts)

	return band.NewBander(scale)
}

// String renders the configuration as YAML.
func (c *Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}

	return strings.TrimRight(string(out), "\n")
}

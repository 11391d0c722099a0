package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"

	"github.com/google/uuid"
	"github.com/katalvlaran/rholaw/internal/config"
	"github.com/katalvlaran/rholaw/trustsim"
	"github.com/spf13/cobra"
)

// simFlags are the flags that replace the configured scenarios with a
// single ad-hoc run.
var simFlags = []string{"n", "steps", "interactions", "p-base", "growth", "decay", "seed"}

// simulateOutput is the JSON document printed by `simulate --json`.
type simulateOutput struct {
	RunID string        `json:"run_id"`
	Axis  string        `json:"axis"`
	Runs  []scenarioRun `json:"runs"`
}

type scenarioRun struct {
	Name      string              `json:"name"`
	Summary   trustsim.Summary    `json:"summary"`
	Snapshots []trustsim.Snapshot `json:"snapshots,omitempty"`
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the trust-formation simulation and report rho over time",
		Long: `Runs the configured scenarios (by default low, medium and high plunder
on 40 agents) in parallel and prints a summary per run.

Any of --n, --steps, --interactions, --p-base, --growth, --decay or
--seed replaces the scenario list with a single run built from the
reference configuration and those flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			scenarios := scenariosFromFlags(cmd, e.cfg)
			series, _ := cmd.Flags().GetBool("series")
			parallel, _ := cmd.Flags().GetInt("parallel")

			ev, err := e.cfg.NewEvaluator()
			if err != nil {
				return err
			}
			bander, err := e.cfg.NewBander()
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			log := e.log.With("run_id", runID)
			log.Info("simulate", "scenarios", len(scenarios), "axis", ev.Axis().String())

			cfgs := make([]trustsim.Config, len(scenarios))
			for k, s := range scenarios {
				cfgs[k] = s.SimConfig()
			}

			ctx, stop := signal.NotifyContext(withBackground(cmd.Context()), interruptSignals...)
			defer stop()
			results, err := trustsim.RunAll(ctx, cfgs, parallel,
				trustsim.WithEvaluator(ev),
				trustsim.WithBander(bander),
				trustsim.WithLogger(log),
			)
			if err != nil {
				return err
			}

			runs := make([]scenarioRun, len(results))
			for k, res := range results {
				runs[k] = scenarioRun{Name: scenarios[k].Name, Summary: res.Summary()}
				if series {
					runs[k].Snapshots = res.Snapshots
				}
			}

			if e.jsonOut {
				return json.NewEncoder(e.out).Encode(simulateOutput{RunID: runID, Axis: ev.Axis().String(), Runs: runs})
			}
			for _, r := range runs {
				fmt.Fprintf(e.out, "=== %s ===\n%s", r.Name, r.Summary)
				for _, s := range r.Snapshots {
					fmt.Fprintf(e.out, "  %4d  A=%.6f  D=%.6f  rho=%.6f  %s\n", s.Step, s.A, s.D, s.Rho, s.Band)
				}
			}

			return nil
		},
	}

	def := trustsim.DefaultConfig()
	cmd.Flags().Int("n", def.N, "Population size (>= 2)")
	cmd.Flags().Int("steps", def.Steps, "Number of steps")
	cmd.Flags().Int("interactions", def.InteractionsPerStep, "Interactions per step")
	cmd.Flags().Float64("p-base", def.PlunderProb, "Plunder probability per interaction")
	cmd.Flags().Float64("growth", def.GrowthRate, "Trust growth rate on voluntary exchange")
	cmd.Flags().Float64("decay", def.DecayRate, "Trust decay rate on plunder")
	cmd.Flags().Int64("seed", *def.Seed, "Random seed")
	cmd.Flags().String("axis", "columns", "Authority axis: columns or rows")
	cmd.Flags().Bool("series", false, "Print every snapshot, not just the summary")
	cmd.Flags().Int("parallel", 0, "Maximum concurrent runs (0 = unbounded)")

	return cmd
}

// scenariosFromFlags returns the configured scenarios, or a single "cli"
// scenario when any simulation flag was set explicitly.
func scenariosFromFlags(cmd *cobra.Command, cfg *config.Config) []config.Scenario {
	changed := false
	for _, name := range simFlags {
		if cmd.Flags().Changed(name) {
			changed = true
			break
		}
	}
	if !changed {
		return cfg.Scenarios
	}

	sim := trustsim.DefaultConfig()
	sim.N, _ = cmd.Flags().GetInt("n")
	sim.Steps, _ = cmd.Flags().GetInt("steps")
	sim.InteractionsPerStep, _ = cmd.Flags().GetInt("interactions")
	sim.PlunderProb, _ = cmd.Flags().GetFloat64("p-base")
	sim.GrowthRate, _ = cmd.Flags().GetFloat64("growth")
	sim.DecayRate, _ = cmd.Flags().GetFloat64("decay")
	seed, _ := cmd.Flags().GetInt64("seed")
	sim.Seed = trustsim.SeedPtr(seed)

	return []config.Scenario{config.ScenarioFrom("cli", sim)}
}

// withBackground guards against a nil command context when the command
// is driven without Execute.
func withBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}

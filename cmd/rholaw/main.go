package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/rholaw/internal/config"
	"github.com/katalvlaran/rholaw/internal/logging"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rholaw",
		Short: "Structural concentration (rho) of influence graphs",
		Long: `rholaw scores weighted influence graphs with rho = A^2 (1 - D),
where A is authority (share of the heaviest node) and D is diversity
(normalized column entropy), and runs the trust-formation simulation
that tracks rho over time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")

	rootCmd.AddCommand(
		newStarCmd(),
		newSimulateCmd(),
		newBandsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// env is what every command needs after flags, file and environment have
// been merged.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	jsonOut bool
	out     io.Writer
}

// setup loads the configuration, applies the global and --axis flags,
// validates the result and builds the logger.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if f := cmd.Flags().Lookup("axis"); f != nil && f.Changed {
		cfg.Evaluator.Axis = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	errOut := cmd.ErrOrStderr()

	return &env{
		cfg:     cfg,
		log:     logging.New(cfg.Logging.Level, errOut, !colorable(errOut)),
		jsonOut: jsonOut,
		out:     cmd.OutOrStdout(),
	}, nil
}

// colorable reports whether w is a terminal and NO_COLOR is unset.
func colorable(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

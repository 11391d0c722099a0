package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rholaw/builder"
	"github.com/katalvlaran/rholaw/internal/config"
	"github.com/katalvlaran/rholaw/rho"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
// Environment overrides are cleared so the host cannot leak into results.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvAxis, "")
	t.Setenv(config.EnvLogLevel, "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestNewCommands(t *testing.T) {
	require.Equal(t, "version", newVersionCmd().Use)
	require.Equal(t, "star", newStarCmd().Use)
	require.Equal(t, "simulate", newSimulateCmd().Use)
	require.Equal(t, "bands", newBandsCmd().Use)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "rholaw version "+version)

	out, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, version, got["version"])
}

type starDoc struct {
	N    int       `json:"n"`
	Axis string    `json:"axis"`
	Rows []starRow `json:"rows"`
}

func TestStar_DefaultSweep(t *testing.T) {
	out, _, err := execute(t, "star", "--json")
	require.NoError(t, err)

	var doc starDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, 10, doc.N)
	require.Equal(t, "columns", doc.Axis)
	require.Len(t, doc.Rows, len(builder.DemoPlunderGrid))
	require.Equal(t, 0.0, doc.Rows[0].P)
	require.InDelta(t, 0.1, doc.Rows[0].Authority, 1e-12)
	require.Equal(t, "green", doc.Rows[0].Band)
}

func TestStar_RowsCrossCritical(t *testing.T) {
	out, _, err := execute(t, "star", "--json", "--n", "50", "--p", "1", "--axis", "rows")
	require.NoError(t, err)

	var doc starDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, "rows", doc.Axis)
	require.Len(t, doc.Rows, 1)
	require.Greater(t, doc.Rows[0].Rho, rho.CriticalRho)
	require.True(t, doc.Rows[0].Critical)
	require.Equal(t, "black", doc.Rows[0].Band)
}

func TestStar_Text(t *testing.T) {
	out, _, err := execute(t, "star", "--p", "0.5")
	require.NoError(t, err)
	require.Contains(t, out, "star–plunder n=10 axis=columns")
	require.Contains(t, out, "0.50")
}

func TestStar_Errors(t *testing.T) {
	_, _, err := execute(t, "star", "--axis", "diagonal")
	require.ErrorIs(t, err, rho.ErrUnknownAxis)

	_, _, err = execute(t, "star", "--n", "1")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, _, err = execute(t, "star", "--p", "1.5")
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestBands(t *testing.T) {
	out, _, err := execute(t, "bands")
	require.NoError(t, err)
	require.Contains(t, out, "green   rho <= 0.1\n")
	require.Contains(t, out, "red     rho <= 0.7419\n")
	require.Contains(t, out, "black   rho > 0.7419\n")

	out, _, err = execute(t, "bands", "--json")
	require.NoError(t, err)
	var rows []bandRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 5)
	require.Nil(t, rows[4].Upper)
	require.Equal(t, 0.5, *rows[2].Upper)
}

func TestSimulate_FlagsReproducible(t *testing.T) {
	args := []string{"simulate", "--json", "--series", "--n", "6", "--steps", "4", "--interactions", "20", "--seed", "3"}

	first, stderr, err := execute(t, args...)
	require.NoError(t, err)
	require.Contains(t, stderr, "run_id=")

	var a, b simulateOutput
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.Len(t, a.Runs, 1)
	require.Equal(t, "cli", a.Runs[0].Name)
	require.Len(t, a.Runs[0].Snapshots, 5)
	require.Equal(t, int64(3), a.Runs[0].Summary.Seed)
	require.NotEmpty(t, a.RunID)

	second, _, err := execute(t, args...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	require.Equal(t, a.Runs[0].Snapshots, b.Runs[0].Snapshots)
	require.NotEqual(t, a.RunID, b.RunID)
}

func TestSimulate_ConfigScenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rholaw.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - {name: calm, n: 5, steps: 2, interactions_per_step: 10, plunder_prob: 0.0, growth_rate: 0.05, decay_rate: 0.2, seed: 1}
  - {name: raid, n: 5, steps: 2, interactions_per_step: 10, plunder_prob: 0.9, growth_rate: 0.05, decay_rate: 0.2, seed: 1}
`), 0o644))

	out, _, err := execute(t, "simulate", "--config", path, "--json", "--parallel", "1")
	require.NoError(t, err)

	var doc simulateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Runs, 2)
	require.Equal(t, "calm", doc.Runs[0].Name)
	require.Equal(t, "raid", doc.Runs[1].Name)
	require.Empty(t, doc.Runs[0].Snapshots)
	require.Equal(t, 0.9, doc.Runs[1].Summary.PlunderProb)
}

func TestSimulate_Text(t *testing.T) {
	out, _, err := execute(t, "simulate", "--steps", "2", "--n", "4", "--interactions", "5", "--series")
	require.NoError(t, err)
	require.Contains(t, out, "=== cli ===")
	require.Contains(t, out, "rho(final)")
	require.Contains(t, out, "     2  A=")
}

func TestSimulate_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "simulate", "--log-level", "loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

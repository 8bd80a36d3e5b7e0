package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/paygrid/config"
	"github.com/katalvlaran/paygrid/ids"
	"github.com/katalvlaran/paygrid/payoff"
	"github.com/katalvlaran/paygrid/transform"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paygrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	require.Equal(t, transform.DefaultIterations, cfg.Transform.Iterations)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
idScheme: sequence
transform:
  iterations: 7
  traversal: reverse-row-major
log:
  level: warn
  format: json
simulation:
  universes: 5
  seed: 3
`)
	t.Setenv("PAYGRID_TRANSFORM_ITERATIONS", "12")
	t.Setenv("PAYGRID_SIM_GENERATIONS", "4")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ids.SchemeSequence, cfg.IDScheme)
	require.Equal(t, 12, cfg.Transform.Iterations)
	require.Equal(t, "reverse-row-major", cfg.Transform.Traversal)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, config.FormatJSON, cfg.Log.Format)
	require.Equal(t, 5, cfg.Simulation.Universes)
	require.Equal(t, 4, cfg.Simulation.Generations)
	require.Equal(t, int64(3), cfg.Simulation.Seed)
	require.Equal(t, 4, cfg.Simulation.Civilizations, "untouched fields keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown_field", "colour: red\n"},
		{"bad_scheme", "idScheme: snowflake\n"},
		{"negative_iterations", "transform:\n  iterations: -1\n"},
		{"over_limit", "transform:\n  iterations: 50\n  maxIterations: 10\n"},
		{"bad_traversal", "transform:\n  traversal: column-major\n"},
		{"bad_level", "log:\n  level: loud\n"},
		{"bad_format", "log:\n  format: xml\n"},
		{"bad_simulation", "simulation:\n  civilizations: 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			require.Error(t, err)
		})
	}

	_, err := config.Load(writeFile(t, "idScheme: snowflake\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, ids.ErrUnknownScheme)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("PAYGRID_LOG_LEVEL", "debug")
	t.Setenv("PAYGRID_ID_SCHEME", "uuid")
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, ids.SchemeUUID, cfg.IDScheme)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"

	log, err := cfg.NewLogger(false)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = cfg.NewLogger(true)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewEngine(t *testing.T) {
	cfg := config.Default()
	cfg.IDScheme = ids.SchemeSequence
	cfg.Transform.Iterations = 1

	e, err := cfg.NewEngine(nil, nil)
	require.NoError(t, err)

	src, err := payoff.New("PD", []string{"A", "B"},
		[][]string{{"C", "D"}, {"C", "D"}},
		payoff.Grid{{{3, 3}, {0, 5}}, {{5, 0}, {1, 1}}},
		payoff.WithID("pd"))
	require.NoError(t, err)

	outs, err := e.Apply(transform.KindEvolutionary, src)
	require.NoError(t, err)
	require.Equal(t, "m0", outs[0].ID)
	require.Equal(t, []float64{1.1, 1.1}, outs[0].Payoffs[1][1])

	cfg.Transform.Traversal = "sideways"
	_, err = cfg.NewEngine(nil, nil)
	require.Error(t, err)
}

// Package config loads paygrid settings from a YAML file and PAYGRID_*
// environment variables, and builds the logger, id generator and engine they
// describe.
//
// Precedence: defaults < file < environment. A missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paygrid/ids"
	"github.com/katalvlaran/paygrid/lattice"
	"github.com/katalvlaran/paygrid/transform"
	"github.com/katalvlaran/paygrid/universe"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PAYGRID_"

// Log output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrInvalid marks a configuration that failed Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full paygrid configuration.
type Config struct {
	IDScheme   string          `yaml:"idScheme" env:"ID_SCHEME"`
	Transform  TransformConfig `yaml:"transform" envPrefix:"TRANSFORM_"`
	Log        LogConfig       `yaml:"log" envPrefix:"LOG_"`
	Simulation universe.Config `yaml:"simulation" envPrefix:"SIM_"`
}

// TransformConfig tunes the transform engine.
type TransformConfig struct {
	Iterations    int    `yaml:"iterations" env:"ITERATIONS"`
	MaxIterations int    `yaml:"maxIterations" env:"MAX_ITERATIONS"`
	Traversal     string `yaml:"traversal" env:"TRAVERSAL"`
}

// LogConfig selects the zap preset.
type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		IDScheme: ids.SchemeTime,
		Transform: TransformConfig{
			Iterations:    transform.DefaultIterations,
			MaxIterations: 10000,
			Traversal:     lattice.DefaultOrder.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
		Simulation: universe.DefaultConfig(),
	}
}

// Load reads path over the defaults, applies environment overrides, and
// validates the result. An empty path or a missing file yields the defaults
// plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			defer f.Close()
			dec := yaml.NewDecoder(f)
			dec.KnownFields(true)
			if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field; the first problem is returned wrapped in ErrInvalid.
func (c *Config) Validate() error {
	if _, err := ids.ByScheme(c.IDScheme); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Transform.Iterations < 0 || c.Transform.MaxIterations < 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, transform.ErrNegativeIterations)
	}
	if c.Transform.MaxIterations > 0 && c.Transform.Iterations > c.Transform.MaxIterations {
		return fmt.Errorf("%w: %w", ErrInvalid, transform.ErrIterationLimit)
	}
	if _, err := lattice.ParseOrder(c.Transform.Traversal); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	if c.Log.Format != FormatJSON && c.Log.Format != FormatConsole {
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	if err := c.Simulation.Validate(); err != nil {
		return fmt.Errorf("%w: simulation: %w", ErrInvalid, err)
	}
	return nil
}

// NewLogger builds a zap logger: the production preset for JSON output, the
// development preset for console output. verbose forces debug level.
func (c *Config) NewLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Format == FormatConsole {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// IDGenerator returns the generator named by IDScheme.
func (c *Config) IDGenerator() (ids.Generator, error) {
	return ids.ByScheme(c.IDScheme)
}

// NewEngine builds a transform engine from the Transform section. A nil g
// selects the generator named by IDScheme; a nil log selects zap.NewNop.
func (c *Config) NewEngine(log *zap.Logger, g ids.Generator) (*transform.Engine, error) {
	if g == nil {
		var err error
		if g, err = c.IDGenerator(); err != nil {
			return nil, err
		}
	}
	order, err := lattice.ParseOrder(c.Transform.Traversal)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return transform.NewEngine(
		transform.WithIDGenerator(g),
		transform.WithLogger(log),
		transform.WithTraversal(order),
		transform.WithIterations(c.Transform.Iterations),
		transform.WithMaxIterations(c.Transform.MaxIterations),
	), nil
}

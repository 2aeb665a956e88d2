// Package config loads the YAML run configuration of the tilewave CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tilewave/generator"
	"github.com/katalvlaran/tilewave/store"
	"github.com/katalvlaran/tilewave/wfc"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level run configuration.
type Config struct {
	Seed        int64   `yaml:"seed"`
	MaxAttempts int     `yaml:"max_attempts"`
	Noise       float64 `yaml:"noise"`

	// Topology is a built-in name (pentakis, bipyramid-N) or a YAML file.
	Topology string `yaml:"topology"`

	// Catalog is a built-in name (default, patchwork) or a YAML file; empty
	// selects the default catalog.
	Catalog string `yaml:"catalog"`

	Store Store `yaml:"store"`
	Log   Log   `yaml:"log"`
}

// Store selects where snapshots are kept.
type Store struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Seed:        1,
		MaxAttempts: generator.DefaultMaxAttempts,
		Noise:       wfc.NoiseRange,
		Topology:    "pentakis",
		Store:       Store{Path: "./data"},
		Log:         Log{Level: "info", Format: "text"},
	}
}

// Load reads path over Default() and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be >= 1, got %d", ErrInvalidConfig, c.MaxAttempts)
	case c.Noise < 0 || c.Noise >= 1:
		return fmt.Errorf("%w: noise must be in [0,1), got %g", ErrInvalidConfig, c.Noise)
	case c.Topology == "":
		return fmt.Errorf("%w: topology is empty", ErrInvalidConfig)
	case !c.Store.InMemory && c.Store.Path == "":
		return fmt.Errorf("%w: store.path is empty", ErrInvalidConfig)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// StoreConfig maps the store section onto store.Config.
func (c Config) StoreConfig(logger *slog.Logger) store.Config {
	var sc store.Config
	if c.Store.InMemory {
		sc = store.InMemoryConfig()
	} else {
		sc = store.DefaultConfig()
		sc.Path = c.Store.Path
	}
	sc.Logger = logger
	return sc
}

// GeneratorOptions maps the solver fields onto generator options.
func (c Config) GeneratorOptions(logger *slog.Logger) []generator.Option {
	return []generator.Option{
		generator.WithSeed(c.Seed),
		generator.WithMaxAttempts(c.MaxAttempts),
		generator.WithNoise(c.Noise),
		generator.WithLogger(logger),
	}
}

// Logger builds a slog.Logger writing to w.
func (l Log) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, s)
	}
	return level, nil
}

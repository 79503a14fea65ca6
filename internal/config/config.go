// Package config loads lineup CLI configuration from an optional YAML file
// with LINEUP_* environment-variable overrides. Command-line flags are
// applied on top by cmd/lineup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lineup/lineup"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level CLI configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Roster  RosterConfig  `yaml:"roster"`
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
}

// SearchConfig controls lineup length and search budgets.
type SearchConfig struct {
	LineupLen int    `yaml:"lineupLen"`
	Bound     string `yaml:"bound"`
	LeafLimit uint64 `yaml:"leafLimit"`
}

// RosterConfig selects the roster source: a YAML file, a synthetic roster,
// or (both empty) the built-in 20-man sample.
type RosterConfig struct {
	Path   string       `yaml:"path"`
	Random RandomConfig `yaml:"random"`
}

// RandomConfig describes a synthetic roster; Left+Right == 0 disables it.
type RandomConfig struct {
	Left  int   `yaml:"left"`
	Right int   `yaml:"right"`
	Seed  int64 `yaml:"seed"`
}

// Enabled reports whether a synthetic roster was requested.
func (r RandomConfig) Enabled() bool { return r.Left+r.Right > 0 }

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ReportConfig controls console rendering.
type ReportConfig struct {
	// Color is auto, always or never.
	Color string `yaml:"color"`
}

// Load reads a YAML config file (if provided) and applies environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in configuration: a nine-man lineup searched
// with the remaining-score bound, text logs at info level, auto color.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			LineupLen: 9,
			Bound:     lineup.RemainingBound.String(),
			LeafLimit: 0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Report: ReportConfig{
			Color: "auto",
		},
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Search.LineupLen < 0 {
		return fmt.Errorf("%w: search.lineupLen must be non-negative, got %d", ErrInvalidConfig, c.Search.LineupLen)
	}
	if _, err := lineup.ParseBound(c.Search.Bound); err != nil {
		return fmt.Errorf("%w: search.bound: %w", ErrInvalidConfig, err)
	}
	if c.Roster.Random.Left < 0 || c.Roster.Random.Right < 0 {
		return fmt.Errorf("%w: roster.random counts must be non-negative", ErrInvalidConfig)
	}
	if c.Roster.Path != "" && c.Roster.Random.Enabled() {
		return fmt.Errorf("%w: roster.path and roster.random are mutually exclusive", ErrInvalidConfig)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	switch c.Report.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: report.color %q", ErrInvalidConfig, c.Report.Color)
	}

	return nil
}

// applyEnvOverrides reads LINEUP_* environment variables and overrides the
// corresponding fields. Malformed numbers are reported, not ignored.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LINEUP_LEN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: LINEUP_LEN=%q: %w", ErrInvalidConfig, v, err)
		}
		cfg.Search.LineupLen = n
	}
	if v := os.Getenv("LINEUP_BOUND"); v != "" {
		cfg.Search.Bound = v
	}
	if v := os.Getenv("LINEUP_LEAF_LIMIT"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: LINEUP_LEAF_LIMIT=%q: %w", ErrInvalidConfig, v, err)
		}
		cfg.Search.LeafLimit = n
	}
	if v := os.Getenv("LINEUP_ROSTER"); v != "" {
		cfg.Roster.Path = v
	}
	if v := os.Getenv("LINEUP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LINEUP_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("LINEUP_COLOR"); v != "" {
		cfg.Report.Color = v
	}

	return nil
}

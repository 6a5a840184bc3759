// Package config loads the solver configuration from YAML.
//
// A file only needs the keys it changes; everything else keeps Default():
//
//	search:
//	  maxExpansions: 0      # 0 = unlimited
//	  visitedHint: 65536
//	  trace: false
//	  heuristic: true       # false = uniform-cost search
//	batch:
//	  workers: 4
//	puzzle:
//	  unfold: false
//	log:
//	  level: info           # debug, info, warn, error
//	  format: text          # text, json
//	metrics:
//	  enabled: false
//	  namespace: amphipod
//	  listen: ""            # e.g. ":9090" serves /metrics
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration structure.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Batch   BatchConfig   `yaml:"batch"`
	Puzzle  PuzzleConfig  `yaml:"puzzle"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SearchConfig configures every search engine the program builds.
type SearchConfig struct {
	MaxExpansions int  `yaml:"maxExpansions"` // 0 = unlimited
	VisitedHint   int  `yaml:"visitedHint"`
	Trace         bool `yaml:"trace"`
	Heuristic     bool `yaml:"heuristic"`
}

// BatchConfig configures the concurrent runner.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// PuzzleConfig configures how input diagrams are read.
type PuzzleConfig struct {
	Unfold bool `yaml:"unfold"` // also solve the four-deep variant
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Listen    string `yaml:"listen"` // host:port for /metrics; empty disables the endpoint
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Search: SearchConfig{
			VisitedHint: 1 << 16,
			Heuristic:   true,
		},
		Batch: BatchConfig{
			Workers: runtime.GOMAXPROCS(0),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: "amphipod",
		},
	}
}

// Load reads a YAML file over Default() and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes over Default() and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first value outside its allowed range, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.Search.MaxExpansions < 0:
		return fmt.Errorf("%w: search.maxExpansions must be >= 0, got %d", ErrInvalid, c.Search.MaxExpansions)
	case c.Search.VisitedHint < 0:
		return fmt.Errorf("%w: search.visitedHint must be >= 0, got %d", ErrInvalid, c.Search.VisitedHint)
	case c.Batch.Workers < 1:
		return fmt.Errorf("%w: batch.workers must be >= 1, got %d", ErrInvalid, c.Batch.Workers)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("%w: metrics.namespace is required when metrics are enabled", ErrInvalid)
	}
	if c.Metrics.Listen != "" && !c.Metrics.Enabled {
		return fmt.Errorf("%w: metrics.listen set while metrics are disabled", ErrInvalid)
	}

	return nil
}

// Package config loads application configuration from a YAML file with
// environment-variable overrides and sensible defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Counter CounterConfig `yaml:"counter"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// CounterConfig controls the counting engine: worker parallelism and the
// I/O and merge strategies. Workers of 0 means one worker per CPU.
type CounterConfig struct {
	Workers       int    `yaml:"workers"`
	IOStrategy    string `yaml:"ioStrategy"`
	MergeStrategy string `yaml:"mergeStrategy"`
	Quiet         bool   `yaml:"quiet"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus scrape endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies
// environment-variable overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Counter: CounterConfig{
			Workers:       0,
			IOStrategy:    "mapped",
			MergeStrategy: "parallel",
			Quiet:         false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads CF_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CF_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Counter.Workers = n
		}
	}
	if v := os.Getenv("CF_IO_STRATEGY"); v != "" {
		cfg.Counter.IOStrategy = v
	}
	if v := os.Getenv("CF_MERGE_STRATEGY"); v != "" {
		cfg.Counter.MergeStrategy = v
	}
	if v := os.Getenv("CF_QUIET"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Counter.Quiet = b
		}
	}
	if v := os.Getenv("CF_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CF_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("CF_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("CF_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}

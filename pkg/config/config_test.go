package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Counter.Workers != 0 {
		t.Errorf("default workers = %d, want 0 (one per CPU)", cfg.Counter.Workers)
	}
	if cfg.Counter.IOStrategy != "mapped" {
		t.Errorf("default io strategy = %q, want mapped", cfg.Counter.IOStrategy)
	}
	if cfg.Counter.MergeStrategy != "parallel" {
		t.Errorf("default merge strategy = %q, want parallel", cfg.Counter.MergeStrategy)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("default logging = %+v", cfg.Logging)
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics enabled by default, want disabled")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codefreq.yaml")
	data := `
counter:
  workers: 8
  ioStrategy: buffered
  mergeStrategy: sequential
  quiet: true
logging:
  level: debug
metrics:
  enabled: true
  port: 9191
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Counter.Workers != 8 || cfg.Counter.IOStrategy != "buffered" ||
		cfg.Counter.MergeStrategy != "sequential" || !cfg.Counter.Quiet {
		t.Errorf("counter config = %+v", cfg.Counter)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q, want debug", cfg.Logging.Level)
	}
	// Format not set in the file keeps its default.
	if cfg.Logging.Format != "text" {
		t.Errorf("logging format = %q, want text", cfg.Logging.Format)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != 9191 {
		t.Errorf("metrics config = %+v", cfg.Metrics)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file returned nil error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CF_WORKERS", "3")
	t.Setenv("CF_IO_STRATEGY", "buffered")
	t.Setenv("CF_MERGE_STRATEGY", "sequential")
	t.Setenv("CF_QUIET", "true")
	t.Setenv("CF_LOGGING_LEVEL", "warn")
	t.Setenv("CF_METRICS_ENABLED", "true")
	t.Setenv("CF_METRICS_PORT", "9999")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Counter.Workers != 3 || cfg.Counter.IOStrategy != "buffered" ||
		cfg.Counter.MergeStrategy != "sequential" || !cfg.Counter.Quiet {
		t.Errorf("counter config = %+v", cfg.Counter)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging level = %q, want warn", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != 9999 {
		t.Errorf("metrics config = %+v", cfg.Metrics)
	}
}

// Package config loads the optional YAML configuration file shared by
// both binaries. CLI flags always take precedence over values loaded
// here; this file only supplies defaults for settings a user doesn't
// want to type on every invocation.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable that isn't part of the core spec: build
// progress cadence, initial posting-map sizing, REPL page size, and
// default log level.
type Config struct {
	LogLevel           string `yaml:"log_level"`
	PostingBucketHint  int    `yaml:"posting_bucket_hint"`
	ReportIntervalSecs int    `yaml:"report_interval_seconds"`
	ResultPageSize     int    `yaml:"result_page_size"`
}

// Default returns the configuration used when no --config file is
// given.
func Default() Config {
	return Config{
		LogLevel:           "info",
		PostingBucketHint:  100000,
		ReportIntervalSecs: 1,
		ResultPageSize:     10,
	}
}

// Load reads and parses a YAML config file, filling in defaults for
// any field the file doesn't set.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Package config provides configuration management for acorgdb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Data: dir
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Data.Datasets (per-invocation dataset selection)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use ACORGDB_ prefix with underscores for nesting:
//
//	ACORGDB_DATA_DIR=~/data/acorg
//	ACORGDB_LOG_LEVEL=info
//	ACORGDB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete acorgdb configuration.
type Config struct {
	// Data locates the datasets on the file system.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations such as the check command. Defaults to the number of
	// available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories
	// reside. It must be set by CLI during init, there is no default
	// value for it.
	HomeDir string
}

// DataConfig locates and selects datasets.
type DataConfig struct {
	// Dir is the data directory. Each dataset is a subdirectory
	// holding antigens.json, sera.json, and experiments.json; an
	// optional datasets.yaml at the root lists the datasets.
	// When empty, the CLI falls back to DataDir(HomeDir).
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Datasets names the datasets to load. Empty means all datasets
	// found in Dir. Runtime-only.
	Datasets []string `mapstructure:"datasets" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

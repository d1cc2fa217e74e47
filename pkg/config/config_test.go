package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/acorg/acorgdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "acorgdb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "acorgdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "acorgdb", "logs"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "acorgdb", "data"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}

	assert.Equal(t,
		filepath.Join(tempHome, ".config", "acorgdb", "config.yaml"),
		config.ConfigFilePath(tempHome))
	assert.Equal(t,
		filepath.Join("/data", "datasets.yaml"),
		config.DatasetsFilePath("/data"))
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Data defaults: the CLI fills Dir in at startup
		assert.Equal(t, "", cfg.Data.Dir)
		assert.Empty(t, cfg.Data.Datasets)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionDataDir(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid dir",
			input:    "/data/acorg",
			expected: "/data/acorg",
		},
		{
			name:     "trims whitespace",
			input:    "  /data/acorg  ",
			expected: "/data/acorg",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDataDir(tt.input)})
			assert.Equal(t, tt.expected, cfg.Data.Dir)
		})
	}
}

func TestOptionDataDatasets(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptDataDatasets([]string{"h5", "h5_mutants"})})
	assert.Equal(t, []string{"h5", "h5_mutants"}, cfg.Data.Datasets)

	// an empty selection keeps the previous value
	cfg.Update([]config.Option{config.OptDataDatasets(nil)})
	assert.Equal(t, []string{"h5", "h5_mutants"}, cfg.Data.Datasets)
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid level",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes case",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "rejects invalid level",
			input:    "loud",
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormat(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptLogFormat("text")})
	assert.Equal(t, "text", cfg.Log.Format)

	cfg.Update([]config.Option{config.OptLogFormat("xml")})
	assert.Equal(t, "text", cfg.Log.Format, "invalid format keeps previous")
}

func TestOptionLogDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptLogDestination("stderr")})
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{config.OptLogDestination("syslog")})
	assert.Equal(t, "stderr", cfg.Log.Destination,
		"invalid destination keeps previous")
}

func TestOptionJobsNumber(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptJobsNumber(4)})
	assert.Equal(t, 4, cfg.JobsNumber)

	cfg.Update([]config.Option{config.OptJobsNumber(0)})
	assert.Equal(t, 4, cfg.JobsNumber, "non-positive value keeps previous")
}

func TestOptionHomeDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/acorg")})
	assert.Equal(t, "/home/acorg", cfg.HomeDir)
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDataDir("/data/acorg"),
		config.OptLogLevel("debug"),
		config.OptLogFormat("text"),
		config.OptLogDestination("stdout"),
		config.OptJobsNumber(2),
		config.OptHomeDir("/home/acorg"),
		config.OptDataDatasets([]string{"h5"}),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, "/data/acorg", dst.Data.Dir)
	assert.Equal(t, "debug", dst.Log.Level)
	assert.Equal(t, "text", dst.Log.Format)
	assert.Equal(t, "stdout", dst.Log.Destination)
	assert.Equal(t, 2, dst.JobsNumber)

	// runtime-only fields do not travel through ToOptions
	assert.Equal(t, "", dst.HomeDir)
	assert.Empty(t, dst.Data.Datasets)
}

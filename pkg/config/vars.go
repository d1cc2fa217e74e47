package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "acorgdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/acorgdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/acorgdb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/acorgdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// DataDir returns the default data directory used when the config does
// not set one. Returns ~/.local/share/acorgdb/data by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "data")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/acorgdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatasetsFilePath returns the path of the optional datasets.yaml
// manifest inside a data directory.
func DatasetsFilePath(dataDir string) string {
	return filepath.Join(dataDir, "datasets.yaml")
}

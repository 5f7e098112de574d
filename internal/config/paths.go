package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigEnvVar overrides the config file location.
const ConfigEnvVar = "PATHSEARCH_CONFIG"

// configRelPath is the config file location relative to an XDG config dir.
var configRelPath = filepath.Join("pathsearch", "config.yaml")

// FindConfigFile returns the config file to load.
// Priority order:
//  1. PATHSEARCH_CONFIG environment variable (if set)
//  2. The first pathsearch/config.yaml found in the XDG config directories
//
// Returns "" when there is no config file; defaults apply in that case.
func FindConfigFile() string {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path
	}

	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return ""
	}
	return path
}

// LoadDefault loads the config file found by FindConfigFile, or the defaults.
func LoadDefault() (*Config, error) {
	path := FindConfigFile()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// DefaultConfigPath is where a user config file is expected under XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, configRelPath)
}

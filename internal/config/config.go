package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode controls when result lines are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrInvalidColorMode is returned for color values other than auto, always or never.
var ErrInvalidColorMode = errors.New("invalid color mode")

// ParseColorMode parses a color mode name (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("%w %q, use 'auto', 'always', or 'never'", ErrInvalidColorMode, s)
	}
}

// Config represents pathsearch configuration options
type Config struct {
	// PathVar names the environment variable holding the directory list
	PathVar string `yaml:"path_var"`

	// Color controls colored output (auto, always, never)
	Color ColorMode `yaml:"color"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Sort orders substring results by similarity to the pattern
	Sort bool `yaml:"sort"`

	// Executable restricts results to runnable entries
	Executable bool `yaml:"executable"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		PathVar:    "PATH",
		Color:      ColorAuto,
		LogLevel:   "info",
		Sort:       false,
		Executable: false,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell "absent" apart from an explicit false
	type yamlConfig struct {
		PathVar    string `yaml:"path_var"`
		Color      string `yaml:"color"`
		LogLevel   string `yaml:"log_level"`
		Sort       *bool  `yaml:"sort"`
		Executable *bool  `yaml:"executable"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.PathVar != "" {
		cfg.PathVar = yamlCfg.PathVar
	}
	if yamlCfg.Color != "" {
		mode, err := ParseColorMode(yamlCfg.Color)
		if err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.Color = mode
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.LogLevel)
	}
	if yamlCfg.Sort != nil {
		cfg.Sort = *yamlCfg.Sort
	}
	if yamlCfg.Executable != nil {
		cfg.Executable = *yamlCfg.Executable
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(pathVar *string, color *ColorMode, logLevel *string, sort *bool, executable *bool) {
	if pathVar != nil {
		c.PathVar = *pathVar
	}
	if color != nil {
		c.Color = *color
	}
	if logLevel != nil {
		c.LogLevel = strings.ToLower(*logLevel)
	}
	if sort != nil {
		c.Sort = *sort
	}
	if executable != nil {
		c.Executable = *executable
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PathVar) == "" {
		return fmt.Errorf("path_var cannot be empty")
	}

	if _, err := ParseColorMode(string(c.Color)); err != nil {
		return err
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}

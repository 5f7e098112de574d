package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestFindConfigFileEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(ConfigEnvVar, want)

	if got := FindConfigFile(); got != want {
		t.Errorf("FindConfigFile() = %q, want %q", got, want)
	}
}

func TestLoadDefaultWithEnvOverride(t *testing.T) {
	t.Setenv(ConfigEnvVar, writeConfig(t, "color: always\n"))

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	if cfg.Color != ColorAlways {
		t.Errorf("Color = %q, want always", cfg.Color)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	got := DefaultConfigPath()
	if !strings.HasSuffix(got, filepath.Join("pathsearch", "config.yaml")) {
		t.Errorf("DefaultConfigPath() = %q", got)
	}
}

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/pathsearch/internal/config"
	"github.com/harrison/pathsearch/internal/filter"
	"github.com/harrison/pathsearch/internal/logger"
)

func TestSearchDirect(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"file1.txt", "test-example.txt", "examlpe.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	opts := &config.Options{
		Dirs:    []string{dir},
		Pattern: "",
		Mode:    filter.ModeMatchAll,
		Sort:    true,
	}

	var out bytes.Buffer
	if err := Search(opts, &out, logger.NewNoOpLogger()); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got := len(lines(out.String())); got != 3 {
		t.Errorf("expected 3 lines, got %d: %q", got, out.String())
	}
}

func TestSearchInvalidPattern(t *testing.T) {
	opts := &config.Options{
		Dirs:    []string{t.TempDir()},
		Pattern: "[",
		Mode:    filter.ModeRegex,
	}

	err := Search(opts, &bytes.Buffer{}, logger.NewNoOpLogger())

	var perr *filter.PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *filter.PatternError, got %v", err)
	}
	if perr.Pattern != "[" {
		t.Errorf("Pattern = %q, want %q", perr.Pattern, "[")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestSearchWriteError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tool"), nil, 0o755); err != nil {
		t.Fatal(err)
	}

	opts := &config.Options{Dirs: []string{dir}, Mode: filter.ModeMatchAll}

	if err := Search(opts, failingWriter{}, logger.NewNoOpLogger()); err == nil {
		t.Fatal("expected write error")
	}
}

package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/harrison/pathsearch/internal/filter"
	"github.com/harrison/pathsearch/internal/models"
)

// DirLister lists the entries of a single directory.
type DirLister interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
}

// Logger receives scan diagnostics.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// OSLister lists directories on the local filesystem in the order the
// filesystem returns them. Unlike os.ReadDir it does not sort.
type OSLister struct{}

// ReadDir returns the entries of dir. On a partial listing both the entries
// read so far and the error are returned.
func (OSLister) ReadDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// ExecutableOnly drops entries that IsRunnableMode rejects
	ExecutableOnly bool

	// Lister lists directories (default: OSLister)
	Lister DirLister

	// Logger receives diagnostics (default: discard)
	Logger Logger
}

// Scanner walks an ordered directory list and reports matching entries.
type Scanner struct {
	filter *filter.Filter
	opts   ScanOptions
}

// NewScanner creates a Scanner applying f to every entry name.
func NewScanner(f *filter.Filter, opts ScanOptions) *Scanner {
	if opts.Lister == nil {
		opts.Lister = OSLister{}
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger{}
	}
	return &Scanner{filter: f, opts: opts}
}

// Scan visits dirs in order and calls visit for every matching entry as soon
// as it passes all checks. Scanning stops at the first error returned by visit.
func (s *Scanner) Scan(dirs []string, visit func(models.MatchedEntry) error) error {
	for _, dir := range dirs {
		if err := s.scanDir(dir, visit); err != nil {
			return err
		}
	}
	return nil
}

// Collect scans dirs and returns all matches in scan order.
func (s *Scanner) Collect(dirs []string) []models.MatchedEntry {
	matches := make([]models.MatchedEntry, 0)
	// visit never fails here
	_ = s.Scan(dirs, func(e models.MatchedEntry) error {
		matches = append(matches, e)
		return nil
	})
	return matches
}

func (s *Scanner) scanDir(dir string, visit func(models.MatchedEntry) error) error {
	entries, err := s.opts.Lister.ReadDir(dir)
	if err != nil {
		s.opts.Logger.LogDebug(fmt.Sprintf("skipping directory %q: %v", dir, err))
		// A partial listing still yields the entries read before the error.
		if len(entries) == 0 {
			return nil
		}
	}

	for _, entry := range entries {
		name := entry.Name()

		outcome := s.filter.Match([]byte(name))
		if !outcome.Matched {
			continue
		}

		if s.opts.ExecutableOnly {
			info, err := entry.Info()
			if err != nil {
				s.opts.Logger.LogWarn(fmt.Sprintf("failed to read metadata for %s: %v", filepath.Join(dir, name), err))
				continue
			}
			if !IsRunnableMode(info.Mode()) {
				continue
			}
		}

		match := models.MatchedEntry{
			Dir:   dir,
			Name:  name,
			Range: outcome.Range,
		}
		if err := visit(match); err != nil {
			return err
		}
	}

	return nil
}

type discardLogger struct{}

func (discardLogger) LogDebug(string) {}
func (discardLogger) LogWarn(string)  {}

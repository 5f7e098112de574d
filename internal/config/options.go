package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/harrison/pathsearch/internal/filter"
)

var (
	// ErrNoDirectories is returned when the directory-list variable yields no directories.
	ErrNoDirectories = errors.New("no directories to search")

	// ErrConflictingModes is returned when both regex and fuzzy matching are requested.
	ErrConflictingModes = errors.New("--regex and --fuzzy cannot be used together")
)

// Options is the resolved, immutable input to a search. It is built once at
// startup; the scanner and renderer never consult the environment themselves.
type Options struct {
	// Dirs is the ordered directory list, duplicates preserved
	Dirs []string

	// Pattern is the query (empty for ModeMatchAll)
	Pattern string

	// Mode selects the filter variant
	Mode filter.Mode

	// Sort requests similarity ranking (only applied in substring mode)
	Sort bool

	// ExecutableOnly restricts results to runnable entries
	ExecutableOnly bool

	// Color enables highlighted output
	Color bool
}

// SortApplies reports whether similarity ranking takes effect for these options.
func (o *Options) SortApplies() bool {
	return o.Sort && o.Mode == filter.ModeSubstring
}

// Request carries the raw inputs Options are resolved from.
type Request struct {
	// DirList is the raw value of the directory-list variable
	DirList string

	// Pattern is the positional pattern; nil when none was given
	Pattern *string

	Regex bool
	Fuzzy bool

	// IsTerminal reports whether the result stream is a color-capable terminal
	IsTerminal bool
}

// Resolve combines the configuration with the request into Options.
func (c *Config) Resolve(req Request) (*Options, error) {
	mode, err := ResolveMode(req.Pattern != nil, req.Regex, req.Fuzzy)
	if err != nil {
		return nil, err
	}

	dirs := SplitDirList(req.DirList)
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: $%s is empty or unset", ErrNoDirectories, c.PathVar)
	}

	opts := &Options{
		Dirs:           dirs,
		Mode:           mode,
		Sort:           c.Sort,
		ExecutableOnly: c.Executable,
		Color:          ResolveColor(c.Color, req.IsTerminal),
	}
	if req.Pattern != nil {
		opts.Pattern = *req.Pattern
	}

	return opts, nil
}

// SplitDirList splits a directory-list value on the OS list separator.
// Order and duplicates are preserved; an empty value yields an empty list.
func SplitDirList(value string) []string {
	dirs := filepath.SplitList(value)
	if dirs == nil {
		return []string{}
	}
	return dirs
}

// ResolveMode picks the search mode. Without a pattern every name matches,
// whatever flags were given.
func ResolveMode(hasPattern, regex, fuzzy bool) (filter.Mode, error) {
	if regex && fuzzy {
		return filter.ModeMatchAll, ErrConflictingModes
	}

	switch {
	case !hasPattern:
		return filter.ModeMatchAll, nil
	case regex:
		return filter.ModeRegex, nil
	case fuzzy:
		return filter.ModeFuzzy, nil
	default:
		return filter.ModeSubstring, nil
	}
}

// ResolveColor decides whether output is colored.
func ResolveColor(mode ColorMode, isTerminal bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

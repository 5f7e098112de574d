package models

import (
	"path/filepath"

	"github.com/harrison/pathsearch/internal/filter"
)

// MatchedEntry is a directory entry whose name passed the active filter.
// Entries are created by the scanner and only ever reordered afterwards.
type MatchedEntry struct {
	// Dir is the search directory exactly as it appeared in the directory list
	Dir string

	// Name is the raw filename as returned by the directory listing
	Name string

	// Range is the part of Name attributed to the match
	Range filter.MatchRange
}

// Path joins Dir and Name with the OS path separator without cleaning either part.
func (e MatchedEntry) Path() string {
	return e.Dir + string(filepath.Separator) + e.Name
}

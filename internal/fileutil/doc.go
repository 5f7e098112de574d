// Package fileutil scans the search directories for entries whose names pass
// a filter.
//
// # Purpose
//
// The fileutil package is designed for:
//   - Listing each directory of the directory list, in list order
//   - Applying a filter.Filter to every entry name
//   - Restricting results to runnable entries when requested
//   - Error-tolerant scanning that never aborts on a bad directory or entry
//
// # Ordering
//
// Directories are visited in the order they appear in the list, duplicates
// included. Within a directory, entries are reported in the order the
// filesystem returns them; nothing is sorted. The scan is not recursive.
//
// # Error Handling
//
//   - A directory that cannot be opened or listed is skipped. It is logged at
//     debug level only, since stale PATH entries are common.
//   - An entry whose metadata cannot be read is reported at warn level with
//     its full path and skipped.
//   - The only error Scan returns is one produced by the visit callback, for
//     example a failed write to the output stream.
//
// # Usage
//
//	f, _ := filter.New(filter.ModeSubstring, "grep")
//	s := fileutil.NewScanner(f, fileutil.ScanOptions{ExecutableOnly: true})
//	err := s.Scan(dirs, func(e models.MatchedEntry) error {
//	    fmt.Println(e.Path())
//	    return nil
//	})
//
// # Executable Check
//
// IsRunnable reports whether an entry could be run: any execute bit set, and
// the entry is a regular file or a symbolic link. Directories are excluded
// even when their mode carries execute bits.
package fileutil

// Package filter decides whether a filename matches the search query and,
// when it does, which bytes of the name the match covers.
//
// A Filter is a closed set of variants (MatchAll, Substring, Regex, Fuzzy)
// selected once from the resolved search mode. Every variant works on the raw
// filename bytes, so names that are not valid UTF-8 never cause a failure and
// the reported ranges are always byte offsets.
package filter

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/sahilm/fuzzy"
)

// Mode selects which Filter variant is built.
type Mode int

const (
	// ModeMatchAll matches every name. Used when no pattern is supplied.
	ModeMatchAll Mode = iota
	// ModeSubstring is a case-sensitive, byte-exact substring search.
	ModeSubstring
	// ModeRegex matches names against a compiled regular expression.
	ModeRegex
	// ModeFuzzy matches names approximately and never reports a span.
	ModeFuzzy
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMatchAll:
		return "all"
	case ModeSubstring:
		return "substring"
	case ModeRegex:
		return "regex"
	case ModeFuzzy:
		return "fuzzy"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MatchRange describes where a pattern matched inside a name.
// The zero value is NoHighlight.
type MatchRange struct {
	// Start and End are half-open byte offsets into the name.
	// Only meaningful when HasSpan is true.
	Start int
	End   int

	hasSpan bool
}

// NoHighlight is a range for names that matched without a specific sub-range.
func NoHighlight() MatchRange {
	return MatchRange{}
}

// Span returns a range covering bytes [start, end).
func Span(start, end int) MatchRange {
	return MatchRange{Start: start, End: end, hasSpan: true}
}

// HasSpan reports whether the range carries byte offsets to highlight.
func (r MatchRange) HasSpan() bool {
	return r.hasSpan
}

func (r MatchRange) String() string {
	if !r.hasSpan {
		return "none"
	}
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Outcome is the result of filtering a single name.
type Outcome struct {
	Matched bool
	Range   MatchRange
}

// NoMatch is the outcome for names the filter rejects.
var NoMatch = Outcome{}

// Matched returns a successful outcome carrying r.
func Matched(r MatchRange) Outcome {
	return Outcome{Matched: true, Range: r}
}

// PatternError is returned when a regex pattern does not compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Filter matches filenames for one search mode. It is immutable after New
// and safe to share.
type Filter struct {
	mode    Mode
	pattern []byte
	query   string
	re      *regexp.Regexp
}

// New builds the Filter for mode. The pattern is ignored for ModeMatchAll.
// For ModeRegex the pattern is compiled once here; a pattern that does not
// compile yields a *PatternError.
func New(mode Mode, pattern string) (*Filter, error) {
	f := &Filter{
		mode:    mode,
		pattern: []byte(pattern),
		query:   pattern,
	}

	switch mode {
	case ModeMatchAll, ModeSubstring, ModeFuzzy:
	case ModeRegex:
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}
		f.re = re
	default:
		return nil, fmt.Errorf("unknown search mode %d", int(mode))
	}

	return f, nil
}

// MustNew is like New but panics on error. Intended for tests and constant patterns.
func MustNew(mode Mode, pattern string) *Filter {
	f, err := New(mode, pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Mode returns the variant this filter was built for.
func (f *Filter) Mode() Mode {
	return f.mode
}

// Pattern returns the query the filter was built from.
func (f *Filter) Pattern() string {
	return f.query
}

// Match filters a single name. Only the first (leftmost) match is reported.
func (f *Filter) Match(name []byte) Outcome {
	switch f.mode {
	case ModeMatchAll:
		return Matched(NoHighlight())

	case ModeSubstring:
		start := bytes.Index(name, f.pattern)
		if start < 0 {
			return NoMatch
		}
		return Matched(Span(start, start+len(f.pattern)))

	case ModeRegex:
		loc := f.re.FindIndex(name)
		if loc == nil {
			return NoMatch
		}
		return Matched(Span(loc[0], loc[1]))

	case ModeFuzzy:
		if f.query == "" {
			return Matched(NoHighlight())
		}
		// The matched characters are scattered, so there is no span to report.
		if len(fuzzy.Find(f.query, []string{string(name)})) == 0 {
			return NoMatch
		}
		return Matched(NoHighlight())
	}

	return NoMatch
}

// MatchString is a convenience wrapper around Match.
func (f *Filter) MatchString(name string) Outcome {
	return f.Match([]byte(name))
}

package filter

import (
	"errors"
	"regexp/syntax"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAll(t *testing.T) {
	f := MustNew(ModeMatchAll, "")

	for _, name := range []string{"anything", "", "\xff\xfe"} {
		assert.Equal(t, Matched(NoHighlight()), f.MatchString(name), "name %q", name)
	}
}

func TestMatchAllIgnoresPattern(t *testing.T) {
	f := MustNew(ModeMatchAll, "(")
	assert.Equal(t, Matched(NoHighlight()), f.MatchString("ls"))
}

func TestSubstring(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		filename string
		want     Outcome
	}{
		{"no match", "abc", "def", NoMatch},
		{"match in middle", "abc", "xyzabc123", Matched(Span(3, 6))},
		{"first occurrence only", "abc", "xyzabc123abc", Matched(Span(3, 6))},
		{"empty filename", "abc", "", NoMatch},
		{"match at start", "abc", "abcdef", Matched(Span(0, 3))},
		{"match at end", "abc", "defabc", Matched(Span(3, 6))},
		{"exact match", "abc", "abc", Matched(Span(0, 3))},
		{"pattern longer than filename", "abcdef", "abc", NoMatch},
		{"case sensitive", "abc", "ABC", NoMatch},
		{"empty pattern matches at start", "", "ls", Matched(Span(0, 0))},
		{"multi-byte name uses byte offsets", "fé", "café", Matched(Span(2, 5))},
		{"invalid utf-8 name", "ls", "\xffls", Matched(Span(1, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := MustNew(ModeSubstring, tt.pattern)
			got := f.MatchString(tt.filename)
			if got != tt.want {
				t.Errorf("Match(%q) with pattern %q = %+v, want %+v", tt.filename, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSubstringAgreesWithStringsIndex(t *testing.T) {
	names := []string{"grep", "egrep", "pgrep", "git-grep", "ls", "lsblk", "", "aaaa"}
	patterns := []string{"grep", "g", "ls", "a", "aa", "zzz", "lsblkx"}

	for _, p := range patterns {
		f := MustNew(ModeSubstring, p)
		for _, n := range names {
			got := f.MatchString(n)
			idx := strings.Index(n, p)
			if idx < 0 {
				assert.Equal(t, NoMatch, got, "pattern %q name %q", p, n)
				continue
			}
			require.True(t, got.Matched, "pattern %q name %q", p, n)
			assert.Equal(t, Span(idx, idx+len(p)), got.Range)
		}
	}
}

func TestRegex(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		filename string
		want     Outcome
	}{
		{"no match", `\d+`, "abc", NoMatch},
		{"match in middle", `\d+`, "abc123def", Matched(Span(3, 6))},
		{"first match only", `\d+`, "abc123def456", Matched(Span(3, 6))},
		{"empty filename", `\d+`, "", NoMatch},
		{"anchored start matches", `^foo`, "foobar", Matched(Span(0, 3))},
		{"anchored start rejects", `^foo`, "barfoo", NoMatch},
		{"anchored end matches", `bar$`, "foobar", Matched(Span(3, 6))},
		{"anchored end rejects", `bar$`, "barfoo", NoMatch},
		{"full match", `^foobar$`, "foobar", Matched(Span(0, 6))},
		{"full match rejects suffix", `^foobar$`, "foobar!", NoMatch},
		{"zero-length match", `a*`, "bbb", Matched(Span(0, 0))},
		{"leftmost-first alternation", `ab|abc`, "xabc", Matched(Span(1, 3))},
		{"invalid utf-8 name", `ls$`, "\xfe\xffls", Matched(Span(2, 4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(ModeRegex, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.MatchString(tt.filename))
		})
	}
}

func TestRegexInvalidPattern(t *testing.T) {
	f, err := New(ModeRegex, "(")
	require.Error(t, err)
	assert.Nil(t, f)

	var perr *PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "(", perr.Pattern)
	assert.Contains(t, err.Error(), `"("`)

	var serr *syntax.Error
	assert.True(t, errors.As(err, &serr), "underlying regexp error should be reachable")
}

func TestFuzzy(t *testing.T) {
	tests := []struct {
		pattern  string
		filename string
		matched  bool
	}{
		{"grp", "grep", true},
		{"grep", "grep", true},
		{"xyz", "grep", false},
		{"pe", "grep", false},
		{"", "anything", true},
	}

	for _, tt := range tests {
		f := MustNew(ModeFuzzy, tt.pattern)
		got := f.MatchString(tt.filename)
		assert.Equal(t, tt.matched, got.Matched, "pattern %q name %q", tt.pattern, tt.filename)
		if got.Matched {
			assert.False(t, got.Range.HasSpan(), "fuzzy matches never carry a span")
		}
	}
}

func TestUnknownMode(t *testing.T) {
	_, err := New(Mode(42), "x")
	assert.Error(t, err)
}

func TestMatchRange(t *testing.T) {
	assert.False(t, NoHighlight().HasSpan())
	assert.Equal(t, "none", NoHighlight().String())

	r := Span(2, 5)
	assert.True(t, r.HasSpan())
	assert.Equal(t, 2, r.Start)
	assert.Equal(t, 5, r.End)
	assert.Equal(t, "[2,5)", r.String())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "all", ModeMatchAll.String())
	assert.Equal(t, "substring", ModeSubstring.String())
	assert.Equal(t, "regex", ModeRegex.String())
	assert.Equal(t, "fuzzy", ModeFuzzy.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
}

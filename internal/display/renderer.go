package display

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/harrison/pathsearch/internal/filter"
	"github.com/harrison/pathsearch/internal/models"
)

// ANSI SGR sequences used for result lines.
const (
	ansiDim     = "\x1b[2m"
	ansiBoldRed = "\x1b[1;31m"
	ansiReset   = "\x1b[0m"
)

// Renderer writes one line per matched entry: directory, path separator,
// filename. With color enabled the directory is dimmed so the filenames stand
// out, and the matched bytes of the filename are shown in bold red.
type Renderer struct {
	dirStyle   string
	matchStyle string
	reset      string
}

// NewRenderer creates a Renderer. When color is false the output carries no
// escape sequences at all.
func NewRenderer(color bool) *Renderer {
	if !color {
		return &Renderer{}
	}
	return &Renderer{
		dirStyle:   ansiDim,
		matchStyle: ansiBoldRed,
		reset:      ansiReset,
	}
}

// Color reports whether the renderer emits escape sequences.
func (r *Renderer) Color() bool {
	return r.reset != ""
}

// Render writes e as a single line to w.
func (r *Renderer) Render(w io.Writer, e models.MatchedEntry) error {
	return r.RenderLine(w, e.Dir, e.Name, e.Range)
}

// RenderLine writes dir, the path separator and name to w, highlighting the
// bytes of name covered by rng. Slicing is by byte offset; the range is not
// checked against character boundaries.
func (r *Renderer) RenderLine(w io.Writer, dir, name string, rng filter.MatchRange) error {
	var b bytes.Buffer
	b.Grow(len(dir) + len(name) + 32)

	b.WriteString(r.dirStyle)
	b.WriteString(dir)
	b.WriteRune(filepath.Separator)
	b.WriteString(r.reset)

	if rng.HasSpan() && r.Color() {
		start, end := clampRange(rng, len(name))
		b.WriteString(name[:start])
		b.WriteString(r.matchStyle)
		b.WriteString(name[start:end])
		b.WriteString(r.reset)
		b.WriteString(name[end:])
	} else {
		b.WriteString(name)
	}

	// Always close with a reset, even if one was just written.
	b.WriteString(r.reset)
	b.WriteByte('\n')

	_, err := w.Write(b.Bytes())
	return err
}

// clampRange keeps rng inside [0, n] with start <= end.
func clampRange(rng filter.MatchRange, n int) (int, int) {
	start, end := rng.Start, rng.End
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}

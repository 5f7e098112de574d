package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string // Main warning title
	Message    string // Detailed explanation (optional)
	Suggestion string // Action to take (optional)
}

// Display writes the warning to out, in yellow when color is true.
func (w Warning) Display(out io.Writer, useColor bool) {
	var b strings.Builder

	b.WriteString("warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !useColor {
		fmt.Fprint(out, b.String())
		return
	}

	yellow := color.New(color.FgYellow)
	yellow.EnableColor()
	fmt.Fprint(out, yellow.Sprint(b.String()))
}

// WarnSortIgnored creates the warning shown when similarity sorting is
// requested in a mode where it has no meaning.
func WarnSortIgnored(mode string) Warning {
	return Warning{
		Title:      "--sort has no effect in " + mode + " mode",
		Message:    "Similarity ranking is only defined for plain substring patterns.",
		Suggestion: "Drop --regex/--fuzzy, or drop --sort.",
	}
}

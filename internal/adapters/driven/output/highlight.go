package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// Ensure HighlightWriter implements the interface.
var _ driven.LineWriter = (*HighlightWriter)(nil)

// MatchColour is the accent used for query occurrences.
const MatchColour = lipgloss.Color("#F38BA8")

// HighlightWriter writes lines with every occurrence of the query styled.
// Only escape sequences are added; the visible text is unchanged.
type HighlightWriter struct {
	w     io.Writer
	style lipgloss.Style
}

// NewHighlightWriter creates a highlighting writer for w.
// When force is true the ANSI256 profile is used even if w is not a
// terminal; otherwise the profile is detected from w.
func NewHighlightWriter(w io.Writer, force bool) *HighlightWriter {
	renderer := lipgloss.NewRenderer(w)
	if force {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	return &HighlightWriter{
		w: w,
		style: renderer.NewStyle().
			Bold(true).
			Foreground(MatchColour).
			TabWidth(lipgloss.NoTabConversion),
	}
}

// WriteLine writes line, styled, followed by a newline.
func (h *HighlightWriter) WriteLine(query string, line string) error {
	_, err := io.WriteString(h.w, h.Highlight(query, line)+"\n")
	return err
}

// Highlight returns line with each non-overlapping occurrence of query
// rendered in the match style. An empty query leaves the line unstyled.
func (h *HighlightWriter) Highlight(query, line string) string {
	if query == "" {
		return line
	}

	var b strings.Builder
	rest := line
	for {
		i := strings.Index(rest, query)
		if i < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		b.WriteString(h.style.Render(query))
		rest = rest[i+len(query):]
	}
	return b.String()
}

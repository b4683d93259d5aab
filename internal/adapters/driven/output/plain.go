package output

import (
	"io"

	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// Ensure PlainWriter implements the interface.
var _ driven.LineWriter = (*PlainWriter)(nil)

// PlainWriter writes each line followed by a newline.
type PlainWriter struct {
	w io.Writer
}

// NewPlainWriter creates a writer that prints lines to w unchanged.
func NewPlainWriter(w io.Writer) *PlainWriter {
	return &PlainWriter{w: w}
}

// WriteLine writes line and a trailing newline.
func (p *PlainWriter) WriteLine(_ string, line string) error {
	_, err := io.WriteString(p.w, line+"\n")
	return err
}

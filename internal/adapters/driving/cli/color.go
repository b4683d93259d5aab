package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/output"
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// newLineWriter selects the output writer for mode.
func newLineWriter(w io.Writer, mode string) (driven.LineWriter, error) {
	switch mode {
	case colorNever:
		return output.NewPlainWriter(w), nil
	case colorAlways:
		return output.NewHighlightWriter(w, true), nil
	case colorAuto:
		if isTerminal(w) {
			return output.NewHighlightWriter(w, false), nil
		}
		return output.NewPlainWriter(w), nil
	default:
		return nil, fmt.Errorf("%w %q (want %s, %s or %s)", domain.ErrInvalidColor, mode, colorAuto, colorAlways, colorNever)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

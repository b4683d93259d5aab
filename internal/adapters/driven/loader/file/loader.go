package file

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads documents from the local filesystem.
type Loader struct{}

// NewLoader creates a new filesystem loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path in full.
// Content that is not valid UTF-8 is rejected with domain.ErrInvalidEncoding.
func (l *Loader) Load(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// *fs.PathError; the runner attaches the path classification
		return domain.Document{}, err
	}

	if !utf8.Valid(data) {
		logger.Debug("Rejecting %s: invalid UTF-8", path)
		return domain.Document{}, &domain.IOError{Path: path, Err: domain.ErrInvalidEncoding}
	}

	return domain.Document{Path: path, Content: string(data)}, nil
}

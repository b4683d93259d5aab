package driven

import (
	"context"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// DocumentLoader reads a document in full.
type DocumentLoader interface {
	// Load returns the complete document at path.
	// A partially read document is never returned.
	Load(ctx context.Context, path string) (domain.Document, error)
}

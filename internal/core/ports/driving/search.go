package driving

import (
	"context"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// SearchService finds the lines of a text that contain a query.
type SearchService interface {
	// Search returns the trimmed lines of contents containing query,
	// in document order. The returned strings are views into contents.
	Search(query domain.Query, contents string) []string
}

// RunService performs one complete search run.
type RunService interface {
	// Run loads cfg.Filename, searches it for cfg.Query and emits each
	// match. On failure no match is emitted.
	Run(ctx context.Context, cfg domain.Config) error
}

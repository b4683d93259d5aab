package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure Runner implements the interface.
var _ driving.RunService = (*Runner)(nil)

// Runner loads a document, searches it and emits the matches.
type Runner struct {
	loader   driven.DocumentLoader
	searcher driving.SearchService
	out      driven.LineWriter
}

// NewRunner creates a new runner.
// If searcher is nil, a LineSearcher is used.
func NewRunner(loader driven.DocumentLoader, searcher driving.SearchService, out driven.LineWriter) *Runner {
	if searcher == nil {
		searcher = NewLineSearcher()
	}
	return &Runner{
		loader:   loader,
		searcher: searcher,
		out:      out,
	}
}

// Run performs one search run for cfg.
func (r *Runner) Run(ctx context.Context, cfg domain.Config) error {
	if r.loader == nil {
		return errors.New("document loader not configured")
	}
	if r.out == nil {
		return errors.New("line writer not configured")
	}

	logger.Section("Search")
	logger.Debug("Query: %q", cfg.Query)
	logger.Debug("File: %s", cfg.Filename)

	doc, err := r.loader.Load(ctx, cfg.Filename)
	if err != nil {
		var ioErr *domain.IOError
		if errors.As(err, &ioErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return &domain.IOError{Path: cfg.Filename, Err: err}
	}
	if logger.IsVerbose() {
		logger.Debug("Loaded %d bytes, %d lines", len(doc.Content), len(doc.Lines()))
	}

	matches := r.searcher.Search(cfg.Query, doc.Content)
	logger.Info("%d matching line(s)", len(matches))

	for _, line := range matches {
		if err := r.out.WriteLine(string(cfg.Query), line); err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
	}
	return nil
}

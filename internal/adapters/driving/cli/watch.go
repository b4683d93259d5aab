package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// watchSettle is how long the file must stay quiet before a re-run.
// A single save usually produces several events.
const watchSettle = 100 * time.Millisecond

// watchSeparator is printed before the output of each re-run.
const watchSeparator = "--"

// watch runs the search once, then again after every change to the file,
// until ctx is cancelled. The parent directory is watched so that saves
// which replace the file are seen. Runs never overlap.
func watch(ctx context.Context, runner driving.RunService, cfg domain.Config, w io.Writer) error {
	target, err := filepath.Abs(cfg.Filename)
	if err != nil {
		return &domain.IOError{Path: cfg.Filename, Err: err}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Subscribe before the first run so no change is missed in between.
	// A failed subscription is reported before any match is printed.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	if err := runner.Run(ctx, cfg); err != nil {
		return err
	}

	logger.Info("Watching %s", target)

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevant(event, target) {
				continue
			}
			logger.Debug("Change detected: %s", event)
			settle = time.After(watchSettle)

		case <-settle:
			settle = nil
			if _, err := fmt.Fprintln(w, watchSeparator); err != nil {
				return fmt.Errorf("failed to write separator: %w", err)
			}
			if err := runner.Run(ctx, cfg); err != nil {
				logger.Error("search failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// isRelevant reports whether event changes the content at target.
func isRelevant(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

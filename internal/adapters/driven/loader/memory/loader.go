// Package memory provides an in-memory implementation of driven.DocumentLoader.
// It is used in tests and by callers that already hold the text.
package memory

import (
	"context"
	"io/fs"
	"sync"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader serves documents from memory, keyed by path.
type Loader struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewLoader creates a new in-memory loader.
func NewLoader() *Loader {
	return &Loader{
		docs: make(map[string]string),
	}
}

// Put stores or replaces the content at path.
func (l *Loader) Put(path, content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.docs[path] = content
}

// Delete removes the content at path.
func (l *Loader) Delete(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.docs, path)
}

// Load returns the document stored at path.
// Unknown paths fail the way a missing file does.
func (l *Loader) Load(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	content, ok := l.docs[path]
	if !ok {
		return domain.Document{}, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return domain.Document{Path: path, Content: content}, nil
}

package services

import (
	"strings"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
)

// Ensure LineSearcher implements the interface.
var _ driving.SearchService = (*LineSearcher)(nil)

// LineSearcher performs case-sensitive substring search over lines.
// It holds no state; the zero value is ready to use.
type LineSearcher struct{}

// NewLineSearcher creates a new line searcher.
func NewLineSearcher() *LineSearcher {
	return &LineSearcher{}
}

// Search returns the lines of contents containing query.
func (s *LineSearcher) Search(query domain.Query, contents string) []string {
	return Search(string(query), contents)
}

// Search returns every line of contents that contains query, trimmed of
// surrounding whitespace, in document order. An empty query matches every
// line. Results are substrings of contents.
func Search(query, contents string) []string {
	results := []string{}
	for _, line := range domain.SplitLines(contents) {
		if strings.Contains(line, query) {
			results = append(results, strings.TrimSpace(line))
		}
	}
	return results
}

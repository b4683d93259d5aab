package domain

import "strings"

// Query is the substring searched for within each line.
// An empty Query matches every line.
type Query string

// Document is the full text content of a target file.
type Document struct {
	// Path is where the document was read from.
	Path string

	// Content is the raw text, read in full.
	Content string
}

// Lines splits the content on line boundaries.
// Each line is a substring of Content; nothing is copied.
func (d Document) Lines() []string {
	return SplitLines(d.Content)
}

// SplitLines splits s on "\n" and strips one trailing "\r" from each line.
// A terminating newline does not produce a trailing empty line, and an
// empty string has no lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(s, "\n")+1)
	for s != "" {
		var line string
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			line, s = s[:i], s[i+1:]
		} else {
			line, s = s, ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}

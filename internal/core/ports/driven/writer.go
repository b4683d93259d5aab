package driven

// LineWriter receives matched lines.
type LineWriter interface {
	// WriteLine emits one matched line. The query is passed so that
	// writers may decorate occurrences; the line text itself must not change.
	WriteLine(query string, line string) error
}

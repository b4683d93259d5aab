// Package output provides driven.LineWriter implementations that print
// matched lines, one per line, to an io.Writer.
//
// Writers:
//   - PlainWriter: the line as-is
//   - HighlightWriter: the line with every query occurrence styled
package output

// Package domain defines the core types for minigrep.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - Query: The substring searched for within each line
//   - Document: The full text of the target file
//   - Config: The query + file path pair driving one run
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

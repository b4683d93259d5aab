// Package cli provides the cobra command tree for minigrep.
//
// The root command takes a query and a filename, resolves them into a
// domain.Config and drives a services.Runner. Flags select colour output,
// verbose logging and watch mode.
package cli

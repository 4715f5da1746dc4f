// Package logging provides concrete implementations of the hivescript.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr (or any io.Writer) with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// Statements are written to stdout by the CLI; every logger writes diagnostics
// elsewhere so extracted output stays pipeable.
package logging

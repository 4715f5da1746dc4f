// Package filesystem abstracts where scripts, parameter files and exclusion
// files come from.
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for tests
package filesystem

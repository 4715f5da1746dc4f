// Package scanner discovers script files.
//
// A path naming a file is used as is. A directory is walked recursively and
// every file whose extension is one of hivescript.ScriptExtensions is
// returned. Hidden directories (leading dot) are skipped.
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// so tests run against an in-memory tree.
package scanner

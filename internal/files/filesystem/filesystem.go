package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File is one file found while walking a directory.
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the walked directory
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo
}

// Directory is a directory tree that can be walked to discover scripts.
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk calls fn for every file and directory below the root, root included,
	// in lexical order. Walking stops at the first error fn returns.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is the source of script text and parameter files.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

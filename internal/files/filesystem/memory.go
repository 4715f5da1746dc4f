package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a file or directory held by MemoryFileSystem
type memoryEntry struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// memoryFile is a memoryEntry seen from a walked directory
type memoryFile struct {
	entry   *memoryEntry
	relPath string
}

func (f *memoryFile) Path() string         { return f.entry.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.entry.info }

// memoryDirectory implements Directory for MemoryFileSystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

// Walk honours fs.SkipDir returned for a directory, like filepath.Walk.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	var skipPrefix string
	for _, entry := range entries {
		if skipPrefix != "" && strings.HasPrefix(entry.absPath, skipPrefix) {
			continue
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(entry.absPath, d.absPath), "/")
		if rel == "" {
			rel = "."
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()
			callbackErr = fn(&memoryFile{entry: entry, relPath: rel}, nil)
		}()

		if callbackErr == fs.SkipDir && entry.info.IsDir() {
			skipPrefix = entry.absPath + "/"
			continue
		}
		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// MemoryFileSystem implements FileSystemProvider in memory, for tests.
// Paths use forward slashes; relative paths resolve against the root.
type MemoryFileSystem struct {
	entries map[string]*memoryEntry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.addDir(root)
	return mfs
}

// AddFile adds a file, creating its parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.resolve(filePath)
	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}

	for dir := path.Dir(absPath); dir != "/" && dir != "."; dir = path.Dir(dir) {
		if _, exists := mfs.entries[dir]; exists {
			break
		}
		mfs.addDir(dir)
	}
}

func (mfs *MemoryFileSystem) addDir(dir string) {
	mfs.entries[dir] = &memoryEntry{
		absPath: dir,
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

// resolve turns p into a clean absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// entriesUnder returns basePath and everything below it.
func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryEntry {
	var result []*memoryEntry
	for p, entry := range mfs.entries {
		if p == basePath || strings.HasPrefix(p, strings.TrimSuffix(basePath, "/")+"/") {
			result = append(result, entry)
		}
	}
	return result
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, exists := mfs.entries[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return entry.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return entry.info, nil
}

package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vvka-141/hivescript/internal/files/filesystem"
	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// Scanner expands command-line paths into script files.
// Scanner is safe for concurrent use by multiple goroutines as long as the
// provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// ScanPath returns path itself when it names a file, whatever its extension.
// For a directory it returns every script file below it (see
// hivescript.ScriptExtensions) in walk order. Hidden directories are skipped.
func (s *Scanner) ScanPath(path string) ([]string, error) {
	info, err := s.fsProvider.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, hivescript.ErrScriptNotFound)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	dir, err := s.fsProvider.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	var scripts []string
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		if file.Info().IsDir() {
			if file.RelativePath() != "." && strings.HasPrefix(file.Info().Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if hivescript.IsScriptPath(file.Path()) {
			scripts = append(scripts, file.Path())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return scripts, nil
}

// ScanPaths expands every path in order. Duplicates are kept once, at their
// first position. An empty result wraps hivescript.ErrNoScripts.
func (s *Scanner) ScanPaths(paths []string) ([]string, error) {
	var result []string
	seen := make(map[string]bool)

	for _, p := range paths {
		scripts, err := s.ScanPath(p)
		if err != nil {
			return nil, err
		}
		for _, script := range scripts {
			if seen[script] {
				continue
			}
			seen[script] = true
			result = append(result, script)
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(paths, ", "), hivescript.ErrNoScripts)
	}
	return result, nil
}

// Verify Scanner implements the interface at compile time
var _ hivescript.ScriptScanner = (*Scanner)(nil)

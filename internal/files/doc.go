// Package files groups the file-related sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory)
//   - scanner: expands command-line paths into script files
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/hivescript/internal/files/filesystem"
//	    "github.com/vvka-141/hivescript/internal/files/scanner"
//	)
//
//	s := scanner.NewScannerWithFS(filesystem.NewOSFileSystem())
//	paths, err := s.ScanPaths([]string{"./scripts", "extra.hql"})
package files

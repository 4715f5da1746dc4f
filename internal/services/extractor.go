package services

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/vvka-141/hivescript/internal/checksum"
	"github.com/vvka-141/hivescript/internal/files/filesystem"
	"github.com/vvka-141/hivescript/internal/files/scanner"
	"github.com/vvka-141/hivescript/internal/identity"
	"github.com/vvka-141/hivescript/internal/preprocessor"
	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// Extractor implements hivescript.StatementExtractor over a FileSystemProvider.
// It is safe for concurrent use.
type Extractor struct {
	fsProvider filesystem.FileSystemProvider
	scanner    *scanner.Scanner
	pipeline   *preprocessor.Pipeline
	checksum   checksum.Calculator
	logger     hivescript.Logger
	workers    int
}

var _ hivescript.StatementExtractor = (*Extractor)(nil)

// NewExtractor creates an Extractor. opts configure the preprocessing pipeline
// (parameters, exclusions, directives).
//
// Panics on nil dependencies: these are programmer errors, not runtime conditions.
func NewExtractor(fsProvider filesystem.FileSystemProvider, logger hivescript.Logger, opts ...preprocessor.Option) *Extractor {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &Extractor{
		fsProvider: fsProvider,
		scanner:    scanner.NewScannerWithFS(fsProvider),
		pipeline:   preprocessor.NewPipeline(opts...),
		checksum:   checksum.New(),
		logger:     logger,
		workers:    runtime.GOMAXPROCS(0),
	}
}

// ExtractFile reads one script and extracts its statements.
func (e *Extractor) ExtractFile(path string) (hivescript.ScriptResult, error) {
	content, err := e.fsProvider.ReadFile(path)
	if err != nil {
		return hivescript.ScriptResult{}, fmt.Errorf("failed to read %s: %v: %w", path, err, hivescript.ErrScriptNotFound)
	}

	result := e.pipeline.Process(string(content))

	statements := make([]hivescript.Statement, len(result.Statements))
	for i, stmt := range result.Statements {
		statements[i] = hivescript.Statement{
			ID:        identity.StatementID(path, i, stmt.Text),
			Index:     i,
			Kind:      stmt.Kind,
			Text:      stmt.Text,
			StartLine: stmt.StartLine,
			EndLine:   stmt.EndLine,
		}
	}

	e.logger.Verbose("%s: %d statement(s), %d comment line(s), %d excluded line(s)",
		path, len(statements), result.CommentLines, result.ExcludedLines)
	if len(result.Unresolved) > 0 {
		e.logger.Verbose("%s: unresolved placeholders: %s", path, strings.Join(result.Unresolved, ", "))
	}

	return hivescript.ScriptResult{
		Path:               path,
		Checksum:           e.checksum.CalculateRaw(content),
		StatementsChecksum: e.checksum.CalculateStatements(result.Texts()),
		Statements:         statements,
		Unresolved:         result.Unresolved,
	}, nil
}

// ExtractAll expands paths into script files and extracts them concurrently.
// Results are returned in the order the scanner yields the files. The first
// failure in that order is returned; cancellation stops scripts not yet started.
func (e *Extractor) ExtractAll(ctx context.Context, paths []string) ([]hivescript.ScriptResult, error) {
	files, err := e.scanner.ScanPaths(paths)
	if err != nil {
		return nil, err
	}

	workers := e.workerCount(len(files))
	e.logger.Verbose("Extracting %d script(s) with %d worker(s)", len(files), workers)

	type job struct {
		idx  int
		path string
	}

	results := make([]hivescript.ScriptResult, len(files))
	errs := make([]error, len(files))
	jobs := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.idx], errs[j.idx] = e.ExtractFile(j.path)
			}
		}()
	}

	var cancelErr error
dispatch:
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			cancelErr = err
			break
		}
		select {
		case <-ctx.Done():
			cancelErr = ctx.Err()
			break dispatch
		case jobs <- job{idx: i, path: path}:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelErr != nil {
		return nil, fmt.Errorf("extraction cancelled: %w", cancelErr)
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func (e *Extractor) workerCount(files int) int {
	if e.workers < 1 {
		return 1
	}
	if files < e.workers {
		return max(files, 1)
	}
	return e.workers
}

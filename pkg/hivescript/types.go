package hivescript

import (
	"context"

	"github.com/google/uuid"
)

// StatementKind distinguishes statements closed by a terminator from
// line-oriented directives such as SET or ADD JAR.
type StatementKind string

const (
	// StatementGeneral is a statement closed by a terminator or end of input.
	StatementGeneral StatementKind = "general"

	// StatementDirective is a single-line command recognized by its leading keywords.
	StatementDirective StatementKind = "directive"
)

// Statement is one executable unit extracted from a script.
type Statement struct {
	// ID is a deterministic UUID v5 derived from the script path, position and text.
	ID uuid.UUID `json:"id"`

	// Index is the 0-based position of the statement in its script.
	Index int `json:"index"`

	Kind StatementKind `json:"kind"`

	// Text is the resolved statement without its terminator.
	Text string `json:"text"`

	// StartLine and EndLine are the 1-based physical lines that contributed text.
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
}

// ScriptResult is the outcome of extracting one script file.
type ScriptResult struct {
	Path string `json:"path"`

	// Checksum is the SHA-256 of the raw file content.
	Checksum string `json:"checksum"`

	// StatementsChecksum is the SHA-256 of the extracted statements. It changes
	// only when the effective statements change, not when comments or excluded
	// lines do.
	StatementsChecksum string `json:"statements_checksum"`

	Statements []Statement `json:"statements"`

	// Unresolved lists placeholder names that had no binding.
	Unresolved []string `json:"unresolved,omitempty"`
}

// CountByKind returns the number of statements of the given kind.
func (r ScriptResult) CountByKind(kind StatementKind) int {
	n := 0
	for _, stmt := range r.Statements {
		if stmt.Kind == kind {
			n++
		}
	}
	return n
}

// StatementExtractor reads scripts and extracts their statements.
// Implementations must be safe for concurrent use by multiple goroutines.
type StatementExtractor interface {
	// ExtractFile extracts statements from one script file.
	ExtractFile(path string) (ScriptResult, error)

	// ExtractAll extracts every script named by paths. Directories are scanned
	// for script files. Results are returned in input order.
	ExtractAll(ctx context.Context, paths []string) ([]ScriptResult, error)
}

// ScriptScanner expands paths into script file paths.
type ScriptScanner interface {
	// ScanPath returns path itself for a file, or the script files below it
	// in lexical order for a directory.
	ScanPath(path string) ([]string, error)
}

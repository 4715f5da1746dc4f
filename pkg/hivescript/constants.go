package hivescript

import (
	"path/filepath"
	"strings"
)

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Extraction completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration or parameters
	ExitScriptMissing = 14 // Script file not found or unreadable
	ExitUnresolved    = 15 // Unresolved placeholders in strict mode
)

const (
	// ConfigFileName is the project configuration file looked up in the working directory.
	ConfigFileName = "hivescript.yaml"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "HIVESCRIPT_"

	// MaxStatementPreviewLength is the maximum number of characters shown
	// when a statement is previewed in log output.
	MaxStatementPreviewLength = 80
)

// ScriptExtensions are the file extensions treated as scripts when a directory is scanned.
var ScriptExtensions = []string{".hql", ".q", ".hive", ".sql"}

// IsScriptPath reports whether path has one of ScriptExtensions (case-insensitive).
func IsScriptPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ScriptExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Output formats accepted by --format and the format field of hivescript.yaml.
const (
	FormatAuto   = "auto"
	FormatText   = "text"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

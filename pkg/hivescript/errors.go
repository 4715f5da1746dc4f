package hivescript

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	results, err := extractor.ExtractAll(ctx, paths)
//	if errors.Is(err, hivescript.ErrScriptNotFound) {
//	    // Handle missing script
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidParams indicates a parameter or params file could not be parsed.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrScriptNotFound indicates a script could not be read.
	ErrScriptNotFound = errors.New("script not found")

	// ErrNoScripts indicates the given paths contained no scripts.
	ErrNoScripts = errors.New("no scripts found")

	// ErrUnresolvedPlaceholders indicates strict mode found placeholders with no binding.
	ErrUnresolvedPlaceholders = errors.New("unresolved placeholders")
)

// usageErrorPatterns are fragments of the errors cobra returns for command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidParams):
		return ExitConfigError
	case errors.Is(err, ErrScriptNotFound), errors.Is(err, ErrNoScripts):
		return ExitScriptMissing
	case errors.Is(err, ErrUnresolvedPlaceholders):
		return ExitUnresolved
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

package output

import (
	"os"

	"golang.org/x/term"
)

// DetectTerminal reports whether styled output should be written to f.
//
// Returns false if:
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - f is not a terminal (redirected or piped output)
func DetectTerminal(f *os.File) bool {
	if os.Getenv("CI") != "" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// TextRenderer writes statements as a runnable script: each statement
// followed by a terminator and a newline. With more than one script, each
// script is preceded by a "-- <path>" comment line.
type TextRenderer struct{}

func (r *TextRenderer) Render(w io.Writer, results []hivescript.ScriptResult) error {
	headers := len(results) > 1
	for i, result := range results {
		if headers {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "-- %s\n", result.Path); err != nil {
				return err
			}
		}
		for _, stmt := range result.Statements {
			if _, err := fmt.Fprintf(w, "%s;\n", stmt.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *TextRenderer) RenderSummary(w io.Writer, results []hivescript.ScriptResult) error {
	for i, result := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		s := Summarize(result)
		unresolved := "-"
		if len(s.Unresolved) > 0 {
			unresolved = strings.Join(s.Unresolved, ", ")
		}

		_, err := fmt.Fprintf(w,
			"path:                %s\nchecksum:            %s\nstatements checksum: %s\nstatements:          %d (general %d, directives %d)\nunresolved:          %s\n",
			s.Path, s.Checksum, s.StatementsChecksum, s.Statements, s.General, s.Directives, unresolved)
		if err != nil {
			return err
		}
	}
	return nil
}

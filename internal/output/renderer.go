package output

import (
	"fmt"
	"io"

	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// Renderer writes extraction results.
type Renderer interface {
	// Render writes the statements of every result.
	Render(w io.Writer, results []hivescript.ScriptResult) error

	// RenderSummary writes one summary per result instead of the statements.
	RenderSummary(w io.Writer, results []hivescript.ScriptResult) error
}

// NewRenderer returns the renderer for format. FormatAuto and the empty
// string select pretty output on a terminal and plain text otherwise.
func NewRenderer(format string, isTerminal bool) (Renderer, error) {
	switch format {
	case "", hivescript.FormatAuto:
		if isTerminal {
			return &PrettyRenderer{}, nil
		}
		return &TextRenderer{}, nil
	case hivescript.FormatText:
		return &TextRenderer{}, nil
	case hivescript.FormatJSON:
		return &JSONRenderer{}, nil
	case hivescript.FormatPretty:
		return &PrettyRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected auto, text, json or pretty): %w", format, hivescript.ErrInvalidConfig)
	}
}

// Summary is the per-script overview printed by inspect.
type Summary struct {
	Path               string   `json:"path"`
	Checksum           string   `json:"checksum"`
	StatementsChecksum string   `json:"statements_checksum"`
	Statements         int      `json:"statements"`
	General            int      `json:"general"`
	Directives         int      `json:"directives"`
	Unresolved         []string `json:"unresolved,omitempty"`
}

// Summarize builds the summary of one result.
func Summarize(r hivescript.ScriptResult) Summary {
	return Summary{
		Path:               r.Path,
		Checksum:           r.Checksum,
		StatementsChecksum: r.StatementsChecksum,
		Statements:         len(r.Statements),
		General:            r.CountByKind(hivescript.StatementGeneral),
		Directives:         r.CountByKind(hivescript.StatementDirective),
		Unresolved:         r.Unresolved,
	}
}

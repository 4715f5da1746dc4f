package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// PrettyRenderer writes numbered, styled statements for a terminal.
type PrettyRenderer struct{}

func (r *PrettyRenderer) Render(w io.Writer, results []hivescript.ScriptResult) error {
	for i, result := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, HeaderStyle.Render(result.Path)); err != nil {
			return err
		}

		for _, stmt := range result.Statements {
			if _, err := fmt.Fprintln(w, renderStatement(stmt)); err != nil {
				return err
			}
		}

		if len(result.Unresolved) > 0 {
			msg := "unresolved: " + strings.Join(result.Unresolved, ", ")
			if _, err := fmt.Fprintln(w, WarningStyle.Render(msg)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *PrettyRenderer) RenderSummary(w io.Writer, results []hivescript.ScriptResult) error {
	for i, result := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		s := Summarize(result)
		rows := []string{
			HeaderStyle.Render(s.Path),
			row("checksum", s.Checksum),
			row("statements checksum", s.StatementsChecksum),
			row("statements", fmt.Sprintf("%d (general %d, directives %d)", s.Statements, s.General, s.Directives)),
		}
		if len(s.Unresolved) > 0 {
			rows = append(rows, LabelStyle.Render("unresolved")+WarningStyle.Render(strings.Join(s.Unresolved, ", ")))
		}

		if _, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...)); err != nil {
			return err
		}
	}
	return nil
}

func renderStatement(stmt hivescript.Statement) string {
	textStyle := GeneralStyle
	if stmt.Kind == hivescript.StatementDirective {
		textStyle = DirectiveStyle
	}

	lines := fmt.Sprintf("L%d", stmt.StartLine)
	if stmt.EndLine != stmt.StartLine {
		lines = fmt.Sprintf("L%d-%d", stmt.StartLine, stmt.EndLine)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		IndexStyle.Render(fmt.Sprintf("%d", stmt.Index+1)),
		textStyle.Render(stmt.Text+";"),
		LineRangeStyle.Render(lines),
	)
}

func row(label, value string) string {
	return LabelStyle.Render(label) + value
}

package output

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorWarning = lipgloss.Color("214") // Orange
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	// HeaderStyle renders the script path above its statements.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// IndexStyle renders the statement number.
	IndexStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(5).
			Align(lipgloss.Right).
			MarginRight(1)

	DirectiveStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	GeneralStyle = lipgloss.NewStyle()

	// LineRangeStyle renders the source line range after a statement.
	LineRangeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginLeft(1)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(22)
)

package tui

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned by Select when the user quits.
var ErrCancelled = errors.New("selection cancelled")

// Option represents a selectable option in the selector.
type Option struct {
	Label       string
	Description string
	Value       string
}

// Selector is a single-choice list. It implements tea.Model.
type Selector struct {
	title     string
	options   []Option
	cursor    int
	selected  int
	keyMap    selectorKeyMap
	styles    selectorStyles
	cancelled bool
}

type selectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

type selectorStyles struct {
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
}

func defaultSelectorStyles() selectorStyles {
	return selectorStyles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Unselected:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

func defaultSelectorKeyMap() selectorKeyMap {
	return selectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// NewSelector creates a selector with the cursor on the option whose Value
// equals initial, or on the first option.
func NewSelector(title string, options []Option, initial string) Selector {
	cursor := 0
	for i, opt := range options {
		if opt.Value == initial {
			cursor = i
			break
		}
	}
	return Selector{
		title:    title,
		options:  options,
		cursor:   cursor,
		selected: -1,
		keyMap:   defaultSelectorKeyMap(),
		styles:   defaultSelectorStyles(),
	}
}

// Init implements tea.Model.
func (s Selector) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keyMap.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(keyMsg, s.keyMap.Down):
		if s.cursor < len(s.options)-1 {
			s.cursor++
		}
	case key.Matches(keyMsg, s.keyMap.Select):
		if len(s.options) > 0 {
			s.selected = s.cursor
		}
		return s, tea.Quit
	case key.Matches(keyMsg, s.keyMap.Quit):
		s.cancelled = true
		return s, tea.Quit
	}
	return s, nil
}

// View implements tea.Model.
func (s Selector) View() string {
	var b strings.Builder

	b.WriteString(s.styles.Title.Render(s.title))
	b.WriteString("\n\n")

	for i, opt := range s.options {
		cursor := "  "
		style := s.styles.Unselected
		symbol := "○"
		if i == s.cursor {
			cursor = ""
			style = s.styles.Selected
			symbol = "●"
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(symbol + " " + opt.Label))
		b.WriteString("\n")
		if opt.Description != "" {
			b.WriteString(s.styles.Description.Render(opt.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString(s.styles.Help.Render("\n↑/↓ navigate • enter select • q quit"))
	return b.String()
}

// Value returns the value of the selected option, or "" if none was selected.
func (s Selector) Value() string {
	if s.selected >= 0 && s.selected < len(s.options) {
		return s.options[s.selected].Value
	}
	return ""
}

// Cancelled returns true if the user quit without selecting.
func (s Selector) Cancelled() bool {
	return s.cancelled
}

// Select runs s as a program on in and out and returns the chosen value.
func Select(s Selector, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(s, tea.WithInput(in), tea.WithOutput(out))
	model, err := p.Run()
	if err != nil {
		return "", err
	}

	result := model.(Selector)
	if result.Cancelled() || result.Value() == "" {
		return "", ErrCancelled
	}
	return result.Value(), nil
}

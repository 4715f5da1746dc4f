package preprocessor

import "strings"

// Line is one physical line of a script.
// Number is 1-based and refers to the original script, so it survives every pass.
type Line struct {
	Number int
	Text   string
}

// Script is the raw text of one file as an ordered sequence of physical lines.
// A Script is never mutated after construction.
type Script struct {
	lines []Line
}

// NewScript splits text on newline characters.
// A trailing carriage return is dropped from each line so CRLF files behave like LF files.
func NewScript(text string) Script {
	if text == "" {
		return Script{}
	}

	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, r := range raw {
		lines = append(lines, Line{
			Number: i + 1,
			Text:   strings.TrimSuffix(r, "\r"),
		})
	}
	return Script{lines: lines}
}

// Lines returns a copy of the script's physical lines.
func (s Script) Lines() []Line {
	result := make([]Line, len(s.lines))
	copy(result, s.lines)
	return result
}

// Len returns the number of physical lines.
func (s Script) Len() int {
	return len(s.lines)
}

package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScript(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Line
	}{
		{
			name:     "empty",
			input:    "",
			expected: []Line{},
		},
		{
			name:     "single line",
			input:    "SELECT 1;",
			expected: []Line{{Number: 1, Text: "SELECT 1;"}},
		},
		{
			name:  "trailing newline",
			input: "SELECT 1;\n",
			expected: []Line{
				{Number: 1, Text: "SELECT 1;"},
				{Number: 2, Text: ""},
			},
		},
		{
			name:  "CRLF",
			input: "SELECT 1;\r\nSELECT 2;\r\n",
			expected: []Line{
				{Number: 1, Text: "SELECT 1;"},
				{Number: 2, Text: "SELECT 2;"},
				{Number: 3, Text: ""},
			},
		},
		{
			name:  "whitespace kept",
			input: "  a\n\tb  ",
			expected: []Line{
				{Number: 1, Text: "  a"},
				{Number: 2, Text: "\tb  "},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScript(tt.input)
			assert.Equal(t, tt.expected, s.Lines())
			assert.Equal(t, len(tt.expected), s.Len())
		})
	}
}

func TestScript_LinesReturnsCopy(t *testing.T) {
	s := NewScript("SELECT 1;")

	lines := s.Lines()
	lines[0].Text = "DROP TABLE t;"

	assert.Equal(t, "SELECT 1;", s.Lines()[0].Text)
}

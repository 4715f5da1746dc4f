package preprocessor

import (
	"reflect"
	"testing"
)

func TestCommentStripper_Strip(t *testing.T) {
	stripper := NewCommentStripper()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Line comment at start",
			input:    "-- comment\nSELECT 1;",
			expected: []string{"SELECT 1;"},
		},
		{
			name:     "Indented comment",
			input:    "SELECT 1;\n    -- indented\nSELECT 2;",
			expected: []string{"SELECT 1;", "SELECT 2;"},
		},
		{
			name:     "Tab before marker",
			input:    "\t-- tab\nSELECT 1;",
			expected: []string{"SELECT 1;"},
		},
		{
			name:     "Empty line comment",
			input:    "--\nSELECT 1;",
			expected: []string{"SELECT 1;"},
		},
		{
			name:     "Marker after content is kept",
			input:    "SELECT 1; -- trailing",
			expected: []string{"SELECT 1; -- trailing"},
		},
		{
			name:     "Marker inside literal is kept",
			input:    "SELECT '-- not a comment';",
			expected: []string{"SELECT '-- not a comment';"},
		},
		{
			name:     "Single dash is not a comment",
			input:    "-1;",
			expected: []string{"-1;"},
		},
		{
			name:     "Comment only",
			input:    "-- just a comment",
			expected: []string{},
		},
		{
			name:     "Blank lines survive",
			input:    "SELECT 1;\n\nSELECT 2;",
			expected: []string{"SELECT 1;", "", "SELECT 2;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texts(stripper.Strip(NewScript(tt.input).Lines()))
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Strip() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestCommentStripper_Strip_KeepsLineNumbers(t *testing.T) {
	stripper := NewCommentStripper()

	lines := stripper.Strip(NewScript("-- header\n-- more\nSELECT 1;\n-- between\nSELECT 2;").Lines())
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Number != 3 || lines[1].Number != 5 {
		t.Errorf("line numbers = %d, %d, expected 3, 5", lines[0].Number, lines[1].Number)
	}
}

func TestCommentStripper_Strip_Empty(t *testing.T) {
	stripper := NewCommentStripper()

	if result := stripper.Strip(nil); len(result) != 0 {
		t.Errorf("Strip(nil) = %v, expected empty", result)
	}
}

// texts returns the text of each line.
func texts(lines []Line) []string {
	result := make([]string, len(lines))
	for i, l := range lines {
		result[i] = l.Text
	}
	return result
}

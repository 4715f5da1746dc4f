package preprocessor

import (
	"strings"
	"unicode"
)

// commentMarker starts a whole-line comment in HiveQL scripts.
const commentMarker = "--"

// CommentStripper removes whole-line comments from a script.
type CommentStripper interface {
	Strip(lines []Line) []Line
}

// commentStripper implements CommentStripper.
type commentStripper struct{}

// NewCommentStripper creates a new CommentStripper instance.
func NewCommentStripper() CommentStripper {
	return &commentStripper{}
}

// Strip drops every line whose first non-whitespace characters are "--".
// Dropped lines are removed, not blanked, so they never separate the text around them.
// A marker after other content on the same line is left untouched.
func (c *commentStripper) Strip(lines []Line) []Line {
	result := make([]Line, 0, len(lines))
	for _, line := range lines {
		if isCommentLine(line.Text) {
			continue
		}
		result = append(result, line)
	}
	return result
}

func isCommentLine(text string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(text, unicode.IsSpace), commentMarker)
}

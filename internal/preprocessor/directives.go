package preprocessor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultDirectives are the line-oriented commands the Hive CLI executes on
// their own, without waiting for a terminator.
var DefaultDirectives = []string{
	"SET",
	"ADD JAR",
	"ADD JARS",
	"ADD FILE",
	"ADD FILES",
	"ADD ARCHIVE",
	"ADD ARCHIVES",
	"DFS",
}

// DirectiveTable is the set of recognized directive keyword sequences.
// Matching is case-insensitive and works on whole words, so "ADD JAR" matches
// "add   jar /x.jar" but neither "ADDJAR" nor "ADD JARFILE".
// A DirectiveTable is immutable; With returns an extended copy.
type DirectiveTable struct {
	directives [][]string
}

// NewDirectiveTable parses each entry into its keywords.
// Blank entries and duplicates are ignored.
func NewDirectiveTable(directives ...string) *DirectiveTable {
	t := &DirectiveTable{}
	return t.With(directives...)
}

// DefaultDirectiveTable returns a table holding DefaultDirectives.
func DefaultDirectiveTable() *DirectiveTable {
	return NewDirectiveTable(DefaultDirectives...)
}

// With returns a new table containing t's directives plus the given ones.
func (t *DirectiveTable) With(directives ...string) *DirectiveTable {
	result := &DirectiveTable{
		directives: make([][]string, 0, len(t.directives)+len(directives)),
	}
	seen := make(map[string]bool)

	add := func(keywords []string) {
		key := strings.Join(keywords, " ")
		if len(keywords) == 0 || seen[key] {
			return
		}
		seen[key] = true
		result.directives = append(result.directives, keywords)
	}

	for _, keywords := range t.directives {
		add(keywords)
	}
	for _, d := range directives {
		fields := strings.Fields(strings.ToUpper(d))
		add(fields)
	}
	return result
}

// Directives returns the recognized keyword sequences in canonical upper-case form.
func (t *DirectiveTable) Directives() []string {
	result := make([]string, len(t.directives))
	for i, keywords := range t.directives {
		result[i] = strings.Join(keywords, " ")
	}
	return result
}

// Match reports whether line starts with one of the recognized keyword sequences.
// Leading whitespace is ignored.
func (t *DirectiveTable) Match(line string) bool {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	for _, keywords := range t.directives {
		if matchKeywords(line, keywords) {
			return true
		}
	}
	return false
}

func matchKeywords(line string, keywords []string) bool {
	rest := line
	for i, kw := range keywords {
		if i > 0 {
			trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
			if len(trimmed) == len(rest) {
				return false
			}
			rest = trimmed
		}
		if len(rest) < len(kw) || !strings.EqualFold(rest[:len(kw)], kw) {
			return false
		}
		rest = rest[len(kw):]
		if !atWordBoundary(rest) {
			return false
		}
	}
	return true
}

// atWordBoundary reports whether a keyword that ended just before rest is a whole word.
func atWordBoundary(rest string) bool {
	if rest == "" || rest[0] == terminator {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r)
}

package preprocessor

import "strings"

const (
	placeholderOpen  = "${"
	placeholderClose = '}'
)

// PlaceholderSubstitutor replaces ${name} tokens with caller-supplied values.
//
// Substitution is a single left-to-right scan per line. Inserted values are
// never scanned again, and a name without a binding is left in place verbatim.
// A PlaceholderSubstitutor is read-only after construction and safe for concurrent use.
type PlaceholderSubstitutor struct {
	params map[string]string
}

// NewPlaceholderSubstitutor creates a substitutor over a copy of params.
// A nil map behaves like an empty one.
func NewPlaceholderSubstitutor(params map[string]string) *PlaceholderSubstitutor {
	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return &PlaceholderSubstitutor{params: copied}
}

// Substitute resolves placeholders on every line.
func (s *PlaceholderSubstitutor) Substitute(lines []Line) []Line {
	result := make([]Line, len(lines))
	for i, line := range lines {
		result[i] = Line{Number: line.Number, Text: s.SubstituteLine(line.Text)}
	}
	return result
}

// SubstituteLine resolves placeholders in a single line of text.
func (s *PlaceholderSubstitutor) SubstituteLine(text string) string {
	return expandPlaceholders(text, func(name, token string) string {
		if value, ok := s.params[name]; ok {
			return value
		}
		return token
	})
}

// Unresolved returns the placeholder names with no binding, in order of first
// appearance and without duplicates.
func (s *PlaceholderSubstitutor) Unresolved(lines []Line) []string {
	var names []string
	seen := make(map[string]bool)

	for _, line := range lines {
		expandPlaceholders(line.Text, func(name, token string) string {
			if _, ok := s.params[name]; !ok && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			return token
		})
	}
	return names
}

// expandPlaceholders scans text once and replaces every ${name} token with
// whatever resolve returns for it. token is the full "${name}" text.
// An opening "${" without a closing brace is copied through unchanged; a
// second "${" before the closing brace restarts the token there.
func expandPlaceholders(text string, resolve func(name, token string) string) string {
	if !strings.Contains(text, placeholderOpen) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	rest := text
	for {
		start := strings.Index(rest, placeholderOpen)
		if start == -1 {
			b.WriteString(rest)
			break
		}

		nameStart := start + len(placeholderOpen)
		end := strings.IndexByte(rest[nameStart:], placeholderClose)
		if end == -1 {
			b.WriteString(rest)
			break
		}
		end += nameStart

		name := rest[nameStart:end]
		if nested := strings.Index(name, placeholderOpen); nested != -1 {
			b.WriteString(rest[:nameStart+nested])
			rest = rest[nameStart+nested:]
			continue
		}

		b.WriteString(rest[:start])
		b.WriteString(resolve(name, rest[start:end+1]))
		rest = rest[end+1:]
	}

	return b.String()
}

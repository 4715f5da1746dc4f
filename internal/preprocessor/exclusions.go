package preprocessor

import "strings"

// ExclusionFilter drops lines that must never be executed, such as jar
// additions already satisfied by the cluster.
// An ExclusionFilter is read-only after construction and safe for concurrent use.
type ExclusionFilter struct {
	excluded map[string]struct{}
}

// NewExclusionFilter builds a filter from exact line strings.
// Entries are trimmed; empty entries are ignored.
func NewExclusionFilter(exclusions []string) *ExclusionFilter {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, e := range exclusions {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		excluded[e] = struct{}{}
	}
	return &ExclusionFilter{excluded: excluded}
}

// Excludes reports whether the trimmed text is a member of the set.
// The comparison is exact and includes a trailing terminator.
func (f *ExclusionFilter) Excludes(text string) bool {
	if len(f.excluded) == 0 {
		return false
	}
	_, ok := f.excluded[strings.TrimSpace(text)]
	return ok
}

// Filter returns the lines that are not excluded, in order.
func (f *ExclusionFilter) Filter(lines []Line) []Line {
	if len(f.excluded) == 0 {
		return lines
	}

	result := make([]Line, 0, len(lines))
	for _, line := range lines {
		if f.Excludes(line.Text) {
			continue
		}
		result = append(result, line)
	}
	return result
}

// Len returns the number of distinct exclusions.
func (f *ExclusionFilter) Len() int {
	return len(f.excluded)
}

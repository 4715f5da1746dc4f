package preprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionFilter_Excludes(t *testing.T) {
	f := NewExclusionFilter([]string{"ADD JAR ${MY_LIB};", "  dfs -ls;  ", "", "   "})

	assert.Equal(t, 2, f.Len())

	tests := []struct {
		line     string
		excluded bool
	}{
		{"ADD JAR ${MY_LIB};", true},
		{"   ADD JAR ${MY_LIB};\t", true},
		{"dfs -ls;", true},
		{"ADD JAR ${MY_LIB}", false},
		{"add jar ${MY_LIB};", false},
		{"ADD JAR /my-lib.jar;", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.excluded, f.Excludes(tt.line))
		})
	}
}

func TestExclusionFilter_Filter(t *testing.T) {
	f := NewExclusionFilter([]string{"ADD JAR ${MY_LIB};"})

	lines := NewScript("ADD JAR ${MY_LIB};\nSELECT COUNT(*) FROM table1;\n  ADD JAR ${MY_LIB};").Lines()
	result := f.Filter(lines)

	assert.Equal(t, []Line{{Number: 2, Text: "SELECT COUNT(*) FROM table1;"}}, result)
}

func TestExclusionFilter_Empty(t *testing.T) {
	lines := NewScript("SELECT 1;\nSELECT 2;").Lines()

	for _, f := range []*ExclusionFilter{NewExclusionFilter(nil), NewExclusionFilter([]string{})} {
		assert.Equal(t, 0, f.Len())
		assert.False(t, f.Excludes("SELECT 1;"))
		assert.Equal(t, lines, f.Filter(lines))
	}
}

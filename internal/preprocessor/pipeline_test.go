package preprocessor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStatements(t *testing.T) {
	tests := []struct {
		name       string
		script     string
		params     map[string]string
		exclusions []string
		expected   []string
	}{
		{
			name:     "two statements",
			script:   "SELECT COUNT(*) FROM table1;\nSELECT name, address FROM table2;",
			expected: []string{"SELECT COUNT(*) FROM table1", "SELECT name, address FROM table2"},
		},
		{
			name:     "leading comment",
			script:   "-- comment\nSELECT COUNT(*) FROM table1;",
			expected: []string{"SELECT COUNT(*) FROM table1"},
		},
		{
			name:       "excluded jar",
			script:     "ADD JAR ${MY_LIB};\nSELECT COUNT(*) FROM table1;",
			exclusions: []string{"ADD JAR ${MY_LIB};"},
			expected:   []string{"SELECT COUNT(*) FROM table1"},
		},
		{
			name:     "directive casing preserved",
			script:   "add jar /test.jar;\nADD JAR /test.jar;",
			expected: []string{"add jar /test.jar", "ADD JAR /test.jar"},
		},
		{
			name:   "adjacent placeholders",
			script: "ADD JAR ${nameNode}${MY_LIB};",
			params: map[string]string{
				"nameNode": "hdfs://localhost:9000",
				"MY_LIB":   "/my-lib-1.0.0.jar",
			},
			expected: []string{"ADD JAR hdfs://localhost:9000/my-lib-1.0.0.jar"},
		},
		{
			name:       "exclusions match unresolved text",
			script:     "ADD JAR ${MY_LIB};\nSELECT 1;",
			params:     map[string]string{"MY_LIB": "/lib.jar"},
			exclusions: []string{"ADD JAR /lib.jar;"},
			expected:   []string{"ADD JAR /lib.jar", "SELECT 1"},
		},
		{
			name:       "excluded line inside a statement",
			script:     "SELECT a\nSKIP ME\nFROM t;",
			exclusions: []string{"SKIP ME"},
			expected:   []string{"SELECT a FROM t"},
		},
		{
			name:     "comment inside a statement",
			script:   "SELECT a,\n-- b,\n  c\nFROM t;",
			expected: []string{"SELECT a,   c FROM t"},
		},
		{
			name:     "placeholder value with terminator splits",
			script:   "SELECT ${cols} FROM t;",
			params:   map[string]string{"cols": "1; SELECT 2"},
			expected: []string{"SELECT 1", "SELECT 2 FROM t"},
		},
		{
			name:     "directive after unterminated statement",
			script:   "SELECT 1\nSET x=1;",
			expected: []string{"SELECT 1", "SET x=1"},
		},
		{
			name:     "unresolved placeholder passes through",
			script:   "SELECT * FROM ${db}.t;",
			expected: []string{"SELECT * FROM ${db}.t"},
		},
		{
			name:     "empty script",
			script:   "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractStatements(tt.script, tt.params, tt.exclusions))
		})
	}
}

func TestPipeline_Process(t *testing.T) {
	script := `-- load
ADD JAR ${MY_LIB};
SET hive.exec.parallel=true;
-- query
SELECT * FROM ${db}.${table} WHERE dt = '${dt}';
`
	p := NewPipeline(
		WithParameters(map[string]string{"db": "sales"}),
		WithParameters(map[string]string{"table": "orders"}),
		WithExclusions([]string{"ADD JAR ${MY_LIB};"}),
	)

	result := p.Process(script)

	assert.Equal(t, []string{
		"SET hive.exec.parallel=true",
		"SELECT * FROM sales.orders WHERE dt = '${dt}'",
	}, result.Texts())
	assert.Equal(t, []string{"dt"}, result.Unresolved, "excluded lines must not report placeholders")
	assert.Equal(t, 2, result.CommentLines)
	assert.Equal(t, 1, result.ExcludedLines)

	require.Len(t, result.Statements, 2)
	assert.Equal(t, 3, result.Statements[0].StartLine)
	assert.Equal(t, 5, result.Statements[1].StartLine)
}

func TestPipeline_WithDirectives(t *testing.T) {
	script := "RESET\nDELETE JAR /a.jar\nSET a=b\nSELECT 1;"

	defaults := NewPipeline().Extract(script)
	assert.Equal(t, []string{"RESET DELETE JAR /a.jar", "SET a=b", "SELECT 1"}, statementTexts(defaults))

	extended := NewPipeline(WithDirectives("RESET", "DELETE JAR")).Extract(script)
	assert.Equal(t, []string{"RESET", "DELETE JAR /a.jar", "SET a=b", "SELECT 1"}, statementTexts(extended))

	replaced := NewPipeline(WithDirectiveTable(NewDirectiveTable("RESET"))).Extract(script)
	assert.Equal(t, []string{"RESET", "DELETE JAR /a.jar SET a=b SELECT 1"}, statementTexts(replaced))
}

func TestPipeline_Unresolved(t *testing.T) {
	script := `-- ${commented}
ADD JAR ${skipped};
SELECT '${a}', '${b}', '${a}' FROM ${db}.t;`

	p := NewPipeline(
		WithParameters(map[string]string{"db": "sales"}),
		WithExclusions([]string{"ADD JAR ${skipped};"}),
	)
	assert.Equal(t, []string{"a", "b"}, p.Unresolved(script))
	assert.Equal(t, p.Process(script).Unresolved, p.Unresolved(script))
	assert.Empty(t, NewPipeline().Unresolved("SELECT 1;"))
}

func TestPipeline_Deterministic(t *testing.T) {
	script := readFixture(t, "union_nested.hql")
	p := NewPipeline(WithParameters(map[string]string{"x": "y"}))

	first := p.Process(script)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Process(script))
	}
}

func TestPipeline_CommentTransparency(t *testing.T) {
	base := []string{
		"SET hive.exec.parallel=true;",
		"SELECT a,",
		"  b FROM t;",
		"ADD JAR /x.jar;",
		"SELECT 'quoted;value' FROM u;",
	}
	expected := ExtractStatements(strings.Join(base, "\n"), nil, nil)

	for i := 0; i <= len(base); i++ {
		withComment := make([]string, 0, len(base)+1)
		withComment = append(withComment, base[:i]...)
		withComment = append(withComment, "  -- injected; comment 'with quote")
		withComment = append(withComment, base[i:]...)

		assert.Equal(t, expected, ExtractStatements(strings.Join(withComment, "\n"), nil, nil), "comment at line %d", i)
	}
}

func TestPipeline_ExclusionExactness(t *testing.T) {
	excluded := "ADD JAR /secret-marker.jar;"
	base := []string{"SELECT 1;", "SELECT a,", "  b FROM t;", "SET x=y;"}

	for i := 0; i <= len(base); i++ {
		lines := make([]string, 0, len(base)+1)
		lines = append(lines, base[:i]...)
		lines = append(lines, "   "+excluded)
		lines = append(lines, base[i:]...)

		for _, stmt := range ExtractStatements(strings.Join(lines, "\n"), nil, []string{excluded}) {
			assert.NotContains(t, stmt, "secret-marker")
		}
	}
}

// Fixtures reproduce the reference scripts used to validate the extractor.
func TestExtractStatements_Fixtures(t *testing.T) {
	tests := []struct {
		file       string
		params     map[string]string
		exclusions []string
		count      int
		expected   map[int]string
	}{
		{
			file:  "simple.hql",
			count: 2,
			expected: map[int]string{
				0: "SELECT COUNT(*) FROM table1",
				1: "SELECT name, address FROM table2",
			},
		},
		{
			file:  "with_comments.hql",
			count: 2,
			expected: map[int]string{
				0: "SELECT COUNT(*) FROM table1",
				1: "SELECT name, address FROM table2",
			},
		},
		{
			file:  "multiline.hql",
			count: 1,
			expected: map[int]string{
				0: "CREATE TABLE raw_data (   name STRING,   address STRING ) ROW FORMAT DELIMITED    FIELDS " +
					"TERMINATED BY ','    LINES TERMINATED BY '\\n' STORED AS TEXTFILE",
			},
		},
		{
			file: "params.hql",
			params: map[string]string{
				"nameNode":  "hdfs://localhost:9000",
				"MY_LIB":    "/my-lib-1.0.0.jar",
				"HDFS_PATH": "/user/hadoop/data",
			},
			count: 3,
			expected: map[int]string{
				0: "ADD JAR hdfs://localhost:9000/my-lib-1.0.0.jar",
				1: "ADD JAR hdfs://localhost:9000/user/hadoop/libs/json-serde-1.3.jar",
				2: "CREATE EXTERNAL TABLE table1 (   name STRING ) STORED AS RCFILE LOCATION '/user/hadoop/data/rc'",
			},
		},
		{
			file:       "excludes.hql",
			exclusions: []string{"ADD JAR ${MY_LIB};"},
			count:      1,
			expected: map[int]string{
				0: "SELECT COUNT(*) FROM table1",
			},
		},
		{
			file:  "set.hql",
			count: 2,
			expected: map[int]string{
				0: "SET hive.support.quoted.identifiers=none",
				1: "set hive.exec.parallel=true",
			},
		},
		{
			file:  "add.hql",
			count: 5,
			expected: map[int]string{
				0: "add jar /test.jar",
				1: "ADD JAR /test.jar",
				2: "add file /test.txt",
				3: "add FILE /test.txt",
				4: "add ARCHIVES /test.zip",
			},
		},
		{
			file:  "dfs.hql",
			count: 2,
			expected: map[int]string{
				0: "dfs -ls",
				1: "dfs -chown root:root /tmp/test.txt",
			},
		},
		{
			file:  "union_nested.hql",
			count: 5,
			expected: map[int]string{
				4: "SELECT c.* FROM (   SELECT a.* FROM union_a a   UNION ALL   SELECT b.* FROM union_b b " +
					"WHERE b.year NOT IN (SELECT year FROM union_a WHERE year = '1949') ) c",
			},
		},
		{
			file:  "joined_tables.hql",
			count: 5,
			expected: map[int]string{
				4: "SELECT * FROM join_a a JOIN join_b b ON a.temp = b.temp",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			stmts := ExtractStatements(readFixture(t, tt.file), tt.params, tt.exclusions)

			require.Len(t, stmts, tt.count)
			for i, want := range tt.expected {
				assert.Equal(t, want, stmts[i], "statement %d", i)
			}
		})
	}
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

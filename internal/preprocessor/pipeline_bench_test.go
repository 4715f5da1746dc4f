package preprocessor

import (
	"fmt"
	"strings"
	"testing"
)

func generateScript(statements int) string {
	var b strings.Builder
	for i := 0; i < statements; i++ {
		fmt.Fprintf(&b, "-- step %d\n", i)
		fmt.Fprintf(&b, "SET hive.exec.dynamic.partition.mode=nonstrict;\n")
		fmt.Fprintf(&b, "INSERT OVERWRITE TABLE ${db}.target_%d PARTITION (dt='${dt}')\n", i)
		fmt.Fprintf(&b, "SELECT id, name, 'a;b' AS tag\n")
		fmt.Fprintf(&b, "FROM ${db}.source_%d\n", i)
		fmt.Fprintf(&b, "WHERE dt = '${dt}';\n\n")
	}
	return b.String()
}

func BenchmarkPipeline_Process(b *testing.B) {
	params := map[string]string{"db": "warehouse", "dt": "2024-01-01"}

	for _, size := range []int{10, 100, 1000} {
		script := generateScript(size)
		p := NewPipeline(WithParameters(params))

		b.Run(fmt.Sprintf("statements=%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(script)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = p.Process(script)
			}
		})
	}
}

func BenchmarkPlaceholderSubstitutor_SubstituteLine(b *testing.B) {
	s := NewPlaceholderSubstitutor(map[string]string{"nameNode": "hdfs://localhost:9000", "MY_LIB": "/my-lib.jar"})
	line := "ADD JAR ${nameNode}${MY_LIB}; -- ${unbound}"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.SubstituteLine(line)
	}
}

func BenchmarkDirectiveTable_Match(b *testing.B) {
	table := DefaultDirectiveTable()
	lines := []string{"SET a=b;", "add archives /x.zip", "SELECT * FROM t;", "  dfs -ls"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = table.Match(lines[i%len(lines)])
	}
}

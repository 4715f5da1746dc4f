package checksum

import (
	"strings"
	"testing"
)

// BenchmarkCalculateRaw benchmarks raw checksum calculation
func BenchmarkCalculateRaw(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("SELECT * FROM users WHERE id = 1;\n", 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.CalculateRaw(content)
	}
}

// BenchmarkCalculateStatements benchmarks statement checksum calculation
func BenchmarkCalculateStatements(b *testing.B) {
	calculator := New()
	statements := make([]string, 100)
	for i := range statements {
		statements[i] = "SELECT name,   address FROM table2 WHERE city = 'New  York'"
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.CalculateStatements(statements)
	}
}

package parser

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkGrammarMatch measures single-line matching throughput.
func BenchmarkGrammarMatch(b *testing.B) {
	g := DefaultGrammar()
	line := "2024-01-22 08:30:05 ERROR Failed to connect to the database"

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.Match(line)
	}
}

// BenchmarkParseDocument measures parsing a 1000-line document with noise.
func BenchmarkParseDocument(b *testing.B) {
	levels := []string{"INFO", "WARN", "ERROR", "DEBUG"}

	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		if i%10 == 0 {
			sb.WriteString("--- separator ---\n")
		}
		fmt.Fprintf(&sb, "2024-01-22 08:%02d:%02d %s request %d completed\n", i/60%60, i%60, levels[i%4], i)
	}
	doc := sb.String()
	p := New()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Parse(doc)
	}
}

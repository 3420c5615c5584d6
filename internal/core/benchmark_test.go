package core

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// ============================================================================
// Conversion Function Benchmarks
// ============================================================================

// BenchmarkToPgFloat8 benchmarks score cell conversion.
// Every PUNT_/PERCENTIL_ cell goes through this path.
func BenchmarkToPgFloat8(b *testing.B) {
	testCases := []string{
		"123",
		"-456.78",
		"1.5e3",
		"  999.99  ", // Whitespace
		"NA",         // Missing token
		"abc",        // Unparseable
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ToPgFloat8(tc)
		}
	}
}

// BenchmarkToPgInt8 benchmarks integer cell conversion, including the
// integral float fallback.
func BenchmarkToPgInt8(b *testing.B) {
	testCases := []string{"2", "201910", "2.0", "2.5", ""}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ToPgInt8(tc)
		}
	}
}

// ============================================================================
// Loader Benchmarks
// ============================================================================

func benchmarkData(rows int) string {
	var sb strings.Builder
	sb.WriteString("SCHOOL_ID;PUNT_LECTURA_CRITICA;semestre;EXTRA\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "S%d;%d.25;%d;x\n", i, i%500, i%2+1)
	}
	return sb.String()
}

func benchmarkLoad(b *testing.B, rows, limit int) {
	data := benchmarkData(rows)
	schema := scoresSchema()
	ctx := context.Background()

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decode(ctx, strings.NewReader(data), "bench", schema, limit); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoad_1kRows(b *testing.B)   { benchmarkLoad(b, 1000, Unbounded) }
func BenchmarkLoad_100kRows(b *testing.B) { benchmarkLoad(b, 100000, Unbounded) }

// BenchmarkLoad_Subset shows that a small limit does not pay for the whole file.
func BenchmarkLoad_Subset(b *testing.B) { benchmarkLoad(b, 100000, 5) }


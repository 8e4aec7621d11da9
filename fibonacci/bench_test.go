package fibonacci_test

import (
	"testing"

	"github.com/katalvlaran/lvleuler/fibonacci"
)

// naive is the exponential double recursion, kept only as a baseline.
func naive(n int) int64 {
	if n <= 1 {
		return int64(n)
	}

	return naive(n-1) + naive(n-2)
}

// BenchmarkNaive_30 shows the cost of the double recursion.
func BenchmarkNaive_30(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naive(30)
	}
}

// BenchmarkNth_30 is the two-variable loop on the same index.
func BenchmarkNth_30(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := fibonacci.Nth(30); err != nil {
			b.Fatalf("Nth failed: %v", err)
		}
	}
}

// BenchmarkMemo_90 fills a fresh cache each iteration.
func BenchmarkMemo_90(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := fibonacci.NewMemo().Fib(90); err != nil {
			b.Fatalf("Memo.Fib failed: %v", err)
		}
	}
}

// BenchmarkSumEven_4e6 measures the even-term stream.
func BenchmarkSumEven_4e6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := fibonacci.SumEven(4_000_000); err != nil {
			b.Fatalf("SumEven failed: %v", err)
		}
	}
}

package primes_test

import (
	"testing"

	"github.com/katalvlaran/lvleuler/primes"
)

// BenchmarkSieve_1e6 measures the sieve on [0, 10^6].
func BenchmarkSieve_1e6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := primes.Sieve(1_000_000); err != nil {
			b.Fatalf("Sieve failed: %v", err)
		}
	}
}

// BenchmarkFactorize_Euler3 measures trial division on the puzzle input.
func BenchmarkFactorize_Euler3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := primes.Factorize(600851475143); err != nil {
			b.Fatalf("Factorize failed: %v", err)
		}
	}
}

// BenchmarkDistinctFactors_Euler3 measures the sieve-assisted variant on the same input.
func BenchmarkDistinctFactors_Euler3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := primes.DistinctFactors(600851475143); err != nil {
			b.Fatalf("DistinctFactors failed: %v", err)
		}
	}
}

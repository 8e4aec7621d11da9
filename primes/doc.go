// Package primes provides the prime-number primitives of lvleuler: a sieve of
// Eratosthenes, prime listing, and integer factorization by trial division.
//
// 🚀 What is inside?
//
//	• Sieve(n) - primality table for every integer in [0, n]
//	• PrimesUpTo(n) - ascending primes ≤ n, filtered from the sieve
//	• Factorize(n) - prime → multiplicity, ascending by prime
//	• DistinctFactors(n) - sieve-assisted list of distinct prime factors
//	• IsPrime(n) - single-value trial-division test
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvleuler/primes"
//
//	f, err := primes.Factorize(600851475143)
//	if err != nil {
//	  // handle ErrInvalidArgument
//	}
//	largest, _ := f.Largest() // 6857
//
// Performance:
//
//   - Sieve:           O(n·log log n) time, O(n) memory
//   - Factorize:       O(√n) time, O(number of factors) memory
//   - DistinctFactors: O(√n·log log √n) time, O(√n) memory
//
// Factorize is the authoritative routine. DistinctFactors reaches the same
// prime set through a different path (sieve, then residual quotient) and is
// kept for comparison; its output always equals Factorize(n).Primes().
package primes

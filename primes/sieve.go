// SPDX-License-Identifier: MIT
package primes

import "fmt"

// Sieve - Sieve of Eratosthenes
//
// Description:
//
//	Returns a table isPrime of length n+1 where isPrime[i] reports
//	whether i is prime.
//
// Algorithm Outline:
//  1. Mark every entry true, then clear entries 0 and 1.
//  2. For k = 2 while k·k ≤ n:
//     if isPrime[k], clear isPrime[k·m] for m = 2..n/k.
//
// Every composite c ≤ n has a prime factor ≤ √c, so it is struck by step 2.
//
// Complexity:
//
//	Time   = O(n·log log n)
//	Memory = O(n)
//
// Errors:
//   - ErrInvalidArgument: if n < 0.
func Sieve(n int) ([]bool, error) {
	if n < 0 {
		return nil, fmt.Errorf("Sieve(%d): %w", n, ErrInvalidArgument)
	}

	isPrime := make([]bool, n+1)
	for i := 2; i <= n; i++ {
		isPrime[i] = true
	}

	for k := 2; k*k <= n; k++ {
		if !isPrime[k] {
			continue
		}
		for m := k * 2; m <= n; m += k {
			isPrime[m] = false
		}
	}

	return isPrime, nil
}

// PrimesUpTo returns every prime p ≤ n in ascending order.
// n < 2 yields an empty (non-nil) slice.
func PrimesUpTo(n int) ([]int, error) {
	isPrime, err := Sieve(n)
	if err != nil {
		return nil, fmt.Errorf("PrimesUpTo: %w", err)
	}

	out := make([]int, 0, estimateCount(n))
	for p, ok := range isPrime {
		if ok {
			out = append(out, p)
		}
	}

	return out, nil
}

// IsPrime reports whether n is prime by trial division over 2 and odd d ≤ √n.
// Negative values, 0 and 1 are not prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// estimateCount is a capacity hint for the prime slice, not a bound on π(n).
func estimateCount(n int) int {
	if n < 16 {
		return 6
	}

	return n / 4
}

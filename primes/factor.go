// SPDX-License-Identifier: MIT
package primes

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Factorize - prime factorization by trial division
//
// Description:
//
//	Returns the factorization of n ordered by ascending prime such that
//	the product of prime^multiplicity equals n exactly.
//
// Algorithm Outline:
//  1. Divide out 2 as many times as possible.
//  2. For odd d = 3, 5, 7, … while d·d ≤ quotient: divide out d repeatedly.
//     Divisors are visited in increasing order, so any d that still divides
//     the quotient is prime (its own prime factors were removed earlier).
//  3. A quotient > 1 left after the loop is the single prime factor
//     greater than √n; record it with multiplicity 1.
//
// Counts are accumulated in a plain map and sorted once at the end.
//
// Complexity:
//
//	Time   = O(√n)
//	Memory = O(k), k = number of distinct primes
//
// Edge cases:
//   - n = 0 and n = 1 return an empty Factorization.
//
// Errors:
//   - ErrInvalidArgument: if n < 0.
func Factorize(n int64) (Factorization, error) {
	if n < 0 {
		return nil, fmt.Errorf("Factorize(%d): %w", n, ErrInvalidArgument)
	}
	if n < 2 {
		return Factorization{}, nil
	}

	counts := make(map[int64]int)
	dividend := n

	for dividend%2 == 0 {
		dividend /= 2
		counts[2]++
	}

	// d <= dividend/d is d*d <= dividend without the int64 overflow near MaxInt64.
	for d := int64(3); dividend > 1 && d <= dividend/d; d += 2 {
		for dividend%d == 0 {
			dividend /= d
			counts[d]++
		}
	}

	if dividend > 1 {
		counts[dividend] = 1
	}

	out := make(Factorization, 0, len(counts))
	for _, p := range slices.Sorted(maps.Keys(counts)) {
		out = append(out, Factor{Prime: p, Multiplicity: counts[p]})
	}

	return out, nil
}

// DistinctFactors - sieve-assisted distinct prime factors
//
// Description:
//
//	Returns the distinct prime factors of n in ascending order, without
//	multiplicities. The result always equals Factorize(n).Primes().
//
// Algorithm Outline:
//  1. r = ⌊√n⌋; sieve primes ≤ r and keep those dividing n.
//  2. q = n. While q > r and some found factor divides q:
//     q /= product of the found factors that divide q.
//  3. If q > r, then q is the one prime factor of n above √n; append it.
//
// At most one prime factor of n can exceed √n, which is what makes step 3
// sound. Step 2 recomputes a product per round, O(k) each; fine for the
// factor counts in scope, not a scalable pattern.
//
// Complexity:
//
//	Time   = O(√n·log log √n)
//	Memory = O(√n)
//
// Errors:
//   - ErrInvalidArgument: if n < 0.
func DistinctFactors(n int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("DistinctFactors(%d): %w", n, ErrInvalidArgument)
	}
	if n < 2 {
		return []int64{}, nil
	}

	root := isqrt(n)
	small, err := PrimesUpTo(int(root))
	if err != nil {
		return nil, fmt.Errorf("DistinctFactors: %w", err)
	}

	factors := make([]int64, 0, 8)
	for _, p := range small {
		if n%int64(p) == 0 {
			factors = append(factors, int64(p))
		}
	}

	quotient := n
	remaining := factors
	for quotient > root && len(remaining) > 0 {
		product := int64(1)
		for _, p := range remaining {
			product *= p
		}
		quotient /= product

		remaining = remaining[:0:0]
		for _, p := range factors {
			if quotient%p == 0 {
				remaining = append(remaining, p)
			}
		}
	}

	if quotient > root {
		factors = append(factors, quotient)
	}

	return factors, nil
}

// isqrt returns ⌊√n⌋ for n ≥ 0, correcting float64 rounding at the edges.
func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// Package primes defines the factorization types and sentinel errors.
package primes

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for primes operations.
var (
	// ErrInvalidArgument indicates a negative input to the sieve or to factorization.
	ErrInvalidArgument = errors.New("primes: invalid argument")
)

// Factor is a single prime together with its multiplicity in a factorization.
type Factor struct {
	Prime        int64 // prime factor, always ≥ 2
	Multiplicity int   // exponent, always ≥ 1
}

// Factorization is a factor multiset ordered by ascending Prime.
// Each prime appears at most once. The empty factorization represents 1
// (and, by convention, 0).
type Factorization []Factor

// Primes returns the distinct primes of f in ascending order.
func (f Factorization) Primes() []int64 {
	out := make([]int64, len(f))
	for i, fc := range f {
		out[i] = fc.Prime
	}

	return out
}

// Map returns f as a plain prime → multiplicity map.
func (f Factorization) Map() map[int64]int {
	m := make(map[int64]int, len(f))
	for _, fc := range f {
		m[fc.Prime] = fc.Multiplicity
	}

	return m
}

// Largest returns the greatest prime of f; ok is false when f is empty.
func (f Factorization) Largest() (p int64, ok bool) {
	if len(f) == 0 {
		return 0, false
	}

	return f[len(f)-1].Prime, true
}

// Product multiplies every prime^multiplicity back together.
// For any n ≥ 1, Factorize(n) followed by Product returns n.
func (f Factorization) Product() int64 {
	product := int64(1)
	for _, fc := range f {
		for i := 0; i < fc.Multiplicity; i++ {
			product *= fc.Prime
		}
	}

	return product
}

// String renders f as "2^3 · 3 · 5^2".
func (f Factorization) String() string {
	if len(f) == 0 {
		return "1"
	}
	parts := make([]string, len(f))
	for i, fc := range f {
		if fc.Multiplicity == 1 {
			parts[i] = fmt.Sprintf("%d", fc.Prime)
			continue
		}
		parts[i] = fmt.Sprintf("%d^%d", fc.Prime, fc.Multiplicity)
	}

	return strings.Join(parts, " · ")
}

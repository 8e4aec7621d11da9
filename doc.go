// Package lvleuler is a small collection of exact integer primitives and the
// puzzles built on top of them.
//
// Every primitive works on int64, reports overflow instead of wrapping, and
// returns package-prefixed sentinel errors that callers match with errors.Is.
//
// Subpackages:
//
//	primes/       Eratosthenes sieve, trial-division factorization, IsPrime
//	euclid/       GCD, LCM and the smallest common multiple of a set
//	fibonacci/    Nth, memoized Fib and a bounded Fibonacci iterator
//	multiples/    natural numbers divisible by any of a set of divisors
//	triangle/     bottom-up max path sum over integer triangles
//
// The euler command (cmd/euler) solves the puzzle catalog shipped in
// internal/catalog and prints one answer per line:
//
//	go run ./cmd/euler run
//	go run ./cmd/euler triangle --path rows.txt
package lvleuler

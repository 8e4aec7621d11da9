// Package multiples enumerates the natural numbers below a bound that are
// divisible by at least one of a set of divisors.
//
// The classic instance is "multiples of 3 or 5 below 1000":
//
//	sum, _ := multiples.SumBelow(1000, 3, 5) // 233168
package multiples

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var (
	// ErrInvalidArgument indicates a negative bound, no divisors, or a divisor ≤ 0.
	ErrInvalidArgument = errors.New("multiples: invalid argument")

	// ErrOverflow indicates the sum exceeds int64.
	ErrOverflow = errors.New("multiples: sum overflows int64")
)

// All yields, in ascending order, every x in [0, n) divisible by at least
// one divisor. 0 is included since it is a multiple of everything.
//
// Divisors ≤ 0 are skipped and n ≤ 0 yields nothing; Below and SumBelow
// reject such arguments instead.
func All(n int64, divisors ...int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for x := int64(0); x < n; x++ {
			if divisibleByAny(x, divisors) && !yield(x) {
				return
			}
		}
	}
}

// Below collects All(n, divisors...) into a slice.
//
// Errors:
//   - ErrInvalidArgument: if n < 0, divisors is empty, or any divisor ≤ 0.
func Below(n int64, divisors ...int64) ([]int64, error) {
	if err := validate(n, divisors); err != nil {
		return nil, fmt.Errorf("Below: %w", err)
	}

	out := make([]int64, 0)
	for x := range All(n, divisors...) {
		out = append(out, x)
	}

	return out, nil
}

// SumBelow returns the sum of All(n, divisors...).
//
// Errors:
//   - ErrInvalidArgument: if n < 0, divisors is empty, or any divisor ≤ 0.
//   - ErrOverflow: if the sum exceeds int64.
func SumBelow(n int64, divisors ...int64) (int64, error) {
	if err := validate(n, divisors); err != nil {
		return 0, fmt.Errorf("SumBelow: %w", err)
	}

	var sum int64
	for x := range All(n, divisors...) {
		if sum > math.MaxInt64-x {
			return 0, fmt.Errorf("SumBelow(%d): %w", n, ErrOverflow)
		}
		sum += x
	}

	return sum, nil
}

func validate(n int64, divisors []int64) error {
	if n < 0 {
		return fmt.Errorf("bound %d: %w", n, ErrInvalidArgument)
	}
	if len(divisors) == 0 {
		return fmt.Errorf("no divisors: %w", ErrInvalidArgument)
	}
	for _, d := range divisors {
		if d <= 0 {
			return fmt.Errorf("divisor %d: %w", d, ErrInvalidArgument)
		}
	}

	return nil
}

func divisibleByAny(x int64, divisors []int64) bool {
	for _, d := range divisors {
		if d > 0 && x%d == 0 {
			return true
		}
	}

	return false
}

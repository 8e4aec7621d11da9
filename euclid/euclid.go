// Package euclid implements the Euclidean algorithm and the least common
// multiple reductions built on it.
//
// All functions work on non-negative int64 values and report overflow
// instead of wrapping.
//
//	g, _ := euclid.GCD(48, 18)                    // 6
//	l, _ := euclid.LCM(4, 6)                      // 12
//	xs, _ := euclid.Range(1, 20)
//	m, _ := euclid.SmallestMultiple(xs...)        // 232792560
package euclid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument indicates a negative operand or an empty sequence.
	ErrInvalidArgument = errors.New("euclid: invalid argument")

	// ErrOverflow indicates the exact result does not fit in int64.
	ErrOverflow = errors.New("euclid: result overflows int64")
)

// GCD returns the greatest common divisor of a and b.
//
// Each step replaces (a, b) with (b, a mod b) until b is 0; when a < b the
// first step just swaps them. GCD(0, 0) is 0 by convention.
//
// Errors:
//   - ErrInvalidArgument: if a or b is negative.
func GCD(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("GCD(%d, %d): %w", a, b, ErrInvalidArgument)
	}

	return gcd(a, b), nil
}

// LCM returns the least common multiple of a and b, computed as a/gcd·b so
// the intermediate never exceeds the result. LCM(0, x) is 0.
//
// Errors:
//   - ErrInvalidArgument: if a or b is negative.
//   - ErrOverflow: if the result exceeds math.MaxInt64.
func LCM(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("LCM(%d, %d): %w", a, b, ErrInvalidArgument)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}

	q := a / gcd(a, b)
	if q > math.MaxInt64/b {
		return 0, fmt.Errorf("LCM(%d, %d): %w", a, b, ErrOverflow)
	}

	return q * b, nil
}

// SmallestMultiple returns the smallest positive integer divisible by every
// value, i.e. LCM folded left over values.
//
// Errors:
//   - ErrInvalidArgument: if values is empty or holds a negative value.
//   - ErrOverflow: if any partial LCM exceeds math.MaxInt64.
func SmallestMultiple(values ...int64) (int64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("SmallestMultiple: empty sequence: %w", ErrInvalidArgument)
	}

	acc := values[0]
	if acc < 0 {
		return 0, fmt.Errorf("SmallestMultiple: value %d: %w", acc, ErrInvalidArgument)
	}
	for _, v := range values[1:] {
		var err error
		if acc, err = LCM(acc, v); err != nil {
			return 0, fmt.Errorf("SmallestMultiple: %w", err)
		}
	}

	return acc, nil
}

// MaxRangeLen caps how many values Range will materialize.
const MaxRangeLen = 1 << 20

// Range returns the inclusive sequence from, from+1, …, to.
//
// Errors:
//   - ErrInvalidArgument: if from < 0, to < from, or the sequence would hold
//     more than MaxRangeLen values.
func Range(from, to int64) ([]int64, error) {
	if from < 0 || to < from {
		return nil, fmt.Errorf("Range(%d, %d): %w", from, to, ErrInvalidArgument)
	}
	// to-from cannot overflow for 0 ≤ from ≤ to.
	if to-from >= MaxRangeLen {
		return nil, fmt.Errorf("Range(%d, %d): more than %d values: %w", from, to, MaxRangeLen, ErrInvalidArgument)
	}

	out := make([]int64, 0, to-from+1)
	for v := from; ; v++ {
		out = append(out, v)
		if v == to {
			break
		}
	}

	return out, nil
}

// gcd assumes a, b ≥ 0.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

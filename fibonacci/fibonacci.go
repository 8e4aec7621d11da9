package fibonacci

import (
	"errors"
	"fmt"
	"math"
)

// MaxIndex is the largest n for which F(n) fits in int64.
const MaxIndex = 92

var (
	// ErrInvalidArgument indicates a negative index or bound.
	ErrInvalidArgument = errors.New("fibonacci: invalid argument")

	// ErrOverflow indicates the requested term or sum exceeds int64.
	ErrOverflow = errors.New("fibonacci: result overflows int64")
)

// Nth returns F(n) with F(0) = 0 and F(1) = 1, advancing two running values.
//
// Errors:
//   - ErrInvalidArgument: if n < 0.
//   - ErrOverflow: if n > MaxIndex.
func Nth(n int) (int64, error) {
	if err := checkIndex(n); err != nil {
		return 0, fmt.Errorf("Nth: %w", err)
	}
	if n == 0 {
		return 0, nil
	}

	prev, curr := int64(0), int64(1)
	for i := 1; i < n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr, nil
}

// Memo computes F(n) by memoized recursion over a cache it owns.
// The zero value is ready to use; separate Memo values share nothing.
type Memo struct {
	cache map[int]int64
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo {
	return &Memo{cache: make(map[int]int64)}
}

// Fib returns F(n), filling the cache for every index it visits.
//
// Errors:
//   - ErrInvalidArgument: if n < 0.
//   - ErrOverflow: if n > MaxIndex.
func (m *Memo) Fib(n int) (int64, error) {
	if err := checkIndex(n); err != nil {
		return 0, fmt.Errorf("Memo.Fib: %w", err)
	}
	if m.cache == nil {
		m.cache = make(map[int]int64)
	}

	return m.fib(n), nil
}

// Len reports how many terms are cached.
func (m *Memo) Len() int { return len(m.cache) }

// Reset drops every cached term.
func (m *Memo) Reset() { clear(m.cache) }

func (m *Memo) fib(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	if v, ok := m.cache[n]; ok {
		return v
	}
	v := m.fib(n-1) + m.fib(n-2)
	m.cache[n] = v

	return v
}

// SumEven returns the sum of the even Fibonacci terms that do not exceed maxValue.
//
// Errors:
//   - ErrInvalidArgument: if maxValue < 0.
//   - ErrOverflow: if the sum exceeds int64.
func SumEven(maxValue int64) (int64, error) {
	if maxValue < 0 {
		return 0, fmt.Errorf("SumEven(%d): %w", maxValue, ErrInvalidArgument)
	}

	it := New(EvenOnly(), WithMaxValue(maxValue))
	var sum int64
	for _, v := range it.All() {
		if sum > math.MaxInt64-v {
			return 0, fmt.Errorf("SumEven(%d): %w", maxValue, ErrOverflow)
		}
		sum += v
	}
	if err := it.Err(); err != nil {
		return 0, fmt.Errorf("SumEven(%d): %w", maxValue, err)
	}

	return sum, nil
}

func checkIndex(n int) error {
	if n < 0 {
		return fmt.Errorf("index %d: %w", n, ErrInvalidArgument)
	}
	if n > MaxIndex {
		return fmt.Errorf("index %d: %w", n, ErrOverflow)
	}

	return nil
}

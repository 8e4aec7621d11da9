package fibonacci

import (
	"iter"
	"math"
)

// Panic messages for invalid option values (programmer error).
const panicMaxIndexNegative = "fibonacci: WithMaxIndex requires n >= 0"

// Option configures an Iterator.
type Option func(*options)

type options struct {
	maxIndex    int // inclusive; -1 means unbounded
	below       int64
	hasBelow    bool
	maxValue    int64
	hasMaxValue bool
	evenOnly    bool
}

// WithMaxIndex stops the stream after the term with index n (inclusive),
// so n+1 terms are produced. In EvenOnly mode the index counts even terms.
// Panics if n < 0.
func WithMaxIndex(n int) Option {
	if n < 0 {
		panic(panicMaxIndexNegative)
	}

	return func(o *options) { o.maxIndex = n }
}

// WithBelow stops the stream at the first term ≥ v (exclusive upper bound).
func WithBelow(v int64) Option {
	return func(o *options) { o.below, o.hasBelow = v, true }
}

// WithMaxValue stops the stream at the first term > v (inclusive upper bound).
func WithMaxValue(v int64) Option {
	return func(o *options) { o.maxValue, o.hasMaxValue = v, true }
}

// EvenOnly restricts the stream to even terms: 0, 2, 8, 34, 144, …
func EvenOnly() Option {
	return func(o *options) { o.evenOnly = true }
}

// Iterator is a finite or unbounded stream of Fibonacci terms.
//
// Usage follows bufio.Scanner: call Next until it returns false, read
// Value/Index after each true, then check Err. An Iterator is single-pass;
// build a new one with New to restart.
//
// Without any bound the stream ends after the last term that fits in int64
// and Err reports ErrOverflow. With a value bound the stream always ends
// cleanly, since an unrepresentable term exceeds every int64 bound.
type Iterator struct {
	opts options

	// a is the next term to emit, b the one after it.
	a, b     int64
	aOK, bOK bool
	next     int

	value int64
	index int
	done  bool
	err   error
}

// New returns an Iterator positioned before the first term F(0) = 0.
func New(opts ...Option) *Iterator {
	o := options{maxIndex: -1}
	for _, opt := range opts {
		opt(&o)
	}

	it := &Iterator{opts: o, a: 0, b: 1, aOK: true, bOK: true, index: -1}
	if o.evenOnly {
		it.b = 2
	}

	return it
}

// Next advances to the next term and reports whether one is available.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if it.opts.maxIndex >= 0 && it.next > it.opts.maxIndex {
		return it.stop(nil)
	}
	if !it.aOK {
		if it.opts.hasBelow || it.opts.hasMaxValue {
			return it.stop(nil)
		}

		return it.stop(ErrOverflow)
	}

	v := it.a
	if it.opts.hasBelow && v >= it.opts.below {
		return it.stop(nil)
	}
	if it.opts.hasMaxValue && v > it.opts.maxValue {
		return it.stop(nil)
	}

	it.value, it.index = v, it.next
	it.next++
	it.advance()

	return true
}

// Value returns the current term. It is only meaningful after Next returned true.
func (it *Iterator) Value() int64 { return it.value }

// Index returns the position of the current term: n for F(n), or k for the
// k-th even term in EvenOnly mode.
func (it *Iterator) Index() int { return it.index }

// Err returns ErrOverflow if an unbounded stream ran past int64, nil otherwise.
func (it *Iterator) Err() error { return it.err }

// All yields (index, value) pairs for the remaining terms.
func (it *Iterator) All() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for it.Next() {
			if !yield(it.index, it.value) {
				return
			}
		}
	}
}

// Values yields the remaining terms.
func (it *Iterator) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for it.Next() {
			if !yield(it.value) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice and returns it with Err.
func (it *Iterator) Collect() ([]int64, error) {
	var out []int64
	for it.Next() {
		out = append(out, it.value)
	}

	return out, it.err
}

// advance shifts (a, b) one step; validity flags track int64 overflow.
func (it *Iterator) advance() {
	a, b := it.a, it.b
	aOK, bOK := it.aOK, it.bOK

	it.a, it.aOK = b, bOK
	it.b, it.bOK = 0, false
	if !aOK || !bOK {
		return
	}

	if it.opts.evenOnly {
		// E(k+1) = 4·E(k) + E(k-1)
		if b <= (math.MaxInt64-a)/4 {
			it.b, it.bOK = 4*b+a, true
		}

		return
	}
	if a <= math.MaxInt64-b {
		it.b, it.bOK = a+b, true
	}
}

func (it *Iterator) stop(err error) bool {
	it.done, it.err = true, err

	return false
}

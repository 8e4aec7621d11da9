// Package fibonacci generates Fibonacci numbers 0, 1, 1, 2, 3, 5, 8, …
//
// 🚀 Three ways in:
//
//	• Nth(n) - F(n) by a two-variable loop, O(n) time, O(1) state
//	• Memo - caller-owned cache filled by memoized recursion
//	• Iterator - restartable stream with an index or value bound,
//	                    optionally restricted to the even terms
//
// ⚙️ Usage:
//
//	// every even term not exceeding four million
//	it := fibonacci.New(fibonacci.EvenOnly(), fibonacci.WithMaxValue(4_000_000))
//	for _, v := range it.All() {
//	  sum += v
//	}
//	if err := it.Err(); err != nil {
//	  // only ErrOverflow is possible, for unbounded streams
//	}
//
// Terms are int64; F(92) is the largest that fits. Anything past it is
// reported as ErrOverflow rather than wrapped.
//
// Even-only streams never touch odd terms: every third Fibonacci number is
// even, and consecutive even terms satisfy E(k) = 4·E(k-1) + E(k-2).
package fibonacci

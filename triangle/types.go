// Package triangle defines the triangle type, solver options and sentinel errors.
package triangle

import (
	"errors"
	"fmt"
)

// Sentinel errors for triangle operations.
var (
	// ErrMalformedInput indicates a row of the wrong length or a non-integer token.
	ErrMalformedInput = errors.New("triangle: malformed input")

	// ErrOverflow indicates a path sum that does not fit in int64.
	ErrOverflow = errors.New("triangle: path sum overflows int64")

	// ErrPathNeedsFullTriangle indicates that path recovery requires FullTriangle mode.
	ErrPathNeedsFullTriangle = errors.New("triangle: ReturnPath requires MemoryMode=FullTriangle")
)

// Triangle is a ragged lower-triangular grid: row r has exactly r+1 entries.
type Triangle [][]int64

// Rows returns the number of rows.
func (t Triangle) Rows() int { return len(t) }

// Validate reports ErrMalformedInput if some row r does not hold r+1 entries.
func (t Triangle) Validate() error {
	for r, row := range t {
		if len(row) != r+1 {
			return fmt.Errorf("row %d has %d entries, want %d: %w", r, len(row), r+1, ErrMalformedInput)
		}
	}

	return nil
}

// Clone returns a deep copy of t.
func (t Triangle) Clone() Triangle {
	if t == nil {
		return nil
	}
	out := make(Triangle, len(t))
	for r, row := range t {
		out[r] = append([]int64(nil), row...)
	}

	return out
}

// MemoryMode controls how Solve stores its DP state.
//
//   - FullTriangle - keep the whole derived sum triangle.
//     Allows sum + backtrace of the optimal path. Memory: O(N).
//
//   - SingleRow - keep only the running row of sums.
//     Memory: O(rows), but the path cannot be recovered.
type MemoryMode int

const (
	// FullTriangle mode: store all rows, support path recovery.
	FullTriangle MemoryMode = iota

	// SingleRow mode: one row of sums, no path recovery.
	SingleRow
)

// Options configures Solve.
//
// Fields:
//   - MemoryMode - FullTriangle or SingleRow storage.
//   - ReturnPath - if true, Solve backtracks and returns the column chosen in
//     every row. Requires MemoryMode=FullTriangle.
type Options struct {
	MemoryMode MemoryMode
	ReturnPath bool
}

// DefaultOptions returns FullTriangle with ReturnPath disabled.
func DefaultOptions() Options {
	return Options{
		MemoryMode: FullTriangle,
		ReturnPath: false,
	}
}

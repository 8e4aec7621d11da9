package triangle

import (
	"fmt"
	"math"
	"slices"
)

// Solve - maximum path sum, bottom-up
//
// Description:
//
//	Finds the largest sum of a path that starts at the apex and ends in the
//	last row, stepping each time to one of the two entries diagonally below.
//
// Algorithm Outline (FullTriangle):
//  1. S = copy of t.
//  2. For r = 1..R-1:
//     S[r][0] += S[r-1][0]
//     S[r][c] += max(S[r-1][c-1], S[r-1][c])   for 0 < c < r
//     S[r][r] += S[r-1][r-1]
//  3. sum = max(S[R-1]).
//  4. If ReturnPath, start from the argmax column of the last row and walk
//     upward, choosing the parent whose S equals S[r][c] - t[r][c].
//
// SingleRow mode runs the same recurrence right-to-left over one slice, so
// each cell still reads the previous row's values before they are replaced.
//
// Edge cases:
//   - zero rows: sum 0, nil path.
//   - one row:   sum t[0][0], path [0].
//
// Complexity:
//
//	Time   = O(N), N = total entries
//	Memory = O(N) (FullTriangle) or O(R) (SingleRow)
//
// Errors:
//   - ErrMalformedInput: if t is not triangular.
//   - ErrPathNeedsFullTriangle: if ReturnPath=true with SingleRow mode.
//   - ErrOverflow: if a partial path sum leaves the int64 range.
func Solve(t Triangle, opts *Options) (sum int64, path []int, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.ReturnPath && o.MemoryMode != FullTriangle {
		return 0, nil, ErrPathNeedsFullTriangle
	}
	if err = t.Validate(); err != nil {
		return 0, nil, err
	}
	if len(t) == 0 {
		return 0, nil, nil
	}

	if o.MemoryMode == SingleRow {
		row, err := rollRows(t)
		if err != nil {
			return 0, nil, err
		}

		return slices.Max(row), nil, nil
	}

	sums, err := accumulate(t)
	if err != nil {
		return 0, nil, err
	}
	last := sums[len(sums)-1]
	col := argmax(last)
	sum = last[col]
	if o.ReturnPath {
		path = backtrack(t, sums, col)
	}

	return sum, path, nil
}

// MaxPathSum returns the maximum path sum of t; an empty triangle yields 0.
//
// Errors:
//   - ErrMalformedInput: if t is not triangular.
//   - ErrOverflow: if a partial path sum leaves the int64 range.
func MaxPathSum(t Triangle) (int64, error) {
	opts := Options{MemoryMode: SingleRow}
	sum, _, err := Solve(t, &opts)
	if err != nil {
		return 0, fmt.Errorf("MaxPathSum: %w", err)
	}

	return sum, nil
}

// PathSums returns the derived triangle whose entry (r, c) is the best sum
// of any path from the apex ending at (r, c). t is left untouched.
//
// Errors:
//   - ErrMalformedInput: if t is not triangular.
//   - ErrOverflow: if a partial path sum leaves the int64 range.
func PathSums(t Triangle) (Triangle, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("PathSums: %w", err)
	}

	sums, err := accumulate(t)
	if err != nil {
		return nil, fmt.Errorf("PathSums: %w", err)
	}

	return sums, nil
}

// accumulate assumes t is valid and returns its running max-sum triangle.
func accumulate(t Triangle) (Triangle, error) {
	sums := t.Clone()
	for r := 1; r < len(sums); r++ {
		prev, row := sums[r-1], sums[r]
		for c := 0; c <= r; c++ {
			v, ok := add(row[c], bestParent(prev, r, c))
			if !ok {
				return nil, fmt.Errorf("row %d column %d: %w", r, c, ErrOverflow)
			}
			row[c] = v
		}
	}

	return sums, nil
}

// rollRows assumes t is valid and non-empty; it returns the last row of sums.
// Columns are updated right to left so row[c-1] still holds the previous row.
func rollRows(t Triangle) ([]int64, error) {
	row := make([]int64, len(t))
	row[0] = t[0][0]
	for r := 1; r < len(t); r++ {
		for c := r; c >= 0; c-- {
			v, ok := add(t[r][c], bestParent(row, r, c))
			if !ok {
				return nil, fmt.Errorf("row %d column %d: %w", r, c, ErrOverflow)
			}
			row[c] = v
		}
	}

	return row, nil
}

// bestParent returns the larger of the sums above (r, c); the edges have one.
// prev must still hold row r-1 in columns c-1 and c.
func bestParent(prev []int64, r, c int) int64 {
	switch c {
	case 0:
		return prev[0]
	case r:
		return prev[r-1]
	default:
		return max(prev[c-1], prev[c])
	}
}

// add returns a+b and false if the sum leaves the int64 range.
func add(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}

	return a + b, true
}

// backtrack walks from (R-1, col) to the apex and returns one column per row.
func backtrack(t, sums Triangle, col int) []int {
	path := make([]int, len(t))
	path[len(t)-1] = col
	for r := len(t) - 1; r > 0; r-- {
		want := sums[r][col] - t[r][col]
		switch {
		case col == r: // right edge has only the up-left parent
			col = r - 1
		case col == 0: // left edge has only the straight-up parent
		case sums[r-1][col-1] == want:
			col--
		}
		path[r-1] = col
	}

	return path
}

func argmax(xs []int64) int {
	best := 0
	for i, v := range xs {
		if v > xs[best] {
			best = i
		}
	}

	return best
}

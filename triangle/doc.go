// Package triangle computes the maximum top-to-bottom path sum through a
// triangle of integers, moving at each step to one of the two entries
// diagonally below.
//
// 🚀 What is a triangle here?
//
//	   3
//	  7 4
//	 2 4 6
//	8 5 9 3
//
//	Row r (0-indexed) holds exactly r+1 integers. The best path above is
//	3 → 7 → 4 → 9 = 23.
//
// ✨ Key features:
//   - bottom-up DP over the ragged rows: O(total entries) time
//   - FullTriangle mode keeps the derived sum triangle and can return the path
//   - SingleRow mode keeps one row: O(width) memory, sum only
//   - plain-text reader for the "one row per line" file format
//   - the input Triangle is never modified
//
// ⚙️ Usage:
//
//	t, err := triangle.Load("p018_triangle.txt")
//	if err != nil {
//	  // handle ErrMalformedInput or an I/O error
//	}
//	best, err := triangle.MaxPathSum(t)
//
//	// with the winning columns
//	opts := triangle.DefaultOptions()
//	opts.ReturnPath = true
//	sum, path, err := triangle.Solve(t, &opts)
//
// Performance:
//
//   - Time:   O(N), N = number of entries
//   - Memory: O(N) (FullTriangle) or O(rows) (SingleRow)
package triangle

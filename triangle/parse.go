package triangle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a triangle in the plain-text format: one row per line,
// integers separated by whitespace, line r (0-indexed, blank lines skipped)
// holding exactly r+1 integers. Leading zeros such as "04" are accepted.
//
// Errors:
//   - ErrMalformedInput: on a non-integer token or a row of the wrong length;
//     the message carries the 1-based line number.
//   - any error from r.
func Parse(r io.Reader) (Triangle, error) {
	var (
		t      Triangle
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		want := len(t) + 1
		if len(fields) != want {
			return nil, fmt.Errorf("line %d: got %d values, want %d: %w", lineNo, len(fields), want, ErrMalformedInput)
		}

		row := make([]int64, len(fields))
		for i, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: token %q: %w", lineNo, tok, ErrMalformedInput)
			}
			row[i] = v
		}
		t = append(t, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("triangle: read: %w", err)
	}

	return t, nil
}

// Load opens path and parses it with Parse.
func Load(path string) (Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("triangle: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Package puzzle maps catalog problems onto the lvleuler primitives and runs them.
package puzzle

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/katalvlaran/lvleuler/euclid"
	"github.com/katalvlaran/lvleuler/fibonacci"
	"github.com/katalvlaran/lvleuler/internal/catalog"
	"github.com/katalvlaran/lvleuler/multiples"
	"github.com/katalvlaran/lvleuler/primes"
	"github.com/katalvlaran/lvleuler/triangle"
)

var (
	// ErrUnsupportedKind indicates a problem kind with no registered solver.
	ErrUnsupportedKind = errors.New("puzzle: unsupported kind")

	// ErrNoAnswer indicates a computation that finished without an answer,
	// e.g. a number with no prime factors.
	ErrNoAnswer = errors.New("puzzle: no answer")
)

// Solver computes the answer for one problem; data holds its input files.
type Solver func(p catalog.Problem, data fs.FS) (int64, error)

var solvers = map[catalog.Kind]Solver{
	catalog.KindMultiples:          solveMultiples,
	catalog.KindEvenFibonacci:      solveEvenFibonacci,
	catalog.KindLargestPrimeFactor: solveLargestPrimeFactor,
	catalog.KindSmallestMultiple:   solveSmallestMultiple,
	catalog.KindMaxPathSum:         solveMaxPathSum,
}

// Solve dispatches p to the solver registered for its kind.
func Solve(p catalog.Problem, data fs.FS) (int64, error) {
	solve, ok := solvers[p.Kind]
	if !ok {
		return 0, fmt.Errorf("problem %d: kind %q: %w", p.ID, p.Kind, ErrUnsupportedKind)
	}

	answer, err := solve(p, data)
	if err != nil {
		return 0, fmt.Errorf("problem %d: %w", p.ID, err)
	}

	return answer, nil
}

func solveMultiples(p catalog.Problem, _ fs.FS) (int64, error) {
	return multiples.SumBelow(p.Params.Limit, p.Params.Divisors...)
}

func solveEvenFibonacci(p catalog.Problem, _ fs.FS) (int64, error) {
	return fibonacci.SumEven(p.Params.Limit)
}

func solveLargestPrimeFactor(p catalog.Problem, _ fs.FS) (int64, error) {
	f, err := primes.Factorize(p.Params.Number)
	if err != nil {
		return 0, err
	}
	largest, ok := f.Largest()
	if !ok {
		return 0, fmt.Errorf("%d has no prime factors: %w", p.Params.Number, ErrNoAnswer)
	}

	return largest, nil
}

func solveSmallestMultiple(p catalog.Problem, _ fs.FS) (int64, error) {
	values, err := euclid.Range(p.Params.From, p.Params.To)
	if err != nil {
		return 0, err
	}

	return euclid.SmallestMultiple(values...)
}

func solveMaxPathSum(p catalog.Problem, data fs.FS) (int64, error) {
	f, err := data.Open(p.Params.File)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", p.Params.File, err)
	}
	defer f.Close()

	t, err := triangle.Parse(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", p.Params.File, err)
	}

	return triangle.MaxPathSum(t)
}

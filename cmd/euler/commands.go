package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvleuler/internal/catalog"
	"github.com/katalvlaran/lvleuler/internal/puzzle"
	"github.com/katalvlaran/lvleuler/triangle"
)

// errInvalidProblemID indicates a run argument that is not an integer id.
var errInvalidProblemID = errors.New("euler: invalid problem id")

// runPuzzles solves the requested puzzles, or the whole catalog, and prints
// one answer per line.
func runPuzzles(cmd *cobra.Command, args []string) error {
	c, err := catalog.Load()
	if err != nil {
		return err
	}

	problems, err := selectProblems(c, args)
	if err != nil {
		return err
	}

	runner := puzzle.NewRunner(logger, catalog.Data())
	var results []puzzle.Result
	if jobs > 1 {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		results, err = runner.RunParallel(ctx, problems, jobs)
	} else {
		results, err = runner.RunAll(problems)
	}
	for _, res := range results {
		fmt.Fprintln(cmd.OutOrStdout(), res.Answer)
	}

	return err
}

// selectProblems resolves ids in argument order; no ids means every problem.
func selectProblems(c *catalog.Catalog, args []string) ([]catalog.Problem, error) {
	if len(args) == 0 {
		return c.Problems(), nil
	}

	problems := make([]catalog.Problem, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", errInvalidProblemID, arg, err)
		}
		p, err := c.Lookup(id)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}

	return problems, nil
}

// listPuzzles prints "id  slug  title" for every catalogued puzzle.
func listPuzzles(cmd *cobra.Command, args []string) error {
	c, err := catalog.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range c.Problems() {
		fmt.Fprintf(out, "%-4d %-28s %s\n", p.ID, p.Slug, p.Title)
	}

	return nil
}

// solveTriangleFile prints the max path sum of args[0], plus the path with --path.
func solveTriangleFile(cmd *cobra.Command, args []string) error {
	t, err := triangle.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("Triangle loaded", zap.String("file", args[0]), zap.Int("rows", t.Rows()))

	opts := triangle.DefaultOptions()
	opts.ReturnPath = showPath
	if !showPath {
		opts.MemoryMode = triangle.SingleRow
	}

	sum, path, err := triangle.Solve(t, &opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, sum)
	if showPath {
		cols := make([]string, len(path))
		for i, c := range path {
			cols[i] = strconv.Itoa(c)
		}
		fmt.Fprintln(out, strings.Join(cols, " "))
	}

	return nil
}

package puzzle_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvleuler/internal/catalog"
	"github.com/katalvlaran/lvleuler/internal/puzzle"
	"github.com/katalvlaran/lvleuler/triangle"
)

// TestSolve_Catalog solves every shipped problem and checks the recorded answer.
func TestSolve_Catalog(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, p := range c.Problems() {
		t.Run(p.Slug, func(t *testing.T) {
			got, err := puzzle.Solve(p, catalog.Data())
			require.NoError(t, err)
			assert.Equal(t, p.Answer, got)
		})
	}
}

// TestSolve_Idempotent runs the whole catalog twice.
func TestSolve_Idempotent(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, p := range c.Problems() {
		first, err := puzzle.Solve(p, catalog.Data())
		require.NoError(t, err)
		second, err := puzzle.Solve(p, catalog.Data())
		require.NoError(t, err)
		assert.Equal(t, first, second, "problem %d", p.ID)
	}
}

// TestSolve_Errors covers dispatch and propagation failures.
func TestSolve_Errors(t *testing.T) {
	data := fstest.MapFS{
		"bad.txt": {Data: []byte("1\n2\n")},
	}
	cases := []struct {
		name string
		p    catalog.Problem
		want error
	}{
		{
			name: "UnknownKind",
			p:    catalog.Problem{ID: 9, Kind: "sudoku"},
			want: puzzle.ErrUnsupportedKind,
		},
		{
			name: "NoPrimeFactors",
			p:    catalog.Problem{ID: 3, Kind: catalog.KindLargestPrimeFactor, Params: catalog.Params{Number: 1}},
			want: puzzle.ErrNoAnswer,
		},
		{
			name: "MalformedTriangle",
			p:    catalog.Problem{ID: 18, Kind: catalog.KindMaxPathSum, Params: catalog.Params{File: "bad.txt"}},
			want: triangle.ErrMalformedInput,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzle.Solve(tc.p, data)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := puzzle.Solve(catalog.Problem{ID: 18, Kind: catalog.KindMaxPathSum, Params: catalog.Params{File: "missing.txt"}}, data)
	assert.Error(t, err, "missing input file")
}

// TestRunner_LogsAndResults checks the Result fields and debug logging.
func TestRunner_LogsAndResults(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := puzzle.NewRunner(zap.New(core), catalog.Data())

	c, err := catalog.Load()
	require.NoError(t, err)
	p, err := c.Lookup(5)
	require.NoError(t, err)

	res, err := r.Run(p)
	require.NoError(t, err)
	assert.Equal(t, 5, res.ID)
	assert.Equal(t, p.Title, res.Title)
	assert.Equal(t, int64(232792560), res.Answer)
	assert.GreaterOrEqual(t, int64(res.Elapsed), int64(0))

	solved := logs.FilterMessage("Problem solved").All()
	require.Len(t, solved, 1)
	assert.Equal(t, int64(5), solved[0].ContextMap()["problem"])
	assert.Zero(t, logs.FilterMessage("Answer differs from catalog").Len())
}

// TestRunner_WarnsOnMismatch logs a warning when the catalog answer is wrong.
func TestRunner_WarnsOnMismatch(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := puzzle.NewRunner(zap.New(core), nil)

	p := catalog.Problem{
		ID:     1,
		Kind:   catalog.KindMultiples,
		Params: catalog.Params{Limit: 10, Divisors: []int64{3, 5}},
		Answer: 24,
	}
	res, err := r.Run(p)
	require.NoError(t, err)
	assert.Equal(t, int64(23), res.Answer)
	assert.Equal(t, 1, logs.FilterMessage("Answer differs from catalog").Len())
}

// TestRunner_RunAllStopsOnError returns partial results and logs the failure.
func TestRunner_RunAllStopsOnError(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := puzzle.NewRunner(zap.New(core), nil)

	problems := []catalog.Problem{
		{ID: 1, Kind: catalog.KindMultiples, Params: catalog.Params{Limit: 10, Divisors: []int64{3, 5}}},
		{ID: 2, Kind: catalog.KindEvenFibonacci, Params: catalog.Params{Limit: -1}},
		{ID: 3, Kind: catalog.KindMultiples, Params: catalog.Params{Limit: 10, Divisors: []int64{3}}},
	}
	results, err := r.RunAll(problems)
	require.Error(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(23), results[0].Answer)
	assert.Equal(t, 1, logs.FilterMessage("Problem failed").Len())
}

// TestNewRunner_NilLogger falls back to a no-op logger.
func TestNewRunner_NilLogger(t *testing.T) {
	r := puzzle.NewRunner(nil, catalog.Data())
	c, err := catalog.Load()
	require.NoError(t, err)

	results, err := r.RunAll(c.Problems())
	require.NoError(t, err)
	assert.Len(t, results, c.Len())
}

// TestRunner_RunParallel matches the sequential run in input order.
func TestRunner_RunParallel(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)
	r := puzzle.NewRunner(nil, catalog.Data())

	seq, err := r.RunAll(c.Problems())
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 16} {
		par, err := r.RunParallel(context.Background(), c.Problems(), workers)
		require.NoError(t, err, "workers=%d", workers)
		require.Len(t, par, len(seq))
		for i := range seq {
			assert.Equal(t, seq[i].ID, par[i].ID)
			assert.Equal(t, seq[i].Answer, par[i].Answer)
		}
	}
}

// TestRunner_RunParallelError returns the failure and no results.
func TestRunner_RunParallelError(t *testing.T) {
	r := puzzle.NewRunner(nil, nil)
	problems := []catalog.Problem{
		{ID: 1, Kind: catalog.KindMultiples, Params: catalog.Params{Limit: 10, Divisors: []int64{3, 5}}},
		{ID: 9, Kind: "sudoku"},
	}

	results, err := r.RunParallel(context.Background(), problems, 2)
	assert.ErrorIs(t, err, puzzle.ErrUnsupportedKind)
	assert.Nil(t, results)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.RunParallel(ctx, problems[:1], 1)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_EveryKindRegistered ensures each catalog kind reaches a solver.
func TestSolve_EveryKindRegistered(t *testing.T) {
	for _, kind := range catalog.Kinds {
		_, err := puzzle.Solve(catalog.Problem{ID: 1, Kind: kind}, fstest.MapFS{})
		assert.NotErrorIs(t, err, puzzle.ErrUnsupportedKind, "kind %q", kind)
	}
}

// TestRunner_RunAllTagsBatch shares one run id across a batch and mints a new
// one for the next batch.
func TestRunner_RunAllTagsBatch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := puzzle.NewRunner(zap.New(core), nil)
	problems := []catalog.Problem{
		{ID: 1, Kind: catalog.KindMultiples, Params: catalog.Params{Limit: 10, Divisors: []int64{3, 5}}},
		{ID: 2, Kind: catalog.KindEvenFibonacci, Params: catalog.Params{Limit: 100}},
	}

	runIDs := func() map[string]int {
		ids := make(map[string]int)
		for _, e := range logs.FilterMessage("Problem solved").All() {
			id, ok := e.ContextMap()["run"].(string)
			require.True(t, ok, "run id must be a string field")
			_, err := uuid.Parse(id)
			require.NoError(t, err)
			ids[id]++
		}
		return ids
	}

	_, err := r.RunAll(problems)
	require.NoError(t, err)
	first := runIDs()
	require.Len(t, first, 1)

	_, err = r.RunAll(problems)
	require.NoError(t, err)
	assert.Len(t, runIDs(), 2, "second batch gets its own id")
}

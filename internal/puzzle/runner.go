package puzzle

import (
	"context"
	"io/fs"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvleuler/internal/catalog"
)

// Result is the outcome of one run.
type Result struct {
	ID      int
	Title   string
	Answer  int64
	Elapsed time.Duration
}

// Runner solves problems and logs each run.
type Runner struct {
	logger *zap.Logger
	data   fs.FS
}

// NewRunner returns a Runner reading input files from data. A nil logger is
// replaced by a no-op logger.
func NewRunner(logger *zap.Logger, data fs.FS) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{logger: logger, data: data}
}

// Run solves p and reports the answer with its wall time.
func (r *Runner) Run(p catalog.Problem) (Result, error) {
	return r.run(r.logger, p)
}

// RunAll solves every problem in order and stops at the first failure,
// returning the results gathered so far.
func (r *Runner) RunAll(problems []catalog.Problem) ([]Result, error) {
	log := r.batchLogger()

	results := make([]Result, 0, len(problems))
	for _, p := range problems {
		res, err := r.run(log, p)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	log.Debug("Catalog run complete", zap.Int("problems", len(results)))

	return results, nil
}

// RunParallel solves problems concurrently with at most workers in flight.
// Results keep the input order. The first failure cancels runs not yet
// started and is returned with a nil slice.
func (r *Runner) RunParallel(ctx context.Context, problems []catalog.Problem, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	log := r.batchLogger()
	results := make([]Result, len(problems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range problems {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.run(log, p)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug("Parallel catalog run complete",
		zap.Int("problems", len(results)),
		zap.Int("workers", workers))

	return results, nil
}

// batchLogger tags every entry of one batch with a shared run id.
func (r *Runner) batchLogger() *zap.Logger {
	return r.logger.With(zap.String("run", uuid.NewString()))
}

func (r *Runner) run(logger *zap.Logger, p catalog.Problem) (Result, error) {
	log := logger.With(zap.Int("problem", p.ID), zap.String("kind", string(p.Kind)))
	log.Debug("Solving problem", zap.String("title", p.Title))

	start := time.Now()
	answer, err := Solve(p, r.data)
	elapsed := time.Since(start)
	if err != nil {
		log.Error("Problem failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return Result{}, err
	}

	if p.Answer != 0 && p.Answer != answer {
		log.Warn("Answer differs from catalog",
			zap.Int64("answer", answer),
			zap.Int64("expected", p.Answer))
	}
	log.Debug("Problem solved", zap.Int64("answer", answer), zap.Duration("elapsed", elapsed))

	return Result{ID: p.ID, Title: p.Title, Answer: answer, Elapsed: elapsed}, nil
}

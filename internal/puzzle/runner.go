package puzzle

import (
	"aoc/internal/config"
	"aoc/pkg/domain"
	"aoc/pkg/input"
	"aoc/pkg/logger"
	"aoc/pkg/metrics"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Loader returns the raw input text for a day.
type Loader func(ctx context.Context, day int) (string, error)

// FileLoader reads inputs from dir/day-NN/input.
func FileLoader(dir string) Loader {
	return func(_ context.Context, day int) (string, error) {
		return input.ReadFile(input.Path(dir, day))
	}
}

// Options configure how the runner schedules solves.
type Options struct {
	// Parallelism is the maximum number of days RunAll solves at once.
	Parallelism int
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Parallelism: cfg.Solve.Parallelism}
}

// Runner drives input loading, parsing and solving for registered days and
// records timing metrics for each solve.
type Runner struct {
	registry *Registry
	load     Loader
	metrics  *metrics.Solve
	options  Options
}

// NewRunner wires a Runner. A nil m gets a fresh metrics.Solve.
func NewRunner(registry *Registry, load Loader, m *metrics.Solve, opts Options) *Runner {
	if m == nil {
		m = metrics.NewSolve()
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}

	return &Runner{registry: registry, load: load, metrics: m, options: opts}
}

// Run solves day using the provided raw text instead of the loader.
func (r *Runner) Run(ctx context.Context, day int, raw string) (domain.Result, error) {
	solver, err := r.registry.Get(day)
	if err != nil {
		return domain.Result{}, fmt.Errorf("could not find solver: %w", err)
	}

	ctx = logger.WithFields(ctx, zap.Int("day", day))
	logger.Debug(ctx, "solving puzzle", zap.String("title", solver.Title()), zap.Int("inputBytes", len(raw)))

	start := time.Now()
	answer, err := solver.Solve(ctx, raw)
	elapsed := time.Since(start)
	r.metrics.Observe(day, elapsed, err)
	if err != nil {
		logger.Error(ctx, "could not solve puzzle", zap.Error(err), zap.Duration("elapsed", elapsed))

		return domain.Result{}, fmt.Errorf("could not solve day %d: %w", day, err)
	}

	logger.Info(ctx, "puzzle solved",
		zap.Int("partOne", answer.PartOne),
		zap.Int("partTwo", answer.PartTwo),
		zap.Duration("elapsed", elapsed))

	return domain.Result{Day: day, Title: solver.Title(), Answer: answer}, nil
}

// RunDay loads day's input through the loader and solves it.
func (r *Runner) RunDay(ctx context.Context, day int) (domain.Result, error) {
	if _, err := r.registry.Get(day); err != nil {
		return domain.Result{}, fmt.Errorf("could not find solver: %w", err)
	}

	raw, err := r.load(ctx, day)
	if err != nil {
		return domain.Result{}, fmt.Errorf("could not load input for day %d: %w", day, err)
	}

	return r.Run(ctx, day, raw)
}

// RunAll solves every registered day and returns the results ordered by day.
// Days run concurrently up to Options.Parallelism; the first failure cancels
// the remaining solves and is returned.
func (r *Runner) RunAll(ctx context.Context) ([]domain.Result, error) {
	days := r.registry.Days()
	results := make([]domain.Result, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.options.Parallelism)
	for i, day := range days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err //nolint: wrapcheck
			}
			res, err := r.RunDay(gctx, day)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return results, nil
}

// Metrics returns the collectors the runner reports into.
func (r *Runner) Metrics() *metrics.Solve {
	return r.metrics
}

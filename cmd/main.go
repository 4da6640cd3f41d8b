// Package main provides the CLI entrypoint for the puzzle solvers.
// It wires subcommands (solve, all, days), loads configuration, and initializes logging.
package main

import (
	"aoc/internal/config"
	"aoc/internal/days"
	"aoc/internal/puzzle"
	"aoc/pkg/logger"
	"aoc/pkg/metrics"
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every subcommand needs. It is filled in by the root
// command's PersistentPreRunE, once flags have been parsed.
type app struct {
	configPath string
	cfg        *config.Config
	metrics    *metrics.Solve
	runner     *puzzle.Runner
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("could not set up logger: %w", err)
	}

	a.cfg = cfg
	a.metrics = metrics.NewSolve()
	a.runner = puzzle.NewRunner(days.Registry(),
		puzzle.FileLoader(cfg.Input.Dir),
		a.metrics,
		puzzle.NewOptions(cfg))

	ctx := logger.WithFields(cmd.Context(), zap.String("runID", uuid.NewString()))
	cmd.SetContext(ctx)
	logger.Debug(ctx, "config loaded", zap.String("inputDir", cfg.Input.Dir), zap.Int("parallelism", cfg.Solve.Parallelism))

	return nil
}

// context bounds a run by the configured timeout.
func (a *app) context(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Solve.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, a.cfg.Solve.Timeout)
}

// flushMetrics writes the metrics textfile when one is configured.
func (a *app) flushMetrics(ctx context.Context) {
	path := a.cfg.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := a.metrics.WriteTextfile(path); err != nil {
		logger.Warn(ctx, "could not write metrics", zap.String("path", path), zap.Error(err))
	}
}

func rootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "aoc",
		Short:             "Solves Advent of Code 2020 puzzles",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		solveCommand(a),
		allCommand(a),
		daysCommand(),
	)

	return rootCmd
}

// run executes cmd and logs any error it returns.
func run(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}

	return err //nolint: wrapcheck
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := run(ctx, rootCommand())
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

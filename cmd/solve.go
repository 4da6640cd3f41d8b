package main

import (
	"aoc/pkg/domain"
	"aoc/pkg/input"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// solveCommand constructs the 'solve' subcommand that prints both answers
// for a single day.
func solveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solves one day's puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", args[0], err)
			}
			inputPath, _ := cmd.Flags().GetString("input")

			ctx, cancel := a.context(cmd.Context())
			defer cancel()
			defer a.flushMetrics(ctx)

			var res domain.Result
			if inputPath != "" {
				raw, err := input.ReadFile(inputPath)
				if err != nil {
					return err //nolint: wrapcheck
				}
				res, err = a.runner.Run(ctx, day, raw)
				if err != nil {
					return err //nolint: wrapcheck
				}
			} else {
				res, err = a.runner.RunDay(ctx, day)
				if err != nil {
					return err //nolint: wrapcheck
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Answer)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringP("input", "i", "", "Input file (default <input dir>/day-NN/input)")

	return cmd
}

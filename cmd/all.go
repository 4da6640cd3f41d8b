package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// allCommand constructs the 'all' subcommand that solves every registered day.
func allCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solves every puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd.Context())
			defer cancel()
			defer a.flushMetrics(ctx)

			results, err := a.runner.RunAll(ctx)
			if err != nil {
				return err //nolint: wrapcheck
			}
			for _, res := range results {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), res); err != nil {
					return err //nolint: wrapcheck
				}
			}

			return nil
		},
	}
}

package main

import (
	"aoc/internal/days"
	"fmt"

	"github.com/spf13/cobra"
)

// daysCommand constructs the 'days' subcommand that lists registered puzzles.
func daysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "Lists available puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := days.Registry()
			for _, d := range registry.Days() {
				s, err := registry.Get(d)
				if err != nil {
					return err //nolint: wrapcheck
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%02d  %s\n", d, s.Title()); err != nil {
					return err //nolint: wrapcheck
				}
			}

			return nil
		},
	}
}

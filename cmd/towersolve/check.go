package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/towercover/solution"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check INPUT SOLUTION",
		Short: "Validate a solution against its instance and print its penalty",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := readInstance(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open solution: %w", err)
			}
			defer f.Close()

			sol, err := solution.Parse(f, inst)
			if err != nil {
				return fmt.Errorf("failed to parse solution %s: %w", args[1], err)
			}
			if err := sol.Validate(); err != nil {
				return fmt.Errorf("solution %s is invalid: %w", args[1], err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "valid: %d towers, penalty %s\n",
				len(sol.Towers), solution.FormatPenalty(sol.Penalty()))
			return err
		},
	}
}

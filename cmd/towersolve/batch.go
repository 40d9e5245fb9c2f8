package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/towercover/batch"
	"github.com/katalvlaran/towercover/solution"
)

func newBatchCommand(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch INPUT...",
		Short: "Solve many instances concurrently into --out-dir",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := ro.effective

			sinks, err := openSinks(opts)
			if err != nil {
				return err
			}
			defer sinks.close(ctx)

			results, err := batch.Run(ctx, args, batch.Options{
				Strategy:      opts.Strategy,
				MaxIterations: opts.MaxIterations,
				Workers:       opts.Workers,
				OutDir:        opts.OutDir,
				Metrics:       sinks.metrics,
				Archive:       sinks.archive,
			})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INSTANCE\tTOWERS\tPENALTY\tSTATUS")
			failed := 0
			for _, r := range results {
				status := "ok"
				switch {
				case r.Err != nil:
					failed++
					status = color.RedString("error: %v", r.Err)
				case r.Improved:
					status = color.GreenString("ok (new best)")
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.Name, r.Towers, solution.FormatPenalty(r.Penalty), status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			klog.FromContext(ctx).Info("Batch finished", "instances", len(results), "failed", failed, "outDir", opts.OutDir)
			if failed > 0 {
				return fmt.Errorf("%d of %d instances failed", failed, len(results))
			}
			return nil
		},
	}
}

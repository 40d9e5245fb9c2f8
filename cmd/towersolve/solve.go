package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/towercover/archive"
	"github.com/katalvlaran/towercover/batch"
	"github.com/katalvlaran/towercover/config"
	"github.com/katalvlaran/towercover/instance"
	"github.com/katalvlaran/towercover/metrics"
)

// stdio is the path meaning standard input or output.
const stdio = "-"

func newSolveCommand(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve INPUT OUTPUT",
		Short: "Solve one instance and write the solution with its penalty",
		Long: `Solve one instance and write the solution with its penalty.
Use - for INPUT or OUTPUT to read standard input or write standard output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), ro.effective, args[0], args[1], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runSolve(ctx context.Context, opts *config.Options, inPath, outPath string, stdin io.Reader, stdout io.Writer) error {
	inst, err := readInstance(inPath, stdin)
	if err != nil {
		return err
	}

	sinks, err := openSinks(opts)
	if err != nil {
		return err
	}
	defer sinks.close(ctx)

	name := "stdin"
	if inPath != stdio {
		name = batch.InstanceName(inPath)
	}
	sol, _, err := batch.SolveInstance(ctx, name, inst, batch.Options{
		Strategy:      opts.Strategy,
		MaxIterations: opts.MaxIterations,
		Metrics:       sinks.metrics,
		Archive:       sinks.archive,
	})
	if err != nil {
		return fmt.Errorf("failed to solve %s: %w", name, err)
	}

	if outPath == stdio {
		return sol.WriteWithPenalty(stdout)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := sol.WriteWithPenalty(out); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return out.Close()
}

func readInstance(path string, stdin io.Reader) (*instance.Instance, error) {
	r := stdin
	if path != stdio {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open instance: %w", err)
		}
		defer f.Close()
		r = f
	}

	inst, err := instance.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse instance %s: %w", path, err)
	}
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("invalid instance %s: %w", path, err)
	}

	return inst, nil
}

// sinks are the optional outputs shared by solve and batch.
type sinks struct {
	metrics     *metrics.Collector
	metricsFile string
	archive     *archive.Store
}

func openSinks(opts *config.Options) (*sinks, error) {
	s := &sinks{metricsFile: opts.MetricsFile}
	if opts.MetricsFile != "" {
		m, err := metrics.NewCollector(prometheus.NewRegistry())
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		s.metrics = m
	}
	if opts.ArchivePath != "" {
		store, err := archive.Open(opts.ArchivePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open archive: %w", err)
		}
		s.archive = store
	}

	return s, nil
}

// close flushes metrics and closes the archive. Failures are logged, not returned,
// so they never mask the command's own error.
func (s *sinks) close(ctx context.Context) {
	logger := klog.FromContext(ctx)
	if s.metrics != nil {
		if err := s.metrics.WriteTextfile(s.metricsFile); err != nil {
			logger.Error(err, "Failed to write metrics", "path", s.metricsFile)
		}
	}
	if s.archive != nil {
		if err := s.archive.Close(); err != nil {
			logger.Error(err, "Failed to close archive")
		}
	}
}

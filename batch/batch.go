package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/towercover/archive"
	"github.com/katalvlaran/towercover/cover"
	"github.com/katalvlaran/towercover/instance"
	"github.com/katalvlaran/towercover/metrics"
	"github.com/katalvlaran/towercover/solution"
	"github.com/katalvlaran/towercover/solver"
)

// OutputExt is appended to the instance name to form the output file name.
const OutputExt = ".out"

// ErrInvalidSolution is returned when a strategy produces a solution that fails validation.
var ErrInvalidSolution = errors.New("batch: solver produced an invalid solution")

// Options configures SolveInstance and Run.
type Options struct {
	Strategy      solver.Strategy
	MaxIterations int

	// Workers bounds concurrent solves in Run; values below 1 mean 1.
	Workers int
	// OutDir receives the output files of Run. It is created if missing.
	OutDir string

	// Metrics and Archive are optional sinks.
	Metrics *metrics.Collector
	Archive *archive.Store
}

// Result describes the outcome for one input file.
type Result struct {
	Input  string
	Output string
	Name   string

	Towers   int
	Penalty  float64
	Improved bool
	Elapsed  time.Duration

	Err error
}

// InstanceName derives the archive key of an instance file: its base name
// without extension.
func InstanceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SolveInstance solves inst with opts.Strategy and validates the result.
// The returned bool reports whether the archive was improved. Archive failures are
// logged and do not fail the solve.
func SolveInstance(ctx context.Context, name string, inst *instance.Instance, opts Options) (*solution.Solution, bool, error) {
	logger := klog.FromContext(ctx).WithValues("instance", name, "strategy", opts.Strategy.String())

	start := time.Now()
	sol, err := opts.Strategy.Solve(inst,
		cover.WithMaxIterations(opts.MaxIterations),
		cover.WithOnSelect(onSelect(logger, opts.Metrics)),
	)
	if err == nil {
		if verr := sol.Validate(); verr != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidSolution, verr)
		}
	}
	elapsed := time.Since(start)
	opts.Metrics.Observe(opts.Strategy.String(), sol, err, elapsed)
	if err != nil {
		return nil, false, err
	}
	logger.V(1).Info("Solved instance", "towers", len(sol.Towers), "penalty", sol.Penalty(), "elapsed", elapsed)

	if opts.Archive == nil {
		return sol, false, nil
	}
	improved, err := opts.Archive.Record(ctx, name, opts.Strategy.String(), sol)
	if err != nil {
		// The archive is optional; the solution is still returned and written.
		logger.Error(err, "Failed to archive solution")
		return sol, false, nil
	}
	if improved {
		logger.V(1).Info("Archived new best solution", "penalty", sol.Penalty())
	}

	return sol, improved, nil
}

func onSelect(logger logr.Logger, m *metrics.Collector) func(cover.Step) {
	return func(s cover.Step) {
		m.IncIterations()
		logger.V(2).Info("Placed tower",
			"iteration", s.Iteration,
			"tower", s.Tower.String(),
			"covered", len(s.Covered),
			"remaining", s.Remaining,
		)
	}
}

// Run solves every file in files and returns one Result per file, in input order.
//
// Complexity: the sum of the per-instance solve costs, spread over opts.Workers goroutines.
func Run(ctx context.Context, files []string, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	results := make([]Result, len(files))
	for i, path := range files {
		results[i] = Result{
			Input:  path,
			Name:   InstanceName(path),
			Output: filepath.Join(opts.OutDir, InstanceName(path)+OutputExt),
		}
	}

	logger := klog.FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			solveFile(gctx, &results[i], opts)
			if results[i].Err != nil {
				logger.Error(results[i].Err, "Failed to solve instance", "input", results[i].Input)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, ctx.Err()
}

// solveFile fills res for the file at res.Input.
func solveFile(ctx context.Context, res *Result, opts Options) {
	start := time.Now()
	defer func() { res.Elapsed = time.Since(start) }()

	in, err := os.Open(res.Input)
	if err != nil {
		res.Err = err
		return
	}
	inst, err := instance.Parse(in)
	_ = in.Close()
	if err != nil {
		res.Err = fmt.Errorf("failed to parse %s: %w", res.Input, err)
		return
	}
	if err := inst.Validate(); err != nil {
		res.Err = fmt.Errorf("invalid instance %s: %w", res.Input, err)
		return
	}

	sol, improved, err := SolveInstance(ctx, res.Name, inst, opts)
	if sol != nil {
		res.Towers = len(sol.Towers)
		res.Penalty = sol.Penalty()
		res.Improved = improved
	}
	if err != nil {
		res.Err = err
		return
	}

	res.Err = writeSolution(res.Output, sol)
}

func writeSolution(path string, sol *solution.Solution) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sol.WriteWithPenalty(out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

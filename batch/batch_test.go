package batch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/towercover/archive"
	"github.com/katalvlaran/towercover/batch"
	"github.com/katalvlaran/towercover/cover"
	"github.com/katalvlaran/towercover/grid"
	"github.com/katalvlaran/towercover/instance"
	"github.com/katalvlaran/towercover/metrics"
	"github.com/katalvlaran/towercover/solution"
	"github.com/katalvlaran/towercover/solver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("k8s.io/klog/v2.(*flushDaemon).run.func1"),
	)
}

func clustered() *instance.Instance {
	return instance.New(10, 3, 5, []grid.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 3}, {X: 7, Y: 5}})
}

func scattered() *instance.Instance {
	return instance.New(8, 2, 3, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 7, Y: 7}, {X: 6, Y: 7}, {X: 3, Y: 4}, {X: 0, Y: 7}})
}

// writeInstance serializes inst to dir/name and returns the path.
func writeInstance(t *testing.T, dir, name string, inst *instance.Instance) string {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	require.NoError(t, inst.Serialize(f))
	require.NoError(t, f.Close())
	return f.Name()
}

func writeRaw(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func readSolution(t *testing.T, path string, inst *instance.Instance) *solution.Solution {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	sol, err := solution.Parse(f, inst)
	require.NoError(t, err)
	return sol
}

func TestInstanceName(t *testing.T) {
	assert.Equal(t, "small", batch.InstanceName("inputs/small.in"))
	assert.Equal(t, "large.v2", batch.InstanceName("/tmp/large.v2.in"))
	assert.Equal(t, "plain", batch.InstanceName("plain"))
}

// TestRun_WritesOutputs solves two instances and checks the output files.
func TestRun_WritesOutputs(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "outputs")
	files := []string{
		writeInstance(t, in, "cluster.in", clustered()),
		writeInstance(t, in, "scattered.in", scattered()),
	}

	results, err := batch.Run(context.Background(), files, batch.Options{
		Strategy: solver.Greedy,
		Workers:  2,
		OutDir:   out,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "cluster", results[0].Name)
	assert.Equal(t, filepath.Join(out, "cluster.out"), results[0].Output)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, results[0].Towers)
	assert.InDelta(t, 170.0, results[0].Penalty, 1e-9)

	assert.Equal(t, "scattered", results[1].Name)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 4, results[1].Towers)

	sol := readSolution(t, results[1].Output, scattered())
	assert.True(t, sol.Valid())
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 5, Y: 7}, {X: 0, Y: 5}, {X: 1, Y: 4}}, sol.Towers)
}

// TestRun_PerFileErrors keeps going when individual inputs are broken.
func TestRun_PerFileErrors(t *testing.T) {
	in := t.TempDir()
	files := []string{
		filepath.Join(in, "missing.in"),
		writeRaw(t, in, "garbage.in", "two\n"),
		writeRaw(t, in, "outside.in", "1\n4\n1\n1\n9 9\n"),
		writeInstance(t, in, "cluster.in", clustered()),
	}

	results, err := batch.Run(context.Background(), files, batch.Options{
		Strategy: solver.Greedy,
		Workers:  3,
		OutDir:   t.TempDir(),
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.ErrorIs(t, results[0].Err, os.ErrNotExist)
	assert.ErrorIs(t, results[1].Err, instance.ErrMalformed)
	assert.ErrorIs(t, results[2].Err, instance.ErrCityOutOfBounds)
	assert.NoError(t, results[3].Err)
	assert.FileExists(t, results[3].Output)
	assert.NoFileExists(t, results[2].Output)
}

// TestRun_Cancelled returns the context error and writes nothing.
func TestRun_Cancelled(t *testing.T) {
	in := t.TempDir()
	files := []string{writeInstance(t, in, "cluster.in", clustered())}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := batch.Run(ctx, files, batch.Options{Strategy: solver.Greedy, OutDir: t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.NoFileExists(t, results[0].Output)
}

// TestRun_OutDirError fails before solving anything.
func TestRun_OutDirError(t *testing.T) {
	blocker := writeRaw(t, t.TempDir(), "file", "x")
	_, err := batch.Run(context.Background(), nil, batch.Options{OutDir: filepath.Join(blocker, "sub")})
	assert.Error(t, err)
}

// TestRun_Archive records the first run and ignores an equal second one.
func TestRun_Archive(t *testing.T) {
	store, err := archive.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	in := t.TempDir()
	files := []string{writeInstance(t, in, "scattered.in", scattered())}
	opts := batch.Options{Strategy: solver.Greedy, Workers: 1, OutDir: t.TempDir(), Archive: store}

	results, err := batch.Run(context.Background(), files, opts)
	require.NoError(t, err)
	assert.True(t, results[0].Improved)

	results, err = batch.Run(context.Background(), files, opts)
	require.NoError(t, err)
	assert.False(t, results[0].Improved)

	entry, err := store.Best(context.Background(), "scattered")
	require.NoError(t, err)
	assert.Equal(t, "greedy", entry.Strategy)
	assert.Equal(t, 4, entry.Towers)
}

// TestSolveInstance_Metrics counts iterations and results.
func TestSolveInstance_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	sol, improved, err := batch.SolveInstance(context.Background(), "scattered", scattered(),
		batch.Options{Strategy: solver.Greedy, Metrics: m})
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Len(t, sol.Towers, 4)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.GreedyIterations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("greedy", metrics.ResultOK)))

	_, _, err = batch.SolveInstance(context.Background(), "scattered", scattered(),
		batch.Options{Strategy: solver.Greedy, MaxIterations: 1, Metrics: m})
	assert.ErrorIs(t, err, cover.ErrIterationLimit)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("greedy", metrics.ResultError)))
}

// TestSolveInstance_Invalid rejects a strategy result that leaves cities uncovered.
func TestSolveInstance_Invalid(t *testing.T) {
	// The lattice starts at 2, so a city at (0,0) with radius 1 stays uncovered.
	inst := instance.New(4, 1, 1, []grid.Point{{X: 0, Y: 0}})

	_, _, err := batch.SolveInstance(context.Background(), "corner", inst, batch.Options{Strategy: solver.Test})
	assert.True(t, errors.Is(err, batch.ErrInvalidSolution))
	assert.ErrorIs(t, err, solution.ErrUncoveredCity)
}

// TestRun_ArchiveFailureKeepsOutput still writes the solution when the archive rejects it.
func TestRun_ArchiveFailureKeepsOutput(t *testing.T) {
	store, err := archive.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	in := t.TempDir()
	files := []string{writeInstance(t, in, "cluster.in", clustered())}

	results, err := batch.Run(context.Background(), files, batch.Options{
		Strategy: solver.Greedy,
		OutDir:   t.TempDir(),
		Archive:  store,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.False(t, results[0].Improved)
	assert.Equal(t, 1, results[0].Towers)

	sol := readSolution(t, results[0].Output, clustered())
	assert.Equal(t, []grid.Point{{X: 4, Y: 5}}, sol.Towers)
}

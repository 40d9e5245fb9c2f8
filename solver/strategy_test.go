package solver_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/towercover/cover"
	"github.com/katalvlaran/towercover/grid"
	"github.com/katalvlaran/towercover/instance"
	"github.com/katalvlaran/towercover/solver"
)

// TestParseStrategy round-trips every name and rejects unknown ones.
func TestParseStrategy(t *testing.T) {
	for _, s := range solver.Strategies() {
		got, err := solver.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := solver.ParseStrategy("  GREEDY ")
	require.NoError(t, err)
	assert.Equal(t, solver.Greedy, got)

	_, err = solver.ParseStrategy("annealing")
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)

	assert.Equal(t, []string{"naive", "test", "greedy"}, solver.Names())
	assert.Equal(t, "Strategy(9)", solver.Strategy(9).String())
}

// TestStrategy_FlagValue binds a Strategy to a pflag.FlagSet.
func TestStrategy_FlagValue(t *testing.T) {
	s := solver.Greedy
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&s, "solver", "strategy")

	require.NoError(t, fs.Parse([]string{"--solver=naive"}))
	assert.Equal(t, solver.Naive, s)
	assert.Error(t, fs.Parse([]string{"--solver=bogus"}))
}

// TestStrategy_Text covers the YAML/JSON text encoding.
func TestStrategy_Text(t *testing.T) {
	b, err := solver.Test.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "test", string(b))

	var s solver.Strategy
	require.NoError(t, s.UnmarshalText([]byte("greedy")))
	assert.Equal(t, solver.Greedy, s)

	_, err = solver.Strategy(-1).MarshalText()
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)
}

// TestSolve_Naive places exactly the cities.
func TestSolve_Naive(t *testing.T) {
	in := instance.New(10, 1, 2, []grid.Point{{X: 1, Y: 1}, {X: 8, Y: 3}})
	sol, err := solver.Naive.Solve(in)
	require.NoError(t, err)
	assert.Equal(t, in.Cities, sol.Towers)
	assert.True(t, sol.Valid())
}

// TestSolve_Test builds the step-5 lattice.
func TestSolve_Test(t *testing.T) {
	in := instance.New(13, 3, 2, nil)
	sol, err := solver.Test.Solve(in)
	require.NoError(t, err)
	want := []grid.Point{{X: 2, Y: 2}, {X: 2, Y: 7}, {X: 2, Y: 12}, {X: 7, Y: 2}, {X: 7, Y: 7}, {X: 7, Y: 12}, {X: 12, Y: 2}, {X: 12, Y: 7}, {X: 12, Y: 12}}
	assert.Equal(t, want, sol.Towers)

	small, err := solver.Test.Solve(instance.New(2, 3, 2, nil))
	require.NoError(t, err)
	assert.Empty(t, small.Towers)
}

// TestSolve_Greedy forwards options to the cover package.
func TestSolve_Greedy(t *testing.T) {
	in := instance.New(3, 0, 1, []grid.Point{{X: 0, Y: 0}, {X: 2, Y: 2}})

	var steps int
	sol, err := solver.Greedy.Solve(in, cover.WithOnSelect(func(cover.Step) { steps++ }))
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 2, Y: 2}}, sol.Towers)
	assert.Equal(t, 2, steps)

	_, err = solver.Greedy.Solve(in, cover.WithMaxIterations(1))
	assert.ErrorIs(t, err, cover.ErrIterationLimit)
}

// TestSolve_Errors covers nil instances and out-of-range strategies.
func TestSolve_Errors(t *testing.T) {
	_, err := solver.Greedy.Solve(nil)
	assert.ErrorIs(t, err, solver.ErrNilInstance)

	_, err = solver.Strategy(42).Solve(instance.New(3, 1, 1, nil))
	assert.ErrorIs(t, err, solver.ErrUnknownStrategy)
}

package cover_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/towercover/cover"
	"github.com/katalvlaran/towercover/grid"
	"github.com/katalvlaran/towercover/instance"
)

// TestCityCover_FullGrid verifies one candidate per grid point with matching indices.
func TestCityCover_FullGrid(t *testing.T) {
	in := instance.New(4, 1, 2, []grid.Point{{X: 0, Y: 0}, {X: 3, Y: 3}})
	cands := cover.CityCover(in, in.CityIDs())
	require.Len(t, cands, 16)

	g := in.Grid()
	seen := make(map[int]bool, 16)
	for _, c := range cands {
		assert.Equal(t, g.Index(c.Tower), c.Index, "Index must be the tower's row-major index")
		seen[c.Index] = true
	}
	assert.Len(t, seen, 16, "every grid point appears exactly once")
}

// TestCityCover_TieBreak checks equal coverage is ordered by row-major index.
func TestCityCover_TieBreak(t *testing.T) {
	in := instance.New(4, 1, 2, []grid.Point{{X: 0, Y: 0}, {X: 3, Y: 3}})
	cands := cover.CityCover(in, in.CityIDs())

	type head struct {
		Tower   grid.Point
		Covered []int
	}
	got := make([]head, 6)
	for i := range got {
		got[i] = head{cands[i].Tower, cands[i].Covered}
	}
	want := []head{
		{grid.Pt(0, 0), []int{0}},
		{grid.Pt(0, 1), []int{0}},
		{grid.Pt(1, 0), []int{0}},
		{grid.Pt(2, 3), []int{1}},
		{grid.Pt(3, 2), []int{1}},
		{grid.Pt(3, 3), []int{1}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("leading candidates mismatch (-want +got):\n%s", diff)
	}
	for _, c := range cands[6:] {
		assert.Empty(t, c.Covered)
	}
	// Zero-coverage tail keeps enumeration order.
	for i := 7; i < len(cands); i++ {
		assert.Less(t, cands[i-1].Index, cands[i].Index)
	}
}

// TestCityCover_Descending checks the primary key on a clustered instance.
func TestCityCover_Descending(t *testing.T) {
	in := instance.New(10, 3, 5, clustered())
	cands := cover.CityCover(in, in.CityIDs())
	for i := 1; i < len(cands); i++ {
		prev, cur := len(cands[i-1].Covered), len(cands[i].Covered)
		require.GreaterOrEqual(t, prev, cur, "coverage must not increase at %d", i)
		if prev == cur {
			require.Less(t, cands[i-1].Index, cands[i].Index, "ties must follow grid order at %d", i)
		}
	}
	assert.Equal(t, grid.Pt(4, 5), cands[0].Tower)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, cands[0].Covered)
}

// TestCityCover_Subset only counts the ids passed in, in their given order.
func TestCityCover_Subset(t *testing.T) {
	in := instance.New(3, 0, 1, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
	cands := cover.CityCover(in, []int{2})
	require.NotEmpty(t, cands)
	assert.Equal(t, grid.Pt(2, 2), cands[0].Tower)
	assert.Equal(t, []int{2}, cands[0].Covered)
	assert.Empty(t, cands[1].Covered)
}

// TestCityCover_EmptyRemaining keeps pure enumeration order.
func TestCityCover_EmptyRemaining(t *testing.T) {
	in := instance.New(3, 5, 1, []grid.Point{{X: 1, Y: 1}})
	cands := cover.CityCover(in, nil)
	require.Len(t, cands, 9)
	for i, c := range cands {
		assert.Equal(t, i, c.Index)
		assert.Nil(t, c.Covered)
	}
}

// TestCityCover_Degenerate covers nil instances and empty grids.
func TestCityCover_Degenerate(t *testing.T) {
	assert.Nil(t, cover.CityCover(nil, []int{0}))
	assert.Nil(t, cover.CityCover(instance.New(0, 1, 1, nil), nil))
	assert.Nil(t, cover.CityCover(instance.New(-4, 1, 1, nil), nil))
}

// TestCityCover_Idempotent calls the evaluator twice and expects identical output
// and an untouched input slice.
func TestCityCover_Idempotent(t *testing.T) {
	in := instance.New(8, 2, 3, scattered())
	remaining := []int{1, 3, 4, 5}
	snapshot := append([]int(nil), remaining...)

	first := cover.CityCover(in, remaining)
	second := cover.CityCover(in, remaining)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("CityCover is not deterministic (-first +second):\n%s", diff)
	}
	assert.Equal(t, snapshot, remaining, "remaining must not be mutated")
}

// clustered returns five cities within radius 3 of (5,5).
func clustered() []grid.Point {
	return []grid.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 3}, {X: 7, Y: 5}}
}

// scattered returns six cities on an 8×8 grid needing four greedy towers at radius 2.
func scattered() []grid.Point {
	return []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 7, Y: 7}, {X: 6, Y: 7}, {X: 3, Y: 4}, {X: 0, Y: 7}}
}

// TestCityCover_FractionalRadiusBoundary covers a city exactly √26 away when the
// radius is the float64 value of √26.
func TestCityCover_FractionalRadiusBoundary(t *testing.T) {
	in := instance.New(6, math.Sqrt(26), 0, []grid.Point{{X: 1, Y: 5}})

	cands := cover.CityCover(in, in.CityIDs())
	require.NotEmpty(t, cands)
	assert.Equal(t, grid.Pt(0, 0), cands[0].Tower, "(0,0) is the lowest index within √26")
	assert.Equal(t, []int{0}, cands[0].Covered)

	sol, err := cover.SolveGreedy(in)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}}, sol.Towers)
	assert.True(t, sol.Valid())
}

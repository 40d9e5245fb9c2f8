package cover

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/towercover/instance"
)

// CityCover evaluates every grid point of inst as a tower against the cities in
// remaining, and returns one Candidate per grid point.
//
// Ordering:
//  1. len(Covered) descending;
//  2. Index (row-major, X outer, Y inner) ascending.
//
// Contracts:
//   - every id in remaining must index inst.Cities;
//   - Covered preserves the order of remaining, so a sorted remaining gives sorted Covered;
//   - an empty remaining yields every candidate with nil Covered, in enumeration order;
//   - a nil instance or an empty grid yields nil.
//
// CityCover is pure: it neither reads nor writes any state besides its arguments.
//
// Complexity: O(G²·C) distance checks plus an O(G²·log G²) sort.
func CityCover(inst *instance.Instance, remaining []int) []Candidate {
	if inst == nil {
		return nil
	}
	pts := inst.Grid().Points()
	if len(pts) == 0 {
		return nil
	}

	var (
		r   = inst.CoverageRadius
		out = make([]Candidate, len(pts))
	)
	// Points()[idx] has row-major index idx by construction.
	for idx, tower := range pts {
		var covered []int
		for _, id := range remaining {
			if tower.Within(inst.Cities[id], r) {
				covered = append(covered, id)
			}
		}
		out[idx] = Candidate{Tower: tower, Index: idx, Covered: covered}
	}
	slices.SortFunc(out, compareCandidates)

	return out
}

// compareCandidates orders by covered count descending, then by grid index ascending.
func compareCandidates(a, b Candidate) int {
	if c := cmp.Compare(len(b.Covered), len(a.Covered)); c != 0 {
		return c
	}

	return cmp.Compare(a.Index, b.Index)
}

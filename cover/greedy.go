package cover

import (
	"fmt"

	"github.com/katalvlaran/towercover/grid"
	"github.com/katalvlaran/towercover/instance"
	"github.com/katalvlaran/towercover/solution"
)

// SolveGreedy covers every city of inst with the greedy maximum-coverage heuristic.
//
// Algorithm:
//  1. remaining ← all city ids (ascending); towers ← ∅.
//  2. While remaining ≠ ∅:
//     best ← CityCover(inst, remaining)[0];
//     if best covers nothing → ErrNoProgress;
//     towers ← towers + best.Tower; remaining ← remaining \ best.Covered.
//  3. Return solution.New(inst, towers) with towers in selection order.
//
// The returned solution covers every city by construction. Instance data is not
// validated here: a non-positive grid or unreachable cities surface as ErrNoProgress,
// and only if at least one city exists.
//
// Errors: ErrNilInstance, ErrOptionViolation, ErrNoProgress, ErrIterationLimit;
// the last two are wrapped with the iteration number and remaining count.
//
// Complexity: O(G²·C²) time worst case, O(G²·C) memory per iteration.
func SolveGreedy(inst *instance.Instance, opts ...Option) (*solution.Solution, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var (
		remaining = inst.CityIDs()
		towers    = make([]grid.Point, 0)
		best      Candidate
	)
	for iter := 1; len(remaining) > 0; iter++ {
		if o.MaxIterations > 0 && iter > o.MaxIterations {
			return nil, fmt.Errorf("%w: %d towers placed, %d cities uncovered",
				ErrIterationLimit, o.MaxIterations, len(remaining))
		}

		cands := CityCover(inst, remaining)
		if len(cands) == 0 || len(cands[0].Covered) == 0 {
			return nil, fmt.Errorf("%w: iteration %d, %d cities uncovered",
				ErrNoProgress, iter, len(remaining))
		}
		best = cands[0]

		remaining = difference(remaining, best.Covered)
		towers = append(towers, best.Tower)
		o.OnSelect(Step{
			Iteration: iter,
			Tower:     best.Tower,
			Covered:   best.Covered,
			Remaining: len(remaining),
		})
	}

	return solution.New(inst, towers), nil
}

// difference returns a new slice holding a \ b.
// Both inputs must be ascending and b must be a subset of a; CityCover keeps
// Covered in the order of remaining, which is ascending here.
//
// Complexity: O(len(a)).
func difference(a, b []int) []int {
	out := make([]int, 0, len(a)-len(b))
	j := 0
	for _, v := range a {
		if j < len(b) && b[j] == v {
			j++
			continue
		}
		out = append(out, v)
	}

	return out
}

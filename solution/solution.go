package solution

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/katalvlaran/towercover/grid"
)

// Validate reports every reason the solution is invalid, combined with multierr.
// Each error wraps one of ErrTowerOutOfBounds, ErrDuplicateTower or ErrUncoveredCity;
// ErrNilInstance is returned alone.
//
// Complexity: O(N·T) time, O(T) memory.
func (s *Solution) Validate() error {
	if s == nil || s.Instance == nil {
		return ErrNilInstance
	}

	var (
		err  error
		g    = s.Instance.Grid()
		seen = make(map[grid.Point]struct{}, len(s.Towers))
	)

	// Stage 1: towers on the grid and pairwise distinct.
	for i, t := range s.Towers {
		if !g.InBounds(t) {
			err = multierr.Append(err, fmt.Errorf("%w: tower %d at (%v)", ErrTowerOutOfBounds, i, t))
		}
		if _, ok := seen[t]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: tower %d at (%v)", ErrDuplicateTower, i, t))
			continue
		}
		seen[t] = struct{}{}
	}

	// Stage 2: every city covered by some tower.
	r := s.Instance.CoverageRadius
	for i, c := range s.Instance.Cities {
		if !covered(c, s.Towers, r) {
			err = multierr.Append(err, fmt.Errorf("%w: city %d at (%v)", ErrUncoveredCity, i, c))
		}
	}

	return err
}

// Valid reports whether Validate finds nothing wrong.
func (s *Solution) Valid() bool {
	return s.Validate() == nil
}

// Penalty scores the placement; lower is better.
// For each tower j, w_j counts the other towers at distance ≤ R_p, and the
// tower contributes 170·exp(0.17·w_j).
//
// Complexity: O(T²).
func (s *Solution) Penalty() float64 {
	if s == nil || s.Instance == nil {
		return 0
	}

	var (
		rp    = s.Instance.PenaltyRadius
		total float64
	)
	for i, t := range s.Towers {
		w := 0
		for j, u := range s.Towers {
			if i != j && t.Within(u, rp) {
				w++
			}
		}
		total += penaltyBase * math.Exp(penaltyGrowth*float64(w))
	}

	return total
}

// covered reports whether any tower lies within r of c.
func covered(c grid.Point, towers []grid.Point, r float64) bool {
	for _, t := range towers {
		if t.Within(c, r) {
			return true
		}
	}

	return false
}

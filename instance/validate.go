package instance

import (
	"fmt"
	"math"

	"go.uber.org/multierr"

	"github.com/katalvlaran/towercover/grid"
)

// Validate checks the instance and reports every violation, combined with multierr:
//   - ErrGridSize if D ≤ 0;
//   - ErrRadius if either radius is negative or NaN;
//   - ErrCityOutOfBounds for each city outside the grid;
//   - ErrDuplicateCity for each repeated city.
//
// Each individual error wraps its sentinel, so errors.Is works on the combined value.
//
// Complexity: O(N) time and memory.
func (in *Instance) Validate() error {
	var err error

	if in.GridSideLength <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrGridSize, in.GridSideLength))
	}
	if in.CoverageRadius < 0 || math.IsNaN(in.CoverageRadius) {
		err = multierr.Append(err, fmt.Errorf("%w: coverage radius %v", ErrRadius, in.CoverageRadius))
	}
	if in.PenaltyRadius < 0 || math.IsNaN(in.PenaltyRadius) {
		err = multierr.Append(err, fmt.Errorf("%w: penalty radius %v", ErrRadius, in.PenaltyRadius))
	}

	g := in.Grid()
	seen := make(map[grid.Point]int, len(in.Cities))
	for i, c := range in.Cities {
		if !g.InBounds(c) {
			err = multierr.Append(err, fmt.Errorf("%w: city %d at (%v)", ErrCityOutOfBounds, i, c))
		}
		if first, ok := seen[c]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: city %d repeats city %d at (%v)", ErrDuplicateCity, i, first, c))
			continue
		}
		seen[c] = i
	}

	return err
}

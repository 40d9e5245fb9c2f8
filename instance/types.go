package instance

import (
	"errors"

	"github.com/katalvlaran/towercover/grid"
)

// Sentinel errors for instance parsing and validation.
var (
	// ErrMalformed indicates the input text does not follow the instance format.
	ErrMalformed = errors.New("instance: malformed input")
	// ErrGridSize indicates a non-positive grid side length.
	ErrGridSize = errors.New("instance: grid side length must be positive")
	// ErrRadius indicates a negative or NaN radius.
	ErrRadius = errors.New("instance: radius must be a non-negative number")
	// ErrCityOutOfBounds indicates a city outside [0, D)×[0, D).
	ErrCityOutOfBounds = errors.New("instance: city out of bounds")
	// ErrDuplicateCity indicates two cities at the same point.
	ErrDuplicateCity = errors.New("instance: duplicate city")
)

// Instance is one tower-placement problem. It is treated as immutable once built:
// solvers read Cities by index and never modify it.
type Instance struct {
	// GridSideLength is D; valid coordinates are in [0, D).
	GridSideLength int
	// CoverageRadius is R_s: a tower covers every city at Euclidean distance ≤ R_s.
	CoverageRadius float64
	// PenaltyRadius is R_p: towers closer than or at R_p to each other increase the penalty.
	PenaltyRadius float64
	// Cities are the points to cover; a city's index is its identifier.
	Cities []grid.Point
}

// New builds an Instance, copying cities so the caller's slice stays independent.
// It does not validate; call Validate when the input is untrusted.
func New(side int, coverageRadius, penaltyRadius float64, cities []grid.Point) *Instance {
	cs := make([]grid.Point, len(cities))
	copy(cs, cities)

	return &Instance{
		GridSideLength: side,
		CoverageRadius: coverageRadius,
		PenaltyRadius:  penaltyRadius,
		Cities:         cs,
	}
}

// Grid returns the D×D grid of the instance.
func (in *Instance) Grid() grid.Grid {
	return grid.Grid{Side: in.GridSideLength}
}

// CityCount returns the number of cities.
func (in *Instance) CityCount() int {
	return len(in.Cities)
}

// CityIDs returns the identifiers 0..N-1 in ascending order.
func (in *Instance) CityIDs() []int {
	ids := make([]int, len(in.Cities))
	for i := range ids {
		ids[i] = i
	}

	return ids
}

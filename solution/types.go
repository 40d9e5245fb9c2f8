package solution

import (
	"errors"

	"github.com/katalvlaran/towercover/grid"
	"github.com/katalvlaran/towercover/instance"
)

// Sentinel errors for solution validation and parsing.
var (
	// ErrNilInstance indicates a solution without an instance.
	ErrNilInstance = errors.New("solution: instance is nil")
	// ErrTowerOutOfBounds indicates a tower outside the grid.
	ErrTowerOutOfBounds = errors.New("solution: tower out of bounds")
	// ErrDuplicateTower indicates two towers on the same point.
	ErrDuplicateTower = errors.New("solution: duplicate tower")
	// ErrUncoveredCity indicates a city that no tower covers.
	ErrUncoveredCity = errors.New("solution: city not covered")
	// ErrMalformed indicates the input text does not follow the solution format.
	ErrMalformed = errors.New("solution: malformed input")
)

const (
	// penaltyBase is the cost of an isolated tower.
	penaltyBase = 170.0
	// penaltyGrowth is the exponent rate per neighbouring tower.
	penaltyGrowth = 0.17
)

// Solution is an instance plus the ordered towers placed on it.
// Order is the order in which a solver committed the towers.
type Solution struct {
	Instance *instance.Instance
	Towers   []grid.Point
}

// New pairs inst with a copy of towers.
func New(inst *instance.Instance, towers []grid.Point) *Solution {
	ts := make([]grid.Point, len(towers))
	copy(ts, towers)

	return &Solution{Instance: inst, Towers: ts}
}

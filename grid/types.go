// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/towercover.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: side length must be positive")
	// ErrIndexOutOfRange indicates a row-major index outside the grid.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
)

// Point is an integer coordinate on the grid.
// Equality is plain struct equality; ordering is by X, then Y.
type Point struct {
	X, Y int
}

// Grid is a square lattice of Side×Side points, coordinates in [0, Side).
// The zero value is an empty grid with no points.
type Grid struct {
	Side int
}

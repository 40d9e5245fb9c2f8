// Package grid provides bounds checks and a deterministic row-major
// enumeration of the points of a square grid.
//
// Row-major here means X is the outer loop and Y the inner loop:
//
//	(0,0) (0,1) … (0,S-1) (1,0) … (S-1,S-1)
//
// so Index(p) = p.X*Side + p.Y.
package grid

// New returns a Side×Side grid.
// Returns ErrEmptyGrid if side ≤ 0.
// Complexity: O(1).
func New(side int) (Grid, error) {
	if side <= 0 {
		return Grid{}, ErrEmptyGrid
	}

	return Grid{Side: side}, nil
}

// Size returns the number of points on the grid (Side², or 0 for an empty grid).
// Complexity: O(1).
func (g Grid) Size() int {
	if g.Side <= 0 {
		return 0
	}

	return g.Side * g.Side
}

// InBounds reports whether p lies within [0, Side)×[0, Side).
// Complexity: O(1).
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Side && p.Y >= 0 && p.Y < g.Side
}

// Index maps p to its row-major position: p.X*Side + p.Y.
// The result is only meaningful when InBounds(p) holds.
// Complexity: O(1).
func (g Grid) Index(p Point) int {
	return p.X*g.Side + p.Y
}

// Coordinate converts a row-major index back to a Point.
// Returns ErrIndexOutOfRange if idx ∉ [0, Size()).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (Point, error) {
	if idx < 0 || idx >= g.Size() {
		return Point{}, ErrIndexOutOfRange
	}

	return Point{X: idx / g.Side, Y: idx % g.Side}, nil
}

// Points returns every grid point in row-major order, so that
// Points()[i] has Index i. An empty grid yields nil.
// Complexity: O(Side²) time and memory.
func (g Grid) Points() []Point {
	n := g.Size()
	if n == 0 {
		return nil
	}
	out := make([]Point, 0, n)
	for x := 0; x < g.Side; x++ {
		for y := 0; y < g.Side; y++ {
			out = append(out, Point{X: x, Y: y})
		}
	}

	return out
}

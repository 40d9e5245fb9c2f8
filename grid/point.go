package grid

import (
	"math"
	"strconv"
)

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// SquaredDistance returns (p.X-q.X)² + (p.Y-q.Y)² in float64, so coordinates far
// off the grid cannot overflow.
// Complexity: O(1).
func (p Point) SquaredDistance(q Point) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)

	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.SquaredDistance(q))
}

// Within reports whether q lies at distance ≤ r from p.
// The boundary is inclusive. A negative r covers nothing, not even p itself.
// Complexity: O(1).
func (p Point) Within(q Point, r float64) bool {
	if r < 0 || math.IsNaN(r) {
		return false
	}

	return p.Distance(q) <= r
}

// Less orders points by X, then by Y.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// String formats the point the way instance and solution files store it: "x y".
func (p Point) String() string {
	return strconv.Itoa(p.X) + " " + strconv.Itoa(p.Y)
}

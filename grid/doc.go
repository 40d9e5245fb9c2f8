// Package grid models the square tower-placement grid and the integer points on it.
//
// What:
//
//   - Point is an immutable (X, Y) integer coordinate with Euclidean distance.
//   - Grid is a Side×Side lattice with coordinates in [0, Side).
//   - Points are enumerated row-major with X as the outer loop and Y as the inner loop,
//     and Index/Coordinate convert between a Point and its position in that order.
//
// Why:
//
//   - Tower candidates are every point of the grid; a stable enumeration index is the
//     explicit tie-break key used by the coverage evaluator.
//   - Within compares the Euclidean distance itself against the radius, so a city
//     exactly at a fractional radius such as √26 counts as covered.
//
// Complexity:
//
//   - Distance, Within, InBounds, Index, Coordinate: O(1).
//   - Points: O(Side²) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: a grid was requested with Side ≤ 0.
//   - ErrIndexOutOfRange: Coordinate was asked for an index outside [0, Side²).
package grid

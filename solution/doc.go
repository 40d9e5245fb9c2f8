// Package solution holds a tower placement for an instance, decides whether it is
// valid, scores it, and reads and writes the solution text format.
//
// Validity:
//
//   - every tower lies on the grid;
//   - no two towers share a point;
//   - every city is within the coverage radius of at least one tower.
//
// Penalty:
//
//	For tower j let w_j be the number of other towers at distance ≤ R_p.
//	penalty = Σ_j 170 · exp(0.17 · w_j)
//
// Lower is better. A placement with no towers has penalty 0.
//
// Text format:
//
//	# Penalty: 1234.5   optional leading comment
//	T                   tower count
//	x y                 T lines
//
// Complexity:
//
//   - Validate: O(N·T) time, O(T) memory.
//   - Penalty:  O(T²) time.
package solution

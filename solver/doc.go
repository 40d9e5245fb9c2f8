// Package solver is the closed set of tower-placement strategies.
//
// Strategies:
//
//   - Naive:  one tower on every city. Always valid for on-grid, distinct cities.
//   - Test:   a fixed lattice at coordinates 2, 7, 12, … in both axes; ignores cities.
//   - Greedy: greedy maximum coverage, see package cover.
//
// A Strategy is a plain enumeration rather than a name→function map: the set is fixed
// at compile time, ParseStrategy is the only way in from a string, and Solve dispatches
// with a switch.
package solver

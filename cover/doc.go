// Package cover places towers with a greedy maximum-coverage heuristic.
//
// Two routines form the package:
//
//   - CityCover: the coverage evaluator. For a set of still-uncovered city ids it
//     enumerates every grid point as a tower candidate, collects the ids each one
//     covers (distance ≤ coverage radius, inclusive), and orders the candidates by
//     covered count descending, then by row-major grid index ascending.
//
//   - SolveGreedy: the greedy cover solver. Starting from all cities, it repeatedly
//     asks CityCover for the best candidate among the remaining cities, commits that
//     tower, and removes the cities it covers, until none remain.
//
// Determinism:
//
//	The tie-break on equal coverage is an explicit secondary key (the row-major index
//	of the tower: X outer, Y inner), so the output never depends on sort stability.
//	Identical inputs give identical candidate lists and identical tower sequences.
//
// Termination:
//
//	Every committed tower must cover at least one remaining city. If the best
//	candidate covers none (empty grid, or no grid point within the radius of any
//	remaining city) SolveGreedy stops with ErrNoProgress instead of looping forever.
//
// Complexity:
//
//   - CityCover:   O(G²·C + G²·log G²) time, O(G² + G²·C) memory (G = grid side, C = |remaining|).
//   - SolveGreedy: O(G²·C²) time in the worst case; C shrinks by ≥1 per iteration.
//
// Concurrency:
//
//	Both functions are pure over their inputs and keep no package state; distinct
//	calls may run in parallel, including on the same *instance.Instance.
package cover

// Package towercover places coverage towers on a square grid of cities and scores
// the result.
//
// What is towercover?
//
//	Given N cities on a D×D integer grid, a coverage radius R_s and a penalty
//	radius R_p, choose tower sites so that every city lies within R_s of some
//	tower. Towers within R_p of each other interfere; the penalty of a placement
//	is Σ 170·exp(0.17·w_j), where w_j counts the other towers near tower j.
//
// Layout:
//
//	grid/       Point and Grid: distances, bounds, row-major enumeration
//	instance/   problem instances: parse, validate, serialize
//	solution/   tower placements: validity, penalty, parse, serialize
//	cover/      coverage evaluation and the greedy covering heuristic
//	solver/     the closed set of strategies (naive, test, greedy)
//	metrics/    Prometheus metrics for solver runs
//	archive/    SQLite archive of the best solution per instance
//	batch/      concurrent solving of many instance files
//	config/     towersolve options from YAML and flags
//	cmd/towersolve  the command-line tool
//
// Quick start:
//
//	towersolve solve inputs/small.in outputs/small.out
//	towersolve batch --workers 8 --out-dir outputs inputs/*.in
//
// See examples/ for a runnable placement scenario.
package towercover

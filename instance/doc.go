// Package instance defines a tower-placement problem instance and its text format.
//
// An Instance is a D×D grid, a coverage radius R_s, a penalty radius R_p and an
// ordered list of cities; the index of a city in that list is its identifier.
//
// File format (one value per line; "#" starts a comment running to end of line;
// blank lines are ignored):
//
//	N      number of cities
//	D      grid side length
//	R_s    coverage radius
//	R_p    penalty radius
//	x y    N lines, one city each
//
// Parse reads the format, Serialize writes it back, and Validate reports every
// structural violation at once. Parsing does not validate: a solver receives the
// instance exactly as written and invalid data is the caller's responsibility.
package instance

// Package archive keeps the best solution found so far for each named instance in
// a SQLite database, using the pure-Go modernc.org/sqlite driver.
//
// Record only replaces a stored solution when the new penalty is strictly lower,
// so re-running a strategy never makes the archive worse. Every stored row carries
// a run id (UUID), the strategy name and the serialized solution body.
package archive

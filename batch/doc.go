// Package batch solves tower-placement instances from files, one at a time or many
// in parallel.
//
// What:
//
//	SolveInstance runs one strategy on one parsed instance, checks the result,
//	feeds the optional metrics collector and archive, and logs progress through
//	the klog logger carried by the context.
//	Run applies SolveInstance to a list of instance files with at most
//	Options.Workers solves in flight, writing "<name>.out" for each input.
//
// Why:
//
//	Each solve owns its remaining-city set and candidate list, so independent
//	instances can be solved concurrently without coordination. Only the shared
//	sinks (Prometheus collector, SQLite archive) see concurrent calls, and both are
//	safe for that.
//
// Errors:
//
//	A failure on one file is reported in its Result and does not stop the others.
//	Run itself only fails when the context is cancelled or the output directory
//	cannot be created.
package batch

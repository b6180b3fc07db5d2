// Package ptaslog provides a single named, leveled log file shared across
// a PTAS run: every stage (donut extraction, tree decomposition,
// reduction, the DP solve) logs to the same file so a run's behavior can
// be reconstructed from one place afterwards.
package ptaslog

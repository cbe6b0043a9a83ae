// Package exec is the parallel execution substrate of: a
// fixed-size worker Pool, data-parallel DoAll, data-driven ForEach over an
// internal FIFO worklist, standalone worklists (ChunkFIFO/ChunkLIFO,
// OrderedByIntegerMetric aka OBIM), the BulkSynchronous and Deterministic
// loops, a Barrier, and PerThread storage.
//
// There is no precedent in the prior implementation repo (lvlath) for a parallel
// executor — its concurrency story is "protect a shared structure with
// RWMutex and let goroutines race" (core/concurrency_test.go). This
// package is instead grounded on the wider example pack:
// junjiewwang-perf-analysis's internal/parser/hprof/parallel.go runs a
// bounded worker pool over a task slice via golang.org/x/sync/errgroup and
// folds per-task errors into a result slice; DoAll generalizes that shape
// from "N tasks over M workers, collect results" to "N tasks over M
// workers, static or work-stealing partition, errors folded through a
// reducer" (see package reduce).
package exec

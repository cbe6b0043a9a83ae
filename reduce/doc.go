// Package reduce implements the combining accumulators of: a
// per-thread array of slots plus an identity value and a combine
// operation. Reduce() folds every slot with the identity; Reset() resets
// every slot to the identity; concurrent Reduce()/Reset() with Update is
// undefined.
//
// The teacher has no reducer precedent (lvlath has no parallel executor at
// all); this package is grounded on the same architecture DoAll/ForEach
// use (exec.PerThread) and on the error-folding pattern
// junjiewwang-perf-analysis's hprof.parallel.go uses to collect per-worker
// errors into one result ([]error appended under a mutex) — ErrorInfo
// generalizes that into a proper Reducer instance instead of a bespoke
// mutex-guarded slice.
//
// Go has no portable, allocation-free "current goroutine id"; rather than
// fake one, every Reducer.Update call takes an explicit workerID, which
// DoAll/ForEach already thread through every fn call. This is the one
// deliberate deviation from "opaque thread-local" framing:
// the thread-local becomes an explicit parameter instead of ambient state.
package reduce

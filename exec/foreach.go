package exec

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/arborcore/galoway/reduce"
)

// PushFunc lets a ForEach body enqueue newly discovered work items for
// later processing in the same parallel region — the data-driven
// counterpart to DoAll's fixed iteration count.3.
type PushFunc[K any] func(K)

// ForEachFn processes one item, optionally pushing more work via push.
type ForEachFn[K any] func(workerID int, item K, push PushFunc[K]) error

// ForEach runs a worklist-based parallel loop: workers drain a
// shared FIFO queue of initial items, and items pushed during processing
// are appended to the same queue, until the queue is empty AND every
// worker is idle.
func ForEach[K any](pool *Pool, initial []K, fn ForEachFn[K]) error {
	if len(initial) == 0 {
		return nil
	}
	workers := pool.ActiveThreads()

	q := newChunkFIFO[K]()
	for _, item := range initial {
		q.Push(item)
	}

	// outstanding counts items that exist somewhere in the system: queued
	// or currently being processed. It reaches zero exactly when there is
	// no more work anywhere, which is the distributed termination
	// condition distinct from "queue looks empty right now".
	var outstanding int64
	atomic.AddInt64(&outstanding, int64(len(initial)))

	errs := reduce.NewErrorInfo(workers)
	var g errgroup.Group

	for w := 0; w < workers; w++ {
		id := w
		g.Go(func() error {
			push := func(item K) {
				atomic.AddInt64(&outstanding, 1)
				q.Push(item)
			}
			for atomic.LoadInt64(&outstanding) > 0 {
				item, ok := q.Pop()
				if !ok {
					runtime.Gosched() // another worker still holds outstanding work
					continue
				}
				if err := fn(id, item, push); err != nil {
					errs.Update(id, err)
				}
				atomic.AddInt64(&outstanding, -1)
			}
			return nil
		})
	}
	_ = g.Wait() // per-item errors are folded into errs, not propagated via errgroup

	return errs.Reduce()
}

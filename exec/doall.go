package exec

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arborcore/galoway/reduce"
)

// DoAllOptions configures DoAll.
type DoAllOptions struct {
	steal bool
}

// DoAllOption mutates DoAllOptions, in functional-option
// idiom (dijkstra.Option, builder.BuilderOption).
type DoAllOption func(*DoAllOptions)

// WithSteal() requests work-stealing between per-worker ranges instead of a
// static block partition (: "If opts includes steal, the
// range is partitioned per thread with work-stealing between per-thread
// deques").
func WithSteal() DoAllOption {
	return func(o *DoAllOptions) { o.steal = true }
}

// DoAll invokes fn(workerID, i) exactly once for every i in [0, n),
// concurrently across pool.ActiveThreads() workers, with an implicit
// barrier at the end. Errors are not returned per-item;
// every error fn returns is folded into errs (a *reduce.ErrorInfo), and
// DoAll itself returns errs.Reduce() after the parallel region completes:
// the first worker's non-nil error, or nil if every worker succeeded.
func DoAll(pool *Pool, n int, fn func(workerID, i int) error, opts...DoAllOption) error {
	var o DoAllOptions
	for _, opt := range opts {
		opt(&o)
	}
	if n <= 0 {
		return nil
	}

	workers := pool.ActiveThreads()
	if workers > n {
		workers = n
	}
	errs := reduce.NewErrorInfo(workers)

	var g errgroup.Group
	if o.steal {
		runStealing(workers, n, fn, errs, &g)
	} else {
		runStatic(workers, n, fn, errs, &g)
	}
	_ = g.Wait() // per-item errors are folded into errs, not propagated via errgroup

	return errs.Reduce()
}

// runStatic partitions [0, n) into `workers` contiguous blocks, one per
// worker, with no ordering guarantee between blocks.
func runStatic(workers, n int, fn func(workerID, i int) error, errs *reduce.ErrorInfo, g *errgroup.Group) {
	base, rem := n/workers, n%workers
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		lo, hi := start, start+size
		start = hi
		id := w
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := fn(id, i); err != nil {
					errs.Update(id, err)
				}
			}
			return nil
		})
	}
}

// rangeDeque is a contiguous [lo, hi) range a worker drains from the
// front; idle workers steal from the back of another worker's deque. This
// is the range-stealing realization of "per-thread deques
// with work-stealing between per-thread chunks" — a chunk here is simply
// a sub-range rather than a materialized slice of items, since DoAll's
// item type is always an integer index.
type rangeDeque struct {
	mu sync.Mutex
	lo, hi int
}

func (d *rangeDeque) popFront() (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.lo >= d.hi {
		return 0, false
	}
	v := d.lo
	d.lo++
	return v, true
}

// stealChunkSize bounds how much of a victim's remaining range a thief
// takes in one steal, so work keeps flowing instead of one steal draining
// the whole victim.
const stealChunkSize = 32

func (d *rangeDeque) stealBack() (lo, hi int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	remaining := d.hi - d.lo
	if remaining <= 0 {
		return 0, 0, false
	}
	take := remaining / 2
	if take > stealChunkSize {
		take = stealChunkSize
	}
	if take == 0 {
		take = remaining
	}
	hi = d.hi
	lo = d.hi - take
	d.hi = lo
	return lo, hi, true
}

func runStealing(workers, n int, fn func(workerID, i int) error, errs *reduce.ErrorInfo, g *errgroup.Group) {
	deques := make([]*rangeDeque, workers)
	base, rem := n/workers, n%workers
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		deques[w] = &rangeDeque{lo: start, hi: start + size}
		start += size
	}

	for w := 0; w < workers; w++ {
		id := w
		g.Go(func() error {
			own := deques[id]
			for {
				if i, ok := own.popFront(); ok {
					if err := fn(id, i); err != nil {
						errs.Update(id, err)
					}
					continue
				}
				// own deque empty: try to steal a chunk from a peer.
				stole := false
				for v := 1; v < workers; v++ {
					victim := deques[(id+v)%workers]
					lo, hi, ok := victim.stealBack()
					if !ok {
						continue
					}
					for i := lo; i < hi; i++ {
						if err := fn(id, i); err != nil {
							errs.Update(id, err)
						}
					}
					stole = true
					break
				}
				if !stole {
					return nil
				}
			}
		})
	}
}

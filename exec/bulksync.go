package exec

// BulkSynchronousFn processes one item of the current round, pushing
// items for the *next* round (never the current one) via push.
type BulkSynchronousFn[K any] func(workerID int, item K, push PushFunc[K]) error

// BulkSynchronous runs fn over `initial` in synchronized rounds: every
// item produced by round N is processed only in round N+1, with a full
// barrier between rounds.3's bulk-synchronous executor
// ("all items of generation g complete, and the frontier they produced
// becomes generation g+1, before g+1 begins"). This is the shape
// level-synchronous BFS needs and ForEach's continuously-draining
// worklist cannot provide on its own.
func BulkSynchronous[K any](pool *Pool, initial []K, fn BulkSynchronousFn[K]) error {
	frontier := initial

	for len(frontier) > 0 {
		next := newChunkFIFO[K]()

		if err := DoAll(pool, len(frontier), func(workerID, i int) error {
			push := func(item K) { next.Push(item) }
			return fn(workerID, frontier[i], push)
		}); err != nil {
			return err
		}

		drained := make([]K, 0, next.Len())
		for {
			item, ok := next.Pop()
			if !ok {
				break
			}
			drained = append(drained, item)
		}
		frontier = drained
	}
	return nil
}

package exec

// Deterministic runs fn(i) for every i in [0, n) in parallel via DoAll,
// collecting each result into a slice indexed by i rather than by
// arrival order, then folds the slice with combine in index order. This
// gives a parallel loop bit-identical output across runs even though the
// underlying work is scheduled non-deterministically: the same output on
// every run regardless of thread count or scheduling, for algorithms
// whose correctness proofs assume a fixed combine order (e.g. floating-
// point accumulation in matrix completion).
func Deterministic[T any](pool *Pool, n int, fn func(i int) T, identity T, combine func(acc, v T) T) (T, error) {
	results := make([]T, n)
	err := DoAll(pool, n, func(_ /* workerID */, i int) error {
		results[i] = fn(i)
		return nil
	})
	if err != nil {
		return identity, err
	}
	acc := identity
	for _, r := range results {
		acc = combine(acc, r)
	}
	return acc, nil
}

package exec_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/arborcore/galoway/exec"
	"github.com/stretchr/testify/require"
)

func TestPoolClampsActiveThreads(t *testing.T) {
	p := exec.NewPool(4)
	require.Equal(t, 4, p.MaxThreads())
	require.Equal(t, 4, p.ActiveThreads())

	p.SetActiveThreads(2)
	require.Equal(t, 2, p.ActiveThreads())

	p.SetActiveThreads(100)
	require.Equal(t, 4, p.ActiveThreads())

	p.SetActiveThreads(0)
	require.Equal(t, 1, p.ActiveThreads())
}

func TestDefaultPoolSingleton(t *testing.T) {
	require.Same(t, exec.Default(), exec.Default())
	require.GreaterOrEqual(t, exec.Default().MaxThreads(), 1)
}

func TestBarrierReleasesAllParticipants(t *testing.T) {
	const n = 8
	b := exec.NewBarrier(n)
	var before, after int64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			atomic.AddInt64(&before, 1)
			b.Wait()
			atomic.AddInt64(&after, 1)
		}
	}
	wg.Wait()
	require.EqualValues(t, n, before)
	require.EqualValues(t, n, after)
}

func TestPerThreadSlotsAreIndependent(t *testing.T) {
	pt := exec.NewPerThread[int](4)
	require.Equal(t, 4, pt.Width())
	*pt.Local(0) = 10
	*pt.Local(3) = 30
	require.Equal(t, []int{10, 0, 0, 30}, pt.Slots())
}

func TestDoAllStaticCoversEveryIndex(t *testing.T) {
	pool := exec.NewPool(4)
	const n = 1000
	seen := make([]int32, n)
	err := exec.DoAll(pool, n, func(_, i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	})
	require.NoError(t, err)
	for i, c := range seen {
		require.EqualValuesf(t, 1, c, "index %d processed %d times", i, c)
	}
}

func TestDoAllWithStealCoversEveryIndex(t *testing.T) {
	pool := exec.NewPool(4)
	const n = 2000
	seen := make([]int32, n)
	err := exec.DoAll(pool, n, func(_, i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	}, exec.WithSteal())
	require.NoError(t, err)
	for i, c := range seen {
		require.EqualValuesf(t, 1, c, "index %d processed %d times", i, c)
	}
}

func TestDoAllFoldsErrors(t *testing.T) {
	pool := exec.NewPool(4)
	sentinel := errors.New("boom")
	err := exec.DoAll(pool, 100, func(_, i int) error {
		if i == 50 {
			return sentinel
		}
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestDoAllZeroItemsIsNoop(t *testing.T) {
	pool := exec.NewPool(4)
	calls := 0
	err := exec.DoAll(pool, 0, func(_, _ int) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Zero(t, calls)
}

func TestForEachDrainsPushedWork(t *testing.T) {
	pool := exec.NewPool(4)
	var visited int32
	err := exec.ForEach(pool, []int{10}, func(_ int, item int, push exec.PushFunc[int]) error {
		atomic.AddInt32(&visited, 1)
		if item > 0 {
			push(item - 1)
		}
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 11, visited) // 10, 9,..., 0
}

func TestForEachFoldsErrors(t *testing.T) {
	pool := exec.NewPool(2)
	sentinel := errors.New("worklist boom")
	err := exec.ForEach(pool, []int{1, 2, 3}, func(_ int, item int, _ exec.PushFunc[int]) error {
		if item == 2 {
			return sentinel
		}
		return nil
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "worklist boom")
}

func TestChunkLIFOOrder(t *testing.T) {
	q := exec.NewChunkLIFO[int]() // exercise LIFO discipline explicitly
	q.Push(1)
	q.Push(2)
	q.Push(3)
	v, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, 2, q.Len())
}

func TestOBIMDrainsInAscendingLevelOrder(t *testing.T) {
	o := exec.NewOBIM[string](10)
	o.Push(25, "c")
	o.Push(5, "a")
	o.Push(15, "b")

	var order []string
	for {
		item, ok := o.Pop()
		if !ok {
			break
		}
		order = append(order, item)
	}
	require.Len(t, order, 3)
	require.Equal(t, []string{"a", "b", "c"}, order) // levels 0, 1, 2
	require.True(t, o.Empty())
}

func TestOBIMAscendingByConstruction(t *testing.T) {
	o := exec.NewOBIM[int](1)
	o.Push(3, 3)
	o.Push(1, 1)
	o.Push(2, 2)
	first, ok := o.Pop()
	require.True(t, ok)
	require.Equal(t, 1, first)
}

func TestBulkSynchronousProcessesEveryGeneration(t *testing.T) {
	pool := exec.NewPool(4)
	var processed int32
	err := exec.BulkSynchronous(pool, []int{3}, func(_ int, item int, push exec.PushFunc[int]) error {
		atomic.AddInt32(&processed, 1)
		if item > 0 {
			push(item - 1)
		}
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, 4, processed) // 3, 2, 1, 0
}

func TestDeterministicCombinesInIndexOrder(t *testing.T) {
	pool := exec.NewPool(4)
	const n = 200
	sum, err := exec.Deterministic(pool, n, func(i int) int { return i }, 0, func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	require.Equal(t, (n-1)*n/2, sum)

	// a non-commutative combine only yields this value when folded in index order
	seq, err := exec.Deterministic(pool, n, func(i int) int { return i }, 0, func(acc, v int) int { return acc*31 + v })
	require.NoError(t, err)
	want := 0
	for i := 0; i < n; i++ {
		want = want*31 + i
	}
	require.Equal(t, want, seq)
}

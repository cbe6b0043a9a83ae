package sssp

import (
	"container/heap"
	"fmt"
	"io"
	"sync"

	"github.com/arborcore/galoway/column"
	"github.com/arborcore/galoway/exec"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/result"
	"github.com/arborcore/galoway/topology"
)

// Weight is the set of numeric types an edge weight column may hold. It
// is deliberately a subset of column.Numeric's type set (it excludes
// ~bool, and excludes the platform-width ~int/~uint/~uintptr that
// golang.org/x/exp/constraints.Integer would otherwise pull in) so that
// every Weight also satisfies column.Numeric at the propgraph/column call
// sites below.
type Weight interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Stats summarizes one Run.
type Stats struct {
	Buckets int // buckets (serial delta-stepping) or OBIM batches (parallel delta-stepping) processed; 0 for Dijkstra and Topological
	Reached int
}

// Print writes a one-line human-readable summary to w.
func (s Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "sssp: buckets=%d reached=%d\n", s.Buckets, s.Reached)
}

// bucketOf maps a tentative distance to its delta-stepping bucket index,
// floor(dist / 2^deltaExp), without requiring shift/division operators on
// the generic Weight type (undefined for floats) by routing through
// float64.
func bucketOf[W Weight](dist W, deltaExp uint) int {
	return int(float64(dist)) >> deltaExp
}

// Run computes single-source shortest distances from start using the
// edge weights in weightCol, attaching the result as a node column of the
// same type W named out. unreached is the sentinel written for nodes
// start cannot reach (callers typically pass the type's max value, or
// +Inf for floats).
func Run[W Weight](g *propgraph.Graph, start uint32, weightCol, out string, unreached W, plan Plan) result.Result[Stats] {
	if g == nil {
		return result.Err[Stats](result.InvalidArgument, ErrGraphNil.Error())
	}
	n := g.NumNodes()
	if int(start) >= n {
		return result.Err[Stats](result.InvalidArgument, ErrStartOutOfRange.Error())
	}

	view, err := propgraph.NewView(g, nil, []propgraph.Descriptor{propgraph.EdgeProp[W](weightCol)})
	if err != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.PropertyNotFound).WithContext(err.Error()))
	}
	weights, err := propgraph.EdgeColumn[W](view, weightCol)
	if err != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.PropertyNotFound).WithContext(err.Error()))
	}
	var zero W
	for i := 0; i < weights.Len(); i++ {
		if weights.Value(i) < zero {
			return result.Err[Stats](result.InvalidArgument, ErrNegativeWeight.Error())
		}
	}

	dist, err := propgraph.NewNodeOutput[W](g, out, unreached)
	if err != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(err.Error()))
	}
	dist[start] = zero

	topo := g.Topology()
	var mu sync.Mutex

	var (
	buckets int
	rerr error
)
	switch plan.Algorithm {
	case Dijkstra, DijkstraTile:
		rerr = runDijkstra(topo, weights, start, dist, plan)
	case SerialDelta, SerialDeltaTile:
		buckets, rerr = runSerialDelta(topo, weights, start, dist, plan)
	case DeltaStep, DeltaTile, DeltaStepBarrier, DeltaStepFusion:
		buckets, rerr = runDeltaStepParallel(topo, weights, start, dist, &mu, plan)
	case Topological, TopologicalTile:
		rerr = runTopological(topo, weights, start, dist, plan)
	case Automatic:
		if topology.IsPowerLawSkewed(topo) {
			plan.Algorithm = DeltaStepBarrier
		} else {
			plan.Algorithm = DeltaStep
		}
		buckets, rerr = runDeltaStepParallel(topo, weights, start, dist, &mu, plan)
	default:
		return result.Err[Stats](result.InvalidArgument, ErrUnknownAlgorithm.Error())
	}
	if rerr != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(rerr.Error()))
	}

	reached := 0
	for i := 0; i < n; i++ {
		if dist[i] != unreached {
			reached++
		}
	}
	return result.Ok(Stats{Buckets: buckets, Reached: reached})
}

// runDijkstra is a generalization of lazy-decrease-key
// binary heap (dijkstra.nodeItem/nodePQ) to a propgraph.Graph's CSR
// topology and generic weight type.
func runDijkstra[W Weight](topo *topology.CSR, weights *column.PODView[W], start uint32, dist []W, plan Plan) error {
	var zero W
	visited := make([]bool, topo.NumNodes())
	pq := make(nodePQ[W], 0, topo.NumNodes())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem[W]{id: start, dist: zero})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem[W])
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		neighbors, err := topo.Edges(item.id)
		if err != nil {
			return fmt.Errorf("sssp: edges of %d: %w", item.id, err)
		}
		base := topo.IndexOffset[item.id]
		for _, chunk := range tileRange(len(neighbors), plan) {
			for _, j := range chunk {
				v := neighbors[j]
				w := weights.Value(int(base) + j)
				cand := item.dist + w
				if !visited[v] && cand < dist[v] {
					dist[v] = cand
					heap.Push(&pq, &nodeItem[W]{id: v, dist: cand})
				}
			}
		}
	}
	return nil
}

// runSerialDelta is the single-threaded delta-stepping algorithm: nodes
// are bucketed by bucketOf(dist, Delta) and every bucket is fully
// drained (possibly refilling itself via zero-or-light edges) before the
// next non-empty bucket is visited.
func runSerialDelta[W Weight](topo *topology.CSR, weights *column.PODView[W], start uint32, dist []W, plan Plan) (int, error) {
	buckets := map[int][]uint32{0: {start}}
	inBucket := make([]bool, topo.NumNodes())
	inBucket[start] = true
	processed := make([]bool, topo.NumNodes())
	roundsProcessed := 0

	for len(buckets) > 0 {
		cur := minKey(buckets)
		bucket := buckets[cur]
		delete(buckets, cur)
		roundsProcessed++

		for len(bucket) > 0 {
			u := bucket[0]
			bucket = bucket[1:]
			inBucket[u] = false
			if processed[u] {
				continue
			}
			processed[u] = true

			neighbors, err := topo.Edges(u)
			if err != nil {
				return roundsProcessed, fmt.Errorf("sssp: edges of %d: %w", u, err)
			}
			base := topo.IndexOffset[u]
			for j, v := range neighbors {
				w := weights.Value(int(base) + j)
				cand := dist[u] + w
				if cand < dist[v] {
					dist[v] = cand
					processed[v] = false // a lowered distance must be relaxed again
					b := bucketOf(cand, plan.Delta)
					if b == cur && !inBucket[v] {
						inBucket[v] = true
						bucket = append(bucket, v)
					} else if b != cur {
						buckets[b] = append(buckets[b], v)
					}
				}
			}
		}
	}
	return roundsProcessed, nil
}

func minKey(m map[int][]uint32) int {
	first := true
	min := 0
	for k := range m {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min
}

// runDeltaStepParallel queues nodes in an exec.OBIM keyed by bucketOf
// and relaxes each batch drainLevel returns through exec.DoAll,
// re-queuing every node whose distance drops; DeltaStepBarrier also
// waits on an exec.Barrier after each batch. mu guards every read and
// compare-and-set of the shared dist array.
func runDeltaStepParallel[W Weight](topo *topology.CSR, weights *column.PODView[W], start uint32, dist []W, mu *sync.Mutex, plan Plan) (int, error) {
	obim := exec.NewOBIM[uint32](1 << plan.Delta)
	obim.Push(0, start)

	var barrier *exec.Barrier
	if plan.Algorithm == DeltaStepBarrier {
		barrier = exec.NewBarrier(1)
	}

	buckets := 0
	for {
		batch, ok := drainLevel(obim)
		if !ok {
			break
		}
		buckets++

		err := exec.DoAll(exec.Default(), len(batch), func(_, i int) error {
			u := batch[i]
			neighbors, nerr := topo.Edges(u)
			if nerr != nil {
				return fmt.Errorf("sssp: edges of %d: %w", u, nerr)
			}
			base := topo.IndexOffset[u]
			mu.Lock()
			ud := dist[u]
			mu.Unlock()
			for j, v := range neighbors {
				w := weights.Value(int(base) + j)
				cand := ud + w
				mu.Lock()
				relaxed := cand < dist[v]
				if relaxed {
					dist[v] = cand
				}
				mu.Unlock()
				if relaxed {
					obim.Push(bucketOf(cand, plan.Delta), v)
				}
			}
			return nil
		})
		if err != nil {
			return buckets, err
		}
		if barrier != nil {
			barrier.Wait()
		}
	}
	return buckets, nil
}

// drainLevel pops every item currently queued in the OBIM, lowest level
// first, in one shot, for bulk processing by exec.DoAll rather than one
// Pop() per worker iteration. The batch is not limited to one level.
func drainLevel(obim *exec.OBIM[uint32]) ([]uint32, bool) {
	first, ok := obim.Pop()
	if !ok {
		return nil, false
	}
	batch := []uint32{first}
	for {
		item, ok := obim.Pop()
		if !ok {
			break
		}
		batch = append(batch, item)
	}
	return batch, true
}

// runTopological relaxes each node's out-edges exactly once, in a
// precomputed topological order — only valid when the graph is a DAG.
func runTopological[W Weight](topo *topology.CSR, weights *column.PODView[W], start uint32, dist []W, plan Plan) error {
	order, err := topology.TopologicalOrder(topo)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotDAG, err)
	}
	startIdx := -1
	for i, v := range order {
		if v == start {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return nil // start not in the DAG's order: nothing reachable to relax
	}
	reached := make([]bool, topo.NumNodes())
	reached[start] = true
	for _, u := range order[startIdx:] {
		if !reached[u] {
			continue // still at the unreached sentinel: nothing to relax from
		}
		neighbors, err := topo.Edges(u)
		if err != nil {
			return fmt.Errorf("sssp: edges of %d: %w", u, err)
		}
		base := topo.IndexOffset[u]
		for j, v := range neighbors {
			w := weights.Value(int(base) + j)
			cand := dist[u] + w
			if cand < dist[v] {
				dist[v] = cand
				reached[v] = true
			}
		}
	}
	return nil
}

// tileRange splits [0, n) into chunks of plan.EdgeTileSize index slices
// when the plan calls for edge tiling, or a single chunk otherwise.
func tileRange(n int, plan Plan) [][]int {
	tiled := plan.Algorithm == DijkstraTile || plan.Algorithm == SerialDeltaTile ||
	plan.Algorithm == DeltaTile || plan.Algorithm == TopologicalTile
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if !tiled || plan.EdgeTileSize <= 0 || n <= plan.EdgeTileSize {
		return [][]int{idx}
	}
	var chunks [][]int
	for start := 0; start < n; start += plan.EdgeTileSize {
		end := start + plan.EdgeTileSize
		if end > n {
			end = n
		}
		chunks = append(chunks, idx[start:end])
	}
	return chunks
}

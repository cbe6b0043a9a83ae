package bfs

import (
	"fmt"
	"io"
	"math"
	"sync/atomic"

	"github.com/arborcore/galoway/exec"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/result"
	"github.com/arborcore/galoway/topology"
)

// Unreached is the distance column's sentinel for nodes BFS never visits.
const Unreached = math.MaxUint32

// Stats summarizes one Run: how many rounds the frontier took to drain
// (always 0 for the asynchronous variants, which have no round concept)
// and how many nodes were reached including start.
type Stats struct {
	Rounds int
	Reached int
}

// Print writes a one-line human-readable summary to w.
func (s Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "bfs: rounds=%d reached=%d\n", s.Rounds, s.Reached)
}

// discoverFunc atomically claims a node at a given depth, returning true
// the first time it is called for that node and false on every later
// call (another worker, or an earlier round, already claimed it).
type discoverFunc func(v, depth uint32) bool

// Run computes unweighted shortest-path distances from start over g,
// attaching the result as a uint32 node column named out. On success out
// holds Unreached for every node start cannot reach.
func Run(g *propgraph.Graph, start uint32, out string, plan Plan) result.Result[Stats] {
	if g == nil {
		return result.Err[Stats](result.InvalidArgument, ErrGraphNil.Error())
	}
	n := g.NumNodes()
	if int(start) >= n {
		return result.Err[Stats](result.InvalidArgument, ErrStartOutOfRange.Error())
	}

	dist, err := propgraph.NewNodeOutput[uint32](g, out, Unreached)
	if err != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(err.Error()))
	}
	visited := make([]int32, n)

	discover := func(v, depth uint32) bool {
		if !atomic.CompareAndSwapInt32(&visited[v], 0, 1) {
			return false
		}
		atomic.StoreUint32(&dist[v], depth)
		return true
	}
	isVisited := func(v uint32) bool {
		return atomic.LoadInt32(&visited[v]) != 0
	}
	discover(start, 0)

	var (
	rounds int
	rerr error
)
	switch plan.Algorithm {
	case Asynchronous, AsynchronousTile:
		rerr = runAsync(g, start, plan, discover)
	case Synchronous, SynchronousTile:
		rounds, rerr = runSync(g, start, plan, discover)
	case SynchronousDirectOpt:
		rounds, rerr = runDirectOpt(g, start, plan, discover, isVisited)
	default:
		return result.Err[Stats](result.InvalidArgument, ErrUnknownAlgorithm.Error())
	}
	if rerr != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(rerr.Error()))
	}

	reached := 0
	for i := range visited {
		if visited[i] != 0 {
			reached++
		}
	}
	return result.Ok(Stats{Rounds: rounds, Reached: reached})
}

// worklistItem pairs a node with the depth it was discovered at, since
// the asynchronous variants have no shared "current round" to read depth
// from.
type worklistItem struct {
	node, depth uint32
}

func runAsync(g *propgraph.Graph, start uint32, plan Plan, discover discoverFunc) error {
	topo := g.Topology()
	return exec.ForEach(exec.Default(), []worklistItem{{start, 0}}, func(_ int, item worklistItem, push exec.PushFunc[worklistItem]) error {
		neighbors, err := topo.Edges(item.node)
		if err != nil {
			return fmt.Errorf("bfs: edges of %d: %w", item.node, err)
		}
		for _, chunk := range tile(neighbors, plan) {
			for _, u := range chunk {
				if discover(u, item.depth+1) {
					push(worklistItem{u, item.depth + 1})
				}
			}
		}
		return nil
	})
}

// runSync alternates current/next frontiers behind a full exec.DoAll
// barrier each round.6's level-synchronous variants.
func runSync(g *propgraph.Graph, start uint32, plan Plan, discover discoverFunc) (int, error) {
	topo := g.Topology()
	frontier := []uint32{start}
	rounds := 0
	for len(frontier) > 0 {
		rounds++
		depth := uint32(rounds)
		next, err := expandPush(topo, frontier, depth, plan, discover)
		if err != nil {
			return rounds, err
		}
		frontier = next
	}
	return rounds, nil
}

// runDirectOpt is runSync with a push/pull switch: once the frontier's
// total out-degree exceeds |E|/Alpha it pulls (every undiscovered node
// scans its in-edges for a discovered parent) instead of pushing, and
// switches back to push once the frontier shrinks below |N|/Beta.
func runDirectOpt(g *propgraph.Graph, start uint32, plan Plan, discover discoverFunc, isVisited func(uint32) bool) (int, error) {
	topo := g.Topology()
	n := topo.NumNodes()
	e := topo.NumEdges()
	var transposed *topology.Transposed

	frontier := []uint32{start}
	rounds := 0
	pulling := false
	for len(frontier) > 0 {
		rounds++
		depth := uint32(rounds)

		frontierDegree := 0
		for _, v := range frontier {
			frontierDegree += topo.Degree(v)
		}
		switch {
		case !pulling && plan.Alpha > 0 && frontierDegree > e/plan.Alpha:
			pulling = true
			if transposed == nil {
				transposed = topology.Transpose(topo)
			}
		case pulling && plan.Beta > 0 && len(frontier) < n/plan.Beta:
			pulling = false
		}

		var (
		next []uint32
		err error
)
		if pulling {
			next, err = expandPull(transposed, n, depth, discover, isVisited)
		} else {
			next, err = expandPush(topo, frontier, depth, plan, discover)
		}
		if err != nil {
			return rounds, err
		}
		frontier = next
	}
	return rounds, nil
}

// expandPush has every frontier node scan its own out-edges, discovering
// unvisited neighbors at depth+1.
func expandPush(topo *topology.CSR, frontier []uint32, depth uint32, plan Plan, discover discoverFunc) ([]uint32, error) {
	slots := make([][]uint32, len(frontier))
	err := exec.DoAll(exec.Default(), len(frontier), func(_, i int) error {
		v := frontier[i]
		neighbors, nerr := topo.Edges(v)
		if nerr != nil {
			return fmt.Errorf("bfs: edges of %d: %w", v, nerr)
		}
		var local []uint32
		for _, chunk := range tile(neighbors, plan) {
			for _, u := range chunk {
				if discover(u, depth) {
					local = append(local, u)
				}
			}
		}
		slots[i] = local
		return nil
	})
	if err != nil {
		return nil, err
	}
	var next []uint32
	for _, s := range slots {
		next = append(next, s...)
	}
	return next, nil
}

// expandPull has every undiscovered node scan its in-edges, claiming
// itself at depth if any in-neighbor is already discovered. Each node is
// claimed by itself at most once, so no separate synchronization beyond
// discover's CAS is needed.
func expandPull(transposed *topology.Transposed, n int, depth uint32, discover discoverFunc, isVisited func(uint32) bool) ([]uint32, error) {
	slots := make([][]uint32, n)
	err := exec.DoAll(exec.Default(), n, func(_, v int) error {
		if isVisited(uint32(v)) {
			return nil
		}
		in, ierr := transposed.InEdges(uint32(v))
		if ierr != nil {
			return fmt.Errorf("bfs: in-edges of %d: %w", v, ierr)
		}
		for _, u := range in {
			if isVisited(u) && discover(uint32(v), depth) {
				slots[v] = []uint32{uint32(v)}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	var next []uint32
	for _, s := range slots {
		next = append(next, s...)
	}
	return next, nil
}

// tile splits neighbors into chunks of plan.EdgeTileSize when the plan's
// Algorithm calls for edge tiling, or a single chunk otherwise.
func tile(neighbors []uint32, plan Plan) [][]uint32 {
	tileSized := plan.Algorithm == AsynchronousTile || plan.Algorithm == SynchronousTile
	if !tileSized || plan.EdgeTileSize <= 0 || len(neighbors) <= plan.EdgeTileSize {
		return [][]uint32{neighbors}
	}
	var chunks [][]uint32
	for start := 0; start < len(neighbors); start += plan.EdgeTileSize {
		end := start + plan.EdgeTileSize
		if end > len(neighbors) {
			end = len(neighbors)
		}
		chunks = append(chunks, neighbors[start:end])
	}
	return chunks
}

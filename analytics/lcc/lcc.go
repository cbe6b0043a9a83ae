package lcc

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/arborcore/galoway/exec"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/result"
	"github.com/arborcore/galoway/topology"
)

// Stats summarizes one Run.
type Stats struct {
	Triangles int64
	Relabeled bool
}

// Print writes a one-line human-readable summary to w.
func (s Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "lcc: triangles=%d relabeled=%v\n", s.Triangles, s.Relabeled)
}

// Run computes every node's local clustering coefficient over g (assumed
// undirected) and writes it as a float64 node column named out.
func Run(g *propgraph.Graph, out string, plan Plan) result.Result[Stats] {
	if g == nil {
		return result.Err[Stats](result.InvalidArgument, ErrGraphNil.Error())
	}
	if plan.Algorithm != Atomic && plan.Algorithm != PerThread {
		return result.Err[Stats](result.InvalidArgument, ErrUnknownAlgorithm.Error())
	}

	orig := g.Topology()
	n := orig.NumNodes()

	relabeled := plan.Relabel || topology.IsPowerLawSkewed(orig)
	var sorted *topology.CSR
	// oldOf[newID] = original node id; identity when not relabeling.
	oldOf := make([]uint32, n)
	for i := range oldOf {
		oldOf[i] = uint32(i)
	}
	if relabeled {
		newID := topology.DegreeOrderDescending(orig)
		for old, nw := range newID {
			oldOf[nw] = uint32(old)
		}
		sorted = topology.Sort(topology.Relabel(orig, newID))
	} else {
		sorted = topology.Sort(orig)
	}

	var (
	counts []uint64
	cerr error
)
	switch plan.Algorithm {
	case Atomic:
		counts, cerr = runAtomic(sorted)
	case PerThread:
		counts, cerr = runPerThread(sorted)
	}
	if cerr != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(cerr.Error()))
	}

	coeff, err := propgraph.NewNodeOutput[float64](g, out, 0)
	if err != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(err.Error()))
	}

	var totalTriangles int64
	for nw := 0; nw < n; nw++ {
		t := counts[nw]
		totalTriangles += int64(t)
		d := sorted.Degree(uint32(nw))
		var c float64
		if d > 1 {
			c = 2 * float64(t) / float64(d*(d-1))
		}
		coeff[oldOf[nw]] = c
	}

	return result.Ok(Stats{Triangles: totalTriangles / 3, Relabeled: relabeled})
}

// runAtomic counts triangles with one atomic.Uint64 counter per node,
// parallelized with exec.DoAll over nodes.
func runAtomic(sorted *topology.CSR) ([]uint64, error) {
	n := sorted.NumNodes()
	counters := make([]atomic.Uint64, n)

	err := exec.DoAll(exec.Default(), n, func(_, i int) error {
		scanNode(sorted, uint32(i), func(a, b, c uint32) {
			counters[a].Add(1)
			counters[b].Add(1)
			counters[c].Add(1)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]uint64, n)
	for i := range out {
		out[i] = counters[i].Load()
	}
	return out, nil
}

// runPerThread counts triangles into a private counter slab per worker
// (exec.PerThread[[]uint64]) and reduces once after the counting pass —
// Dense.data flat-buffer idiom generalized to one slab per
// worker instead of one buffer for the whole matrix.
func runPerThread(sorted *topology.CSR) ([]uint64, error) {
	n := sorted.NumNodes()
	pool := exec.Default()
	width := pool.MaxThreads()
	slab := exec.NewPerThread[[]uint64](width)
	for i := 0; i < width; i++ {
		*slab.Local(i) = make([]uint64, n)
	}

	err := exec.DoAll(pool, n, func(workerID, i int) error {
		local := slab.Local(workerID)
		scanNode(sorted, uint32(i), func(a, b, c uint32) {
			(*local)[a]++
			(*local)[b]++
			(*local)[c]++
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]uint64, n)
	for _, s := range slab.Slots() {
		for i, v := range s {
			out[i] += v
		}
	}
	return out, nil
}

// scanNode applies the classic sorted-adjacency merge triangle count: for
// every neighbor v < n, intersects n's and v's neighbor lists restricted
// to values w <= v, crediting a triangle to (n, v, w) for every match.
func scanNode(sorted *topology.CSR, n uint32, credit func(a, b, c uint32)) {
	neighborsN, err := sorted.Edges(n)
	if err != nil {
		return
	}
	for _, v := range neighborsN {
		if v >= n {
			break
		}
		neighborsV, err := sorted.Edges(v)
		if err != nil {
			continue
		}
		i, j := 0, 0
		for i < len(neighborsN) && j < len(neighborsV) {
			wn, wv := neighborsN[i], neighborsV[j]
			if wn > v || wv > v {
				break
			}
			switch {
			case wn == wv:
				credit(n, v, wn)
				i++
				j++
			case wn < wv:
				i++
			default:
				j++
			}
		}
	}
}

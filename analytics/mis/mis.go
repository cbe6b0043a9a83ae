package mis

import (
	"fmt"
	"hash/fnv"
	"io"
	"math"

	"github.com/arborcore/galoway/exec"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/reduce"
	"github.com/arborcore/galoway/result"
	"github.com/arborcore/galoway/topology"
)

// Indicator is a node's matched/other-matched state. The concrete byte
// written differs by algorithm family, matching the prior implementation-neutral
// scheme the Serial/Pull family and the Priority family each settle on:
// Serial/Pull write the low values below; Priority/EdgeTiledPriority
// pack a live node's byte as an odd priority (low bit set, "still
// undecided") and overwrite it with one of the two even sentinels below
// once the node is settled.
type Indicator = uint8

const (
	// unmatched is the initial value for every node, under every
	// algorithm family. Never a final state.
	unmatched Indicator = 0x00

	// matchedSerial/otherMatchedSerial are the terminal values Serial and
	// Pull write.
	matchedSerial Indicator = 0x01
	otherMatchedSerial Indicator = 0x02

	// matchedPriority/otherMatchedPriority are the terminal values
	// Priority and EdgeTiledPriority write, distinguishable from any
	// still-live odd priority byte since both are even. otherMatchedPriority
	// reuses unmatched's 0x00: by the time any node can observe it, every
	// node has already been overwritten with its priority byte (line one
	// of runPriority), so 0x00 only ever means "settled, excluded" again.
	matchedPriority Indicator = 0xFE
	otherMatchedPriority Indicator = 0x00
)

// Stats summarizes one Run.
type Stats struct {
	Matched int
	Rounds int // phases for Pull/Priority/EdgeTiledPriority; 0 for Serial
}

// Print writes a one-line human-readable summary to w.
func (s Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "mis: matched=%d rounds=%d\n", s.Matched, s.Rounds)
}

// Run computes a maximal independent set over g (assumed undirected) and
// writes a matched/other-matched indicator into a named uint8 node
// column.
func Run(g *propgraph.Graph, out string, plan Plan) result.Result[Stats] {
	if g == nil {
		return result.Err[Stats](result.InvalidArgument, ErrGraphNil.Error())
	}
	indicator, err := propgraph.NewNodeOutput[Indicator](g, out, unmatched)
	if err != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(err.Error()))
	}

	topo := g.Topology()
	var (
	rounds int
	rerr error
)
	switch plan.Algorithm {
	case Serial:
		runSerial(topo, indicator)
	case Pull:
		rounds, rerr = runPull(topo, indicator)
	case Priority, EdgeTiledPriority:
		rounds, rerr = runPriority(topo, indicator, plan)
	default:
		return result.Err[Stats](result.InvalidArgument, ErrUnknownAlgorithm.Error())
	}
	if rerr != nil {
		return result.Wrap[Stats](result.NewErrorInfo(result.GraphUpdateFailed).WithContext(rerr.Error()))
	}

	matched := 0
	for i := 0; i < topo.NumNodes(); i++ {
		if indicator[i] == matchedSerial || indicator[i] == matchedPriority {
			matched++
		}
	}
	return result.Ok(Stats{Matched: matched, Rounds: rounds})
}

// runSerial is a direct generalization of bfs.walker
// sequential-scan idiom to a single pass over node ids: a node with no
// matched neighbor yet joins the set and marks its neighbors out.
func runSerial(topo *topology.CSR, indicator []Indicator) {
	for u := 0; u < topo.NumNodes(); u++ {
		if indicator[u] != unmatched {
			continue
		}
		hasMatchedNeighbor := false
		neighbors, _ := topo.Edges(uint32(u))
		for _, v := range neighbors {
			if indicator[v] == matchedSerial {
				hasMatchedNeighbor = true
				break
			}
		}
		if hasMatchedNeighbor {
			continue
		}
		indicator[u] = matchedSerial
		for _, v := range neighbors {
			if indicator[v] == unmatched {
				indicator[v] = otherMatchedSerial
			}
		}
	}
}

// runPull repeatedly proposes (every undecided node whose id is smaller
// than every undecided neighbor's) and resolves with a second
// pull pass demoting higher-id tentative joiners, converging when no
// undecided node remains.
func runPull(topo *topology.CSR, indicator []Indicator) (int, error) {
	n := topo.NumNodes()
	tentative := make([]bool, n)
	pool := exec.Default()
	rounds := 0

	for {
		rounds++
		anyUndecided := reduce.NewLogicalOr(pool.MaxThreads())

		err := exec.DoAll(pool, n, func(workerID, u int) error {
			if indicator[u] != unmatched {
				return nil
			}
			anyUndecided.Update(workerID, true)

			neighbors, _ := topo.Edges(uint32(u))
			smallest := u
			for _, v := range neighbors {
				if indicator[v] == unmatched && int(v) < smallest {
					smallest = int(v)
				}
			}
			tentative[u] = smallest == u
			return nil
		})
		if err != nil {
			return rounds, err
		}
		if !anyUndecided.Reduce() {
			return rounds, nil
		}

		err = exec.DoAll(pool, n, func(_, u int) error {
			if indicator[u] != unmatched || !tentative[u] {
				return nil
			}
			neighbors, _ := topo.Edges(uint32(u))
			demoted := false
			for _, v := range neighbors {
				if tentative[v] && int(v) > u {
					demoted = true
					break
				}
			}
			if demoted {
				return nil
			}
			indicator[u] = matchedSerial
			for _, v := range neighbors {
				if indicator[v] == unmatched {
					indicator[v] = otherMatchedSerial
				}
			}
			return nil
		})
		if err != nil {
			return rounds, err
		}
		for i := range tentative {
			tentative[i] = false
		}
	}
}

const kHashScale = 0.01

// priorityOf computes round(scaleAvg / (avgDegree + degree(v) -
// hash(v)*kHashScale)), packed to an odd byte: bit 0 is forced to 1,
// doubling as both "this is a priority value, not a settled sentinel"
// and the low-bit undecided tag the algorithm description calls for.
func priorityOf(v uint32, degree, avgDegree, scaleAvg float64) Indicator {
	h := fnv.New32a()
	var buf [4]byte
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
	_, _ = h.Write(buf[:])
	hashVal := float64(h.Sum32())

	denom := avgDegree + degree - hashVal*kHashScale
	if denom == 0 {
		denom = 1
	}
	p := math.Round(scaleAvg / denom)
	b := int(math.Mod(p, 128))
	if b < 0 {
		b = -b
	}
	return Indicator(b*2 | 1)
}

// runPriority implements Priority and EdgeTiledPriority: every node is
// assigned a fixed odd-packed priority byte, then in each phase every
// undecided node whose priority strictly exceeds every undecided/matched
// neighbor's becomes matched, and its neighbors become other-matched.
// Both variants share this one implementation: each node is one DoAll
// work item per phase, and its edge list is scanned in
// plan.EdgeTileSize-sized tiles (64 when unset) one after another inside
// that item; tiles are not scheduled as separate work items.
func runPriority(topo *topology.CSR, indicator []Indicator, plan Plan) (int, error) {
	n := topo.NumNodes()
	if n == 0 {
		return 0, nil
	}

	totalDegree := 0
	for u := 0; u < n; u++ {
		totalDegree += topo.Degree(uint32(u))
	}
	avgDegree := float64(totalDegree) / float64(n)
	scaleAvg := avgDegree * 128

	priority := make([]Indicator, n)
	for u := 0; u < n; u++ {
		priority[u] = priorityOf(uint32(u), float64(topo.Degree(uint32(u))), avgDegree, scaleAvg)
	}
	for u := 0; u < n; u++ {
		if indicator[u] == unmatched {
			indicator[u] = priority[u]
		}
	}

	pool := exec.Default()
	rounds := 0
	tileSize := plan.EdgeTileSize
	if tileSize <= 0 {
		tileSize = 64
	}

	for {
		rounds++
		anyUndecided := reduce.NewLogicalOr(pool.MaxThreads())
		toMatch := make([]bool, n)

		err := exec.DoAll(pool, n, func(workerID, u int) error {
			if indicator[u] == matchedPriority || indicator[u] == otherMatchedPriority {
				return nil
			}
			anyUndecided.Update(workerID, true)

			neighbors, _ := topo.Edges(uint32(u))
			pu := indicator[u]
			beatsAll := true
			for _, chunk := range tileEdges(len(neighbors), tileSize) {
				for _, j := range chunk {
					v := neighbors[j]
					nv := indicator[v]
					if nv == otherMatchedPriority {
						continue
					}
					// matchedPriority always beats; an equal-or-higher
					// still-live priority beats unless u wins the
					// higher-id tie-break.
					loses := nv == matchedPriority ||
					nv > pu ||
					(nv == pu && v > uint32(u))
					if loses {
						beatsAll = false
					}
				}
			}
			if beatsAll {
				toMatch[u] = true
			}
			return nil
		})
		if err != nil {
			return rounds, err
		}
		if !anyUndecided.Reduce() {
			return rounds, nil
		}

		for u := 0; u < n; u++ {
			if !toMatch[u] {
				continue
			}
			indicator[u] = matchedPriority
			neighbors, _ := topo.Edges(uint32(u))
			for _, v := range neighbors {
				if indicator[v] != matchedPriority && indicator[v] != otherMatchedPriority {
					indicator[v] = otherMatchedPriority
				}
			}
		}
	}
}

// tileEdges splits [0, n) into tileSize-sized index chunks.
func tileEdges(n, tileSize int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if tileSize <= 0 || n <= tileSize {
		return [][]int{idx}
	}
	var chunks [][]int
	for start := 0; start < n; start += tileSize {
		end := start + tileSize
		if end > n {
			end = n
		}
		chunks = append(chunks, idx[start:end])
	}
	return chunks
}

package bfs

import (
	"fmt"

	"github.com/arborcore/galoway/propgraph"
)

// AssertValid checks the two invariants a BFS distance column must
// satisfy: the start node's distance is 0, and every edge (u, v) with
// both endpoints reached has |dist(u) - dist(v)| <= 1 — BFS never
// discovers a node more than one hop past its nearest discovered
// neighbor.
func AssertValid(g *propgraph.Graph, start uint32, colName string) error {
	col, err := propgraph.NewView(g, []propgraph.Descriptor{propgraph.NodeProp[uint32](colName)}, nil)
	if err != nil {
		return fmt.Errorf("bfs: AssertValid: %w", err)
	}

	startDist, err := propgraph.GetNodeData[uint32](col, colName, start)
	if err != nil {
		return fmt.Errorf("bfs: AssertValid: %w", err)
	}
	if startDist != 0 {
		return fmt.Errorf("bfs: AssertValid: start node %d has distance %d, want 0", start, startDist)
	}

	topo := g.Topology()
	for u := uint32(0); int(u) < topo.NumNodes(); u++ {
		du, err := propgraph.GetNodeData[uint32](col, colName, u)
		if err != nil {
			return fmt.Errorf("bfs: AssertValid: %w", err)
		}
		if du == Unreached {
			continue
		}
		neighbors, err := topo.Edges(u)
		if err != nil {
			return fmt.Errorf("bfs: AssertValid: %w", err)
		}
		for _, v := range neighbors {
			dv, err := propgraph.GetNodeData[uint32](col, colName, v)
			if err != nil {
				return fmt.Errorf("bfs: AssertValid: %w", err)
			}
			if dv == Unreached {
				continue
			}
			diff := int64(dv) - int64(du)
			if diff > 1 || diff < -1 {
				return fmt.Errorf("bfs: AssertValid: edge %d->%d has distances %d, %d (gap > 1)", u, v, du, dv)
			}
		}
	}
	return nil
}

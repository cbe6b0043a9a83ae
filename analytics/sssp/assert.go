package sssp

import (
	"fmt"

	"github.com/arborcore/galoway/propgraph"
)

// AssertValid checks the relaxation invariant a settled distance column
// must satisfy: the start node's distance is zero, and for every edge
// (u, v) with both endpoints reached, dist(v) <= dist(u) + weight(u, v).
// unreached is the sentinel Run was called with, marking nodes to skip.
func AssertValid[W Weight](g *propgraph.Graph, start uint32, distCol, weightCol string, unreached W) error {
	var zero W
	view, err := propgraph.NewView(g,
	[]propgraph.Descriptor{propgraph.NodeProp[W](distCol)},
	[]propgraph.Descriptor{propgraph.EdgeProp[W](weightCol)},
)
	if err != nil {
		return fmt.Errorf("sssp: AssertValid: %w", err)
	}

	startDist, err := propgraph.GetNodeData[W](view, distCol, start)
	if err != nil {
		return fmt.Errorf("sssp: AssertValid: %w", err)
	}
	if startDist != zero {
		return fmt.Errorf("sssp: AssertValid: start node %d has distance %v, want 0", start, startDist)
	}

	weights, err := propgraph.EdgeColumn[W](view, weightCol)
	if err != nil {
		return fmt.Errorf("sssp: AssertValid: %w", err)
	}

	topo := g.Topology()
	for u := uint32(0); int(u) < topo.NumNodes(); u++ {
		du, err := propgraph.GetNodeData[W](view, distCol, u)
		if err != nil {
			return fmt.Errorf("sssp: AssertValid: %w", err)
		}
		if du == unreached {
			continue
		}
		neighbors, err := topo.Edges(u)
		if err != nil {
			return fmt.Errorf("sssp: AssertValid: %w", err)
		}
		base := topo.IndexOffset[u]
		for j, v := range neighbors {
			dv, err := propgraph.GetNodeData[W](view, distCol, v)
			if err != nil {
				return fmt.Errorf("sssp: AssertValid: %w", err)
			}
			if dv == unreached {
				continue
			}
			w := weights.Value(int(base) + j)
			if dv > du+w {
				return fmt.Errorf("sssp: AssertValid: edge %d->%d violates relaxation: dist(v)=%v > dist(u)=%v + weight=%v", u, v, dv, du, w)
			}
		}
	}
	return nil
}


package lcc

import (
	"fmt"

	"github.com/arborcore/galoway/propgraph"
)

// AssertValid checks that every node's clustering coefficient column
// value lies in [0, 1] and is 0 for any node with degree < 2 (a
// coefficient is only defined once a node has two neighbors that could
// themselves be connected). It does not recompute the coefficient from
// scratch — that would just be Run again — it only checks the value Run
// produced is in the range the definition allows.
func AssertValid(g *propgraph.Graph, colName string) error {
	col, err := propgraph.NewView(g, []propgraph.Descriptor{propgraph.NodeProp[float64](colName)}, nil)
	if err != nil {
		return fmt.Errorf("lcc: AssertValid: %w", err)
	}

	topo := g.Topology()
	for u := uint32(0); int(u) < topo.NumNodes(); u++ {
		c, err := propgraph.GetNodeData[float64](col, colName, u)
		if err != nil {
			return fmt.Errorf("lcc: AssertValid: %w", err)
		}
		if c < 0 || c > 1 {
			return fmt.Errorf("lcc: AssertValid: node %d has coefficient %v, want [0, 1]", u, c)
		}
		if topo.Degree(u) < 2 && c != 0 {
			return fmt.Errorf("lcc: AssertValid: node %d has degree %d but nonzero coefficient %v", u, topo.Degree(u), c)
		}
	}
	return nil
}

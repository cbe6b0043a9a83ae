package mis

import (
	"fmt"

	"github.com/arborcore/galoway/propgraph"
)

// AssertValid checks the maximal-independent-set invariant: every node's
// indicator is a settled matched or other-matched value, and for every
// matched node, no neighbor is also matched. The Priority variants'
// other-matched byte (0x00) is also the initial unmatched sentinel, so a
// node still at 0x00 is accepted as settled, not reported as undecided.
func AssertValid(g *propgraph.Graph, colName string) error {
	col, err := propgraph.NewView(g, []propgraph.Descriptor{propgraph.NodeProp[Indicator](colName)}, nil)
	if err != nil {
		return fmt.Errorf("mis: AssertValid: %w", err)
	}

	topo := g.Topology()
	for u := uint32(0); int(u) < topo.NumNodes(); u++ {
		iu, err := propgraph.GetNodeData[Indicator](col, colName, u)
		if err != nil {
			return fmt.Errorf("mis: AssertValid: %w", err)
		}
		settledMatched := iu == matchedSerial || iu == matchedPriority
		settledOther := iu == otherMatchedSerial || iu == otherMatchedPriority
		if !settledMatched && !settledOther {
			return fmt.Errorf("mis: AssertValid: node %d left undecided (indicator=%#x)", u, iu)
		}
		if !settledMatched {
			continue
		}
		neighbors, err := topo.Edges(u)
		if err != nil {
			return fmt.Errorf("mis: AssertValid: %w", err)
		}
		for _, v := range neighbors {
			iv, err := propgraph.GetNodeData[Indicator](col, colName, v)
			if err != nil {
				return fmt.Errorf("mis: AssertValid: %w", err)
			}
			if iv == matchedSerial || iv == matchedPriority {
				return fmt.Errorf("mis: AssertValid: edge %d->%d has both endpoints matched", u, v)
			}
		}
	}
	return nil
}

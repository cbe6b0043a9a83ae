package topology

import "fmt"

// White/Gray/Black visitation states for the DFS-based topological sort,
// adapted from dfs.TopologicalSort (dfs/topological.go),
// generalized from string vertex ids over a core.Graph to uint32 node ids
// over a CSR. Used by analytics/sssp's Topological/TopologicalTile plan
// variants.
const (
	white = 0
	gray = 1
	black = 2
)

// TopologicalOrder computes a linear ordering of c's nodes such that for
// every edge u->v, u precedes v. Returns ErrNotDAG if c contains a cycle.
func TopologicalOrder(c *CSR) ([]uint32, error) {
	state := make([]uint8, c.Nodes)
	order := make([]uint32, 0, c.Nodes)

	var visit func(u uint32) error
	visit = func(u uint32) error {
		switch state[u] {
		case gray:
			return fmt.Errorf("topology: back-edge at node %d: %w", u, ErrNotDAG)
		case black:
			return nil
		}
		state[u] = gray
		edges, err := c.Edges(u)
		if err != nil {
			return err
		}
		for _, v := range edges {
			if err := visit(v); err != nil {
				return err
			}
		}
		state[u] = black
		order = append(order, u)
		return nil
	}

	for u := 0; u < c.Nodes; u++ {
		if state[u] == white {
			if err := visit(uint32(u)); err != nil {
				return nil, err
			}
		}
	}

	// order is currently post-order; reverse for topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

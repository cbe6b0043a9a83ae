package topology

import "fmt"

// CSR is a compressed sparse row adjacency: IndexOffset[u]..IndexOffset[u+1]
// bounds u's outgoing edges within EdgeDst. Invariant:
// IndexOffset is monotonically non-decreasing and IndexOffset[Nodes] == len(EdgeDst).
type CSR struct {
	Nodes int
	EdgeDst []uint32
	IndexOffset []uint32

	sorted bool // true once every node's out-edges are destination-sorted
}

// NumNodes() reports N.
func (c *CSR) NumNodes() int { return c.Nodes }

// NumEdges() reports E.
func (c *CSR) NumEdges() int { return len(c.EdgeDst) }

// Sorted() reports whether this CSR's per-node edge slices are known to be
// sorted by destination id (set by Sort, see sorted.go).
func (c *CSR) Sorted() bool { return c.sorted }

// Edges() returns the slice of destination ids for node u's outgoing edges.
// The returned slice aliases CSR's backing array; callers must not retain
// it past the CSR's lifetime.
func (c *CSR) Edges(u uint32) ([]uint32, error) {
	if int(u) >= c.Nodes {
		return nil, fmt.Errorf("topology: node %d, nodes %d: %w", u, c.Nodes, ErrNodeOutOfRange)
	}
	start, end := c.IndexOffset[u], c.IndexOffset[u+1]
	return c.EdgeDst[start:end], nil
}

// Degree reports node u's out-degree.
func (c *CSR) Degree(u uint32) int {
	if int(u) >= c.Nodes {
		return 0
	}
	return int(c.IndexOffset[u+1] - c.IndexOffset[u])
}

// Validate() checks the CSR invariants from: IndexOffset has
// length Nodes+1, is monotonically non-decreasing, and its final entry
// equals len(EdgeDst).
func (c *CSR) Validate() error {
	if len(c.IndexOffset) != c.Nodes+1 {
		return fmt.Errorf("topology: IndexOffset length %d != Nodes+1 (%d)", len(c.IndexOffset), c.Nodes+1)
	}
	for i := 1; i < len(c.IndexOffset); i++ {
		if c.IndexOffset[i] < c.IndexOffset[i-1] {
			return fmt.Errorf("topology: IndexOffset not monotonic at %d", i)
		}
	}
	if int(c.IndexOffset[c.Nodes]) != len(c.EdgeDst) {
		return fmt.Errorf("topology: IndexOffset[Nodes]=%d != len(EdgeDst)=%d", c.IndexOffset[c.Nodes], len(c.EdgeDst))
	}
	return nil
}

// Clone() produces a deep copy of the CSR: analytics that need to relabel
// nodes or sort edges must mutate a copy, never the caller's topology
//.
func (c *CSR) Clone() *CSR {
	out := &CSR{
		Nodes: c.Nodes,
		EdgeDst: make([]uint32, len(c.EdgeDst)),
		IndexOffset: make([]uint32, len(c.IndexOffset)),
		sorted: c.sorted,
	}
	copy(out.EdgeDst, c.EdgeDst)
	copy(out.IndexOffset, c.IndexOffset)
	return out
}

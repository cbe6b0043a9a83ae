package topology

// Transposed is a reverse CSR used by direction-optimizing BFS: In[v] lists the source ids of edges (u, v) in the original
// topology.
type Transposed struct {
	CSR
}

// Transpose() builds the reverse CSR of c without mutating c.
func Transpose(c *CSR) *Transposed {
	n := c.Nodes
	counts := make([]uint32, n+1)
	for u := 0; u < n; u++ {
		start, end := c.IndexOffset[u], c.IndexOffset[u+1]
		for _, v := range c.EdgeDst[start:end] {
			counts[v+1]++
		}
	}
	for i := 1; i <= n; i++ {
		counts[i] += counts[i-1]
	}
	offsets := make([]uint32, n+1)
	copy(offsets, counts)

	dst := make([]uint32, len(c.EdgeDst))
	cursor := make([]uint32, n)
	copy(cursor, offsets[:n])
	for u := 0; u < n; u++ {
		start, end := c.IndexOffset[u], c.IndexOffset[u+1]
		for _, v := range c.EdgeDst[start:end] {
			dst[cursor[v]] = uint32(u)
			cursor[v]++
		}
	}

	return &Transposed{CSR{Nodes: n, EdgeDst: dst, IndexOffset: offsets}}
}

// InEdges returns the source ids of edges incoming to v.
func (t *Transposed) InEdges(v uint32) ([]uint32, error) { return t.Edges(v) }

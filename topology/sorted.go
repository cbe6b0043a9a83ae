package topology

// Sort returns a clone of c with every node's outgoing-edge slice sorted
// by destination id. The source topology is
// never mutated — callers needing a sorted view over their own graph must
// go through a Clone() first, mirroring "never mutate the
// caller's graph" policy for relabeling/sorting.
func Sort(c *CSR) *CSR {
	out := c.Clone()
	for u := 0; u < out.Nodes; u++ {
		start, end := out.IndexOffset[u], out.IndexOffset[u+1]
		sortEdgeSlice(out.EdgeDst[start:end])
	}
	out.sorted = true
	return out
}

// Relabel returns a clone of c with nodes renumbered according to
// newID[oldID] = newLabel, used by analytics/lcc's optional descending-
// degree relabeling pass. newID must be a permutation of
// [0, c.Nodes).
func Relabel(c *CSR, newID []uint32) *CSR {
	n := c.Nodes
	counts := make([]uint32, n+1)
	for u := 0; u < n; u++ {
		deg := c.IndexOffset[u+1] - c.IndexOffset[u]
		counts[newID[u]+1] += deg
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
		nu := newID[u]
		start, end := c.IndexOffset[u], c.IndexOffset[u+1]
		for _, v := range c.EdgeDst[start:end] {
			dst[cursor[nu]] = newID[v]
			cursor[nu]++
		}
	}

	return &CSR{Nodes: n, EdgeDst: dst, IndexOffset: offsets}
}

// DegreeOrderDescending returns a relabeling (newID[oldID] = rank) that
// assigns the lowest ids to the highest-degree nodes, the relabeling
// analytics/lcc applies before sorting when a Plan requests it or the
// power-law auto-detection heuristic fires.
func DegreeOrderDescending(c *CSR) []uint32 {
	n := c.Nodes
	order := make([]uint32, n)
	for i := range order {
		order[i] = uint32(i)
	}
	degree := func(u uint32) int { return c.Degree(u) }
	sortByDegreeDesc(order, degree)

	newID := make([]uint32, n)
	for rank, oldID := range order {
		newID[oldID] = uint32(rank)
	}
	return newID
}

func sortByDegreeDesc(order []uint32, degree func(uint32) int) {
	// Stable sort keeps relative order among equal-degree nodes
	// deterministic, matching the builder's emphasis on determinism.
	n := len(order)
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && degree(order[j-1]) < degree(order[j]) {
			order[j-1], order[j] = order[j], order[j-1]
			j--
		}
	}
}

// IsPowerLawSkewed reports a cheap heuristic for "approximately power-law"
// degree distribution: the max degree exceeds k times the mean degree.
// Used by analytics/lcc's relabeling auto-detection and
// analytics/sssp.Automatic's DeltaStep vs DeltaStepBarrier choice
//.
func IsPowerLawSkewed(c *CSR) bool {
	if c.Nodes == 0 {
		return false
	}
	const skewFactor = 5.0
	total, max := 0, 0
	for u := 0; u < c.Nodes; u++ {
		d := c.Degree(u)
		total += d
		if d > max {
			max = d
		}
	}
	mean := float64(total) / float64(c.Nodes)
	if mean == 0 {
		return false
	}
	return float64(max) > skewFactor*mean
}

package sssp

// nodeItem pairs a node id with a tentative distance, for the
// lazy-decrease-key binary heap below — a direct generalization of the
// teacher's dijkstra.nodeItem to a generic Weight type.
type nodeItem[W Weight] struct {
	id uint32
	dist W
}

// nodePQ is a min-heap of *nodeItem[W] ordered by dist ascending. Stale
// entries (a node already visited when its turn comes up) are simply
// skipped by the caller rather than removed from the heap, the same
// lazy-decrease-key idiom as dijkstra.nodePQ.
type nodePQ[W Weight] []*nodeItem[W]

func (pq nodePQ[W]) Len() int { return len(pq) }
func (pq nodePQ[W]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[W])) }
func (pq *nodePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

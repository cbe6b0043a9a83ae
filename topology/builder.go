package topology

import "sort"

// Builder accumulates nodes and edges in insertion order and converts them
// to a CSR on Build(). Mirrors builder.BuildGraph contract
// (deterministic composition, no partial mutation on failure) but targets
// a CSR instead of an adjacency-list core.Graph.
type Builder struct {
	nodes int
	fromEdges [][2]uint32 // (from, to) pairs, insertion order
	symmetric bool
}

// NewBuilder() returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Symmetric() marks the builder so every AddEdge(u, v) also implicitly adds
// (v, u), mirroring "symmetric builder mirrors every added
// edge".
func (b *Builder) Symmetric() *Builder {
	b.symmetric = true
	return b
}

// AddNodes ensures the topology has at least n nodes (ids [0, n)).
func (b *Builder) AddNodes(n int) *Builder {
	if n > b.nodes {
		b.nodes = n
	}
	return b
}

// AddEdge records an edge u->v (and v->u if Symmetric() was set). Node ids
// referenced here implicitly extend the node count.
func (b *Builder) AddEdge(u, v uint32) *Builder {
	if int(u)+1 > b.nodes {
		b.nodes = int(u) + 1
	}
	if int(v)+1 > b.nodes {
		b.nodes = int(v) + 1
	}
	b.fromEdges = append(b.fromEdges, [2]uint32{u, v})
	if b.symmetric && u != v {
		b.fromEdges = append(b.fromEdges, [2]uint32{v, u})
	}
	return b
}

// Build() converts the accumulated nodes/edges into a CSR grouping edges by
// source in insertion order.2.
func (b *Builder) Build() *CSR {
	n := b.nodes
	counts := make([]uint32, n+1)
	for _, e := range b.fromEdges {
		counts[e[0]+1]++
	}
	for i := 1; i <= n; i++ {
		counts[i] += counts[i-1]
	}
	offsets := make([]uint32, n+1)
	copy(offsets, counts)

	dst := make([]uint32, len(b.fromEdges))
	cursor := make([]uint32, n)
	copy(cursor, offsets[:n])
	for _, e := range b.fromEdges {
		u, v := e[0], e[1]
		dst[cursor[u]] = v
		cursor[u]++
	}

	return &CSR{Nodes: n, EdgeDst: dst, IndexOffset: offsets}
}

// Constructor mutates a Builder deterministically, matching 
// builder.Constructor func(g *core.Graph, cfg builderConfig) error shape
// generalized to operate on a topology.Builder instead of a core.Graph.
// Generators in package gen implement this signature.
type Constructor func(b *Builder) error

// Compose applies a sequence of Constructors to a fresh Builder in order,
// aborting on the first error (no partial mutation is observable by the
// caller since nothing is converted to a CSR until Build() is called).
func Compose(cons...Constructor) (*Builder, error) {
	b := NewBuilder()
	for _, c := range cons {
		if err := c(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// sortEdgeSlice sorts a single node's destination slice ascending; used by
// Sort (sorted.go) and by Builder-level callers that want pre-sorted
// synthetic topologies without a full Sort pass.
func sortEdgeSlice(s []uint32) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

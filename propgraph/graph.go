package propgraph

import (
	"fmt"
	"sync"

	"github.com/arborcore/galoway/topology"
)

// Graph is the PropertyGraph of: an immutable topology plus
// two property tables. Node-table and edge-table/topology access are
// guarded by separate RWMutexes, mirroring core.Graph split
// between muVert and muEdgeAdj (core/types.go) — so a reader walking
// NodeTable never contends with a writer appending an edge column.
type Graph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	topo *topology.CSR

	nodeTable *Table
	edgeTable *Table
}

// New wraps a topology in a fresh PropertyGraph with empty property tables.
func New(topo *topology.CSR) *Graph {
	return &Graph{
		topo: topo,
		nodeTable: NewTable(),
		edgeTable: NewTable(),
	}
}

// Topology() returns the graph's immutable CSR topology.
func (g *Graph) Topology() *topology.CSR { return g.topo }

// NumNodes() and NumEdges() expose the element counts property columns must match.
func (g *Graph) NumNodes() int { return g.topo.NumNodes() }
func (g *Graph) NumEdges() int { return g.topo.NumEdges() }

// AddNodeProperties appends every column of table to the graph's node
// table. Fails ErrAlreadyExists on a name collision, ErrInvalidArgument if
// any column's length doesn't match NumNodes().
func (g *Graph) AddNodeProperties(table *Table) error {
	return g.addProperties(&g.muNode, g.nodeTable, table, g.NumNodes())
}

// AddEdgeProperties is AddNodeProperties's edge-table analogue.
func (g *Graph) AddEdgeProperties(table *Table) error {
	return g.addProperties(&g.muEdge, g.edgeTable, table, g.NumEdges())
}

func (g *Graph) addProperties(mu *sync.RWMutex, dst, src *Table, wantLen int) error {
	mu.Lock()
	defer mu.Unlock()
	for _, name := range src.Names() {
		col, _ := src.Get(name)
		if col.Len() != wantLen {
			return fmt.Errorf("propgraph: column %q length %d != element count %d: %w", name, col.Len(), wantLen, ErrInvalidArgument)
		}
	}
	for _, name := range src.Names() {
		col, _ := src.Get(name)
		if err := dst.Add(name, col); err != nil {
			return err
		}
	}
	return nil
}

// GetNodeProperty returns the named node column, or ErrPropertyNotFound.
func (g *Graph) GetNodeProperty(name string) (Column, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return g.nodeTable.Get(name)
}

// GetEdgeProperty returns the named edge column, or ErrPropertyNotFound.
func (g *Graph) GetEdgeProperty(name string) (Column, error) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return g.edgeTable.Get(name)
}

// RemoveNodeProperty deletes a node column by name.
func (g *Graph) RemoveNodeProperty(name string) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	return g.nodeTable.Remove(name)
}

// RemoveEdgeProperty is RemoveNodeProperty's edge-table analogue.
func (g *Graph) RemoveEdgeProperty(name string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	return g.edgeTable.Remove(name)
}

// NodePropertyNames() lists the current node property names in insertion order.
func (g *Graph) NodePropertyNames() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return g.nodeTable.Names()
}

// EdgePropertyNames() lists the current edge property names in insertion order.
func (g *Graph) EdgePropertyNames() []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return g.edgeTable.Names()
}

// Copy produces a shallow copy of g sharing the same topology: only the
// named node/edge properties are retained (a nil slice means "all"). This
// is the mechanism analytics use to attach a relabeled/sorted topology
// without mutating the caller's graph, generalized from
// core.Graph.Copy (core/methods_clone.go) which shallow-
// copies property tables but deep-copies nothing it doesn't have to.
func (g *Graph) Copy(topo *topology.CSR, nodeNames, edgeNames []string) (*Graph, error) {
	g.muNode.RLock()
	g.muEdge.RLock()
	defer g.muNode.RUnlock()
	defer g.muEdge.RUnlock()

	if topo == nil {
		topo = g.topo
	}
	out := New(topo)

	if nodeNames == nil {
		out.nodeTable = g.nodeTable.clone()
	} else {
		nt, err := g.nodeTable.subset(nodeNames)
		if err != nil {
			return nil, err
		}
		out.nodeTable = nt
	}

	if edgeNames == nil {
		out.edgeTable = g.edgeTable.clone()
	} else {
		et, err := g.edgeTable.subset(edgeNames)
		if err != nil {
			return nil, err
		}
		out.edgeTable = et
	}

	return out, nil
}

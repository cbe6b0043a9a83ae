package gen

import (
	"fmt"

	"github.com/arborcore/galoway/column"
	"github.com/arborcore/galoway/propgraph"
)

// AddNodeProperties resolves gen's element type T to a column.PODView[T]
// by calling gen once per node id and fills a single-column Table sized to
// g.NumNodes(), attaching it through g.AddNodeProperties in one call — the
// table is built fully in memory before the attach call, so a panic inside
// gen or an AddNodeProperties collision leaves g's existing tables
// untouched, matching builder.BuildGraph's "any constructor error aborts,
// no partial mutation" contract (builder/builder.go).
func AddNodeProperties[T column.Numeric](g *propgraph.Graph, name string, gen func(id uint32) T) error {
	n := g.NumNodes()
	values := make([]T, n)
	for id := 0; id < n; id++ {
		values[id] = gen(uint32(id))
	}
	tbl := propgraph.NewTable()
	if err := tbl.Add(name, column.WrapPOD(values, nil)); err != nil {
		return fmt.Errorf("gen: AddNodeProperties: %w", err)
	}
	return g.AddNodeProperties(tbl)
}

// AddEdgeProperties is AddNodeProperties's edge-table analogue: gen is
// called once per edge index in CSR edge-array order.
func AddEdgeProperties[T column.Numeric](g *propgraph.Graph, name string, gen func(id uint32) T) error {
	n := g.NumEdges()
	values := make([]T, n)
	for id := 0; id < n; id++ {
		values[id] = gen(uint32(id))
	}
	tbl := propgraph.NewTable()
	if err := tbl.Add(name, column.WrapPOD(values, nil)); err != nil {
		return fmt.Errorf("gen: AddEdgeProperties: %w", err)
	}
	return g.AddEdgeProperties(tbl)
}

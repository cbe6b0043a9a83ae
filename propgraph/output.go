package propgraph

import "github.com/arborcore/galoway/column"

// NewNodeOutput allocates a fresh POD column sized to g.NumNodes(), fills
// it with fill, and attaches it to g under name — the single "construct
// an output property column... on success leaves the new property
// attached" step every analytics entry point performs.
// Returns the backing slice so the caller's parallel region can write into
// it directly (through atomic wrappers where required) before the column
// is handed to AddNodeProperties.
func NewNodeOutput[T column.Numeric](g *Graph, name string, fill T) ([]T, error) {
	return newOutput[T](g, name, g.NumNodes(), fill, g.AddNodeProperties)
}

// NewEdgeOutput is NewNodeOutput's edge-property analogue.
func NewEdgeOutput[T column.Numeric](g *Graph, name string, fill T) ([]T, error) {
	return newOutput[T](g, name, g.NumEdges(), fill, g.AddEdgeProperties)
}

func newOutput[T column.Numeric](_ *Graph, name string, n int, fill T, attach func(*Table) error) ([]T, error) {
	values := make([]T, n)
	var zero T
	if fill != zero {
		for i := range values {
			values[i] = fill
		}
	}
	view := column.WrapPOD(values, nil)
	tbl := NewTable()
	if err := tbl.Add(name, view); err != nil {
		return nil, err
	}
	if err := attach(tbl); err != nil {
		return nil, err
	}
	return values, nil
}

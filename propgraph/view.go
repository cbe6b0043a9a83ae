package propgraph

import (
	"fmt"

	"github.com/arborcore/galoway/column"
)

// Descriptor names a property and knows how to resolve itself against a
// Table into a concrete, type-checked column view. Analytics packages
// build a View from a list of Descriptors the same way the original C++
// engine resolves a compile-time tuple of property descriptors — here
// realized as a runtime dispatch table
// ("generic dispatch with tagged variants... the external contract only
// requires that the chosen... parameters reach the correct strategy").
type Descriptor interface {
	Name() string
	resolve(t *Table) (any, error)
}

// PODDescriptor resolves a node/edge property expected to be a fixed-width
// numeric/boolean column of type T.
type PODDescriptor[T column.Numeric] struct{ PropName string }

// NodeProp / EdgeProp construct a PODDescriptor for the given property name.
func NodeProp[T column.Numeric](name string) PODDescriptor[T] { return PODDescriptor[T]{PropName: name} }
func EdgeProp[T column.Numeric](name string) PODDescriptor[T] { return PODDescriptor[T]{PropName: name} }

// Name() returns the property name this descriptor resolves.
func (d PODDescriptor[T]) Name() string { return d.PropName }

func (d PODDescriptor[T]) resolve(t *Table) (any, error) {
	col, err := t.Get(d.PropName)
	if err != nil {
		return nil, err
	}
	view, ok := col.(*column.PODView[T])
	if !ok {
		return nil, fmt.Errorf("propgraph: property %q: %w", d.PropName, ErrTypeError)
	}
	return view, nil
}

// View is a resolved typed property-graph view: a fixed set of node/edge
// descriptors checked once against a Graph's current tables. A View is a
// borrowed reference — its lifetime must not exceed the Graph's, per
// 
type View struct {
	nodeResolved map[string]any
	edgeResolved map[string]any
}

// NewView resolves nodeDescs/edgeDescs against g, failing
// ErrPropertyNotFound or ErrTypeError immediately if any descriptor
// cannot be satisfied.
func NewView(g *Graph, nodeDescs, edgeDescs []Descriptor) (*View, error) {
	v := &View{
		nodeResolved: make(map[string]any, len(nodeDescs)),
		edgeResolved: make(map[string]any, len(edgeDescs)),
	}
	g.muNode.RLock()
	for _, d := range nodeDescs {
		resolved, err := d.resolve(g.nodeTable)
		if err != nil {
			g.muNode.RUnlock()
			return nil, err
		}
		v.nodeResolved[d.Name()] = resolved
	}
	g.muNode.RUnlock()

	g.muEdge.RLock()
	for _, d := range edgeDescs {
		resolved, err := d.resolve(g.edgeTable)
		if err != nil {
			g.muEdge.RUnlock()
			return nil, err
		}
		v.edgeResolved[d.Name()] = resolved
	}
	g.muEdge.RUnlock()

	return v, nil
}

// GetNodeData returns element id of the node property name, type-checked
// against T at resolution time (NewView) so this call cannot itself
// return a TypeError — only ErrPropertyNotFound for an unresolved name,
// or the column's ErrIndexOutOfRange for an id past its length.
func GetNodeData[T column.Numeric](v *View, name string, id uint32) (T, error) {
	return getData[T](v.nodeResolved, name, id)
}

// GetEdgeData is GetNodeData's edge-property analogue.
func GetEdgeData[T column.Numeric](v *View, name string, id uint32) (T, error) {
	return getData[T](v.edgeResolved, name, id)
}

func getData[T column.Numeric](resolved map[string]any, name string, id uint32) (T, error) {
	var zero T
	raw, ok := resolved[name]
	if !ok {
		return zero, fmt.Errorf("propgraph: %q: %w", name, ErrPropertyNotFound)
	}
	pv := raw.(*column.PODView[T])
	ptr, err := pv.GetValue(int(id))
	if err != nil {
		return zero, err
	}
	return *ptr, nil
}

// NodeColumn returns the raw resolved *column.PODView[T] for direct bulk
// access (analytics inner loops avoid the per-call error-returning
// GetNodeData when iterating every node).
func NodeColumn[T column.Numeric](v *View, name string) (*column.PODView[T], error) {
	raw, ok := v.nodeResolved[name]
	if !ok {
		return nil, fmt.Errorf("propgraph: %q: %w", name, ErrPropertyNotFound)
	}
	return raw.(*column.PODView[T]), nil
}

// EdgeColumn is NodeColumn's edge-property analogue.
func EdgeColumn[T column.Numeric](v *View, name string) (*column.PODView[T], error) {
	raw, ok := v.edgeResolved[name]
	if !ok {
		return nil, fmt.Errorf("propgraph: %q: %w", name, ErrPropertyNotFound)
	}
	return raw.(*column.PODView[T]), nil
}

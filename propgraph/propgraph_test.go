package propgraph_test

import (
	"testing"

	"github.com/arborcore/galoway/column"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/topology"
	"github.com/stretchr/testify/require"
)

func smallGraph() *propgraph.Graph {
	b := topology.NewBuilder().Symmetric()
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	return propgraph.New(b.Build())
}

func TestAddAndGetNodeProperty(t *testing.T) {
	g := smallGraph()
	tbl := propgraph.NewTable()
	require.NoError(t, tbl.Add("weight", column.WrapPOD([]int64{1, 2, 3}, nil)))
	require.NoError(t, g.AddNodeProperties(tbl))

	col, err := g.GetNodeProperty("weight")
	require.NoError(t, err)
	require.Equal(t, 3, col.Len())
}

func TestAddNodePropertyWrongLength(t *testing.T) {
	g := smallGraph()
	tbl := propgraph.NewTable()
	require.NoError(t, tbl.Add("weight", column.WrapPOD([]int64{1, 2}, nil)))
	err := g.AddNodeProperties(tbl)
	require.ErrorIs(t, err, propgraph.ErrInvalidArgument)
}

func TestAddNodePropertyCollision(t *testing.T) {
	g := smallGraph()
	tbl := propgraph.NewTable()
	require.NoError(t, tbl.Add("weight", column.WrapPOD([]int64{1, 2, 3}, nil)))
	require.NoError(t, g.AddNodeProperties(tbl))

	tbl2 := propgraph.NewTable()
	require.NoError(t, tbl2.Add("weight", column.WrapPOD([]int64{4, 5, 6}, nil)))
	err := g.AddNodeProperties(tbl2)
	require.ErrorIs(t, err, propgraph.ErrAlreadyExists)
}

func TestGetPropertyNotFound(t *testing.T) {
	g := smallGraph()
	_, err := g.GetNodeProperty("missing")
	require.ErrorIs(t, err, propgraph.ErrPropertyNotFound)
}

func TestRemoveNodeProperty(t *testing.T) {
	g := smallGraph()
	tbl := propgraph.NewTable()
	require.NoError(t, tbl.Add("weight", column.WrapPOD([]int64{1, 2, 3}, nil)))
	require.NoError(t, g.AddNodeProperties(tbl))
	require.NoError(t, g.RemoveNodeProperty("weight"))
	_, err := g.GetNodeProperty("weight")
	require.ErrorIs(t, err, propgraph.ErrPropertyNotFound)
}

func TestViewResolveAndTypeError(t *testing.T) {
	g := smallGraph()
	tbl := propgraph.NewTable()
	require.NoError(t, tbl.Add("weight", column.WrapPOD([]int64{10, 20, 30}, nil)))
	require.NoError(t, g.AddNodeProperties(tbl))

	view, err := propgraph.NewView(g, []propgraph.Descriptor{propgraph.NodeProp[int64]("weight")}, nil)
	require.NoError(t, err)

	val, err := propgraph.GetNodeData[int64](view, "weight", 1)
	require.NoError(t, err)
	require.Equal(t, int64(20), val)

	_, err = propgraph.NewView(g, []propgraph.Descriptor{propgraph.NodeProp[int32]("weight")}, nil)
	require.ErrorIs(t, err, propgraph.ErrTypeError)

	_, err = propgraph.NewView(g, []propgraph.Descriptor{propgraph.NodeProp[int64]("nope")}, nil)
	require.ErrorIs(t, err, propgraph.ErrPropertyNotFound)
}

func TestCopySharesTopologyNotProperties(t *testing.T) {
	g := smallGraph()
	tbl := propgraph.NewTable()
	require.NoError(t, tbl.Add("weight", column.WrapPOD([]int64{1, 2, 3}, nil)))
	require.NoError(t, g.AddNodeProperties(tbl))

	cp, err := g.Copy(nil, []string{"weight"}, nil)
	require.NoError(t, err)
	require.Same(t, g.Topology(), cp.Topology())

	col, err := cp.GetNodeProperty("weight")
	require.NoError(t, err)
	require.Equal(t, 3, col.Len())

	// mutating original's table further doesn't affect the copy's schema
	tbl2 := propgraph.NewTable()
	require.NoError(t, tbl2.Add("extra", column.WrapPOD([]int64{1, 2, 3}, nil)))
	require.NoError(t, g.AddNodeProperties(tbl2))
	_, err = cp.GetNodeProperty("extra")
	require.ErrorIs(t, err, propgraph.ErrPropertyNotFound)
}

func TestNewNodeOutputAttaches(t *testing.T) {
	g := smallGraph()
	values, err := propgraph.NewNodeOutput[uint32](g, "dist", 0)
	require.NoError(t, err)
	require.Len(t, values, 3)
	values[0] = 99
	col, err := g.GetNodeProperty("dist")
	require.NoError(t, err)
	require.Equal(t, 3, col.Len())
}

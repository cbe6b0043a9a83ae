package topology_test

import (
	"testing"

	"github.com/arborcore/galoway/topology"
	"github.com/stretchr/testify/require"
)

func buildPath3() *topology.CSR {
	b := topology.NewBuilder().Symmetric()
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	return b.Build()
}

func TestBuilderBasic(t *testing.T) {
	c := buildPath3()
	require.NoError(t, c.Validate())
	require.Equal(t, 3, c.NumNodes())
	require.Equal(t, 4, c.NumEdges()) // symmetric doubles the 2 logical edges

	edges0, err := c.Edges(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{1}, edges0)

	edges1, err := c.Edges(1)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{0, 2}, edges1)
}

func TestEdgesOutOfRange(t *testing.T) {
	c := buildPath3()
	_, err := c.Edges(10)
	require.ErrorIs(t, err, topology.ErrNodeOutOfRange)
}

func TestSortProducesSortedEdges(t *testing.T) {
	b := topology.NewBuilder()
	b.AddEdge(0, 3)
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	c := b.Build()
	require.False(t, c.Sorted())

	sorted := topology.Sort(c)
	require.True(t, sorted.Sorted())
	edges, err := sorted.Edges(0)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 3}, edges)

	// original untouched
	orig, _ := c.Edges(0)
	require.Equal(t, []uint32{3, 1, 2}, orig)
}

func TestTransposeRecoversSources(t *testing.T) {
	b := topology.NewBuilder()
	b.AddEdge(0, 2)
	b.AddEdge(1, 2)
	c := b.Build()

	tr := topology.Transpose(c)
	in, err := tr.InEdges(2)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{0, 1}, in)
}

func TestTopologicalOrderDAG(t *testing.T) {
	b := topology.NewBuilder()
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(0, 2)
	c := b.Build()

	order, err := topology.TopologicalOrder(c)
	require.NoError(t, err)
	pos := make(map[uint32]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	require.Less(t, pos[0], pos[1])
	require.Less(t, pos[1], pos[2])
}

func TestTopologicalOrderCycle(t *testing.T) {
	b := topology.NewBuilder()
	b.AddEdge(0, 1)
	b.AddEdge(1, 0)
	c := b.Build()

	_, err := topology.TopologicalOrder(c)
	require.ErrorIs(t, err, topology.ErrNotDAG)
}

func TestRelabelDegreeDescending(t *testing.T) {
	// star: node 0 has degree 3, others degree 1
	b := topology.NewBuilder().Symmetric()
	b.AddEdge(0, 1)
	b.AddEdge(0, 2)
	b.AddEdge(0, 3)
	c := b.Build()

	newID := topology.DegreeOrderDescending(c)
	require.Equal(t, uint32(0), newID[0]) // highest degree gets rank 0

	relabeled := topology.Relabel(c, newID)
	require.Equal(t, 3, relabeled.Degree(0))
}

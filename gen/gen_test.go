package gen_test

import (
	"testing"

	"github.com/arborcore/galoway/gen"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/topology"
	"github.com/stretchr/testify/require"
)

func TestGridBasic(t *testing.T) {
	b, err := topology.Compose(gen.Grid(3, 2, false))
	require.NoError(t, err)
	csr := b.Build()
	require.NoError(t, csr.Validate())
	require.Equal(t, 6, csr.NumNodes())

	edges0, err := csr.Edges(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{1, 3}, edges0) // right + bottom, mirrored back in

	_, err = topology.Compose(gen.Grid(0, 2, false))
	require.Error(t, err)
}

func TestGridWithDiagonals(t *testing.T) {
	b, err := topology.Compose(gen.Grid(3, 2, true))
	require.NoError(t, err)
	csr := b.Build()
	edges1, err := csr.Edges(1)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{0, 2, 4, 3, 5}, edges1) // left, right, bottom, bottom-left, bottom-right
}

func TestFerrisWheel(t *testing.T) {
	b, err := topology.Compose(gen.FerrisWheel(5))
	require.NoError(t, err)
	csr := b.Build()
	require.Equal(t, 5, csr.NumNodes())

	hub, err := csr.Edges(4)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{0, 1, 2, 3}, hub)

	_, err = topology.Compose(gen.FerrisWheel(3))
	require.Error(t, err)
}

func TestSawtooth(t *testing.T) {
	b, err := topology.Compose(gen.Sawtooth(5))
	require.NoError(t, err)
	csr := b.Build()
	require.Equal(t, 5, csr.NumNodes())

	edges0, err := csr.Edges(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{1, 2}, edges0) // path edge + tooth edge

	_, err = topology.Compose(gen.Sawtooth(2))
	require.Error(t, err)
}

func TestClique(t *testing.T) {
	b, err := topology.Compose(gen.Clique(4))
	require.NoError(t, err)
	csr := b.Build()
	require.Equal(t, 4, csr.NumNodes())
	require.Equal(t, 12, csr.NumEdges()) // 4*3 directed arcs

	edges2, err := csr.Edges(2)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{0, 1, 3}, edges2)
}

func TestTriangle(t *testing.T) {
	b, err := topology.Compose(gen.Triangle(3))
	require.NoError(t, err)
	csr := b.Build()
	require.Equal(t, 6, csr.NumNodes()) // 1+2+3

	edges0, err := csr.Edges(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{1, 2}, edges0) // down-left, down-right into row 1
}

func TestAddNodeAndEdgeProperties(t *testing.T) {
	b, err := topology.Compose(gen.Clique(3))
	require.NoError(t, err)
	csr := b.Build()
	g := propgraph.New(csr)

	require.NoError(t, gen.AddNodeProperties(g, "rank", func(id uint32) int32 { return int32(id) * 2 }))
	col, err := g.GetNodeProperty("rank")
	require.NoError(t, err)
	require.Equal(t, g.NumNodes(), col.Len())

	require.NoError(t, gen.AddEdgeProperties(g, "weight", func(id uint32) float64 { return float64(id) }))
	ecol, err := g.GetEdgeProperty("weight")
	require.NoError(t, err)
	require.Equal(t, g.NumEdges(), ecol.Len())

	require.Error(t, gen.AddNodeProperties(g, "rank", func(id uint32) int32 { return 0 })) // name collision
}

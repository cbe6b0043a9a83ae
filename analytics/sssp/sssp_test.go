package sssp_test

import (
	"math"
	"testing"

	"github.com/arborcore/galoway/analytics/sssp"
	"github.com/arborcore/galoway/column"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/result"
	"github.com/arborcore/galoway/topology"
	"github.com/stretchr/testify/require"
)

// weightedChain builds a 5-node directed path 0->1->2->3->4 with edge
// weights 1, 2, 3, 4 (edge i has weight i+1).
func weightedChain(t *testing.T) *propgraph.Graph {
	t.Helper()
	b := topology.NewBuilder()
	for i := uint32(0); i < 4; i++ {
		b.AddEdge(i, i+1)
	}
	csr := b.Build()
	g := propgraph.New(csr)

	weights := []float64{1, 2, 3, 4}
	tbl := propgraph.NewTable()
	require.NoError(t, tbl.Add("weight", column.WrapPOD(weights, nil)))
	require.NoError(t, g.AddEdgeProperties(tbl))
	return g
}

const unreached = math.MaxFloat64

func TestRunDijkstra(t *testing.T) {
	g := weightedChain(t)
	stats := sssp.Run[float64](g, 0, "weight", "dist", unreached, sssp.NewPlan(sssp.WithAlgorithm(sssp.Dijkstra)))
	require.True(t, stats.IsOk())
	require.Equal(t, 5, stats.Value().Reached)
	require.NoError(t, sssp.AssertValid[float64](g, 0, "dist", "weight", unreached))
}

func TestRunSerialDelta(t *testing.T) {
	g := weightedChain(t)
	stats := sssp.Run[float64](g, 0, "weight", "dist", unreached, sssp.NewPlan(sssp.WithAlgorithm(sssp.SerialDelta), sssp.WithDelta(1)))
	require.True(t, stats.IsOk())
	require.Equal(t, 5, stats.Value().Reached)
	require.NoError(t, sssp.AssertValid[float64](g, 0, "dist", "weight", unreached))
}

func TestRunDeltaStepParallel(t *testing.T) {
	g := weightedChain(t)
	stats := sssp.Run[float64](g, 0, "weight", "dist", unreached, sssp.NewPlan(sssp.WithAlgorithm(sssp.DeltaStep), sssp.WithDelta(1)))
	require.True(t, stats.IsOk())
	require.Equal(t, 5, stats.Value().Reached)
	require.NoError(t, sssp.AssertValid[float64](g, 0, "dist", "weight", unreached))
}

func TestRunDeltaStepBarrier(t *testing.T) {
	g := weightedChain(t)
	stats := sssp.Run[float64](g, 0, "weight", "dist", unreached, sssp.NewPlan(sssp.WithAlgorithm(sssp.DeltaStepBarrier), sssp.WithDelta(1)))
	require.True(t, stats.IsOk())
	require.NoError(t, sssp.AssertValid[float64](g, 0, "dist", "weight", unreached))
}

func TestRunTopological(t *testing.T) {
	g := weightedChain(t)
	stats := sssp.Run[float64](g, 0, "weight", "dist", unreached, sssp.NewPlan(sssp.WithAlgorithm(sssp.Topological)))
	require.True(t, stats.IsOk())
	require.Equal(t, 5, stats.Value().Reached)
	require.NoError(t, sssp.AssertValid[float64](g, 0, "dist", "weight", unreached))
}

func TestRunAutomatic(t *testing.T) {
	g := weightedChain(t)
	stats := sssp.Run[float64](g, 0, "weight", "dist", unreached, sssp.NewPlan(sssp.WithAlgorithm(sssp.Automatic)))
	require.True(t, stats.IsOk())
	require.NoError(t, sssp.AssertValid[float64](g, 0, "dist", "weight", unreached))
}

func TestRunNegativeWeightRejected(t *testing.T) {
	b := topology.NewBuilder()
	b.AddEdge(0, 1)
	csr := b.Build()
	g := propgraph.New(csr)
	tbl := propgraph.NewTable()
	require.NoError(t, tbl.Add("weight", column.WrapPOD([]float64{-1}, nil)))
	require.NoError(t, g.AddEdgeProperties(tbl))

	stats := sssp.Run[float64](g, 0, "weight", "dist", unreached, sssp.DefaultPlan())
	require.False(t, stats.IsOk())
	require.ErrorIs(t, stats.Err(), result.InvalidArgument.Sentinel())
}

func TestRunStartOutOfRange(t *testing.T) {
	g := weightedChain(t)
	stats := sssp.Run[float64](g, 99, "weight", "dist", unreached, sssp.DefaultPlan())
	require.False(t, stats.IsOk())
	require.ErrorIs(t, stats.Err(), result.InvalidArgument.Sentinel())
}

func TestRunNilGraph(t *testing.T) {
	stats := sssp.Run[float64](nil, 0, "weight", "dist", unreached, sssp.DefaultPlan())
	require.False(t, stats.IsOk())
}

func TestRunDisconnectedGraphLeavesUnreached(t *testing.T) {
	b := topology.NewBuilder()
	b.AddEdge(0, 1)
	b.AddNodes(4) // nodes 2,3 isolated
	csr := b.Build()
	g := propgraph.New(csr)
	tbl := propgraph.NewTable()
	require.NoError(t, tbl.Add("weight", column.WrapPOD([]float64{1}, nil)))
	require.NoError(t, g.AddEdgeProperties(tbl))

	stats := sssp.Run[float64](g, 0, "weight", "dist", unreached, sssp.DefaultPlan())
	require.True(t, stats.IsOk())
	require.Equal(t, 2, stats.Value().Reached)
}

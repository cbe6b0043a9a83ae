package bfs_test

import (
	"testing"

	"github.com/arborcore/galoway/analytics/bfs"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/result"
	"github.com/arborcore/galoway/topology"
	"github.com/stretchr/testify/require"
)

// chainGraph builds a 6-node symmetric path 0-1-2-3-4-5.
func chainGraph(t *testing.T) *propgraph.Graph {
	t.Helper()
	b := topology.NewBuilder().Symmetric()
	for i := uint32(0); i < 5; i++ {
		b.AddEdge(i, i+1)
	}
	return propgraph.New(b.Build())
}

func TestRunSynchronous(t *testing.T) {
	g := chainGraph(t)
	stats := bfs.Run(g, 0, "dist", bfs.NewPlan(bfs.WithAlgorithm(bfs.Synchronous)))
	require.True(t, stats.IsOk())
	require.Equal(t, 6, stats.Value().Reached)
	require.Equal(t, 6, stats.Value().Rounds)
	require.NoError(t, bfs.AssertValid(g, 0, "dist"))
}

func TestRunAsynchronous(t *testing.T) {
	g := chainGraph(t)
	stats := bfs.Run(g, 0, "dist", bfs.NewPlan(bfs.WithAlgorithm(bfs.Asynchronous)))
	require.True(t, stats.IsOk())
	require.Equal(t, 6, stats.Value().Reached)
	require.NoError(t, bfs.AssertValid(g, 0, "dist"))
}

func TestRunSynchronousTile(t *testing.T) {
	g := chainGraph(t)
	plan := bfs.NewPlan(bfs.WithAlgorithm(bfs.SynchronousTile), bfs.WithEdgeTileSize(1))
	stats := bfs.Run(g, 0, "dist", plan)
	require.True(t, stats.IsOk())
	require.NoError(t, bfs.AssertValid(g, 0, "dist"))
}

func TestRunDirectOpt(t *testing.T) {
	g := chainGraph(t)
	plan := bfs.NewPlan(bfs.WithAlgorithm(bfs.SynchronousDirectOpt), bfs.WithAlphaBeta(1, 100))
	stats := bfs.Run(g, 0, "dist", plan)
	require.True(t, stats.IsOk())
	require.Equal(t, 6, stats.Value().Reached)
	require.NoError(t, bfs.AssertValid(g, 0, "dist"))
}

func TestRunDisconnectedGraphLeavesUnreached(t *testing.T) {
	b := topology.NewBuilder().Symmetric()
	b.AddEdge(0, 1)
	b.AddNodes(4) // nodes 2,3 isolated
	g := propgraph.New(b.Build())

	stats := bfs.Run(g, 0, "dist", bfs.DefaultPlan())
	require.True(t, stats.IsOk())
	require.Equal(t, 2, stats.Value().Reached)
	require.NoError(t, bfs.AssertValid(g, 0, "dist"))
}

func TestRunStartOutOfRange(t *testing.T) {
	g := chainGraph(t)
	stats := bfs.Run(g, 99, "dist", bfs.DefaultPlan())
	require.False(t, stats.IsOk())
	require.ErrorIs(t, stats.Err(), result.InvalidArgument.Sentinel())
	require.Contains(t, stats.Err().Error(), "out of range")
}

func TestRunNilGraph(t *testing.T) {
	stats := bfs.Run(nil, 0, "dist", bfs.DefaultPlan())
	require.False(t, stats.IsOk())
}

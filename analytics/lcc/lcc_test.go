package lcc_test

import (
	"testing"

	"github.com/arborcore/galoway/analytics/lcc"
	"github.com/arborcore/galoway/propgraph"
	"github.com/arborcore/galoway/topology"
	"github.com/stretchr/testify/require"
)

// clique builds a symmetric K_n: every node has coefficient 1.
func clique(t *testing.T, n int) *propgraph.Graph {
	t.Helper()
	b := topology.NewBuilder().Symmetric()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.AddEdge(uint32(i), uint32(j))
		}
	}
	return propgraph.New(b.Build())
}

// hubAndSpoke builds a star of n leaves around a hub, plus one extra edge
// between two leaves (so the hub and that pair form a single triangle).
// The hub's degree (n) dwarfs the mean degree, tripping the power-law
// auto-detection heuristic.
func hubAndSpoke(t *testing.T, n int) *propgraph.Graph {
	t.Helper()
	b := topology.NewBuilder().Symmetric()
	for i := uint32(1); i <= uint32(n); i++ {
		b.AddEdge(0, i)
	}
	b.AddEdge(1, 2)
	return propgraph.New(b.Build())
}

func TestRunAtomicOnClique(t *testing.T) {
	g := clique(t, 5)
	stats := lcc.Run(g, "coeff", lcc.NewPlan(lcc.WithAlgorithm(lcc.Atomic)))
	require.True(t, stats.IsOk())
	require.EqualValues(t, 10, stats.Value().Triangles) // C(5,3)
	require.NoError(t, lcc.AssertValid(g, "coeff"))
}

func TestRunPerThreadOnClique(t *testing.T) {
	g := clique(t, 5)
	stats := lcc.Run(g, "coeff", lcc.NewPlan(lcc.WithAlgorithm(lcc.PerThread)))
	require.True(t, stats.IsOk())
	require.EqualValues(t, 10, stats.Value().Triangles)
	require.NoError(t, lcc.AssertValid(g, "coeff"))
}

func TestRunAutoDetectsRelabelingOnSkewedGraph(t *testing.T) {
	g := hubAndSpoke(t, 30)
	stats := lcc.Run(g, "coeff", lcc.DefaultPlan())
	require.True(t, stats.IsOk())
	require.True(t, stats.Value().Relabeled)
	require.EqualValues(t, 1, stats.Value().Triangles)
	require.NoError(t, lcc.AssertValid(g, "coeff"))
}

func TestRunForcedRelabelMatchesUnforced(t *testing.T) {
	g := clique(t, 6)
	forced := lcc.Run(g, "forced", lcc.NewPlan(lcc.WithRelabel(true)))
	plain := lcc.Run(g, "plain", lcc.DefaultPlan())
	require.True(t, forced.IsOk())
	require.True(t, plain.IsOk())
	require.Equal(t, plain.Value().Triangles, forced.Value().Triangles)
}

func TestRunNilGraph(t *testing.T) {
	stats := lcc.Run(nil, "coeff", lcc.DefaultPlan())
	require.False(t, stats.IsOk())
}

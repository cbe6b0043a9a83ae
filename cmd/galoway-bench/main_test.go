package main

import (
	"bytes"
	"testing"

	"github.com/arborcore/galoway/propgraph"
	"github.com/stretchr/testify/require"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := parseArgs([]string{"grid"})
	require.NoError(t, err)
	require.Equal(t, "bfs", cfg.algo)
	require.Equal(t, "grid", cfg.genName)
	require.Equal(t, 64, cfg.n)
}

func TestParseArgsMissingGenerator(t *testing.T) {
	_, err := parseArgs([]string{"-algo=lcc"})
	require.Error(t, err)
}

func TestComposeTopologyUnknownGenerator(t *testing.T) {
	cfg, err := parseArgs([]string{"nonsense"})
	require.NoError(t, err)
	_, err = composeTopology(cfg)
	require.Error(t, err)
}

func TestRunAlgorithmEachVariant(t *testing.T) {
	for _, algo := range []string{"bfs", "sssp", "mis", "lcc", "mcsgd"} {
		cfg, err := parseArgs([]string{"-algo=" + algo, "-n=8", "clique"})
		require.NoError(t, err)

		b, err := composeTopology(cfg)
		require.NoError(t, err)
		g := propgraph.New(b.Build())

		stats, err := runAlgorithm(g, cfg)
		require.NoError(t, err, "algo %s", algo)

		var buf bytes.Buffer
		stats.Print(&buf)
		require.NotEmpty(t, buf.String(), "algo %s", algo)
	}
}

func TestWriteOutputToDir(t *testing.T) {
	cfg, err := parseArgs([]string{"-algo=lcc", "-n=6", "clique"})
	require.NoError(t, err)
	b, err := composeTopology(cfg)
	require.NoError(t, err)
	g := propgraph.New(b.Build())
	stats, err := runAlgorithm(g, cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, writeOutput(dir, cfg.algo, stats))
}

// Package sssp computes single-source shortest-path distances over a
// propgraph.Graph with non-negative edge weights, writing the result into
// a named output column of the same numeric type as the input edge
// weights.
//
// Dijkstra/DijkstraTile are a generalization of dijkstra
// package's lazy-decrease-key binary heap (dijkstra/dijkstra.go's
// nodeItem/nodePQ) to work over a propgraph.Graph instead of a core.Graph;
// DeltaStep/DeltaStepBarrier/DeltaStepFusion bucket nodes by
// floor(dist/2^Delta) into an exec.OBIM and relax them with bounded
// out-of-order concurrency (delta-stepping); Topological/TopologicalTile
// require a precomputed topological order and
// relax each node's out-edges exactly once, in order.
package sssp

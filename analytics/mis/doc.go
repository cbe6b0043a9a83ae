// Package mis computes a maximal independent set over an undirected
// propgraph.Graph: an indicator node column marking every node either
// matched (included in the set) or other-matched (excluded because a
// matched neighbor exists), such that no two matched nodes share an edge.
//
// Serial is a direct generalization of bfs.walker
// sequential-scan idiom (katalvlaran-lvlath/bfs/bfs.go) to a
// maximal-independent-set scan instead of a queue-driven traversal.
// Pull/Priority/EdgeTiledPriority have no teacher-repo precedent (the
// teacher has no parallel graph algorithms) and run as repeated
// exec.DoAll phases converging via a reduce.LogicalOr "any undecided"
// reducer, newly designed against this module's own exec/reduce
// substrate.
package mis

// Package galoway is a parallel property-graph analytics engine: an
// immutable CSR topology (package topology) carries typed columnar node
// and edge properties (package propgraph/column), walked by a
// work-stealing executor (package exec) and combined through associative
// reducers (package reduce). Results surface through a uniform
// Result[T]/ErrorInfo model (package result).
//
// Analytics ship as independent packages under analytics/, each exposing
// a Run(*propgraph.Graph, ..., Plan) result.Result[Stats] entry point:
//
//	analytics/bfs   — direction-optimizing breadth-first search
//	analytics/sssp  — single-source shortest paths (delta-stepping, Dijkstra & topological)
//	analytics/mis   — maximal independent set
//	analytics/lcc   — local clustering coefficients
//	analytics/mcsgd — matrix-completion-by-SGD over a bipartite rating graph
//
// Package gen builds synthetic topologies (grids, wheels, cliques, ...) for
// benchmarking and testing; cmd/galoway-bench is a thin CLI wiring a
// generator to one analytics entry point.
package galoway

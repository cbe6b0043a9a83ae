// Package topology implements the CSR (compressed sparse row) adjacency
// representation described in: an ordered node range
// [0, N), an edge array of length E storing destination node ids, and a
// prefix-sum offset array of length N+1.
//
// Topology() is built once (via Builder), then treated as immutable; derived
// views (Sort's sorted clone, Transpose's Transposed, a topological order) are computed
// without mutating the source, the same way 
// core.UnweightedView/core.InducedSubgraph derive a fresh *core.Graph from
// a read-locked source instead of mutating it in place.
package topology

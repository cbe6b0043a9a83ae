// Package lcc computes the local clustering coefficient of every node in
// an undirected propgraph.Graph: 2*T(v) / (d*(d-1)), where T(v) is the
// number of triangles containing v and d is v's degree (0 for d <= 1).
//
// Both variants march two sorted-destination adjacency lists in lockstep
// (the classic merge-based triangle count): for every edge (n, v) with
// v < n, intersect n's and v's neighbor lists restricted to w <= v, and
// credit a triangle to each of n, v, w. Atomic keeps one atomic.Uint64
// counter per node; PerThread keeps a private counter slab per worker
// (exec.PerThread[[]uint64]) and reduces once after the counting pass —
// grounded on katalvlaran-lvlath/matrix's flat-row-major buffer idiom
// (matrix/impl_dense.go's Dense.data), generalized from a dense 2-D
// buffer to a flat per-worker counter slab.
package lcc

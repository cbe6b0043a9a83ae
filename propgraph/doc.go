// Package propgraph implements the property table and property-graph
// facade of: a PropertyGraph couples a topology.CSR with two
// ordered property tables (node, edge), and a typed View resolves named
// descriptors against those tables into zero-copy column accessors.
//
// Concurrency follows core.Graph: separate RWMutexes guard
// the node table and the edge table/topology (core/types.go's
// muVert/muEdgeAdj split), so concurrent readers of one table never block
// writers of the other.
package propgraph

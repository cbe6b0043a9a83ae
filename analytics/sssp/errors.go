package sssp

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("sssp: graph is nil")

	// ErrStartOutOfRange is returned when start is not a valid node id.
	ErrStartOutOfRange = errors.New("sssp: start node out of range")

	// ErrNegativeWeight is returned when an edge weight is negative — this
	// algorithm family requires non-negative weights.
	ErrNegativeWeight = errors.New("sssp: negative edge weight")

	// ErrNotDAG is returned by Topological/TopologicalTile when the graph
	// has no valid topological order.
	ErrNotDAG = errors.New("sssp: graph is not a DAG")

	// ErrUnknownAlgorithm is returned for an Algorithm value Run does not
	// handle.
	ErrUnknownAlgorithm = errors.New("sssp: unknown algorithm")
)

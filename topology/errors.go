package topology

import "errors"

// Sentinel errors for topology construction and lookup, in
// errors.Is-branchable sentinel style.
var (
	// ErrNodeOutOfRange indicates a node id ≥ the topology's node count.
	ErrNodeOutOfRange = errors.New("topology: node id out of range")

	// ErrNotSorted indicates an operation requiring a destination-sorted
	// CSR was called on a topology that has not been sorted.
	ErrNotSorted = errors.New("topology: edges not sorted by destination")

	// ErrNotDAG indicates a topological order was requested for a graph
	// containing a cycle.
	ErrNotDAG = errors.New("topology: graph contains a cycle")
)

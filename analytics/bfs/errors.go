package bfs

import "errors"

// Sentinel errors, in errors.Is-branchable style.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when start is not a valid node id.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrUnknownAlgorithm is returned for an Algorithm value not handled
	// by Run.
	ErrUnknownAlgorithm = errors.New("bfs: unknown algorithm")
)

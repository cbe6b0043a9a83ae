package mis

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed. The graph
	// is otherwise assumed symmetric (undirected); callers are
	// responsible for that invariant, matching a maximal independent
	// set's definition only being meaningful over an undirected graph.
	ErrGraphNil = errors.New("mis: graph is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm value Run does not
	// handle.
	ErrUnknownAlgorithm = errors.New("mis: unknown algorithm")
)

package lcc

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("lcc: graph is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm value Run does not
	// handle.
	ErrUnknownAlgorithm = errors.New("lcc: unknown algorithm")
)

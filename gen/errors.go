package gen

import "errors"

// Sentinel errors for generator parameter validation, in the same
// errors.Is-branchable sentinel style as builder's ErrTooFewVertices.
var (
	// ErrTooFewNodes indicates a generator's size parameter is below the
	// minimum the named topology requires to be well-formed.
	ErrTooFewNodes = errors.New("gen: too few nodes for this topology")
)

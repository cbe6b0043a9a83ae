package propgraph

import "errors"

// Sentinel errors for property-table and property-graph operations,
// following package-sentinel convention.
var (
	// ErrAlreadyExists indicates a column name collision on Add/AddNodeProperties.
	ErrAlreadyExists = errors.New("propgraph: property already exists")

	// ErrInvalidArgument indicates a column's length does not match the
	// table's element count.
	ErrInvalidArgument = errors.New("propgraph: invalid argument")

	// ErrPropertyNotFound indicates a requested property name is absent.
	ErrPropertyNotFound = errors.New("propgraph: property not found")

	// ErrTypeError indicates a resolved column's concrete type does not
	// match the descriptor requesting it.
	ErrTypeError = errors.New("propgraph: property type mismatch")
)

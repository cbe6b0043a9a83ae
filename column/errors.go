package column

import "errors"

// Sentinel errors for column view construction and access, following the
// lvlath convention of package-level sentinels checked via errors.Is rather
// than string comparison (see builder/errors.go in the prior implementation repo).
var (
	// ErrTypeMismatch indicates the backing array's element width or kind
	// does not match the requested view type.
	ErrTypeMismatch = errors.New("column: element type mismatch")

	// ErrIndexOutOfRange indicates an access beyond the view's length.
	ErrIndexOutOfRange = errors.New("column: index out of range")

	// ErrUnsupportedType indicates a view was requested for a non-numeric,
	// non-string, non-fixed-binary element kind.
	ErrUnsupportedType = errors.New("column: unsupported element type")
)

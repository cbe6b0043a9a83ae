package reduce

import "golang.org/x/exp/constraints"

// Sum is a Reducer with combine = + and identity = 0.
type Sum[T constraints.Integer | constraints.Float] struct{ *generic[T] }

// NewSum allocates a Sum reducer for width workers.
func NewSum[T constraints.Integer | constraints.Float](width int) *Sum[T] {
	return &Sum[T]{newGeneric(width, T(0), func(a, b T) T { return a + b })}
}

// Max is a Reducer with combine = max and the identity the caller passes
// to NewMax (normally the smallest value the inputs can take).
type Max[T constraints.Integer | constraints.Float] struct{ *generic[T] }

// NewMax allocates a Max reducer for width workers, seeded with identity.
func NewMax[T constraints.Integer | constraints.Float](width int, identity T) *Max[T] {
	return &Max[T]{newGeneric(width, identity, func(a, b T) T {
			if b > a {
				return b
			}
			return a
	})}
}

// Min is a Reducer with combine = min and the identity the caller passes
// to NewMin (normally the largest value the inputs can take).
type Min[T constraints.Integer | constraints.Float] struct{ *generic[T] }

// NewMin allocates a Min reducer for width workers, seeded with identity.
func NewMin[T constraints.Integer | constraints.Float](width int, identity T) *Min[T] {
	return &Min[T]{newGeneric(width, identity, func(a, b T) T {
			if b < a {
				return b
			}
			return a
	})}
}

// LogicalOr is a Reducer with combine = || and identity = false.
type LogicalOr struct{ *generic[bool] }

// NewLogicalOr allocates a LogicalOr reducer for width workers.
func NewLogicalOr(width int) *LogicalOr {
	return &LogicalOr{newGeneric(width, false, func(a, b bool) bool { return a || b })}
}

// LogicalAnd is a Reducer with combine = && and identity = true.
type LogicalAnd struct{ *generic[bool] }

// NewLogicalAnd allocates a LogicalAnd reducer for width workers.
func NewLogicalAnd(width int) *LogicalAnd {
	return &LogicalAnd{newGeneric(width, true, func(a, b bool) bool { return a && b })}
}

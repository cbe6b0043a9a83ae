package column

import (
	"fmt"
	"unsafe"
)

// Numeric is the set of fixed-width element types a PODView can wrap.
// golang.org/x/exp/constraints is not used here directly (these are the
// concrete Arrow-primitive kinds, not an ordered/arithmetic constraint);
// see reduce for where constraints.Integer/Float are actually exercised.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~bool
}

// PODView is a zero-copy typed view over a raw plain-old-data column.
// It borrows the caller's backing array; its lifetime must not exceed the
// array's.
type PODView[T Numeric] struct {
	values []T
	valid *Bitmap
}

// MakePOD constructs a PODView[T] over raw, a byte buffer holding a
// column of N values of type T packed contiguously. It fails with
// ErrTypeMismatch if len(raw) is not a multiple of sizeof(T).
func MakePOD[T Numeric](raw []byte, valid *Bitmap) (*PODView[T], error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if width == 0 || len(raw)%width != 0 {
		return nil, fmt.Errorf("column: raw length %d not a multiple of element width %d: %w", len(raw), width, ErrTypeMismatch)
	}
	n := len(raw) / width
	var values []T
	if n > 0 {
		values = unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), n)
	}
	if valid != nil && valid.Len() != n {
		return nil, fmt.Errorf("column: bitmap length %d != element count %d: %w", valid.Len(), n, ErrTypeMismatch)
	}
	return &PODView[T]{values: values, valid: valid}, nil
}

// WrapPOD constructs a PODView[T] directly from an already-typed slice,
// for callers (topology/propgraph) that allocate output columns natively
// in Go rather than from a raw byte buffer.
func WrapPOD[T Numeric](values []T, valid *Bitmap) *PODView[T] {
	return &PODView[T]{values: values, valid: valid}
}

// Len() reports the number of elements in the view.
func (v *PODView[T]) Len() int { return len(v.values) }

// IsValid reports whether index i is non-null. true for every i when the
// view has no validity bitmap.
func (v *PODView[T]) IsValid(i int) bool {
	if i < 0 || i >= len(v.values) {
		return false
	}
	return v.valid.IsValid(i)
}

// GetValue returns a mutable pointer to element i, allowing in-place
// updates (atomic updates go through analytics-level CAS wrappers; plain
// GetValue is for single-threaded or post-parallel-region access).
func (v *PODView[T]) GetValue(i int) (*T, error) {
	if i < 0 || i >= len(v.values) {
		return nil, fmt.Errorf("column: index %d, length %d: %w", i, len(v.values), ErrIndexOutOfRange)
	}
	return &v.values[i], nil
}

// Value() returns element i by value (no error, for hot loops that already
// know the index is in range).
func (v *PODView[T]) Value(i int) T { return v.values[i] }

// SetValue assigns element i.
func (v *PODView[T]) SetValue(i int, val T) { v.values[i] = val }

// Raw() exposes the backing slice for bulk iteration (e.g. analytics inner
// loops that want to avoid per-element bounds checks via range).
func (v *PODView[T]) Raw() []T { return v.values }

// Slice returns a view over [start, start+length), sharing the backing
// array. Bitmap semantics (including the no-bitmap-means-all-valid case)
// are preserved across the slice.
func (v *PODView[T]) Slice(start, length int) (*PODView[T], error) {
	if start < 0 || length < 0 || start+length > len(v.values) {
		return nil, fmt.Errorf("column: slice [%d:%d) out of range for length %d: %w", start, start+length, len(v.values), ErrIndexOutOfRange)
	}
	return &PODView[T]{
		values: v.values[start: start+length],
		valid: v.valid.Slice(start, length),
	}, nil
}

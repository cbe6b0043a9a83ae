// Package column provides zero-copy typed views over raw columnar arrays.
//
// A column is a flat value buffer plus an optional validity bitmap. The
// bitmap encodes null/non-null per element; its absence means every
// element is valid. Views never own or copy the backing
// buffer — they borrow it, the same way lvlath's core.Graph views borrow
// their source graph (core/view.go) rather than deep-copying it.
//
// Three element shapes are supported: fixed-width POD (PODView[T]),
// variable-length strings (StringView, offsets + bytes), and fixed-size
// binary/array-of-POD (FixedBinaryView[T]).
package column

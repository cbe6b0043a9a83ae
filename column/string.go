package column

import "fmt"

// StringView is a zero-copy view over a variable-length string column:
// an offsets array of length n+1 (Arrow-style) into a shared data buffer,
// plus an optional validity bitmap. GetValue(i) returns the (pointer,
// length) slice of the backing buffer for element i.1.
type StringView struct {
	data []byte
	offsets []int32
	valid *Bitmap
}

// MakeString constructs a StringView. offsets must have length n+1 where
// n is the element count; offsets[i]..offsets[i+1] bounds element i within
// data.
func MakeString(data []byte, offsets []int32, valid *Bitmap) (*StringView, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("column: string offsets must have length n+1, got 0: %w", ErrTypeMismatch)
	}
	n := len(offsets) - 1
	if valid != nil && valid.Len() != n {
		return nil, fmt.Errorf("column: bitmap length %d != element count %d: %w", valid.Len(), n, ErrTypeMismatch)
	}
	for i := 0; i < n; i++ {
		if offsets[i] < 0 || offsets[i+1] < offsets[i] || int(offsets[i+1]) > len(data) {
			return nil, fmt.Errorf("column: malformed string offsets at %d: %w", i, ErrTypeMismatch)
		}
	}
	return &StringView{data: data, offsets: offsets, valid: valid}, nil
}

// Len() reports the number of string elements.
func (v *StringView) Len() int {
	if len(v.offsets) == 0 {
		return 0
	}
	return len(v.offsets) - 1
}

// IsValid reports whether element i is non-null.
func (v *StringView) IsValid(i int) bool {
	if i < 0 || i >= v.Len() {
		return false
	}
	return v.valid.IsValid(i)
}

// GetValue returns the bytes of element i without copying.
func (v *StringView) GetValue(i int) ([]byte, error) {
	if i < 0 || i >= v.Len() {
		return nil, fmt.Errorf("column: index %d, length %d: %w", i, v.Len(), ErrIndexOutOfRange)
	}
	return v.data[v.offsets[i]:v.offsets[i+1]], nil
}

// Slice returns a view over [start, start+length) elements, sharing data
// and the offsets backing array.
func (v *StringView) Slice(start, length int) (*StringView, error) {
	n := v.Len()
	if start < 0 || length < 0 || start+length > n {
		return nil, fmt.Errorf("column: slice [%d:%d) out of range for length %d: %w", start, start+length, n, ErrIndexOutOfRange)
	}
	return &StringView{
		data: v.data,
		offsets: v.offsets[start: start+length+1],
		valid: v.valid.Slice(start, length),
	}, nil
}

package column_test

import (
	"testing"

	"github.com/arborcore/galoway/column"
	"github.com/stretchr/testify/require"
)

func TestPODViewIdempotence(t *testing.T) {
	values := []int64{10, 20, 30, 40}
	v := column.WrapPOD(values, nil)
	require.Equal(t, 4, v.Len())
	for i, want := range values {
		require.True(t, v.IsValid(i))
		require.Equal(t, want, v.Value(i))
	}
}

func TestPODViewNoBitmapMeansAllValid(t *testing.T) {
	v := column.WrapPOD([]int32{1, 2, 3}, nil)
	for i := 0; i < v.Len(); i++ {
		require.True(t, v.IsValid(i))
	}
}

func TestPODViewBitmapRespected(t *testing.T) {
	bm := column.NewBitmap(4)
	bm.SetValid(1, false)
	v := column.WrapPOD([]int32{1, 2, 3, 4}, bm)
	require.True(t, v.IsValid(0))
	require.False(t, v.IsValid(1))
	require.True(t, v.IsValid(2))
}

func TestPODViewSlicePreservesValidity(t *testing.T) {
	bm := column.NewBitmap(5)
	bm.SetValid(3, false)
	v := column.WrapPOD([]int32{1, 2, 3, 4, 5}, bm)

	sl, err := v.Slice(2, 3)
	require.NoError(t, err)
	require.Equal(t, 3, sl.Len())
	require.Equal(t, int32(3), sl.Value(0))
	require.True(t, sl.IsValid(0))
	require.False(t, sl.IsValid(1)) // original index 3
	require.True(t, sl.IsValid(2))
}

func TestPODViewSliceOutOfRange(t *testing.T) {
	v := column.WrapPOD([]int64{1, 2, 3}, nil)
	_, err := v.Slice(2, 5)
	require.ErrorIs(t, err, column.ErrIndexOutOfRange)
}

func TestMakePODTypeMismatch(t *testing.T) {
	raw := []byte{1, 2, 3} // not a multiple of 4 (int32) or 8 (int64)
	_, err := column.MakePOD[int32](raw, nil)
	require.ErrorIs(t, err, column.ErrTypeMismatch)
}

func TestMakePODRoundTrip(t *testing.T) {
	raw := make([]byte, 8*3)
	view, err := column.MakePOD[int64](raw, nil)
	require.NoError(t, err)
	require.Equal(t, 3, view.Len())
	view.SetValue(1, 42)
	require.Equal(t, int64(42), view.Value(1))
}

func TestStringViewGetValue(t *testing.T) {
	data := []byte("helloworld")
	offsets := []int32{0, 5, 10}
	v, err := column.MakeString(data, offsets, nil)
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
	got, err := v.GetValue(0)
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))
	got, err = v.GetValue(1)
	require.NoError(t, err)
	require.Equal(t, "world", string(got))
}

func TestStringViewMalformedOffsets(t *testing.T) {
	_, err := column.MakeString([]byte("abc"), []int32{0, 5}, nil)
	require.ErrorIs(t, err, column.ErrTypeMismatch)
}

func TestFixedBinaryViewRoundTrip(t *testing.T) {
	flat := []float64{1, 2, 3, 4, 5, 6}
	v, err := column.MakeFixedBinary(flat, 3, nil)
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())
	require.Equal(t, 3, v.Width())
	val, err := v.GetValue(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, val)

	// mutation is visible through the view
	val[0] = 99
	val2, _ := v.GetValue(1)
	require.Equal(t, float64(99), val2[0])
}

func TestFixedBinaryViewBadWidth(t *testing.T) {
	_, err := column.MakeFixedBinary([]int32{1, 2, 3}, 2, nil)
	require.ErrorIs(t, err, column.ErrTypeMismatch)
}

package reduce_test

import (
	"errors"
	"testing"

	"github.com/arborcore/galoway/reduce"
	"github.com/arborcore/galoway/result"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	r := reduce.NewSum[int](4)
	r.Update(0, 3)
	r.Update(1, 5)
	r.Update(2, -2)
	require.Equal(t, 6, r.Reduce())
	r.Reset()
	require.Equal(t, 0, r.Reduce())
}

func TestMax(t *testing.T) {
	r := reduce.NewMax[int](3, -1<<31)
	r.Update(0, 10)
	r.Update(1, 42)
	r.Update(2, 7)
	require.Equal(t, 42, r.Reduce())
}

func TestMin(t *testing.T) {
	r := reduce.NewMin[int](3, 1<<31-1)
	r.Update(0, 10)
	r.Update(1, 42)
	r.Update(2, 7)
	require.Equal(t, 7, r.Reduce())
}

func TestLogicalOrAnd(t *testing.T) {
	or := reduce.NewLogicalOr(3)
	or.Update(0, false)
	or.Update(1, true)
	require.True(t, or.Reduce())

	and := reduce.NewLogicalAnd(3)
	and.Update(0, true)
	and.Update(1, true)
	and.Update(2, false)
	require.False(t, and.Reduce())
}

func TestErrorInfoFirstWins(t *testing.T) {
	e := reduce.NewErrorInfo(4)
	require.NoError(t, e.Reduce())

	e.Update(2, errors.New("boom"))
	e.Update(0, nil)
	e.Update(2, errors.New("second boom ignored"))
	err := e.Reduce()
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")

	e.Reset()
	require.NoError(t, e.Reduce())
}

func TestErrorInfoWrapsSentinel(t *testing.T) {
	e := reduce.NewErrorInfo(2)
	info := result.NewErrorInfo(result.NotFound)
	e.Update(0, info)
	err := e.Reduce()
	require.ErrorIs(t, err, result.NotFound.Sentinel())
}

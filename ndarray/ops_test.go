// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/ndarray"
)

func TestAssign_ShapeMismatchLeavesDestinationUntouched(t *testing.T) {
	t.Parallel()

	dst := iotaArray(t, 3, 3)
	before := dst.Copy()
	src := iotaArray(t, 2, 2)

	err := ndarray.Assign(dst, src)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
	assert.True(t, ndarray.Equal[float64](dst, before), "no partial write on failure")
}

func TestAssign_IntoTransposedAndReversed(t *testing.T) {
	t.Parallel()

	src := iotaArray(t, 2, 3)
	dst := ndarray.Must(ndarray.New[float64](3, 2))
	require.NoError(t, ndarray.Assign(dst.Transpose(), src))
	assert.True(t, ndarray.Equal[float64](dst.Transpose(), src))

	rev := ndarray.Must(ndarray.New[float64](2, 3))
	require.NoError(t, ndarray.Assign(rev.Reverse(0).Reverse(1), src))
	assert.Equal(t, []float64{6, 5, 4, 3, 2, 1}, rev.ToSlice())
}

func TestAssign_FromPeriodicView(t *testing.T) {
	t.Parallel()

	src := fromSlice(t, []int{1, 2, 3, 4}, 2, 2)
	dst := ndarray.Must(ndarray.New[int](3, 3))
	require.NoError(t, ndarray.Assign(dst, src.Periodic([]int{1, 1}, ndarray.Shape{3, 3})))
	assert.Equal(t, []int{4, 3, 4, 2, 1, 2, 4, 3, 4}, dst.ToSlice())
}

func TestAssign_OverlappingSource(t *testing.T) {
	t.Parallel()

	a := iotaArray(t, 5)
	require.NoError(t, ndarray.Assign(a, a.Reverse(0)))
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, a.ToSlice())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := iotaArray(t, 2, 2)
	require.NoError(t, ndarray.MulScalar(a, 2))
	require.NoError(t, ndarray.AddScalar(a, 1))
	assert.Equal(t, []float64{3, 5, 7, 9}, a.ToSlice())

	b := iotaArray(t, 2, 2)
	require.NoError(t, ndarray.Subtract(a, b))
	assert.Equal(t, []float64{2, 3, 4, 5}, a.ToSlice())
	require.NoError(t, ndarray.Mul(a, b.Transpose()))
	assert.Equal(t, []float64{2, 9, 8, 20}, a.ToSlice())
	require.NoError(t, ndarray.Div(a, b))
	assert.Equal(t, []float64{2, 4.5, 8.0 / 3, 5}, a.ToSlice())
	require.NoError(t, ndarray.Add(a, a))
	assert.Equal(t, []float64{4, 9, 16.0 / 3, 10}, a.ToSlice())
	require.NoError(t, ndarray.DivScalar(a, 2))
	assert.Equal(t, 2.0, a.ToSlice()[0])

	require.ErrorIs(t, ndarray.Add(a, iotaArray(t, 4)), ndarray.ErrShapeMismatch)
	require.ErrorIs(t, ndarray.Add[float64](nil, a), ndarray.ErrNilArray)
}

func TestIntegerDivisionByZero(t *testing.T) {
	t.Parallel()

	a := fromSlice(t, []int{4, 6}, 2)
	require.ErrorIs(t, ndarray.DivScalar(a, 0), ndarray.ErrDivisionByZero)
	require.ErrorIs(t, ndarray.Div(a, fromSlice(t, []int{2, 0}, 2)), ndarray.ErrDivisionByZero)
	assert.Equal(t, []int{4, 6}, a.ToSlice(), "divisors are checked before writing")

	f := fromSlice(t, []float64{1}, 1)
	require.NoError(t, ndarray.DivScalar(f, 0))
	assert.True(t, math.IsInf(f.ToSlice()[0], 1))
}

func TestReductions(t *testing.T) {
	t.Parallel()

	a := iotaArray(t, 3, 3)
	assert.Equal(t, 45.0, ndarray.Sum[float64](a))
	assert.Equal(t, 15.0, ndarray.Sum[float64](a.Select(1, 1)))

	lo, hi, ok := ndarray.MinMax[float64](a.Sub(0, 1, 3))
	require.True(t, ok)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 9.0, hi)

	_, _, ok = ndarray.MinMax[float64](ndarray.Must(ndarray.New[float64](0)))
	assert.False(t, ok)
}

func TestEqualAndAllClose(t *testing.T) {
	t.Parallel()

	a := iotaArray(t, 2, 2)
	b := a.Copy()
	assert.True(t, ndarray.Equal[float64](a, b))
	assert.False(t, ndarray.Equal[float64](a, b.Transpose()))
	assert.False(t, ndarray.Equal[float64](a, iotaArray(t, 4)))

	require.NoError(t, ndarray.AddScalar(b, 1e-12))
	assert.False(t, ndarray.Equal[float64](a, b))
	assert.True(t, ndarray.AllClose[float64](a, b, 1e-9))

	inf := fromSlice(t, []float64{math.Inf(1)}, 1)
	assert.True(t, ndarray.AllClose[float64](inf, inf.Copy(), 0))
	assert.False(t, ndarray.AllClose[float64](inf, fromSlice(t, []float64{1}, 1), 1e9))
}

func TestConvert(t *testing.T) {
	t.Parallel()

	a := fromSlice(t, []float64{1.9, -2.5, 3}, 3)
	b := ndarray.Convert[int, float64](a.Reverse(0))
	assert.Equal(t, []int{3, -2, 1}, b.ToSlice())
}

// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/ndarray"
)

func TestShape_ContiguousStride(t *testing.T) {
	t.Parallel()

	s := ndarray.Shape{3, 4, 5}
	assert.Equal(t, ndarray.Stride{1, 3, 12}, s.Contiguous())
	assert.Equal(t, 60, s.Size())
	assert.Equal(t, 1, ndarray.Shape{}.Size(), "a scalar has one element")
	assert.Equal(t, "(3×4×5)", s.String())
}

func TestShape_UnravelRavel(t *testing.T) {
	t.Parallel()

	s := ndarray.Shape{3, 4, 5}
	idx := make([]int, 3)
	for pos := 0; pos < s.Size(); pos++ {
		s.Unravel(pos, idx)
		require.True(t, s.Contains(idx))
		require.Equal(t, pos, s.Ravel(idx))
		require.Equal(t, pos, ndarray.Contiguous(s).Address(idx))
	}
}

func TestShape_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, ndarray.Shape{0, 2}.Validate())
	require.ErrorIs(t, ndarray.Shape{2, -1}.Validate(), ndarray.ErrBadShape)
}

func TestLayout_Transforms(t *testing.T) {
	t.Parallel()

	l := ndarray.Contiguous(ndarray.Shape{4, 3})

	tr := l.Transpose()
	assert.Equal(t, ndarray.Shape{3, 4}, tr.Shape)
	assert.Equal(t, ndarray.Stride{4, 1}, tr.Stride)
	assert.Equal(t, 0, tr.Offset)

	rev := l.Reverse(0)
	assert.Equal(t, 3, rev.Offset, "first visited element is the old last on axis 0")
	assert.Equal(t, ndarray.Stride{-1, 4}, rev.Stride)

	sub := l.SubStep(0, 1, 4, 2)
	assert.Equal(t, ndarray.Shape{2, 3}, sub.Shape, "ceil((4-1)/2) = 2")
	assert.Equal(t, ndarray.Stride{2, 4}, sub.Stride)
	assert.Equal(t, 1, sub.Offset)

	sel := l.Select(1, 2)
	assert.Equal(t, ndarray.Shape{4}, sel.Shape)
	assert.Equal(t, ndarray.Stride{1}, sel.Stride)
	assert.Equal(t, 8, sel.Offset)

	assert.True(t, l.IsContiguous())
	assert.False(t, tr.IsContiguous())
}

func TestLayout_RoundTrips(t *testing.T) {
	t.Parallel()

	l := ndarray.Contiguous(ndarray.Shape{2, 3, 4})
	assert.Equal(t, l, l.Transpose().Transpose())
	for k := 0; k < 3; k++ {
		assert.Equal(t, l, l.Reverse(k).Reverse(k), "reverse twice on axis %d", k)
	}
}

func TestLayout_PeriodicAddress(t *testing.T) {
	t.Parallel()

	l := ndarray.Contiguous(ndarray.Shape{3, 2})
	assert.Equal(t, l.Address([]int{2, 1}), l.PeriodicAddress([]int{-1, -1}))
	assert.Equal(t, l.Address([]int{0, 0}), l.PeriodicAddress([]int{3, 2}))
}

func TestLayout_Span(t *testing.T) {
	t.Parallel()

	l := ndarray.Contiguous(ndarray.Shape{4, 3}).Reverse(1)
	lo, hi := l.Span()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 11, hi)
}

func TestLayout_StructuralMisusePanics(t *testing.T) {
	t.Parallel()

	l := ndarray.Contiguous(ndarray.Shape{4, 3})
	assert.Panics(t, func() { l.Reverse(2) })
	assert.Panics(t, func() { l.Select(-1, 0) })
	assert.Panics(t, func() { l.Select(0, 4) })
	assert.Panics(t, func() { l.Sub(1, 0, 4) })
	assert.Panics(t, func() { l.Sub(0, 3, 2) })
	assert.Panics(t, func() { l.SubStep(0, 0, 4, 0) })
}

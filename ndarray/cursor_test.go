// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/ndarray"
)

func collect(l ndarray.Layout) []int {
	var out []int
	for c := ndarray.NewCursor(l); !c.Done(); c.Next() {
		out = append(out, c.Address())
	}
	return out
}

func TestCursor_ContiguousOrder(t *testing.T) {
	t.Parallel()

	l := ndarray.Contiguous(ndarray.Shape{2, 3})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, collect(l))
}

func TestCursor_MatchesAffineAddress(t *testing.T) {
	t.Parallel()

	base := ndarray.Contiguous(ndarray.Shape{4, 3, 5})
	layouts := []ndarray.Layout{
		base,
		base.Transpose(),
		base.Reverse(1),
		base.SubStep(2, 1, 5, 3).Reverse(0),
		base.Select(1, 2).Transpose(),
	}
	for _, l := range layouts {
		c := ndarray.NewCursor(l)
		idx := make([]int, l.Rank())
		for pos := 0; pos < l.Size(); pos++ {
			require.False(t, c.Done())
			l.Shape.Unravel(pos, idx)
			require.Equal(t, idx, c.Index(), "%v at %d", l, pos)
			require.Equal(t, l.Address(idx), c.Address(), "%v at %d", l, pos)
			c.Next()
		}
		require.True(t, c.Done(), "%v must end after Size steps", l)
	}
}

func TestCursor_EmptyAndScalar(t *testing.T) {
	t.Parallel()

	assert.Empty(t, collect(ndarray.Contiguous(ndarray.Shape{3, 0})))
	assert.Equal(t, []int{0}, collect(ndarray.Contiguous(ndarray.Shape{})))
}

func TestCursor_Cycle(t *testing.T) {
	t.Parallel()

	l := ndarray.Contiguous(ndarray.Shape{3, 2})
	c := ndarray.NewCursor(l)
	c.Cycle(0, -1)
	assert.Equal(t, []int{2, 0}, c.Index())
	assert.Equal(t, 2, c.Address())
	c.Cycle(1, 3)
	assert.Equal(t, []int{2, 1}, c.Index())
	assert.Equal(t, 5, c.Address())
	c.Cycle(0, 7)
	assert.Equal(t, []int{0, 1}, c.Index())
	assert.Equal(t, 3, c.Address())

	at := ndarray.NewCursorAt(l, []int{-1, 5})
	assert.Equal(t, []int{2, 1}, at.Index())
	assert.Equal(t, 5, at.Address())
}

// SPDX-License-Identifier: MIT

package canny_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/canny"
	"github.com/katalvlaran/ndcanny/ndarray"
)

func TestThinEdges_StepEdge(t *testing.T) {
	t.Parallel()

	f, err := canny.SobelField(stepEdge(t))
	require.NoError(t, err)
	for _, workers := range []int{1, 4} {
		mask, err := canny.ThinEdges(f, canny.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, ndarray.Shape{6, 3}, mask.Shape())
		for row := 0; row < 3; row++ {
			assert.Equal(t, []bool{true, false, true, true, false, true}, mask.Select(1, row).ToSlice(),
				"workers %d row %d", workers, row)
		}
	}
}

func TestThinEdges_LocalMinimaOnRing(t *testing.T) {
	t.Parallel()

	f, err := canny.NewField(fieldFromScores(t, []float64{5, 3, 1, 3, 5, 4, 2, 4}))
	require.NoError(t, err)
	mask, err := canny.ThinEdges(f)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, false, false, false, true, false}, mask.ToSlice())
}

func TestThinEdges_ConstantInputKeepsNothing(t *testing.T) {
	t.Parallel()

	f, err := canny.SobelField(ndarray.Must(ndarray.Full(7.0, 4, 4)))
	require.NoError(t, err)
	mask, err := canny.ThinEdges(f)
	require.NoError(t, err)
	assert.Equal(t, make([]bool, 16), mask.ToSlice())

	_, err = canny.ThinEdges[float64](nil)
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}

func TestThinEdges_TransposedField(t *testing.T) {
	t.Parallel()

	// Components stored on the slowest axis, read through a transposed view.
	raw := fieldFromScores(t, []float64{5, 3, 1, 3, 5, 4, 2, 4})
	stored := ndarray.Must(ndarray.New[float64](2, 8))
	require.NoError(t, ndarray.Assign(stored.Transpose(), raw))
	f, err := canny.NewField(stored.Transpose())
	require.NoError(t, err)
	mask, err := canny.ThinEdges(f)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, false, false, false, true, false}, mask.ToSlice())
}

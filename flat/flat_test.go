// SPDX-License-Identifier: MIT

package flat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/canny"
	"github.com/katalvlaran/ndcanny/flat"
	"github.com/katalvlaran/ndcanny/ndarray"
)

func block(n, lo, hi int) []float64 {
	data := make([]float64, n*n)
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			data[x+n*y] = 1
		}
	}
	return data
}

func TestPipelineMatchesDetect(t *testing.T) {
	t.Parallel()

	shape := []int{16, 16}
	data := block(16, 4, 12)
	field, err := flat.SmoothSobel(data, shape, 2, 1.0)
	require.NoError(t, err)
	require.Len(t, field, 16*16*3)
	mask, err := flat.ThinEdges(field, shape)
	require.NoError(t, err)
	edges, err := flat.DoubleThreshold(field, mask, shape, 5, 20)
	require.NoError(t, err)

	res, err := canny.Detect(ndarray.Must(ndarray.FromSlice(data, shape...)), canny.WithSigma(1), canny.WithThresholds(5, 20))
	require.NoError(t, err)
	assert.Equal(t, res.Candidates.ToSlice(), mask)
	assert.Equal(t, res.Edges.ToSlice(), edges)
}

func TestFieldBufferAcceptedAtEveryRank(t *testing.T) {
	t.Parallel()

	shapes := map[string][]int{
		"rank2": {6, 5},
		"rank3": {5, 4, 3},
		"rank4": {4, 3, 3, 2},
		"rank5": {3, 3, 2, 2, 2},
	}
	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			size := ndarray.Shape(shape).Size()
			data := make([]float64, size)
			for i := size / 2; i < size; i++ {
				data[i] = 1
			}
			field, err := flat.SmoothSobel(data, shape, 1, 1.0)
			require.NoError(t, err)
			require.Len(t, field, size*(len(shape)+1))

			mask, err := flat.ThinEdges(field, shape)
			require.NoError(t, err)
			require.Len(t, mask, size)
			edges, err := flat.DoubleThreshold(field, mask, shape, 1e9, 1e9)
			require.NoError(t, err)
			assert.Equal(t, mask, edges)
		})
	}
}

func TestGaussian_PreservesMass(t *testing.T) {
	t.Parallel()

	data := block(8, 2, 5)
	out, err := flat.Gaussian(data, []int{8, 8}, 2, 1.0)
	require.NoError(t, err)
	var sum float64
	for _, v := range out {
		sum += v
	}
	assert.InDelta(t, 9.0, sum, 1e-12)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := flat.SmoothSobel(make([]float64, 8), []int{8}, 1, 1)
	require.ErrorIs(t, err, flat.ErrUnsupportedRank)
	_, err = flat.Gaussian(make([]float64, 64), []int{2, 2, 2, 2, 2, 2}, 1, 1)
	require.ErrorIs(t, err, flat.ErrUnsupportedRank)
	_, err = flat.ThinEdges(make([]float64, 10), []int{2, 2})
	require.ErrorIs(t, err, ndarray.ErrSizeMismatch)
	_, err = flat.DoubleThreshold(make([]float64, 12), make([]bool, 3), []int{2, 2}, 1, 2)
	require.ErrorIs(t, err, ndarray.ErrSizeMismatch)

	_, err = flat.SmoothSobel(make([]float64, 8), []int{2, 2, 2}, 1, 1)
	require.NoError(t, err)
}

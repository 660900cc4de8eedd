// SPDX-License-Identifier: MIT

package canny_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/canny"
	"github.com/katalvlaran/ndcanny/ndarray"
)

func TestNormalizeHomogeneous(t *testing.T) {
	t.Parallel()

	// Two locations along axis 0: gradients (3, 4) and (0, 0).
	arr := ndarray.Must(ndarray.New[float64](2, 1, 3))
	require.NoError(t, arr.Set(3, 0, 0, 0))
	require.NoError(t, arr.Set(4, 0, 0, 1))

	require.NoError(t, canny.NormalizeHomogeneous(arr))
	f, err := canny.NewField(arr)
	require.NoError(t, err)

	dir, ok, err := f.Direction(nil, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, dir, 1e-15)
	s, ok, err := f.Strength(0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.2, s, 1e-15)

	s, ok, err = f.Strength(1, 0)
	require.NoError(t, err)
	assert.False(t, ok, "zero gradient has no direction")
	assert.True(t, math.IsInf(s, 1))
}

func TestNewField_Rejects(t *testing.T) {
	t.Parallel()

	_, err := canny.NewField(ndarray.Must(ndarray.New[float64](4, 4)))
	require.ErrorIs(t, err, canny.ErrNotField)
	_, err = canny.NewField(ndarray.Must(ndarray.New[float64](4)))
	require.ErrorIs(t, err, canny.ErrNotField)
	require.ErrorIs(t, canny.NormalizeHomogeneous(ndarray.Must(ndarray.New[float32](3, 3, 2))), canny.ErrNotField)
	// A lone gradient vector needs its spatial axes: (1, 3) is a rank 1
	// image with one component too many.
	require.ErrorIs(t, canny.NormalizeHomogeneous(ndarray.Must(ndarray.New[float64](1, 3))), canny.ErrNotField)

	f, err := canny.NewField(ndarray.Must(ndarray.New[float64](4, 5, 3)))
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rank())
	assert.Equal(t, ndarray.Shape{4, 5}, f.Shape())
	_, _, err = f.Strength(4, 0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
}

func TestSobelField_StepEdge(t *testing.T) {
	t.Parallel()

	f, err := canny.SobelField(stepEdge(t))
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{6, 3, 3}, f.Array().Shape())

	inf := math.Inf(1)
	for row := 0; row < 3; row++ {
		assert.Equal(t, []float64{-1, 0, 1, 1, 0, -1}, f.Component(0).Select(1, row).ToSlice())
		assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, f.Component(1).Select(1, row).ToSlice())
		assert.Equal(t, []float64{2, inf, 2, 2, inf, 2}, f.Score().Select(1, row).ToSlice())
	}
}

func TestSobelField_ConstantIsDirectionless(t *testing.T) {
	t.Parallel()

	f, err := canny.SobelField(ndarray.Must(ndarray.Full(2.5, 5, 4, 3)), canny.WithWorkers(3))
	require.NoError(t, err)
	for k := 0; k < 3; k++ {
		assert.Zero(t, ndarray.Sum[float64](f.Component(k)))
	}
	f.Score().Walk(func(s float64) {
		require.True(t, canny.IsDirectionless(s))
	})
}

func TestSmoothSobel_MatchesSmoothThenSobel(t *testing.T) {
	t.Parallel()

	in := square(t, 12, 3, 9)
	fused, err := canny.SmoothSobel(in, 2, 1.0)
	require.NoError(t, err)
	_, err = canny.SmoothSobel(in, -1, 1.0)
	require.Error(t, err)

	res, err := canny.Detect(in, canny.WithSigma(1.0), canny.WithHalfWidth(2), canny.WithFused(false))
	require.NoError(t, err)

	// Directions and scores agree wherever the gradient is not rounding noise.
	a, b := fused.Score().ToSlice(), res.Field.Score().ToSlice()
	for i := range a {
		if a[i] < 1e6 {
			assert.InDelta(t, a[i], b[i], 1e-9*a[i], "score %d", i)
		}
	}
}

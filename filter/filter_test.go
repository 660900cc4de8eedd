// SPDX-License-Identifier: MIT

package filter_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/convolution"
	"github.com/katalvlaran/ndcanny/filter"
	"github.com/katalvlaran/ndcanny/ndarray"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

// stepEdge returns the 6×3 array whose rows are 0 0 0 1 1 1.
func stepEdge(t *testing.T) *ndarray.Array[float64] {
	t.Helper()
	row := []float64{0, 0, 0, 1, 1, 1}
	data := append(append(append([]float64{}, row...), row...), row...)
	a, err := ndarray.FromSlice(data, 6, 3)
	require.NoError(t, err)
	return a
}

func TestGaussianKernel(t *testing.T) {
	t.Parallel()

	k, err := filter.GaussianKernel[float64](2, 1.0)
	require.NoError(t, err)
	want := []float64{0.05448868454964294, 0.24420134200323332, 0.4026199468942474, 0.24420134200323332, 0.05448868454964294}
	if d := cmp.Diff(want, k.ToSlice(), approx); d != "" {
		t.Fatalf("kernel (-want +got):\n%s", d)
	}
	assert.InDelta(t, 1.0, ndarray.Sum[float64](k), 1e-15)

	one, err := filter.GaussianKernel[float32](0, 3)
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, one.ToSlice())
}

func TestGaussianKernel_Invalid(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		n     int
		sigma float64
	}{{-1, 1}, {2, 0}, {2, -1}, {2, math.NaN()}, {2, math.Inf(1)}} {
		_, err := filter.GaussianKernel[float64](tc.n, tc.sigma)
		require.ErrorIs(t, err, filter.ErrInvalidKernel, "n=%d sigma=%v", tc.n, tc.sigma)
	}
}

func TestGaussian_MassConservation(t *testing.T) {
	t.Parallel()

	data := ndarray.Must(ndarray.Iota[float64](7, 5, 4))
	for _, tc := range []struct {
		n     int
		sigma float64
	}{{0, 1}, {1, 0.5}, {3, 2.4}, {9, 4}} {
		got, err := filter.Gaussian(data, tc.n, tc.sigma)
		require.NoError(t, err)
		assert.InDelta(t, ndarray.Sum[float64](data), ndarray.Sum[float64](got), 1e-9, "n=%d sigma=%v", tc.n, tc.sigma)
	}
}

func TestGaussian_ConstantStaysConstant(t *testing.T) {
	t.Parallel()

	data := ndarray.Must(ndarray.Full(3.0, 8, 8))
	got, err := filter.Gaussian(data, 2, 1.5, filter.WithConvolution(convolution.WithWorkers(2)))
	require.NoError(t, err)
	assert.True(t, ndarray.AllClose[float64](data, got, 1e-12))
}

func TestGradient(t *testing.T) {
	t.Parallel()

	data := ndarray.Must(ndarray.Iota[float64](3, 3))
	g, err := filter.Gradient(data, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.5, 1, -0.5}, g.Select(1, 2).ToSlice())
}

func TestSobel_StepEdge(t *testing.T) {
	t.Parallel()

	data := stepEdge(t)
	g0, err := filter.Sobel(data, 0)
	require.NoError(t, err)
	for row := 0; row < 3; row++ {
		assert.Equal(t, []float64{-0.5, 0, 0.5, 0.5, 0, -0.5}, g0.Select(1, row).ToSlice(), "row %d", row)
	}

	g1, err := filter.Sobel(data, 1)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 18), g1.ToSlice())
}

func TestSobel_ConstantIsZero(t *testing.T) {
	t.Parallel()

	data := ndarray.Must(ndarray.Full(float32(5), 4, 3, 2))
	for axis := 0; axis < 3; axis++ {
		g, err := filter.Sobel(data, axis)
		require.NoError(t, err)
		assert.True(t, ndarray.AllClose[float32](ndarray.Must(ndarray.New[float32](4, 3, 2)), g, 1e-6))
	}
}

func TestSobel_CustomKernelsAndInto(t *testing.T) {
	t.Parallel()

	data := stepEdge(t)
	ident := ndarray.Must(ndarray.FromSlice([]float64{1}, 1))
	g, err := filter.Sobel(data, 0, filter.WithKernels(ident, nil))
	require.NoError(t, err)
	want, err := filter.Gradient(data, 0)
	require.NoError(t, err)
	assert.True(t, ndarray.Equal[float64](want, g))

	out := ndarray.Must(ndarray.New[float64](3, 6))
	require.NoError(t, filter.SobelInto(out.Transpose(), data, 0))
	assert.Equal(t, []float64{-0.5, -0.5, -0.5}, out.Select(1, 0).ToSlice())

	require.ErrorIs(t, filter.SobelInto(out, data, 0), ndarray.ErrShapeMismatch)
	assert.Panics(t, func() { _, _ = filter.Sobel(data, 2) })
}

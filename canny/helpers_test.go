// SPDX-License-Identifier: MIT

package canny_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/ndarray"
)

// stepEdge returns the 6×3 array whose rows are 0 0 0 1 1 1.
func stepEdge(t *testing.T) *ndarray.Array[float64] {
	t.Helper()
	row := []float64{0, 0, 0, 1, 1, 1}
	var data []float64
	for i := 0; i < 3; i++ {
		data = append(data, row...)
	}
	a, err := ndarray.FromSlice(data, 6, 3)
	require.NoError(t, err)
	return a
}

// square returns an n×n image that is 1 on [lo, hi)² and 0 elsewhere.
func square(t *testing.T, n, lo, hi int) *ndarray.Array[float64] {
	t.Helper()
	a := ndarray.Must(ndarray.New[float64](n, n))
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			require.NoError(t, a.Set(1, x, y))
		}
	}
	return a
}

// fieldFromScores builds a 1-D field with unit direction +1 and the given
// scores.
func fieldFromScores(t *testing.T, scores []float64) *ndarray.Array[float64] {
	t.Helper()
	arr := ndarray.Must(ndarray.New[float64](len(scores), 2))
	ndarray.Fill(arr.Select(1, 0), 1)
	require.NoError(t, ndarray.Assign(arr.Select(1, 1), ndarray.Must(ndarray.FromSlice(scores, len(scores)))))
	return arr
}

// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndcanny/ndarray"
)

// iotaArray returns the contiguous array 1..Π shape as float64.
func iotaArray(t *testing.T, shape ...int) *ndarray.Array[float64] {
	t.Helper()
	a, err := ndarray.Iota[float64](shape...)
	require.NoError(t, err)
	return a
}

// fromSlice wraps a literal, failing the test on error.
func fromSlice[T any](t *testing.T, data []T, shape ...int) *ndarray.Array[T] {
	t.Helper()
	a, err := ndarray.FromSlice(data, shape...)
	require.NoError(t, err)
	return a
}

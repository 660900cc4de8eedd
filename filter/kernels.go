// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndcanny/ndarray"
)

// GaussianKernel returns the 2n+1 tap kernel with kernel[n] = 1 and
// kernel[i] = kernel[2n-i] = exp(-(n-i)²/(2σ²)), normalised to sum 1.
//
// Errors:
//   - ErrInvalidKernel when n < 0 or sigma is not a positive finite number.
func GaussianKernel[T ndarray.Float](n int, sigma float64) (*ndarray.Array[T], error) {
	if n < 0 || !(sigma > 0) || math.IsInf(sigma, 1) {
		return nil, filterErrorf("GaussianKernel", fmt.Errorf("n=%d sigma=%v: %w", n, sigma, ErrInvalidKernel))
	}
	w := make([]float64, 2*n+1)
	w[n] = 1
	total := 1.0
	for i := 0; i < n; i++ {
		d := float64(n - i)
		v := math.Exp(-(d * d) / (2 * sigma * sigma))
		w[i], w[2*n-i] = v, v
		total += 2 * v
	}
	data := make([]T, len(w))
	for i, v := range w {
		data[i] = T(v / total)
	}
	return ndarray.FromSlice(data, len(data))
}

// SmoothKernel returns the three tap binomial kernel [0.25, 0.5, 0.25].
func SmoothKernel[T ndarray.Float]() *ndarray.Array[T] {
	return ndarray.Must(ndarray.FromSlice([]T{0.25, 0.5, 0.25}, 3))
}

// DifferenceKernel returns the central difference kernel [0.5, 0, -0.5].
func DifferenceKernel[T ndarray.Float]() *ndarray.Array[T] {
	return ndarray.Must(ndarray.FromSlice([]T{0.5, 0, -0.5}, 3))
}

// HalfWidth returns the conventional half width ceil(2σ) for a Gaussian of
// standard deviation sigma.
func HalfWidth(sigma float64) int {
	return int(math.Ceil(2 * sigma))
}

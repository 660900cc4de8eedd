// SPDX-License-Identifier: MIT

package convolution

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/ndcanny/internal/parallel"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// ConvolveFFT returns the cyclic convolution of data with kernel computed
// in the frequency domain. The result equals Convolve up to rounding,
// including the kernel centring and kernels wider than data.
//
// Errors: as Convolve.
//
// Complexity: O(Size(data) · log Size(data) + Size(kernel)).
func ConvolveFFT[T ndarray.Float](data, kernel *ndarray.Array[T], opts ...Option) (*ndarray.Array[T], error) {
	// Stage 1 (Validate)
	if err := ndarray.ValidateNotNil(data); err != nil {
		return nil, convErrorf("ConvolveFFT", err)
	}
	if err := ndarray.ValidateNotNil(kernel); err != nil {
		return nil, convErrorf("ConvolveFFT", err)
	}
	if kernel.Rank() != data.Rank() {
		return nil, convErrorf("ConvolveFFT", fmt.Errorf("kernel rank %d, data rank %d: %w",
			kernel.Rank(), data.Rank(), ndarray.ErrRankMismatch))
	}
	if kernel.Size() == 0 {
		return nil, convErrorf("ConvolveFFT", ErrEmptyKernel)
	}
	o := gatherOptions(opts...)
	shape := data.Shape().Clone()
	out := ndarray.Must(ndarray.New[T](shape...))
	n := shape.Size()
	if n == 0 {
		return out, nil
	}

	// Stage 2 (Embed): kernel entry j lands on j - c, c = K - 1 - K/2,
	// wrapped modulo shape; out[n] is then Σ_m x[n-m]·h[m].
	x := make([]complex128, n)
	i := 0
	data.Walk(func(v T) {
		x[i] = complex(float64(v), 0)
		i++
	})
	h := make([]complex128, n)
	kshape := kernel.Shape()
	pos := make([]int, len(shape))
	for idx, v := range kernel.All() {
		for a := range idx {
			c := kshape[a] - 1 - kshape[a]/2
			pos[a] = ((idx[a]-c)%shape[a] + shape[a]) % shape[a]
		}
		h[shape.Ravel(pos)] += complex(float64(v), 0)
	}

	// Stage 3 (Transform, multiply, invert)
	transform(x, shape, o.workers, false)
	transform(h, shape, o.workers, false)
	for i := range x {
		x[i] *= h[i]
	}
	transform(x, shape, o.workers, true)

	scale := 1 / float64(n)
	buf := out.Data()
	for i, v := range x {
		buf[i] = T(real(v) * scale)
	}
	o.log.Debugf("convolution: ConvolveFFT %v with kernel %v", shape, kshape)
	return out, nil
}

// transform applies an unnormalised 1-D FFT along every axis of the
// contiguous buffer x. Lines along one axis are independent work items.
func transform(x []complex128, shape ndarray.Shape, workers int, inverse bool) {
	inner := 1
	for _, length := range shape {
		if length > 1 {
			lines := len(x) / length
			step := inner
			parallel.For(lines, workers, func(start, end int) {
				fft := fourier.NewCmplxFFT(length)
				line := make([]complex128, length)
				for l := start; l < end; l++ {
					base := (l/step)*step*length + l%step
					for k := range line {
						line[k] = x[base+k*step]
					}
					if inverse {
						fft.Sequence(line, line)
					} else {
						fft.Coefficients(line, line)
					}
					for k, v := range line {
						x[base+k*step] = v
					}
				}
			})
		}
		inner *= length
	}
}

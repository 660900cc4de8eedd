// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"

	"github.com/katalvlaran/ndcanny/convolution"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// Option configures Sobel and the smoothing filters.
type Option func(*options)

type options struct {
	smooth *ndarray.Array[float64]
	diff   *ndarray.Array[float64]
	conv   []convolution.Option
}

// WithKernels replaces the Sobel smoothing and difference kernels (rank 1).
// A nil argument keeps the default for that role.
func WithKernels(smooth, diff *ndarray.Array[float64]) Option {
	return func(o *options) {
		if smooth != nil {
			o.smooth = smooth
		}
		if diff != nil {
			o.diff = diff
		}
	}
}

// WithConvolution forwards options (workers, logger) to the convolution
// engine.
func WithConvolution(opts ...convolution.Option) Option {
	return func(o *options) { o.conv = append(o.conv, opts...) }
}

func gather(opts ...Option) options {
	o := options{smooth: SmoothKernel[float64](), diff: DifferenceKernel[float64]()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// asType converts a float64 kernel to the element type of the data.
func asType[T ndarray.Float](k *ndarray.Array[float64]) *ndarray.Array[T] {
	return ndarray.Convert[T, float64](k)
}

// Gaussian smooths input with a 2n+1 tap Gaussian along every axis in turn.
// Total mass is preserved up to rounding.
func Gaussian[T ndarray.Float](input *ndarray.Array[T], n int, sigma float64, opts ...Option) (*ndarray.Array[T], error) {
	if err := ndarray.ValidateNotNil(input); err != nil {
		return nil, filterErrorf("Gaussian", err)
	}
	k, err := GaussianKernel[T](n, sigma)
	if err != nil {
		return nil, err
	}
	o := gather(opts...)
	kernels := make([]*ndarray.Array[T], input.Rank())
	for i := range kernels {
		kernels[i] = k
	}
	return convolution.Separable(input, kernels, o.conv...)
}

// Gradient returns the central difference of input along axis.
func Gradient[T ndarray.Float](input *ndarray.Array[T], axis int, opts ...Option) (*ndarray.Array[T], error) {
	o := gather(opts...)
	out, err := convolution.Convolve1D(input, asType[T](o.diff), axis, o.conv...)
	if err != nil {
		return nil, filterErrorf("Gradient", err)
	}
	return out, nil
}

// Sobel returns the Sobel derivative of input along axis: every other axis
// is smoothed, then axis is differentiated. Rank 1 input is only
// differentiated.
func Sobel[T ndarray.Float](input *ndarray.Array[T], axis int, opts ...Option) (*ndarray.Array[T], error) {
	if err := ndarray.ValidateNotNil(input); err != nil {
		return nil, filterErrorf("Sobel", err)
	}
	d := input.Rank()
	if axis < 0 || axis >= d {
		panic(fmt.Sprintf("filter: Sobel: axis %d out of range for rank %d", axis, d))
	}
	o := gather(opts...)
	smooth, diff := asType[T](o.smooth), asType[T](o.diff)
	kernels := make([]*ndarray.Array[T], d)
	for i := 0; i < d; i++ {
		if i != axis {
			kernels[i] = smooth
		}
	}
	kernels[axis] = diff
	out, err := convolution.Separable(input, kernels, o.conv...)
	if err != nil {
		return nil, filterErrorf("Sobel", err)
	}
	return out, nil
}

// SobelInto writes Sobel(input, axis) into out (same shape, any layout).
func SobelInto[T ndarray.Float](out, input *ndarray.Array[T], axis int, opts ...Option) error {
	if err := ndarray.ValidateSameShape(out, input); err != nil {
		return filterErrorf("SobelInto", err)
	}
	res, err := Sobel(input, axis, opts...)
	if err != nil {
		return err
	}
	return ndarray.Assign(out, res)
}

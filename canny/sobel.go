// SPDX-License-Identifier: MIT

package canny

import (
	"github.com/katalvlaran/ndcanny/convolution"
	"github.com/katalvlaran/ndcanny/filter"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// SobelField computes the Sobel response of input along every axis and
// packs it into a normalised homogeneous Field.
func SobelField[T ndarray.Float](input *ndarray.Array[T], opts ...Option) (*Field[T], error) {
	return sobelField(input, nil, opts...)
}

// SmoothSobel is SobelField with a 2n+1 tap Gaussian of standard deviation
// sigma folded into both Sobel kernels through ConvolvePaddingZero, so
// blur and gradient cost one 1-D pass per axis.
func SmoothSobel[T ndarray.Float](input *ndarray.Array[T], n int, sigma float64, opts ...Option) (*Field[T], error) {
	g, err := filter.GaussianKernel[float64](n, sigma)
	if err != nil {
		return nil, cannyErrorf("SmoothSobel", err)
	}
	smooth, err := convolution.ConvolvePaddingZero(filter.SmoothKernel[float64](), g)
	if err != nil {
		return nil, cannyErrorf("SmoothSobel", err)
	}
	diff, err := convolution.ConvolvePaddingZero(filter.DifferenceKernel[float64](), g)
	if err != nil {
		return nil, cannyErrorf("SmoothSobel", err)
	}
	return sobelField(input, []filter.Option{filter.WithKernels(smooth, diff)}, opts...)
}

func sobelField[T ndarray.Float](input *ndarray.Array[T], fopts []filter.Option, opts ...Option) (*Field[T], error) {
	if err := ndarray.ValidateNotNil(input); err != nil {
		return nil, cannyErrorf("SobelField", err)
	}
	d := input.Rank()
	if d == 0 {
		return nil, cannyErrorf("SobelField", ndarray.ErrRankMismatch)
	}
	o := gatherOptions(opts...)
	fopts = append(fopts, filter.WithConvolution(convolution.WithWorkers(o.workers), convolution.WithLogger(o.log)))

	out, err := ndarray.New[T](input.Shape().Append(d + 1)...)
	if err != nil {
		return nil, cannyErrorf("SobelField", err)
	}
	for k := 0; k < d; k++ {
		if err := filter.SobelInto(out.Select(d, k), input, k, fopts...); err != nil {
			return nil, cannyErrorf("SobelField", err)
		}
	}
	if err := NormalizeHomogeneous(out, opts...); err != nil {
		return nil, err
	}
	return &Field[T]{arr: out}, nil
}

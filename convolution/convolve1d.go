// SPDX-License-Identifier: MIT

package convolution

import (
	"fmt"

	"github.com/katalvlaran/ndcanny/internal/parallel"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// Convolve1D convolves input with a rank-1 kernel along axis, holding every
// other axis fixed. Boundaries wrap cyclically.
func Convolve1D[T ndarray.Number](input, kernel *ndarray.Array[T], axis int, opts ...Option) (*ndarray.Array[T], error) {
	if err := ndarray.ValidateNotNil(input); err != nil {
		return nil, convErrorf("Convolve1D", err)
	}
	out, err := ndarray.New[T](input.Shape()...)
	if err != nil {
		return nil, convErrorf("Convolve1D", err)
	}
	if err := Convolve1DInto(out, input, kernel, axis, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Convolve1DInto is Convolve1D writing into out, which must have input's
// shape. Each line along axis is an independent work item; the line is read
// once into a scratch buffer, so out may be input itself.
//
// An axis outside [0, rank) panics, like every structural misuse.
func Convolve1DInto[T ndarray.Number](out, input, kernel *ndarray.Array[T], axis int, opts ...Option) error {
	// Stage 1 (Validate)
	if err := ndarray.ValidateRank(kernel, 1); err != nil {
		return convErrorf("Convolve1DInto", err)
	}
	if err := ndarray.ValidateSameShape(out, input); err != nil {
		return convErrorf("Convolve1DInto", err)
	}
	if axis < 0 || axis >= input.Rank() {
		panic(fmt.Sprintf("convolution: Convolve1DInto: axis %d out of range for rank %d", axis, input.Rank()))
	}
	if kernel.Size() == 0 {
		return convErrorf("Convolve1DInto", ErrEmptyKernel)
	}
	o := gatherOptions(opts...)

	// Stage 2 (Execute)
	krev := reversed(kernel)
	half := len(krev) / 2
	shape := input.Shape()
	n := shape[axis]
	if n == 0 {
		return nil
	}
	lines := ndarray.Shape(shape.Drop(axis))
	in, dst := input.Layout(), out.Layout()
	src, buf := input.Data(), out.Data()
	parallel.For(lines.Size(), o.workers, func(start, end int) {
		idx := make([]int, len(shape))
		rest := make([]int, len(lines))
		line := make([]T, n)
		for l := start; l < end; l++ {
			lines.Unravel(l, rest)
			copy(idx[:axis], rest[:axis])
			copy(idx[axis+1:], rest[axis:])
			idx[axis] = 0
			inBase, outBase := in.Address(idx), dst.Address(idx)
			for p := 0; p < n; p++ {
				line[p] = src[inBase+p*in.Stride[axis]]
			}
			for p := 0; p < n; p++ {
				var sum T
				for j, k := range krev {
					sum += line[modInt(p-half+j, n)] * k
				}
				buf[outBase+p*dst.Stride[axis]] = sum
			}
		}
	})
	o.log.Debugf("convolution: Convolve1D %v axis %d kernel %d", shape, axis, len(krev))
	return nil
}

// Separable applies Convolve1D along axis i with kernels[i] for every
// non-nil entry, feeding each result into the next axis. Two buffers are
// alternated; input is never written. With no kernels the result is a
// copy of input.
func Separable[T ndarray.Number](input *ndarray.Array[T], kernels []*ndarray.Array[T], opts ...Option) (*ndarray.Array[T], error) {
	if err := ndarray.ValidateNotNil(input); err != nil {
		return nil, convErrorf("Separable", err)
	}
	if len(kernels) > input.Rank() {
		return nil, convErrorf("Separable", fmt.Errorf("%d kernels for rank %d: %w",
			len(kernels), input.Rank(), ndarray.ErrRankMismatch))
	}
	var front, back *ndarray.Array[T]
	cur := input
	for axis, k := range kernels {
		if k == nil {
			continue
		}
		if front == nil {
			front = ndarray.Must(ndarray.New[T](input.Shape()...))
		}
		if err := Convolve1DInto(front, cur, k, axis, opts...); err != nil {
			return nil, err
		}
		cur = front
		front, back = back, front
	}
	if cur == input {
		return input.Copy(), nil
	}
	return cur, nil
}

func modInt(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// SPDX-License-Identifier: MIT

package convolution

import (
	"fmt"

	"github.com/katalvlaran/ndcanny/internal/parallel"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// reversed returns the kernel elements read with every axis reversed, in
// traversal order, so that reversed[j] pairs with window element j.
func reversed[T any](k *ndarray.Array[T]) []T {
	r := k
	for axis := 0; axis < k.Rank(); axis++ {
		r = r.Reverse(axis)
	}
	return r.ToSlice()
}

// Convolve returns the cyclic convolution of data with kernel.
//
// Errors:
//   - ndarray.ErrNilArray for nil operands.
//   - ndarray.ErrRankMismatch when kernel and data ranks differ.
//   - ErrEmptyKernel when kernel has no elements.
//
// Complexity: O(Size(data) · Size(kernel)).
func Convolve[T ndarray.Number](data, kernel *ndarray.Array[T], opts ...Option) (*ndarray.Array[T], error) {
	if err := ndarray.ValidateNotNil(data); err != nil {
		return nil, convErrorf("Convolve", err)
	}
	out, err := ndarray.New[T](data.Shape()...)
	if err != nil {
		return nil, convErrorf("Convolve", err)
	}
	if err := ConvolveInto(out, data, kernel, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ConvolveInto writes the cyclic convolution of data with kernel into out.
// out may be any layout (a view, transposed, reversed) but must have data's
// shape; nothing is written when validation fails. out may share data's
// buffer: the result is then staged and assigned at the end.
func ConvolveInto[T ndarray.Number](out, data, kernel *ndarray.Array[T], opts ...Option) error {
	// Stage 1 (Validate)
	if err := ndarray.ValidateNotNil(kernel); err != nil {
		return convErrorf("ConvolveInto", err)
	}
	if err := ndarray.ValidateSameShape(out, data); err != nil {
		return convErrorf("ConvolveInto", err)
	}
	if kernel.Rank() != data.Rank() {
		return convErrorf("ConvolveInto", fmt.Errorf("kernel rank %d, data rank %d: %w",
			kernel.Rank(), data.Rank(), ndarray.ErrRankMismatch))
	}
	if kernel.Size() == 0 {
		return convErrorf("ConvolveInto", ErrEmptyKernel)
	}
	o := gatherOptions(opts...)

	// Stage 2 (Stage aliasing output)
	target := out
	if overlaps(out, data) {
		target = ndarray.Must(ndarray.New[T](data.Shape()...))
	}

	// Stage 3 (Execute)
	krev := reversed(kernel)
	kshape := kernel.Shape()
	shape := data.Shape()
	tl := target.Layout()
	buf := target.Data()
	parallel.For(data.Size(), o.workers, func(start, end int) {
		idx := make([]int, len(shape))
		origin := make([]int, len(shape))
		view := data.Periodic(origin, kshape)
		for pos := start; pos < end; pos++ {
			shape.Unravel(pos, idx)
			for i := range idx {
				origin[i] = idx[i] - kshape[i]/2
			}
			view.SetOrigin(origin...)
			var sum T
			j := 0
			view.Walk(func(v T) {
				sum += v * krev[j]
				j++
			})
			buf[tl.Address(idx)] = sum
		}
	})
	o.log.Debugf("convolution: Convolve %v with kernel %v", shape, kshape)

	if target != out {
		return ndarray.Assign(out, target)
	}
	return nil
}

func overlaps[T any](a, b *ndarray.Array[T]) bool {
	da, db := a.Data(), b.Data()
	return len(da) > 0 && len(db) > 0 && &da[0] == &db[0]
}

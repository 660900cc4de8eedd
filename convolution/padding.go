// SPDX-License-Identifier: MIT

package convolution

import (
	"fmt"

	"github.com/katalvlaran/ndcanny/ndarray"
)

// ConvolvePaddingZero combines two kernels into one. a is zero padded to
// a.shape + b.shape - 1 on every axis, placed at offset (b.shape-1)/2, and
// cyclically convolved with b. The padding is exactly wide enough that no
// product wraps around, so the result is the full linear convolution of a
// and b; two odd, centred kernels give an odd, centred kernel.
//
// Errors:
//   - ndarray.ErrRankMismatch when ranks differ.
//   - ErrEmptyKernel when either operand has no elements.
func ConvolvePaddingZero[T ndarray.Number](a, b *ndarray.Array[T], opts ...Option) (*ndarray.Array[T], error) {
	if err := ndarray.ValidateNotNil(a); err != nil {
		return nil, convErrorf("ConvolvePaddingZero", err)
	}
	if err := ndarray.ValidateRank(b, a.Rank()); err != nil {
		return nil, convErrorf("ConvolvePaddingZero", err)
	}
	if a.Size() == 0 || b.Size() == 0 {
		return nil, convErrorf("ConvolvePaddingZero", ErrEmptyKernel)
	}

	padded := make([]int, a.Rank())
	for i := range padded {
		padded[i] = a.Shape()[i] + b.Shape()[i] - 1
	}
	buf, err := ndarray.New[T](padded...)
	if err != nil {
		return nil, convErrorf("ConvolvePaddingZero", err)
	}
	inner := buf
	for i := range padded {
		off := (b.Shape()[i] - 1) / 2
		inner = inner.Sub(i, off, off+a.Shape()[i])
	}
	if err := ndarray.Assign(inner, a); err != nil {
		return nil, convErrorf("ConvolvePaddingZero", fmt.Errorf("placing operand: %w", err))
	}
	return Convolve(buf, b, opts...)
}

// SPDX-License-Identifier: MIT

package canny

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndcanny/internal/parallel"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// Field is a homogeneous gradient field over a rank D region: an array of
// shape (s0, …, sD-1, D+1) whose axis D holds the unit direction components
// 0..D-1 and the strength score at component D.
type Field[T ndarray.Float] struct {
	arr *ndarray.Array[T]
}

// NewField wraps arr after checking that its last axis has extent equal to
// its rank.
func NewField[T ndarray.Float](arr *ndarray.Array[T]) (*Field[T], error) {
	if err := validateField(arr); err != nil {
		return nil, cannyErrorf("NewField", err)
	}
	return &Field[T]{arr: arr}, nil
}

func validateField[T ndarray.Float](arr *ndarray.Array[T]) error {
	if err := ndarray.ValidateNotNil(arr); err != nil {
		return err
	}
	r := arr.Rank()
	if r < 2 || arr.Shape()[r-1] != r {
		return fmt.Errorf("shape %v: want last extent %d: %w", arr.Shape(), r, ErrNotField)
	}
	return nil
}

// Array returns the underlying rank D+1 array.
func (f *Field[T]) Array() *ndarray.Array[T] { return f.arr }

// Rank returns the spatial rank D.
func (f *Field[T]) Rank() int { return f.arr.Rank() - 1 }

// Shape returns the spatial shape.
func (f *Field[T]) Shape() ndarray.Shape { return f.arr.Shape()[:f.Rank():f.Rank()] }

// Component returns a view of direction component k (0 ≤ k < D).
func (f *Field[T]) Component(k int) *ndarray.Array[T] { return f.arr.Select(f.Rank(), k) }

// Score returns a view of the strength scores.
func (f *Field[T]) Score() *ndarray.Array[T] { return f.arr.Select(f.Rank(), f.Rank()) }

// Strength returns the score at index; ok is false for a directionless
// (zero gradient) location.
func (f *Field[T]) Strength(index ...int) (score T, ok bool, err error) {
	s, err := f.Score().At(index...)
	if err != nil {
		return 0, false, cannyErrorf("Strength", err)
	}
	return s, !IsDirectionless(s), nil
}

// Direction writes the unit direction at index into dst (len D) and
// returns it; ok is false for a directionless location.
func (f *Field[T]) Direction(dst []T, index ...int) ([]T, bool, error) {
	_, ok, err := f.Strength(index...)
	if err != nil {
		return nil, false, err
	}
	dst = dst[:0]
	for k := 0; k < f.Rank(); k++ {
		v, _ := f.Component(k).At(index...)
		dst = append(dst, v)
	}
	return dst, ok, nil
}

// IsDirectionless reports whether score is the zero gradient marker.
func IsDirectionless[T ndarray.Float](score T) bool {
	return math.IsInf(float64(score), 1)
}

// NormalizeHomogeneous rewrites a raw gradient array (last axis holding D
// gradient components and one slot for the score) in place: for each
// location with gradient norm r > 0 the components are divided by r and
// the score is set to 1/r; a zero gradient gets score +Inf.
func NormalizeHomogeneous[T ndarray.Float](arr *ndarray.Array[T], opts ...Option) error {
	if err := validateField(arr); err != nil {
		return cannyErrorf("NormalizeHomogeneous", err)
	}
	o := gatherOptions(opts...)
	d := arr.Rank() - 1
	spatial := arr.Select(d, 0).Layout()
	cs := arr.Stride()[d]
	data := arr.Data()
	parallel.For(spatial.Size(), o.workers, func(start, end int) {
		idx := make([]int, d)
		for pos := start; pos < end; pos++ {
			spatial.Shape.Unravel(pos, idx)
			base := spatial.Address(idx)
			var sq float64
			for k := 0; k < d; k++ {
				v := float64(data[base+k*cs])
				sq += v * v
			}
			if sq == 0 {
				data[base+d*cs] = T(math.Inf(1))
				continue
			}
			r := math.Sqrt(sq)
			for k := 0; k < d; k++ {
				data[base+k*cs] = T(float64(data[base+k*cs]) / r)
			}
			data[base+d*cs] = T(1 / r)
		}
	})
	return nil
}

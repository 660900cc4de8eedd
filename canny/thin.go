// SPDX-License-Identifier: MIT

package canny

import (
	"math"

	"github.com/katalvlaran/ndcanny/internal/parallel"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// ThinEdges performs non-maximum suppression. For every location the unit
// direction is rounded component-wise to {-1, 0, 1}, giving offset d; the
// location is kept when its score is ≤ the scores at index-d and index+d
// (periodic). Directionless locations are never kept. The result holds one
// bool per location.
func ThinEdges[T ndarray.Float](f *Field[T], opts ...Option) (*ndarray.Array[bool], error) {
	if f == nil {
		return nil, cannyErrorf("ThinEdges", ndarray.ErrNilArray)
	}
	o := gatherOptions(opts...)
	d := f.Rank()
	shape := f.Shape()
	out, err := ndarray.New[bool](shape...)
	if err != nil {
		return nil, cannyErrorf("ThinEdges", err)
	}

	score := f.Score().Layout()
	comps := make([]ndarray.Layout, d)
	for k := range comps {
		comps[k] = f.Component(k).Layout()
	}
	data := f.arr.Data()
	mask := out.Data()

	parallel.For(shape.Size(), o.workers, func(start, end int) {
		idx := make([]int, d)
		ahead := make([]int, d)
		behind := make([]int, d)
		for pos := start; pos < end; pos++ {
			shape.Unravel(pos, idx)
			s := data[score.Address(idx)]
			if IsDirectionless(s) {
				continue
			}
			for k := 0; k < d; k++ {
				step := int(math.Round(float64(data[comps[k].Address(idx)])))
				behind[k] = idx[k] - step
				ahead[k] = idx[k] + step
			}
			mask[pos] = s <= data[score.PeriodicAddress(behind)] && s <= data[score.PeriodicAddress(ahead)]
		}
	})
	return out, nil
}

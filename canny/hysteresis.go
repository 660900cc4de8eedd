// SPDX-License-Identifier: MIT

package canny

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/ndcanny/flood"
	"github.com/katalvlaran/ndcanny/internal/parallel"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// DoubleThreshold applies hysteresis to the candidate mask. Every candidate
// with score ≤ lower seeds a flood fill that accepts connected candidates
// with score ≤ upper. Each location is marked done at most once; a done
// location is never reconsidered. Works on flat location indices, so field
// and mask may use any layout.
//
// Errors:
//   - ndarray.ErrShapeMismatch when mask does not match the field's spatial
//     shape. Nothing is computed in that case.
//
// For upper ≥ lower the accepted set does not depend on the worker count
// and grows monotonically with upper.
func DoubleThreshold[T ndarray.Float](f *Field[T], mask *ndarray.Array[bool], lower, upper float64, opts ...Option) (*ndarray.Array[bool], error) {
	// Stage 1 (Validate)
	if f == nil || mask == nil {
		return nil, cannyErrorf("DoubleThreshold", ndarray.ErrNilArray)
	}
	if !mask.Shape().Equal(f.Shape()) {
		return nil, cannyErrorf("DoubleThreshold", fmt.Errorf("mask %v, field %v: %w",
			mask.Shape(), f.Shape(), ndarray.ErrShapeMismatch))
	}
	o := gatherOptions(opts...)
	grid, err := flood.NewGrid(f.Shape(), flood.GridOptions{Conn: o.conn, Periodic: true})
	if err != nil {
		return nil, cannyErrorf("DoubleThreshold", err)
	}

	// Stage 2 (Gather) location-indexed copies, independent of layout.
	scores := ndarray.Convert[float64, T](f.Score()).Data()
	cand := mask.ToSlice()
	for p, s := range scores {
		cand[p] = cand[p] && !IsDirectionless(s)
	}
	var seeds []int
	for p, c := range cand {
		if c && scores[p] <= lower {
			seeds = append(seeds, p)
		}
	}
	accept := func(p int) bool { return cand[p] && scores[p] <= upper }

	// Stage 3 (Grow)
	output := make([]bool, len(cand))
	visit := func(p int) { output[p] = true }
	if parallel.Workers(o.workers) == 1 {
		done := make([]bool, len(cand))
		for _, s := range seeds {
			if done[s] {
				continue
			}
			done[s] = true
			grid.Fill(s, func(p int) bool {
				if done[p] {
					return false
				}
				done[p] = true
				return accept(p)
			}, visit)
		}
	} else {
		done := make([]atomic.Bool, len(cand))
		parallel.Each(len(seeds), o.workers, func(i int) {
			s := seeds[i]
			if !done[s].CompareAndSwap(false, true) {
				return
			}
			grid.Fill(s, func(p int) bool {
				return done[p].CompareAndSwap(false, true) && accept(p)
			}, visit)
		})
	}
	o.log.Debugf("canny: DoubleThreshold %v: %d seeds", f.Shape(), len(seeds))
	return ndarray.FromSlice(output, f.Shape()...)
}

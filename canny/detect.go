// SPDX-License-Identifier: MIT

package canny

import (
	"time"

	"github.com/katalvlaran/ndcanny/convolution"
	"github.com/katalvlaran/ndcanny/filter"
	"github.com/katalvlaran/ndcanny/flood"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// Result holds every stage output of Detect.
type Result[T ndarray.Float] struct {
	// Field is the normalised gradient field.
	Field *Field[T]
	// Candidates is the non-maximum suppression mask.
	Candidates *ndarray.Array[bool]
	// Edges is the hysteresis mask.
	Edges *ndarray.Array[bool]

	conn flood.Connectivity
}

// Count returns the number of accepted edge locations.
func (r *Result[T]) Count() int {
	n := 0
	r.Edges.Walk(func(b bool) {
		if b {
			n++
		}
	})
	return n
}

// Components groups accepted edge locations into connected chains using
// the hysteresis connectivity. Each chain lists flat positions (axis 0
// fastest).
func (r *Result[T]) Components() ([][]int, error) {
	g, err := flood.NewGrid(r.Edges.Shape(), flood.GridOptions{Conn: r.conn, Periodic: true})
	if err != nil {
		return nil, cannyErrorf("Components", err)
	}
	edges := r.Edges.ToSlice()
	return g.Components(func(p int) bool { return edges[p] }), nil
}

// Labels returns an int array of chain labels (0 = background) and the
// chain count.
func (r *Result[T]) Labels() (*ndarray.Array[int], int, error) {
	g, err := flood.NewGrid(r.Edges.Shape(), flood.GridOptions{Conn: r.conn, Periodic: true})
	if err != nil {
		return nil, 0, cannyErrorf("Labels", err)
	}
	edges := r.Edges.ToSlice()
	labels, n := g.Label(func(p int) bool { return edges[p] })
	arr, err := ndarray.FromSlice(labels, r.Edges.Shape()...)
	if err != nil {
		return nil, 0, cannyErrorf("Labels", err)
	}
	return arr, n, nil
}

// Detect runs smoothing, gradient, thinning and hysteresis on input.
//
// Implementation:
//   - Stage 1: Gaussian of half width ceil(2σ) (or WithHalfWidth), fused into
//     the Sobel kernels unless WithFused(false); σ = 0 skips smoothing.
//   - Stage 2: ThinEdges.
//   - Stage 3: DoubleThreshold with the configured thresholds.
func Detect[T ndarray.Float](input *ndarray.Array[T], opts ...Option) (*Result[T], error) {
	if err := ndarray.ValidateNotNil(input); err != nil {
		return nil, cannyErrorf("Detect", err)
	}
	o := gatherOptions(opts...)
	n := o.halfWidth
	if n == autoHalfWidth {
		n = filter.HalfWidth(o.sigma)
	}

	t0 := time.Now()
	var field *Field[T]
	var err error
	switch {
	case o.sigma == 0:
		field, err = SobelField(input, opts...)
	case o.fused:
		field, err = SmoothSobel(input, n, o.sigma, opts...)
	default:
		var smoothed *ndarray.Array[T]
		smoothed, err = filter.Gaussian(input, n, o.sigma,
			filter.WithConvolution(convolution.WithWorkers(o.workers), convolution.WithLogger(o.log)))
		if err == nil {
			field, err = SobelField(smoothed, opts...)
		}
	}
	if err != nil {
		return nil, err
	}
	o.log.Debugf("canny: gradient field %v (sigma=%v n=%d fused=%v) in %v", input.Shape(), o.sigma, n, o.fused, time.Since(t0))

	t0 = time.Now()
	cand, err := ThinEdges(field, opts...)
	if err != nil {
		return nil, err
	}
	o.log.Debugf("canny: thinning in %v", time.Since(t0))

	t0 = time.Now()
	edges, err := DoubleThreshold(field, cand, o.lower, o.upper, opts...)
	if err != nil {
		return nil, err
	}
	o.log.Debugf("canny: hysteresis (lower=%v upper=%v) in %v", o.lower, o.upper, time.Since(t0))

	return &Result[T]{Field: field, Candidates: cand, Edges: edges, conn: o.conn}, nil
}

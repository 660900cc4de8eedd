// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// MaxHilbertOrder bounds Hilbert so that the 4^order cells fit an int on
// every platform.
const MaxHilbertOrder = 15

// Hilbert returns a 2^order × 2^order array holding, at each cell, its
// position along a Hilbert curve. Consecutive positions are axial
// neighbours. The curve starts at (0, 0) and ends at (2^order-1, 0).
//
// The array is assembled from four copies of the previous order written
// through Sub, Transpose and Reverse views:
//
//	q[0:N, 0:N]   = p transposed
//	q[0:N, N:2N]  = p + M
//	q[N:2N, N:2N] = p + 2M
//	q[N:2N, 0:N]  = (p + 3M) reversed on both axes, transposed
//
// Errors: ErrBadShape when order is outside [0, MaxHilbertOrder].
//
// Complexity: O(4^order).
func Hilbert(order int) (*Array[int], error) {
	if order < 0 || order > MaxHilbertOrder {
		return nil, fmt.Errorf("ndarray: Hilbert: order %d not in [0, %d]: %w", order, MaxHilbertOrder, ErrBadShape)
	}
	p := Must(New[int](1, 1))
	for k := 0; k < order; k++ {
		n, m := p.Shape()[0], p.Size()
		q := Must(New[int](2*n, 2*n))
		quad := func(x, y int) *Array[int] {
			return q.Sub(0, x*n, (x+1)*n).Sub(1, y*n, (y+1)*n)
		}
		steps := []func() error{
			func() error { return Assign(quad(0, 0), p.Transpose()) },
			func() error { return AddScalar(p, m) },
			func() error { return Assign(quad(0, 1), p) },
			func() error { return AddScalar(p, m) },
			func() error { return Assign(quad(1, 1), p) },
			func() error { return AddScalar(p, m) },
			func() error { return Assign(quad(1, 0), p.Reverse(0).Reverse(1).Transpose()) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return nil, fmt.Errorf("ndarray: Hilbert: %w", err)
			}
		}
		p = q
	}
	return p, nil
}

// HilbertWalk returns the flat positions (axis 0 fastest) of a Hilbert
// array of the given order, listed in curve order.
func HilbertWalk(order int) ([]int, error) {
	h, err := Hilbert(order)
	if err != nil {
		return nil, err
	}
	walk := make([]int, h.Size())
	for pos, v := range h.Data() {
		walk[v] = pos
	}
	return walk, nil
}

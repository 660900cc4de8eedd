// SPDX-License-Identifier: MIT

package flood

import (
	"fmt"

	"github.com/katalvlaran/ndcanny/ndarray"
)

const maxStackRank = 8

// NewGrid builds a grid over shape. Returns ErrEmptyGrid for rank 0 or an
// empty axis. Complexity: O(3^D·D).
func NewGrid(shape ndarray.Shape, opts GridOptions) (*Grid, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("flood: NewGrid: %w", err)
	}
	if len(shape) == 0 || shape.Size() == 0 {
		return nil, fmt.Errorf("flood: NewGrid %v: %w", shape, ErrEmptyGrid)
	}
	g := &Grid{
		Shape:    shape.Clone(),
		Conn:     opts.Conn,
		Periodic: opts.Periodic,
		stride:   shape.Contiguous(),
	}
	for _, e := range shape {
		if e < 3 {
			g.small = true
		}
	}
	g.offsets = offsets(len(shape), opts.Conn)
	return g, nil
}

// offsets enumerates the neighbour offsets for rank d.
func offsets(d int, conn Connectivity) [][]int {
	var out [][]int
	if conn == Axial {
		for axis := 0; axis < d; axis++ {
			for _, s := range []int{-1, 1} {
				off := make([]int, d)
				off[axis] = s
				out = append(out, off)
			}
		}
		return out
	}
	window := make(ndarray.Shape, d)
	for i := range window {
		window[i] = 3
	}
	idx := make([]int, d)
	for pos := 0; pos < window.Size(); pos++ {
		window.Unravel(pos, idx)
		off := make([]int, d)
		zero := true
		for i, v := range idx {
			off[i] = v - 1
			zero = zero && off[i] == 0
		}
		if !zero {
			out = append(out, off)
		}
	}
	return out
}

// Size returns the number of cells.
func (g *Grid) Size() int { return g.Shape.Size() }

// Offsets returns the neighbour offsets in enumeration order. The result
// must not be modified.
func (g *Grid) Offsets() [][]int { return g.offsets }

// Contains reports whether pos is a valid flat position.
func (g *Grid) Contains(pos int) bool { return pos >= 0 && pos < g.Size() }

// Neighbours appends the neighbours of pos to buf[:0] and returns it.
// With periodic boundaries positions wrap; otherwise out-of-grid neighbours
// are skipped. The cell itself and duplicates (possible when an extent is
// below 3) are never reported.
func (g *Grid) Neighbours(pos int, buf []int) []int {
	buf = buf[:0]
	var local [maxStackRank]int
	coords := local[:0]
	if len(g.Shape) > maxStackRank {
		coords = make([]int, 0, len(g.Shape))
	}
	rest := pos
	for _, e := range g.Shape {
		coords = append(coords, rest%e)
		rest /= e
	}

	for _, off := range g.offsets {
		next, ok := pos, true
		for i, d := range off {
			if d == 0 {
				continue
			}
			c := coords[i] + d
			if c < 0 || c >= g.Shape[i] {
				if !g.Periodic {
					ok = false
					break
				}
				c = (c + g.Shape[i]) % g.Shape[i]
			}
			next += (c - coords[i]) * g.stride[i]
		}
		if !ok || next == pos {
			continue
		}
		if g.small && contains(buf, next) {
			continue
		}
		buf = append(buf, next)
	}
	return buf
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

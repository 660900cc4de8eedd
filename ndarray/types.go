// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"strings"
)

// Number is the set of element types supporting arithmetic.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the set of floating point element types used by the filters.
type Float interface {
	~float32 | ~float64
}

// Shape is the per-axis extent of a D-dimensional region, axis 0 first.
// A Shape is treated as immutable once attached to a Layout; methods that
// derive a new Shape always return a fresh slice.
type Shape []int

// Stride is the per-axis element step of a Layout. Entries may be negative
// (reversed axis) or non-monotonic (permuted axes).
type Stride []int

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Size returns Π s[i]. The empty shape has size 1 (a scalar).
// Complexity: O(D).
func (s Shape) Size() int {
	n := 1
	for _, e := range s {
		n *= e
	}
	return n
}

// Equal reports whether both shapes have the same rank and extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s Shape) Clone() Shape {
	return append(Shape(nil), s...)
}

// Drop returns s without axis.
func (s Shape) Drop(axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:axis]...)
	return append(out, s[axis+1:]...)
}

// Append returns s with one more (outermost) axis of extent n.
func (s Shape) Append(n int) Shape {
	out := make(Shape, len(s), len(s)+1)
	copy(out, s)
	return append(out, n)
}

// Reversed returns the axes of s in reverse order.
func (s Shape) Reversed() Shape {
	out := make(Shape, len(s))
	for i, e := range s {
		out[len(s)-1-i] = e
	}
	return out
}

// Contiguous returns the canonical stride for s: stride[0] = 1 and
// stride[i] = stride[i-1] * s[i-1].
func (s Shape) Contiguous() Stride {
	st := make(Stride, len(s))
	step := 1
	for i, e := range s {
		st[i] = step
		step *= e
	}
	return st
}

// Validate returns ErrBadShape when an extent is negative.
func (s Shape) Validate() error {
	for i, e := range s {
		if e < 0 {
			return fmt.Errorf("ndarray: axis %d has extent %d: %w", i, e, ErrBadShape)
		}
	}
	return nil
}

// Contains reports whether idx lies inside the shape.
func (s Shape) Contains(idx []int) bool {
	if len(idx) != len(s) {
		return false
	}
	for i, v := range idx {
		if v < 0 || v >= s[i] {
			return false
		}
	}
	return true
}

// Unravel writes into idx the index of the pos-th element of a contiguous
// traversal (axis 0 fastest) and returns idx. idx must have len(s) entries.
func (s Shape) Unravel(pos int, idx []int) []int {
	for i, e := range s {
		if e == 0 {
			idx[i] = 0
			continue
		}
		idx[i] = pos % e
		pos /= e
	}
	return idx
}

// Ravel is the inverse of Unravel.
func (s Shape) Ravel(idx []int) int {
	pos := 0
	for i := len(s) - 1; i >= 0; i-- {
		pos = pos*s[i] + idx[i]
	}
	return pos
}

// String renders the shape as "(a×b×c)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = fmt.Sprint(e)
	}
	return "(" + strings.Join(parts, "×") + ")"
}

// Clone returns an independent copy.
func (st Stride) Clone() Stride {
	return append(Stride(nil), st...)
}

// Drop returns st without axis.
func (st Stride) Drop(axis int) Stride {
	out := make(Stride, 0, len(st)-1)
	out = append(out, st[:axis]...)
	return append(out, st[axis+1:]...)
}

// mod returns the non-negative remainder of a modulo n (n > 0).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

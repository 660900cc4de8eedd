// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Describe a rectangular D-dimensional region of a flat buffer.
//   - Derive transposed, reversed, sub-ranged and rank-reduced layouts in O(D)
//     without touching the data they describe.
//
// Contract:
//   - Every derived layout addresses a subset or reordering of the positions
//     addressed by its source.
//   - Structural misuse (bad axis, range past the extent, step < 1) panics; see
//     the panic* messages below.

package ndarray

import "fmt"

const (
	panicAxis   = "ndarray: %s: axis %d out of range for rank %d"
	panicRange  = "ndarray: %s: range [%d, %d) outside extent %d on axis %d"
	panicStep   = "ndarray: %s: step %d must be >= 1"
	panicSelect = "ndarray: %s: index %d outside extent %d on axis %d"
)

// Layout is the affine map from a D-tuple index to a buffer position:
// address = Offset + Σ index[i] * Stride[i].
type Layout struct {
	Offset int
	Shape  Shape
	Stride Stride
}

// Contiguous returns the natural layout of shape: offset 0, canonical stride.
func Contiguous(shape Shape) Layout {
	return Layout{Offset: 0, Shape: shape.Clone(), Stride: shape.Contiguous()}
}

// Rank returns the number of axes.
func (l Layout) Rank() int { return len(l.Shape) }

// Size returns the number of addressed elements.
func (l Layout) Size() int { return l.Shape.Size() }

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	return Layout{Offset: l.Offset, Shape: l.Shape.Clone(), Stride: l.Stride.Clone()}
}

// IsContiguous reports whether the layout is the natural layout of its shape
// shifted by Offset. Axes of extent 1 may carry any stride.
func (l Layout) IsContiguous() bool {
	step := 1
	for i, e := range l.Shape {
		if e != 1 && l.Stride[i] != step {
			return false
		}
		step *= e
	}
	return true
}

// Address returns Offset + Σ index[i]*Stride[i]. index is not bounds checked.
// Complexity: O(D).
func (l Layout) Address(index []int) int {
	addr := l.Offset
	for i, v := range index {
		addr += v * l.Stride[i]
	}
	return addr
}

// PeriodicAddress is Address with every index reduced modulo the extent of
// its axis first, so negative and overflowing indices wrap around.
func (l Layout) PeriodicAddress(index []int) int {
	addr := l.Offset
	for i, v := range index {
		addr += mod(v, l.Shape[i]) * l.Stride[i]
	}
	return addr
}

// Span returns the lowest and highest addressed buffer positions. An empty
// layout returns (Offset, Offset-1).
func (l Layout) Span() (lo, hi int) {
	lo, hi = l.Offset, l.Offset
	for i, e := range l.Shape {
		if e == 0 {
			return l.Offset, l.Offset - 1
		}
		d := (e - 1) * l.Stride[i]
		if d < 0 {
			lo += d
		} else {
			hi += d
		}
	}
	return lo, hi
}

// Transpose reverses the order of all axes. Offset is unchanged.
func (l Layout) Transpose() Layout {
	d := len(l.Shape)
	out := Layout{Offset: l.Offset, Shape: make(Shape, d), Stride: make(Stride, d)}
	for i := 0; i < d; i++ {
		out.Shape[i] = l.Shape[d-1-i]
		out.Stride[i] = l.Stride[d-1-i]
	}
	return out
}

// Reverse flips axis: the first visited element becomes the previous last.
func (l Layout) Reverse(axis int) Layout {
	l.checkAxis("Reverse", axis)
	out := l.Clone()
	if l.Shape[axis] > 0 {
		out.Offset += l.Stride[axis] * (l.Shape[axis] - 1)
	}
	out.Stride[axis] = -l.Stride[axis]
	return out
}

// Sub restricts axis to [begin, end).
func (l Layout) Sub(axis, begin, end int) Layout {
	return l.subStep("Sub", axis, begin, end, 1)
}

// SubStep restricts axis to every step-th index of [begin, end); the new
// extent is ceil((end-begin)/step).
func (l Layout) SubStep(axis, begin, end, step int) Layout {
	return l.subStep("SubStep", axis, begin, end, step)
}

func (l Layout) subStep(op string, axis, begin, end, step int) Layout {
	l.checkAxis(op, axis)
	if step < 1 {
		panic(fmt.Sprintf(panicStep, op, step))
	}
	if begin < 0 || end > l.Shape[axis] || begin > end {
		panic(fmt.Sprintf(panicRange, op, begin, end, l.Shape[axis], axis))
	}
	out := l.Clone()
	out.Offset += begin * l.Stride[axis]
	out.Stride[axis] = l.Stride[axis] * step
	out.Shape[axis] = (end - begin + step - 1) / step
	return out
}

// Select fixes axis at index and drops it, giving a rank D-1 layout.
func (l Layout) Select(axis, index int) Layout {
	l.checkAxis("Select", axis)
	if index < 0 || index >= l.Shape[axis] {
		panic(fmt.Sprintf(panicSelect, "Select", index, l.Shape[axis], axis))
	}
	return Layout{
		Offset: l.Offset + index*l.Stride[axis],
		Shape:  l.Shape.Drop(axis),
		Stride: l.Stride.Drop(axis),
	}
}

func (l Layout) checkAxis(op string, axis int) {
	if axis < 0 || axis >= len(l.Shape) {
		panic(fmt.Sprintf(panicAxis, op, axis, len(l.Shape)))
	}
}

// String renders the layout for debugging.
func (l Layout) String() string {
	return fmt.Sprintf("Layout{offset=%d shape=%v stride=%v}", l.Offset, l.Shape, []int(l.Stride))
}

// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"iter"
)

// PeriodicCursor walks a window of arbitrary shape over a parent layout.
// Indices wrap modulo the parent's extent, never the window's, so a window
// may straddle (or exceed) the parent's boundaries.
//
// Implementation:
//   - The window keeps its own nested counter 0..window[i].
//   - Every step moves the base cursor by Cycle(i, +1); when window axis i
//     rolls over the base is rewound by Cycle(i, -window[i]), which restores
//     the window origin on that axis, and the carry moves to axis i+1.
type PeriodicCursor struct {
	base    Cursor
	parent  Layout
	origin  []int
	window  Shape
	counter []int
	done    bool
}

// NewPeriodicCursor positions a window of shape window at origin over
// parent. origin may be negative; it is reduced modulo parent's shape.
// Rank mismatches panic (structural misuse).
func NewPeriodicCursor(parent Layout, origin []int, window Shape) *PeriodicCursor {
	if len(origin) != len(parent.Shape) || len(window) != len(parent.Shape) {
		panic(fmt.Sprintf("ndarray: NewPeriodicCursor: origin rank %d, window rank %d, parent rank %d",
			len(origin), len(window), len(parent.Shape)))
	}
	p := &PeriodicCursor{
		parent:  parent,
		origin:  make([]int, len(origin)),
		window:  window.Clone(),
		counter: make([]int, len(window)),
	}
	p.base.init(parent)
	p.Reset(origin)
	return p
}

// Reset moves the window origin and restarts the traversal without
// allocating.
func (p *PeriodicCursor) Reset(origin []int) {
	copy(p.origin, origin)
	for i := range p.counter {
		p.counter[i] = 0
	}
	p.done = p.parent.Shape.Size() == 0 || p.window.Size() == 0
	if p.done {
		return
	}
	p.base.Seek(origin)
}

// Done implements Walker.
func (p *PeriodicCursor) Done() bool { return p.done }

// Address implements Walker.
func (p *PeriodicCursor) Address() int { return p.base.address }

// Index implements Walker. It returns the window-local index.
func (p *PeriodicCursor) Index() []int { return p.counter }

// ParentIndex returns the wrapped index in the parent layout.
func (p *PeriodicCursor) ParentIndex() []int { return p.base.index }

// Next implements Walker.
func (p *PeriodicCursor) Next() {
	if p.done {
		return
	}
	for i := range p.counter {
		p.counter[i]++
		p.base.Cycle(i, 1)
		if p.counter[i] < p.window[i] {
			return
		}
		p.counter[i] = 0
		p.base.Cycle(i, -p.window[i])
	}
	p.done = true
}

// PeriodicView is a window over an array whose index arithmetic wraps
// modulo the owning array's shape. It shares the owner's buffer.
type PeriodicView[T any] struct {
	parent Layout
	data   []T
	origin []int
	window Shape
	cursor *PeriodicCursor
}

// Shape returns the window shape.
func (v *PeriodicView[T]) Shape() Shape { return v.window }

// Size returns the number of elements in the window.
func (v *PeriodicView[T]) Size() int { return v.window.Size() }

// Origin returns the (unreduced) origin last set on the view.
func (v *PeriodicView[T]) Origin() []int { return v.origin }

// Data implements Sequence.
func (v *PeriodicView[T]) Data() []T { return v.data }

// NewWalker implements Sequence.
func (v *PeriodicView[T]) NewWalker() Walker {
	return NewPeriodicCursor(v.parent, v.origin, v.window)
}

// SetOrigin moves the window. Reusing one view across many origins avoids
// reallocating per position.
func (v *PeriodicView[T]) SetOrigin(origin ...int) {
	copy(v.origin, origin)
}

// At returns the element at the window-local index. Indices outside the
// window still wrap against the parent, so At never fails for a rank match.
func (v *PeriodicView[T]) At(index ...int) T {
	addr := v.parent.Offset
	for i, x := range index {
		addr += mod(v.origin[i]+x, v.parent.Shape[i]) * v.parent.Stride[i]
	}
	return v.data[addr]
}

// Set writes value at the window-local index (wrapping like At).
func (v *PeriodicView[T]) Set(value T, index ...int) {
	addr := v.parent.Offset
	for i, x := range index {
		addr += mod(v.origin[i]+x, v.parent.Shape[i]) * v.parent.Stride[i]
	}
	v.data[addr] = value
}

// Walk calls fn for every window element in nested order. The view's own
// cursor is reused between calls.
func (v *PeriodicView[T]) Walk(fn func(T)) {
	if v.cursor == nil {
		v.cursor = NewPeriodicCursor(v.parent, v.origin, v.window)
	} else {
		v.cursor.Reset(v.origin)
	}
	for c := v.cursor; !c.Done(); c.Next() {
		fn(v.data[c.Address()])
	}
}

// Values returns the window elements as an iterator.
func (v *PeriodicView[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := NewPeriodicCursor(v.parent, v.origin, v.window); !c.Done(); c.Next() {
			if !yield(v.data[c.Address()]) {
				return
			}
		}
	}
}

// Copy materialises the window into a new contiguous array.
func (v *PeriodicView[T]) Copy() *Array[T] {
	out := &Array[T]{layout: Contiguous(v.window), data: make([]T, v.window.Size())}
	i := 0
	v.Walk(func(x T) {
		out.data[i] = x
		i++
	})
	return out
}

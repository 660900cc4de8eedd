// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"iter"
	"strings"
)

// Array is a Layout over a buffer. An Array created by New or FromSlice owns
// its buffer; arrays returned by the transform methods are views that share
// the buffer of their source.
//
// Array values are not safe for concurrent mutation of overlapping regions;
// concurrent writes to disjoint elements are fine.
type Array[T any] struct {
	layout Layout
	data   []T
	view   bool
}

// New allocates a zero-valued contiguous array of the given shape.
//
// Errors:
//   - ErrBadShape when an extent is negative.
//
// Complexity: O(Π shape).
func New[T any](shape ...int) (*Array[T], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, opErrorf("New", err)
	}
	return &Array[T]{layout: Contiguous(s), data: make([]T, s.Size())}, nil
}

// FromSlice wraps data (axis 0 fastest) as a contiguous array of shape. The
// array takes ownership of data; callers must not keep writing to it
// through other paths unless they want the aliasing.
//
// Errors:
//   - ErrBadShape when an extent is negative.
//   - ErrSizeMismatch when len(data) != Π shape.
func FromSlice[T any](data []T, shape ...int) (*Array[T], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, opErrorf("FromSlice", err)
	}
	if len(data) != s.Size() {
		return nil, fmt.Errorf("ndarray: FromSlice: %d elements for shape %v: %w", len(data), s, ErrSizeMismatch)
	}
	return &Array[T]{layout: Contiguous(s), data: data}, nil
}

// Must panics when err is non-nil; it is meant for literals in tests and
// examples.
func Must[T any](a *Array[T], err error) *Array[T] {
	if err != nil {
		panic(err)
	}
	return a
}

// Full returns a contiguous array with every element set to value.
func Full[T any](value T, shape ...int) (*Array[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// Iota returns a contiguous array holding 1, 2, …, Π shape in traversal
// order.
func Iota[T Number](shape ...int) (*Array[T], error) {
	a, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = T(i + 1)
	}
	return a, nil
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int { return len(a.layout.Shape) }

// Shape returns the per-axis extents. The slice must not be modified.
func (a *Array[T]) Shape() Shape { return a.layout.Shape }

// Stride returns the per-axis steps. The slice must not be modified.
func (a *Array[T]) Stride() Stride { return a.layout.Stride }

// Offset returns the position of index (0, …, 0) in Data.
func (a *Array[T]) Offset() int { return a.layout.Offset }

// Size returns the number of elements.
func (a *Array[T]) Size() int { return a.layout.Size() }

// Layout returns a copy of the array's layout.
func (a *Array[T]) Layout() Layout { return a.layout.Clone() }

// Data returns the backing buffer, shared with every view of it.
func (a *Array[T]) Data() []T { return a.data }

// IsView reports whether the array borrows the buffer of another array.
func (a *Array[T]) IsView() bool { return a.view }

// IsContiguous reports whether elements are laid out in traversal order.
func (a *Array[T]) IsContiguous() bool { return a.layout.IsContiguous() }

// NewWalker implements Sequence.
func (a *Array[T]) NewWalker() Walker { return NewCursor(a.layout) }

func (a *Array[T]) derive(l Layout) *Array[T] {
	return &Array[T]{layout: l, data: a.data, view: true}
}

// Transpose returns a view with the axis order reversed.
func (a *Array[T]) Transpose() *Array[T] { return a.derive(a.layout.Transpose()) }

// Reverse returns a view with axis traversed backwards.
func (a *Array[T]) Reverse(axis int) *Array[T] { return a.derive(a.layout.Reverse(axis)) }

// Sub returns a view restricted to [begin, end) on axis.
func (a *Array[T]) Sub(axis, begin, end int) *Array[T] {
	return a.derive(a.layout.Sub(axis, begin, end))
}

// SubStep returns a view of every step-th index of [begin, end) on axis.
func (a *Array[T]) SubStep(axis, begin, end, step int) *Array[T] {
	return a.derive(a.layout.SubStep(axis, begin, end, step))
}

// Select returns the rank D-1 view with axis fixed at index.
func (a *Array[T]) Select(axis, index int) *Array[T] {
	return a.derive(a.layout.Select(axis, index))
}

// Periodic returns a window of shape window whose origin is origin; its
// indices wrap modulo a's shape. origin may be negative.
func (a *Array[T]) Periodic(origin []int, window Shape) *PeriodicView[T] {
	if len(origin) != a.Rank() || len(window) != a.Rank() {
		panic(fmt.Sprintf("ndarray: Periodic: origin rank %d, window rank %d, array rank %d",
			len(origin), len(window), a.Rank()))
	}
	return &PeriodicView[T]{
		parent: a.layout,
		data:   a.data,
		origin: append([]int(nil), origin...),
		window: window.Clone(),
	}
}

// Copy returns a new owning contiguous array with the same logical elements.
// Complexity: O(Size).
func (a *Array[T]) Copy() *Array[T] {
	out := &Array[T]{layout: Contiguous(a.layout.Shape), data: make([]T, a.Size())}
	i := 0
	a.Walk(func(v T) {
		out.data[i] = v
		i++
	})
	return out
}

// Reshape returns a view of a contiguous array with a new shape of equal size.
//
// Errors:
//   - ErrSizeMismatch when the sizes differ.
//   - ErrShapeMismatch when a is not contiguous (copy it first).
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, opErrorf("Reshape", err)
	}
	if s.Size() != a.Size() {
		return nil, fmt.Errorf("ndarray: Reshape: %v to %v: %w", a.Shape(), s, ErrSizeMismatch)
	}
	if !a.IsContiguous() {
		return nil, fmt.Errorf("ndarray: Reshape: non-contiguous layout %v: %w", a.layout, ErrShapeMismatch)
	}
	l := Contiguous(s)
	l.Offset = a.layout.Offset
	return a.derive(l), nil
}

func (a *Array[T]) checkIndex(op string, index []int) error {
	if len(index) != a.Rank() {
		return fmt.Errorf("ndarray: %s: %d indices for rank %d: %w", op, len(index), a.Rank(), ErrRankMismatch)
	}
	if !a.layout.Shape.Contains(index) {
		return fmt.Errorf("ndarray: %s: index %v outside %v: %w", op, index, a.Shape(), ErrOutOfRange)
	}
	return nil
}

// At returns the element at index.
//
// Errors:
//   - ErrRankMismatch when len(index) != Rank.
//   - ErrOutOfRange when an entry lies outside its extent.
func (a *Array[T]) At(index ...int) (T, error) {
	if err := a.checkIndex("At", index); err != nil {
		var zero T
		return zero, err
	}
	return a.data[a.layout.Address(index)], nil
}

// Set writes value at index. Errors as for At.
func (a *Array[T]) Set(value T, index ...int) error {
	if err := a.checkIndex("Set", index); err != nil {
		return err
	}
	a.data[a.layout.Address(index)] = value
	return nil
}

// Walk calls fn with every element in nested order (axis 0 fastest).
func (a *Array[T]) Walk(fn func(T)) {
	for c := NewCursor(a.layout); !c.Done(); c.Next() {
		fn(a.data[c.Address()])
	}
}

// Values returns the elements in nested order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := NewCursor(a.layout); !c.Done(); c.Next() {
			if !yield(a.data[c.Address()]) {
				return
			}
		}
	}
}

// All returns (index, element) pairs in nested order. The index slice is
// reused between iterations.
func (a *Array[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for c := NewCursor(a.layout); !c.Done(); c.Next() {
			if !yield(c.Index(), a.data[c.Address()]) {
				return
			}
		}
	}
}

// ToSlice returns the elements in nested order as a new slice.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, 0, a.Size())
	a.Walk(func(v T) { out = append(out, v) })
	return out
}

// String renders rank ≤ 2 arrays as rows of axis 0 and higher ranks as a flat
// list with the shape.
func (a *Array[T]) String() string {
	var sb strings.Builder
	switch a.Rank() {
	case 0, 1:
		fmt.Fprintf(&sb, "%v", a.ToSlice())
	case 2:
		for j := 0; j < a.Shape()[1]; j++ {
			fmt.Fprintf(&sb, "%v\n", a.Select(1, j).ToSlice())
		}
	default:
		fmt.Fprintf(&sb, "%v %v", a.Shape(), a.ToSlice())
	}
	return sb.String()
}

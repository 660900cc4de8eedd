// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Elementwise assignment and arithmetic across arbitrary layouts.
//   - Every operation walks both operands with their own cursors, so
//     transposed, reversed, strided and periodic operands need no special
//     cases.
//
// Contract:
//   - Stage 1 (Validate): nil operands, shapes, integer zero divisors.
//   - Stage 2 (Execute): the first write happens only after Stage 1 passed.
//   - Source and destination sharing one buffer are handled by staging the
//     source through a contiguous copy.

package ndarray

import "math"

// Sequence is any readable array-like value: an *Array or a *PeriodicView.
type Sequence[T any] interface {
	Shape() Shape
	NewWalker() Walker
	Data() []T
}

var (
	_ Sequence[float64] = (*Array[float64])(nil)
	_ Sequence[float64] = (*PeriodicView[float64])(nil)
)

// materialize returns s as a contiguous []T in traversal order.
func materialize[T any](s Sequence[T]) []T {
	data := s.Data()
	out := make([]T, 0, s.Shape().Size())
	for w := s.NewWalker(); !w.Done(); w.Next() {
		out = append(out, data[w.Address()])
	}
	return out
}

func sameBuffer[T any](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// validateBinary is Stage 1 for every dst-op-src function.
func validateBinary[T any](op string, dst *Array[T], src Sequence[T]) error {
	if dst == nil || src == nil {
		return opErrorf(op, ErrNilArray)
	}
	if a, ok := src.(*Array[T]); ok && a == nil {
		return opErrorf(op, ErrNilArray)
	}
	if !dst.Shape().Equal(src.Shape()) {
		return shapeErrorf(op, dst.Shape(), src.Shape())
	}
	return nil
}

// zip walks dst and src in lock step. Overlapping buffers are staged first.
func zip[T any](dst *Array[T], src Sequence[T], fn func(d *T, s T)) {
	if sameBuffer(dst.data, src.Data()) {
		staged := materialize(src)
		i := 0
		for c := NewCursor(dst.layout); !c.Done(); c.Next() {
			fn(&dst.data[c.Address()], staged[i])
			i++
		}
		return
	}
	data := src.Data()
	w := src.NewWalker()
	for c := NewCursor(dst.layout); !c.Done(); c.Next() {
		fn(&dst.data[c.Address()], data[w.Address()])
		w.Next()
	}
}

// Assign copies src into dst element by element honouring both layouts.
//
// Errors:
//   - ErrNilArray for nil operands.
//   - ErrShapeMismatch when shapes differ; dst is left untouched.
func Assign[T any](dst *Array[T], src Sequence[T]) error {
	if err := validateBinary("Assign", dst, src); err != nil {
		return err
	}
	zip(dst, src, func(d *T, s T) { *d = s })
	return nil
}

// Fill sets every element of dst to value.
func Fill[T any](dst *Array[T], value T) {
	for c := NewCursor(dst.layout); !c.Done(); c.Next() {
		dst.data[c.Address()] = value
	}
}

// Apply replaces every element v of dst by fn(v).
func Apply[T any](dst *Array[T], fn func(T) T) {
	for c := NewCursor(dst.layout); !c.Done(); c.Next() {
		dst.data[c.Address()] = fn(dst.data[c.Address()])
	}
}

// isInteger reports whether T truncates division.
func isInteger[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

// AddScalar adds s to every element of dst.
func AddScalar[T Number](dst *Array[T], s T) error {
	if dst == nil {
		return opErrorf("AddScalar", ErrNilArray)
	}
	Apply(dst, func(v T) T { return v + s })
	return nil
}

// MulScalar multiplies every element of dst by s.
func MulScalar[T Number](dst *Array[T], s T) error {
	if dst == nil {
		return opErrorf("MulScalar", ErrNilArray)
	}
	Apply(dst, func(v T) T { return v * s })
	return nil
}

// DivScalar divides every element of dst by s. Integer element types
// reject s == 0 with ErrDivisionByZero; floats follow IEEE 754.
func DivScalar[T Number](dst *Array[T], s T) error {
	if dst == nil {
		return opErrorf("DivScalar", ErrNilArray)
	}
	if s == 0 && isInteger[T]() {
		return opErrorf("DivScalar", ErrDivisionByZero)
	}
	Apply(dst, func(v T) T { return v / s })
	return nil
}

// Add performs dst += src elementwise.
func Add[T Number](dst *Array[T], src Sequence[T]) error {
	if err := validateBinary("Add", dst, src); err != nil {
		return err
	}
	zip(dst, src, func(d *T, s T) { *d += s })
	return nil
}

// Subtract performs dst -= src elementwise.
func Subtract[T Number](dst *Array[T], src Sequence[T]) error {
	if err := validateBinary("Subtract", dst, src); err != nil {
		return err
	}
	zip(dst, src, func(d *T, s T) { *d -= s })
	return nil
}

// Mul performs dst *= src elementwise.
func Mul[T Number](dst *Array[T], src Sequence[T]) error {
	if err := validateBinary("Mul", dst, src); err != nil {
		return err
	}
	zip(dst, src, func(d *T, s T) { *d *= s })
	return nil
}

// Div performs dst /= src elementwise. For integer types every divisor is
// checked before the first write.
func Div[T Number](dst *Array[T], src Sequence[T]) error {
	if err := validateBinary("Div", dst, src); err != nil {
		return err
	}
	if isInteger[T]() {
		data := src.Data()
		for w := src.NewWalker(); !w.Done(); w.Next() {
			if data[w.Address()] == 0 {
				return opErrorf("Div", ErrDivisionByZero)
			}
		}
	}
	zip(dst, src, func(d *T, s T) { *d /= s })
	return nil
}

// Sum returns the sum of all elements.
func Sum[T Number](s Sequence[T]) T {
	var total T
	data := s.Data()
	for w := s.NewWalker(); !w.Done(); w.Next() {
		total += data[w.Address()]
	}
	return total
}

// MinMax returns the smallest and largest element; ok is false for empty
// input. NaN values are skipped.
func MinMax[T Number](s Sequence[T]) (lo, hi T, ok bool) {
	data := s.Data()
	for w := s.NewWalker(); !w.Done(); w.Next() {
		v := data[w.Address()]
		if v != v {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, ok
}

// Equal reports whether a and b have equal shapes and equal elements.
func Equal[T comparable](a, b Sequence[T]) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	da, db := a.Data(), b.Data()
	wb := b.NewWalker()
	for wa := a.NewWalker(); !wa.Done(); wa.Next() {
		if da[wa.Address()] != db[wb.Address()] {
			return false
		}
		wb.Next()
	}
	return true
}

// AllClose reports whether shapes match and |a-b| ≤ tol for every pair.
// Equal infinities compare as close; NaN never does.
func AllClose[T Float](a, b Sequence[T], tol float64) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	da, db := a.Data(), b.Data()
	wb := b.NewWalker()
	for wa := a.NewWalker(); !wa.Done(); wa.Next() {
		x, y := float64(da[wa.Address()]), float64(db[wb.Address()])
		wb.Next()
		if x == y {
			continue
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.Abs(x-y) > tol {
			return false
		}
	}
	return true
}

// Convert returns a new contiguous array of element type U holding the
// numeric conversion of every element of src.
func Convert[U, T Number](src Sequence[T]) *Array[U] {
	out := &Array[U]{layout: Contiguous(src.Shape()), data: make([]U, src.Shape().Size())}
	data := src.Data()
	i := 0
	for w := src.NewWalker(); !w.Done(); w.Next() {
		out.data[i] = U(data[w.Address()])
		i++
	}
	return out
}

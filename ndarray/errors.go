// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every public entry point returns one of these (possibly wrapped with
// operation context); tests match them via errors.Is. Panics are reserved for
// structural contract violations (bad axis, bad sub range).

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has a negative extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrSizeMismatch indicates that an initializer's element count differs
	// from the product of the requested shape.
	ErrSizeMismatch = errors.New("ndarray: element count does not match shape")

	// ErrShapeMismatch indicates that two operands of an elementwise
	// operation (or a destination and its source) have different shapes.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrRankMismatch indicates an index tuple or operand of the wrong rank.
	ErrRankMismatch = errors.New("ndarray: rank mismatch")

	// ErrOutOfRange indicates an index outside [0, shape[i]) on some axis.
	// At and Set return it instead of panicking.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNilArray indicates a nil *Array receiver or argument.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrDivisionByZero is returned by integer division when a divisor is 0.
	ErrDivisionByZero = errors.New("ndarray: integer division by zero")
)

// opErrorf tags err with the public operation name.
func opErrorf(op string, err error) error {
	return fmt.Errorf("ndarray: %s: %w", op, err)
}

// shapeErrorf reports a shape mismatch with both shapes in the message.
func shapeErrorf(op string, want, got Shape) error {
	return fmt.Errorf("ndarray: %s: want %v, got %v: %w", op, want, got, ErrShapeMismatch)
}

// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - One place for guard checks shared by the filter packages.
//   - Validators return wrapped sentinels tagged with the validator name so
//     call sites can add their own operation prefix and still match with
//     errors.Is.

package ndarray

import "fmt"

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilArray when a is nil.
func ValidateNotNil[T any](a *Array[T]) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}
	return nil
}

// ValidateRank checks that a is non-nil and has exactly rank axes.
func ValidateRank[T any](a *Array[T], rank int) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if a.Rank() != rank {
		return validatorErrorf("ValidateRank",
			fmt.Errorf("want rank %d, got %d: %w", rank, a.Rank(), ErrRankMismatch))
	}
	return nil
}

// ValidateSameShape checks that both operands are non-nil with equal shapes.
func ValidateSameShape[T, U any](a *Array[T], b *Array[U]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilArray)
	}
	if !a.Shape().Equal(b.Shape()) {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%v vs %v: %w", a.Shape(), b.Shape(), ErrShapeMismatch))
	}
	return nil
}

// ValidateShape checks that a is non-nil and has shape want.
func ValidateShape[T any](a *Array[T], want Shape) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if !a.Shape().Equal(want) {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("want %v, got %v: %w", want, a.Shape(), ErrShapeMismatch))
	}
	return nil
}

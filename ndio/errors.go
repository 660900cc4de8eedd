// SPDX-License-Identifier: MIT

package ndio

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVariable indicates a variable name absent from the archive.
	ErrNoVariable = errors.New("ndio: no such variable")

	// ErrDimensions indicates a variable whose rank differs from the
	// requested one. The returned error is a *DimensionsError.
	ErrDimensions = errors.New("ndio: unexpected number of dimensions")

	// ErrDtype indicates an element type this package cannot decode.
	ErrDtype = errors.New("ndio: unsupported dtype")

	// ErrDuplicate indicates a second write of the same variable name.
	ErrDuplicate = errors.New("ndio: duplicate variable")
)

// DimensionsError reports the expected and actual rank of a variable.
type DimensionsError struct {
	Name string
	Want int
	Got  int
}

func (e *DimensionsError) Error() string {
	return fmt.Sprintf("ndio: variable %q has %d dimensions, want %d", e.Name, e.Got, e.Want)
}

// Is reports whether target is ErrDimensions.
func (e *DimensionsError) Is(target error) bool { return target == ErrDimensions }

func ioErrorf(op string, err error) error {
	return fmt.Errorf("ndio: %s: %w", op, err)
}

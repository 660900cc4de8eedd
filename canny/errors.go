// SPDX-License-Identifier: MIT

package canny

import (
	"errors"
	"fmt"
)

var (
	// ErrNotField indicates an array whose last axis does not hold rank
	// components (D directions plus the score).
	ErrNotField = errors.New("canny: not a homogeneous gradient field")

	// ErrInvalidConfig marks every configuration validation failure.
	ErrInvalidConfig = errors.New("canny: invalid configuration")
)

func cannyErrorf(op string, err error) error {
	return fmt.Errorf("canny: %s: %w", op, err)
}

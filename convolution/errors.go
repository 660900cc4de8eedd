// SPDX-License-Identifier: MIT

package convolution

import (
	"errors"
	"fmt"
)

// ErrEmptyKernel is returned when a kernel has no elements.
var ErrEmptyKernel = errors.New("convolution: empty kernel")

func convErrorf(op string, err error) error {
	return fmt.Errorf("convolution: %s: %w", op, err)
}

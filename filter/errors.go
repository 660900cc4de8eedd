// SPDX-License-Identifier: MIT

package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidKernel is returned for a negative half width or a non-positive
// (or non-finite) sigma.
var ErrInvalidKernel = errors.New("filter: invalid kernel parameters")

func filterErrorf(op string, err error) error {
	return fmt.Errorf("filter: %s: %w", op, err)
}

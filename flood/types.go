// SPDX-License-Identifier: MIT

package flood

import (
	"errors"

	"github.com/katalvlaran/ndcanny/ndarray"
)

// Sentinel errors for flood operations.
var (
	// ErrEmptyGrid indicates a grid of rank 0 or with an axis of extent 0.
	ErrEmptyGrid = errors.New("flood: grid must have at least one axis and no empty axis")
	// ErrPosition indicates a flat position outside [0, Size).
	ErrPosition = errors.New("flood: position out of range")
)

// Connectivity selects which offsets count as neighbours.
type Connectivity int

const (
	// Full uses every offset in {-1,0,1}^D except zero.
	Full Connectivity = iota
	// Axial uses only the unit offsets along each axis.
	Axial
)

// String returns "full" or "axial".
func (c Connectivity) String() string {
	if c == Axial {
		return "axial"
	}
	return "full"
}

// GridOptions contains tunable parameters for a Grid.
type GridOptions struct {
	// Conn chooses Full or Axial connectivity.
	Conn Connectivity
	// Periodic wraps neighbours across the boundaries.
	Periodic bool
}

// DefaultGridOptions returns Full connectivity with periodic boundaries.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Full, Periodic: true}
}

// Grid is an immutable cell lattice. It is safe for concurrent use.
type Grid struct {
	Shape    ndarray.Shape
	Conn     Connectivity
	Periodic bool

	stride  ndarray.Stride
	offsets [][]int
	// small is set when some extent is < 3, so periodic offsets may collide.
	small bool
}

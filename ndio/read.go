// SPDX-License-Identifier: MIT

package ndio

import (
	"fmt"
	"strings"

	"github.com/sbinet/npyio"

	"github.com/katalvlaran/ndcanny/ndarray"
)

// Read loads variable name as an array of T.
//
// Errors:
//   - ErrNoVariable when the archive has no such variable.
//   - ErrDtype when the stored element type is not numeric.
func Read[T ndarray.Number](a *Archive, name string) (*ndarray.Array[T], error) {
	rc, err := a.open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	r, err := npyio.NewReader(rc)
	if err != nil {
		return nil, ioErrorf("Read", fmt.Errorf("%s: %w", name, err))
	}
	dtype := r.Header.Descr.Type
	data, converted, err := decode[T](r)
	if err != nil {
		return nil, ioErrorf("Read", fmt.Errorf("%s: %w", name, err))
	}
	if converted {
		var zero T
		a.log.Warningf("ndio: %s: converting dtype %s to %T", name, dtype, zero)
	}
	d, err := a.dims(name)
	if err != nil {
		return nil, err
	}
	arr, err := ndarray.FromSlice(data, resolveShape(r.Header.Descr.Shape, r.Header.Descr.Fortran, d)...)
	if err != nil {
		return nil, ioErrorf("Read", fmt.Errorf("%s: %w", name, err))
	}
	return arr, nil
}

// ReadRank is Read followed by a rank check; a mismatch returns a
// *DimensionsError.
func ReadRank[T ndarray.Number](a *Archive, name string, rank int) (*ndarray.Array[T], error) {
	arr, err := Read[T](a, name)
	if err != nil {
		return nil, err
	}
	if arr.Rank() != rank {
		return nil, &DimensionsError{Name: name, Want: rank, Got: arr.Rank()}
	}
	return arr, nil
}

// decode reads the payload in its stored type and converts it to T.
// converted reports whether the stored type differs from T.
func decode[T ndarray.Number](r *npyio.Reader) ([]T, bool, error) {
	dtype := r.Header.Descr.Type
	switch strings.TrimLeft(dtype, "<>|=") {
	case "f8":
		return readAs[T, float64](r)
	case "f4":
		return readAs[T, float32](r)
	case "i8":
		return readAs[T, int64](r)
	case "i4":
		return readAs[T, int32](r)
	case "i2":
		return readAs[T, int16](r)
	case "i1":
		return readAs[T, int8](r)
	case "u8":
		return readAs[T, uint64](r)
	case "u4":
		return readAs[T, uint32](r)
	case "u2":
		return readAs[T, uint16](r)
	case "u1":
		return readAs[T, uint8](r)
	}
	return nil, false, fmt.Errorf("%q: %w", dtype, ErrDtype)
}

func readAs[T, S ndarray.Number](r *npyio.Reader) ([]T, bool, error) {
	var raw []S
	if err := r.Read(&raw); err != nil {
		return nil, false, err
	}
	if same, ok := any(raw).([]T); ok {
		return same, false, nil
	}
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = T(v)
	}
	return out, true, nil
}

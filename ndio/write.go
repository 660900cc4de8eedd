// SPDX-License-Identifier: MIT

package ndio

import (
	"fmt"

	"github.com/sbinet/npyio/npz"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ndcanny/internal/logging"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// Writer creates a .npz archive. Close must be called to finish it.
type Writer struct {
	zw    *npz.Writer
	names map[string]bool
	log   logging.Logger
}

// Create truncates or creates path and returns a Writer for it.
func Create(path string, opts ...Option) (*Writer, error) {
	o := gatherOptions(opts...)
	zw, err := npz.Create(path)
	if err != nil {
		return nil, ioErrorf("Create", err)
	}
	return &Writer{zw: zw, names: make(map[string]bool), log: o.log}, nil
}

// Write stores arr under name: the elements in nested order (axis 0
// fastest) as a flat .npy payload, plus a uint8 dims entry holding a YAML
// document with the extents and, when given, one dimension name per axis.
//
// Errors:
//   - ErrDuplicate when name was already written.
//   - *DimensionsError when dims is non-empty and len(dims) != arr.Rank().
func Write[T ndarray.Number](w *Writer, name string, arr *ndarray.Array[T], dims ...string) error {
	if err := ndarray.ValidateNotNil(arr); err != nil {
		return ioErrorf("Write", err)
	}
	if w.names[name] {
		return fmt.Errorf("ndio: Write %q: %w", name, ErrDuplicate)
	}
	if len(dims) > 0 && len(dims) != arr.Rank() {
		return &DimensionsError{Name: name, Want: arr.Rank(), Got: len(dims)}
	}

	doc, err := yaml.Marshal(dimsDoc{Extents: arr.Shape().Clone(), Names: dims})
	if err != nil {
		return ioErrorf("Write", err)
	}
	if err := w.zw.Write(name+npyExt, portable(arr.ToSlice())); err != nil {
		return ioErrorf("Write", err)
	}
	if err := w.zw.Write(name+dimsExt, doc); err != nil {
		return ioErrorf("Write", err)
	}
	w.names[name] = true
	w.log.Debugf("ndio: wrote %s %v", name, arr.Shape())
	return nil
}

// WriteMask stores a boolean mask as uint8 zeros and ones.
func WriteMask(w *Writer, name string, mask *ndarray.Array[bool], dims ...string) error {
	if err := ndarray.ValidateNotNil(mask); err != nil {
		return ioErrorf("WriteMask", err)
	}
	u := ndarray.Must(ndarray.New[uint8](mask.Shape()...))
	data := u.Data()
	i := 0
	mask.Walk(func(b bool) {
		if b {
			data[i] = 1
		}
		i++
	})
	return Write(w, name, u, dims...)
}

// portable widens platform sized integers to their fixed size form.
func portable[T ndarray.Number](data []T) any {
	switch s := any(data).(type) {
	case []int:
		out := make([]int64, len(s))
		for i, v := range s {
			out[i] = int64(v)
		}
		return out
	case []uint:
		out := make([]uint64, len(s))
		for i, v := range s {
			out[i] = uint64(v)
		}
		return out
	}
	return data
}

// Close finishes the archive and closes the file.
func (w *Writer) Close() error {
	if err := w.zw.Close(); err != nil {
		return ioErrorf("Close", err)
	}
	return nil
}

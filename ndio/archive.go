// SPDX-License-Identifier: MIT

package ndio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sbinet/npyio"
	"github.com/sbinet/npyio/npz"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ndcanny/internal/logging"
	"github.com/katalvlaran/ndcanny/ndarray"
)

const (
	npyExt  = ".npy"
	dimsExt = ".dims"
	// DefaultVariable names the single variable of a bare .npy file.
	DefaultVariable = "data"
)

// Option configures readers and writers.
type Option func(*options)

type options struct {
	log logging.Logger
}

// WithLogger sets the logger receiving dtype conversion warnings.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.log = logging.OrNop(o.log)
	return o
}

// dimsDoc is the YAML body of a "<name>.dims" entry.
type dimsDoc struct {
	Extents []int    `yaml:"extents"`
	Names   []string `yaml:"names,omitempty"`
}

// Variable describes one stored array.
type Variable struct {
	Name string
	// Dtype is the NumPy type string, e.g. "<f8".
	Dtype string
	// Shape is in this module's axis order (axis 0 fastest).
	Shape ndarray.Shape
	// Dims holds per-axis dimension names when recorded.
	Dims []string
	// Bytes is the payload size, elements times item width.
	Bytes int64
}

// Archive is a read-only set of named variables. It is not safe for
// concurrent use.
type Archive struct {
	path string
	zr   *npz.Reader
	keys map[string]bool
	log  logging.Logger
}

// Open opens a .npz archive, or a .npy file exposing the single variable
// DefaultVariable.
func Open(path string, opts ...Option) (*Archive, error) {
	o := gatherOptions(opts...)
	a := &Archive{path: path, log: o.log}
	if strings.EqualFold(filepath.Ext(path), npyExt) {
		if _, err := os.Stat(path); err != nil {
			return nil, ioErrorf("Open", err)
		}
		return a, nil
	}
	zr, err := npz.Open(path)
	if err != nil {
		return nil, ioErrorf("Open", err)
	}
	a.zr = zr
	a.keys = make(map[string]bool, len(zr.Keys()))
	for _, k := range zr.Keys() {
		a.keys[k] = true
	}
	return a, nil
}

// Close releases the archive.
func (a *Archive) Close() error {
	if a.zr == nil {
		return nil
	}
	return a.zr.Close()
}

// Names returns the sorted variable names.
func (a *Archive) Names() []string {
	if a.zr == nil {
		return []string{DefaultVariable}
	}
	var names []string
	for k := range a.keys {
		if strings.HasSuffix(k, npyExt) {
			names = append(names, strings.TrimSuffix(k, npyExt))
		}
	}
	sort.Strings(names)
	return names
}

// Variables describes every variable without reading the payloads. A
// variable that cannot be described is left out and its failure reported
// in the returned error, so callers still see the readable ones.
func (a *Archive) Variables() ([]Variable, error) {
	var result *multierror.Error
	names := a.Names()
	out := make([]Variable, 0, len(names))
	for _, name := range names {
		v, err := a.Describe(name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		out = append(out, v)
	}
	return out, result.ErrorOrNil()
}

// Describe reads the header and dims entry of one variable.
func (a *Archive) Describe(name string) (Variable, error) {
	hdr, err := a.header(name)
	if err != nil {
		return Variable{}, err
	}
	d, err := a.dims(name)
	if err != nil {
		return Variable{}, err
	}
	shape := resolveShape(hdr.Descr.Shape, hdr.Descr.Fortran, d)
	v := Variable{
		Name:  name,
		Dtype: hdr.Descr.Type,
		Shape: shape,
		Bytes: int64(shape.Size() * itemSize(hdr.Descr.Type)),
	}
	if d != nil {
		v.Dims = d.Names
	}
	return v, nil
}

func (a *Archive) header(name string) (*npyio.Header, error) {
	if a.zr != nil {
		if !a.keys[name+npyExt] {
			return nil, a.missing(name)
		}
		hdr := a.zr.Header(name + npyExt)
		if hdr == nil {
			return nil, ioErrorf("Describe", fmt.Errorf("%s: unreadable npy header", name))
		}
		return hdr, nil
	}
	rc, err := a.open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	r, err := npyio.NewReader(rc)
	if err != nil {
		return nil, ioErrorf("Describe", fmt.Errorf("%s: %w", name, err))
	}
	return &r.Header, nil
}

func (a *Archive) missing(name string) error {
	return fmt.Errorf("ndio: %q in %s: %w", name, a.path, ErrNoVariable)
}

// open returns the raw .npy stream of name.
func (a *Archive) open(name string) (io.ReadCloser, error) {
	if a.zr == nil {
		if name != DefaultVariable {
			return nil, a.missing(name)
		}
		f, err := os.Open(a.path)
		if err != nil {
			return nil, ioErrorf("open", err)
		}
		return f, nil
	}
	if !a.keys[name+npyExt] {
		return nil, a.missing(name)
	}
	rc, err := a.zr.Open(name + npyExt)
	if err != nil {
		return nil, ioErrorf("open", err)
	}
	return rc, nil
}

// dims returns the recorded dims entry of name, or nil. The entry is a
// uint8 array holding a YAML document.
func (a *Archive) dims(name string) (*dimsDoc, error) {
	if a.zr == nil || !a.keys[name+dimsExt] {
		return nil, nil
	}
	var raw []uint8
	if err := a.zr.Read(name+dimsExt, &raw); err != nil {
		return nil, ioErrorf("dims", err)
	}
	var d dimsDoc
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, ioErrorf("dims", fmt.Errorf("%s: %w", name, err))
	}
	return &d, nil
}

// itemSize returns the element width of a NumPy type string such as
// "<f8", or 0 when it carries none.
func itemSize(dtype string) int {
	t := strings.TrimLeft(dtype, "<>|=")
	if len(t) < 2 {
		return 0
	}
	n, err := strconv.Atoi(t[1:])
	if err != nil {
		return 0
	}
	return n
}

// resolveShape maps a NumPy header shape to axis-0-fastest order. A dims
// entry whose extents cover the same element count wins.
func resolveShape(header []int, fortran bool, d *dimsDoc) ndarray.Shape {
	hs := ndarray.Shape(header)
	if d != nil && len(d.Extents) > 0 && ndarray.Shape(d.Extents).Size() == hs.Size() {
		return ndarray.Shape(d.Extents).Clone()
	}
	if fortran {
		return hs.Clone()
	}
	return hs.Reversed()
}

// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/katalvlaran/ndcanny/convolution"
	"github.com/katalvlaran/ndcanny/filter"
	"github.com/katalvlaran/ndcanny/internal/logging"
	"github.com/katalvlaran/ndcanny/ndarray"
)

// Code classifies device failures.
type Code int

const (
	CodeNoDevice Code = iota + 1
	CodeShape
	CodeCompile
	CodeBuffer
	CodeDispatch
	CodeReadback
)

var codeNames = map[Code]string{
	CodeNoDevice: "no device",
	CodeShape:    "shape",
	CodeCompile:  "compile",
	CodeBuffer:   "buffer",
	CodeDispatch: "dispatch",
	CodeReadback: "readback",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Error is a device status with a message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("gpu: %s: %s", e.Code, e.Message) }

// Is matches any *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// ErrNoDevice reports that no compute device is available.
var ErrNoDevice = &Error{Code: CodeNoDevice, Message: "no compute device available"}

func errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Device runs periodic 1-D convolutions over contiguous float32 buffers
// laid out with axis 0 fastest.
type Device interface {
	// Convolve1D returns out[n] = Σ_j data[n - K/2 + j]·kernel[K-1-j]
	// along axis, wrapping at the boundaries.
	Convolve1D(data []float32, shape ndarray.Shape, axis int, kernel []float32) ([]float32, error)
	// Name identifies the device.
	Name() string
	Close() error
}

func checkArgs(data []float32, shape ndarray.Shape, axis int, kernel []float32) error {
	if err := shape.Validate(); err != nil {
		return errorf(CodeShape, "%v", err)
	}
	if len(data) != shape.Size() {
		return errorf(CodeShape, "%d elements for shape %v", len(data), shape)
	}
	if axis < 0 || axis >= shape.Rank() {
		return errorf(CodeShape, "axis %d out of range for rank %d", axis, shape.Rank())
	}
	if len(kernel) == 0 {
		return errorf(CodeShape, "empty kernel")
	}
	return nil
}

// CPU is a Device backed by package convolution.
type CPU struct {
	Workers int
}

// Name returns "cpu".
func (CPU) Name() string { return "cpu" }

// Close is a no-op.
func (CPU) Close() error { return nil }

// Convolve1D implements Device.
func (c CPU) Convolve1D(data []float32, shape ndarray.Shape, axis int, kernel []float32) ([]float32, error) {
	if err := checkArgs(data, shape, axis, kernel); err != nil {
		return nil, err
	}
	in, err := ndarray.FromSlice(data, shape...)
	if err != nil {
		return nil, errorf(CodeShape, "%v", err)
	}
	k := ndarray.Must(ndarray.FromSlice(kernel, len(kernel)))
	out, err := convolution.Convolve1D(in, k, axis, convolution.WithWorkers(c.Workers))
	if err != nil {
		return nil, errorf(CodeDispatch, "%v", err)
	}
	return out.Data(), nil
}

// OpenOrCPU returns the compute device, or CPU after logging why none
// could be opened.
func OpenOrCPU(log logging.Logger) Device {
	dev, err := Open()
	if err != nil {
		logging.OrNop(log).Warningf("gpu: falling back to cpu: %v", err)
		return CPU{}
	}
	return dev
}

// Smooth applies a 2n+1 tap Gaussian of standard deviation sigma along
// every axis of arr on dev.
func Smooth(dev Device, arr *ndarray.Array[float32], n int, sigma float64) (*ndarray.Array[float32], error) {
	if err := ndarray.ValidateNotNil(arr); err != nil {
		return nil, fmt.Errorf("gpu: Smooth: %w", err)
	}
	k, err := filter.GaussianKernel[float32](n, sigma)
	if err != nil {
		return nil, fmt.Errorf("gpu: Smooth: %w", err)
	}
	kernel := k.ToSlice()
	shape := arr.Shape().Clone()
	data := arr.ToSlice()
	for axis := range shape {
		if data, err = dev.Convolve1D(data, shape, axis, kernel); err != nil {
			return nil, fmt.Errorf("gpu: Smooth on %s: %w", dev.Name(), err)
		}
	}
	return ndarray.FromSlice(data, shape...)
}

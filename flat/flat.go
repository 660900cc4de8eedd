// SPDX-License-Identifier: MIT

// Package flat exposes the edge detection stages over plain buffers for
// callers that do not use ndarray: images (and fields) are contiguous with
// axis 0 fastest, and a gradient field of a rank D image holds D+1
// components along its outermost axis. Only ranks 2 through 5 are served.
package flat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndcanny/canny"
	"github.com/katalvlaran/ndcanny/filter"
	"github.com/katalvlaran/ndcanny/ndarray"
)

const (
	// MinRank is the lowest image rank the entry points accept.
	MinRank = 2
	// MaxRank is the highest image rank the entry points accept.
	MaxRank = 5
)

// ErrUnsupportedRank indicates a shape outside [MinRank, MaxRank].
var ErrUnsupportedRank = errors.New("flat: unsupported rank")

// wrap wraps data after checking the rank and the buffer length.
func wrap[T any](op string, data []T, shape []int) (*ndarray.Array[T], error) {
	if len(shape) < MinRank || len(shape) > MaxRank {
		return nil, fmt.Errorf("flat: %s: rank %d not in [%d, %d]: %w", op, len(shape), MinRank, MaxRank, ErrUnsupportedRank)
	}
	arr, err := ndarray.FromSlice(data, shape...)
	if err != nil {
		return nil, fmt.Errorf("flat: %s: %w", op, err)
	}
	return arr, nil
}

// field wraps a D+1 component gradient buffer of a rank D image.
func field(op string, data []float64, shape []int) (*canny.Field[float64], error) {
	if len(shape) < MinRank || len(shape) > MaxRank {
		return nil, fmt.Errorf("flat: %s: rank %d not in [%d, %d]: %w", op, len(shape), MinRank, MaxRank, ErrUnsupportedRank)
	}
	fs := ndarray.Shape(shape).Append(len(shape) + 1)
	arr, err := ndarray.FromSlice(data, fs...)
	if err != nil {
		return nil, fmt.Errorf("flat: %s: %w", op, err)
	}
	return canny.NewField(arr)
}

// Gaussian smooths data with a 2n+1 tap Gaussian along every axis.
func Gaussian(data []float64, shape []int, n int, sigma float64) ([]float64, error) {
	arr, err := wrap("Gaussian", data, shape)
	if err != nil {
		return nil, err
	}
	out, err := filter.Gaussian(arr, n, sigma)
	if err != nil {
		return nil, err
	}
	return out.Data(), nil
}

// SmoothSobel returns the normalised gradient field of data, of length
// len(data)·(D+1).
func SmoothSobel(data []float64, shape []int, n int, sigma float64, opts ...canny.Option) ([]float64, error) {
	arr, err := wrap("SmoothSobel", data, shape)
	if err != nil {
		return nil, err
	}
	f, err := canny.SmoothSobel(arr, n, sigma, opts...)
	if err != nil {
		return nil, err
	}
	return f.Array().Data(), nil
}

// ThinEdges returns the non-maximum suppression mask of a field buffer.
func ThinEdges(fieldData []float64, shape []int, opts ...canny.Option) ([]bool, error) {
	f, err := field("ThinEdges", fieldData, shape)
	if err != nil {
		return nil, err
	}
	mask, err := canny.ThinEdges(f, opts...)
	if err != nil {
		return nil, err
	}
	return mask.Data(), nil
}

// DoubleThreshold applies hysteresis to mask; see canny.DoubleThreshold.
func DoubleThreshold(fieldData []float64, mask []bool, shape []int, lower, upper float64, opts ...canny.Option) ([]bool, error) {
	f, err := field("DoubleThreshold", fieldData, shape)
	if err != nil {
		return nil, err
	}
	m, err := wrap("DoubleThreshold", mask, shape)
	if err != nil {
		return nil, err
	}
	out, err := canny.DoubleThreshold(f, m, lower, upper, opts...)
	if err != nil {
		return nil, err
	}
	return out.Data(), nil
}

// SPDX-License-Identifier: MIT

// Package ndcanny is N-dimensional Canny edge detection in pure Go, from
// strided array views up to a command line tool.
//
// The work is organised in subpackages, each usable on its own:
//
//	ndarray/     strided N-d arrays, zero-copy views, cursors, periodic windows,
//	             Hilbert curve arrays
//	convolution/ cyclic N-d and 1-D convolution, kernel composition, FFT
//	filter/      Gaussian kernels and smoothing, central differences, Sobel
//	canny/       homogeneous gradient fields, edge thinning, hysteresis, Detect
//	flood/       breadth-first region growth on periodic grids
//	ndio/        .npy / .npz variables in and out
//	raster/      palettes, PNG and BMP output of rank 2 results
//	gpu/         optional WebGPU convolution (build tag webgpu)
//	flat/        the pipeline over plain buffers, ranks 2 to 5
//
// Every axis wraps, so the whole pipeline treats its domain as a torus.
//
// Quick example, a 6×3 periodic step:
//
//	0 0 0 1 1 1        1 0 1 1 0 1
//	0 0 0 1 1 1   ->   1 0 1 1 0 1
//	0 0 0 1 1 1        1 0 1 1 0 1
//
// finds both the rising edge and the wrapped falling edge.
//
//	go install github.com/katalvlaran/ndcanny/cmd/hypercanny@latest
package ndcanny

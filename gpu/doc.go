// SPDX-License-Identifier: MIT

// Package gpu offloads periodic 1-D convolution to a compute device.
//
// The WebGPU backend is compiled in with the build tag "webgpu"; without
// it Open reports ErrNoDevice and callers fall back to CPU, which runs the
// same arithmetic through package convolution.
package gpu

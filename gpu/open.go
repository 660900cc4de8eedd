// SPDX-License-Identifier: MIT

//go:build !webgpu

package gpu

// Open reports ErrNoDevice; build with -tags webgpu for the WebGPU backend.
func Open() (Device, error) {
	return nil, ErrNoDevice
}

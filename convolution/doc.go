// SPDX-License-Identifier: MIT

// Package convolution implements cyclic N-dimensional convolution by direct
// summation over periodic views.
//
// For every output index n, Convolve reads the window of kernel shape K whose
// origin is n - K/2, wrapping around the data's boundaries, and sums it
// against the kernel traversed with every axis reversed:
//
//	out[n] = Σ_m data[(n - m + K/2) mod shape] * kernel[m]
//
// This is a true convolution (not a correlation), so odd, centred kernels
// behave as expected: a kernel that is zero except for a 1 in its centre is
// the identity.
//
// Convolve1D is the same formula restricted to one axis; Separable chains it
// across axes with double buffering. ConvolvePaddingZero combines two short
// kernels into one without wraparound contamination. ConvolveFFT computes
// the same cyclic result in the frequency domain with gonum's dsp/fourier.
//
// Output elements are independent, so all entry points split their work
// across goroutines (see WithWorkers). Inputs are only read; outputs are
// written at disjoint positions.
package convolution

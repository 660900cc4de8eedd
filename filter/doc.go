// SPDX-License-Identifier: MIT

// Package filter provides the linear filters of the edge pipeline: the
// normalised Gaussian kernel, separable Gaussian smoothing, central
// differences and the Sobel operator, all rank generic and cyclic at the
// boundaries.
//
// The Sobel operator along axis k smooths every other axis with
// [0.25, 0.5, 0.25] and differentiates axis k with [0.5, 0, -0.5]. The sign
// convention makes the response positive where values increase with the
// index.
package filter

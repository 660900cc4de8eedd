// SPDX-License-Identifier: MIT

// Package canny implements a rank-generic Canny-style edge detector.
//
// Stages:
//
//  1. Smoothing: separable Gaussian, or fused into the Sobel kernels
//     (SmoothSobel) so blur and gradient take one pass per axis.
//  2. Gradient field: Sobel response along every axis packed with an inverse
//     magnitude into a homogeneous Field of rank D+1. For each location the
//     first D components form a unit direction and the last one is the
//     strength score 1/|∇|: smaller scores mean stronger edges. A zero
//     gradient stores +Inf and is reported as directionless.
//  3. Thinning (ThinEdges): non-maximum suppression along the rounded
//     gradient direction with periodic neighbours.
//  4. Hysteresis (DoubleThreshold): flood fill from candidates with
//     score ≤ lower through candidates with score ≤ upper.
//
// Detect runs the whole pipeline. Thresholds are scores, not magnitudes:
// "stronger than lower" means score ≤ lower.
//
// Concurrency: smoothing, gradient, normalisation and thinning split their
// output across goroutines with no synchronisation (disjoint writes, one
// byte per boolean). Hysteresis runs serially by default; with more than
// one worker different seeds grow concurrently and every cell is claimed by
// an atomic compare-and-swap on its done flag.
package canny

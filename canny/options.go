// SPDX-License-Identifier: MIT

package canny

import (
	"math"

	"github.com/katalvlaran/ndcanny/flood"
	"github.com/katalvlaran/ndcanny/internal/logging"
)

// Defaults match the hypercanny command line.
const (
	// DefaultSigma is the Gaussian pre-smoothing standard deviation.
	DefaultSigma = 2.4
	// DefaultLower is the definite-edge score threshold.
	DefaultLower = 100.0
	// DefaultUpper is the possible-edge score threshold.
	DefaultUpper = 200.0
	// DefaultWorkers selects GOMAXPROCS goroutines for the parallel stages.
	DefaultWorkers = 0
	// DefaultFused combines Gaussian and Sobel kernels before convolving.
	DefaultFused = true
	// autoHalfWidth derives the half width from sigma.
	autoHalfWidth = -1
)

const (
	panicSigmaInvalid      = "canny: WithSigma: sigma must be finite and >= 0"
	panicHalfWidthInvalid  = "canny: WithHalfWidth: n must be >= 0"
	panicThresholdsInvalid = "canny: WithThresholds: thresholds must not be NaN"
	panicWorkersInvalid    = "canny: WithWorkers: n must be >= 0"
)

// Option configures the pipeline stages.
type Option func(*Options)

// Options is the resolved configuration; public entry points take
// ...Option.
type Options struct {
	sigma     float64
	halfWidth int
	lower     float64
	upper     float64
	workers   int
	conn      flood.Connectivity
	fused     bool
	log       logging.Logger
}

// WithSigma sets the Gaussian standard deviation; 0 disables smoothing.
// Panics on negative or non-finite values.
func WithSigma(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic(panicSigmaInvalid)
	}
	return func(o *Options) { o.sigma = sigma }
}

// WithHalfWidth fixes the Gaussian half width instead of ceil(2σ).
func WithHalfWidth(n int) Option {
	if n < 0 {
		panic(panicHalfWidthInvalid)
	}
	return func(o *Options) { o.halfWidth = n }
}

// WithThresholds sets the hysteresis score thresholds.
func WithThresholds(lower, upper float64) Option {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		panic(panicThresholdsInvalid)
	}
	return func(o *Options) { o.lower, o.upper = lower, upper }
}

// WithWorkers bounds the goroutines of every stage; 1 runs serially.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithConnectivity selects the hysteresis neighbourhood.
func WithConnectivity(c flood.Connectivity) Option {
	return func(o *Options) { o.conn = c }
}

// WithFused toggles the fused smoothing + Sobel kernels.
func WithFused(fused bool) Option {
	return func(o *Options) { o.fused = fused }
}

// WithLogger sets the logger for stage timing (debug level).
func WithLogger(l logging.Logger) Option {
	return func(o *Options) { o.log = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		sigma:     DefaultSigma,
		halfWidth: autoHalfWidth,
		lower:     DefaultLower,
		upper:     DefaultUpper,
		workers:   DefaultWorkers,
		conn:      flood.Full,
		fused:     DefaultFused,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = logging.OrNop(o.log)
	return o
}

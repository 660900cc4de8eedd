// SPDX-License-Identifier: MIT

package convolution

import "github.com/katalvlaran/ndcanny/internal/logging"

// DefaultWorkers selects runtime.GOMAXPROCS(0) goroutines.
const DefaultWorkers = 0

const panicWorkersInvalid = "convolution: WithWorkers: n must be >= 0"

// Option configures a convolution call.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; public entry
// points accept ...Option.
type Options struct {
	workers int
	log     logging.Logger
}

// WithWorkers bounds the number of goroutines; 0 means GOMAXPROCS and 1 runs
// on the calling goroutine. Negative values panic.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) { o.log = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = logging.OrNop(o.log)
	return o
}

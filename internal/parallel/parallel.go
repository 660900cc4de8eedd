// SPDX-License-Identifier: MIT

// Package parallel splits index ranges across goroutines with
// join-before-return semantics: every helper blocks until all work is done,
// so callers never observe partial results.
//
// Chunking follows a simple rule: at most min(workers, n) contiguous chunks
// of ceil(n/workers) items. Work items must write to disjoint locations.
package parallel

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Workers resolves a requested worker count; n < 1 selects GOMAXPROCS.
func Workers(n int) int {
	if n < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// For calls fn(start, end) for contiguous chunks covering [0, n).
// With one worker (or n ≤ 1) fn runs once on the calling goroutine.
func For(n, workers int, fn func(start, end int)) {
	_ = ForErr(context.Background(), n, workers, func(_ context.Context, start, end int) error {
		fn(start, end)
		return nil
	})
}

// ForErr is For with fallible chunks. The first error cancels ctx for the
// remaining chunks and is returned once every started chunk has returned.
func ForErr(ctx context.Context, n, workers int, fn func(ctx context.Context, start, end int) error) error {
	if n <= 0 {
		return nil
	}
	workers = min(Workers(workers), n)
	if workers == 1 {
		return fn(ctx, 0, n)
	}
	chunk := (n + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, start, end)
		})
	}
	return g.Wait()
}

// Each calls fn(i) for every i in [0, n), handing indices out one at a time
// from an atomic counter. It suits items of very uneven cost.
func Each(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers = min(Workers(workers), n)
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var next atomic.Int64
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				fn(i)
			}
		})
	}
	_ = g.Wait()
}

// SPDX-License-Identifier: MIT

package canny_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/ndcanny/canny"
	"github.com/katalvlaran/ndcanny/ndarray"
)

func benchImage(n int) *ndarray.Array[float32] {
	r := rand.New(rand.NewPCG(1, 2))
	a := ndarray.Must(ndarray.New[float32](n, n))
	ndarray.Apply(a, func(float32) float32 { return r.Float32() })
	return a
}

func BenchmarkDetect(b *testing.B) {
	img := benchImage(128)
	for _, fused := range []bool{true, false} {
		name := "separate"
		if fused {
			name = "fused"
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := canny.Detect(img, canny.WithSigma(1.5), canny.WithFused(fused)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDoubleThreshold(b *testing.B) {
	f, err := canny.SobelField(benchImage(256))
	if err != nil {
		b.Fatal(err)
	}
	mask, err := canny.ThinEdges(f)
	if err != nil {
		b.Fatal(err)
	}
	for _, bc := range []struct {
		name    string
		workers int
	}{{"serial", 1}, {"parallel", 0}} {
		workers := bc.workers
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := canny.DoubleThreshold(f, mask, 2, 8, canny.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// SPDX-License-Identifier: MIT

package convolution_test

import (
	"testing"

	"github.com/katalvlaran/ndcanny/convolution"
	"github.com/katalvlaran/ndcanny/ndarray"
)

func BenchmarkConvolve_3x3(b *testing.B) {
	data := ndarray.Must(ndarray.Iota[float64](128, 128))
	kernel := ndarray.Must(ndarray.Full(1.0/9, 3, 3))
	out := ndarray.Must(ndarray.New[float64](128, 128))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := convolution.ConvolveInto(out, data, kernel); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvolve1D_Axis1(b *testing.B) {
	data := ndarray.Must(ndarray.Iota[float64](128, 128))
	kernel := ndarray.Must(ndarray.Full(1.0/9, 9))
	out := ndarray.Must(ndarray.New[float64](128, 128))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := convolution.Convolve1DInto(out, data, kernel, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvolveFFT_9x9(b *testing.B) {
	data := ndarray.Must(ndarray.Iota[float64](128, 128))
	kernel := ndarray.Must(ndarray.Full(1.0/81, 9, 9))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := convolution.ConvolveFFT(data, kernel); err != nil {
			b.Fatal(err)
		}
	}
}

// SPDX-License-Identifier: MIT

// Command hypercanny runs N-dimensional Canny edge detection on a variable
// stored in a .npy or .npz file and prints the resulting edge mask.
//
// Usage:
//
//	hypercanny -f FILE [--var NAME] [--sigma 2.4] [--lower 100] [--upper 200]
//	           [--config FILE] [--png OUT] [--bmp OUT] [--npz OUT]
//	           [--palette rainbow] [--scale 1] [--workers N] [--axial]
//	           [--color] [--debug]
//	hypercanny inspect FILE
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

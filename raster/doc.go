// SPDX-License-Identifier: MIT

// Package raster renders rank 2 arrays and masks as images for quick
// inspection and writes them as PNG or BMP. Axis 0 maps to x, axis 1 to y.
package raster

// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// Palette maps a value in [0, 1] to a colour.
type Palette func(x float64) color.RGBA

// Gray maps 0 to black and 1 to white.
func Gray(x float64) color.RGBA {
	v := channel(x)
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// Rainbow is a rational and polynomial fit of a blue to red rainbow.
func Rainbow(x float64) color.RGBA {
	x2, x3 := x*x, x*x*x
	x4, x5, x6 := x3*x, x3*x2, x3*x3
	r := (0.472 - 0.567*x + 4.05*x2) / (1 + 8.72*x - 19.17*x2 + 14.1*x3)
	g := 0.108932 - 1.22635*x + 27.284*x2 - 98.577*x3 + 163.3*x4 - 131.395*x5 + 40.634*x6
	b := 1 / (1.97 + 3.54*x - 68.5*x2 + 243*x3 - 297*x4 + 125*x5)
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}

// SqrtRainbow is Rainbow of sqrt(x), spending more colours on low values.
func SqrtRainbow(x float64) color.RGBA {
	return Rainbow(math.Sqrt(math.Max(x, 0)))
}

// channel truncates v·255 to a byte, clamping v to [0, 1].
func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v * 255)
}

var palettes = map[string]Palette{
	"gray":         Gray,
	"rainbow":      Rainbow,
	"sqrt-rainbow": SqrtRainbow,
}

// PaletteByName returns one of "gray", "rainbow" or "sqrt-rainbow".
func PaletteByName(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("raster: palette %q (have %v): %w", name, PaletteNames(), ErrPalette)
	}
	return p, nil
}

// PaletteNames lists the registered palette names in order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/katalvlaran/ndcanny/ndarray"
)

var (
	// ErrRank indicates an array that is not rank 2.
	ErrRank = errors.New("raster: only rank 2 arrays can be rendered")
	// ErrPalette indicates an unknown palette name.
	ErrPalette = errors.New("raster: unknown palette")
)

// Option configures Render and RenderMask.
type Option func(*options)

type options struct {
	scale int
}

// WithScale enlarges every cell to an n×n block. Panics when n < 1.
func WithScale(n int) Option {
	if n < 1 {
		panic("raster: WithScale: n must be >= 1")
	}
	return func(o *options) { o.scale = n }
}

func gather(opts ...Option) options {
	o := options{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Render maps the values of arr linearly from [min, max] onto [0, 1] and
// colours them with p. A constant array maps to p(0).
func Render[T ndarray.Number](arr *ndarray.Array[T], p Palette, opts ...Option) (*image.RGBA, error) {
	if err := check(arr); err != nil {
		return nil, err
	}
	lo, hi, _ := ndarray.MinMax[T](arr)
	span := float64(hi) - float64(lo)
	return paint(arr, opts, func(v T) color.RGBA {
		if span == 0 {
			return p(0)
		}
		return p((float64(v) - float64(lo)) / span)
	}), nil
}

// RenderMask draws true cells white and false cells black.
func RenderMask(mask *ndarray.Array[bool], opts ...Option) (*image.RGBA, error) {
	if err := check(mask); err != nil {
		return nil, err
	}
	return paint(mask, opts, func(b bool) color.RGBA {
		if b {
			return Gray(1)
		}
		return Gray(0)
	}), nil
}

// Overlay paints c over dst wherever mask is true. dst must have the size
// of mask enlarged by the same WithScale factor.
func Overlay(dst *image.RGBA, mask *ndarray.Array[bool], c color.RGBA, opts ...Option) error {
	if err := check(mask); err != nil {
		return err
	}
	o := gather(opts...)
	w, h := mask.Shape()[0]*o.scale, mask.Shape()[1]*o.scale
	if b := dst.Bounds(); b.Dx() != w || b.Dy() != h {
		return fmt.Errorf("raster: Overlay: image %v, mask %v at scale %d: %w", b, mask.Shape(), o.scale, ndarray.ErrShapeMismatch)
	}
	origin := dst.Bounds().Min
	for idx, on := range mask.All() {
		if !on {
			continue
		}
		cell := image.Rect(idx[0]*o.scale, idx[1]*o.scale, (idx[0]+1)*o.scale, (idx[1]+1)*o.scale).Add(origin)
		draw.Draw(dst, cell, image.NewUniform(c), image.Point{}, draw.Src)
	}
	return nil
}

func check[T any](arr *ndarray.Array[T]) error {
	if err := ndarray.ValidateNotNil(arr); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if arr.Rank() != 2 {
		return fmt.Errorf("raster: shape %v: %w", arr.Shape(), ErrRank)
	}
	return nil
}

func paint[T any](arr *ndarray.Array[T], opts []Option, colour func(T) color.RGBA) *image.RGBA {
	o := gather(opts...)
	w, h := arr.Shape()[0], arr.Shape()[1]
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for idx, v := range arr.All() {
		img.SetRGBA(idx[0], idx[1], colour(v))
	}
	if o.scale == 1 {
		return img
	}
	big := image.NewRGBA(image.Rect(0, 0, w*o.scale, h*o.scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), img, img.Bounds(), draw.Src, nil)
	return big
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: WritePNG: %w", err)
	}
	return nil
}

// WriteBMP encodes img as BMP.
func WriteBMP(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("raster: WriteBMP: %w", err)
	}
	return nil
}

// Font-Maker - draw glyphs by hand and export them as an OpenType font
// Copyright (C) 2026  The Font-Maker Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package trace converts glyph bitmaps into vector outlines.
//
// Tracing samples every K-th row and column of the bitmap.  Each sample that
// counts as ink is replaced by a filled square of side K·S font design
// units, where S is the scale factor.  Squares are never merged: adjacent
// ink produces adjacent (or overlapping) contours, and isolated pixels
// produce isolated squares.
//
// Bitmap rows run from top to bottom, font coordinates from bottom to top.
// Bitmap row y is mapped to the design space coordinate V − y·S.
package trace

import (
	"errors"
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Params control the conversion from bitmap pixels to design units.
type Params struct {
	// Scale is the size of one bitmap pixel in font design units.
	Scale float64

	// Offset is the design space y coordinate of the top bitmap row.
	Offset float64

	// Stride selects which pixels are sampled: only pixels whose row and
	// column are multiples of Stride are tested.
	Stride int

	// A sample is ink if its alpha is greater than AlphaThreshold ...
	AlphaThreshold uint8

	// ... and the mean of its colour channels is less than DarkThreshold.
	DarkThreshold uint8
}

// DefaultParams map a 400×400 drawing surface onto a 1000 unit em square.
var DefaultParams = Params{
	Scale:          2.5,
	Offset:         800,
	Stride:         4,
	AlphaThreshold: 128,
	DarkThreshold:  128,
}

var (
	errStride = errors.New("trace: stride must be at least 1")
	errScale  = errors.New("trace: scale must be positive")
)

// Validate checks that p describes a usable transformation.
func (p Params) Validate() error {
	if p.Stride < 1 {
		return errStride
	}
	if !(p.Scale > 0) {
		return errScale
	}
	return nil
}

// Matrix returns the transformation from bitmap coordinates to design units.
func (p Params) Matrix() matrix.Matrix {
	return matrix.Matrix{p.Scale, 0, 0, -p.Scale, 0, p.Offset}
}

// IsInk reports whether a pixel is opaque and dark.
func (p Params) IsInk(c color.NRGBA) bool {
	if c.A <= p.AlphaThreshold {
		return false
	}
	sum := int(c.R) + int(c.G) + int(c.B)
	return sum < 3*int(p.DarkThreshold)
}

// IsInk applies the ink test of [DefaultParams].
func IsInk(c color.NRGBA) bool {
	return DefaultParams.IsInk(c)
}

// Contour is a closed polygon in font design units.  The last point is
// implicitly connected to the first.
type Contour []vec.Vec2

// Outline is the traced shape of a glyph.
type Outline []Contour

// IsEmpty reports whether the outline has no contours.
func (o Outline) IsEmpty() bool {
	return len(o) == 0
}

// Bounds returns the smallest rectangle enclosing all contours.
// The zero rectangle is returned for an empty outline.
func (o Outline) Bounds() rect.Rect {
	var bbox rect.Rect
	first := true
	for _, c := range o {
		for _, pt := range c {
			if first || pt.X < bbox.LLx {
				bbox.LLx = pt.X
			}
			if first || pt.Y < bbox.LLy {
				bbox.LLy = pt.Y
			}
			if first || pt.X > bbox.URx {
				bbox.URx = pt.X
			}
			if first || pt.Y > bbox.URy {
				bbox.URy = pt.Y
			}
			first = false
		}
	}
	return bbox
}

// Trace converts a bitmap into an outline.
//
// Pixel coordinates are taken relative to the top-left corner of the image
// bounds.  A bitmap without ink gives an empty outline.
func Trace(img image.Image, p Params) (Outline, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	M := p.Matrix()
	size := float64(p.Stride) * p.Scale

	var res Outline
	b := img.Bounds()
	for y := 0; y < b.Dy(); y += p.Stride {
		for x := 0; x < b.Dx(); x += p.Stride {
			c := pixelAt(img, b.Min.X+x, b.Min.Y+y)
			if !p.IsInk(c) {
				continue
			}

			fx, fy := M.Apply(float64(x), float64(y))
			res = append(res, square(fx, fy, size))
		}
	}
	return res, nil
}

// square returns the square with top-left corner (x, y), as a clockwise
// contour in a y-up coordinate system.
func square(x, y, size float64) Contour {
	return Contour{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y - size},
		{X: x, Y: y - size},
	}
}

func pixelAt(img image.Image, x, y int) color.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

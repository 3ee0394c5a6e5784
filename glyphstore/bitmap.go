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

package glyphstore

import (
	"image"
	"image/color"
	"image/draw"
)

// Size of the drawing surface, in pixels.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

// Background is the colour of an empty drawing surface.
var Background = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// NewBitmap returns a w×h bitmap filled with the background colour.
func NewBitmap(w, h int) *image.NRGBA {
	bmp := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(bmp, bmp.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return bmp
}

// CloneBitmap returns a deep copy of bmp.  The copy always starts at the
// origin.
func CloneBitmap(bmp *image.NRGBA) *image.NRGBA {
	if bmp == nil {
		return nil
	}
	b := bmp.Bounds()
	res := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := bmp.Pix[bmp.PixOffset(b.Min.X, b.Min.Y+y):][:4*b.Dx()]
		copy(res.Pix[res.PixOffset(0, y):], src)
	}
	return res
}

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

// Package canvas implements the drawing surface of the glyph editor.
//
// A Canvas is a fixed-size RGBA bitmap, initially white.  Strokes are
// straight segments of the current brush width with round ends.  The pen
// paints opaque black; the eraser removes colour and leaves transparent
// pixels behind, like the "destination-out" compositing mode of an HTML
// canvas.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"github.com/thelonewolf39/Font-Maker/glyphstore"
)

// Tool selects what a stroke does.
type Tool int

// These are the available tools.
const (
	Pen Tool = iota
	Eraser
)

func (t Tool) String() string {
	switch t {
	case Pen:
		return "pen"
	case Eraser:
		return "eraser"
	default:
		return "tool(" + strconv.Itoa(int(t)) + ")"
	}
}

// Range of brush sizes, in pixels.
const (
	MinBrushSize     = 1
	MaxBrushSize     = 50
	DefaultBrushSize = 3
)

// Canvas is the bitmap being drawn on.
type Canvas struct {
	img   *image.NRGBA
	mask  *image.Alpha
	r     *vector.Rasterizer
	tool  Tool
	brush int
}

// New returns a white w×h canvas with the pen selected.
func New(w, h int) *Canvas {
	return &Canvas{
		img:   glyphstore.NewBitmap(w, h),
		mask:  image.NewAlpha(image.Rect(0, 0, w, h)),
		r:     vector.NewRasterizer(w, h),
		tool:  Pen,
		brush: DefaultBrushSize,
	}
}

// Bounds returns the pixel rectangle of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Tool returns the current tool.
func (c *Canvas) Tool() Tool {
	return c.tool
}

// SetTool selects the tool used for subsequent strokes.
func (c *Canvas) SetTool(t Tool) {
	c.tool = t
}

// BrushSize returns the current brush diameter in pixels.
func (c *Canvas) BrushSize() int {
	return c.brush
}

// SetBrushSize sets the brush diameter.  Values outside the range
// MinBrushSize to MaxBrushSize are clamped.
func (c *Canvas) SetBrushSize(size int) {
	c.brush = min(max(size, MinBrushSize), MaxBrushSize)
}

// Clear fills the canvas with the background colour.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(glyphstore.Background), image.Point{}, draw.Src)
}

// Snapshot returns a copy of the current canvas contents.
func (c *Canvas) Snapshot() *image.NRGBA {
	return glyphstore.CloneBitmap(c.img)
}

// Load clears the canvas and copies bmp onto it.  Pixels of bmp are copied
// unchanged, including their alpha values.
func (c *Canvas) Load(bmp *image.NRGBA) {
	c.Clear()
	if bmp == nil {
		return
	}
	b := bmp.Bounds()
	draw.Draw(c.img, image.Rect(0, 0, b.Dx(), b.Dy()), bmp, b.Min, draw.Src)
}

// At returns the colour of one pixel.
func (c *Canvas) At(x, y int) color.NRGBA {
	return c.img.NRGBAAt(x, y)
}

// Stroke draws a segment from `from` to `to` with the current tool and
// brush size.  Both ends are rounded.  A stroke with from == to draws a dot.
func (c *Canvas) Stroke(from, to vec.Vec2) {
	w, h := c.img.Bounds().Dx(), c.img.Bounds().Dy()
	clear(c.mask.Pix)

	radius := float64(c.brush) / 2
	c.fill(w, h, func(r *vector.Rasterizer) { disc(r, from, radius) })
	c.fill(w, h, func(r *vector.Rasterizer) { disc(r, to, radius) })
	if dx, dy := to.X-from.X, to.Y-from.Y; dx != 0 || dy != 0 {
		c.fill(w, h, func(r *vector.Rasterizer) { band(r, from, to, radius) })
	}

	switch c.tool {
	case Pen:
		draw.DrawMask(c.img, c.img.Bounds(), image.Black, image.Point{}, c.mask, image.Point{}, draw.Over)
	case Eraser:
		c.erase()
	}
}

// fill rasterises one shape and accumulates its coverage into the mask.
func (c *Canvas) fill(w, h int, shape func(*vector.Rasterizer)) {
	c.r.Reset(w, h)
	c.r.DrawOp = draw.Over
	shape(c.r)
	c.r.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})
}

// erase scales the alpha of every pixel by the uncovered part of the mask.
func (c *Canvas) erase() {
	for i, m := range c.mask.Pix {
		if m == 0 {
			continue
		}
		a := &c.img.Pix[4*i+3]
		*a = uint8((uint32(*a)*(255-uint32(m)) + 127) / 255)
		if *a == 0 {
			c.img.Pix[4*i] = 0
			c.img.Pix[4*i+1] = 0
			c.img.Pix[4*i+2] = 0
		}
	}
}

// kappa places the control points of a cubic Bézier approximating a
// quarter circle.
const kappa = 0.5522847498

// disc adds a circle with centre p to the rasteriser.
func disc(r *vector.Rasterizer, p vec.Vec2, radius float64) {
	k := kappa * radius
	x, y := p.X, p.Y
	r.MoveTo(f32(x+radius), f32(y))
	r.CubeTo(f32(x+radius), f32(y+k), f32(x+k), f32(y+radius), f32(x), f32(y+radius))
	r.CubeTo(f32(x-k), f32(y+radius), f32(x-radius), f32(y+k), f32(x-radius), f32(y))
	r.CubeTo(f32(x-radius), f32(y-k), f32(x-k), f32(y-radius), f32(x), f32(y-radius))
	r.CubeTo(f32(x+k), f32(y-radius), f32(x+radius), f32(y-k), f32(x+radius), f32(y))
	r.ClosePath()
}

// band adds the rectangle of width 2·radius around the segment from a to b.
func band(r *vector.Rasterizer, a, b vec.Vec2, radius float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	nx, ny := -dy/l*radius, dx/l*radius
	r.MoveTo(f32(a.X+nx), f32(a.Y+ny))
	r.LineTo(f32(b.X+nx), f32(b.Y+ny))
	r.LineTo(f32(b.X-nx), f32(b.Y-ny))
	r.LineTo(f32(a.X-nx), f32(a.Y-ny))
	r.ClosePath()
}

func f32(x float64) float32 {
	return float32(x)
}

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

// Package preview renders a specimen sheet for an assembled font.
//
// Every glyph of a [fontgen.Bundle], except the ".notdef" placeholder, is
// drawn into a cell of a grid.  The outlines are rasterised directly from the
// traced contours, so the sheet shows exactly what ends up in the font file.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/thelonewolf39/Font-Maker/fontgen"
)

// Options control the layout of a specimen sheet.
type Options struct {
	Columns  int
	CellSize int // width and height of the glyph area, in pixels

	Ink   color.Color
	Paper color.Color

	// Labels adds the glyph name below each cell.
	Labels bool
}

// DefaultOptions give black glyphs on white paper, ten to a row.
var DefaultOptions = Options{
	Columns:  10,
	CellSize: 64,
	Ink:      color.Black,
	Paper:    color.White,
	Labels:   true,
}

const (
	labelSize   = 10 // font size of the labels, in pixels
	labelHeight = 14
	margin      = 4
)

var (
	errNoGlyphs = errors.New("preview: the font has no glyphs to show")
	errLayout   = errors.New("preview: invalid layout")
)

// ParseColor parses a colour given in hexadecimal notation, like "#1e90ff".
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return c, nil
}

// Render draws all glyphs of b onto a new image.
func Render(b *fontgen.Bundle, opts *Options) (*image.NRGBA, error) {
	if opts == nil {
		opts = &DefaultOptions
	}
	if opts.Columns < 1 || opts.CellSize < 8 {
		return nil, errLayout
	}
	ink, paper := opts.Ink, opts.Paper
	if ink == nil {
		ink = DefaultOptions.Ink
	}
	if paper == nil {
		paper = DefaultOptions.Paper
	}

	var glyphs []*fontgen.OutlineGlyph
	for _, g := range b.Glyphs {
		if !g.IsNotdef {
			glyphs = append(glyphs, g)
		}
	}
	if len(glyphs) == 0 {
		return nil, errNoGlyphs
	}

	cols := min(opts.Columns, len(glyphs))
	rows := (len(glyphs) + opts.Columns - 1) / opts.Columns
	cellW := opts.CellSize + 2*margin
	cellH := opts.CellSize + 2*margin
	if opts.Labels {
		cellH += labelHeight
	}
	w, h := cols*cellW, rows*cellH

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	// The vertical range from descender to ascender fills the glyph area.
	extent := float64(b.Ascent) - float64(b.Descent)
	if extent <= 0 {
		extent = float64(b.UnitsPerEm)
	}
	scale := float64(opts.CellSize) / extent

	r := vector.NewRasterizer(w, h)
	for i, g := range glyphs {
		x0 := float64((i%opts.Columns)*cellW + margin)
		y0 := float64((i/opts.Columns)*cellH + margin)
		x0 += (float64(opts.CellSize) - float64(g.AdvanceWidth)*scale) / 2

		for _, contour := range g.Outline {
			if len(contour) == 0 {
				continue
			}
			for j, p := range contour {
				x := float32(x0 + p.X*scale)
				y := float32(y0 + (float64(b.Ascent)-p.Y)*scale)
				if j == 0 {
					r.MoveTo(x, y)
				} else {
					r.LineTo(x, y)
				}
			}
			r.ClosePath()
		}
	}
	r.Draw(img, img.Bounds(), image.NewUniform(ink), image.Point{})

	if opts.Labels {
		err := drawLabels(img, glyphs, opts.Columns, cellW, cellH, ink)
		if err != nil {
			return nil, err
		}
	}

	return img, nil
}

func drawLabels(img draw.Image, glyphs []*fontgen.OutlineGlyph, columns, cellW, cellH int, ink color.Color) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
	}
	for i, g := range glyphs {
		label := g.Name
		width := d.MeasureString(label).Ceil()
		x := (i%columns)*cellW + (cellW-width)/2
		y := (i/columns+1)*cellH - margin
		d.Dot = fixed.P(x, y)
		d.DrawString(label)
	}
	return nil
}

// WritePNG encodes img in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

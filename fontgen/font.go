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

package fontgen

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"

	"github.com/thelonewolf39/Font-Maker/trace"
)

var (
	errNoNotdef      = errors.New("first glyph is not .notdef")
	errUnitsPerEm    = errors.New("invalid units per em")
	errTooManyGlyphs = errors.New("too many glyphs")
	errTooComplex    = errors.New("outline too complex")
)

// maxCharStringLength is the largest Type 2 charstring which font readers
// are required to accept.
const maxCharStringLength = 65535

// Font converts the bundle into an OpenType font with CFF outlines.
func (b *Bundle) Font() (*sfnt.Font, error) {
	if len(b.Glyphs) == 0 || !b.Glyphs[0].IsNotdef {
		return nil, errNoNotdef
	}
	if b.UnitsPerEm < 16 || b.UnitsPerEm > 16384 {
		return nil, errUnitsPerEm
	}
	if len(b.Glyphs) > 0xFFFF {
		return nil, errTooManyGlyphs
	}

	encoding := make([]glyph.ID, 256)
	cmapSubtable := cmap.Format4{}
	outlines := &cff.Outlines{
		Private:  []*type1.PrivateDict{{}},
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: encoding,
	}
	for i, g := range b.Glyphs {
		gid := glyph.ID(i)
		if i > 0 && g.IsNotdef {
			return nil, fmt.Errorf("duplicate %s glyph at GID %d", NotdefName, i)
		}

		if n := charStringBound(g.Outline); n > maxCharStringLength {
			return nil, fmt.Errorf("glyph %q: %w (%d contours, up to %d bytes)",
				g.Name, errTooComplex, len(g.Outline), n)
		}

		cffGlyph := cff.NewGlyph(g.Name, float64(g.AdvanceWidth))
		for _, contour := range g.Outline {
			if len(contour) == 0 {
				continue
			}
			cffGlyph.MoveTo(contour[0].X, contour[0].Y)
			for _, pt := range contour[1:] {
				cffGlyph.LineTo(pt.X, pt.Y)
			}
		}
		outlines.Glyphs = append(outlines.Glyphs, cffGlyph)

		if g.IsNotdef {
			continue
		}
		if g.Char > 0xFFFF {
			return nil, fmt.Errorf("character %s outside the BMP", g.Char.CodePoint())
		}
		cmapSubtable[uint16(g.Char)] = gid
		if g.Char < 256 {
			encoding[g.Char] = gid
		}
	}

	cmapData := cmapSubtable.Encode(0)
	cmapTable := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: cmapData,
		{PlatformID: 3, EncodingID: 1}: cmapData,
	}

	q := 1 / float64(b.UnitsPerEm)
	em := float64(b.UnitsPerEm)
	info := &sfnt.Font{
		FamilyName: b.FamilyName,
		Width:      os2.WidthNormal,
		Weight:     os2.WeightNormal,
		IsRegular:  b.StyleName == "" || b.StyleName == "Regular",

		PermUse: os2.PermInstall,

		UnitsPerEm: b.UnitsPerEm,
		FontMatrix: matrix.Matrix{q, 0, 0, q, 0, 0},

		Ascent:             b.Ascent,
		Descent:            b.Descent,
		LineGap:            funit.Int16(math.Round(0.2 * em)),
		CapHeight:          funit.Int16(math.Round(0.7 * em)),
		XHeight:            funit.Int16(math.Round(0.5 * em)),
		UnderlinePosition:  funit.Float64(-0.1 * em),
		UnderlineThickness: funit.Float64(0.05 * em),

		Outlines:  outlines,
		CMapTable: cmapTable,
	}
	return info, nil
}

// charStringBound returns an upper bound for the length of the charstring
// which encodes the outline.  Every point is written as a relative move or
// line, using at most two numbers and one operator byte.
func charStringBound(outline trace.Outline) int {
	n := 5 + 1 // advance width and endchar
	var prev vec.Vec2
	for _, contour := range outline {
		for _, p := range contour {
			n += numberLen(prev.X, p.X) + numberLen(prev.Y, p.Y) + 1
			prev = p
		}
	}
	return n
}

// numberLen gives the number of bytes used to encode the difference b-a.
func numberLen(a, b float64) int {
	if a != math.Trunc(a) || b != math.Trunc(b) {
		return 5
	}
	switch d := math.Abs(b - a); {
	case d <= 107:
		return 1
	case d <= 1131:
		return 2
	case d <= 32767:
		return 3
	default:
		return 5
	}
}

// Encode serialises the bundle as an OpenType font file.
//
// The font is written to memory first, so that either the complete file or
// an error is returned.
func (b *Bundle) Encode() (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = &GenerationError{Stage: "encode", Err: fmt.Errorf("%v", r)}
		}
	}()

	info, err := b.Font()
	if err != nil {
		return nil, &GenerationError{Stage: "assemble", Err: err}
	}

	buf := &bytes.Buffer{}
	_, err = info.Write(buf)
	if err != nil {
		return nil, &GenerationError{Stage: "encode", Err: err}
	}
	tracer().Infof("encoded %q: %d glyphs, %d bytes", b.FamilyName, len(b.Glyphs), buf.Len())
	return buf.Bytes(), nil
}

// Generate traces all bitmaps in src and returns the assembled bundle
// together with the encoded font file.
func Generate(src Source, opts *Options) (*Bundle, []byte, error) {
	b, err := Assemble(src, opts)
	if err != nil {
		return nil, nil, err
	}
	data, err := b.Encode()
	if err != nil {
		return nil, nil, err
	}
	return b, data, nil
}

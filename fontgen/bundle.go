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
	"fmt"
	"image"
	"strings"

	"github.com/xdg-go/stringprep"
	"seehuhn.de/go/postscript/funit"

	"github.com/thelonewolf39/Font-Maker/charset"
	"github.com/thelonewolf39/Font-Maker/trace"
)

// NotdefName is the glyph name of the placeholder glyph.
const NotdefName = ".notdef"

// DefaultFamilyName is used when no usable family name is given.
const DefaultFamilyName = "MyCustomFont"

// Options control the assembly of a font.
type Options struct {
	FamilyName string
	StyleName  string

	UnitsPerEm   uint16
	Ascent       funit.Int16
	Descent      funit.Int16 // negative
	AdvanceWidth funit.Int16

	Trace trace.Params
}

// DefaultOptions are used for all fonts produced by the editor.
var DefaultOptions = Options{
	FamilyName:   DefaultFamilyName,
	StyleName:    "Regular",
	UnitsPerEm:   1000,
	Ascent:       800,
	Descent:      -200,
	AdvanceWidth: 650,
	Trace:        trace.DefaultParams,
}

// Source provides the committed glyph bitmaps.
// This is implemented by [*glyphstore.Store].
type Source interface {
	Chars() []charset.Char
	Fetch(c charset.Char) (*image.NRGBA, bool)
}

// OutlineGlyph is one glyph of a [Bundle].
type OutlineGlyph struct {
	Name         string
	Char         charset.Char // not used for the placeholder glyph
	IsNotdef     bool
	AdvanceWidth funit.Int16
	Outline      trace.Outline
}

// Bundle is a font, ready to be serialised.
//
// Glyphs[0] is the ".notdef" placeholder.
type Bundle struct {
	FamilyName string
	StyleName  string
	UnitsPerEm uint16
	Ascent     funit.Int16
	Descent    funit.Int16
	Glyphs     []*OutlineGlyph
}

// NumGlyphs returns the number of glyphs, including the placeholder.
func (b *Bundle) NumGlyphs() int {
	return len(b.Glyphs)
}

// Lookup returns the glyph for character c, or nil if c is not in the font.
func (b *Bundle) Lookup(c charset.Char) *OutlineGlyph {
	for _, g := range b.Glyphs {
		if !g.IsNotdef && g.Char == c {
			return g
		}
	}
	return nil
}

// Assemble traces all bitmaps provided by src and collects the resulting
// outlines into a new Bundle.
//
// If src has no committed characters, ErrEmptyGlyphSet is returned and
// nothing is traced.
func Assemble(src Source, opts *Options) (*Bundle, error) {
	if opts == nil {
		opts = &DefaultOptions
	}

	chars := src.Chars()
	if len(chars) == 0 {
		return nil, ErrEmptyGlyphSet
	}
	if err := opts.Trace.Validate(); err != nil {
		return nil, &GenerationError{Stage: "trace", Err: err}
	}

	style := opts.StyleName
	if style == "" {
		style = DefaultOptions.StyleName
	}
	b := &Bundle{
		FamilyName: FamilyName(opts.FamilyName),
		StyleName:  style,
		UnitsPerEm: opts.UnitsPerEm,
		Ascent:     opts.Ascent,
		Descent:    opts.Descent,
	}
	b.Glyphs = append(b.Glyphs, &OutlineGlyph{
		Name:         NotdefName,
		IsNotdef:     true,
		AdvanceWidth: opts.AdvanceWidth,
	})

	for _, c := range chars {
		bmp, ok := src.Fetch(c)
		if !ok {
			err := fmt.Errorf("no bitmap for %s", c.CodePoint())
			return nil, &GenerationError{Stage: "assemble", Err: err}
		}
		outline, err := trace.Trace(bmp, opts.Trace)
		if err != nil {
			return nil, &GenerationError{Stage: "trace", Err: err}
		}
		tracer().Debugf("%s %q: %d contours", c.CodePoint(), c.GlyphName(), len(outline))

		b.Glyphs = append(b.Glyphs, &OutlineGlyph{
			Name:         c.GlyphName(),
			Char:         c,
			AdvanceWidth: opts.AdvanceWidth,
			Outline:      outline,
		})
	}

	return b, nil
}

// FamilyName normalises a user supplied font family name.
//
// Leading and trailing white space is removed and the name is mapped through
// the SASLprep profile.  DefaultFamilyName is returned if nothing usable
// remains.
func FamilyName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultFamilyName
	}
	prepped, err := stringprep.SASLprep.Prepare(name)
	if err != nil {
		tracer().Infof("unusable family name %q: %v", name, err)
		return DefaultFamilyName
	}
	prepped = strings.TrimSpace(prepped)
	if prepped == "" {
		return DefaultFamilyName
	}
	return prepped
}

// FileName returns the file name used for a font with the given family name.
func FileName(family string) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, FamilyName(family))
	return base + ".otf"
}

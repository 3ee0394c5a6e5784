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

// Package glyphstore keeps the bitmaps drawn for the characters of a font.
//
// A [Store] maps each character to the most recent bitmap committed for it.
// Bitmaps are replaced as a whole on every commit and are never patched in
// place: the store keeps private copies of everything it is given and hands
// out copies on every fetch.
//
// A Store is not safe for concurrent use.  The editor is its only caller.
package glyphstore

import (
	"image"
	"image/color"
	"slices"

	"github.com/thelonewolf39/Font-Maker/charset"
)

// Store holds the committed bitmap for every character drawn so far.
type Store struct {
	glyphs map[charset.Char]*image.NRGBA
}

// New returns an empty glyph store.
func New() *Store {
	return &Store{
		glyphs: make(map[charset.Char]*image.NRGBA),
	}
}

// Commit stores bmp as the bitmap for c, replacing any earlier bitmap.
//
// Any content is accepted, including a bitmap without ink.  After the call,
// c counts as drawn.
func (s *Store) Commit(c charset.Char, bmp *image.NRGBA) {
	s.glyphs[c] = CloneBitmap(bmp)
}

// Fetch returns a copy of the bitmap committed for c.  The second return
// value is false if nothing has been committed for c.
func (s *Store) Fetch(c charset.Char) (*image.NRGBA, bool) {
	bmp, ok := s.glyphs[c]
	if !ok {
		return nil, false
	}
	return CloneBitmap(bmp), true
}

// DrawnCount returns the number of distinct characters with a committed
// bitmap.
func (s *Store) DrawnCount() int {
	return len(s.glyphs)
}

// IsDrawn reports whether a bitmap has been committed for c.
func (s *Store) IsDrawn(c charset.Char) bool {
	_, ok := s.glyphs[c]
	return ok
}

// Chars returns the characters with a committed bitmap, in increasing
// code point order.
func (s *Store) Chars() []charset.Char {
	res := make([]charset.Char, 0, len(s.glyphs))
	for c := range s.glyphs {
		res = append(res, c)
	}
	slices.Sort(res)
	return res
}

// Inked reports whether the bitmap committed for c contains at least one
// pixel for which isInk returns true.  Characters without a committed bitmap
// are not inked.
func (s *Store) Inked(c charset.Char, isInk func(color.NRGBA) bool) bool {
	bmp, ok := s.glyphs[c]
	if !ok {
		return false
	}
	b := bmp.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isInk(bmp.NRGBAAt(x, y)) {
				return true
			}
		}
	}
	return false
}

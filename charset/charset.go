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

// Package charset describes the characters a font is drawn for.
//
// A [Set] is an ordered, immutable sequence of characters.  The order
// defines the index used by the editor to step through the characters, and
// the length of the set is the total used for progress reporting.
package charset

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"unicode/utf8"
)

// Char identifies a character by its Unicode code point.
type Char rune

// SpaceName is the glyph name used for the space character.
const SpaceName = "space"

// GlyphName returns the name under which the glyph for c is stored in a font.
//
// The space character has no usable literal name and is stored as "space".
// All other characters use their own text as the glyph name.
func (c Char) GlyphName() string {
	if c == ' ' {
		return SpaceName
	}
	return string(rune(c))
}

// String returns a label for c which is suitable for display.
func (c Char) String() string {
	if c == ' ' {
		return "Space"
	}
	return string(rune(c))
}

// CodePoint returns c in the usual "U+XXXX" notation.
func (c Char) CodePoint() string {
	return fmt.Sprintf("U+%04X", rune(c))
}

// ParseCodePoint parses a string in "U+XXXX" notation.
func ParseCodePoint(s string) (Char, error) {
	if len(s) < 3 || (s[0] != 'U' && s[0] != 'u') || s[1] != '+' {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	x, err := strconv.ParseUint(s[2:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", s, err)
	}
	c := Char(x)
	if !utf8.ValidRune(rune(c)) {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return c, nil
}

var (
	// ErrEmpty is returned when a character set would contain no characters.
	ErrEmpty = errors.New("empty character set")

	// ErrDuplicate is returned when a character occurs more than once.
	ErrDuplicate = errors.New("duplicate character")

	// ErrUnsupported is returned for characters which cannot be mapped
	// in the font.
	ErrUnsupported = errors.New("unsupported character")
)

// Set is an ordered sequence of distinct characters.
type Set struct {
	chars []Char
	index map[Char]int
}

// New returns a new character set containing the given characters, in order.
//
// Characters must be distinct, valid Unicode scalar values in the Basic
// Multilingual Plane.
func New(chars ...Char) (*Set, error) {
	if len(chars) == 0 {
		return nil, ErrEmpty
	}

	s := &Set{
		chars: make([]Char, len(chars)),
		index: make(map[Char]int, len(chars)),
	}
	for i, c := range chars {
		if !utf8.ValidRune(rune(c)) || c > 0xFFFF {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, c.CodePoint())
		}
		if _, seen := s.index[c]; seen {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, rune(c))
		}
		s.chars[i] = c
		s.index[c] = i
	}
	return s, nil
}

// Parse returns a character set containing the characters of text, in order.
func Parse(text string) (*Set, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrUnsupported)
	}
	var chars []Char
	for _, r := range text {
		chars = append(chars, Char(r))
	}
	return New(chars...)
}

// Len returns the number of characters in the set.
func (s *Set) Len() int {
	return len(s.chars)
}

// At returns the i-th character of the set.
func (s *Set) At(i int) Char {
	return s.chars[i]
}

// Index returns the position of c in the set.
func (s *Set) Index(c Char) (int, bool) {
	i, ok := s.index[c]
	return i, ok
}

// Contains reports whether c is a member of the set.
func (s *Set) Contains(c Char) bool {
	_, ok := s.index[c]
	return ok
}

// All iterates over the characters of the set, in order.
func (s *Set) All() iter.Seq2[int, Char] {
	return func(yield func(int, Char) bool) {
		for i, c := range s.chars {
			if !yield(i, c) {
				return
			}
		}
	}
}

// String returns the characters of the set as a string.
func (s *Set) String() string {
	rr := make([]rune, len(s.chars))
	for i, c := range s.chars {
		rr[i] = rune(c)
	}
	return string(rr)
}

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

package charset

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	if n := Default.Len(); n != 92 {
		t.Errorf("expected 92 characters, got %d", n)
	}
	if c := Default.At(0); c != 'A' {
		t.Errorf("first character: got %q, want 'A'", rune(c))
	}
	if c := Default.At(Default.Len() - 1); c != ' ' {
		t.Errorf("last character: got %q, want ' '", rune(c))
	}
	if Default.String() != DefaultChars {
		t.Errorf("round trip failed: %q", Default.String())
	}
	for i, c := range Default.All() {
		j, ok := Default.Index(c)
		if !ok || j != i {
			t.Errorf("Index(%q) = %d, %t, want %d", rune(c), j, ok, i)
		}
	}
}

func TestGlyphName(t *testing.T) {
	cases := []struct {
		c    Char
		name string
		text string
	}{
		{'A', "A", "A"},
		{'z', "z", "z"},
		{'/', "/", "/"},
		{' ', "space", "Space"},
		{'ä', "ä", "ä"},
	}
	for _, test := range cases {
		if got := test.c.GlyphName(); got != test.name {
			t.Errorf("%U: GlyphName() = %q, want %q", rune(test.c), got, test.name)
		}
		if got := test.c.String(); got != test.text {
			t.Errorf("%U: String() = %q, want %q", rune(test.c), got, test.text)
		}
	}
}

func TestNewErrors(t *testing.T) {
	cases := []struct {
		chars []Char
		err   error
	}{
		{nil, ErrEmpty},
		{[]Char{'a', 'b', 'a'}, ErrDuplicate},
		{[]Char{'a', 0xD800}, ErrUnsupported},
		{[]Char{0x1F600}, ErrUnsupported},
	}
	for _, test := range cases {
		_, err := New(test.chars...)
		if !errors.Is(err, test.err) {
			t.Errorf("New(%q): got error %v, want %v", test.chars, err, test.err)
		}
	}
}

func TestCodePoint(t *testing.T) {
	for _, c := range []Char{'A', ' ', '~', 'ß', 0x20AC} {
		s := c.CodePoint()
		d, err := ParseCodePoint(s)
		if err != nil {
			t.Fatal(err)
		}
		if d != c {
			t.Errorf("%s: got %U", s, rune(d))
		}
	}

	for _, bad := range []string{"", "U+", "0041", "U+XYZ", "U+D800"} {
		if _, err := ParseCodePoint(bad); err == nil {
			t.Errorf("ParseCodePoint(%q) succeeded", bad)
		}
	}
}

func TestContains(t *testing.T) {
	s, err := Parse("xyz")
	if err != nil {
		t.Fatal(err)
	}
	if !s.Contains('y') {
		t.Error("'y' not found")
	}
	if s.Contains('A') {
		t.Error("unexpected 'A'")
	}
	if _, ok := s.Index('A'); ok {
		t.Error("unexpected index for 'A'")
	}
}

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

// DefaultChars lists the characters of the [Default] set.
const DefaultChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#$%^&*()_+-=[]{}|;:'\",.<>?/ "

// Default is the character set offered by the editor when nothing else is
// configured: upper and lower case Latin letters, digits, ASCII punctuation
// and the space character.
var Default = mustParse(DefaultChars)

func mustParse(text string) *Set {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

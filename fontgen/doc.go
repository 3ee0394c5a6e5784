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

// Package fontgen assembles traced glyph outlines into an OpenType font.
//
// [Assemble] walks the committed bitmaps of a glyph store, traces each of
// them with the [trace] package, and collects the results into a [Bundle].
// The bundle always starts with a ".notdef" placeholder glyph, followed by
// one glyph per committed character in increasing code point order.  All
// glyphs share the same advance width.
//
// [Bundle.Encode] serialises a bundle as an OpenType font with CFF outlines.
// [Generate] combines both steps; either a complete font file is returned or
// an error, never partial output.
//
// Exporting without any committed character fails with [ErrEmptyGlyphSet].
// All other failures are reported as a [*GenerationError].
package fontgen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontmaker.fontgen'.
func tracer() tracing.Trace {
	return tracing.Select("fontmaker.fontgen")
}

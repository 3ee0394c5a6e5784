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
	"errors"
)

// ErrEmptyGlyphSet is returned when a font is requested before any character
// has been committed.
var ErrEmptyGlyphSet = errors.New("no characters have been drawn")

// GenerationError reports a failure while tracing, assembling or serialising
// a font.
type GenerationError struct {
	Stage string // "trace", "assemble" or "encode"
	Err   error
}

func (err *GenerationError) Error() string {
	msg := "font generation failed"
	if err.Stage != "" {
		msg += " (" + err.Stage + ")"
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *GenerationError) Unwrap() error {
	return err.Err
}

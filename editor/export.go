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

package editor

import (
	"errors"
	"fmt"

	"github.com/thelonewolf39/Font-Maker/fontgen"
)

// User facing messages.
const (
	NoticeEmpty  = "Please draw at least one character before downloading!"
	NoticeFailed = "Error generating font. Please try again."
)

// Export is a generated font, ready to be saved.
type Export struct {
	FileName string
	Data     []byte
	Bundle   *fontgen.Bundle

	// Message is the confirmation shown to the user.
	Message string
}

// ExportError is returned by RequestExport.  Notice is the message shown to
// the user, Err the underlying cause.
type ExportError struct {
	Notice string
	Err    error
}

func (err *ExportError) Error() string {
	return err.Notice + " (" + err.Err.Error() + ")"
}

func (err *ExportError) Unwrap() error {
	return err.Err
}

// RequestExport generates a font from all committed characters.  The
// canvas is not committed; see [Session.Download].
//
// On failure, the returned error is an [*ExportError].  If nothing has been
// committed, it wraps [fontgen.ErrEmptyGlyphSet].
func (s *Session) RequestExport(familyName string) (*Export, error) {
	opts := s.font
	opts.FamilyName = familyName
	b, data, err := fontgen.Generate(s.store, &opts)
	if errors.Is(err, fontgen.ErrEmptyGlyphSet) {
		tracer().Infof("export requested before drawing")
		return nil, &ExportError{Notice: NoticeEmpty, Err: err}
	} else if err != nil {
		tracer().Errorf("font generation failed: %v", err)
		return nil, &ExportError{Notice: NoticeFailed, Err: err}
	}

	tracer().Infof("exported %q, %d glyphs", b.FamilyName, b.NumGlyphs())
	return &Export{
		FileName: fontgen.FileName(b.FamilyName),
		Data:     data,
		Bundle:   b,
		Message:  fmt.Sprintf("Font \"%s\" has been generated successfully!", b.FamilyName),
	}, nil
}

// Download commits the canvas for the current character and then calls
// RequestExport.  Since the current character is always committed, the
// resulting font has at least one glyph besides ".notdef".
func (s *Session) Download(familyName string) (*Export, error) {
	s.Save()
	return s.RequestExport(familyName)
}

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

// Package editor implements the editing session of the font maker.
//
// A [Session] connects the drawing surface, the glyph store and the
// character set.  Exactly one character is current at any time.  Switching
// to another character commits the canvas for the current one first, and
// then loads the stored bitmap of the new character (or a blank canvas).
//
// The three calls the user interface needs to make are collected in the
// [Commands] interface.
package editor

import (
	"errors"
	"fmt"
	"image"

	"github.com/npillmayer/schuko/tracing"
	"seehuhn.de/go/geom/vec"

	"github.com/thelonewolf39/Font-Maker/canvas"
	"github.com/thelonewolf39/Font-Maker/charset"
	"github.com/thelonewolf39/Font-Maker/fontgen"
	"github.com/thelonewolf39/Font-Maker/glyphstore"
)

// tracer traces with key 'fontmaker.editor'.
func tracer() tracing.Trace {
	return tracing.Select("fontmaker.editor")
}

// ErrIndex is returned when a character outside the character set is
// selected.
var ErrIndex = errors.New("character not in the character set")

// Commands is the command interface between the editor front end and the
// glyph storage.
type Commands interface {
	// Commit stores the bitmap for a character, replacing earlier versions.
	Commit(c charset.Char, bmp *image.NRGBA)

	// Fetch returns the committed bitmap for a character.
	Fetch(c charset.Char) (*image.NRGBA, bool)

	// RequestExport generates a font from all committed characters.
	RequestExport(familyName string) (*Export, error)
}

var _ Commands = (*Session)(nil)

// Config describes a new session.
// The zero value is valid and selects the defaults.
type Config struct {
	Chars  *charset.Set // default: charset.Default
	Width  int          // default: glyphstore.DefaultWidth
	Height int          // default: glyphstore.DefaultHeight

	// Font contains the options for font generation.  The family name is
	// taken from the argument of RequestExport.
	Font *fontgen.Options
}

// Session is one run of the editor.
type Session struct {
	chars  *charset.Set
	store  *glyphstore.Store
	canvas *canvas.Canvas
	font   fontgen.Options
	cur    int
}

// New starts a new editing session.  The first character of the set is
// current and the canvas is blank.
func New(cfg *Config) *Session {
	if cfg == nil {
		cfg = &Config{}
	}
	chars := cfg.Chars
	if chars == nil {
		chars = charset.Default
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = glyphstore.DefaultWidth
	}
	if h <= 0 {
		h = glyphstore.DefaultHeight
	}
	font := fontgen.DefaultOptions
	if cfg.Font != nil {
		font = *cfg.Font
	}

	return &Session{
		chars:  chars,
		store:  glyphstore.New(),
		canvas: canvas.New(w, h),
		font:   font,
	}
}

// Chars returns the character set of the session.
func (s *Session) Chars() *charset.Set {
	return s.chars
}

// Current returns the character being drawn.
func (s *Session) Current() charset.Char {
	return s.chars.At(s.cur)
}

// Index returns the position of the current character in the set.
func (s *Session) Index() int {
	return s.cur
}

// Select makes the i-th character of the set current.
func (s *Session) Select(i int) error {
	if i < 0 || i >= s.chars.Len() {
		return fmt.Errorf("%w: index %d", ErrIndex, i)
	}
	s.Save()
	s.cur = i
	bmp, ok := s.store.Fetch(s.Current())
	if ok {
		s.canvas.Load(bmp)
	} else {
		s.canvas.Clear()
	}
	tracer().Debugf("selected %s (%d/%d)", s.Current().CodePoint(), i+1, s.chars.Len())
	return nil
}

// SelectChar makes c the current character.
func (s *Session) SelectChar(c charset.Char) error {
	i, ok := s.chars.Index(c)
	if !ok {
		return fmt.Errorf("%w: %s", ErrIndex, c.CodePoint())
	}
	return s.Select(i)
}

// Next selects the character after the current one.  At the end of the set
// nothing happens and false is returned.
func (s *Session) Next() bool {
	if s.cur+1 >= s.chars.Len() {
		return false
	}
	return s.Select(s.cur+1) == nil
}

// Prev selects the character before the current one.  At the start of the
// set nothing happens and false is returned.
func (s *Session) Prev() bool {
	if s.cur == 0 {
		return false
	}
	return s.Select(s.cur-1) == nil
}

// Stroke draws on the canvas with the current tool.
func (s *Session) Stroke(from, to vec.Vec2) {
	s.canvas.Stroke(from, to)
}

// SetTool selects the pen or the eraser.
func (s *Session) SetTool(t canvas.Tool) {
	s.canvas.SetTool(t)
}

// SetBrushSize changes the brush diameter.  See [canvas.Canvas.SetBrushSize].
func (s *Session) SetBrushSize(size int) {
	s.canvas.SetBrushSize(size)
}

// Clear blanks the canvas.  The store is not changed until the next commit.
func (s *Session) Clear() {
	s.canvas.Clear()
}

// Canvas gives read access to the drawing surface.
func (s *Session) Canvas() *canvas.Canvas {
	return s.canvas
}

// Save commits the canvas for the current character.
func (s *Session) Save() {
	s.Commit(s.Current(), s.canvas.Snapshot())
}

// Commit implements the [Commands] interface.
func (s *Session) Commit(c charset.Char, bmp *image.NRGBA) {
	s.store.Commit(c, bmp)
}

// Fetch implements the [Commands] interface.
func (s *Session) Fetch(c charset.Char) (*image.NRGBA, bool) {
	return s.store.Fetch(c)
}

// IsDrawn reports whether a bitmap has been committed for c.
func (s *Session) IsDrawn(c charset.Char) bool {
	return s.store.IsDrawn(c)
}

// Store returns the glyph store of the session.
func (s *Session) Store() *glyphstore.Store {
	return s.store
}

// Progress summarises how many characters of the set have been drawn.
type Progress struct {
	Drawn int
	Total int
}

func (p Progress) String() string {
	return fmt.Sprintf("Characters drawn: %d/%d", p.Drawn, p.Total)
}

// Progress returns the number of drawn characters.  Characters committed
// from outside the set are counted too, since they end up in the font.
func (s *Session) Progress() Progress {
	return Progress{Drawn: s.store.DrawnCount(), Total: s.chars.Len()}
}

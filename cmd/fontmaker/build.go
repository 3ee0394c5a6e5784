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

package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/thelonewolf39/Font-Maker/charset"
	"github.com/thelonewolf39/Font-Maker/editor"
	"github.com/thelonewolf39/Font-Maker/fontgen"
	"github.com/thelonewolf39/Font-Maker/preview"
	"github.com/thelonewolf39/Font-Maker/trace"
)

type buildCmd struct {
	Dir string `arg:"" type:"path" help:"Directory containing the drawn images."`

	Name   string  `short:"n" default:"MyCustomFont" help:"Family name of the font."`
	Out    string  `short:"o" type:"path" default:"." help:"Directory to write the font to."`
	Chars  string  `help:"Characters to include, instead of the default set."`
	Stride int     `default:"4" help:"Sample every n-th pixel row and column."`
	Scale  float64 `default:"2.5" help:"Size of one pixel in font design units."`

	Preview string `type:"path" placeholder:"FILE" help:"Also write a PNG specimen sheet to FILE."`
	Ink     string `default:"#000000" help:"Ink colour of the specimen sheet."`
	Paper   string `default:"#ffffff" help:"Paper colour of the specimen sheet."`
}

func (cmd *buildCmd) Run(g *Globals) error {
	set, err := charSet(cmd.Chars)
	if err != nil {
		return err
	}

	opts := fontgen.DefaultOptions
	opts.Trace.Stride = cmd.Stride
	opts.Trace.Scale = cmd.Scale
	err = opts.Trace.Validate()
	if err != nil {
		return err
	}
	s := editor.New(&editor.Config{Chars: set, Font: &opts})

	images, err := loadImages(cmd.Dir, set)
	if err != nil {
		return err
	}

	progress := newProgressWriter(g.Stdout)
	extra, err := foreignImages(cmd.Dir, set)
	if err != nil {
		return err
	}
	for _, c := range extra {
		tracer().Infof("%s is not in the character set", fileName(c))
		progress.Warn(fmt.Sprintf("warning: %s (%s) is not in the character set, skipped", fileName(c), c))
	}
	for i, c := range set.All() {
		img := images[i]
		if img == nil {
			continue
		}
		s.Commit(c, img)
		if !s.Store().Inked(c, trace.IsInk) {
			tracer().Infof("%s %q has no ink", c.CodePoint(), c)
			progress.Warn(fmt.Sprintf("warning: %s (%s) has no ink", c.CodePoint(), c))
		}
		progress.Update(s.Progress())
	}
	progress.Done()

	exp, err := s.RequestExport(cmd.Name)
	if err != nil {
		var expErr *editor.ExportError
		if errors.As(err, &expErr) {
			fmt.Fprintln(g.Stdout, expErr.Notice)
		}
		return err
	}

	err = os.MkdirAll(cmd.Out, 0o755)
	if err != nil {
		return err
	}
	fname := filepath.Join(cmd.Out, exp.FileName)
	err = os.WriteFile(fname, exp.Data, 0o644)
	if err != nil {
		return err
	}
	tracer().Infof("wrote %s (%d bytes)", fname, len(exp.Data))

	if cmd.Preview != "" {
		err = cmd.writePreview(exp.Bundle)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(g.Stdout, exp.Message)
	return nil
}

func (cmd *buildCmd) writePreview(b *fontgen.Bundle) error {
	opts := preview.DefaultOptions
	var err error
	opts.Ink, err = preview.ParseColor(cmd.Ink)
	if err != nil {
		return err
	}
	opts.Paper, err = preview.ParseColor(cmd.Paper)
	if err != nil {
		return err
	}
	img, err := preview.Render(b, &opts)
	if err != nil {
		return err
	}
	return writeImage(cmd.Preview, img)
}

// loadImages decodes the image files of all characters in set.
// Missing files give nil entries.
func loadImages(dir string, set *charset.Set) ([]*image.NRGBA, error) {
	images := make([]*image.NRGBA, set.Len())

	var group errgroup.Group
	for i, c := range set.All() {
		fname := filepath.Join(dir, fileName(c))
		group.Go(func() error {
			img, err := readImage(fname)
			if errors.Is(err, os.ErrNotExist) {
				return nil
			} else if err != nil {
				return fmt.Errorf("%s: %w", fname, err)
			}
			images[i] = img
			return nil
		})
	}
	err := group.Wait()
	if err != nil {
		return nil, err
	}
	return images, nil
}

// foreignImages lists the characters which have an image file in dir, but
// are not part of set.
func foreignImages(dir string, set *charset.Set) ([]charset.Char, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var res []charset.Char
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), ".png") {
			continue
		}
		c, err := charset.ParseCodePoint(strings.TrimSuffix(name, filepath.Ext(name)))
		if err != nil || set.Contains(c) {
			continue
		}
		res = append(res, c)
	}
	return res, nil
}

func readImage(fname string) (*image.NRGBA, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, err
	}
	if res, ok := img.(*image.NRGBA); ok && res.Bounds().Min == (image.Point{}) {
		return res, nil
	}
	b := img.Bounds()
	res := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(res, res.Bounds(), img, b.Min, draw.Src)
	return res, nil
}

// progressWriter shows the number of characters drawn.  On a terminal the
// count is updated in place, otherwise only the final count is printed.
type progressWriter struct {
	w      io.Writer
	isTerm bool
	last   string
}

func newProgressWriter(w io.Writer) *progressWriter {
	p := &progressWriter{w: w}
	if f, ok := w.(*os.File); ok {
		p.isTerm = term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p *progressWriter) Update(progress editor.Progress) {
	p.last = progress.String()
	if p.isTerm {
		fmt.Fprint(p.w, "\r"+p.last)
	}
}

func (p *progressWriter) Warn(msg string) {
	if p.isTerm && p.last != "" {
		fmt.Fprint(p.w, "\r\033[K")
	}
	fmt.Fprintln(p.w, msg)
	if p.isTerm && p.last != "" {
		fmt.Fprint(p.w, p.last)
	}
}

func (p *progressWriter) Done() {
	if p.last == "" {
		return
	}
	if p.isTerm {
		fmt.Fprintln(p.w)
	} else {
		fmt.Fprintln(p.w, p.last)
	}
}

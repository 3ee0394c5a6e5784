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
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/thelonewolf39/Font-Maker/charset"
	"github.com/thelonewolf39/Font-Maker/glyphstore"
	"github.com/thelonewolf39/Font-Maker/preview"
)

type templateCmd struct {
	Dir   string `arg:"" type:"path" help:"Directory for the template images."`
	Chars string `help:"Characters to include, instead of the default set."`
	Force bool   `short:"f" help:"Overwrite existing images."`
}

// fileName returns the name of the image file for character c.
func fileName(c charset.Char) string {
	return c.CodePoint() + ".png"
}

func (cmd *templateCmd) Run(g *Globals) error {
	set, err := charSet(cmd.Chars)
	if err != nil {
		return err
	}
	err = os.MkdirAll(cmd.Dir, 0o755)
	if err != nil {
		return err
	}

	written := 0
	for _, c := range set.All() {
		fname := filepath.Join(cmd.Dir, fileName(c))
		if !cmd.Force {
			if _, err := os.Stat(fname); err == nil {
				tracer().Debugf("keeping %s", fname)
				continue
			}
		}
		bmp := glyphstore.NewBitmap(glyphstore.DefaultWidth, glyphstore.DefaultHeight)
		err := writeImage(fname, bmp)
		if err != nil {
			return err
		}
		written++
	}

	fmt.Fprintf(g.Stdout, "wrote %d of %d templates to %s\n", written, set.Len(), cmd.Dir)
	return nil
}

func writeImage(fname string, img image.Image) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()
	return preview.WritePNG(fd, img)
}

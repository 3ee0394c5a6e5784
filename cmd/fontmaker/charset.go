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
	"text/tabwriter"

	"golang.org/x/text/unicode/runenames"
)

type charsetCmd struct {
	Chars string `help:"Characters to list, instead of the default set."`
}

func (cmd *charsetCmd) Run(g *Globals) error {
	set, err := charSet(cmd.Chars)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(g.Stdout, 0, 8, 2, ' ', 0)
	for _, c := range set.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.CodePoint(), c, c.GlyphName(), runenames.Name(rune(c)))
	}
	return w.Flush()
}

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

// Fontmaker turns hand drawn character images into an OpenType font.
//
// Usage:
//
//	fontmaker template DIR      write one blank image per character
//	fontmaker build DIR         trace the drawn images and write the font
//	fontmaker charset           list the characters of the character set
//
// The images are 400×400 PNG files named after the code point of their
// character, for example "U+0041.png" for the letter A.  Black, opaque
// pixels count as ink.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"

	"github.com/thelonewolf39/Font-Maker/charset"
	"github.com/thelonewolf39/Font-Maker/internal/buildinfo"
	"github.com/thelonewolf39/Font-Maker/internal/profile"
)

// tracer traces with key 'fontmaker.cli'.
func tracer() tracing.Trace {
	return tracing.Select("fontmaker.cli")
}

// Globals are the flags shared by all commands.
type Globals struct {
	Verbose    bool             `short:"v" help:"Print diagnostic messages."`
	CPUProfile string           `name:"cpuprofile" type:"path" placeholder:"FILE" help:"Write a CPU profile to FILE."`
	MemProfile string           `name:"memprofile" type:"path" placeholder:"FILE" help:"Write a memory profile to FILE."`
	Version    kong.VersionFlag `help:"Show the version and exit."`

	Stdout io.Writer `kong:"-"`
}

// charSet returns the character set selected by a --chars flag.
func charSet(chars string) (*charset.Set, error) {
	if chars == "" {
		return charset.Default, nil
	}
	return charset.Parse(chars)
}

type cli struct {
	Globals

	Template templateCmd `cmd:"" help:"Write a blank drawing template for every character."`
	Build    buildCmd    `cmd:"" help:"Build a font from the drawn templates."`
	Charset  charsetCmd  `cmd:"" help:"List the characters of the character set."`
}

var configFiles = []string{"/etc/fontmaker.json", "~/.config/fontmaker.json"}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fontmaker:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, options ...kong.Option) error {
	var c cli
	options = append([]kong.Option{
		kong.Name("fontmaker"),
		kong.Description("Draw characters by hand and turn them into an OpenType font."),
		kong.Vars{"version": buildinfo.Short("fontmaker")},
		kong.Writers(stdout, stderr),
		kong.Configuration(kong.JSON, configFiles...),
		kong.UsageOnError(),
	}, options...)
	parser, err := kong.New(&c, options...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := setupTracing(c.Verbose); err != nil {
		return err
	}
	c.Stdout = stdout

	stop, err := profile.Start(c.CPUProfile, c.MemProfile)
	if err != nil {
		return err
	}
	defer stop()

	return ctx.Run(&c.Globals)
}

// setupTracing sends diagnostics of all fontmaker packages to the Go
// standard logger.  Without --verbose only errors are shown.
func setupTracing(verbose bool) error {
	level := "Error"
	if verbose {
		level = "Debug"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.fontmaker.cli":     level,
		"trace.fontmaker.editor":  level,
		"trace.fontmaker.fontgen": level,
	}
	err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true))
	if err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

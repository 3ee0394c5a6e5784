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

package trace

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	black = color.NRGBA{A: 0xFF}
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func filled(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestIsInk(t *testing.T) {
	cases := []struct {
		c   color.NRGBA
		ink bool
	}{
		{black, true},
		{white, false},
		{color.NRGBA{}, false},                                 // transparent
		{color.NRGBA{A: 128}, false},                           // alpha not above threshold
		{color.NRGBA{A: 129}, true},                            // just opaque enough
		{color.NRGBA{R: 127, G: 127, B: 127, A: 255}, true},    // dark grey
		{color.NRGBA{R: 128, G: 128, B: 128, A: 255}, false},   // mid grey
		{color.NRGBA{R: 255, G: 0, B: 0, A: 255}, true},        // mean 85
		{color.NRGBA{R: 255, G: 255, B: 0, A: 255}, false},     // mean 170
		{color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0x40}, false}, // dark but faint
	}
	for _, test := range cases {
		if got := IsInk(test.c); got != test.ink {
			t.Errorf("IsInk(%v) = %t, want %t", test.c, got, test.ink)
		}
	}
}

func TestBlank(t *testing.T) {
	for _, img := range []*image.NRGBA{
		filled(400, 400, white),
		filled(17, 5, white),
		filled(8, 8, color.NRGBA{}),
	} {
		out, err := Trace(img, DefaultParams)
		if err != nil {
			t.Fatal(err)
		}
		if !out.IsEmpty() {
			t.Errorf("%v: got %d contours for a blank bitmap", img.Bounds(), len(out))
		}
	}
}

func TestSingleSquare(t *testing.T) {
	p := DefaultParams
	out, err := Trace(filled(4, 4, black), p)
	if err != nil {
		t.Fatal(err)
	}

	want := Outline{
		{{X: 0, Y: 800}, {X: 10, Y: 800}, {X: 10, Y: 790}, {X: 0, Y: 790}},
	}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("outline (-want +got):\n%s", d)
	}

	side := out[0][1].X - out[0][0].X
	if side != float64(p.Stride)*p.Scale {
		t.Errorf("side length %g, want %g", side, float64(p.Stride)*p.Scale)
	}
}

func TestPlacement(t *testing.T) {
	img := filled(40, 40, white)
	img.SetNRGBA(8, 12, black)

	p := Params{Scale: 3, Offset: 900, Stride: 4, AlphaThreshold: 128, DarkThreshold: 128}
	out, err := Trace(img, p)
	if err != nil {
		t.Fatal(err)
	}
	want := Outline{
		{{X: 24, Y: 864}, {X: 36, Y: 864}, {X: 36, Y: 852}, {X: 24, Y: 852}},
	}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("outline (-want +got):\n%s", d)
	}
	if got := out.Bounds(); got != (rect.Rect{LLx: 24, LLy: 852, URx: 36, URy: 864}) {
		t.Errorf("wrong bounds %v", got)
	}

	// the top-left corner is the sample position mapped through the matrix
	x, y := p.Matrix().Apply(8, 12)
	if corner := out[0][0]; corner != (vec.Vec2{X: x, Y: y}) {
		t.Errorf("corner %v, matrix gives (%g, %g)", corner, x, y)
	}
}

// Ink between sampled positions is ignored.
func TestStrideSkipsPixels(t *testing.T) {
	img := filled(16, 16, white)
	img.SetNRGBA(1, 0, black)
	img.SetNRGBA(5, 7, black)
	img.SetNRGBA(15, 15, black)

	out, err := Trace(img, DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("got %d contours, want 0", len(out))
	}
}

func TestContourCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, stride := range []int{1, 2, 3, 4, 7} {
		img := filled(50, 37, white)
		for i := 0; i < 300; i++ {
			img.SetNRGBA(rng.Intn(50), rng.Intn(37), black)
		}

		want := 0
		for y := 0; y < 37; y++ {
			for x := 0; x < 50; x++ {
				if x%stride == 0 && y%stride == 0 && IsInk(img.NRGBAAt(x, y)) {
					want++
				}
			}
		}

		p := DefaultParams
		p.Stride = stride
		out, err := Trace(img, p)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != want {
			t.Errorf("stride %d: got %d contours, want %d", stride, len(out), want)
		}
		for _, c := range out {
			if len(c) != 4 {
				t.Fatalf("stride %d: contour with %d points", stride, len(c))
			}
			side := float64(stride) * p.Scale
			if c[1].X-c[0].X != side || c[1].Y-c[2].Y != side {
				t.Errorf("stride %d: not a square of side %g: %v", stride, side, c)
			}
		}
	}
}

// Adjacent squares are kept as separate contours.
func TestNoMerging(t *testing.T) {
	out, err := Trace(filled(8, 8, black), DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 4 {
		t.Errorf("got %d contours, want 4", len(out))
	}
}

func TestSubImage(t *testing.T) {
	img := filled(20, 20, white)
	img.SetNRGBA(10, 10, black)
	sub := img.SubImage(image.Rect(10, 10, 20, 20))

	out, err := Trace(sub, DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0][0] != (vec.Vec2{X: 0, Y: 800}) {
		t.Errorf("unexpected outline %v", out)
	}
}

func TestNonNRGBA(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	img.SetGray(4, 4, color.Gray{Y: 0})

	out, err := Trace(img, DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Errorf("got %d contours, want 1", len(out))
	}
}

func TestValidate(t *testing.T) {
	p := DefaultParams
	p.Stride = 0
	if _, err := Trace(filled(1, 1, black), p); err == nil {
		t.Error("stride 0 accepted")
	}
	p = DefaultParams
	p.Scale = 0
	if err := p.Validate(); err == nil {
		t.Error("scale 0 accepted")
	}
}

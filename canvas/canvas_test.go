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

package canvas

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"github.com/thelonewolf39/Font-Maker/glyphstore"
	"github.com/thelonewolf39/Font-Maker/trace"
)

var black = color.NRGBA{A: 0xFF}

func TestNew(t *testing.T) {
	c := New(20, 10)
	if b := c.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("wrong size %v", b)
	}
	if c.Tool() != Pen {
		t.Errorf("initial tool is %s", c.Tool())
	}
	if c.BrushSize() != DefaultBrushSize {
		t.Errorf("initial brush size is %d", c.BrushSize())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if got := c.At(x, y); got != glyphstore.Background {
				t.Fatalf("pixel (%d,%d) is %v", x, y, got)
			}
		}
	}
}

func TestBrushSizeClamp(t *testing.T) {
	cases := []struct {
		in, out int
	}{
		{-3, MinBrushSize},
		{0, MinBrushSize},
		{1, 1},
		{7, 7},
		{50, 50},
		{51, MaxBrushSize},
		{1000, MaxBrushSize},
	}
	c := New(4, 4)
	for _, test := range cases {
		c.SetBrushSize(test.in)
		if got := c.BrushSize(); got != test.out {
			t.Errorf("SetBrushSize(%d): got %d, want %d", test.in, got, test.out)
		}
	}
}

func TestPenStroke(t *testing.T) {
	c := New(100, 100)
	c.SetBrushSize(10)
	c.Stroke(vec.Vec2{X: 20, Y: 50}, vec.Vec2{X: 80, Y: 50})

	// on the segment
	for _, x := range []int{20, 35, 50, 65, 79} {
		if got := c.At(x, 50); got != black {
			t.Errorf("pixel (%d,50) is %v", x, got)
		}
	}
	// round caps reach beyond the end points
	if got := c.At(17, 50); got != black {
		t.Errorf("start cap missing: %v", got)
	}
	if got := c.At(82, 50); got != black {
		t.Errorf("end cap missing: %v", got)
	}
	// away from the stroke
	for _, p := range [][2]int{{50, 40}, {50, 60}, {10, 50}, {90, 50}, {14, 45}} {
		if got := c.At(p[0], p[1]); got != glyphstore.Background {
			t.Errorf("pixel %v is %v", p, got)
		}
	}
}

func TestDot(t *testing.T) {
	c := New(30, 30)
	c.SetBrushSize(6)
	p := vec.Vec2{X: 15, Y: 15}
	c.Stroke(p, p)

	if got := c.At(15, 15); got != black {
		t.Errorf("centre is %v", got)
	}
	if got := c.At(15, 20); got != glyphstore.Background {
		t.Errorf("dot too large: %v", got)
	}
}

func TestEraser(t *testing.T) {
	c := New(60, 60)
	c.SetBrushSize(20)
	c.Stroke(vec.Vec2{X: 10, Y: 30}, vec.Vec2{X: 50, Y: 30})
	if got := c.At(30, 30); got != black {
		t.Fatalf("pen did not paint: %v", got)
	}

	c.SetTool(Eraser)
	c.SetBrushSize(6)
	c.Stroke(vec.Vec2{X: 30, Y: 10}, vec.Vec2{X: 30, Y: 50})

	// erased pixels become transparent, not white
	if got := c.At(30, 30); got.A != 0 {
		t.Errorf("erased pixel is %v", got)
	}
	if trace.IsInk(c.At(30, 30)) {
		t.Error("erased pixel counts as ink")
	}
	if got := c.At(15, 30); got != black {
		t.Errorf("pixel outside the eraser changed: %v", got)
	}
	// erasing the white background also leaves transparency
	if got := c.At(30, 12); got.A != 0 {
		t.Errorf("erased background is %v", got)
	}
}

func TestClear(t *testing.T) {
	c := New(10, 10)
	c.Stroke(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10})
	c.Clear()
	want := glyphstore.NewBitmap(10, 10)
	if d := cmp.Diff(want.Pix, c.Snapshot().Pix); d != "" {
		t.Errorf("canvas not cleared (-want +got):\n%s", d)
	}
}

func TestSnapshotLoad(t *testing.T) {
	c := New(40, 40)
	c.SetBrushSize(4)
	c.Stroke(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 35, Y: 20})
	c.SetTool(Eraser)
	c.Stroke(vec.Vec2{X: 20, Y: 0}, vec.Vec2{X: 20, Y: 40})
	snap := c.Snapshot()

	// the snapshot is independent of the canvas
	c.Clear()
	if snap.NRGBAAt(5, 5) != black {
		t.Error("snapshot changed by Clear")
	}

	c.Stroke(vec.Vec2{X: 0, Y: 39}, vec.Vec2{X: 39, Y: 39})
	c.Load(snap)
	if d := cmp.Diff(snap.Pix, c.Snapshot().Pix); d != "" {
		t.Errorf("Load did not restore the snapshot (-want +got):\n%s", d)
	}

	c.Load(nil)
	if d := cmp.Diff(glyphstore.NewBitmap(40, 40).Pix, c.Snapshot().Pix); d != "" {
		t.Errorf("Load(nil) did not clear (-want +got):\n%s", d)
	}
}

func TestToolString(t *testing.T) {
	if Pen.String() != "pen" || Eraser.String() != "eraser" {
		t.Error("wrong tool names")
	}
	if s := Tool(7).String(); s != "tool(7)" {
		t.Errorf("unknown tool: %q", s)
	}
}

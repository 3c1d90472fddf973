// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package raster

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// polyPath returns a path through pts, closed if closed is set.
func polyPath(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

// strokeCoverage renders the stroke outline of p at best quality and
// returns a function giving the alpha value of each pixel.
func strokeCoverage(t *testing.T, s *Stroker, p path.Path, w, h int) func(x, y int) uint8 {
	t.Helper()
	r := setupRasterizer(t, Config{Quality: Best, Mode: ModeStroke, Workers: 2}, &Shape{
		Stroke:      s.Outline(p),
		StrokePaint: Paint{Color: 0xffffffff},
	})
	surf := NewSurface(w, h)
	if err := surf.Render(context.Background(), r, surf.Bounds()); err != nil {
		t.Fatal(err)
	}
	return func(x, y int) uint8 {
		return uint8(surf.At(x, y) >> 24)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestStrokeCapBounds(t *testing.T) {
	line := polyPath(false, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 30, Y: 10})
	cases := []struct {
		cap  graphics.LineCapStyle
		want rect.Rect
		tol  float64
	}{
		{graphics.LineCapButt, rect.Rect{LLx: 10, LLy: 8, URx: 30, URy: 12}, 1e-9},
		{graphics.LineCapSquare, rect.Rect{LLx: 8, LLy: 8, URx: 32, URy: 12}, 1e-9},
		{graphics.LineCapRound, rect.Rect{LLx: 8, LLy: 8, URx: 32, URy: 12}, 0.05},
	}
	for _, c := range cases {
		s := NewStroker()
		s.Width = 4
		s.Cap = c.cap
		got, ok := s.Outline(line).Bounds()
		if !ok {
			t.Fatalf("%v: empty outline", c.cap)
		}
		opt := cmpopts.EquateApprox(0, c.tol)
		if d := cmp.Diff(c.want, got, opt); d != "" {
			t.Errorf("%v: bounds (-want +got):\n%s", c.cap, d)
		}
	}
}

func TestStrokeCapCoverage(t *testing.T) {
	line := polyPath(false, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 30, Y: 10})

	s := NewStroker()
	s.Width = 4
	cov := strokeCoverage(t, s, line, 40, 20)
	if cov(12, 9) != 255 || cov(29, 10) != 255 {
		t.Errorf("butt: line body not covered: %d %d", cov(12, 9), cov(29, 10))
	}
	if cov(9, 10) != 0 || cov(30, 10) != 0 || cov(20, 12) != 0 {
		t.Errorf("butt: coverage outside the line: %d %d %d", cov(9, 10), cov(30, 10), cov(20, 12))
	}

	s.Cap = graphics.LineCapSquare
	cov = strokeCoverage(t, s, line, 40, 20)
	if cov(8, 9) != 255 || cov(31, 10) != 255 {
		t.Errorf("square: cap not covered: %d %d", cov(8, 9), cov(31, 10))
	}
	if cov(7, 10) != 0 || cov(32, 10) != 0 {
		t.Errorf("square: coverage beyond the cap: %d %d", cov(7, 10), cov(32, 10))
	}
}

// TestStrokeJoins compares the coverage of the pixel in the outer corner
// of a right-angle turn. A miter fills the corner, a bevel leaves it
// empty and a round join lies between the two.
func TestStrokeJoins(t *testing.T) {
	turn := polyPath(false,
		vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 30, Y: 10}, vec.Vec2{X: 30, Y: 30})

	corner := func(join graphics.LineJoinStyle, limit float64) uint8 {
		s := NewStroker()
		s.Width = 4
		s.Join = join
		s.MiterLimit = limit
		return strokeCoverage(t, s, turn, 40, 40)(31, 8)
	}

	miter := corner(graphics.LineJoinMiter, 10)
	round := corner(graphics.LineJoinRound, 10)
	bevel := corner(graphics.LineJoinBevel, 10)
	limited := corner(graphics.LineJoinMiter, 1.2)

	if miter != 255 {
		t.Errorf("miter: %d, want 255", miter)
	}
	if bevel != 0 {
		t.Errorf("bevel: %d, want 0", bevel)
	}
	if round == 0 || round == 255 {
		t.Errorf("round: %d, want partial coverage", round)
	}
	if limited != bevel {
		t.Errorf("miter beyond the limit: %d, want the bevel value %d", limited, bevel)
	}
}

func TestStrokeMiterPoint(t *testing.T) {
	s := NewStroker()
	s.Width = 4
	fig := s.Outline(polyPath(false,
		vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 30, Y: 10}, vec.Vec2{X: 30, Y: 30}))
	b, _ := fig.Bounds()
	// butt caps at x=10 and y=30, the miter point at (32, 8)
	want := rect.Rect{LLx: 10, LLy: 8, URx: 32, URy: 30}
	if d := cmp.Diff(want, b, approx); d != "" {
		t.Errorf("bounds (-want +got):\n%s", d)
	}
}

func TestStrokeClosed(t *testing.T) {
	square := polyPath(true,
		vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 30, Y: 10},
		vec.Vec2{X: 30, Y: 30}, vec.Vec2{X: 10, Y: 30})
	s := NewStroker()
	s.Width = 4

	fig := s.Outline(square)
	if n := len(fig.Polygons()); n != 2 {
		t.Fatalf("got %d rings, want 2", n)
	}

	cov := strokeCoverage(t, s, square, 40, 40)
	for _, pt := range [][2]int{{8, 8}, {31, 8}, {20, 9}, {11, 20}, {31, 31}} {
		if a := cov(pt[0], pt[1]); a != 255 {
			t.Errorf("band pixel %v: %d, want 255", pt, a)
		}
	}
	for _, pt := range [][2]int{{20, 20}, {13, 13}, {7, 20}, {20, 33}} {
		if a := cov(pt[0], pt[1]); a != 0 {
			t.Errorf("pixel %v outside the band: %d, want 0", pt, a)
		}
	}
}

func TestStrokeDots(t *testing.T) {
	dot := func(yield func(path.Command, []vec.Vec2) bool) {
		p := []vec.Vec2{{X: 5, Y: 5}}
		_ = yield(path.CmdMoveTo, p) && yield(path.CmdLineTo, p)
	}

	s := NewStroker()
	s.Width = 4
	if n := len(s.Outline(dot).Polygons()); n != 0 {
		t.Errorf("butt cap: %d polygons, want 0", n)
	}

	s.Cap = graphics.LineCapRound
	fig := s.Outline(dot)
	b, ok := fig.Bounds()
	const tol = defaultFlatness
	if !ok || math.Abs(b.LLx-3) > tol || math.Abs(b.URx-7) > tol || math.Abs(b.LLy-3) > tol || math.Abs(b.URy-7) > tol {
		t.Errorf("round cap: bounds %v, want a circle of radius 2 around (5, 5)", b)
	}

	// a bare MoveTo draws nothing
	moveOnly := func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdMoveTo, []vec.Vec2{{X: 5, Y: 5}})
	}
	if n := len(s.Outline(moveOnly).Polygons()); n != 0 {
		t.Errorf("MoveTo only: %d polygons, want 0", n)
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	s := NewStroker()
	s.Width = 0
	fig := s.Outline(polyPath(false, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10}))
	if _, ok := fig.Bounds(); ok {
		t.Error("zero width stroke has an outline")
	}
}

func TestStrokeCTM(t *testing.T) {
	s := NewStroker()
	s.Width = 2
	s.CTM = matrix.Scale(2, 2)
	fig := s.Outline(polyPath(false, vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 15, Y: 5}))
	b, _ := fig.Bounds()
	want := rect.Rect{LLx: 10, LLy: 8, URx: 30, URy: 12}
	if d := cmp.Diff(want, b, approx); d != "" {
		t.Errorf("bounds (-want +got):\n%s", d)
	}
}

func TestDashPattern(t *testing.T) {
	cases := []struct {
		dash []float64
		want []float64
	}{
		{nil, nil},
		{[]float64{3}, []float64{3, 3}},
		{[]float64{2, 1, 4}, []float64{2, 1, 4, 2, 1, 4}},
		{[]float64{5, 5}, []float64{5, 5}},
		{[]float64{0, 0}, nil},
		{[]float64{2, -1}, nil},
	}
	for _, c := range cases {
		s := &Stroker{Dash: c.dash}
		if d := cmp.Diff(c.want, s.dashPattern()); d != "" {
			t.Errorf("%v (-want +got):\n%s", c.dash, d)
		}
	}
}

func TestStrokeDash(t *testing.T) {
	line := polyPath(false, vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 40, Y: 10})

	s := NewStroker()
	s.Width = 2
	s.Dash = []float64{5, 5}
	if n := len(s.Outline(line).Polygons()); n != 4 {
		t.Errorf("got %d dashes, want 4", n)
	}
	cov := strokeCoverage(t, s, line, 40, 20)
	for _, x := range []int{2, 12, 22, 32} {
		if a := cov(x, 9); a != 255 {
			t.Errorf("x=%d: %d, want 255", x, a)
		}
	}
	for _, x := range []int{7, 17, 27, 37} {
		if a := cov(x, 9); a != 0 {
			t.Errorf("x=%d: %d, want 0", x, a)
		}
	}

	s.DashPhase = 5
	cov = strokeCoverage(t, s, line, 40, 20)
	if cov(2, 9) != 0 || cov(7, 9) != 255 {
		t.Errorf("phase 5: got %d and %d, want 0 and 255", cov(2, 9), cov(7, 9))
	}

	s.DashPhase = -5
	cov2 := strokeCoverage(t, s, line, 40, 20)
	for x := range 40 {
		if cov(x, 9) != cov2(x, 9) {
			t.Errorf("phase -5 differs from phase 5 at x=%d", x)
		}
	}
}

func TestStrokeDashClosed(t *testing.T) {
	// the dash through the start point of a closed path is one piece
	square := polyPath(true,
		vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 30, Y: 10},
		vec.Vec2{X: 30, Y: 30}, vec.Vec2{X: 10, Y: 30})
	s := NewStroker()
	s.Width = 2
	s.Dash = []float64{6, 4}
	s.DashPhase = 3

	// perimeter 80 = 8 periods; the last dash runs into the first
	if n := len(s.Outline(square).Polygons()); n != 8 {
		t.Errorf("got %d dashes, want 8", n)
	}
}

func TestStrokeZeroLengthDash(t *testing.T) {
	line := polyPath(false, vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 40, Y: 10})
	s := NewStroker()
	s.Width = 4
	s.Dash = []float64{0, 10}

	if n := len(s.Outline(line).Polygons()); n != 0 {
		t.Errorf("butt caps: got %d dots, want 0", n)
	}

	s.Cap = graphics.LineCapRound
	// dots at 0, 10, 20 and 30; the pattern ends in a gap at 40
	if n := len(s.Outline(line).Polygons()); n != 4 {
		t.Errorf("round caps: got %d dots, want 4", n)
	}
	s.Cap = graphics.LineCapSquare
	cov := strokeCoverage(t, s, line, 44, 20)
	if cov(20, 10) != 255 || cov(19, 9) != 255 || cov(25, 10) != 0 {
		t.Errorf("square dots: %d %d %d", cov(20, 10), cov(19, 9), cov(25, 10))
	}
}

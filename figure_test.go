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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestFigureBounds(t *testing.T) {
	fig := NewFigure()
	if _, ok := fig.Bounds(); ok {
		t.Error("empty figure has bounds")
	}
	if p := fig.AddPolygon(true, vec.Vec2{X: 1, Y: 1}); p != nil {
		t.Error("single point polygon accepted")
	}

	gen := fig.Generation()
	fig.AddPolygon(true, vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 5, Y: -1}, vec.Vec2{X: 3, Y: 4})
	fig.AddPolygon(false, vec.Vec2{X: -2, Y: 0}, vec.Vec2{X: 0, Y: 1})
	if fig.Generation() == gen {
		t.Error("generation unchanged by AddPolygon")
	}

	b, ok := fig.Bounds()
	want := rect.Rect{LLx: -2, LLy: -1, URx: 5, URy: 4}
	if !ok || b != want {
		t.Errorf("bounds %v, want %v", b, want)
	}
	if n := fig.NumPoints(); n != 5 {
		t.Errorf("NumPoints() = %d, want 5", n)
	}
	if polys := fig.Polygons(); len(polys) != 2 || !polys[0].Closed() || polys[1].Closed() {
		t.Errorf("unexpected polygons %v", polys)
	}

	gen = fig.Generation()
	fig.Clear()
	if fig.Generation() == gen || len(fig.Polygons()) != 0 {
		t.Error("Clear did not reset the figure")
	}
	if _, ok := fig.Bounds(); ok {
		t.Error("cleared figure has bounds")
	}
}

func TestNilFigure(t *testing.T) {
	var fig *Figure
	fig.Clear()
	if fig.Polygons() != nil || fig.NumPoints() != 0 || fig.Generation() != 0 {
		t.Error("nil figure is not empty")
	}
	if _, ok := fig.Bounds(); ok {
		t.Error("nil figure has bounds")
	}
}

func TestFigureCopiesPoints(t *testing.T) {
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	fig := NewFigure()
	fig.AddPolygon(true, pts...)
	pts[0] = vec.Vec2{X: 9, Y: 9}
	if got := fig.Polygons()[0].Points()[0]; got != (vec.Vec2{}) {
		t.Errorf("polygon shares the caller's slice: %v", got)
	}
}

func TestFigureFromPath(t *testing.T) {
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 2, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 2, Y: 1}}) &&
			yield(path.CmdClose, nil) &&
			// continues from the start point of the closed subpath
			yield(path.CmdLineTo, []vec.Vec2{{X: 0, Y: 3}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 1, Y: 3}})
	}
	fig := FigureFromPath(p, matrix.Matrix{1, 0, 0, 1, 10, 20}, 0)

	var got [][]vec.Vec2
	for _, poly := range fig.Polygons() {
		got = append(got, poly.Points())
	}
	want := [][]vec.Vec2{
		{{X: 10, Y: 20}, {X: 12, Y: 20}, {X: 12, Y: 21}},
		{{X: 10, Y: 20}, {X: 10, Y: 23}, {X: 11, Y: 23}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("polygons (-want +got):\n%s", d)
	}
	for i, poly := range fig.Polygons() {
		if !poly.Closed() {
			t.Errorf("polygon %d is open, fill figures are implicitly closed", i)
		}
	}
}

// TestFlatteningTolerance checks that a flattened circle stays within the
// flatness of the exact circle, also under a scaling CTM.
func TestFlatteningTolerance(t *testing.T) {
	for _, tc := range []struct {
		scale, flatness float64
	}{
		{1, 0.25}, {4, 0.25}, {1, 0.05}, {10, 1},
	} {
		const cx, cy, r = 20.0, 20.0, 15.0
		p := func(yield func(path.Command, []vec.Vec2) bool) {
			addCircleToPath(yield, cx, cy, r, true)
		}
		fig := FigureFromPath(p, matrix.Scale(tc.scale, tc.scale), tc.flatness)
		pts := fig.Polygons()[0].Points()

		// the Bézier approximation itself deviates by about 2.7e-4 r
		slack := 3e-4 * r * tc.scale
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			mid := a.Add(b).Mul(0.5)
			dist := math.Hypot(mid.X-cx*tc.scale, mid.Y-cy*tc.scale)
			if dev := r*tc.scale - dist; dev > tc.flatness+slack {
				t.Errorf("scale %g, flatness %g: chord %d deviates by %g", tc.scale, tc.flatness, i, dev)
			}
		}
	}
}

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

package testcases

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:    "ring_shape",
		Path:    squareRings(false, ringSpec{32, 32, 25, 12}),
		Width:   64,
		Height:  64,
		Op:      Fill{Rule: EvenOdd},
		Overlap: true,
	},
	{
		Name:    "multiple_rings",
		Path:    squareRings(false, threeRings(64, 64)...),
		Width:   128,
		Height:  128,
		Op:      Fill{Rule: EvenOdd},
		Overlap: true,
	},
	{
		Name:   "multiple_rings_nonzero",
		Path:   squareRings(true, threeRings(64, 64)...),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Op:     Fill{Rule: NonZero},
	},
}

// twoTriangles builds two disjoint triangles of the same size.
func twoTriangles(cx1, cy1, cx2, cy2, size float64) path.Path {
	b := &builder{}
	b.addTriangle(cx1, cy1, size)
	b.addTriangle(cx2, cy2, size)
	return b.path()
}

// addTriangle adds an upright triangle centered at (cx, cy).
func (b *builder) addTriangle(cx, cy, size float64) *builder {
	return b.moveTo(pt(cx, cy-size)).
		lineTo(pt(cx+size, cy+size)).
		lineTo(pt(cx-size, cy+size)).
		close()
}

// addSquare adds an axis-parallel square centered at (cx, cy), clockwise
// in device space unless ccw is set.
func (b *builder) addSquare(cx, cy, r float64, ccw bool) *builder {
	x1, y1, x2, y2 := cx-r, cy-r, cx+r, cy+r
	if ccw {
		x1, x2 = x2, x1
	}
	return b.moveTo(pt(x1, y1)).
		lineTo(pt(x2, y1)).
		lineTo(pt(x2, y2)).
		lineTo(pt(x1, y2)).
		close()
}

type ringSpec struct {
	cx, cy, outer, inner float64
}

// squareRings builds square outlines with square holes. Without
// reverse, the hole runs in the same direction as the outline and has
// winding number two.
func squareRings(reverse bool, rings ...ringSpec) path.Path {
	b := &builder{}
	for _, r := range rings {
		b.addSquare(r.cx, r.cy, r.outer, false)
		b.addSquare(r.cx, r.cy, r.inner, reverse)
	}
	return b.path()
}

// threeRings places three rings around (cx, cy).
func threeRings(cx, cy float64) []ringSpec {
	return []ringSpec{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) path.Path {
	const (
		size    = 5.0
		spacing = 14.0
	)
	b := &builder{}
	for row := range rows {
		for col := range cols {
			b.addTriangle(10+float64(col)*spacing, 10+float64(row)*spacing, size)
		}
	}
	return b.path()
}

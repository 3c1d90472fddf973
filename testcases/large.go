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

// largeCases cover a 512x512 canvas, so that every worker sees many rows
// and long spans.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:    "large_concentric_nonzero",
		Path:    concentricSquares(256, 256, 200, 100),
		Width:   512,
		Height:  512,
		Op:      Fill{Rule: NonZero},
		Overlap: true,
	},
	{
		Name:    "large_concentric_evenodd",
		Path:    concentricSquares(256, 256, 200, 100),
		Width:   512,
		Height:  512,
		Op:      Fill{Rule: EvenOdd},
		Overlap: true,
	},
	{
		Name:   "large_diamond",
		Path:   diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
}

// concentricSquares builds two nested squares with the same orientation.
// The inner square has winding number two.
func concentricSquares(cx, cy, outer, inner float64) path.Path {
	return (&builder{}).
		addSquare(cx, cy, outer, false).
		addSquare(cx, cy, inner, false).
		path()
}

// diamond builds a square rotated by 45 degrees, with its corners at
// distance r from the center.
func diamond(cx, cy, r float64) path.Path {
	return polygon(pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy))
}

// rectangleGrid builds a grid of rows × cols rectangles covering a
// width × height area, separated by the given gap.
func rectangleGrid(rows, cols, width, height int, gap float64) path.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	b := &builder{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			b.moveTo(pt(x1, y1)).
				lineTo(pt(x2, y1)).
				lineTo(pt(x2, y2)).
				lineTo(pt(x1, y2)).
				close()
		}
	}
	return b.path()
}

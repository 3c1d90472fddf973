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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_75",
		Path:   rectangle(20.75, 20.75, 44.75, 44.75),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "thin_line_y_integer",
		Path:   horizontalLine(5, 10, 59),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      1,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		Name:   "thin_line_y_half",
		Path:   horizontalLine(5, 10.5, 59),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      1,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},

	// user space coordinates far from the origin, mapped back onto the
	// canvas by the CTM
	{
		Name:   "large_coord_centered",
		Path:   squareAt(1000, 1000, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    translateTo(1000, 1000, 32, 32),
	},
	{
		Name:   "small_shape_large_offset",
		Path:   squareAt(10000, 10000, 2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    translateTo(10000, 10000, 32, 32),
	},
	{
		Name:   "float64_precision",
		Path:   rectangle(22.123456789012345, 22.123456789012345, 42.123456789012346, 42.123456789012346),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}

// squareAt builds an axis-parallel square with the given side length,
// centered at (cx, cy).
func squareAt(cx, cy, size float64) path.Path {
	return rectangle(cx-size/2, cy-size/2, cx+size/2, cy+size/2)
}

// translateTo returns the translation which maps (x, y) to (tx, ty).
func translateTo(x, y, tx, ty float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, tx - x, ty - y}
}

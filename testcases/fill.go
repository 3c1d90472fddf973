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

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:    "star_evenodd",
		Path:    fivePointStar(32, 32, 25),
		Width:   64,
		Height:  64,
		Op:      Fill{Rule: EvenOdd},
		Overlap: true,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},

	// sub-pixel positions of an otherwise identical square
	{
		Name:   "subpixel_offset_00",
		Path:   rectangle(10, 10, 30, 30),
		Width:  40,
		Height: 40,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   rectangle(10.25, 10.25, 30.25, 30.25),
		Width:  40,
		Height: 40,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   rectangle(10.5, 10.5, 30.5, 30.5),
		Width:  40,
		Height: 40,
		Op:     Fill{Rule: NonZero},
	},

	// winding numbers
	{
		Name:   "double_wound_nonzero",
		Path:   doubleSquare(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:    "double_wound_evenodd",
		Path:    doubleSquare(12, 12, 52, 52),
		Width:   64,
		Height:  64,
		Op:      Fill{Rule: EvenOdd},
		Overlap: true,
	},
	{
		Name:   "figure_eight_nonzero",
		Path:   figureEight(8, 16, 56, 48),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring",
		Path:   ring(32, 32, 26, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(8, 8, 40, 40, 24, 24, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:    "overlapping_rect_evenodd",
		Path:    overlappingRectangles(8, 8, 40, 40, 24, 24, 56, 56),
		Width:   64,
		Height:  64,
		Op:      Fill{Rule: EvenOdd},
		Overlap: true,
	},
}

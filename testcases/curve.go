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

import "seehuhn.de/go/pdf/graphics"

var curveCases = []TestCase{
	{
		Name: "quadratic",
		Path: (&builder{}).
			moveTo(pt(10, 50)).
			quadTo(pt(32, 0), pt(54, 50)).
			close().path(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "cubic",
		Path: (&builder{}).
			moveTo(pt(10, 50)).
			cubeTo(pt(10, 10), pt(54, 10), pt(54, 50)).
			close().path(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "cubic_loop",
		Path: (&builder{}).
			moveTo(pt(10, 40)).
			cubeTo(pt(70, 5), pt(-6, 5), pt(54, 40)).
			close().path(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "circle_small",
		Path:   circle(8, 8, 3.3),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name: "quadratic_stroked",
		Path: (&builder{}).
			moveTo(pt(8, 48)).
			quadTo(pt(32, 0), pt(56, 48)).
			path(),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      5,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "circle_stroked",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      6,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
}

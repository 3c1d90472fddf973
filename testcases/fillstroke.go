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

var fillStrokeCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op: FillStroke{
			Rule: NonZero,
			Stroke: Stroke{
				Width:      6,
				Cap:        graphics.LineCapButt,
				Join:       graphics.LineJoinMiter,
				MiterLimit: 10,
			},
		},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 22),
		Width:  64,
		Height: 64,
		Op: FillStroke{
			Rule: NonZero,
			Stroke: Stroke{
				Width:      4,
				Cap:        graphics.LineCapButt,
				Join:       graphics.LineJoinRound,
				MiterLimit: 10,
			},
		},
	},
	{
		Name:    "star_evenodd",
		Path:    fivePointStar(32, 32, 26),
		Width:   64,
		Height:  64,
		Overlap: true,
		Op: FillStroke{
			Rule: EvenOdd,
			Stroke: Stroke{
				Width:      4,
				Cap:        graphics.LineCapButt,
				Join:       graphics.LineJoinBevel,
				MiterLimit: 10,
			},
		},
	},
}

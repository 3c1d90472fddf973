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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var complexCases = []TestCase{
	// mixed segment types
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "stroked_mixed",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      3,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:    "glyph_like",
		Path:    glyphLikeShape(),
		Width:   64,
		Height:  64,
		Op:      Fill{Rule: NonZero},
		Overlap: true,
	},

	// strokes which overlap themselves
	{
		Name:   "spiral_overlap",
		Path:   spiral(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "figure_eight",
		Path:   figureEightCurve(32, 32, 20),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:   "thick_tight_curve",
		Path:   tightCurve(32, 32, 15),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      10,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
}

// mixedLinesCurves builds a closed path which alternates between line
// segments and quadratic and cubic Bézier curves.
func mixedLinesCurves() path.Path {
	return (&builder{}).
		moveTo(pt(10, 50)).
		lineTo(pt(20, 30)).
		quadTo(pt(32, 10), pt(44, 30)).
		lineTo(pt(54, 50)).
		cubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		close().path()
}

// glyphLikeShape builds a shape resembling a lowercase "a": a round bowl
// with a stem on the right, and a counter which runs against the bowl.
// The stem overlaps the bowl, where the winding number is two.
func glyphLikeShape() path.Path {
	const (
		cx, cy = 32.0, 38.0
		r      = 18.0
		ir     = 8.0
	)
	k := r * circleK
	ik := ir * circleK

	return (&builder{}).
		moveTo(pt(cx+r, cy)).
		cubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		cubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		cubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		cubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		lineTo(pt(cx+r, 10)).
		lineTo(pt(cx+r-6, 10)).
		lineTo(pt(cx+r-6, cy)).
		lineTo(pt(cx+ir, cy)).
		cubeTo(pt(cx+ir, cy+ik), pt(cx+ik, cy+ir), pt(cx, cy+ir)).
		cubeTo(pt(cx-ik, cy+ir), pt(cx-ir, cy+ik), pt(cx-ir, cy)).
		cubeTo(pt(cx-ir, cy-ik), pt(cx-ik, cy-ir), pt(cx, cy-ir)).
		cubeTo(pt(cx+ik, cy-ir), pt(cx+ir, cy-ik), pt(cx+ir, cy)).
		close().path()
}

// spiral builds an open Archimedean spiral from radius rMin to rMax,
// made of 32 line segments per turn.
func spiral(cx, cy, rMin, rMax, turns float64) path.Path {
	steps := max(int(turns*32), 8)
	total := turns * 2 * math.Pi
	growth := (rMax - rMin) / total

	b := (&builder{}).moveTo(pt(cx+rMin, cy))
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * total
		r := rMin + growth*angle
		b.lineTo(pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return b.path()
}

// figureEightCurve builds an open figure-eight of two loops which cross
// at (cx, cy).
func figureEightCurve(cx, cy, size float64) path.Path {
	r := size / 2
	k := r * circleK
	top := cy - r/2
	bot := cy + r/2

	return (&builder{}).
		moveTo(pt(cx, cy)).
		cubeTo(pt(cx+k, cy-r/4), pt(cx+r, top-k/2), pt(cx+r, top)).
		cubeTo(pt(cx+r, top-k), pt(cx+k, top-r), pt(cx, top-r)).
		cubeTo(pt(cx-k, top-r), pt(cx-r, top-k), pt(cx-r, top)).
		cubeTo(pt(cx-r, top+k/2), pt(cx-k, cy-r/4), pt(cx, cy)).
		cubeTo(pt(cx-k, cy+r/4), pt(cx-r, bot-k/2), pt(cx-r, bot)).
		cubeTo(pt(cx-r, bot+k), pt(cx-k, bot+r), pt(cx, bot+r)).
		cubeTo(pt(cx+k, bot+r), pt(cx+r, bot+k), pt(cx+r, bot)).
		cubeTo(pt(cx+r, bot-k/2), pt(cx+k, cy+r/4), pt(cx, cy)).
		path()
}

// tightCurve builds a U-turn whose radius is small compared to the
// stroke width used with it.
func tightCurve(cx, cy, size float64) path.Path {
	r := size
	k := r * circleK
	return (&builder{}).
		moveTo(pt(cx-r, cy-size)).
		lineTo(pt(cx-r, cy)).
		cubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		cubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		lineTo(pt(cx+r, cy-size)).
		path()
}

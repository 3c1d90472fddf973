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
	"seehuhn.de/go/geom/vec"
)

// circleK is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const circleK = 0.5522847498

// builder records path segments.
type builder []segment

type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

func (b *builder) moveTo(p vec.Vec2) *builder {
	*b = append(*b, segment{path.CmdMoveTo, []vec.Vec2{p}})
	return b
}

func (b *builder) lineTo(p vec.Vec2) *builder {
	*b = append(*b, segment{path.CmdLineTo, []vec.Vec2{p}})
	return b
}

func (b *builder) quadTo(c, p vec.Vec2) *builder {
	*b = append(*b, segment{path.CmdQuadTo, []vec.Vec2{c, p}})
	return b
}

func (b *builder) cubeTo(c1, c2, p vec.Vec2) *builder {
	*b = append(*b, segment{path.CmdCubeTo, []vec.Vec2{c1, c2, p}})
	return b
}

func (b *builder) close() *builder {
	*b = append(*b, segment{path.CmdClose, nil})
	return b
}

// path returns an iterator over the recorded segments.
func (b *builder) path() path.Path {
	segs := *b
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, s := range segs {
			if !yield(s.cmd, s.pts) {
				return
			}
		}
	}
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	b := (&builder{}).moveTo(pts[0])
	for _, q := range pts[1:] {
		b.lineTo(q)
	}
	return b.close().path()
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	b := (&builder{}).moveTo(pts[0])
	for _, q := range pts[1:] {
		b.lineTo(q)
	}
	return b.path()
}

// rectangle builds a rectangular path, clockwise in device space.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// fivePointStar builds a self-intersecting five-pointed star. The
// pentagon in the middle has winding number two.
func fivePointStar(cx, cy, r float64) path.Path {
	var pts []vec.Vec2
	for _, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return polygon(pts...)
}

// addCircle adds a circle as a closed subpath made of four cubic arcs.
// If ccw is set, the circle runs counter-clockwise in device space.
func (b *builder) addCircle(cx, cy, r float64, ccw bool) *builder {
	k := circleK * r
	s := 1.0
	if ccw {
		s = -1
	}
	return b.moveTo(pt(cx+r, cy)).
		cubeTo(pt(cx+r, cy+s*k), pt(cx+k, cy+s*r), pt(cx, cy+s*r)).
		cubeTo(pt(cx-k, cy+s*r), pt(cx-r, cy+s*k), pt(cx-r, cy)).
		cubeTo(pt(cx-r, cy-s*k), pt(cx-k, cy-s*r), pt(cx, cy-s*r)).
		cubeTo(pt(cx+k, cy-s*r), pt(cx+r, cy-s*k), pt(cx+r, cy)).
		close()
}

// circle builds a circular path.
func circle(cx, cy, r float64) path.Path {
	return (&builder{}).addCircle(cx, cy, r, false).path()
}

// ring builds a circle with a hole, with the inner circle running
// against the outer one.
func ring(cx, cy, outer, inner float64) path.Path {
	return (&builder{}).
		addCircle(cx, cy, outer, false).
		addCircle(cx, cy, inner, true).
		path()
}

// doubleSquare traverses the same square twice within one subpath, so
// that the whole square has winding number two.
func doubleSquare(x1, y1, x2, y2 float64) path.Path {
	return polygon(
		pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2),
		pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2),
	)
}

// figureEight builds a bow-tie with two lobes of opposite winding.
func figureEight(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x2, y1), pt(x1, y2))
}

// overlappingRectangles builds two rectangles with the same orientation
// as separate subpaths.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) path.Path {
	b := &builder{}
	for _, r := range [][4]float64{{x1a, y1a, x2a, y2a}, {x1b, y1b, x2b, y2b}} {
		b.moveTo(pt(r[0], r[1])).
			lineTo(pt(r[2], r[1])).
			lineTo(pt(r[2], r[3])).
			lineTo(pt(r[0], r[3])).
			close()
	}
	return b.path()
}

// horizontalLine builds an open horizontal line.
func horizontalLine(x1, y, x2 float64) path.Path {
	return polyline(pt(x1, y), pt(x2, y))
}

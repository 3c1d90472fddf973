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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a sequence of device-space points.
// Polygons are created through Figure.AddPolygon and are read-only
// afterwards.
type Polygon struct {
	points []vec.Vec2
	closed bool
	bounds rect.Rect
}

// Points returns the vertices of the polygon.
// The returned slice must not be modified.
func (p *Polygon) Points() []vec.Vec2 {
	return p.points
}

// Closed reports whether the last vertex connects back to the first.
func (p *Polygon) Closed() bool {
	return p.closed
}

// Bounds returns the smallest rectangle containing all vertices.
func (p *Polygon) Bounds() rect.Rect {
	return p.bounds
}

// Figure is a set of polygons describing a filled or stroked shape in
// device space.
//
// Every modification increments the generation number, which the
// rasterizers use to decide when cached edge lists must be rebuilt.
// A Figure must not be modified while a rasterizer set up with it is
// drawing.
type Figure struct {
	polygons  []*Polygon
	bounds    rect.Rect
	hasBounds bool
	gen       uint64
}

// NewFigure returns an empty figure.
func NewFigure() *Figure {
	return &Figure{}
}

// AddPolygon appends a polygon with the given vertices to the figure.
// The points are copied. Polygons with fewer than two points are
// ignored and nil is returned.
func (f *Figure) AddPolygon(closed bool, pts ...vec.Vec2) *Polygon {
	if len(pts) < 2 {
		return nil
	}

	p := &Polygon{
		points: append([]vec.Vec2(nil), pts...),
		closed: closed,
		bounds: rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y},
	}
	for _, pt := range pts[1:] {
		p.bounds.LLx = min(p.bounds.LLx, pt.X)
		p.bounds.LLy = min(p.bounds.LLy, pt.Y)
		p.bounds.URx = max(p.bounds.URx, pt.X)
		p.bounds.URy = max(p.bounds.URy, pt.Y)
	}

	if f.hasBounds {
		f.bounds.LLx = min(f.bounds.LLx, p.bounds.LLx)
		f.bounds.LLy = min(f.bounds.LLy, p.bounds.LLy)
		f.bounds.URx = max(f.bounds.URx, p.bounds.URx)
		f.bounds.URy = max(f.bounds.URy, p.bounds.URy)
	} else {
		f.bounds = p.bounds
		f.hasBounds = true
	}

	f.polygons = append(f.polygons, p)
	f.gen++
	return p
}

// Polygons returns the polygons of the figure.
// The returned slice must not be modified.
func (f *Figure) Polygons() []*Polygon {
	if f == nil {
		return nil
	}
	return f.polygons
}

// Bounds returns the bounding box of all polygons.
// The boolean is false if the figure has no points.
func (f *Figure) Bounds() (rect.Rect, bool) {
	if f == nil || !f.hasBounds {
		return rect.Rect{}, false
	}
	return f.bounds, true
}

// NumPoints returns the total number of vertices in the figure.
func (f *Figure) NumPoints() int {
	n := 0
	for _, p := range f.Polygons() {
		n += len(p.points)
	}
	return n
}

// Generation returns the modification counter of the figure.
func (f *Figure) Generation() uint64 {
	if f == nil {
		return 0
	}
	return f.gen
}

// Clear removes all polygons from the figure.
func (f *Figure) Clear() {
	if f == nil {
		return
	}
	clear(f.polygons)
	f.polygons = f.polygons[:0]
	f.bounds = rect.Rect{}
	f.hasBounds = false
	f.gen++
}

// FigureFromPath flattens p into a new Figure in device space.
//
// Curves are approximated by line segments so that the deviation in
// device space stays below flatness (in pixels); a non-positive flatness
// selects the default of 0.25. The zero matrix is treated as the identity.
// Every subpath becomes one closed polygon, since filling implicitly
// closes open subpaths.
func FigureFromPath(p path.Path, ctm matrix.Matrix, flatness float64) *Figure {
	fl := newFlattener(ctm, flatness)
	fig := NewFigure()

	var current, start vec.Vec2
	var poly []vec.Vec2
	emit := func(_, to vec.Vec2) {
		poly = append(poly, fl.apply(to))
	}
	flush := func() {
		fig.AddPolygon(true, poly...)
		poly = poly[:0]
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = pts[0]
			start = current
			poly = append(poly, fl.apply(current))
		case path.CmdLineTo:
			if len(poly) == 0 {
				poly = append(poly, fl.apply(current))
			}
			emit(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			if len(poly) == 0 {
				poly = append(poly, fl.apply(current))
			}
			fl.flattenQuadratic(current, pts[0], pts[1], emit)
			current = pts[1]
		case path.CmdCubeTo:
			if len(poly) == 0 {
				poly = append(poly, fl.apply(current))
			}
			fl.flattenCubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]
		case path.CmdClose:
			flush()
			current = start
		}
	}
	flush()

	return fig
}

// flattener approximates curves by line segments, using a tolerance
// measured in device space.
type flattener struct {
	ctm      matrix.Matrix
	flatness float64
}

func newFlattener(ctm matrix.Matrix, flatness float64) flattener {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	if !(flatness > 0) {
		flatness = defaultFlatness
	}
	return flattener{ctm: ctm, flatness: flatness}
}

// apply maps a user-space point to device space.
func (fl *flattener) apply(p vec.Vec2) vec.Vec2 {
	m := &fl.ctm
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// transformLinear applies only the 2×2 linear part of the CTM.
func (fl *flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	m := &fl.ctm
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// flattenQuadratic calls emit for each line segment approximating the
// quadratic Bézier curve p0, p1, p2 (user space).
func (fl *flattener) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// deviation of the control point from the chord: (P0 - 2*P1 + P2) / 4
	dev := fl.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()

	n := 1
	if dev > fl.flatness {
		n = int(math.Ceil(math.Sqrt(dev / fl.flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic calls emit for each line segment approximating the cubic
// Bézier curve p0, p1, p2, p3 (user space). The number of segments
// follows Wang's formula.
func (fl *flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := fl.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := fl.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * fl.flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels. Values of 0.25-1.0 are typical; 0.25 is below the threshold
	// of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit is the default miter limit, matching PDF/PostScript.
	defaultMiterLimit = 10.0
)

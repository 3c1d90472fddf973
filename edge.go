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
	"cmp"
	"fmt"
	"math"
	"slices"
)

// edge is a y-monotonic line segment of a figure, snapped to sample rows.
//
// The edge covers the sample rows s0 ≤ s < s1, where sample row s lies at
// y = s/Q. Both ends are rounded up, so s1 is the first sample row below
// the edge, not the last one on it. Edges which cover no sample row are
// never constructed.
type edge struct {
	x0, y0, x1, y1 float64 // endpoints with y0 ≤ y1

	s0 int // first covered sample row
	s1 int // first sample row not covered

	mx    float64 // x at the sample row s0
	dxdy  float64 // x increment per sample row
	slope Fixed   // dxdy in 16.16, used inside a pixel row

	sign int32 // +1 if the original segment runs downwards, -1 otherwise
}

// xAt returns the x coordinate of the edge at sample row s.
func (e *edge) xAt(s int) float64 {
	return e.mx + float64(s-e.s0)*e.dxdy
}

// buildEdges appends the edges of fig, snapped for quality q, to dst and
// returns the result sorted by the first sample row.
//
// Consecutive points of every polygon form one edge. Closed polygons get
// an edge from the last point back to the first. If closeAll is set, this
// closing edge is added for every polygon regardless of its flag; stroke
// outlines must always form loops for the winding numbers to balance.
func buildEdges(dst []edge, fig *Figure, q Quality, closeAll bool) []edge {
	dst = dst[:0]
	n := float64(q.Samples())
	for _, poly := range fig.Polygons() {
		pts := poly.points
		for i := 1; i < len(pts); i++ {
			dst = appendEdge(dst, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, n)
		}
		if poly.closed || closeAll {
			a, b := pts[len(pts)-1], pts[0]
			dst = appendEdge(dst, a.X, a.Y, b.X, b.Y, n)
		}
	}
	slices.SortFunc(dst, func(a, b edge) int {
		return cmp.Compare(a.s0, b.s0)
	})
	return dst
}

// appendEdge appends the edge from (x0, y0) to (x1, y1) unless it covers
// no sample row. n is the number of sample rows per pixel row.
func appendEdge(dst []edge, x0, y0, x1, y1, n float64) []edge {
	sign := int32(1)
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		sign = -1
	}

	// y is snapped upwards at both ends, so that a vertex shared by two
	// edges is sampled by exactly one of them.
	s0 := math.Ceil(y0 * n)
	s1 := math.Ceil(y1 * n)
	if !(s0 < s1) {
		return dst
	}

	dxdy := (x1 - x0) / (y1 - y0) / n
	return append(dst, edge{
		x0: x0, y0: y0, x1: x1, y1: y1,
		s0:    int(s0),
		s1:    int(s1),
		mx:    x0 + (s0-y0*n)*dxdy,
		dxdy:  dxdy,
		slope: FixedFromFloat64(dxdy),
		sign:  sign,
	})
}

// checkEdges panics if edges is not sorted by the first sample row.
// An unsorted edge list is a bug in buildEdges, not a property of the
// input data.
func checkEdges(edges []edge) {
	for i := 1; i < len(edges); i++ {
		if edges[i].s0 < edges[i-1].s0 {
			panic(fmt.Sprintf("raster: edge %d starts at sample row %d, before edge %d at %d",
				i, edges[i].s0, i-1, edges[i-1].s0))
		}
	}
}

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

// rasterPlan holds the horizontal extent and the sampling parameters of
// one Setup. It is read-only while rows are drawn.
type rasterPlan struct {
	// lx and rx are the leftmost and rightmost pixel columns which can
	// receive samples. Buffer index 0 corresponds to column lx.
	lx, rx int

	// pattern holds the sparse offset of every sample row of a pixel row.
	pattern []Fixed

	// samples is the number of sample rows per pixel row.
	samples int
}

// width returns the number of buffer entries needed per worker.
// Crossings on the right boundary are shifted by the sparse pattern
// into column rx, so the buffers have one entry more than the pixel
// width of the bounds.
func (p *rasterPlan) width() int {
	return p.rx - p.lx + 1
}

// coverage holds the sample state of one figure for one worker: a sample
// mask per pixel column and, for the nonzero rule, a winding accumulator
// per pixel column. Entries are zero except while a row is in progress.
type coverage[M maskWord] struct {
	mask    []M
	winding []int32
}

func newCoverage[M maskWord](width int, nonZero bool) coverage[M] {
	c := coverage[M]{mask: make([]M, width)}
	if nonZero {
		c.winding = make([]int32, width)
	}
	return c
}

// isClear reports whether all entries are zero.
func (c *coverage[M]) isClear() bool {
	for _, m := range c.mask {
		if m != 0 {
			return false
		}
	}
	for _, w := range c.winding {
		if w != 0 {
			return false
		}
	}
	return true
}

// evaluateRow deposits the samples of pixel row y into c and returns the
// range of buffer columns touched. If no sample is deposited, lo > hi.
//
// Edges must be sorted by their first sample row. The x position of the
// first sample is computed in floating point, relative to the left end of
// the plan; the remaining samples of the row step in 16.16 fixed point.
func evaluateRow[M maskWord, R fillRule[M]](edges []edge, y int, p *rasterPlan, c *coverage[M]) (lo, hi int) {
	var rule R

	rowStart := y * p.samples
	rowEnd := rowStart + p.samples
	maxCol := len(c.mask) - 1
	lx := float64(p.lx)

	lo, hi = len(c.mask), -1
	for k := range edges {
		e := &edges[k]
		if e.s0 >= rowEnd {
			break
		}
		if e.s1 <= rowStart {
			continue
		}

		s := max(e.s0, rowStart)
		end := min(e.s1, rowEnd)
		x := FixedFromFloat64(e.xAt(s) - lx)
		for ; s < end; s++ {
			i := s - rowStart
			col := min(max((x+p.pattern[i]).Floor(), 0), maxCol)
			rule.deposit(c, col, M(1)<<i, e.sign)
			lo = min(lo, col)
			hi = max(hi, col)
			x += e.slope
		}
	}
	return lo, hi
}

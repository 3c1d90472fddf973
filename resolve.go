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

// fillRule is the deposit and resolution strategy of a fill rule.
type fillRule[M maskWord] interface {
	// deposit records a crossing of sample row bit at buffer column col.
	deposit(c *coverage[M], col int, bit M, sign int32)

	// resolve converts the buffer columns lo..hi into alpha values,
	// stored in alpha[lo:hi+1], and zeroes the consumed entries.
	// The return value is the alpha value right of column hi.
	resolve(c *coverage[M], lo, hi int, alpha []uint8) uint8
}

// evenOdd implements the even-odd rule: a sample is inside if it has seen
// an odd number of crossings to its left.
type evenOdd[M maskWord, S sampler[M]] struct{}

func (evenOdd[M, S]) deposit(c *coverage[M], col int, bit M, _ int32) {
	c.mask[col] ^= bit
}

func (evenOdd[M, S]) resolve(c *coverage[M], lo, hi int, alpha []uint8) uint8 {
	if lo > hi {
		return 0
	}

	var smp S
	var run M
	mask := c.mask[lo : hi+1]
	out := alpha[lo : hi+1]
	for i, m := range mask {
		run ^= m
		mask[i] = 0
		out[i] = smp.alpha(run)
	}
	return smp.alpha(run)
}

// nonZero implements the nonzero winding rule.
//
// Per pixel column, the signed crossings of all sample rows are summed.
// The parity mask is kept as a coverage footprint for partially covered
// pixels.
type nonZero[M maskWord, S sampler[M]] struct{}

func (nonZero[M, S]) deposit(c *coverage[M], col int, bit M, sign int32) {
	c.mask[col] ^= bit
	c.winding[col] += sign
}

func (nonZero[M, S]) resolve(c *coverage[M], lo, hi int, alpha []uint8) uint8 {
	if lo > hi {
		return 0
	}

	var run M
	var w int32
	mask := c.mask[lo : hi+1]
	winding := c.winding[lo : hi+1]
	out := alpha[lo : hi+1]
	for i := range mask {
		run ^= mask[i]
		w += winding[i]
		mask[i] = 0
		winding[i] = 0
		out[i] = nonZeroAlpha[M, S](run, w)
	}
	return nonZeroAlpha[M, S](run, w)
}

// nonZeroAlpha computes the alpha value of a pixel from the running parity
// mask and the running winding number.
//
// A winding magnitude of at least the number of samples means full
// coverage, whatever the footprint says. Otherwise the larger of the
// footprint popcount and the winding magnitude is scaled.
//
// The footprint is the running parity, not the deposits of the pixel
// itself: pixels between the edges of a span receive no deposits, but
// still hold the samples which entered the span to their left.
func nonZeroAlpha[M maskWord, S sampler[M]](run M, w int32) uint8 {
	var smp S
	if w < 0 {
		w = -w
	}
	switch {
	case w >= smp.samples():
		return 255
	case w == 0:
		return 0
	default:
		return smp.scale(max(smp.count(run), w))
	}
}

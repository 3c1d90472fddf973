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

import "fmt"

// Quality selects the number of sample rows per pixel row.
// Higher qualities trade speed for smoother edges.
type Quality int

// These are the supported qualities. The value of each constant is its
// number of samples per pixel row.
const (
	Fast Quality = 8
	Good Quality = 16
	Best Quality = 32
)

// Samples returns the number of sample rows per pixel row.
func (q Quality) Samples() int {
	return int(q)
}

// Valid reports whether q is one of Fast, Good or Best.
func (q Quality) Valid() bool {
	return q == Fast || q == Good || q == Best
}

func (q Quality) String() string {
	switch q {
	case Fast:
		return "fast"
	case Good:
		return "good"
	case Best:
		return "best"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// index maps a valid quality to 0, 1 or 2.
func (q Quality) index() int {
	switch q {
	case Fast:
		return 0
	case Good:
		return 1
	case Best:
		return 2
	}
	panic(fmt.Sprintf("raster: no pattern table for %v", q))
}

// FillRule determines which points lie inside a figure.
type FillRule int

const (
	// NonZero treats a point as inside if the signed number of edge
	// crossings to its left is non-zero.
	NonZero FillRule = iota

	// EvenOdd treats a point as inside if the number of edge crossings to
	// its left is odd.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// DrawMode selects which parts of a shape are painted.
type DrawMode int

const (
	// ModeFill paints the fill figure.
	ModeFill DrawMode = 1 << iota

	// ModeStroke paints the stroke figure.
	ModeStroke

	// ModeFillStroke paints the stroke figure on top of the fill figure.
	ModeFillStroke = ModeFill | ModeStroke
)

func (m DrawMode) String() string {
	switch m {
	case ModeFill:
		return "fill"
	case ModeStroke:
		return "stroke"
	case ModeFillStroke:
		return "fill+stroke"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}

// Sparse sampling patterns.
//
// Sample row i of a pixel row is shifted right by offsets[i]/Q pixels
// before the crossing is assigned to a pixel column. Each table is a
// permutation of 0..Q-1 chosen so that vertically adjacent samples fall
// into distant horizontal positions.
var (
	sparseOffsets8 = [8]int{5, 0, 3, 6, 1, 4, 7, 2}

	sparseOffsets16 = [16]int{
		1, 8, 4, 15, 11, 2, 6, 14,
		10, 3, 7, 12, 0, 9, 5, 13,
	}

	sparseOffsets32 = [32]int{
		28, 13, 6, 23, 0, 17, 10, 27,
		4, 21, 14, 31, 8, 25, 18, 3,
		12, 29, 22, 7, 16, 1, 26, 11,
		20, 5, 30, 15, 24, 9, 2, 19,
	}
)

// patterns holds the sparse offsets in 16.16 fixed point, indexed by
// Quality.index.
var patterns = [3][]Fixed{
	fixedPattern(sparseOffsets8[:]),
	fixedPattern(sparseOffsets16[:]),
	fixedPattern(sparseOffsets32[:]),
}

func fixedPattern(offsets []int) []Fixed {
	q := len(offsets)
	res := make([]Fixed, q)
	for i, k := range offsets {
		res[i] = Fixed(k * (int(FixedOne) / q))
	}
	return res
}

// patternFor returns the fixed-point offset table of q.
// The returned slice must not be modified.
func patternFor(q Quality) []Fixed {
	return patterns[q.index()]
}

// maskWord is the integer type holding one bit per sample row.
type maskWord interface {
	~uint8 | ~uint16 | ~uint32
}

// sampler provides the quality-specific bit arithmetic for masks of
// type M.
type sampler[M maskWord] interface {
	// samples returns the number of sample rows, which equals the number
	// of bits in M.
	samples() int32

	// count returns the number of set bits in m.
	count(m M) int32

	// alpha converts a mask of covered samples into an 8-bit alpha value.
	alpha(m M) uint8

	// scale converts a sample count in [0, samples()] into an 8-bit alpha
	// value.
	scale(n int32) uint8
}

type fast8 struct{}

func (fast8) samples() int32 { return 8 }
func (fast8) count(m uint8) int32 { return int32(popTable8[m]) }
func (fast8) alpha(m uint8) uint8 { return alphaTable8[m] }
func (fast8) scale(n int32) uint8 { return scaleCount(n, 5) }

type good16 struct{}

func (good16) samples() int32 { return 16 }
func (good16) count(m uint16) int32 { return int32(popCount16(m)) }
func (good16) alpha(m uint16) uint8 { return scaleCount(int32(popCount16(m)), 4) }
func (good16) scale(n int32) uint8 { return scaleCount(n, 4) }

type best32 struct{}

func (best32) samples() int32 { return 32 }
func (best32) count(m uint32) int32 { return int32(popCount32(m)) }
func (best32) alpha(m uint32) uint8 { return scaleCount(int32(popCount32(m)), 3) }
func (best32) scale(n int32) uint8 { return scaleCount(n, 3) }

// scaleCount computes min(255, n*256/Q) where Q = 256>>shift.
func scaleCount(n int32, shift uint) uint8 {
	v := n << shift
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// popTable8 and alphaTable8 are the lookup tables for 8-sample masks.
var popTable8, alphaTable8 = func() (pop, alpha [256]uint8) {
	for m := range 256 {
		n := uint8(0)
		for b := m; b != 0; b &= b - 1 {
			n++
		}
		pop[m] = n
		alpha[m] = scaleCount(int32(n), 5)
	}
	return pop, alpha
}()

// popCount16 returns the number of set bits in v.
func popCount16(v uint16) uint16 {
	v -= (v >> 1) & 0x5555
	v = (v & 0x3333) + ((v >> 2) & 0x3333)
	v = (v + (v >> 4)) & 0x0f0f
	return (v + (v >> 8)) & 0x1f
}

// popCount32 returns the number of set bits in v.
func popCount32(v uint32) uint32 {
	v -= (v >> 1) & 0x55555555
	v = (v & 0x33333333) + ((v >> 2) & 0x33333333)
	v = (v + (v >> 4)) & 0x0f0f0f0f
	return (v * 0x01010101) >> 24
}

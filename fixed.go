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

import "math"

// Fixed is a 16.16 fixed-point number.
//
// The rasterizer uses Fixed for horizontal positions relative to the left
// edge of the raster plan and for per-sample slopes, so that stepping
// along an edge is exact integer addition.
type Fixed int32

// Fixed-point constants.
const (
	FixedShift       = 16
	FixedOne   Fixed = 1 << FixedShift
	FixedHalf  Fixed = 1 << (FixedShift - 1)
	fixedMask  Fixed = FixedOne - 1
)

// FixedFromInt converts an integer to Fixed.
// The integer must lie in [-32768, 32767].
func FixedFromInt(n int) Fixed {
	return Fixed(n << FixedShift)
}

// FixedFromFloat64 converts a float64 to Fixed, rounding toward negative
// infinity. Values outside the representable range saturate, NaN maps
// to zero.
func FixedFromFloat64(f float64) Fixed {
	v := math.Floor(f * float64(FixedOne))
	switch {
	case v != v:
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return Fixed(v)
}

// Float64 converts f to a float64.
func (f Fixed) Float64() float64 {
	return float64(f) / float64(FixedOne)
}

// Floor returns the largest integer not greater than f.
func (f Fixed) Floor() int {
	return int(f >> FixedShift)
}

// Ceil returns the smallest integer not less than f.
func (f Fixed) Ceil() int {
	return int((int64(f) + int64(fixedMask)) >> FixedShift)
}

// Round returns the integer nearest to f, rounding halves up.
func (f Fixed) Round() int {
	return int((int64(f) + int64(FixedHalf)) >> FixedShift)
}

// Frac returns the fractional part of f, in [0, FixedOne).
func (f Fixed) Frac() Fixed {
	return f & fixedMask
}

// Mul multiplies two Fixed values, truncating toward negative infinity.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed((int64(f) * int64(g)) >> FixedShift)
}

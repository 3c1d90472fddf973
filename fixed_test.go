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
	"testing"
)

func TestFixedFromFloat64(t *testing.T) {
	cases := []struct {
		in   float64
		want Fixed
	}{
		{0, 0},
		{1, FixedOne},
		{1.5, FixedOne + FixedHalf},
		{-0.5, -FixedHalf},
		{1.0 / 65536, 1},
		{-1.0 / 131072, -1}, // rounds toward -∞
		{1e10, math.MaxInt32},
		{-1e10, math.MinInt32},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt32},
	}
	for _, c := range cases {
		if got := FixedFromFloat64(c.in); got != c.want {
			t.Errorf("FixedFromFloat64(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFixedRounding(t *testing.T) {
	cases := []struct {
		f                  float64
		floor, ceil, round int
	}{
		{2, 2, 2, 2},
		{2.25, 2, 3, 2},
		{2.5, 2, 3, 3},
		{-0.5, -1, 0, 0},
		{-1.75, -2, -1, -2},
	}
	for _, c := range cases {
		f := FixedFromFloat64(c.f)
		if got := f.Floor(); got != c.floor {
			t.Errorf("%g: Floor = %d, want %d", c.f, got, c.floor)
		}
		if got := f.Ceil(); got != c.ceil {
			t.Errorf("%g: Ceil = %d, want %d", c.f, got, c.ceil)
		}
		if got := f.Round(); got != c.round {
			t.Errorf("%g: Round = %d, want %d", c.f, got, c.round)
		}
	}
}

func TestFixedArithmetic(t *testing.T) {
	if got := FixedFromFloat64(-0.25).Frac(); got != FixedFromFloat64(0.75) {
		t.Errorf("Frac(-0.25) = %v, want 0.75", got.Float64())
	}
	if got := FixedFromFloat64(1.5).Mul(FixedFromInt(-2)); got != FixedFromInt(-3) {
		t.Errorf("1.5 * -2 = %v", got.Float64())
	}
	if got := FixedFromInt(-7).Float64(); got != -7 {
		t.Errorf("FixedFromInt(-7).Float64() = %g", got)
	}
}

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

// Package raster implements an anti-aliased scanline rasterizer for
// polygonal figures.
//
// Coverage is estimated from 8, 16 or 32 sample rows per pixel row. Within
// a row, the samples are shifted horizontally by a sparse pattern, so that
// vertically adjacent samples fall into different sub-pixel positions.
// Figures are filled with the even-odd or the nonzero winding rule, and a
// stroke outline can be drawn on top of the fill in a single pass.
package raster

//go:generate go run ./testcases/export

import (
	"context"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/raster/testcases"
)

// RenderExample renders a test case into a grayscale buffer, using
// the given quality.
// The buffer is in row-major order. Each byte represents the gray level
// of the pixel on a black background: the fill is drawn in
// testcases.FillGray, a stroke on top of a fill in testcases.StrokeGray.
func RenderExample(tc testcases.TestCase, q Quality, buf []byte, width, height, stride int) error {
	shape, cfg := exampleShape(tc, q)
	r, err := New(cfg)
	if err != nil {
		return err
	}
	if err := r.Setup(&shape); err != nil {
		return fmt.Errorf("%s: %w", tc.Name, err)
	}
	defer r.Cleanup()

	surf := NewSurface(width, height)
	if err := surf.Render(context.Background(), r, surf.Bounds()); err != nil {
		return err
	}
	for y := range height {
		row := buf[y*stride : y*stride+width]
		for x, c := range surf.Row(y) {
			row[x] = uint8(c >> 16)
		}
	}
	return nil
}

// exampleShape converts a test case into a shape and a rasterizer
// configuration.
func exampleShape(tc testcases.TestCase, q Quality) (Shape, Config) {
	cfg := DefaultConfig()
	cfg.Quality = q

	var shape Shape
	switch op := tc.Op.(type) {
	case testcases.Fill:
		cfg.Mode = ModeFill
		cfg.FillRule = exampleRule(op.Rule)
		shape.Fill = FigureFromPath(tc.Path, tc.CTM, 0)
		shape.FillPaint.Color = grayARGB(testcases.FillGray)
	case testcases.Stroke:
		cfg.Mode = ModeStroke
		shape.Stroke = exampleStroker(op, tc).Outline(tc.Path)
		shape.StrokePaint.Color = grayARGB(testcases.FillGray)
	case testcases.FillStroke:
		cfg.Mode = ModeFillStroke
		cfg.FillRule = exampleRule(op.Rule)
		shape.Fill = FigureFromPath(tc.Path, tc.CTM, 0)
		shape.FillPaint.Color = grayARGB(testcases.FillGray)
		shape.Stroke = exampleStroker(op.Stroke, tc).Outline(tc.Path)
		shape.StrokePaint.Color = grayARGB(testcases.StrokeGray)
	}
	return shape, cfg
}

func exampleStroker(op testcases.Stroke, tc testcases.TestCase) *Stroker {
	s := NewStroker()
	if tc.CTM != (matrix.Matrix{}) {
		s.CTM = tc.CTM
	}
	s.Width = op.Width
	s.Cap = op.Cap
	s.Join = op.Join
	s.MiterLimit = op.MiterLimit
	s.Dash = op.Dash
	s.DashPhase = op.DashPhase
	return s
}

func exampleRule(r testcases.FillRule) FillRule {
	if r == testcases.EvenOdd {
		return EvenOdd
	}
	return NonZero
}

// grayARGB returns the opaque gray pixel with level v in [0, 1].
func grayARGB(v float64) uint32 {
	g := uint32(math.Round(max(0, min(1, v)) * 255))
	return 0xff000000 | g<<16 | g<<8 | g
}

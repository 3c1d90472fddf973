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
	"context"
	"image"
	"image/color"
)

// Surface is a buffer of premultiplied ARGB8888 pixels.
type Surface struct {
	// Pix holds the pixels. The pixel (x, y) is Pix[y*Stride+x].
	Pix []uint32

	Width, Height int

	// Stride is the distance between vertically adjacent pixels.
	Stride int
}

// NewSurface allocates a transparent surface.
func NewSurface(width, height int) *Surface {
	return &Surface{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
		Stride: width,
	}
}

// Bounds returns the rectangle covered by the surface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// Row returns the pixels of row y.
func (s *Surface) Row(y int) []uint32 {
	off := y * s.Stride
	return s.Pix[off : off+s.Width]
}

// At returns the pixel at (x, y).
func (s *Surface) At(x, y int) uint32 {
	return s.Pix[y*s.Stride+x]
}

// Clear sets all pixels to c.
func (s *Surface) Clear(c uint32) {
	for y := range s.Height {
		row := s.Row(y)
		for i := range row {
			row[i] = c
		}
	}
}

// Render replaces the pixels in area with the output of r.
//
// Rows are drawn in parallel, one goroutine per worker index of r.
// The rasterizer must have been set up. If ctx is cancelled, the
// remaining rows are skipped and the context's error is returned.
func (s *Surface) Render(ctx context.Context, r Rasterizer, area image.Rectangle) error {
	area = area.Intersect(s.Bounds())
	if area.Empty() {
		return nil
	}
	return runRows(ctx, r.Workers(), area.Min.Y, area.Max.Y, func(y int) {
		row := s.Row(y)
		r.Draw(area.Min.X, y, row[area.Min.X:area.Max.X])
	})
}

// Blend composites the output of r over the pixels in area, using the
// Porter-Duff "source over" operator.
func (s *Surface) Blend(ctx context.Context, r Rasterizer, area image.Rectangle) error {
	area = area.Intersect(s.Bounds())
	if area.Empty() {
		return nil
	}

	n := r.Workers()
	scratch := make([][]uint32, n)
	return runRows(ctx, n, area.Min.Y, area.Max.Y, func(y int) {
		k := workerIndex(y, n)
		scratch[k] = growSpan(scratch[k], area.Dx())
		src := scratch[k]
		r.Draw(area.Min.X, y, src)

		dst := s.Row(y)[area.Min.X:area.Max.X]
		for i, c := range src {
			dst[i] = over(c, dst[i])
		}
	})
}

// over composites the premultiplied pixel s over d.
func over(s, d uint32) uint32 {
	switch a := s >> 24; a {
	case 255:
		return s
	case 0:
		return s + d
	default:
		return s + mul256(256-a, d)
	}
}

// RGBA returns a copy of the surface as an image.
func (s *Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	for y := range s.Height {
		row := s.Row(y)
		pix := img.Pix[y*img.Stride : y*img.Stride+4*s.Width]
		for x, c := range row {
			pix[4*x] = uint8(c >> 16)
			pix[4*x+1] = uint8(c >> 8)
			pix[4*x+2] = uint8(c)
			pix[4*x+3] = uint8(c >> 24)
		}
	}
	return img
}

// ARGB converts c to a premultiplied ARGB8888 pixel value.
func ARGB(c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	return (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | b>>8
}

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
	"image"

	"golang.org/x/image/draw"
)

// imageRenderer serves pixels from an RGBA image.
type imageRenderer struct {
	img *image.RGBA
}

// NewImageRenderer returns a Renderer which serves the pixels of img.
// Pixels outside the bounds of img are transparent. The image is copied,
// so later changes to img are not seen.
func NewImageRenderer(img image.Image) Renderer {
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return &imageRenderer{img: rgba}
}

// NewScaledImageRenderer returns a Renderer which serves img, scaled to
// fill the rectangle r with Catmull-Rom interpolation.
func NewScaledImageRenderer(img image.Image, r image.Rectangle) Renderer {
	rgba := image.NewRGBA(r)
	draw.CatmullRom.Scale(rgba, r, img, img.Bounds(), draw.Src, nil)
	return &imageRenderer{img: rgba}
}

func (ir *imageRenderer) Draw(x, y int, dst []uint32) {
	clear(dst)

	b := ir.img.Rect
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	x0 := max(x, b.Min.X)
	x1 := min(x+len(dst), b.Max.X)
	for px := x0; px < x1; px++ {
		i := ir.img.PixOffset(px, y)
		p := ir.img.Pix[i : i+4 : i+4]
		dst[px-x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
	}
}

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

// Command renderpng renders all test cases with the sparse-sample
// rasterizer and writes the results as grayscale PNG images.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/testcases"
)

const outDir = "testdata/output"

func main() {
	samples := flag.Int("q", 32, "samples per pixel row (8, 16 or 32)")
	verbose := flag.Bool("v", false, "log rasterizer setup")
	flag.Parse()

	q := raster.Quality(*samples)
	if !q.Valid() {
		fmt.Fprintf(os.Stderr, "renderpng: unsupported quality %d\n", *samples)
		os.Exit(2)
	}
	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := render(tc, q, filepath.Join(outDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func render(tc testcases.TestCase, q raster.Quality, fname string) error {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	err := raster.RenderExample(tc, q, img.Pix, tc.Width, tc.Height, img.Stride)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

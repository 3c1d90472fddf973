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

	"golang.org/x/sync/errgroup"
)

// worker is the scratch state used for the rows assigned to one worker
// index. Rows of the same worker index must never be drawn concurrently.
type worker[M maskWord] struct {
	fill   coverage[M]
	stroke coverage[M]

	fillAlpha   []uint8
	strokeAlpha []uint8

	fillSpan   []uint32
	strokeSpan []uint32
}

// newWorker allocates the buffers for a plan of the given width.
// Buffers of figures which are not drawn stay empty.
func newWorker[M maskWord](width int, fill, stroke, fillNonZero bool) *worker[M] {
	w := &worker[M]{}
	if fill {
		w.fill = newCoverage[M](width, fillNonZero)
		w.fillAlpha = make([]uint8, width)
	}
	if stroke {
		w.stroke = newCoverage[M](width, true)
		w.strokeAlpha = make([]uint8, width)
	}
	return w
}

// workerIndex returns the worker responsible for row y.
func workerIndex(y, n int) int {
	return ((y % n) + n) % n
}

// runRows calls draw for every row y0 ≤ y < y1. Rows are distributed over
// n goroutines by worker index, and the rows of each goroutine run in
// increasing order, so that rows sharing a worker never overlap.
// Scheduling stops once ctx is done; rows in progress are completed.
func runRows(ctx context.Context, n, y0, y1 int, draw func(y int)) error {
	if y0 >= y1 {
		return ctx.Err()
	}
	n = max(min(n, y1-y0), 1)

	g, ctx := errgroup.WithContext(ctx)
	first := workerIndex(y0, n)
	for k := range n {
		g.Go(func() error {
			for y := y0 + workerIndex(k-first, n); y < y1; y += n {
				if err := ctx.Err(); err != nil {
					return err
				}
				draw(y)
			}
			return nil
		})
	}
	return g.Wait()
}

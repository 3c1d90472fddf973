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
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
)

var (
	// ErrInvalidConfig is returned by New for unsupported configurations.
	ErrInvalidConfig = errors.New("invalid rasterizer configuration")

	// ErrInvalidFigure is returned by Setup for figures with non-finite
	// coordinates.
	ErrInvalidFigure = errors.New("invalid figure")

	// ErrFigureTooLarge is returned by Setup if the horizontal extent of
	// the figures exceeds MaxExtent pixels, or if a coordinate is too far
	// from the origin.
	ErrFigureTooLarge = errors.New("figure too large")
)

// MaxExtent is the largest horizontal extent of a shape, in pixels.
// Sample positions within a row are tracked in 16.16 fixed point relative
// to the left edge of the shape.
const MaxExtent = 1 << 14

// maxCoordinate bounds the absolute value of all figure coordinates.
const maxCoordinate = 1 << 30

// Renderer produces premultiplied ARGB8888 pixels.
type Renderer interface {
	// Draw fills dst with the pixels (x, y), ..., (x+len(dst)-1, y).
	Draw(x, y int, dst []uint32)
}

// Paint is the pixel source of a fill or a stroke.
type Paint struct {
	// Color is a premultiplied ARGB8888 color. If Renderer is set, the
	// renderer's pixels are multiplied by Color, unless Color is 0 or
	// 0xFFFFFFFF.
	Color uint32

	// Renderer, if not nil, supplies the pixels of the paint.
	Renderer Renderer
}

func (p *Paint) tinted() bool {
	return p.Color != 0 && p.Color != 0xffffffff
}

// Shape is a figure to be filled and an outline to be stroked.
// Figures are in device space. Stroke figures are filled with the nonzero
// rule; every polygon of a stroke figure is treated as closed.
type Shape struct {
	Fill   *Figure
	Stroke *Figure

	FillPaint   Paint
	StrokePaint Paint
}

// Config selects the sampling and drawing parameters of a rasterizer.
type Config struct {
	// Quality is the number of samples per pixel row.
	Quality Quality

	// FillRule is the rule used for the fill figure.
	FillRule FillRule

	// Mode selects whether the fill figure, the stroke figure, or both are
	// drawn.
	Mode DrawMode

	// Workers is the number of rows which may be drawn concurrently.
	// Values ≤ 0 select runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultConfig returns the configuration used for most drawing: good
// quality, the nonzero rule, fill only, and one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Quality:  Good,
		FillRule: NonZero,
		Mode:     ModeFill,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

func (c Config) validate() error {
	if !c.Quality.Valid() {
		return fmt.Errorf("%w: unsupported quality %v", ErrInvalidConfig, c.Quality)
	}
	if c.FillRule != NonZero && c.FillRule != EvenOdd {
		return fmt.Errorf("%w: unsupported fill rule %v", ErrInvalidConfig, c.FillRule)
	}
	if c.Mode&ModeFillStroke == 0 || c.Mode&^ModeFillStroke != 0 {
		return fmt.Errorf("%w: unsupported draw mode %v", ErrInvalidConfig, c.Mode)
	}
	return nil
}

// Rasterizer draws anti-aliased shapes.
//
// Setup prepares a shape and must complete before any row is drawn.
// After Setup, Draw may be called concurrently for rows with different
// worker indices (y mod Workers()); rows with the same worker index must
// be drawn one at a time. Cleanup must not overlap any Draw call.
//
// A Rasterizer is itself a Renderer, so it can serve as the paint of
// another shape. In this case both rasterizers should use the same
// number of workers.
type Rasterizer interface {
	Renderer

	// Setup prepares the rasterizer for drawing s. The figures must not
	// be modified until Cleanup is called or Setup is called again.
	// If Setup fails, Draw leaves its destination untouched.
	Setup(s *Shape) error

	// Cleanup releases the buffers allocated by Setup.
	Cleanup()

	// Workers returns the number of worker indices.
	Workers() int

	// Config returns the configuration of the rasterizer.
	Config() Config
}

// New returns a sparse-sample scanline rasterizer for the given
// configuration.
func New(cfg Config) (Rasterizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	switch cfg.Quality {
	case Fast:
		return newKIIA(cfg, fastTable), nil
	case Good:
		return newKIIA(cfg, goodTable), nil
	default:
		return newKIIA(cfg, bestTable), nil
	}
}

// kiia is the sparse-sample rasterizer for masks of type M.
type kiia[M maskWord, S sampler[M]] struct {
	cfg   Config
	table *drawTable[M, S]

	shape Shape
	plan  rasterPlan
	draw  drawFunc[M, S]

	fillEdges   []edge
	strokeEdges []edge
	fillCache   edgeCache
	strokeCache edgeCache

	workers []*worker[M]
	ready   bool
}

// edgeCache remembers which figure generation an edge list was built for.
type edgeCache struct {
	fig *Figure
	gen uint64
}

func (c *edgeCache) valid(fig *Figure) bool {
	return c.fig == fig && c.gen == fig.Generation()
}

func newKIIA[M maskWord, S sampler[M]](cfg Config, table *drawTable[M, S]) *kiia[M, S] {
	return &kiia[M, S]{cfg: cfg, table: table}
}

func (k *kiia[M, S]) Config() Config {
	return k.cfg
}

func (k *kiia[M, S]) Workers() int {
	return k.cfg.Workers
}

func (k *kiia[M, S]) Setup(s *Shape) error {
	k.ready = false
	k.workers = nil

	err := k.setup(s)
	if err != nil {
		Logger().Warn("rasterizer setup failed",
			slog.String("quality", k.cfg.Quality.String()),
			slog.Any("error", err))
		return err
	}
	k.ready = true
	return nil
}

func (k *kiia[M, S]) setup(s *Shape) error {
	if s == nil {
		s = &Shape{}
	}
	fill := k.cfg.Mode&ModeFill != 0
	stroke := k.cfg.Mode&ModeStroke != 0

	var figs []*Figure
	if fill {
		figs = append(figs, s.Fill)
	}
	if stroke {
		figs = append(figs, s.Stroke)
	}
	plan, err := k.makePlan(figs)
	if err != nil {
		return err
	}

	if fill {
		k.fillEdges = k.edges(k.fillEdges, &k.fillCache, s.Fill, false)
	}
	if stroke {
		k.strokeEdges = k.edges(k.strokeEdges, &k.strokeCache, s.Stroke, true)
	}

	k.shape = *s
	k.plan = plan
	k.draw = k.table[k.cfg.FillRule][paintKindOf(&k.shape.FillPaint, fill)][paintKindOf(&k.shape.StrokePaint, stroke)]

	width := plan.width()
	k.workers = make([]*worker[M], k.cfg.Workers)
	for i := range k.workers {
		k.workers[i] = newWorker[M](width, fill, stroke, k.cfg.FillRule == NonZero)
	}

	Logger().Debug("rasterizer setup",
		slog.String("quality", k.cfg.Quality.String()),
		slog.String("rule", k.cfg.FillRule.String()),
		slog.String("mode", k.cfg.Mode.String()),
		slog.Int("fillEdges", len(k.fillEdges)),
		slog.Int("strokeEdges", len(k.strokeEdges)),
		slog.Int("lx", plan.lx),
		slog.Int("rx", plan.rx),
		slog.Int("workers", len(k.workers)))
	return nil
}

// edges returns the edge list of fig, rebuilding it into buf unless the
// cache is still valid.
func (k *kiia[M, S]) edges(buf []edge, cache *edgeCache, fig *Figure, stroke bool) []edge {
	if fig != nil && cache.valid(fig) {
		return buf
	}
	buf = buildEdges(buf, fig, k.cfg.Quality, stroke)
	checkEdges(buf)
	*cache = edgeCache{fig: fig, gen: fig.Generation()}
	return buf
}

// makePlan computes the horizontal extent of the union of the figures'
// bounds.
func (k *kiia[M, S]) makePlan(figs []*Figure) (rasterPlan, error) {
	plan := rasterPlan{
		pattern: patternFor(k.cfg.Quality),
		samples: k.cfg.Quality.Samples(),
	}

	var xMin, xMax float64
	have := false
	for _, fig := range figs {
		b, ok := fig.Bounds()
		if !ok {
			continue
		}
		for _, v := range []float64{b.LLx, b.LLy, b.URx, b.URy} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return rasterPlan{}, fmt.Errorf("%w: bounds %v", ErrInvalidFigure, b)
			}
			if math.Abs(v) > maxCoordinate {
				return rasterPlan{}, fmt.Errorf("%w: bounds %v", ErrFigureTooLarge, b)
			}
		}
		if !have {
			xMin, xMax = b.LLx, b.URx
			have = true
		} else {
			xMin, xMax = min(xMin, b.LLx), max(xMax, b.URx)
		}
	}
	if !have {
		return plan, nil
	}

	if xMax-xMin > MaxExtent {
		return rasterPlan{}, fmt.Errorf("%w: x range [%g, %g]", ErrFigureTooLarge, xMin, xMax)
	}
	plan.lx = int(math.Floor(xMin))
	plan.rx = int(math.Ceil(xMax))
	return plan, nil
}

func (k *kiia[M, S]) Draw(x, y int, dst []uint32) {
	if !k.ready || len(dst) == 0 {
		return
	}
	w := k.workers[workerIndex(y, len(k.workers))]
	k.draw(k, w, x, y, dst)
}

func (k *kiia[M, S]) Cleanup() {
	k.ready = false
	k.workers = nil
	k.shape = Shape{}
}

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

// Pixels are premultiplied ARGB8888 values, 0xAARRGGBB.

// mul256 multiplies all four channels of c by a/256, for a in 1..256.
func mul256(a, c uint32) uint32 {
	return ((((c >> 8) & 0x00ff00ff) * a) & 0xff00ff00) +
		((((c & 0x00ff00ff) * a) >> 8) & 0x00ff00ff)
}

// interp256 interpolates linearly between c1 (a=0) and c0 (a=256),
// channel by channel.
func interp256(a, c0, c1 uint32) uint32 {
	return (((((((c0 >> 8) & 0xff00ff) - ((c1 >> 8) & 0xff00ff)) * a) +
		(c1 & 0xff00ff00)) & 0xff00ff00) +
		(((((((c0 & 0xff00ff) - (c1 & 0xff00ff)) * a) >> 8) +
			(c1 & 0xff00ff)) & 0xff00ff))
}

// mul4Sym multiplies the pixels c1 and c2 channel by channel, with
// symmetric rounding: 0xff is the identity and 0x00 absorbs.
func mul4Sym(c1, c2 uint32) uint32 {
	return ((((c1>>16)&0xff00)*((c2>>16)&0xff00) + 0xff0000) & 0xff000000) +
		((((c1>>8)&0xff00)*((c2>>16)&0xff) + 0xff00) & 0xff0000) +
		((((c1&0xff00)*(c2&0xff00) + 0xff0000) >> 16) & 0xff00) +
		(((c1&0xff)*(c2&0xff) + 0xff) >> 8)
}

// fillPixel applies the fill coverage a to the fill pixel c.
func fillPixel(a uint8, c uint32) uint32 {
	switch a {
	case 255:
		return c
	case 0:
		return 0
	default:
		return mul256(uint32(a)+1, c)
	}
}

// strokePixel places the stroke pixel s with coverage a on top of the
// already composited fill pixel f.
func strokePixel(a uint8, s, f uint32) uint32 {
	switch a {
	case 255:
		return s
	case 0:
		return f
	default:
		return interp256(uint32(a)+1, s, f)
	}
}

// paintKind classifies the source of fill or stroke pixels.
type paintKind int

const (
	kindNone paintKind = iota // not drawn in this mode
	kindColor
	kindRenderer
	numPaintKinds
)

func paintKindOf(p *Paint, drawn bool) paintKind {
	switch {
	case !drawn:
		return kindNone
	case p.Renderer != nil:
		return kindRenderer
	default:
		return kindColor
	}
}

// paintSource supplies the pixels of one paint for the current span.
type paintSource interface {
	// active reports whether the paint takes part in the drawing.
	active() bool

	// load prepares the pixels for the span of len(buf) pixels starting
	// at (x, y). buf may be used as storage.
	load(p *Paint, x, y int, buf []uint32)

	// at returns pixel i of the span.
	at(i int) uint32
}

// paintPtr is satisfied by pointers to paint source types.
type paintPtr[T any] interface {
	*T
	paintSource
}

type noPaint struct{}

func (*noPaint) active() bool                    { return false }
func (*noPaint) load(*Paint, int, int, []uint32) {}
func (*noPaint) at(int) uint32                   { return 0 }

type colorPaint struct {
	c uint32
}

func (*colorPaint) active() bool { return true }

func (cp *colorPaint) load(p *Paint, _, _ int, _ []uint32) {
	cp.c = p.Color
}

func (cp *colorPaint) at(int) uint32 { return cp.c }

type spanPaint struct {
	span []uint32
}

func (*spanPaint) active() bool { return true }

func (sp *spanPaint) load(p *Paint, x, y int, buf []uint32) {
	p.Renderer.Draw(x, y, buf)
	if p.tinted() {
		for i, c := range buf {
			buf[i] = mul4Sym(p.Color, c)
		}
	}
	sp.span = buf
}

func (sp *spanPaint) at(i int) uint32 { return sp.span[i] }

// drawFunc draws the pixel row y into dst, starting at column x, using the
// worker state w.
type drawFunc[M maskWord, S sampler[M]] func(k *kiia[M, S], w *worker[M], x, y int, dst []uint32)

// drawTable holds one draw function per fill rule, fill paint kind and
// stroke paint kind.
type drawTable[M maskWord, S sampler[M]] [2][numPaintKinds][numPaintKinds]drawFunc[M, S]

var (
	fastTable = newDrawTable[uint8, fast8]()
	goodTable = newDrawTable[uint16, good16]()
	bestTable = newDrawTable[uint32, best32]()
)

func newDrawTable[M maskWord, S sampler[M]]() *drawTable[M, S] {
	t := &drawTable[M, S]{}
	fillFuncs[M, S, nonZero[M, S]](&t[NonZero])
	fillFuncs[M, S, evenOdd[M, S]](&t[EvenOdd])
	return t
}

func fillFuncs[M maskWord, S sampler[M], R fillRule[M]](t *[numPaintKinds][numPaintKinds]drawFunc[M, S]) {
	strokeFuncs[M, S, R, noPaint, *noPaint](&t[kindNone])
	strokeFuncs[M, S, R, colorPaint, *colorPaint](&t[kindColor])
	strokeFuncs[M, S, R, spanPaint, *spanPaint](&t[kindRenderer])
}

func strokeFuncs[M maskWord, S sampler[M], R fillRule[M], F any, PF paintPtr[F]](t *[numPaintKinds]drawFunc[M, S]) {
	t[kindNone] = drawRow[M, S, R, F, PF, noPaint, *noPaint]
	t[kindColor] = drawRow[M, S, R, F, PF, colorPaint, *colorPaint]
	t[kindRenderer] = drawRow[M, S, R, F, PF, spanPaint, *spanPaint]
}

// drawRow is the generic draw routine behind all entries of the draw
// tables.
//
// The fill figure is sampled with the rule R, the stroke figure always
// with the nonzero rule. Pixels left and right of the sampled columns are
// transparent; dst is cleared first.
func drawRow[M maskWord, S sampler[M], R fillRule[M], F any, PF paintPtr[F], G any, PG paintPtr[G]](k *kiia[M, S], w *worker[M], x, y int, dst []uint32) {
	clear(dst)

	var fill F
	var stroke G
	fp, sp := PF(&fill), PG(&stroke)
	p := &k.plan

	width := p.width()
	flo, fhi, ftail := width, -1, uint8(0)
	if fp.active() {
		var rule R
		flo, fhi = evaluateRow[M, R](k.fillEdges, y, p, &w.fill)
		ftail = rule.resolve(&w.fill, flo, fhi, w.fillAlpha)
	}
	slo, shi, stail := width, -1, uint8(0)
	if sp.active() {
		var rule nonZero[M, S]
		slo, shi = evaluateRow[M, nonZero[M, S]](k.strokeEdges, y, p, &w.stroke)
		stail = rule.resolve(&w.stroke, slo, shi, w.strokeAlpha)
	}

	// the part of dst which can receive non-zero pixels
	i0 := max(min(flo, slo)+p.lx-x, 0)
	i1 := len(dst)
	if ftail == 0 && stail == 0 {
		i1 = min(i1, max(fhi, shi)+p.lx-x+1)
	}
	if i0 >= i1 {
		return
	}

	n := i1 - i0
	if fp.active() {
		w.fillSpan = growSpan(w.fillSpan, n)
		fp.load(&k.shape.FillPaint, x+i0, y, w.fillSpan[:n])
	}
	if sp.active() {
		w.strokeSpan = growSpan(w.strokeSpan, n)
		sp.load(&k.shape.StrokePaint, x+i0, y, w.strokeSpan[:n])
	}

	for i := i0; i < i1; i++ {
		c := x + i - p.lx
		j := i - i0
		var out uint32
		if fp.active() {
			out = fillPixel(alphaAt(w.fillAlpha, c, flo, fhi, ftail), fp.at(j))
		}
		if sp.active() {
			out = strokePixel(alphaAt(w.strokeAlpha, c, slo, shi, stail), sp.at(j), out)
		}
		dst[i] = out
	}
}

// alphaAt returns the resolved alpha of buffer column c. Columns left of
// lo have no coverage, columns right of hi inherit the running coverage
// at hi.
func alphaAt(alpha []uint8, c, lo, hi int, tail uint8) uint8 {
	switch {
	case c < lo:
		return 0
	case c > hi:
		return tail
	default:
		return alpha[c]
	}
}

func growSpan(buf []uint32, n int) []uint32 {
	if cap(buf) < n {
		return make([]uint32, n)
	}
	return buf[:n]
}

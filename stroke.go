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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroker converts paths into stroke outline figures.
//
// The outline consists of closed rings which together cover the stroked
// area when filled with the nonzero winding rule. Rings may overlap each
// other and themselves. A Stroker reuses its internal buffers between
// calls and is not safe for concurrent use.
type Stroker struct {
	// CTM transforms from user space to device space. The zero matrix is
	// treated as the identity.
	CTM matrix.Matrix

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the line width in user-space units. Must be positive.
	Width float64

	// Cap is the style of open subpath ends.
	Cap graphics.LineCapStyle

	// Join is the style of corners between segments.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins. Must be at least 1.
	MiterLimit float64

	// Dash holds alternating on/off lengths in user-space units.
	// Nil means a solid line.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which the
	// pattern starts.
	DashPhase float64

	fl flattener

	segs     []strokeSegment // flattened segments of all subpaths
	subpaths []segRange      // subpaths as ranges of segs
	dots     []vec.Vec2      // subpaths without direction

	dashed []strokeSegment // segments of all dashes
	dashes []segRange      // dashes as ranges of dashed

	rev  []strokeSegment // reversed copy of the current subpath
	ring []vec.Vec2      // outline ring under construction (user space)
	out  *Figure
}

// strokeSegment is a line segment in user space.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by 90°
}

// reversed returns the segment traversed from B to A.
func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// segRange is a contiguous run of segments.
type segRange struct {
	start, end int
	closed     bool
}

// NewStroker returns a Stroker with PDF default parameters: line width 1,
// butt caps, miter joins with limit 10 and no dashing.
func NewStroker() *Stroker {
	return &Stroker{
		CTM:        matrix.Identity,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Outline returns the stroke outline of p as a figure in device space.
func (s *Stroker) Outline(p path.Path) *Figure {
	s.fl = newFlattener(s.CTM, s.Flatness)
	s.out = NewFigure()
	defer func() { s.out = nil }()

	s.collectSegments(p)
	d := s.Width / 2
	if !(d > 0) {
		return s.out
	}

	// Subpaths without a direction only show up with round caps.
	if s.Cap == graphics.LineCapRound {
		for _, pt := range s.dots {
			s.ring = s.ring[:0]
			s.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			s.emitRing()
		}
	}

	if s.dashPattern() != nil {
		s.applyDash()
		for _, r := range s.dashes {
			segs := s.dashed[r.start:r.end]
			if len(segs) == 1 && segs[0].A == segs[0].B {
				s.outlineDot(segs[0], d)
				continue
			}
			s.outlineOpen(segs, d)
		}
		return s.out
	}

	for _, r := range s.subpaths {
		segs := s.segs[r.start:r.end]
		if r.closed {
			s.outlineClosed(segs, d)
		} else {
			s.outlineOpen(segs, d)
		}
	}
	return s.out
}

// emitRing adds the current ring to the output figure, in device space.
func (s *Stroker) emitRing() {
	if len(s.ring) < 3 {
		return
	}
	for i, pt := range s.ring {
		s.ring[i] = s.fl.apply(pt)
	}
	s.out.AddPolygon(true, s.ring...)
}

// collectSegments flattens p into s.segs, recording subpath ranges in
// s.subpaths and direction-less subpaths in s.dots.
func (s *Stroker) collectSegments(p path.Path) {
	s.segs = s.segs[:0]
	s.subpaths = s.subpaths[:0]
	s.dots = s.dots[:0]

	var cur, start vec.Vec2
	first := 0
	open := false  // inside a subpath
	drawn := false // a drawing operator was seen in this subpath

	finish := func(closed bool) {
		if !open {
			return
		}
		if len(s.segs) > first {
			s.subpaths = append(s.subpaths, segRange{start: first, end: len(s.segs), closed: closed})
		} else if drawn {
			s.dots = append(s.dots, start)
		}
		first = len(s.segs)
		open = false
		drawn = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur = pts[0]
			start = cur
			open = true
		case path.CmdLineTo:
			if open {
				drawn = true
				s.addSegment(cur, pts[0])
				cur = pts[0]
			}
		case path.CmdQuadTo:
			if open {
				drawn = true
				s.fl.flattenQuadratic(cur, pts[0], pts[1], s.addSegment)
				cur = pts[1]
			}
		case path.CmdCubeTo:
			if open {
				drawn = true
				s.fl.flattenCubic(cur, pts[0], pts[1], pts[2], s.addSegment)
				cur = pts[2]
			}
		case path.CmdClose:
			if open {
				if cur != start {
					s.addSegment(cur, start)
				}
				drawn = true
				finish(true)
				cur = start
			}
		}
	}
	finish(false)
}

// addSegment appends the segment a→b, skipping zero-length segments.
func (s *Stroker) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	s.segs = append(s.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// outlineClosed emits two rings for a closed subpath: one along the +N
// side and one along the +N side of the reversed subpath. The rings run
// in opposite directions, so the region between them has winding ±1.
func (s *Stroker) outlineClosed(segs []strokeSegment, d float64) {
	s.ring = s.ring[:0]
	s.closedSide(segs, d)
	s.emitRing()

	s.ring = s.ring[:0]
	s.closedSide(s.reverse(segs), d)
	s.emitRing()
}

// closedSide appends the +N offset of a closed subpath to s.ring,
// including the corner from the last segment back to the first.
func (s *Stroker) closedSide(segs []strokeSegment, d float64) {
	n := len(segs)
	for i := range n {
		s.corner(&segs[i], &segs[(i+1)%n], d)
	}
}

// outlineOpen emits a single ring for an open subpath: start cap, +N
// side, end cap, and the +N side of the reversed subpath.
func (s *Stroker) outlineOpen(segs []strokeSegment, d float64) {
	s.ring = s.ring[:0]
	s.openSide(segs, d)
	s.openSide(s.reverse(segs), d)
	s.emitRing()
}

// openSide appends the cap at the start of segs followed by the +N offset
// of all segments.
func (s *Stroker) openSide(segs []strokeSegment, d float64) {
	first, last := &segs[0], &segs[len(segs)-1]
	s.addCap(first.A, first.T.Mul(-1), d)
	s.ring = append(s.ring, first.A.Add(first.N.Mul(d)))
	for i := range len(segs) - 1 {
		s.corner(&segs[i], &segs[i+1], d)
	}
	s.ring = append(s.ring, last.B.Add(last.N.Mul(d)))
}

// corner appends the +N side geometry where seg meets next. On return,
// the last point of the ring lies on the offset line of next.
func (s *Stroker) corner(seg, next *strokeSegment, d float64) {
	sin := cross(seg.T, next.T)
	switch {
	case math.Abs(sin) < collinearityThreshold && seg.T.Dot(next.T) > 0:
		s.ring = append(s.ring, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
	case sin > 0:
		// +N is the inner side of the turn
		if pt, ok := innerIntersection(seg.B, seg.T, next.T, d); ok {
			s.ring = append(s.ring, pt)
			return
		}
		s.ring = append(s.ring, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
	default:
		// +N is the outer side of the turn
		s.ring = append(s.ring, seg.B.Add(seg.N.Mul(d)))
		s.addJoin(seg.B, seg.T, next.T, d)
		s.ring = append(s.ring, next.A.Add(next.N.Mul(d)))
	}
}

// addJoin adds the outer join geometry at P, where the tangent turns
// from T1 to T2, on the +N side.
func (s *Stroker) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cos := T1.Dot(T2)
	if cos < cuspCosineThreshold {
		// The path doubles back on itself. A cap around P leads
		// directly to the offset line of the next segment.
		s.addCap(P, T1, d)
		return
	}

	switch s.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
		s.addArc(P, d, N1, -angle, false)

	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2),
		// where φ is the interior angle: sin(φ/2) = cos(θ/2).
		const miterEpsilon = 1e-10
		sinHalf := math.Sqrt((1 + cos) / 2)
		if sinHalf <= 0 || 1/sinHalf > s.MiterLimit+miterEpsilon {
			return // bevel
		}
		bisector := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X}
		l := bisector.Length()
		if l <= zeroLengthThreshold {
			return
		}
		s.ring = append(s.ring, P.Add(bisector.Mul(d/(sinHalf*l))))

	default:
		// Bevel joins connect the two offset points directly.
	}
}

// addCap adds a line cap at P. T is the unit tangent pointing away from
// the line. The cap runs from the +N side of T to its -N side.
func (s *Stroker) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch s.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		s.ring = append(s.ring, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		s.addArc(P, d, N, -math.Pi, true)
	default:
		// Butt caps connect the two sides directly.
	}
}

// innerIntersection returns the intersection of the two +N offset lines
// at a corner P where the tangent turns from T1 to T2. For (almost)
// collinear or reversing tangents there is no usable intersection.
func innerIntersection(P, T1, T2 vec.Vec2, d float64) (vec.Vec2, bool) {
	cos := T1.Dot(T2)
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	halfAngle := math.Sqrt((1 + cos) / 2)
	if halfAngle < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (halfAngle * l))), true
}

// addArc appends points on a circular arc around center. startDir is the
// unit vector from the center to the arc start and sweep is the signed
// sweep angle. If includeStart is false, the start point is assumed to
// be in the ring already.
func (s *Stroker) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		s.fl.transformLinear(vec.Vec2{X: radius}).Length(),
		s.fl.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord spanning angle θ deviates from the arc by r(1-cos(θ/2)).
	n := 1
	if devRadius > s.fl.flatness {
		step := 2 * math.Acos(1-s.fl.flatness/devRadius)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		s.ring = append(s.ring, center.Add(dir.Mul(radius)))
	}
}

// outlineDot emits the outline of a zero-length dash.
func (s *Stroker) outlineDot(seg strokeSegment, d float64) {
	s.ring = s.ring[:0]
	switch s.Cap {
	case graphics.LineCapRound:
		s.addArc(seg.A, d, vec.Vec2{X: 1}, 2*math.Pi, true)
	case graphics.LineCapSquare:
		c, T, N := seg.A, seg.T.Mul(d), seg.N.Mul(d)
		s.ring = append(s.ring,
			c.Add(T).Add(N),
			c.Add(T).Sub(N),
			c.Sub(T).Sub(N),
			c.Sub(T).Add(N),
		)
	}
	s.emitRing()
}

// reverse returns the segments of segs in reverse order and direction.
// The result is only valid until the next call.
func (s *Stroker) reverse(segs []strokeSegment) []strokeSegment {
	s.rev = s.rev[:0]
	for i := len(segs) - 1; i >= 0; i-- {
		s.rev = append(s.rev, segs[i].reversed())
	}
	return s.rev
}

// cross returns the z component of the cross product a×b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// dashPattern returns the dash pattern with odd-length patterns repeated
// once, or nil if the line is solid.
func (s *Stroker) dashPattern() []float64 {
	if len(s.Dash) == 0 {
		return nil
	}
	total := 0.0
	for _, l := range s.Dash {
		if l < 0 {
			return nil
		}
		total += l
	}
	if !(total > 0) {
		return nil
	}
	if len(s.Dash)%2 == 1 {
		return append(append([]float64(nil), s.Dash...), s.Dash...)
	}
	return s.Dash
}

// applyDash splits the collected subpaths into dashes.
// The results are stored in s.dashed and s.dashes.
func (s *Stroker) applyDash() {
	s.dashed = s.dashed[:0]
	s.dashes = s.dashes[:0]

	pattern := s.dashPattern()
	period := 0.0
	for _, l := range pattern {
		period += l
	}
	phase := math.Mod(s.DashPhase, period)
	if phase < 0 {
		phase += period
	}

	// position in the pattern at the start of every subpath
	idx0 := 0
	for phase > 0 && phase >= pattern[idx0] {
		phase -= pattern[idx0]
		idx0 = (idx0 + 1) % len(pattern)
	}
	rem0 := pattern[idx0] - phase

	for _, r := range s.subpaths {
		idx, rem := idx0, rem0
		on := idx%2 == 0
		startedOn := on
		firstDash := len(s.dashes)
		dashStart := len(s.dashed)

		endDash := func() {
			if len(s.dashed) > dashStart {
				s.dashes = append(s.dashes, segRange{start: dashStart, end: len(s.dashed)})
			}
			dashStart = len(s.dashed)
		}

		for _, seg := range s.segs[r.start:r.end] {
			segLen := seg.B.Sub(seg.A).Length()
			pos := 0.0
			for {
				left := segLen - pos
				if rem >= left {
					if on && left > 0 {
						s.dashed = append(s.dashed, seg.piece(pos/segLen, 1))
					}
					rem -= left
					break
				}

				end := pos + rem
				if on {
					if end-pos > zeroLengthThreshold {
						s.dashed = append(s.dashed, seg.piece(pos/segLen, end/segLen))
					} else if len(s.dashed) == dashStart {
						p := seg.A.Add(seg.B.Sub(seg.A).Mul(pos / segLen))
						s.dashed = append(s.dashed, strokeSegment{A: p, B: p, T: seg.T, N: seg.N})
					}
					endDash()
				}
				pos = end
				idx = (idx + 1) % len(pattern)
				rem = pattern[idx]
				on = idx%2 == 0
			}
		}

		if on && len(s.dashed) > dashStart {
			lastStart := dashStart
			endDash()
			// On closed subpaths, a dash running through the start point
			// is joined with the first dash.
			if r.closed && startedOn && len(s.dashes)-firstDash >= 2 {
				first := s.dashes[firstDash]
				if first.start < lastStart {
					s.dashed = append(s.dashed, s.dashed[first.start:first.end]...)
					s.dashes[len(s.dashes)-1].end = len(s.dashed)
					s.dashes = append(s.dashes[:firstDash], s.dashes[firstDash+1:]...)
				}
			}
		}
	}
}

// piece returns the part of the segment between the relative positions
// t0 and t1.
func (seg strokeSegment) piece(t0, t1 float64) strokeSegment {
	d := seg.B.Sub(seg.A)
	return strokeSegment{
		A: seg.A.Add(d.Mul(t0)),
		B: seg.A.Add(d.Mul(t1)),
		T: seg.T,
		N: seg.N,
	}
}

// Numerical tolerances for stroking.
const (
	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects paths which double back on themselves.
	// cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)

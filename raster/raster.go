// seehuhn.de/go/printout - print-ready tickets and reports
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

// Package raster converts filled paths into anti-aliased pixel coverage.
//
// Coverage is computed exactly for polygons, using signed area
// accumulation per pixel; curves are flattened to line segments first.
// Strokes are not handled here: callers convert strokes to outlines
// before filling.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// EmitFunc receives the coverage of one pixel row.  Coverage values are
// in the range [0, 1]; coverage[i] belongs to pixel (xMin+i, y).  The
// slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rule selects how the interior of a path is determined.
type Rule int

// These are the supported fill rules.
const (
	NonZero Rule = iota
	EvenOdd
)

// segment is a non-horizontal line segment in device space, stored with
// y0 < y1.  The winding direction of the original segment is kept in dir.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original segment pointed downwards
}

// Rasterizer fills paths.  A Rasterizer can be reused for any number of
// paths; its buffers grow as needed and are kept between calls.
// A Rasterizer must not be used concurrently.
type Rasterizer struct {
	// CTM maps path coordinates to device pixels.
	CTM matrix.Matrix

	// Clip is the device region which receives output.  The coordinates
	// must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	segs      []segment
	active    []int
	cover     []float32
	area      []float32
	crossings []float64

	bbox     rect.Rect
	haveBBox bool
}

// NewRasterizer returns a Rasterizer with an identity transformation and
// the given clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.segs = r.segs[:0]
	r.active = r.active[:0]
}

// Fill computes the coverage of p under the given fill rule.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit EmitFunc) {
	if !r.flatten(p) {
		return
	}

	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, rule, emit)
}

// FillNonZero is a short-hand for Fill(p, NonZero, emit).
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd is a short-hand for Fill(p, EvenOdd, emit).
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// flatten converts p into device space segments and records their
// bounding box.  The return value is false if no segments remain.
func (r *Rasterizer) flatten(p *path.Data) bool {
	r.segs = r.segs[:0]
	r.haveBBox = false

	var cur, start vec.Vec2
	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addSegment(cur, start)
			}
			cur = p.Coords[i]
			start = cur
			i++
		case path.CmdLineTo:
			r.addSegment(cur, p.Coords[i])
			cur = p.Coords[i]
			i++
		case path.CmdQuadTo:
			c1, c2 := p.Coords[i], p.Coords[i+1]
			// a quadratic is a cubic with raised degree
			a := cur.Add(c1.Sub(cur).Mul(2.0 / 3))
			b := c2.Add(c1.Sub(c2).Mul(2.0 / 3))
			r.addCubic(cur, a, b, c2)
			cur = c2
			i += 2
		case path.CmdCubeTo:
			r.addCubic(cur, p.Coords[i], p.Coords[i+1], p.Coords[i+2])
			cur = p.Coords[i+2]
			i += 3
		case path.CmdClose:
			if cur != start {
				r.addSegment(cur, start)
			}
			cur = start
		}
	}
	// fills implicitly close open subpaths
	if cur != start {
		r.addSegment(cur, start)
	}
	return len(r.segs) > 0
}

func (r *Rasterizer) device(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// addCubic approximates a cubic Bézier curve by line segments.  The number
// of segments is chosen using Wang's formula in device space.
func (r *Rasterizer) addCubic(p0, p1, p2, p3 vec.Vec2) {
	d0, d1, d2, d3 := r.device(p0), r.device(p1), r.device(p2), r.device(p3)
	dd1 := d0.Sub(d1.Mul(2)).Add(d2)
	dd2 := d1.Sub(d2.Mul(2)).Add(d3)
	m := max(dd1.Length(), dd2.Length())

	n := 1
	if m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for k := 1; k <= n; k++ {
		t := float64(k) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addSegment(prev, q)
		prev = q
	}
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	a, b = r.device(a), r.device(b)
	if math.Abs(b.Y-a.Y) < horizontalThreshold {
		return
	}

	dir := float32(1)
	if b.Y < a.Y {
		a, b = b, a
		dir = -1
	}
	r.segs = append(r.segs, segment{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		dir:  dir,
	})

	box := rect.Rect{LLx: min(a.X, b.X), LLy: a.Y, URx: max(a.X, b.X), URy: b.Y}
	if !r.haveBBox {
		r.bbox = box
		r.haveBBox = true
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, box.LLx)
	r.bbox.LLy = min(r.bbox.LLy, box.LLy)
	r.bbox.URx = max(r.bbox.URx, box.URx)
	r.bbox.URy = max(r.bbox.URy, box.URy)
}

// scan walks the rows of the bounding box, keeping a list of the segments
// which intersect the current row.
func (r *Rasterizer) scan(xMin, xMax, yMin, yMax int, rule Rule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.segs, func(a, b segment) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.segs) && r.segs[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(k int) bool {
			return r.segs[k].y1 <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, k := range r.active {
			r.accumulate(&r.segs[k], top, bot, xMin, xMax)
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, offset := trim(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of the part of s between the
// horizontal lines top and bot.
//
// For each pixel two quantities are collected: cover is the signed
// vertical extent of the segment pieces inside the pixel column, area is
// cover weighted by the fraction of the pixel to the right of the piece.
// A running sum of cover over the row, plus the area of the pixel itself,
// gives the signed winding coverage.
func (r *Rasterizer) accumulate(s *segment, top, bot float64, xMin, xMax int) {
	y0 := max(top, s.y0)
	y1 := min(bot, s.y1)
	if y1 <= y0 {
		return
	}

	xa := s.x0 + s.dxdy*(y0-s.y0)
	xb := s.x0 + s.dxdy*(y1-s.y0)
	left, right := min(xa, xb), max(xa, xb)
	pl, pr := int(math.Floor(left)), int(math.Floor(right))

	if pl >= xMax {
		return
	}

	// split at pixel column boundaries
	r.crossings = append(r.crossings[:0], y0, y1)
	for x := pl + 1; x <= pr; x++ {
		yx := s.y0 + (float64(x)-s.x0)/s.dxdy
		if yx > y0 && yx < y1 {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		ya, yb := r.crossings[i], r.crossings[i+1]
		if yb <= ya {
			continue
		}
		c := s.dir * float32(yb-ya)
		xm := s.x0 + s.dxdy*((ya+yb)/2-s.y0)
		px := int(math.Floor(xm))

		switch {
		case px < xMin:
			r.cover[0] += c
			r.area[0] += c
		case px < xMax:
			idx := px - xMin
			r.cover[idx] += c
			r.area[idx] += c * float32(1-(xm-float64(px)))
		}
	}
}

// integrateNonZero turns the accumulated values into coverage under the
// nonzero winding rule.  The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns the accumulated values into coverage under the
// even-odd rule.  The result overwrites cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trim removes zero coverage at both ends of a row.
func trim(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalThreshold is the minimal vertical extent of a segment.
	// Flatter segments do not contribute coverage.
	horizontalThreshold = 1e-10
)

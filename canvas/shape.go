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

package canvas

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for a quarter circle of radius 1
// approximated by a cubic Bézier curve.
const kappa = 0.5522847498

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// RectPath returns the outline of r with corners rounded to the given
// radius.  A radius of zero gives a plain rectangle.
func RectPath(r Rect, radius float64) *path.Data {
	return appendRect(&path.Data{}, r, radius)
}

func appendRect(p *path.Data, r Rect, radius float64) *path.Data {
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		return p.
			MoveTo(pt(x0, y0)).
			LineTo(pt(x1, y0)).
			LineTo(pt(x1, y1)).
			LineTo(pt(x0, y1)).
			Close()
	}

	k := radius * kappa
	return p.
		MoveTo(pt(x0+radius, y0)).
		LineTo(pt(x1-radius, y0)).
		CubeTo(pt(x1-radius+k, y0), pt(x1, y0+radius-k), pt(x1, y0+radius)).
		LineTo(pt(x1, y1-radius)).
		CubeTo(pt(x1, y1-radius+k), pt(x1-radius+k, y1), pt(x1-radius, y1)).
		LineTo(pt(x0+radius, y1)).
		CubeTo(pt(x0+radius-k, y1), pt(x0, y1-radius+k), pt(x0, y1-radius)).
		LineTo(pt(x0, y0+radius)).
		CubeTo(pt(x0, y0+radius-k), pt(x0+radius-k, y0), pt(x0+radius, y0)).
		Close()
}

// StrokeOutline returns the area covered by stroking the outline of op,
// to be filled with the even-odd rule.
func StrokeOutline(op RectOp) *path.Data {
	w := op.Paint.LineWidth / 2
	p := appendRect(&path.Data{}, op.Rect.Inset(-w), op.Radius+w)
	inner := op.Rect.Inset(w)
	if inner.W > 0 && inner.H > 0 {
		p = appendRect(p, inner, max(op.Radius-w, 0))
	}
	return p
}

// LineOutline returns the area covered by stroking op with butt caps.
// The result is empty for zero-length lines.
func LineOutline(op LineOp) *path.Data {
	a := pt(op.X1, op.Y1)
	b := pt(op.X2, op.Y2)
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || math.IsNaN(l) {
		return &path.Data{}
	}
	n := pt(-d.Y, d.X).Mul(op.Width / (2 * l))
	return (&path.Data{}).
		MoveTo(a.Add(n)).
		LineTo(b.Add(n)).
		LineTo(b.Sub(n)).
		LineTo(a.Sub(n)).
		Close()
}

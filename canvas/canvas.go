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

// Package canvas holds the page model of a printable document.
//
// All coordinates are in millimetres, measured from the top-left corner
// of the page with y growing downwards.  Every drawing call carries its
// complete paint (colour, font, line width); a page stores an ordered list
// of immutable drawing operations which can later be serialised to PDF
// or rasterised for previews.
package canvas

import (
	"fmt"
	"math"
)

// Millimetres per PDF point.
const mmPerPoint = 25.4 / 72

// PointsToMM converts a length in PDF points to millimetres.
func PointsToMM(pt float64) float64 {
	return pt * mmPerPoint
}

// MMToPoints converts a length in millimetres to PDF points.
func MMToPoints(mm float64) float64 {
	return mm / mmPerPoint
}

// Rect is an axis-aligned rectangle.  (X, Y) is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// R is a short-hand for constructing a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles which only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies inside r.
func (r Rect) Contains(o Rect) bool {
	const eps = 1e-9
	return o.X >= r.X-eps && o.Y >= r.Y-eps &&
		o.Right() <= r.Right()+eps && o.Bottom() <= r.Bottom()+eps
}

// Inset returns r shrunk by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.X, r.Y, r.W, r.H)
}

func (r Rect) valid() bool {
	return finite(r.X, r.Y, r.W, r.H) && r.W >= 0 && r.H >= 0
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Mode selects how a closed shape is painted.
type Mode int

// These are the supported paint modes.
const (
	ModeFill Mode = iota
	ModeStroke
	ModeFillStroke
)

func (m Mode) String() string {
	switch m {
	case ModeFill:
		return "fill"
	case ModeStroke:
		return "stroke"
	case ModeFillStroke:
		return "fill+stroke"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Fills reports whether the mode paints the interior.
func (m Mode) Fills() bool {
	return m == ModeFill || m == ModeFillStroke
}

// Strokes reports whether the mode paints the outline.
func (m Mode) Strokes() bool {
	return m == ModeStroke || m == ModeFillStroke
}

// Paint describes the colours and line width for a shape.
type Paint struct {
	Fill      Color
	Stroke    Color
	LineWidth float64
}

// Align is the horizontal alignment of a line of text relative to its
// anchor point.
type Align int

// These are the supported text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Factor returns the fraction of the text width which lies to the left of
// the anchor point.
func (a Align) Factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// FontStyle selects a member of the font family.
type FontStyle int

// These are the available font styles.
const (
	Regular FontStyle = iota
	Bold
	Italic
)

func (s FontStyle) String() string {
	switch s {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// Font describes how a run of text is set.
type Font struct {
	Size  float64 // in PDF points
	Style FontStyle
	Color Color
}

// SizeMM returns the font size in millimetres.
func (f Font) SizeMM() float64 {
	return PointsToMM(f.Size)
}

// TextMeasurer returns the advance width of a string, in millimetres.
type TextMeasurer interface {
	TextWidth(s string, f Font) float64
}

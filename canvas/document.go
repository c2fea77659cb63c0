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
	"errors"
	"fmt"
	"image"
)

// Size of an A4 page in portrait orientation, in millimetres.
const (
	A4Width  = 210.0
	A4Height = 297.0
)

// DefaultMargin is the page margin used by [NewA4].
const DefaultMargin = 20.0

// Margins gives the distance of the content area from the page edges.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// UniformMargins returns margins of m on all four sides.
func UniformMargins(m float64) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}

// Document is a sequence of equally sized pages.
//
// Drawing methods append operations to the current page.  If a method is
// called with invalid arguments, Err is set and all later drawing calls
// are ignored.
type Document struct {
	Width, Height float64
	Margins       Margins

	// Measure is used to resolve text alignment.
	Measure TextMeasurer

	// Y is a vertical cursor for use by layout code.
	Y float64

	// Err records the first invalid drawing call.
	Err error

	pages   []*Page
	current int
}

// New allocates a document with one empty page.
func New(width, height float64, margins Margins, m TextMeasurer) *Document {
	d := &Document{
		Width:   width,
		Height:  height,
		Margins: margins,
		Measure: m,
	}
	d.AddPage()
	return d
}

// NewA4 allocates an A4 portrait document with one empty page and the
// default margins.
func NewA4(m TextMeasurer) *Document {
	return New(A4Width, A4Height, UniformMargins(DefaultMargin), m)
}

// Bounds returns the page rectangle.
func (d *Document) Bounds() Rect {
	return Rect{W: d.Width, H: d.Height}
}

// Content returns the part of the page inside the margins.
func (d *Document) Content() Rect {
	m := d.Margins
	return Rect{
		X: m.Left,
		Y: m.Top,
		W: d.Width - m.Left - m.Right,
		H: d.Height - m.Top - m.Bottom,
	}
}

// AddPage appends a new empty page, makes it current and moves the
// cursor to the top of the content area.
func (d *Document) AddPage() *Page {
	p := &Page{Index: len(d.pages)}
	d.pages = append(d.pages, p)
	d.current = p.Index
	d.Y = d.Margins.Top
	return p
}

// Page returns the current page.
func (d *Document) Page() *Page {
	return d.pages[d.current]
}

// SelectPage makes page i current.  The cursor is not changed.
func (d *Document) SelectPage(i int) {
	if i < 0 || i >= len(d.pages) {
		d.fail(fmt.Errorf("canvas: page %d out of range", i+1))
		return
	}
	d.current = i
}

// Pages returns all pages of the document.
func (d *Document) Pages() []*Page {
	return d.pages
}

// NumPages returns the number of pages.
func (d *Document) NumPages() int {
	return len(d.pages)
}

func (d *Document) fail(err error) {
	if d.Err == nil {
		d.Err = err
	}
}

func (d *Document) add(op Op) {
	p := d.pages[d.current]
	p.Ops = append(p.Ops, op)
}

func (d *Document) checkRect(r Rect) bool {
	if d.Err != nil {
		return false
	}
	if !r.valid() {
		d.fail(fmt.Errorf("canvas: invalid rectangle %v", r))
		return false
	}
	return true
}

func (d *Document) checkWidth(w float64) bool {
	if !finite(w) || w <= 0 {
		d.fail(fmt.Errorf("canvas: invalid line width %g", w))
		return false
	}
	return true
}

// FillRect fills the rectangle r with colour c.
func (d *Document) FillRect(r Rect, c Color) {
	if !d.checkRect(r) {
		return
	}
	d.add(RectOp{Rect: r, Mode: ModeFill, Paint: Paint{Fill: c}})
}

// StrokeRect draws the outline of r.
func (d *Document) StrokeRect(r Rect, c Color, width float64) {
	if !d.checkRect(r) || !d.checkWidth(width) {
		return
	}
	d.add(RectOp{Rect: r, Mode: ModeStroke, Paint: Paint{Stroke: c, LineWidth: width}})
}

// RoundedRect paints r with corners rounded to the given radius.
// The radius is limited to half the shorter side.
func (d *Document) RoundedRect(r Rect, radius float64, mode Mode, p Paint) {
	if !d.checkRect(r) {
		return
	}
	if !finite(radius) || radius < 0 {
		d.fail(fmt.Errorf("canvas: invalid corner radius %g", radius))
		return
	}
	if mode.Strokes() && !d.checkWidth(p.LineWidth) {
		return
	}
	radius = min(radius, r.W/2, r.H/2)
	d.add(RectOp{Rect: r, Radius: radius, Mode: mode, Paint: p})
}

// Line strokes the segment from (x1, y1) to (x2, y2).
func (d *Document) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	if d.Err != nil {
		return
	}
	if !finite(x1, y1, x2, y2) {
		d.fail(errors.New("canvas: invalid line coordinates"))
		return
	}
	if !d.checkWidth(width) {
		return
	}
	d.add(LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c, Width: width})
}

// Text shows s with its anchor at x and its baseline at y, and returns the
// width of the text.
func (d *Document) Text(s string, x, y float64, f Font, a Align) float64 {
	if d.Err != nil {
		return 0
	}
	if !finite(x, y, f.Size) || f.Size <= 0 {
		d.fail(fmt.Errorf("canvas: invalid text placement for %q", s))
		return 0
	}
	if s == "" {
		return 0
	}
	var w float64
	if d.Measure != nil {
		w = d.Measure.TextWidth(s, f)
	} else if a != AlignLeft {
		d.fail(errors.New("canvas: aligned text needs a measurer"))
		return 0
	}
	d.add(TextOp{Text: s, X: x - a.Factor()*w, Y: y, Width: w, Font: f})
	return w
}

// Image draws img scaled to fill r.
func (d *Document) Image(img image.Image, r Rect) {
	if !d.checkRect(r) {
		return
	}
	if img == nil || img.Bounds().Empty() {
		d.fail(errors.New("canvas: empty image"))
		return
	}
	d.add(ImageOp{Image: img, Rect: r})
}

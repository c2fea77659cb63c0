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
	"fmt"
	"image"
)

// Op is a single drawing operation on a page.
type Op interface {
	// Bounds returns the area of the page touched by the operation.
	Bounds() Rect

	isOp()
}

// RectOp paints a rectangle, optionally with rounded corners.
type RectOp struct {
	Rect   Rect
	Radius float64
	Mode   Mode
	Paint  Paint
}

// Bounds implements the [Op] interface.
func (op RectOp) Bounds() Rect {
	if !op.Mode.Strokes() {
		return op.Rect
	}
	return op.Rect.Inset(-op.Paint.LineWidth / 2)
}

// LineOp strokes a straight line segment with butt caps.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Color          Color
	Width          float64
}

// Bounds implements the [Op] interface.
func (op LineOp) Bounds() Rect {
	x0, x1 := min(op.X1, op.X2), max(op.X1, op.X2)
	y0, y1 := min(op.Y1, op.Y2), max(op.Y1, op.Y2)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}.Inset(-op.Width / 2)
}

// TextOp shows a single line of text.  X is the left edge of the text and
// Y is the baseline; any alignment has already been resolved.
type TextOp struct {
	Text  string
	X, Y  float64
	Width float64
	Font  Font
}

// Bounds implements the [Op] interface.
// The vertical extent is approximated using the Helvetica ascender and
// descender.
func (op TextOp) Bounds() Rect {
	size := op.Font.SizeMM()
	return Rect{X: op.X, Y: op.Y - 0.718*size, W: op.Width, H: 0.925 * size}
}

// ImageOp draws a raster image scaled to fill Rect.
type ImageOp struct {
	Image image.Image
	Rect  Rect
}

// Bounds implements the [Op] interface.
func (op ImageOp) Bounds() Rect {
	return op.Rect
}

func (RectOp) isOp()  {}
func (LineOp) isOp()  {}
func (TextOp) isOp()  {}
func (ImageOp) isOp() {}

// Page is one page of a document.
type Page struct {
	Index int
	Ops   []Op
}

// Texts returns the text operations of the page, in drawing order.
func (p *Page) Texts() []TextOp {
	var res []TextOp
	for _, op := range p.Ops {
		if t, ok := op.(TextOp); ok {
			res = append(res, t)
		}
	}
	return res
}

// Strings returns the text shown on the page, in drawing order.
func (p *Page) Strings() []string {
	var res []string
	for _, t := range p.Texts() {
		res = append(res, t.Text)
	}
	return res
}

func (p *Page) String() string {
	return fmt.Sprintf("page %d (%d ops)", p.Index+1, len(p.Ops))
}

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

// Package table lays out tabular data, breaking it across pages.
package table

import (
	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/textlayout"
)

// Style controls the appearance of a table.
type Style struct {
	Font       canvas.Font
	HeaderFont canvas.Font
	HeaderFill canvas.Color

	// StripeFill is the background of the first body row and of every
	// second row after it.
	StripeFill canvas.Color

	// CellPadding is the space between the cell border and the text.
	CellPadding float64

	// LineFactor is the line height as a multiple of the font size.
	LineFactor float64

	LineColor canvas.Color
	LineWidth float64 // zero disables cell borders
}

// DefaultStyle returns a striped table style.
func DefaultStyle(headerFill, stripe canvas.Color) Style {
	return Style{
		Font:        canvas.Font{Size: 9, Color: canvas.Gray(20)},
		HeaderFont:  canvas.Font{Size: 10, Style: canvas.Bold, Color: canvas.White},
		HeaderFill:  headerFill,
		StripeFill:  stripe,
		CellPadding: 5,
		LineFactor:  1.15,
		LineColor:   canvas.Gray(220),
		LineWidth:   0.1,
	}
}

// RowHeight returns the height of a body row.
func (s *Style) RowHeight() float64 {
	return s.rowHeight(s.Font)
}

// HeaderHeight returns the height of the header row.
func (s *Style) HeaderHeight() float64 {
	return s.rowHeight(s.HeaderFont)
}

func (s *Style) rowHeight(f canvas.Font) float64 {
	return f.SizeMM()*s.LineFactor + 2*s.CellPadding
}

// Table is a header row followed by body rows.
type Table struct {
	Headers []string
	Rows    [][]string
	Style   Style

	// Bottom is the lowest y-coordinate rows may extend to, on every page.
	// Zero selects the bottom of the document's content area.
	Bottom float64
}

// NumColumns returns the number of columns of the table.  If there are
// headers, the header row determines the column count.
func (t *Table) NumColumns() int {
	if len(t.Headers) > 0 {
		return len(t.Headers)
	}
	n := 0
	for _, row := range t.Rows {
		n = max(n, len(row))
	}
	return n
}

// Render draws the table, starting at startY on the current page of d.
// Whenever the next row would extend below the bottom limit, a new page is
// started and the header row is repeated at the top of the content area.
// If the header and the first body row do not fit below startY, the
// table starts on a new page.
//
// Render returns the y-coordinate below the last row and the number of
// pages the table occupies.  The cursor of d is set to finalY.
func (t *Table) Render(d *canvas.Document, m textlayout.Measurer, startY float64) (finalY float64, pages int) {
	area := d.Content()
	bottom := t.Bottom
	if bottom <= 0 || bottom > area.Bottom() {
		bottom = area.Bottom()
	}

	cols := t.columns(m, area.W)
	st := &t.Style
	rowH := st.RowHeight()

	first := d.Page().Index
	y := startY
	need := st.HeaderHeight()
	if len(t.Rows) > 0 {
		need += rowH
	}
	if y+need > bottom && y > area.Y {
		d.AddPage()
		y = d.Y
	}
	y = t.drawHeader(d, m, cols, area.X, y)

	for i, row := range t.Rows {
		if y+rowH > bottom {
			d.AddPage()
			y = t.drawHeader(d, m, cols, area.X, d.Y)
		}
		t.drawRow(d, m, cols, i, row, area.X, y)
		y += rowH
	}

	d.Y = y
	return y, d.Page().Index - first + 1
}

// columns returns the column widths.  Each column gets a share of the
// available width proportional to its widest cell.
func (t *Table) columns(m textlayout.Measurer, width float64) []float64 {
	n := t.NumColumns()
	if n == 0 {
		return nil
	}

	st := &t.Style
	natural := make([]float64, n)
	for j, h := range t.Headers {
		natural[j] = m.TextWidth(textlayout.Normalize(h), st.HeaderFont)
	}
	for _, row := range t.Rows {
		for j := range min(n, len(row)) {
			natural[j] = max(natural[j], m.TextWidth(textlayout.Normalize(row[j]), st.Font))
		}
	}

	var total float64
	for j := range natural {
		natural[j] += 2 * st.CellPadding
		total += natural[j]
	}
	for j := range natural {
		if total > 0 {
			natural[j] *= width / total
		} else {
			natural[j] = width / float64(n)
		}
	}
	return natural
}

func (t *Table) drawHeader(d *canvas.Document, m textlayout.Measurer, cols []float64, x, y float64) float64 {
	st := &t.Style
	h := st.HeaderHeight()
	d.FillRect(canvas.R(x, y, sum(cols), h), st.HeaderFill)
	t.drawCells(d, m, cols, t.Headers, st.HeaderFont, x, y, h)
	return y + h
}

func (t *Table) drawRow(d *canvas.Document, m textlayout.Measurer, cols []float64, i int, row []string, x, y float64) {
	st := &t.Style
	h := st.RowHeight()
	if i%2 == 0 {
		d.FillRect(canvas.R(x, y, sum(cols), h), st.StripeFill)
	}
	t.drawCells(d, m, cols, row, st.Font, x, y, h)
}

func (t *Table) drawCells(d *canvas.Document, m textlayout.Measurer, cols []float64, cells []string, f canvas.Font, x, y, h float64) {
	st := &t.Style
	baseline := y + (h+0.718*f.SizeMM())/2
	for j, w := range cols {
		if st.LineWidth > 0 {
			d.StrokeRect(canvas.R(x, y, w, h), st.LineColor, st.LineWidth)
		}
		if j < len(cells) {
			s := textlayout.Fit(m, textlayout.Normalize(cells[j]), w-2*st.CellPadding, f)
			d.Text(s, x+st.CellPadding, baseline, f, canvas.AlignLeft)
		}
		x += w
	}
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

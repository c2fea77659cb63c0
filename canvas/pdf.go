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
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// fontSet holds the PDF fonts for one output file.  Font instances keep
// per-file encoding state and must not be shared between files.
type fontSet struct {
	regular, bold, italic font.Layouter
}

func newFontSet() *fontSet {
	return &fontSet{
		regular: standard.Helvetica.New(),
		bold:    standard.HelveticaBold.New(),
		italic:  standard.HelveticaOblique.New(),
	}
}

func (fs *fontSet) get(s FontStyle) font.Layouter {
	switch s {
	case Bold:
		return fs.bold
	case Italic:
		return fs.italic
	default:
		return fs.regular
	}
}

// WritePDF writes the document to w as a PDF file.
func (d *Document) WritePDF(w io.Writer) error {
	if d.Err != nil {
		return d.Err
	}

	paper := &pdf.Rectangle{URx: MMToPoints(d.Width), URy: MMToPoints(d.Height)}
	out, err := document.WriteMultiPage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	fonts := newFontSet()
	for _, p := range d.pages {
		page := out.AddPage()
		pw := &pageWriter{page: page, fonts: fonts, height: d.Height}
		for _, op := range p.Ops {
			pw.draw(op)
		}
		if err := page.Close(); err != nil {
			return fmt.Errorf("page %d: %w", p.Index+1, err)
		}
	}
	return out.Close()
}

// pageWriter translates drawing operations into PDF content stream
// operators, converting from top-down millimetres to bottom-up points.
type pageWriter struct {
	page   *document.Page
	fonts  *fontSet
	height float64
}

func (pw *pageWriter) x(mm float64) float64 {
	return MMToPoints(mm)
}

func (pw *pageWriter) y(mm float64) float64 {
	return MMToPoints(pw.height - mm)
}

func pdfColor(c Color) color.Color {
	return color.DeviceRGB(c.Floats())
}

func (pw *pageWriter) draw(op Op) {
	page := pw.page
	switch op := op.(type) {
	case RectOp:
		if op.Mode.Fills() {
			page.SetFillColor(pdfColor(op.Paint.Fill))
		}
		if op.Mode.Strokes() {
			page.SetStrokeColor(pdfColor(op.Paint.Stroke))
			page.SetLineWidth(MMToPoints(op.Paint.LineWidth))
		}
		pw.path(RectPath(op.Rect, op.Radius))
		switch op.Mode {
		case ModeFill:
			page.Fill()
		case ModeStroke:
			page.Stroke()
		case ModeFillStroke:
			page.FillAndStroke()
		}

	case LineOp:
		page.SetStrokeColor(pdfColor(op.Color))
		page.SetLineWidth(MMToPoints(op.Width))
		page.MoveTo(pw.x(op.X1), pw.y(op.Y1))
		page.LineTo(pw.x(op.X2), pw.y(op.Y2))
		page.Stroke()

	case TextOp:
		page.TextBegin()
		page.SetFillColor(pdfColor(op.Font.Color))
		page.TextSetFont(pw.fonts.get(op.Font.Style), op.Font.Size)
		page.TextFirstLine(pw.x(op.X), pw.y(op.Y))
		page.TextShow(op.Text)
		page.TextEnd()

	case ImageOp:
		r := op.Rect
		page.PushGraphicsState()
		page.Transform(matrix.Translate(pw.x(r.X), pw.y(r.Bottom())))
		page.Transform(matrix.Scale(MMToPoints(r.W), MMToPoints(r.H)))
		page.DrawXObject(&pdfimage.PNG{Data: op.Image})
		page.PopGraphicsState()
	}
}

// path appends p to the current path.  PDF has no quadratic segments, so
// these are converted to cubic ones.
func (pw *pageWriter) path(p *path.Data) {
	page := pw.page
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pw.x(pts[0].X), pw.y(pts[0].Y))
		case path.CmdLineTo:
			page.LineTo(pw.x(pts[0].X), pw.y(pts[0].Y))
		case path.CmdCubeTo:
			page.CurveTo(pw.x(pts[0].X), pw.y(pts[0].Y), pw.x(pts[1].X), pw.y(pts[1].Y), pw.x(pts[2].X), pw.y(pts[2].Y))
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

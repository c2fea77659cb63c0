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

// Package preview renders document pages into raster images.
//
// Previews are meant for thumbnails and visual regression tests.  Shapes
// and images are drawn accurately; text is drawn as a bar covering the
// x-height of each line.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/raster"
)

// DefaultDPI is the resolution used when none is given.
const DefaultDPI = 72

// textAlpha is the opacity of text bars.
const textAlpha = 160

// Page renders page i of d at the given resolution.
func Page(d *canvas.Document, i int, dpi float64) (*image.NRGBA, error) {
	if i < 0 || i >= d.NumPages() {
		return nil, fmt.Errorf("preview: page %d out of range", i+1)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	scale := dpi / 25.4
	w := int(math.Round(d.Width * scale))
	h := int(math.Round(d.Height * scale))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for k := range img.Pix {
		img.Pix[k] = 255
	}

	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	p := &painter{img: img, r: r, scale: scale}
	for _, op := range d.Pages()[i].Ops {
		p.draw(op)
	}
	return img, nil
}

// WritePNG renders page i of d and writes it to w in PNG format.
func WritePNG(w io.Writer, d *canvas.Document, i int, dpi float64) error {
	img, err := Page(d, i, dpi)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

type painter struct {
	img   *image.NRGBA
	r     *raster.Rasterizer
	scale float64
}

func (p *painter) draw(op canvas.Op) {
	p.r.CTM = matrix.Scale(p.scale, p.scale)
	switch op := op.(type) {
	case canvas.RectOp:
		if op.Mode.Fills() {
			p.r.FillNonZero(canvas.RectPath(op.Rect, op.Radius), p.emit(op.Paint.Fill, 255))
		}
		if op.Mode.Strokes() {
			p.r.FillEvenOdd(canvas.StrokeOutline(op), p.emit(op.Paint.Stroke, 255))
		}

	case canvas.LineOp:
		p.r.FillNonZero(canvas.LineOutline(op), p.emit(op.Color, 255))

	case canvas.TextOp:
		size := op.Font.SizeMM()
		bar := canvas.R(op.X, op.Y-0.52*size, op.Width, 0.52*size)
		p.r.FillNonZero(canvas.RectPath(bar, 0), p.emit(op.Font.Color, textAlpha))

	case canvas.ImageOp:
		b := op.Rect
		dst := image.Rect(
			int(math.Round(b.X*p.scale)), int(math.Round(b.Y*p.scale)),
			int(math.Round(b.Right()*p.scale)), int(math.Round(b.Bottom()*p.scale)))
		if dst.Empty() {
			return
		}
		draw.ApproxBiLinear.Scale(p.img, dst, op.Image, op.Image.Bounds(), draw.Over, nil)
	}
}

func (p *painter) emit(c canvas.Color, alpha uint8) raster.EmitFunc {
	return raster.Painter(p.img, color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha})
}

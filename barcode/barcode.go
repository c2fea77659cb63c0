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

// Package barcode turns payload strings into scannable barcode images.
package barcode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/skip2/go-qrcode"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/raster"
)

// Options control the appearance of a barcode image.
type Options struct {
	// SizePx is the width and height of the image in pixels.
	SizePx int

	// MarginModules is the width of the quiet zone, in modules.
	MarginModules int

	Dark  canvas.Color
	Light canvas.Color
}

// DefaultOptions returns the options used for printed tickets.
func DefaultOptions() Options {
	return Options{
		SizePx:        300,
		MarginModules: 1,
		Dark:          canvas.RGB(0x02, 0x35, 0x31),
		Light:         canvas.White,
	}
}

// Encoder converts a payload into an encoded image (PNG).
type Encoder interface {
	Encode(ctx context.Context, payload string, opt Options) ([]byte, error)
}

// EncoderFunc adapts an ordinary function to the [Encoder] interface.
type EncoderFunc func(ctx context.Context, payload string, opt Options) ([]byte, error)

// Encode implements the [Encoder] interface.
func (fn EncoderFunc) Encode(ctx context.Context, payload string, opt Options) ([]byte, error) {
	return fn(ctx, payload, opt)
}

// QR encodes payloads as QR codes.
type QR struct {
	Level qrcode.RecoveryLevel
}

// NewQR returns a QR encoder with medium error correction.
func NewQR() *QR {
	return &QR{Level: qrcode.Medium}
}

// Modules returns the module matrix for the payload, without quiet zone.
// Dark modules are true.
func (q *QR) Modules(payload string) ([][]bool, error) {
	code, err := qrcode.New(payload, q.Level)
	if err != nil {
		return nil, fmt.Errorf("barcode: %w", err)
	}
	code.DisableBorder = true
	return code.Bitmap(), nil
}

// Encode implements the [Encoder] interface.
func (q *QR) Encode(ctx context.Context, payload string, opt Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	modules, err := q.Modules(payload)
	if err != nil {
		return nil, err
	}

	img := Render(modules, opt)
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render paints a module matrix into an image.  Module edges which do not
// fall on pixel boundaries are anti-aliased.
func Render(modules [][]bool, opt Options) *image.NRGBA {
	n := len(modules)
	margin := max(opt.MarginModules, 0)
	total := n + 2*margin
	size := max(opt.SizePx, total)

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := nrgba(opt.Light)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = light.R, light.G, light.B, light.A
	}
	if n == 0 {
		return img
	}

	p := &path.Data{}
	for y, row := range modules {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			x0, x1 := float64(margin+start), float64(margin+x)
			y0, y1 := float64(margin+y), float64(margin+y+1)
			p = p.MoveTo(vec.Vec2{X: x0, Y: y0}).
				LineTo(vec.Vec2{X: x1, Y: y0}).
				LineTo(vec.Vec2{X: x1, Y: y1}).
				LineTo(vec.Vec2{X: x0, Y: y1}).
				Close()
		}
	}

	scale := float64(size) / float64(total)
	r := raster.NewRasterizer(rect.Rect{URx: float64(size), URy: float64(size)})
	r.CTM = matrix.Scale(scale, scale)
	r.FillNonZero(p, raster.Painter(img, nrgba(opt.Dark)))
	return img
}

func nrgba(c canvas.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

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

// Package asset embeds raster images into documents.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/optional"
)

// ErrDecode is returned when image data cannot be decoded.
var ErrDecode = errors.New("asset: cannot decode image")

// MaxDPI is the highest resolution at which images are embedded.
// Images with more pixels are scaled down.
const MaxDPI = 300

// Image is an encoded raster image together with its size on the page.
type Image struct {
	Data []byte

	// Width is the width on the page, in millimetres.
	Width float64

	// Height is the height on the page, in millimetres.  If unset, the
	// height is derived from the aspect ratio of the image.
	Height optional.Value[float64]
}

// Decode decodes image data in any of the registered formats.
// All errors wrap [ErrDecode].
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: no data", ErrDecode)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, "", fmt.Errorf("%w: empty %s image", ErrDecode, format)
	}
	return img, format, nil
}

// Size returns the size of the image on the page, for an image with the
// given pixel dimensions.
func (a *Image) Size(px image.Point) (w, h float64) {
	w = a.Width
	if h, ok := a.Height.Get(); ok {
		return w, h
	}
	if px.X <= 0 {
		return w, 0
	}
	return w, w * float64(px.Y) / float64(px.X)
}

// Place decodes the image and draws it with its top-left corner at (x, y)
// on the current page of d.  It returns the area covered by the image.
// If the image cannot be decoded, nothing is drawn and the error wraps
// [ErrDecode].
func Place(d *canvas.Document, a *Image, x, y float64) (canvas.Rect, error) {
	img, _, err := Decode(a.Data)
	if err != nil {
		return canvas.Rect{}, err
	}
	w, h := a.Size(img.Bounds().Size())
	if w <= 0 || h <= 0 {
		return canvas.Rect{}, fmt.Errorf("asset: invalid image size %gx%g mm", w, h)
	}

	r := canvas.R(x, y, w, h)
	d.Image(Limit(img, w, h, MaxDPI), r)
	return r, nil
}

// Limit scales img down so that, printed at the given size in millimetres,
// its resolution does not exceed dpi.  Smaller images are returned as is.
func Limit(img image.Image, w, h, dpi float64) image.Image {
	b := img.Bounds()
	maxW := int(w/25.4*dpi + 0.5)
	maxH := int(h/25.4*dpi + 0.5)
	if b.Dx() <= maxW && b.Dy() <= maxH || maxW < 1 || maxH < 1 {
		return img
	}

	nw, nh := min(b.Dx(), maxW), min(b.Dy(), maxH)
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

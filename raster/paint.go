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

package raster

import (
	"image"
	"image/color"
)

// Painter returns an EmitFunc which blends c into img, using the coverage
// values as additional opacity.  Rows and columns outside img are ignored.
func Painter(img *image.NRGBA, c color.NRGBA) EmitFunc {
	b := img.Bounds()
	alpha := float32(c.A) / 255
	return func(y, xMin int, coverage []float32) {
		if y < b.Min.Y || y >= b.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < b.Min.X || x >= b.Max.X || cov <= 0 {
				continue
			}
			pix := img.Pix[img.PixOffset(x, y):]
			blend(pix[:4:4], c, cov*alpha)
		}
	}
}

// blend composites the colour c with opacity a over the NRGBA pixel dst.
func blend(dst []uint8, c color.NRGBA, a float32) {
	if a >= 1 {
		dst[0], dst[1], dst[2], dst[3] = c.R, c.G, c.B, 255
		return
	}
	da := float32(dst[3]) / 255
	outA := a + da*(1-a)
	if outA <= 0 {
		return
	}
	mix := func(src, old uint8) uint8 {
		v := (float32(src)*a + float32(old)*da*(1-a)) / outA
		return uint8(min(v+0.5, 255))
	}
	dst[0] = mix(c.R, dst[0])
	dst[1] = mix(c.G, dst[1])
	dst[2] = mix(c.B, dst[2])
	dst[3] = uint8(min(outA*255+0.5, 255))
}

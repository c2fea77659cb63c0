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
	"encoding"
	"fmt"
	"image/color"
)

// Color is an opaque colour in the sRGB space.
type Color struct {
	R, G, B uint8
}

// RGB returns the colour with the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns the grey with all three components set to v.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v}
}

// Commonly used colours.
var (
	Black = Color{}
	White = Gray(255)
)

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// Floats returns the components scaled to the range [0, 1].
func (c Color) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Accepted forms are "#rrggbb" and "#rgb".
func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) == 0 || s[0] != '#' {
		return fmt.Errorf("canvas: invalid colour %q", s)
	}
	var digits [6]uint8
	switch len(s) {
	case 7:
		for i := range 6 {
			d, ok := hexDigit(s[1+i])
			if !ok {
				return fmt.Errorf("canvas: invalid colour %q", s)
			}
			digits[i] = d
		}
	case 4:
		for i := range 3 {
			d, ok := hexDigit(s[1+i])
			if !ok {
				return fmt.Errorf("canvas: invalid colour %q", s)
			}
			digits[2*i], digits[2*i+1] = d, d
		}
	default:
		return fmt.Errorf("canvas: invalid colour %q", s)
	}
	c.R = digits[0]<<4 | digits[1]
	c.G = digits[2]<<4 | digits[3]
	c.B = digits[4]<<4 | digits[5]
	return nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

var (
	_ color.Color              = Color{}
	_ encoding.TextMarshaler   = Color{}
	_ encoding.TextUnmarshaler = (*Color)(nil)
)

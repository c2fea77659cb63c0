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

package textlayout

import (
	"seehuhn.de/go/printout/canvas"
)

// Measurer returns the advance width of a string, in millimetres.
type Measurer interface {
	TextWidth(s string, f canvas.Font) float64
}

// MeasureFunc adapts an ordinary function to the [Measurer] interface.
type MeasureFunc func(s string, f canvas.Font) float64

// TextWidth implements the [Measurer] interface.
func (fn MeasureFunc) TextWidth(s string, f canvas.Font) float64 {
	return fn(s, f)
}

// Helvetica measures text using the glyph widths of the standard PDF
// fonts Helvetica, Helvetica-Bold and Helvetica-Oblique.  These are the
// fonts used by [canvas.Document.WritePDF].  It is safe for concurrent use.
var Helvetica Measurer = helvetica{}

type helvetica struct{}

// TextWidth implements the [Measurer] interface.
func (helvetica) TextWidth(s string, f canvas.Font) float64 {
	table := &helveticaRegular
	if f.Style == canvas.Bold {
		table = &helveticaBold
	}

	var total int
	for _, r := range s {
		total += glyphWidth(table, r)
	}
	return float64(total) * f.SizeMM() / 1000
}

// glyphWidth returns the width of r in 1/1000 of the font size.
func glyphWidth(table *[95]int16, r rune) int {
	if r >= ' ' && r <= '~' {
		return int(table[r-' '])
	}
	if w, ok := helveticaExtra[r]; ok {
		return w
	}
	return 556
}

// Glyph widths for the printable ASCII range, from the Adobe font metrics.
var helveticaRegular = [95]int16{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278, // ' ' - '/'
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // '0' - '9'
	278, 278, 584, 584, 584, 556, 1015, // ':' - '@'
	667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, // 'A' - 'M'
	722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // 'N' - 'Z'
	278, 278, 278, 469, 556, 333, // '[' - '`'
	556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, // 'a' - 'm'
	556, 556, 556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, // 'n' - 'z'
	334, 260, 334, 584, // '{' - '~'
}

var helveticaBold = [95]int16{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278, // ' ' - '/'
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // '0' - '9'
	333, 333, 584, 584, 584, 611, 975, // ':' - '@'
	722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, // 'A' - 'M'
	722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // 'N' - 'Z'
	333, 278, 333, 584, 556, 333, // '[' - '`'
	556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, // 'a' - 'm'
	611, 611, 611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, // 'n' - 'z'
	389, 280, 389, 584, // '{' - '~'
}

// helveticaExtra lists non-ASCII glyphs used in document templates whose
// width differs from the default.
var helveticaExtra = map[rune]int{
	'\u00a0': 278, // no-break space
	'\u00a9': 737, // copyright
	'\u00b7': 278, // middle dot
	'\u00ed': 278,
	'\u00ec': 278,
	'\u00ee': 278,
	'\u00ef': 278,
	'\u2014': 1000,
	'\u2022': 350, // bullet
	'\u2026': 1000,
}

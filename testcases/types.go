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

// Package testcases holds input records for the document recipes,
// together with properties of the expected output.
package testcases

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"seehuhn.de/go/printout"
	"seehuhn.de/go/printout/asset"
	"seehuhn.de/go/printout/optional"
)

// Case defines a single rendering test.  Exactly one of Ticket and
// Report is set.
type Case struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Ticket *printout.TicketRecord
	Report *printout.FinanceReportRecord

	Filename string // expected file name
	Pages    int    // expected number of pages
	Warnings int    // expected number of omitted sections
}

// Kind returns "ticket" or "report".
func (c Case) Kind() string {
	if c.Ticket != nil {
		return "ticket"
	}
	return "report"
}

// Record returns the input record of the case.
func (c Case) Record() any {
	if c.Ticket != nil {
		return c.Ticket
	}
	return c.Report
}

// logo returns a w×h pixel PNG image: a filled rectangle with a
// contrasting stripe.
func logo(w, h int, fg, bg color.NRGBA) optional.Value[asset.Source] {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := bg
			if y >= h/3 && y < 2*h/3 {
				c = fg
			}
			img.SetNRGBA(x, y, c)
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		panic(err)
	}
	return optional.New(asset.Source(buf.Bytes()))
}

var (
	green = color.NRGBA{R: 43, G: 148, B: 107, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// brokenLogo is not a valid image.
var brokenLogo = optional.New(asset.Source("not an image"))

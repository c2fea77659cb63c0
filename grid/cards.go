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

package grid

import (
	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/textlayout"
)

// Card is a labelled value shown in a summary grid.
type Card struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CardStyle controls the appearance of summary cards.
type CardStyle struct {
	Shadow       canvas.Color
	ShadowOffset float64
	Fill         canvas.Color
	Border       canvas.Color
	BorderWidth  float64
	Radius       float64
	Accent       canvas.Color
	AccentWidth  float64

	Label canvas.Font
	Value canvas.Font

	// TextInset is the distance of label and value from the left edge.
	TextInset float64

	// LabelBaseline is the distance of the label baseline from the top edge.
	LabelBaseline float64

	// ValueMargin is the card width not available to the value text.
	ValueMargin float64

	LineHeight float64

	// Placeholder is shown for empty values.
	Placeholder string
}

// DefaultCardStyle returns the summary card style with the given accent
// bar and value colours.
func DefaultCardStyle(accent, value canvas.Color) CardStyle {
	return CardStyle{
		Shadow:        canvas.Gray(220),
		ShadowOffset:  1,
		Fill:          canvas.White,
		Border:        canvas.Gray(230),
		BorderWidth:   0.5,
		Radius:        3,
		Accent:        accent,
		AccentWidth:   3,
		Label:         canvas.Font{Size: 9, Color: canvas.Gray(100)},
		Value:         canvas.Font{Size: 13, Style: canvas.Bold, Color: value},
		TextInset:     8,
		LabelBaseline: 8,
		ValueMargin:   14,
		LineHeight:    5,
		Placeholder:   "—",
	}
}

// DrawCards draws the cards on the current page of d and returns the
// vertical space used.  Values are wrapped to fit the card width; long
// values may extend below the card.
func DrawCards(d *canvas.Document, m textlayout.Measurer, cards []Card, s Spec, st CardStyle) float64 {
	for _, p := range Layout(cards, s) {
		drawCard(d, m, p.Item, p.Rect, st)
	}
	return s.Height(len(cards))
}

func drawCard(d *canvas.Document, m textlayout.Measurer, c Card, r canvas.Rect, st CardStyle) {
	shadow := r
	shadow.X += st.ShadowOffset
	shadow.Y += st.ShadowOffset
	d.RoundedRect(shadow, st.Radius, canvas.ModeFill, canvas.Paint{Fill: st.Shadow})
	d.RoundedRect(r, st.Radius, canvas.ModeFillStroke, canvas.Paint{
		Fill:      st.Fill,
		Stroke:    st.Border,
		LineWidth: st.BorderWidth,
	})
	d.FillRect(canvas.R(r.X, r.Y, st.AccentWidth, r.H), st.Accent)

	d.Text(textlayout.Normalize(c.Label), r.X+st.TextInset, r.Y+st.LabelBaseline, st.Label, canvas.AlignLeft)

	value := c.Value
	if value == "" {
		value = st.Placeholder
	}
	box := canvas.R(r.X+st.TextInset, r.Y, r.W-st.ValueMargin, r.H)
	textlayout.NewBlock(m, value, st.Value, box, canvas.AlignLeft, st.LineHeight).Draw(d)
}

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

package printout

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/printout/canvas"
)

// Theme holds the colours and fixed texts of the generated documents.
// Colours are written as "#rrggbb" in JSON.
type Theme struct {
	Primary     canvas.Color `json:"primary"`
	Secondary   canvas.Color `json:"secondary"`
	Accent      canvas.Color `json:"accent"`
	Light       canvas.Color `json:"light"`
	Dark        canvas.Color `json:"dark"`
	AmenityFill canvas.Color `json:"amenityFill"`

	Brand   string `json:"brand"`
	Tagline string `json:"tagline"`
	Website string `json:"website"`

	ReportBrand   string `json:"reportBrand"`
	ReportTagline string `json:"reportTagline"`

	// CurrencyPrefix is put in front of prices, unless the price
	// already starts with it.
	CurrencyPrefix string `json:"currencyPrefix"`

	Amenities []string `json:"amenities"`
	Terms     []string `json:"terms"`
}

// DefaultTheme returns the house style.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:     canvas.RGB(2, 53, 49),
		Secondary:   canvas.RGB(43, 148, 107),
		Accent:      canvas.RGB(221, 185, 71),
		Light:       canvas.RGB(247, 240, 223),
		Dark:        canvas.RGB(17, 24, 39),
		AmenityFill: canvas.RGB(240, 248, 245),

		Brand:   "SIDAROCO",
		Tagline: "Your travel buddy",
		Website: "www.sidaroco.com",

		ReportBrand:   "© 2025 SIDAROO",
		ReportTagline: "Finance Manager · Confidential Report",

		CurrencyPrefix: "$",

		Amenities: []string{"WiFi", "A/C", "Charger", "Seats", "Bathroom"},
		Terms: []string{
			"• Present yourself 30 minutes before departure with official identification",
			"• This ticket is personal and non-transferable",
			"• Please keep this ticket until the end of your trip",
			"• Baggage allowance: 1 suitcase (25kg) + 1 carry-on bag",
		},
	}
}

// LoadTheme reads a JSON theme.  Fields missing from the input keep their
// values from [DefaultTheme].
func LoadTheme(r io.Reader) (*Theme, error) {
	t := DefaultTheme()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(t); err != nil {
		return nil, fmt.Errorf("printout: theme: %w", err)
	}
	return t, nil
}

// Price formats a price with the currency prefix.
func (t *Theme) Price(p string) string {
	p = strings.TrimSpace(p)
	if t.CurrencyPrefix == "" || strings.HasPrefix(p, t.CurrencyPrefix) {
		return p
	}
	return t.CurrencyPrefix + p
}

func (t *Theme) amenityLine() string {
	return strings.Join(t.Amenities, "  •  ")
}

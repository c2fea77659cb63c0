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

// Package textlayout breaks text into lines and positions text blocks.
//
// All lengths are in millimetres, font sizes are in PDF points.
package textlayout

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/printout/canvas"
)

// CenterCorrection is subtracted from the vertical offset of a centred
// text block.  The value was tuned visually for Helvetica at card label
// sizes.
const CenterCorrection = 2.0

// Normalize converts s to Unicode normalisation form C, so that composed
// and decomposed input measure and print the same way.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Upper returns s in upper case, using language-neutral case mapping.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Wrap breaks text into lines no wider than maxWidth, filling each line
// greedily.  Line feeds in the text force a line break.  A word which is
// wider than maxWidth is placed on a line by itself; words are never
// split.
func Wrap(m Measurer, text string, maxWidth float64, f canvas.Font) []string {
	text = Normalize(text)
	if text == "" {
		return nil
	}

	var lines []string
	for _, par := range strings.Split(text, "\n") {
		words := strings.Fields(par)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if m.TextWidth(candidate, f) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}

// VerticalCenterOffset returns the offset of the first baseline of a
// block of lines, measured from the top of the enclosing box.
func VerticalCenterOffset(boxHeight float64, lineCount int, lineHeight float64) float64 {
	return boxHeight/2 + float64(lineCount)*lineHeight/2 - CenterCorrection
}

// Fit shortens s with a trailing "..." until it is at most maxWidth wide.
// If not even the ellipsis fits, the empty string is returned.
func Fit(m Measurer, s string, maxWidth float64, f canvas.Font) string {
	const ellipsis = "..."
	if m.TextWidth(s, f) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n >= 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + ellipsis
		if m.TextWidth(candidate, f) <= maxWidth {
			return candidate
		}
	}
	return ""
}

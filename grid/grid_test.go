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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/textlayout"
)

var summarySpec = Spec{
	Columns:    2,
	CardWidth:  85,
	CardHeight: 22,
	ColSpacing: 10,
	RowSpacing: 8,
	OriginX:    20,
	OriginY:    80,
}

func TestRows(t *testing.T) {
	for c := 1; c <= 4; c++ {
		for n := 0; n <= 10; n++ {
			s := summarySpec
			s.Columns = c
			want := n / c
			if n%c != 0 {
				want++
			}

			cells := Layout(make([]Card, n), s)
			rows := map[int]bool{}
			for _, p := range cells {
				rows[p.Row] = true
			}
			if len(rows) != want || s.Rows(n) != want {
				t.Errorf("n=%d c=%d: %d distinct rows, Rows()=%d, want %d",
					n, c, len(rows), s.Rows(n), want)
			}
		}
	}
}

func TestNoOverlap(t *testing.T) {
	for c := 1; c <= 4; c++ {
		for n := 0; n <= 10; n++ {
			s := summarySpec
			s.Columns = c
			cells := Layout(make([]Card, n), s)
			for i := range cells {
				for j := i + 1; j < len(cells); j++ {
					if cells[i].Rect.Overlaps(cells[j].Rect) {
						t.Errorf("n=%d c=%d: cards %d and %d overlap: %v %v",
							n, c, i, j, cells[i].Rect, cells[j].Rect)
					}
				}
			}
		}
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		height float64
		want   int
	}{
		{187, 12}, // 80mm down to the report footer band at 267mm
		{172, 12},
		{171.9, 10},
		{22, 2},
		{5, 2}, // always at least one row
	}
	for _, c := range cases {
		if got := summarySpec.Fit(c.height); got != c.want {
			t.Errorf("Fit(%g) = %d, want %d", c.height, got, c.want)
		}
	}

	// the cards reported as fitting end within the given height
	for h := 22.0; h < 300; h += 0.5 {
		n := summarySpec.Fit(h)
		if bottom := summarySpec.Cell(n - 1).Rect.Bottom(); bottom > summarySpec.OriginY+h+1e-9 {
			t.Errorf("Fit(%g) = %d, but card %d ends at %g", h, n, n-1, bottom)
		}
	}
}

func TestCell(t *testing.T) {
	got := summarySpec.Cell(3)
	want := Cell{Index: 3, Row: 1, Col: 1, Rect: canvas.R(115, 110, 85, 22)}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Cell(3) (-want +got):\n%s", d)
	}

	if h := summarySpec.Height(5); h != 90 {
		t.Errorf("Height(5) = %g, want 90", h)
	}

	var s Spec // zero columns behave like one column
	if c := s.Cell(2); c.Row != 2 || c.Col != 0 {
		t.Errorf("zero columns: got row %d col %d", c.Row, c.Col)
	}
}

func TestDrawCards(t *testing.T) {
	m := textlayout.Helvetica
	d := canvas.NewA4(m)
	cards := []Card{
		{Label: "Income", Value: "$1,200.00"},
		{Label: "Notes"},
	}
	st := DefaultCardStyle(canvas.RGB(221, 185, 71), canvas.RGB(43, 148, 107))
	h := DrawCards(d, m, cards, summarySpec, st)
	if h != 30 {
		t.Errorf("height %g, want 30", h)
	}
	if d.Err != nil {
		t.Fatal(d.Err)
	}

	got := d.Page().Strings()
	want := []string{"Income", "$1,200.00", "Notes", "—"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("texts (-want +got):\n%s", diff)
	}

	// single-line values sit 11.5mm below the top of the card
	value := d.Page().Texts()[1]
	if value.Y != 80+11.5 || value.X != 28 {
		t.Errorf("value at (%g, %g), want (28, 91.5)", value.X, value.Y)
	}
}

func ExampleSpec_Cell() {
	s := Spec{Columns: 2, CardWidth: 85, CardHeight: 22, ColSpacing: 10, RowSpacing: 8, OriginX: 20}
	for i := range 3 {
		c := s.Cell(i)
		fmt.Println(c.Row, c.Col, c.Rect)
	}
	// Output:
	// 0 0 [20.00 0.00 85.00 22.00]
	// 0 1 [115.00 0.00 85.00 22.00]
	// 1 0 [20.00 30.00 85.00 22.00]
}

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

// Package grid places equally sized cards in rows and columns.
package grid

import (
	"math"

	"seehuhn.de/go/printout/canvas"
)

// Spec describes a grid of cards.  All lengths are in millimetres.
type Spec struct {
	Columns    int
	CardWidth  float64
	CardHeight float64
	ColSpacing float64
	RowSpacing float64
	OriginX    float64
	OriginY    float64
}

// Cell is the position of one card in the grid.
type Cell struct {
	Index    int
	Row, Col int
	Rect     canvas.Rect
}

func (s Spec) columns() int {
	return max(s.Columns, 1)
}

// Cell returns the position of the card with index i.
// Cards fill the grid row by row.
func (s Spec) Cell(i int) Cell {
	c := s.columns()
	row, col := i/c, i%c
	return Cell{
		Index: i,
		Row:   row,
		Col:   col,
		Rect: canvas.Rect{
			X: s.OriginX + float64(col)*(s.CardWidth+s.ColSpacing),
			Y: s.OriginY + float64(row)*(s.CardHeight+s.RowSpacing),
			W: s.CardWidth,
			H: s.CardHeight,
		},
	}
}

// Rows returns the number of rows needed for n cards.
func (s Spec) Rows(n int) int {
	c := s.columns()
	return (n + c - 1) / c
}

// Height returns the vertical space taken by n cards, including the
// spacing after the last row.
func (s Spec) Height(n int) float64 {
	return float64(s.Rows(n)) * (s.CardHeight + s.RowSpacing)
}

// Fit returns how many cards fit into the given height below the origin.
// At least one row is always reported, so that callers placing cards
// page by page make progress.
func (s Spec) Fit(height float64) int {
	rows := int(math.Floor((height + s.RowSpacing) / (s.CardHeight + s.RowSpacing)))
	return max(rows, 1) * s.columns()
}

// Placed is an item together with its grid cell.
type Placed[T any] struct {
	Item T
	Cell
}

// Layout assigns a grid cell to every item.
func Layout[T any](items []T, s Spec) []Placed[T] {
	res := make([]Placed[T], len(items))
	for i, item := range items {
		res[i] = Placed[T]{Item: item, Cell: s.Cell(i)}
	}
	return res
}

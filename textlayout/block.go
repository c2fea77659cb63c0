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

import "seehuhn.de/go/printout/canvas"

// Block is a run of wrapped text, vertically centred in a box.
type Block struct {
	Lines      []string
	Font       canvas.Font
	Box        canvas.Rect
	Align      canvas.Align
	LineHeight float64
}

// NewBlock wraps text to the width of box.
func NewBlock(m Measurer, text string, f canvas.Font, box canvas.Rect, a canvas.Align, lineHeight float64) *Block {
	return &Block{
		Lines:      Wrap(m, text, box.W, f),
		Font:       f,
		Box:        box,
		Align:      a,
		LineHeight: lineHeight,
	}
}

// Height returns the total height of the lines.
// This can exceed the height of the box.
func (b *Block) Height() float64 {
	return float64(len(b.Lines)) * b.LineHeight
}

// Baseline returns the y-coordinate of the baseline of line i.
func (b *Block) Baseline(i int) float64 {
	return b.Box.Y + VerticalCenterOffset(b.Box.H, len(b.Lines), b.LineHeight) +
		float64(i)*b.LineHeight
}

// Draw shows the lines of the block on the current page of d.
func (b *Block) Draw(d *canvas.Document) {
	var x float64
	switch b.Align {
	case canvas.AlignCenter:
		x = b.Box.X + b.Box.W/2
	case canvas.AlignRight:
		x = b.Box.Right()
	default:
		x = b.Box.X
	}
	for i, line := range b.Lines {
		d.Text(line, x, b.Baseline(i), b.Font, b.Align)
	}
}

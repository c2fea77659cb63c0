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

package barcode

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"seehuhn.de/go/printout/canvas"
)

const payload = "TICKET:7|ROUTE:Lima → Cusco|DATE:2025-06-01|SEAT:12A"

func TestEncode(t *testing.T) {
	q := NewQR()
	opt := DefaultOptions()
	data, err := q.Encode(context.Background(), payload, opt)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Fatalf("image size %v", b)
	}

	modules, err := q.Modules(payload)
	if err != nil {
		t.Fatal(err)
	}
	n := len(modules)
	if (n-21)%4 != 0 || n < 21 {
		t.Fatalf("unexpected symbol size %d", n)
	}
	scale := 300 / float64(n+2)

	// the quiet zone is light, the centre of the top-left finder is dark
	corner := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	if corner != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("quiet zone has colour %v", corner)
	}
	c := int((1 + 3.5) * scale)
	finder := color.NRGBAModel.Convert(img.At(c, c)).(color.NRGBA)
	if finder != (color.NRGBA{R: 0x02, G: 0x35, B: 0x31, A: 255}) {
		t.Errorf("finder centre has colour %v", finder)
	}
}

func TestDeterministic(t *testing.T) {
	q := NewQR()
	a, err := q.Encode(context.Background(), payload, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := q.Encode(context.Background(), payload, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same payload produced different images")
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewQR().Encode(ctx, payload, DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestTooLong(t *testing.T) {
	_, err := NewQR().Encode(context.Background(), strings.Repeat("x", 5000), DefaultOptions())
	if err == nil {
		t.Error("oversized payload accepted")
	}
}

func TestRenderSmall(t *testing.T) {
	modules := [][]bool{
		{true, false},
		{false, true},
	}
	opt := Options{SizePx: 1, MarginModules: 1, Dark: canvas.Black, Light: canvas.White}
	img := Render(modules, opt)
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("got bounds %v", img.Bounds())
	}
	want := [4]string{
		"....",
		".#..",
		"..#.",
		"....",
	}
	for y := range 4 {
		for x := range 4 {
			dark := img.NRGBAAt(x, y).R == 0
			if dark != (want[y][x] == '#') {
				t.Errorf("pixel (%d,%d): dark=%t", x, y, dark)
			}
		}
	}
}

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

package optional

import (
	"encoding/json"
	"testing"
)

func TestValueZero(t *testing.T) {
	var v Value[float64]
	if _, ok := v.Get(); ok {
		t.Error("zero value should not be set")
	}
	if got := v.Or(3); got != 3 {
		t.Errorf("Or: got %g, want 3", got)
	}
}

func TestValueSetClear(t *testing.T) {
	v := New(0.0)
	x, ok := v.Get()
	if !ok || x != 0 {
		t.Errorf("got (%g, %t), want (0, true)", x, ok)
	}

	v.Set(12.5)
	if got := v.Or(1); got != 12.5 {
		t.Errorf("Or: got %g, want 12.5", got)
	}

	v.Clear()
	if v.IsSet() {
		t.Error("should not be set after clear")
	}
}

func TestValueEqual(t *testing.T) {
	var unset1, unset2 Value[int]
	zero := New(0)
	one := New(1)

	if !Equal(unset1, unset2) {
		t.Error("two unset values should be equal")
	}
	if Equal(unset1, zero) {
		t.Error("unset and zero should not be equal")
	}
	if Equal(zero, one) {
		t.Error("0 and 1 should not be equal")
	}
}

func TestValueJSON(t *testing.T) {
	type record struct {
		Height Value[float64] `json:"height"`
		Width  Value[float64] `json:"width"`
		Extra  Value[string]  `json:"extra"`
	}

	var r record
	err := json.Unmarshal([]byte(`{"height": 20, "width": null}`), &r)
	if err != nil {
		t.Fatal(err)
	}
	if h, ok := r.Height.Get(); !ok || h != 20 {
		t.Errorf("height: got (%g, %t)", h, ok)
	}
	if r.Width.IsSet() || r.Extra.IsSet() {
		t.Error("null and missing keys should decode as unset")
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"height":20,"width":null,"extra":null}`
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}

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

// Package optional provides values which may be unset.
//
// The zero value of every type in this package is "unset".  When encoded
// as JSON, an unset value is written as null, and both null and a missing
// key decode to an unset value.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value is an optional value of type T.
type Value[T any] struct {
	val   T
	isSet bool
}

// New returns a set Value.
func New[T any](v T) Value[T] {
	return Value[T]{val: v, isSet: true}
}

// Get returns the value and whether it is set.
func (o Value[T]) Get() (T, bool) {
	return o.val, o.isSet
}

// IsSet reports whether the value is set.
func (o Value[T]) IsSet() bool {
	return o.isSet
}

// Or returns the value if it is set, and def otherwise.
func (o Value[T]) Or(def T) T {
	if o.isSet {
		return o.val
	}
	return def
}

// Set sets the value.
func (o *Value[T]) Set(v T) {
	o.isSet = true
	o.val = v
}

// Clear clears the value.
func (o *Value[T]) Clear() {
	var zero T
	o.isSet = false
	o.val = zero
}

// Equal compares two optional values for equality.
func Equal[T comparable](a, b Value[T]) bool {
	return a.isSet == b.isSet && a.val == b.val
}

// MarshalJSON implements the [json.Marshaler] interface.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.isSet {
		return []byte("null"), nil
	}
	return json.Marshal(o.val)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Clear()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Set(v)
	return nil
}

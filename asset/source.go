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

package asset

import (
	"bytes"
	"encoding/base64"
	"strings"
)

// Source is encoded image data which, in text form, is written either as
// plain base64 or as a base64 "data:" URL.
//
// Text which is neither is kept verbatim.  Such a source fails to decode
// when the image is placed, so that a broken image only affects the part
// of the document showing it.
type Source []byte

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(s)), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// It never fails.
func (s *Source) UnmarshalText(text []byte) error {
	if data, ok := decodeText(string(text)); ok {
		*s = data
	} else {
		*s = bytes.Clone(text)
	}
	return nil
}

func decodeText(str string) ([]byte, bool) {
	str = strings.TrimSpace(str)
	if rest, ok := strings.CutPrefix(str, "data:"); ok {
		meta, payload, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(meta, ";base64") {
			return nil, false
		}
		str = payload
	}

	data, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(str, "="))
		if err != nil {
			return nil, false
		}
	}
	return data, true
}

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
	"errors"
	"fmt"
)

// ErrMissingField is matched by all [*MissingFieldError] values.
var ErrMissingField = errors.New("printout: missing required field")

// ErrAdapter indicates that the barcode encoder failed or timed out.
var ErrAdapter = errors.New("printout: barcode encoder failed")

// MissingFieldError is returned when a required field of an input
// record is empty.
type MissingFieldError struct {
	Record string // "ticket" or "report"
	Field  string // JSON name of the field
}

func (err *MissingFieldError) Error() string {
	return fmt.Sprintf("printout: %s: missing required field %q", err.Record, err.Field)
}

// Is makes errors.Is(err, ErrMissingField) work.
func (err *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// StageError reports the stage in which building a document failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (err *StageError) Error() string {
	return fmt.Sprintf("printout: stage %s: %v", err.Stage, err.Err)
}

func (err *StageError) Unwrap() error {
	return err.Err
}

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
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"seehuhn.de/go/printout/canvas"
)

// Stage names one step in the construction of a document.
type Stage int

// These are the stages used by the ticket and report recipes.
const (
	StageValidate Stage = iota
	StageHeader
	StageTitle
	StageRoute
	StageDetails
	StagePassenger
	StageQRCode
	StageAmenities
	StageTerms
	StageSummary
	StageTable
	StageFooter
	StageSerialize
)

var stageNames = [...]string{
	StageValidate:  "validate",
	StageHeader:    "header",
	StageTitle:     "title",
	StageRoute:     "route",
	StageDetails:   "details",
	StagePassenger: "passenger",
	StageQRCode:    "qrcode",
	StageAmenities: "amenities",
	StageTerms:     "terms",
	StageSummary:   "summary",
	StageTable:     "table",
	StageFooter:    "footer",
	StageSerialize: "serialize",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// step is one entry of a recipe.
type step[R any] struct {
	stage Stage
	run   func(*job[R]) error
}

// job carries the state of one document while its recipe runs.
type job[R any] struct {
	ctx context.Context
	r   *Renderer
	rec *R
	doc *canvas.Document
	out *Output

	// buf receives the PDF file in the serialize stage.  If buf is nil,
	// the stage does nothing.
	buf *bytes.Buffer
}

func stagesOf[R any](steps []step[R]) []Stage {
	res := make([]Stage, len(steps))
	for i, s := range steps {
		res[i] = s.stage
	}
	return res
}

// run executes the steps in order and stops at the first failure.
// Drawing errors recorded on the document count as a failure of the
// stage which caused them.
func (j *job[R]) run(kind string, steps []step[R]) error {
	log := Logger().With(slog.String("document", kind))
	for _, s := range steps {
		if err := j.ctx.Err(); err != nil {
			return &StageError{Stage: s.stage, Err: err}
		}
		start := time.Now()
		err := s.run(j)
		if err == nil {
			err = j.doc.Err
		}
		if err != nil {
			log.Debug("stage failed", slog.String("stage", s.stage.String()), slog.Any("error", err))
			return &StageError{Stage: s.stage, Err: err}
		}
		log.Debug("stage done",
			slog.String("stage", s.stage.String()),
			slog.Int("pages", j.doc.NumPages()),
			slog.Duration("elapsed", time.Since(start)))
	}
	return nil
}

// warn records a problem which caused a section to be left out.
func (j *job[R]) warn(stage Stage, err error) {
	Logger().Warn("section omitted",
		slog.String("stage", stage.String()),
		slog.String("file", j.out.Filename),
		slog.Any("error", err))
	j.out.Warnings = append(j.out.Warnings, &StageError{Stage: stage, Err: err})
}

func serialize[R any](j *job[R]) error {
	if j.buf == nil {
		return nil
	}
	return j.doc.WritePDF(j.buf)
}

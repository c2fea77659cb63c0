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
	"time"

	"seehuhn.de/go/printout/barcode"
	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/textlayout"
)

// DefaultBarcodeTimeout is the time allowed for encoding the QR code of a
// ticket.
const DefaultBarcodeTimeout = 5 * time.Second

// Renderer produces ticket and report documents.
//
// A Renderer is safe for concurrent use, as long as its fields are not
// modified.
type Renderer struct {
	Theme *Theme

	// Measurer determines text widths for layout.  It must match the
	// fonts used in the PDF output.
	Measurer textlayout.Measurer

	Barcode        barcode.Encoder
	BarcodeOptions barcode.Options

	// BarcodeTimeout limits the time spent in the barcode encoder.  If
	// this is zero, there is no limit beyond the context of the call.
	BarcodeTimeout time.Duration
}

// NewRenderer returns a renderer with the default theme and a QR encoder.
func NewRenderer() *Renderer {
	return &Renderer{
		Theme:          DefaultTheme(),
		Measurer:       textlayout.Helvetica,
		Barcode:        barcode.NewQR(),
		BarcodeOptions: barcode.DefaultOptions(),
		BarcodeTimeout: DefaultBarcodeTimeout,
	}
}

// Output is a laid-out document which has not been serialised yet.
type Output struct {
	Doc      *canvas.Document
	Filename string

	// Warnings lists the sections which were left out, as
	// [*StageError] values.
	Warnings []error
}

// BuildTicket lays out a boarding pass.
func (r *Renderer) BuildTicket(ctx context.Context, rec *TicketRecord) (*Output, error) {
	j := newJob(ctx, r, rec, nil)
	if err := j.run("ticket", ticketSteps); err != nil {
		return nil, err
	}
	return j.out, nil
}

// RenderTicket renders a boarding pass.  It returns the PDF file and the
// suggested file name.
func (r *Renderer) RenderTicket(ctx context.Context, rec *TicketRecord) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	j := newJob(ctx, r, rec, buf)
	if err := j.run("ticket", ticketSteps); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), j.out.Filename, nil
}

// BuildFinanceReport lays out a finance report.
func (r *Renderer) BuildFinanceReport(ctx context.Context, rec *FinanceReportRecord) (*Output, error) {
	j := newJob(ctx, r, rec, nil)
	if err := j.run("report", reportSteps); err != nil {
		return nil, err
	}
	return j.out, nil
}

// RenderFinanceReport renders a finance report.  It returns the PDF file
// and the suggested file name.
func (r *Renderer) RenderFinanceReport(ctx context.Context, rec *FinanceReportRecord) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	j := newJob(ctx, r, rec, buf)
	if err := j.run("report", reportSteps); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), j.out.Filename, nil
}

func newJob[R any](ctx context.Context, r *Renderer, rec *R, buf *bytes.Buffer) *job[R] {
	doc := canvas.NewA4(r.Measurer)
	return &job[R]{
		ctx: ctx,
		r:   r,
		rec: rec,
		doc: doc,
		out: &Output{Doc: doc},
		buf: buf,
	}
}

var defaultRenderer = NewRenderer()

// RenderTicket renders a boarding pass using the default renderer.
func RenderTicket(ctx context.Context, rec *TicketRecord) ([]byte, string, error) {
	return defaultRenderer.RenderTicket(ctx, rec)
}

// RenderFinanceReport renders a finance report using the default renderer.
func RenderFinanceReport(ctx context.Context, rec *FinanceReportRecord) ([]byte, string, error) {
	return defaultRenderer.RenderFinanceReport(ctx, rec)
}

// TicketStages lists the stages of the boarding pass recipe, in order.
func TicketStages() []Stage {
	return stagesOf(ticketSteps)
}

// ReportStages lists the stages of the finance report recipe, in order.
func ReportStages() []Stage {
	return stagesOf(reportSteps)
}

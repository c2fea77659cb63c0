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
	"context"
	"errors"
	"fmt"

	"seehuhn.de/go/printout/asset"
	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/optional"
	"seehuhn.de/go/printout/textlayout"
)

var errNilRecord = errors.New("printout: nil record")

func regular(size float64, c canvas.Color) canvas.Font {
	return canvas.Font{Size: size, Color: c}
}

func bold(size float64, c canvas.Color) canvas.Font {
	return canvas.Font{Size: size, Style: canvas.Bold, Color: c}
}

func italic(size float64, c canvas.Color) canvas.Font {
	return canvas.Font{Size: size, Style: canvas.Italic, Color: c}
}

// text draws one line of record text.
func (j *job[R]) text(s string, x, y float64, f canvas.Font, a canvas.Align) {
	j.doc.Text(textlayout.Normalize(s), x, y, f, a)
}

// fit draws one line of text, shortened to maxWidth if needed.
func (j *job[R]) fit(s string, x, y, maxWidth float64, f canvas.Font, a canvas.Align) {
	s = textlayout.Fit(j.r.Measurer, textlayout.Normalize(s), maxWidth, f)
	j.doc.Text(s, x, y, f, a)
}

// lines wraps s to maxWidth and draws the lines starting at baseline y.
// It returns the baseline of the last line.
func (j *job[R]) lines(s string, x, y, maxWidth float64, f canvas.Font, a canvas.Align) float64 {
	lh := f.SizeMM() * lineFactor
	lines := textlayout.Wrap(j.r.Measurer, textlayout.Normalize(s), maxWidth, f)
	for i, line := range lines {
		j.doc.Text(line, x, y+float64(i)*lh, f, a)
	}
	return y + float64(max(len(lines)-1, 0))*lh
}

// logo places an optional logo.  Undecodable images are reported as
// warnings.
func (j *job[R]) logo(stage Stage, src optional.Value[asset.Source], x, y, width float64) {
	data, ok := src.Get()
	if !ok {
		return
	}
	_, err := asset.Place(j.doc, &asset.Image{Data: data, Width: width}, x, y)
	if err != nil {
		j.warn(stage, fmt.Errorf("logo: %w", err))
	}
}

// encodeBarcode runs the barcode encoder, subject to the configured
// timeout.
func (j *job[R]) encodeBarcode(payload string) ([]byte, error) {
	r := j.r
	if r.Barcode == nil {
		return nil, errors.New("no encoder configured")
	}

	ctx := j.ctx
	if r.BarcodeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.BarcodeTimeout)
		defer cancel()
	}

	type result struct {
		data []byte
		err  error
	}
	c := make(chan result, 1)
	go func() {
		data, err := r.Barcode.Encode(ctx, payload, r.BarcodeOptions)
		c <- result{data, err}
	}()
	select {
	case res := <-c:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// lineFactor is the distance between baselines of wrapped text, relative
// to the font size.
const lineFactor = 1.15

// Positions on the boarding pass, in millimetres from the top of the page.
const (
	ticketCardY      = 65
	ticketCardHeight = 150
	ticketRouteY     = ticketCardY + 18
	ticketDetailsY   = ticketCardY + 52
	ticketQRY        = ticketCardY + 54
	ticketQRSize     = 30
	ticketPassengerY = ticketCardY + 120
	ticketAmenitiesY = ticketPassengerY + 35
	ticketInfoY      = ticketAmenitiesY + 27
	ticketTermsY     = ticketInfoY + 3
	ticketFooterGap  = 20
)

var ticketSteps = []step[TicketRecord]{
	{StageValidate, validateTicket},
	{StageHeader, ticketHeader},
	{StageTitle, ticketTitle},
	{StageRoute, ticketRoute},
	{StageDetails, ticketDetails},
	{StagePassenger, ticketPassenger},
	{StageQRCode, ticketQRCode},
	{StageAmenities, ticketAmenities},
	{StageTerms, ticketTerms},
	{StageFooter, ticketFooter},
	{StageSerialize, serialize[TicketRecord]},
}

func validateTicket(j *job[TicketRecord]) error {
	if j.rec == nil {
		return errNilRecord
	}
	if err := j.rec.Validate(); err != nil {
		return err
	}
	j.out.Filename = TicketFilename(j.rec.TicketID)
	return nil
}

func ticketHeader(j *job[TicketRecord]) error {
	d, t := j.doc, j.r.Theme
	w := d.Width

	d.FillRect(canvas.R(0, 0, w, 50), t.Secondary)
	d.FillRect(canvas.R(0, 40, w, 10), t.Primary)
	j.logo(StageHeader, j.rec.Logo, 20, 12, 45)
	return nil
}

func ticketTitle(j *job[TicketRecord]) error {
	w := j.doc.Width
	j.text("BOARDING PASS", w-20, 28, bold(28, canvas.White), canvas.AlignRight)
	j.text("Ticket #"+j.rec.TicketID.String(), w-20, 38, regular(11, canvas.White), canvas.AlignRight)
	return nil
}

func ticketRoute(j *job[TicketRecord]) error {
	d, t := j.doc, j.r.Theme
	w := d.Width

	d.RoundedRect(canvas.R(21, ticketCardY+1, w-42, ticketCardHeight), 4,
		canvas.ModeFill, canvas.Paint{Fill: canvas.Gray(220)})
	d.RoundedRect(canvas.R(20, ticketCardY, w-40, ticketCardHeight), 4,
		canvas.ModeFillStroke, canvas.Paint{Fill: canvas.White, Stroke: canvas.Gray(200), LineWidth: 0.3})

	route := ParseRoute(j.rec.RouteName)
	label := regular(10, canvas.Gray(120))
	j.text("ORIGIN", 35, ticketRouteY-10, label, canvas.AlignLeft)
	j.text("DESTINATION", w-35, ticketRouteY-10, label, canvas.AlignRight)

	name := bold(18, t.Primary)
	maxWidth := w/2 - 55
	j.lines(route.Origin, 35, ticketRouteY, maxWidth, name, canvas.AlignLeft)
	j.lines(route.Destination, w-35, ticketRouteY, maxWidth, name, canvas.AlignRight)

	d.Line(w/2-25, ticketRouteY-4, w/2+25, ticketRouteY-4, t.Secondary, 1)
	return nil
}

func ticketDetails(j *job[TicketRecord]) error {
	w := j.doc.Width
	left, right := 35.0, w/2+10
	leftWidth := right - left - 5
	rightWidth := qrX(w) - 2 - right - 3

	rec := j.rec
	j.detail("Date", rec.TravelDate, left, ticketDetailsY, leftWidth)
	j.detail("Time", rec.TravelTime, right, ticketDetailsY, rightWidth)
	j.detail("Seat", rec.Seat.String(), left, ticketDetailsY+20, leftWidth)
	j.detail("Price", j.r.Theme.Price(rec.Price.String()), right, ticketDetailsY+20, rightWidth)
	return nil
}

func (j *job[R]) detail(label, value string, x, y, maxWidth float64) {
	j.text(textlayout.Upper(label), x, y, regular(8, canvas.Gray(120)), canvas.AlignLeft)
	j.fit(value, x, y+7, maxWidth, bold(12, j.r.Theme.Dark), canvas.AlignLeft)
}

func ticketPassenger(j *job[TicketRecord]) error {
	d, t := j.doc, j.r.Theme
	w := d.Width
	y := float64(ticketPassengerY)

	d.RoundedRect(canvas.R(30, y, w-60, 30), 3, canvas.ModeFill, canvas.Paint{Fill: t.Light})
	j.text("PASSENGER", 38, y+8, regular(8, canvas.Gray(100)), canvas.AlignLeft)
	j.fit(textlayout.Upper(j.rec.Username), 38, y+17, w-76, bold(13, t.Primary), canvas.AlignLeft)
	j.fit(j.rec.Email, 38, y+24, w-76, regular(9, canvas.Gray(100)), canvas.AlignLeft)
	return nil
}

func qrX(pageWidth float64) float64 {
	return pageWidth - ticketQRSize - 32
}

func ticketQRCode(j *job[TicketRecord]) error {
	d, t := j.doc, j.r.Theme

	data, err := j.encodeBarcode(QRPayload(j.rec))
	if err != nil {
		if ctxErr := j.ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		j.warn(StageQRCode, fmt.Errorf("%w: %w", ErrAdapter, err))
		return nil
	}
	img, _, err := asset.Decode(data)
	if err != nil {
		j.warn(StageQRCode, fmt.Errorf("%w: %w", ErrAdapter, err))
		return nil
	}

	x, y := qrX(d.Width), float64(ticketQRY)
	d.RoundedRect(canvas.R(x-2, y-2, ticketQRSize+4, ticketQRSize+4), 3,
		canvas.ModeFillStroke, canvas.Paint{Fill: canvas.White, Stroke: t.Secondary, LineWidth: 1.5})
	d.Image(img, canvas.R(x, y, ticketQRSize, ticketQRSize))
	j.text("Scan to validate", x+ticketQRSize/2, y+ticketQRSize+6,
		regular(7, canvas.Gray(120)), canvas.AlignCenter)
	return nil
}

func ticketAmenities(j *job[TicketRecord]) error {
	d, t := j.doc, j.r.Theme
	w := d.Width
	y := float64(ticketAmenitiesY)

	d.RoundedRect(canvas.R(30, y, w-60, 22), 3, canvas.ModeFill, canvas.Paint{Fill: t.AmenityFill})
	j.text("AMENITIES", 38, y+7, regular(8, canvas.Gray(100)), canvas.AlignLeft)
	j.fit(t.amenityLine(), 38, y+16, w-76, bold(10, t.Secondary), canvas.AlignLeft)
	return nil
}

// ticketTerms draws the purchase time and the terms box.  The box ends
// above the footer rule.
func ticketTerms(j *job[TicketRecord]) error {
	d, t := j.doc, j.r.Theme
	w := d.Width

	if j.rec.PurchaseDateTime != "" {
		j.text("Bought: "+j.rec.PurchaseDateTime, 20, ticketInfoY, regular(8, canvas.Gray(120)), canvas.AlignLeft)
	}

	y := float64(ticketTermsY)
	h := d.Height - ticketFooterGap - 3 - y
	box := canvas.R(20, y, w-40, h)
	d.FillRect(box, canvas.Gray(250))
	d.StrokeRect(box, canvas.Gray(230), 0.2)

	j.text("TERMS AND CONDITIONS", 25, y+5, bold(7, canvas.Gray(120)), canvas.AlignLeft)
	f := regular(7, canvas.Gray(120))
	for i, line := range t.Terms {
		baseline := y + 10 + float64(i)*4
		if baseline > box.Bottom()-1 {
			break
		}
		j.fit(line, 25, baseline, box.W-10, f, canvas.AlignLeft)
	}
	return nil
}

func ticketFooter(j *job[TicketRecord]) error {
	d, t := j.doc, j.r.Theme
	w, h := d.Width, d.Height

	d.Line(0, h-ticketFooterGap, w, h-ticketFooterGap, t.Secondary, 2)
	j.text(t.Brand, 20, h-10, bold(9, t.Primary), canvas.AlignLeft)
	j.text(t.Tagline, 20, h-6, regular(7, canvas.Gray(120)), canvas.AlignLeft)
	j.text(t.Website, w-20, h-10, regular(7, canvas.Gray(120)), canvas.AlignRight)
	return nil
}

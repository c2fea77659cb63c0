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

package printout_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"testing"
	"time"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/printout"
	"seehuhn.de/go/printout/asset"
	"seehuhn.de/go/printout/barcode"
	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/preview"
	"seehuhn.de/go/printout/testcases"
)

func build(t *testing.T, r *printout.Renderer, tc testcases.Case) *printout.Output {
	t.Helper()
	var out *printout.Output
	var err error
	if tc.Ticket != nil {
		out, err = r.BuildTicket(context.Background(), tc.Ticket)
	} else {
		out, err = r.BuildFinanceReport(context.Background(), tc.Report)
	}
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestFixtures(t *testing.T) {
	r := printout.NewRenderer()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				out := build(t, r, tc)

				if out.Filename != tc.Filename {
					t.Errorf("filename %q, want %q", out.Filename, tc.Filename)
				}
				if n := out.Doc.NumPages(); n != tc.Pages {
					t.Errorf("%d pages, want %d", n, tc.Pages)
				}
				if len(out.Warnings) != tc.Warnings {
					t.Errorf("warnings %v, want %d", out.Warnings, tc.Warnings)
				}

				// nothing is drawn outside the page; full-width rules
				// may overhang by half their width
				bounds := out.Doc.Bounds().Inset(-0.01)
				for _, p := range out.Doc.Pages() {
					for _, op := range p.Ops {
						if _, isLine := op.(canvas.LineOp); isLine {
							continue
						}
						if !bounds.Contains(op.Bounds()) {
							t.Errorf("%s: %T at %s outside the page", p, op, op.Bounds())
						}
					}
				}
			})
		}
	}
}

func TestRenderTicket(t *testing.T) {
	data, name, err := printout.RenderTicket(context.Background(), testcases.BaseTicket())
	if err != nil {
		t.Fatal(err)
	}
	if name != "BoardingPass_7.pdf" {
		t.Errorf("filename %q", name)
	}
	if n := pdfPages(t, data); n != 1 {
		t.Errorf("%d pages", n)
	}
}

func TestTicketText(t *testing.T) {
	out, err := printout.NewRenderer().BuildTicket(context.Background(), testcases.BaseTicket())
	if err != nil {
		t.Fatal(err)
	}
	text := out.Doc.Pages()[0].Strings()
	for _, want := range []string{
		"BOARDING PASS", "Ticket #7", "ORIGIN", "DESTINATION", "Lima", "Cusco",
		"DATE", "2025-06-01", "TIME", "08:30", "SEAT", "12", "PRICE", "$45.00",
		"PASSENGER", "ANA TORRES", "ana.torres@example.com",
		"Scan to validate", "Bought: 2025-05-20 14:12", "TERMS AND CONDITIONS",
		"SIDAROCO", "www.sidaroco.com",
	} {
		if !slices.Contains(text, want) {
			t.Errorf("missing text %q", want)
		}
	}
}

func TestPriceNotDoubled(t *testing.T) {
	rec := testcases.BaseTicket()
	rec.Price = "$120"
	out, err := printout.NewRenderer().BuildTicket(context.Background(), rec)
	if err != nil {
		t.Fatal(err)
	}
	text := out.Doc.Pages()[0].Strings()
	if !slices.Contains(text, "$120") || slices.Contains(text, "$$120") {
		t.Errorf("price text: %q", text)
	}
}

func TestMissingTicketID(t *testing.T) {
	rec := testcases.BaseTicket()
	rec.TicketID = ""
	data, name, err := printout.RenderTicket(context.Background(), rec)
	if !errors.Is(err, printout.ErrMissingField) {
		t.Fatalf("got error %v", err)
	}
	var mf *printout.MissingFieldError
	if !errors.As(err, &mf) || mf.Field != "ticketId" {
		t.Errorf("got %v", err)
	}
	var se *printout.StageError
	if !errors.As(err, &se) || se.Stage != printout.StageValidate {
		t.Errorf("got %v", err)
	}
	if data != nil || name != "" {
		t.Errorf("got %d bytes, name %q", len(data), name)
	}
}

func TestNilRecord(t *testing.T) {
	if _, _, err := printout.RenderFinanceReport(context.Background(), nil); err == nil {
		t.Error("nil record accepted")
	}
}

func TestDailySummary(t *testing.T) {
	data, name, err := printout.RenderFinanceReport(context.Background(), testcases.DailySummary())
	if err != nil {
		t.Fatal(err)
	}
	if name != "Daily_Summary.pdf" {
		t.Errorf("filename %q", name)
	}
	if n := pdfPages(t, data); n != 1 {
		t.Errorf("%d pages", n)
	}

	out, err := printout.NewRenderer().BuildFinanceReport(context.Background(), testcases.DailySummary())
	if err != nil {
		t.Fatal(err)
	}
	text := out.Doc.Pages()[0].Strings()
	for _, want := range []string{
		"Daily Summary", "Period: 2025-06-01", "Financial summary",
		"Total income", "1520.50", "Transaction Details",
		"Date", "Concept", "Amount", "Ticket sales",
		"© 2025 SIDAROO", "Page 1 of 1",
	} {
		if !slices.Contains(text, want) {
			t.Errorf("missing text %q", want)
		}
	}
	if n := count(text, "Ticket sales"); n != 1 {
		t.Errorf("table row shown %d times", n)
	}
}

func TestReportFooters(t *testing.T) {
	tc := testcases.All["report"][1]
	if tc.Name != "monthly_report" {
		t.Fatalf("unexpected fixture %q", tc.Name)
	}
	out := build(t, printout.NewRenderer(), tc)

	n := out.Doc.NumPages()
	var rows []string
	for i, p := range out.Doc.Pages() {
		text := p.Strings()
		if want := fmt.Sprintf("Page %d of %d", i+1, n); !slices.Contains(text, want) {
			t.Errorf("page %d: missing %q", i+1, want)
		}
		if count(text, "Description") != 1 {
			t.Errorf("page %d: table header missing", i+1)
		}
		for _, s := range text {
			if strings.HasPrefix(s, "Transaction ") && s != "Transaction Details" {
				rows = append(rows, s)
			}
		}

		// table rows stay above the footer band
		for _, op := range p.Ops {
			if r, ok := op.(canvas.RectOp); ok && r.Rect.Bottom() > out.Doc.Height-30+1e-9 {
				t.Errorf("page %d: rectangle %s in the footer band", i+1, r.Rect)
			}
		}
	}

	var want []string
	for i := range 30 {
		want = append(want, fmt.Sprintf("Transaction %d", i+1))
	}
	if !slices.Equal(rows, want) {
		t.Errorf("rows out of order or missing: %q", rows)
	}
}

func fixture(t *testing.T, category, name string) testcases.Case {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("no fixture %s/%s", category, name)
	return testcases.Case{}
}

func TestSummaryCardsPaged(t *testing.T) {
	tc := fixture(t, "report", "card_overflow")
	out := build(t, printout.NewRenderer(), tc)

	var want []string
	for _, item := range tc.Report.Summary {
		want = append(want, item.Value.String())
	}

	var values []string
	for i, p := range out.Doc.Pages() {
		for _, s := range p.Strings() {
			if slices.Contains(want, s) {
				values = append(values, s)
			}
		}
		for _, op := range p.Ops {
			if r, ok := op.(canvas.RectOp); ok && r.Rect.Bottom() > out.Doc.Height-30+1e-9 {
				t.Errorf("page %d: card %s in the footer band", i+1, r.Rect)
			}
		}
	}
	if !slices.Equal(values, want) {
		t.Errorf("card values %q, want %q", values, want)
	}
}

func TestEmptyTable(t *testing.T) {
	rec := testcases.DailySummary()
	rec.TableRows = nil
	out, err := printout.NewRenderer().BuildFinanceReport(context.Background(), rec)
	if err != nil {
		t.Fatal(err)
	}
	if slices.Contains(out.Doc.Pages()[0].Strings(), "Transaction Details") {
		t.Error("table section drawn without rows")
	}
	if len(out.Warnings) != 0 {
		t.Errorf("warnings: %v", out.Warnings)
	}
}

func TestBrokenLogo(t *testing.T) {
	var logBuf bytes.Buffer
	printout.SetLogger(slog.New(slog.NewTextHandler(&logBuf, nil)))
	t.Cleanup(func() { printout.SetLogger(nil) })

	rec := testcases.BaseTicket()
	rec.Logo.Set(asset.Source("GIF89a but not really"))
	data, _, err := printout.NewRenderer().RenderTicket(context.Background(), rec)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("no PDF produced")
	}
	if !strings.Contains(logBuf.String(), "section omitted") {
		t.Errorf("no warning logged: %q", logBuf.String())
	}

	out, err := printout.NewRenderer().BuildTicket(context.Background(), rec)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Warnings) != 1 || !errors.Is(out.Warnings[0], asset.ErrDecode) {
		t.Fatalf("warnings: %v", out.Warnings)
	}
	for _, op := range out.Doc.Pages()[0].Ops {
		if _, ok := op.(canvas.ImageOp); ok && op.Bounds().Y < 40 {
			t.Error("logo drawn")
		}
	}
}

func TestBarcodeFailure(t *testing.T) {
	r := printout.NewRenderer()
	r.Barcode = barcode.EncoderFunc(func(context.Context, string, barcode.Options) ([]byte, error) {
		return nil, errors.New("printer on fire")
	})

	data, _, err := r.RenderTicket(context.Background(), testcases.BaseTicket())
	if err != nil {
		t.Fatal(err)
	}
	if n := pdfPages(t, data); n != 1 {
		t.Errorf("%d pages", n)
	}

	out, err := r.BuildTicket(context.Background(), testcases.BaseTicket())
	if err != nil {
		t.Fatal(err)
	}
	checkQRWarning(t, out)
}

func TestBarcodeTimeout(t *testing.T) {
	r := printout.NewRenderer()
	r.BarcodeTimeout = 20 * time.Millisecond
	r.Barcode = barcode.EncoderFunc(func(ctx context.Context, _ string, _ barcode.Options) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	out, err := r.BuildTicket(context.Background(), testcases.BaseTicket())
	if err != nil {
		t.Fatal(err)
	}
	checkQRWarning(t, out)
	if !errors.Is(out.Warnings[0], context.DeadlineExceeded) {
		t.Errorf("got %v", out.Warnings[0])
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := printout.RenderTicket(ctx, testcases.BaseTicket())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v", err)
	}
}

func checkQRWarning(t *testing.T, out *printout.Output) {
	t.Helper()
	if len(out.Warnings) != 1 || !errors.Is(out.Warnings[0], printout.ErrAdapter) {
		t.Fatalf("warnings: %v", out.Warnings)
	}
	text := out.Doc.Pages()[0].Strings()
	if slices.Contains(text, "Scan to validate") {
		t.Error("QR section drawn")
	}
	if !slices.Contains(text, "AMENITIES") {
		t.Error("later sections missing")
	}
}

func TestConcurrent(t *testing.T) {
	r := printout.NewRenderer()
	const n = 8
	errs := make(chan error, n)
	for i := range n {
		go func() {
			rec := testcases.BaseTicket()
			rec.TicketID = printout.Scalar(fmt.Sprint(i))
			_, name, err := r.RenderTicket(context.Background(), rec)
			if err == nil && name != fmt.Sprintf("BoardingPass_%d.pdf", i) {
				err = fmt.Errorf("wrong name %q", name)
			}
			errs <- err
		}()
	}
	for range n {
		if err := <-errs; err != nil {
			t.Error(err)
		}
	}
}

func TestPreviewColours(t *testing.T) {
	r := printout.NewRenderer()
	out, err := r.BuildTicket(context.Background(), testcases.BaseTicket())
	if err != nil {
		t.Fatal(err)
	}
	const dpi = 72
	img, err := preview.Page(out.Doc, 0, dpi)
	if err != nil {
		t.Fatal(err)
	}

	th := r.Theme
	checks := []struct {
		name string
		x, y float64
		want canvas.Color
	}{
		{"header", 10, 20, th.Secondary},
		{"header stripe", 60, 45, th.Primary},
		{"card", 100, 100, canvas.White},
		{"passenger box", 120, 212, th.Light},
		{"amenities box", 160, 240, th.AmenityFill},
		{"footer rule", 100, 277, th.Secondary},
	}
	for _, c := range checks {
		px := img.NRGBAAt(int(c.x/25.4*dpi), int(c.y/25.4*dpi))
		if got := canvas.RGB(px.R, px.G, px.B); got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func pdfPages(t *testing.T, data []byte) int {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	n, err := pagetree.NumPages(r)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func count(xs []string, s string) int {
	n := 0
	for _, x := range xs {
		if x == s {
			n++
		}
	}
	return n
}

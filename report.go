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
	"fmt"
	"log/slog"

	"seehuhn.de/go/printout/canvas"
	"seehuhn.de/go/printout/grid"
	"seehuhn.de/go/printout/table"
)

// reportFooterHeight is the band at the bottom of every report page which
// is kept free for the footer.
const reportFooterHeight = 30

var reportSteps = []step[FinanceReportRecord]{
	{StageValidate, validateReport},
	{StageHeader, reportHeader},
	{StageTitle, reportTitle},
	{StageSummary, reportSummary},
	{StageTable, reportTable},
	{StageFooter, reportFooter},
	{StageSerialize, serialize[FinanceReportRecord]},
}

// SummaryGrid returns the placement of the summary cards in a report.
func SummaryGrid(y float64) grid.Spec {
	return grid.Spec{
		Columns:    2,
		CardWidth:  85,
		CardHeight: 22,
		ColSpacing: 10,
		RowSpacing: 8,
		OriginX:    20,
		OriginY:    y,
	}
}

func validateReport(j *job[FinanceReportRecord]) error {
	if j.rec == nil {
		return errNilRecord
	}
	if err := j.rec.Validate(); err != nil {
		return err
	}
	j.out.Filename = Filename(j.rec.Title)
	return nil
}

func reportHeader(j *job[FinanceReportRecord]) error {
	d, t := j.doc, j.r.Theme
	w := d.Width

	d.FillRect(canvas.R(0, 0, w, 8), t.Primary)
	d.FillRect(canvas.R(0, 8, w, 2), t.Secondary)
	j.logo(StageHeader, j.rec.Logo, 20, 15, 40)
	j.text(j.rec.QueriedAt, w-20, 18, regular(9, canvas.Gray(100)), canvas.AlignRight)
	return nil
}

func reportTitle(j *job[FinanceReportRecord]) error {
	d, t := j.doc, j.r.Theme

	j.fit(j.rec.Title, 20, 45, d.Width-40, bold(24, t.Primary), canvas.AlignLeft)
	d.Line(20, 48, 80, 48, t.Secondary, 1)
	j.fit("Period: "+j.rec.PeriodLabel, 20, 56, d.Width-40, regular(12, canvas.Gray(80)), canvas.AlignLeft)
	d.Y = 70
	return nil
}

func reportSummary(j *job[FinanceReportRecord]) error {
	d, t := j.doc, j.r.Theme
	bottom := d.Height - reportFooterHeight
	st := grid.DefaultCardStyle(t.Accent, t.Secondary)

	cards := make([]grid.Card, len(j.rec.Summary))
	for i, item := range j.rec.Summary {
		cards[i] = grid.Card{Label: item.Label, Value: item.Value.String()}
	}

	// Keep the heading together with the first row of cards.
	if len(cards) > 0 && d.Y+10+SummaryGrid(0).CardHeight > bottom && d.Y > d.Content().Y {
		d.AddPage()
	}
	j.text("Financial summary", 20, d.Y, bold(14, t.Primary), canvas.AlignLeft)
	d.Y += 10

	for len(cards) > 0 {
		spec := SummaryGrid(d.Y)
		n := min(len(cards), spec.Fit(bottom-d.Y))
		d.Y += grid.DrawCards(d, j.r.Measurer, cards[:n], spec, st)
		cards = cards[n:]
		if len(cards) > 0 {
			Logger().Debug("summary continues on next page", slog.Int("cards", len(cards)))
			d.AddPage()
		}
	}
	d.Y += 15
	return nil
}

func reportTable(j *job[FinanceReportRecord]) error {
	d, t := j.doc, j.r.Theme
	rec := j.rec
	if len(rec.TableHeaders) == 0 || len(rec.TableRows) == 0 {
		return nil
	}

	tab := &table.Table{
		Headers: rec.TableHeaders,
		Rows:    rec.rows(),
		Style:   table.DefaultStyle(t.Primary, t.Light),
		Bottom:  d.Height - reportFooterHeight,
	}

	// Keep the section title together with the start of the table.
	need := 8 + tab.Style.HeaderHeight() + tab.Style.RowHeight()
	if d.Y+need > tab.Bottom && d.Y > d.Content().Y {
		d.AddPage()
		d.Y += 5
	}

	j.text("Transaction Details", 20, d.Y, bold(14, t.Primary), canvas.AlignLeft)
	d.Y += 8
	_, pages := tab.Render(d, j.r.Measurer, d.Y)
	Logger().Debug("table placed",
		slog.Int("rows", len(tab.Rows)),
		slog.Int("pages", pages))
	return nil
}

func reportFooter(j *job[FinanceReportRecord]) error {
	d, t := j.doc, j.r.Theme
	w, h := d.Width, d.Height
	last := d.NumPages() - 1

	for i := range d.NumPages() {
		d.SelectPage(i)
		d.Line(20, h-25, w-20, h-25, t.Secondary, 0.5)
		j.text(t.ReportBrand, 20, h-15, regular(8, canvas.Gray(120)), canvas.AlignLeft)
		j.text(t.ReportTagline, 20, h-10, italic(8, canvas.Gray(120)), canvas.AlignLeft)
		j.text(fmt.Sprintf("Page %d of %d", i+1, d.NumPages()), w-20, h-15,
			regular(8, canvas.Gray(120)), canvas.AlignRight)
	}
	d.SelectPage(last)
	return nil
}

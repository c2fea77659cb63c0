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
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRoute(t *testing.T) {
	cases := []struct {
		in   string
		want Route
	}{
		{"Lima → Cusco", Route{"Lima", "Cusco"}},
		{"Lima->Cusco", Route{"Lima", "Cusco"}},
		{"  Arequipa  ->  Puno ", Route{"Arequipa", "Puno"}},
		{"City Tour", Route{"City Tour", DestinationPlaceholder}},
		{"Lima →", Route{"Lima", DestinationPlaceholder}},
		{"→ Cusco", Route{OriginPlaceholder, "Cusco"}},
		{"A -> B → C", Route{"A -> B", "C"}},
		{"A → B -> C", Route{"A", "B -> C"}},
		{"A → B → C", Route{"A", "B"}},
		{"A -> B -> C", Route{"A", "B"}},
		{"   ", Route{OriginPlaceholder, DestinationPlaceholder}},
	}
	for _, c := range cases {
		got := ParseRoute(c.in)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("ParseRoute(%q) (-want +got):\n%s", c.in, d)
		}
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Monthly Report", "Monthly_Report.pdf"},
		{"Daily Summary", "Daily_Summary.pdf"},
		{"Annual \t\n Ledger", "Annual_Ledger.pdf"},
		{"  padded  ", "padded.pdf"},
		{"Résumé 2025", "Résumé_2025.pdf"},
		{"x", "x.pdf"},
	}
	for _, c := range cases {
		if got := Filename(c.in); got != c.want {
			t.Errorf("Filename(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if got := TicketFilename("7"); got != "BoardingPass_7.pdf" {
		t.Errorf("TicketFilename = %q", got)
	}
}

func TestScalar(t *testing.T) {
	var rec TicketRecord
	in := `{"ticketId": 7, "seat": "12A", "price": 45.5, "routeName": "Lima → Cusco"}`
	if err := json.Unmarshal([]byte(in), &rec); err != nil {
		t.Fatal(err)
	}
	got := []Scalar{rec.TicketID, rec.Seat, rec.Price}
	want := []Scalar{"7", "12A", "45.5"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("scalars (-want +got):\n%s", d)
	}
	if rec.Logo.IsSet() {
		t.Error("missing logo decoded as set")
	}

	var s Scalar
	if err := json.Unmarshal([]byte(`true`), &s); err == nil {
		t.Error("boolean accepted as scalar")
	}
	if err := json.Unmarshal([]byte(`null`), &s); err != nil || s != "" {
		t.Errorf("null: %q, %v", s, err)
	}
}

func TestTicketValidate(t *testing.T) {
	full := func() *TicketRecord {
		return &TicketRecord{
			TicketID:   "7",
			RouteName:  "Lima → Cusco",
			TravelDate: "2025-06-01",
			TravelTime: "08:30",
			Seat:       "12",
			Price:      "45",
			Username:   "ana",
			Email:      "ana@example.com",
		}
	}
	if err := full().Validate(); err != nil {
		t.Fatal(err)
	}

	blank := map[string]func(*TicketRecord){
		"ticketId":   func(r *TicketRecord) { r.TicketID = "" },
		"routeName":  func(r *TicketRecord) { r.RouteName = "  " },
		"travelDate": func(r *TicketRecord) { r.TravelDate = "" },
		"travelTime": func(r *TicketRecord) { r.TravelTime = "" },
		"seat":       func(r *TicketRecord) { r.Seat = "" },
		"price":      func(r *TicketRecord) { r.Price = "" },
		"username":   func(r *TicketRecord) { r.Username = "" },
		"email":      func(r *TicketRecord) { r.Email = "\t" },
	}
	for field, modify := range blank {
		t.Run(field, func(t *testing.T) {
			rec := full()
			modify(rec)
			err := rec.Validate()
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("got %v", err)
			}
			var mf *MissingFieldError
			if !errors.As(err, &mf) || mf.Field != field || mf.Record != "ticket" {
				t.Errorf("got %#v", mf)
			}
		})
	}

	// purchase time is optional
	rec := full()
	rec.PurchaseDateTime = ""
	if err := rec.Validate(); err != nil {
		t.Error(err)
	}
}

func TestReportValidate(t *testing.T) {
	rec := &FinanceReportRecord{PeriodLabel: "May"}
	var mf *MissingFieldError
	if err := rec.Validate(); !errors.As(err, &mf) || mf.Field != "title" {
		t.Errorf("got %v", err)
	}
	rec = &FinanceReportRecord{Title: "T"}
	if err := rec.Validate(); !errors.As(err, &mf) || mf.Field != "periodLabel" {
		t.Errorf("got %v", err)
	}
	rec = &FinanceReportRecord{Title: "T", PeriodLabel: "May"}
	if err := rec.Validate(); err != nil {
		t.Error(err)
	}
}

func TestRowsPadded(t *testing.T) {
	rec := &FinanceReportRecord{
		TableHeaders: []string{"A", "B", "C"},
		TableRows:    [][]Scalar{{"1"}, {"1", "2", "3", "4"}, nil},
	}
	want := [][]string{{"1", "", ""}, {"1", "2", "3"}, {"", "", ""}}
	if d := cmp.Diff(want, rec.rows()); d != "" {
		t.Errorf("rows (-want +got):\n%s", d)
	}
}

func TestQRPayload(t *testing.T) {
	rec := &TicketRecord{
		TicketID:   "7",
		RouteName:  "Lima → Cusco",
		TravelDate: "2025-06-01",
		Seat:       "12",
		Username:   "ignored",
	}
	want := "TICKET:7|ROUTE:Lima → Cusco|DATE:2025-06-01|SEAT:12"
	for range 3 {
		if got := QRPayload(rec); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestPrice(t *testing.T) {
	th := DefaultTheme()
	cases := []struct{ in, want string }{
		{"45", "$45"},
		{"45.00", "$45.00"},
		{"$45", "$45"},
		{" 12 ", "$12"},
	}
	for _, c := range cases {
		if got := th.Price(c.in); got != c.want {
			t.Errorf("Price(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStages(t *testing.T) {
	want := []Stage{
		StageValidate, StageHeader, StageTitle, StageRoute, StageDetails,
		StagePassenger, StageQRCode, StageAmenities, StageTerms, StageFooter,
		StageSerialize,
	}
	if d := cmp.Diff(want, TicketStages()); d != "" {
		t.Errorf("ticket stages (-want +got):\n%s", d)
	}

	want = []Stage{
		StageValidate, StageHeader, StageTitle, StageSummary, StageTable,
		StageFooter, StageSerialize,
	}
	if d := cmp.Diff(want, ReportStages()); d != "" {
		t.Errorf("report stages (-want +got):\n%s", d)
	}

	if s := StageQRCode.String(); s != "qrcode" {
		t.Errorf("got %q", s)
	}
	if s := Stage(99).String(); s != "Stage(99)" {
		t.Errorf("got %q", s)
	}
}

func TestLoadTheme(t *testing.T) {
	th, err := LoadTheme(strings.NewReader(`{"primary": "#102030", "brand": "ACME"}`))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultTheme()
	def.Primary = th.Primary
	def.Brand = "ACME"
	if d := cmp.Diff(def, th); d != "" {
		t.Errorf("theme (-want +got):\n%s", d)
	}
	if got := th.Primary.String(); got != "#102030" {
		t.Errorf("primary = %s", got)
	}

	if _, err := LoadTheme(strings.NewReader(`{"primray": "#102030"}`)); err == nil {
		t.Error("unknown field accepted")
	}
}

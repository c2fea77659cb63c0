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
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"seehuhn.de/go/printout/asset"
	"seehuhn.de/go/printout/optional"
)

// Scalar is a record field which may be given in JSON either as a string
// or as a number.  Numbers keep their textual form.
type Scalar string

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("printout: expected string or number, got %s", data)
	}
	*s = Scalar(n)
	return nil
}

func (s Scalar) String() string {
	return string(s)
}

// TicketRecord holds the data printed on a boarding pass.
type TicketRecord struct {
	TicketID         Scalar                       `json:"ticketId"`
	RouteName        string                       `json:"routeName"`
	TravelDate       string                       `json:"travelDate"`
	TravelTime       string                       `json:"travelTime"`
	PurchaseDateTime string                       `json:"purchaseDateTime,omitempty"`
	Seat             Scalar                       `json:"seat"`
	Price            Scalar                       `json:"price"`
	Username         string                       `json:"username"`
	Email            string                       `json:"email"`
	Logo             optional.Value[asset.Source] `json:"logo"`
}

// Validate checks that all required fields are present.  Fields which
// contain only white space count as missing.
func (rec *TicketRecord) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"ticketId", string(rec.TicketID)},
		{"routeName", rec.RouteName},
		{"travelDate", rec.TravelDate},
		{"travelTime", rec.TravelTime},
		{"seat", string(rec.Seat)},
		{"price", string(rec.Price)},
		{"username", rec.Username},
		{"email", rec.Email},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Record: "ticket", Field: f.name}
		}
	}
	return nil
}

// SummaryItem is one labelled figure in the summary section of a report.
type SummaryItem struct {
	Label string `json:"label"`
	Value Scalar `json:"value"`
}

// FinanceReportRecord holds the data of a finance report.
type FinanceReportRecord struct {
	Title        string                       `json:"title"`
	PeriodLabel  string                       `json:"periodLabel"`
	QueriedAt    string                       `json:"queriedAt,omitempty"`
	Summary      []SummaryItem                `json:"summary"`
	TableHeaders []string                     `json:"tableHeaders"`
	TableRows    [][]Scalar                   `json:"tableRows"`
	Logo         optional.Value[asset.Source] `json:"logo"`
}

// Validate checks that all required fields are present.
func (rec *FinanceReportRecord) Validate() error {
	if strings.TrimSpace(rec.Title) == "" {
		return &MissingFieldError{Record: "report", Field: "title"}
	}
	if strings.TrimSpace(rec.PeriodLabel) == "" {
		return &MissingFieldError{Record: "report", Field: "periodLabel"}
	}
	return nil
}

// rows returns the table body, with every row cut or padded to the
// number of headers.
func (rec *FinanceReportRecord) rows() [][]string {
	n := len(rec.TableHeaders)
	res := make([][]string, len(rec.TableRows))
	for i, row := range rec.TableRows {
		cells := make([]string, n)
		for j := range min(n, len(row)) {
			cells[j] = string(row[j])
		}
		res[i] = cells
	}
	return res
}

// Route is the origin and destination of a trip.
type Route struct {
	Origin      string
	Destination string
}

// Placeholders used when a route name lacks one of its ends.
const (
	OriginPlaceholder      = "ORIGIN"
	DestinationPlaceholder = "DESTINATION"
)

var routeSeparators = []string{"→", "->"}

// ParseRoute splits a route name like "Lima → Cusco" or "Lima -> Cusco"
// into origin and destination.  The arrow "→" takes precedence over "->".
// If the separator occurs more than once, the destination is the part
// between the first and second occurrence.  Without a separator, the whole
// name is the origin and the destination is [DestinationPlaceholder].
func ParseRoute(name string) Route {
	r := Route{Origin: strings.TrimSpace(name)}
	for _, sep := range routeSeparators {
		parts := strings.SplitN(name, sep, 3)
		if len(parts) < 2 {
			continue
		}
		r.Origin = strings.TrimSpace(parts[0])
		r.Destination = strings.TrimSpace(parts[1])
		break
	}
	if r.Origin == "" {
		r.Origin = OriginPlaceholder
	}
	if r.Destination == "" {
		r.Destination = DestinationPlaceholder
	}
	return r
}

// QRPayload returns the text encoded in the QR code of a ticket.
func QRPayload(rec *TicketRecord) string {
	return fmt.Sprintf("TICKET:%s|ROUTE:%s|DATE:%s|SEAT:%s",
		rec.TicketID, rec.RouteName, rec.TravelDate, rec.Seat)
}

// Filename turns a document title into a file name, by replacing every
// run of white space with a single underscore and appending ".pdf".
func Filename(title string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.TrimSpace(title) {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte('_')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	b.WriteString(".pdf")
	return b.String()
}

// TicketFilename returns the file name of a boarding pass.
func TicketFilename(id Scalar) string {
	return Filename("BoardingPass_" + string(id))
}

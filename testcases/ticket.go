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

package testcases

import "seehuhn.de/go/printout"

// BaseTicket returns a complete ticket record without a logo.
func BaseTicket() *printout.TicketRecord {
	return &printout.TicketRecord{
		TicketID:         "7",
		RouteName:        "Lima → Cusco",
		TravelDate:       "2025-06-01",
		TravelTime:       "08:30",
		PurchaseDateTime: "2025-05-20 14:12",
		Seat:             "12",
		Price:            "45.00",
		Username:         "Ana Torres",
		Email:            "ana.torres@example.com",
	}
}

func ticket(modify func(*printout.TicketRecord)) *printout.TicketRecord {
	rec := BaseTicket()
	if modify != nil {
		modify(rec)
	}
	return rec
}

var ticketCases = []Case{
	{
		Name:     "basic",
		Ticket:   ticket(nil),
		Filename: "BoardingPass_7.pdf",
		Pages:    1,
	},
	{
		Name: "ascii_arrow",
		Ticket: ticket(func(r *printout.TicketRecord) {
			r.TicketID = "A-1029"
			r.RouteName = "Arequipa -> Puno"
		}),
		Filename: "BoardingPass_A-1029.pdf",
		Pages:    1,
	},
	{
		Name: "no_separator",
		Ticket: ticket(func(r *printout.TicketRecord) {
			r.RouteName = "City Tour"
		}),
		Filename: "BoardingPass_7.pdf",
		Pages:    1,
	},
	{
		Name: "long_names",
		Ticket: ticket(func(r *printout.TicketRecord) {
			r.RouteName = "San Juan de Miraflores Terminal → Santiago de Surco Central Station"
			r.Username = "María José de los Ángeles Fernández-Villavicencio y Bustamante"
			r.Email = "maria.jose.de.los.angeles.fernandez.villavicencio@correo.example.com"
		}),
		Filename: "BoardingPass_7.pdf",
		Pages:    1,
	},
	{
		Name: "prefixed_price",
		Ticket: ticket(func(r *printout.TicketRecord) {
			r.Price = "$120"
			r.PurchaseDateTime = ""
		}),
		Filename: "BoardingPass_7.pdf",
		Pages:    1,
	},
	{
		Name: "with_logo",
		Ticket: ticket(func(r *printout.TicketRecord) {
			r.Logo = logo(180, 60, green, white)
		}),
		Filename: "BoardingPass_7.pdf",
		Pages:    1,
	},
	{
		Name: "broken_logo",
		Ticket: ticket(func(r *printout.TicketRecord) {
			r.Logo = brokenLogo
		}),
		Filename: "BoardingPass_7.pdf",
		Pages:    1,
		Warnings: 1,
	},
}

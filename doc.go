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

// Package printout lays out boarding passes and finance reports as
// print-ready A4 PDF documents.
//
// A [Renderer] turns a [TicketRecord] or a [FinanceReportRecord] into PDF
// bytes together with a suggested file name.  Each document is built by
// running a fixed list of stages (see [TicketStages] and [ReportStages])
// against a fresh [canvas.Document].  Problems with optional content,
// such as an undecodable logo or a failing barcode encoder, do not stop
// the rendering; the affected section is left out and the problem is
// reported in [Output.Warnings].
package printout

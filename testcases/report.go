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

import (
	"fmt"

	"seehuhn.de/go/printout"
)

// DailySummary returns a report with one summary card and a one-row
// table.
func DailySummary() *printout.FinanceReportRecord {
	return &printout.FinanceReportRecord{
		Title:        "Daily Summary",
		PeriodLabel:  "2025-06-01",
		QueriedAt:    "Queried at 2025-06-02 09:00",
		Summary:      []printout.SummaryItem{{Label: "Total income", Value: "1520.50"}},
		TableHeaders: []string{"Date", "Concept", "Amount"},
		TableRows:    [][]printout.Scalar{{"2025-06-01", "Ticket sales", "1520.50"}},
	}
}

func summary(n int) []printout.SummaryItem {
	labels := []string{"Income", "Expenses", "Balance", "Tickets sold", "Refunds", "Average fare"}
	res := make([]printout.SummaryItem, n)
	for i := range res {
		res[i] = printout.SummaryItem{
			Label: labels[i%len(labels)],
			Value: printout.Scalar(fmt.Sprintf("%d.%02d", 1000+137*i, (i*17)%100)),
		}
	}
	return res
}

func rows(n int) [][]printout.Scalar {
	res := make([][]printout.Scalar, n)
	for i := range res {
		res[i] = []printout.Scalar{
			printout.Scalar(fmt.Sprintf("2025-05-%02d", i%31+1)),
			printout.Scalar(fmt.Sprintf("Transaction %d", i+1)),
			printout.Scalar(fmt.Sprintf("%d.00", 10+i)),
		}
	}
	return res
}

var reportHeaders = []string{"Date", "Description", "Amount"}

var reportCases = []Case{
	{
		Name:     "daily_summary",
		Report:   DailySummary(),
		Filename: "Daily_Summary.pdf",
		Pages:    1,
	},
	{
		Name: "monthly_report",
		Report: &printout.FinanceReportRecord{
			Title:        "Monthly Report",
			PeriodLabel:  "May 2025",
			Summary:      summary(4),
			TableHeaders: reportHeaders,
			TableRows:    rows(30),
		},
		Filename: "Monthly_Report.pdf",
		Pages:    3,
	},
	{
		Name: "long_table",
		Report: &printout.FinanceReportRecord{
			Title:        "Annual   Ledger",
			PeriodLabel:  "2024",
			Summary:      summary(4),
			TableHeaders: reportHeaders,
			TableRows:    rows(100),
			Logo:         logo(160, 40, green, white),
		},
		Filename: "Annual_Ledger.pdf",
		Pages:    7,
	},
	{
		Name: "no_table",
		Report: &printout.FinanceReportRecord{
			Title:       "Summary Only",
			PeriodLabel: "Q2 2025",
			Summary:     summary(3),
		},
		Filename: "Summary_Only.pdf",
		Pages:    1,
	},
	{
		Name: "no_summary",
		Report: &printout.FinanceReportRecord{
			Title:        "Cash Movements",
			PeriodLabel:  "Week 23",
			TableHeaders: reportHeaders,
			TableRows:    rows(5),
		},
		Filename: "Cash_Movements.pdf",
		Pages:    1,
	},
	{
		Name: "ragged_rows",
		Report: &printout.FinanceReportRecord{
			Title:        "Ragged",
			PeriodLabel:  "June",
			Summary:      summary(2),
			TableHeaders: reportHeaders,
			TableRows: [][]printout.Scalar{
				{"2025-06-01"},
				{"2025-06-02", "Fuel", "80.00", "extra"},
				{},
			},
		},
		Filename: "Ragged.pdf",
		Pages:    1,
	},
	{
		Name: "many_cards",
		Report: &printout.FinanceReportRecord{
			Title:        "Fleet Overview",
			PeriodLabel:  "2025",
			Summary:      summary(10),
			TableHeaders: reportHeaders,
			TableRows:    rows(3),
		},
		Filename: "Fleet_Overview.pdf",
		Pages:    2,
	},
	{
		Name: "card_overflow",
		Report: &printout.FinanceReportRecord{
			Title:       "Route Statistics",
			PeriodLabel: "H1 2025",
			Summary:     summary(16),
		},
		Filename: "Route_Statistics.pdf",
		Pages:    2,
	},
	{
		Name: "broken_logo",
		Report: &printout.FinanceReportRecord{
			Title:       "Broken Logo",
			PeriodLabel: "June",
			Logo:        brokenLogo,
		},
		Filename: "Broken_Logo.pdf",
		Pages:    1,
		Warnings: 1,
	},
}

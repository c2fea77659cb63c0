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

// Command genpdf renders all test records.  For every record it writes
// the PDF file and a PNG preview of each page, for visual inspection.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/printout"
	"seehuhn.de/go/printout/preview"
	"seehuhn.de/go/printout/testcases"
)

const outDir = "testdata/output"

func main() {
	dpi := flag.Float64("dpi", preview.DefaultDPI, "preview resolution")
	flag.Parse()

	printout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	ctx := context.Background()
	r := printout.NewRenderer()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(ctx, r, tc, name, *dpi); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(ctx context.Context, r *printout.Renderer, tc testcases.Case, name string, dpi float64) error {
	var out *printout.Output
	var err error
	if tc.Ticket != nil {
		out, err = r.BuildTicket(ctx, tc.Ticket)
	} else {
		out, err = r.BuildFinanceReport(ctx, tc.Report)
	}
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, name+".pdf"))
	if err != nil {
		return err
	}
	if err := out.Doc.WritePDF(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	for i := range out.Doc.NumPages() {
		pngPath := filepath.Join(outDir, fmt.Sprintf("%s_p%d.png", name, i+1))
		if err := renderPNG(out, i, pngPath, dpi); err != nil {
			return err
		}
	}
	return nil
}

func renderPNG(out *printout.Output, page int, pngPath string, dpi float64) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := preview.WritePNG(f, out.Doc, page, dpi); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

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

// Command printout renders a boarding pass or a finance report from a
// JSON record.
//
// Usage:
//
//	printout [flags] [record.json]
//
// The record is read from the named file, or from standard input if no
// file is given.  The PDF is written into the output directory under the
// file name derived from the record.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/printout"
	"seehuhn.de/go/printout/preview"
)

func main() {
	kind := flag.String("kind", "auto", "record type: ticket, report or auto")
	outDir := flag.String("o", ".", "output directory, or - for standard output")
	withPreview := flag.Bool("preview", false, "also write a PNG preview of every page")
	dpi := flag.Float64("dpi", preview.DefaultDPI, "preview resolution")
	themeFile := flag.String("theme", "", "JSON file with colour and text overrides")
	verbose := flag.Bool("v", false, "log every layout stage")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	printout.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opt := &options{
		kind:      *kind,
		outDir:    *outDir,
		preview:   *withPreview,
		dpi:       *dpi,
		themeFile: *themeFile,
		log:       logger,
	}
	if err := run(ctx, opt, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "printout:", err)
		os.Exit(1)
	}
}

type options struct {
	kind      string
	outDir    string
	preview   bool
	dpi       float64
	themeFile string
	log       *slog.Logger
}

func run(ctx context.Context, opt *options, args []string) error {
	if len(args) > 1 {
		return errors.New("at most one input file may be given")
	}
	toStdout := opt.outDir == "-"
	if toStdout && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PDF data to a terminal")
	}
	if toStdout && opt.preview {
		return errors.New("-preview needs an output directory")
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	r := printout.NewRenderer()
	if opt.themeFile != "" {
		f, err := os.Open(opt.themeFile)
		if err != nil {
			return err
		}
		r.Theme, err = printout.LoadTheme(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	kind := opt.kind
	if kind == "auto" {
		kind, err = detectKind(data)
		if err != nil {
			return err
		}
	}

	var out *printout.Output
	switch kind {
	case "ticket":
		rec := &printout.TicketRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("ticket record: %w", err)
		}
		out, err = r.BuildTicket(ctx, rec)
	case "report":
		rec := &printout.FinanceReportRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("report record: %w", err)
		}
		out, err = r.BuildFinanceReport(ctx, rec)
	default:
		return fmt.Errorf("unknown record type %q", kind)
	}
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	if err := out.Doc.WritePDF(buf); err != nil {
		return err
	}
	if toStdout {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	name := safeName(out.Filename)
	pdfPath := filepath.Join(opt.outDir, name)
	if err := os.WriteFile(pdfPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	opt.log.Info("wrote", "file", pdfPath, "pages", out.Doc.NumPages())

	if !opt.preview {
		return nil
	}
	base := strings.TrimSuffix(name, ".pdf")
	for i := range out.Doc.NumPages() {
		pngPath := filepath.Join(opt.outDir, fmt.Sprintf("%s_p%d.png", base, i+1))
		if err := writePreview(out, i, pngPath, opt.dpi); err != nil {
			return err
		}
	}
	return nil
}

// detectKind guesses the record type from the fields present.
func detectKind(data []byte) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("input: %w", err)
	}
	if _, ok := fields["ticketId"]; ok {
		return "ticket", nil
	}
	if _, ok := fields["periodLabel"]; ok {
		return "report", nil
	}
	return "", errors.New("cannot tell the record type, use -kind")
}

// safeName keeps a derived file name inside the output directory.
func safeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '-'
		}
		return r
	}, name)
}

func writePreview(out *printout.Output, page int, pngPath string, dpi float64) error {
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

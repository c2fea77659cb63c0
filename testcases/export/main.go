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

// Command export writes all test records as JSON files, for use as input
// to cmd/printout and to other implementations.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/printout/testcases"
)

const outDir = "testdata/records"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var index []indexEntry
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(outDir, name+".json")
			if err := writeJSON(fname, tc.Record()); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			index = append(index, indexEntry{
				Name:     name,
				Kind:     tc.Kind(),
				File:     name + ".json",
				Filename: tc.Filename,
				Pages:    tc.Pages,
				Warnings: tc.Warnings,
			})
		}
	}

	if err := writeJSON(filepath.Join(outDir, "index.json"), index); err != nil {
		panic(err)
	}
}

type indexEntry struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	File     string `json:"file"`
	Filename string `json:"filename"`
	Pages    int    `json:"pages"`
	Warnings int    `json:"warnings,omitempty"`
}

func writeJSON(fname string, v any) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// seehuhn.de/go/inkdraw - freehand ink annotations for PDF pages
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

package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/inkdraw/control"
	"seehuhn.de/go/inkdraw/drawing"
	"seehuhn.de/go/inkdraw/gesture"
	"seehuhn.de/go/inkdraw/preview"
	"seehuhn.de/go/inkdraw/surface"
)

func TestPaperSize(t *testing.T) {
	for name, want := range map[string]float64{"a4": 595.276, "A5": 420.945, "Letter": 612} {
		r, err := paperSize(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if r.URx != want {
			t.Errorf("%s: width %g, want %g", name, r.URx, want)
		}
	}

	if _, err := paperSize("b5"); !errors.Is(err, errUnknownPaper) {
		t.Errorf("got %v, want %v", err, errUnknownPaper)
	}
}

const testScript = `
edit
width 20
begin 100 100
move 150 120
end 200 100
`

// replay draws the test script onto a blank A5 document with two pages
// and returns the document and the drawing manager.
func replay(t *testing.T) (*surface.Document, *drawing.Manager) {
	t.Helper()

	cmds, err := gesture.Parse(strings.NewReader(testScript))
	if err != nil {
		t.Fatal(err)
	}
	doc := surface.NewBlank(document.A5, 2)
	mgr := drawing.New(surface.NewView(doc, nil), &drawing.Options{
		NewName: func() string { return "x" },
	})
	gesture.Replay(cmds, control.NewGate(mgr), mgr)
	return doc, mgr
}

func TestPrintHistory(t *testing.T) {
	_, mgr := replay(t)

	buf := &bytes.Buffer{}
	printHistory(buf, mgr.History())

	// page y = 595.276 - (100 - 8) = 503.276, and 483.276 for the middle point
	want := "page 1: ink [95.00 478.28 205.00 508.28] width 20 name x\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestWritePreviews(t *testing.T) {
	doc, _ := replay(t)
	prefix := filepath.Join(t.TempDir(), "out")

	names, err := writePreviews(doc, prefix, &preview.Options{Scale: 0.5}, 100)
	if err != nil {
		t.Fatal(err)
	}
	// the second page has no ink
	if d := cmp.Diff([]string{prefix + "-001.png"}, names); d != "" {
		t.Fatalf("unexpected files (-want +got):\n%s", d)
	}

	fd, err := os.Open(names[0])
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	img, err := png.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if max(b.Dx(), b.Dy()) != 100 {
		t.Errorf("thumbnail size %dx%d, want longest side 100", b.Dx(), b.Dy())
	}
}

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

package surface

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"seehuhn.de/go/pdf"
)

func rect(llx, lly, urx, ury int) pdf.Array {
	return pdf.Array{pdf.Integer(llx), pdf.Integer(lly), pdf.Integer(urx), pdf.Integer(ury)}
}

func TestPageFromDict(t *testing.T) {
	dict := pdf.Dict{
		"Type":     pdf.Name("Page"),
		"MediaBox": rect(0, 0, 612, 792),
		"CropBox":  pdf.Array{pdf.Real(10.5), pdf.Integer(10), pdf.Integer(600), pdf.Integer(780)},
		"Rotate":   pdf.Integer(-90),
	}
	p, err := pageFromDict(nil, dict)
	if err != nil {
		t.Fatal(err)
	}

	if *p.MediaBox != (pdf.Rectangle{URx: 612, URy: 792}) {
		t.Errorf("MediaBox = %v", p.MediaBox)
	}
	if p.CropBox == nil || *p.CropBox != (pdf.Rectangle{LLx: 10.5, LLy: 10, URx: 600, URy: 780}) {
		t.Errorf("CropBox = %v", p.CropBox)
	}
	if p.Rotate != 270 {
		t.Errorf("Rotate = %d, want 270", p.Rotate)
	}
}

func TestPageFromDictMinimal(t *testing.T) {
	p, err := pageFromDict(nil, pdf.Dict{"MediaBox": rect(0, 0, 100, 100)})
	if err != nil {
		t.Fatal(err)
	}
	if p.CropBox != nil {
		t.Errorf("unexpected CropBox %v", p.CropBox)
	}
	if p.Rotate != 0 {
		t.Errorf("unexpected rotation %d", p.Rotate)
	}
}

func TestPageFromDictNoMediaBox(t *testing.T) {
	_, err := pageFromDict(nil, pdf.Dict{"Type": pdf.Name("Page")})
	if !errors.Is(err, ErrNoMediaBox) {
		t.Errorf("got %v, want %v", err, ErrNoMediaBox)
	}

	_, err = pageFromDict(nil, pdf.Dict{"MediaBox": rect(0, 0, 0, 0)})
	if !errors.Is(err, ErrNoMediaBox) {
		t.Errorf("zero media box: got %v, want %v", err, ErrNoMediaBox)
	}
}

func TestNormalizeRotation(t *testing.T) {
	cases := map[int]int{
		0:    0,
		90:   90,
		-90:  270,
		450:  90,
		720:  0,
		45:   0,
		-180: 180,
	}
	for in, want := range cases {
		if got := normalizeRotation(in); got != want {
			t.Errorf("normalizeRotation(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing.pdf")
	_, err := Load(fname, nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want an fs.ErrNotExist error", err)
	}
}

func TestPasswords(t *testing.T) {
	opt := &LoadOptions{Passwords: []string{"a", "b"}}
	for try, want := range []string{"a", "b", ""} {
		if got := opt.readPassword(nil, try); got != want {
			t.Errorf("try %d: got %q, want %q", try, got, want)
		}
	}
}

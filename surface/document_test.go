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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/annotation"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/page"
)

func TestNewBlank(t *testing.T) {
	doc := NewBlank(document.A5, 3)
	if len(doc.Pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(doc.Pages))
	}
	for i, p := range doc.Pages {
		if p.Number != i+1 {
			t.Errorf("page %d: Number = %d", i+1, p.Number)
		}
		if got := p.DisplayBox(); got != *document.A5 {
			t.Errorf("page %d: DisplayBox = %v", i+1, got)
		}
		if p.Page.MediaBox == document.A5 {
			t.Errorf("page %d: media box shared with paper preset", i+1)
		}
	}
	if doc.Pages[0].Page.MediaBox == doc.Pages[1].Page.MediaBox {
		t.Error("media box shared between pages")
	}
}

func TestDisplayBox(t *testing.T) {
	media := &pdf.Rectangle{URx: 612, URy: 792}
	crop := &pdf.Rectangle{LLx: 10, LLy: 10, URx: 602, URy: 782}

	cases := []struct {
		page *page.Page
		want pdf.Rectangle
	}{
		{&page.Page{MediaBox: media}, *media},
		{&page.Page{MediaBox: media, CropBox: crop}, *crop},
		{&page.Page{}, pdf.Rectangle{}},
	}
	for i, c := range cases {
		doc := NewDocument(c.page)
		if got := doc.Pages[0].DisplayBox(); got != c.want {
			t.Errorf("%d: got %v, want %v", i, got, c.want)
		}
	}
}

func TestAnnotations(t *testing.T) {
	doc := NewBlank(document.A4, 1)
	p := doc.Pages[0]

	var events []string
	doc.OnChange = func(e Event) {
		if e.Page != p {
			t.Errorf("event for wrong page")
		}
		events = append(events, e.Kind.String())
	}

	a := &annotation.Ink{}
	b := &annotation.Ink{}
	c := &annotation.Text{}
	p.AddAnnotation(a)
	p.AddAnnotation(b)
	p.AddAnnotation(c)
	p.Invalidate(b)
	p.RemoveAnnotation(a)
	p.RemoveAnnotation(a) // not on the page any more

	if got := p.Annotations(); len(got) != 2 || got[0] != b || got[1] != c {
		t.Errorf("wrong annotations after removal: %v", got)
	}
	if got := p.InkAnnotations(); len(got) != 1 || got[0] != b {
		t.Errorf("wrong ink annotations: %v", got)
	}
	if p.Redraws() != 1 {
		t.Errorf("Redraws = %d, want 1", p.Redraws())
	}

	want := []string{"added", "added", "added", "invalidated", "removed"}
	if d := cmp.Diff(want, events); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}
}

func TestRemoveByIdentity(t *testing.T) {
	doc := NewBlank(document.A4, 1)
	p := doc.Pages[0]

	// two annotations with equal contents
	a := &annotation.Ink{InkList: [][]float64{{1, 2}}}
	b := &annotation.Ink{InkList: [][]float64{{1, 2}}}
	p.AddAnnotation(a)
	p.AddAnnotation(b)

	p.RemoveAnnotation(b)
	if got := p.Annotations(); len(got) != 1 || got[0] != a {
		t.Errorf("wrong annotation removed")
	}
}

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

// Package surface is an in-memory PDF viewing surface for ink drawing.
//
// A [Document] is a list of pages, each wrapping a [page.Page].  A [View]
// shows the pages of a document one below the other, at a given zoom factor
// and scroll position, and maps between device space (the coordinates of
// pointer events, with the y axis pointing down) and the default user space
// of the pages.  Together, [View] and [Page] implement the interfaces which
// a drawing.Manager needs from its host.
package surface

import (
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/annotation"
	"seehuhn.de/go/pdf/page"
)

// EventKind describes a change to the annotations of a page.
type EventKind int

// These are the possible changes of a page.
const (
	Added EventKind = iota + 1
	Removed
	Invalidated
)

func (k EventKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Invalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// Event describes a change to the annotations of a page.
type Event struct {
	Kind       EventKind
	Page       *Page
	Annotation annotation.Annotation
}

// Document is a sequence of pages.
type Document struct {
	Pages []*Page

	// OnChange, if set, is called after every change to the annotations of
	// a page, and whenever an annotation needs to be redrawn.
	OnChange func(Event)
}

// NewDocument returns a document with the given pages.
func NewDocument(pages ...*page.Page) *Document {
	doc := &Document{}
	for _, p := range pages {
		doc.Append(p)
	}
	return doc
}

// NewBlank returns a document with n empty pages of the given size.
func NewBlank(paper *pdf.Rectangle, n int) *Document {
	doc := &Document{}
	for range n {
		box := *paper
		doc.Append(&page.Page{MediaBox: &box})
	}
	return doc
}

// Append adds a page at the end of the document and returns it.
func (doc *Document) Append(p *page.Page) *Page {
	res := &Page{
		Page:   p,
		Number: len(doc.Pages) + 1,
		doc:    doc,
	}
	doc.Pages = append(doc.Pages, res)
	return res
}

func (doc *Document) notify(kind EventKind, p *Page, a annotation.Annotation) {
	if doc != nil && doc.OnChange != nil {
		doc.OnChange(Event{Kind: kind, Page: p, Annotation: a})
	}
}

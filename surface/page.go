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
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/annotation"
	"seehuhn.de/go/pdf/page"

	"seehuhn.de/go/inkdraw/drawing"
)

var _ drawing.Page = (*Page)(nil)

// Page is a page of a [Document].
type Page struct {
	// Page is the typed page object.  The annotations of the page are kept
	// in Page.Annots.
	Page *page.Page

	// Number is the page number, starting at 1.
	Number int

	doc     *Document
	redraws int
}

// DisplayBox returns the crop box of the page, or the media box if no crop
// box is set.
func (p *Page) DisplayBox() pdf.Rectangle {
	switch {
	case p.Page.CropBox != nil:
		return *p.Page.CropBox
	case p.Page.MediaBox != nil:
		return *p.Page.MediaBox
	default:
		return pdf.Rectangle{}
	}
}

// Annotations returns the annotations of the page.
// The returned slice must not be modified.
func (p *Page) Annotations() []annotation.Annotation {
	return p.Page.Annots
}

// AddAnnotation appends a to the annotations of the page.
// This implements the [drawing.Page] interface.
func (p *Page) AddAnnotation(a annotation.Annotation) {
	p.Page.Annots = append(p.Page.Annots, a)
	p.doc.notify(Added, p, a)
}

// RemoveAnnotation removes a from the annotations of the page.
// This implements the [drawing.Page] interface.
func (p *Page) RemoveAnnotation(a annotation.Annotation) {
	annots := p.Page.Annots
	for i, b := range annots {
		if b != a {
			continue
		}
		copy(annots[i:], annots[i+1:])
		annots[len(annots)-1] = nil
		p.Page.Annots = annots[:len(annots)-1]
		p.doc.notify(Removed, p, a)
		return
	}
}

// Invalidate records that a needs to be redrawn.
// This implements the [drawing.Page] interface.
func (p *Page) Invalidate(a annotation.Annotation) {
	p.redraws++
	p.doc.notify(Invalidated, p, a)
}

// Redraws returns the number of redraw requests for this page.
func (p *Page) Redraws() int {
	return p.redraws
}

// InkAnnotations returns the ink annotations of the page, in drawing order.
func (p *Page) InkAnnotations() []*annotation.Ink {
	var res []*annotation.Ink
	for _, a := range p.Page.Annots {
		if ink, ok := a.(*annotation.Ink); ok {
			res = append(res, ink)
		}
	}
	return res
}

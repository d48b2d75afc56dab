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

package drawing

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/annotation"
)

// Surface is the part of the host viewing surface which the [Manager] needs
// in order to map pointer locations to document pages.
type Surface interface {
	// PageAt returns the page shown at the device space location loc.
	// If loc is not inside any page and nearest is true, the page closest
	// to loc is returned.  The result is nil if there is no such page.
	PageAt(loc vec.Vec2, nearest bool) Page

	// ToPage converts a device space location into the default user space
	// of page p.
	ToPage(loc vec.Vec2, p Page) vec.Vec2
}

// Page is a document page which can hold annotations.
type Page interface {
	// DisplayBox returns the visible area of the page, in default user
	// space.
	DisplayBox() pdf.Rectangle

	// AddAnnotation adds a to the annotations of the page.
	AddAnnotation(a annotation.Annotation)

	// RemoveAnnotation removes a from the annotations of the page.
	// Annotations are compared by identity.  Removing an annotation which
	// is not on the page has no effect.
	RemoveAnnotation(a annotation.Annotation)

	// Invalidate tells the host that the annotation a, which is already on
	// the page, has changed and needs to be redrawn.
	Invalidate(a annotation.Annotation)
}

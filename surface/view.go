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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/inkdraw/drawing"
)

var _ drawing.Surface = (*View)(nil)

// ViewOptions control the layout of a [View].
type ViewOptions struct {
	// Gap is the vertical space between pages, and above the first page,
	// in device units.  If this is zero, a gap of 8 units is used.
	Gap float64

	// Zoom is the number of device units per PDF unit.
	// If this is zero, a zoom factor of 1 is used.
	Zoom float64
}

var defaultViewOptions = &ViewOptions{
	Gap:  8,
	Zoom: 1,
}

// View shows the pages of a document one below the other, centred
// horizontally.  Device coordinates have their origin at the top left corner
// of the visible area, with the y axis pointing down.
type View struct {
	Doc *Document

	gap    float64
	zoom   float64
	scroll vec.Vec2

	// the page rectangles in content coordinates, before scrolling
	rects []pdf.Rectangle
}

// NewView creates a view of the given document.
func NewView(doc *Document, opt *ViewOptions) *View {
	if opt == nil {
		opt = defaultViewOptions
	}
	v := &View{
		Doc:  doc,
		gap:  opt.Gap,
		zoom: opt.Zoom,
	}
	if v.gap <= 0 {
		v.gap = defaultViewOptions.Gap
	}
	if v.zoom <= 0 {
		v.zoom = defaultViewOptions.Zoom
	}
	v.Layout()
	return v
}

// Zoom returns the current zoom factor.
func (v *View) Zoom() float64 {
	return v.zoom
}

// SetZoom changes the zoom factor.  Non-positive values are ignored.
func (v *View) SetZoom(zoom float64) {
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		return
	}
	v.zoom = zoom
	v.Layout()
}

// FitWidth chooses the zoom factor such that the first page, plus one unit
// of margin on each side, fills a view of the given width.
func (v *View) FitWidth(viewWidth float64) {
	if len(v.Doc.Pages) == 0 {
		return
	}
	box := v.Doc.Pages[0].DisplayBox()
	w := box.URx - box.LLx
	if w <= 0 {
		return
	}
	v.SetZoom((viewWidth - 2) / w)
}

// Scroll returns the current scroll offset in device units.
func (v *View) Scroll() vec.Vec2 {
	return v.scroll
}

// ScrollTo sets the scroll offset.  The offset is the position of the
// top-left corner of the visible area, relative to the top-left corner of
// the content.
func (v *View) ScrollTo(offs vec.Vec2) {
	v.scroll = offs
}

// Size returns the width and height of the laid out content, in device
// units.
func (v *View) Size() (width, height float64) {
	for _, r := range v.rects {
		width = max(width, r.URx)
		height = max(height, r.URy)
	}
	if len(v.rects) > 0 {
		height += v.gap
	}
	return width, height
}

// Layout recomputes the positions of the pages.  This must be called after
// pages are added to the document, or after the geometry of a page changes.
func (v *View) Layout() {
	var width float64
	for _, p := range v.Doc.Pages {
		box := p.DisplayBox()
		width = max(width, (box.URx-box.LLx)*v.zoom)
	}

	v.rects = v.rects[:0]
	y := v.gap
	for _, p := range v.Doc.Pages {
		box := p.DisplayBox()
		w := (box.URx - box.LLx) * v.zoom
		h := (box.URy - box.LLy) * v.zoom
		x := (width - w) / 2
		v.rects = append(v.rects, pdf.Rectangle{LLx: x, LLy: y, URx: x + w, URy: y + h})
		y += h + v.gap
	}
}

// DeviceRect returns the area covered by page p, in device coordinates.
// In the returned rectangle, LLy is the top edge and URy is the bottom edge.
func (v *View) DeviceRect(p *Page) pdf.Rectangle {
	r := v.contentRect(p)
	r.LLx -= v.scroll.X
	r.URx -= v.scroll.X
	r.LLy -= v.scroll.Y
	r.URy -= v.scroll.Y
	return r
}

func (v *View) contentRect(p *Page) pdf.Rectangle {
	i := p.Number - 1
	if i < 0 || i >= len(v.rects) || v.Doc.Pages[i] != p {
		v.Layout()
		for j, q := range v.Doc.Pages {
			if q == p {
				return v.rects[j]
			}
		}
		return pdf.Rectangle{}
	}
	return v.rects[i]
}

// PageAt returns the page at the device location loc.  If no page covers loc
// and nearest is true, the page closest to loc is returned.  Otherwise, or if
// the document has no pages, nil is returned.
// This implements the [drawing.Surface] interface.
func (v *View) PageAt(loc vec.Vec2, nearest bool) drawing.Page {
	p := v.pageAt(loc, nearest)
	if p == nil {
		return nil
	}
	return p
}

func (v *View) pageAt(loc vec.Vec2, nearest bool) *Page {
	if len(v.rects) != len(v.Doc.Pages) {
		v.Layout()
	}

	var best *Page
	bestDist := math.Inf(1)
	for i, p := range v.Doc.Pages {
		d := distance(v.DeviceRect(p), loc)
		if d == 0 {
			return v.Doc.Pages[i]
		}
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	if !nearest {
		return nil
	}
	return best
}

// distance returns the Euclidean distance from loc to the closest point of r.
func distance(r pdf.Rectangle, loc vec.Vec2) float64 {
	var dx, dy float64
	switch {
	case loc.X < r.LLx:
		dx = r.LLx - loc.X
	case loc.X > r.URx:
		dx = loc.X - r.URx
	}
	switch {
	case loc.Y < r.LLy:
		dy = r.LLy - loc.Y
	case loc.Y > r.URy:
		dy = loc.Y - r.URy
	}
	return math.Hypot(dx, dy)
}

// PageMatrix returns the transformation from the default user space of page
// p to device space.
func (v *View) PageMatrix(p *Page) matrix.Matrix {
	box := p.DisplayBox()
	dev := v.DeviceRect(p)
	return matrix.Translate(-box.LLx, -box.URy).
		Mul(matrix.Scale(v.zoom, -v.zoom)).
		Mul(matrix.Translate(dev.LLx, dev.LLy))
}

// DeviceMatrix returns the transformation from device space to the default
// user space of page p.
func (v *View) DeviceMatrix(p *Page) matrix.Matrix {
	return v.PageMatrix(p).Inv()
}

// ToPage converts the device location loc to the default user space of page
// p.  If p is not a page of this view, loc is returned unchanged.
// This implements the [drawing.Surface] interface.
func (v *View) ToPage(loc vec.Vec2, p drawing.Page) vec.Vec2 {
	q, ok := p.(*Page)
	if !ok || q == nil {
		return loc
	}
	return v.DeviceMatrix(q).Apply(loc)
}

// ToDevice converts a point in the default user space of page p to device
// coordinates.
func (v *View) ToDevice(pt vec.Vec2, p *Page) vec.Vec2 {
	return v.PageMatrix(p).Apply(pt)
}

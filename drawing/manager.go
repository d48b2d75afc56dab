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

// Package drawing turns pointer-drag gestures into ink annotations on PDF
// pages.
//
// A [Manager] receives three kinds of events from the host surface: the
// start of a stroke, pointer movements and the end of a stroke.  While a
// stroke is in progress, the Manager shows it on the page as a
// semi-transparent draft annotation covering the whole page, which is
// updated after every movement.  When the stroke ends, the draft is
// replaced by an opaque ink annotation whose rectangle tightly encloses the
// stroke.  Committed annotations are recorded in a [History], so that they
// can be undone one by one or cleared all at once.
//
// The Manager is a plain state machine and is not safe for concurrent use.
// See [Serial] for hosts which deliver events from more than one goroutine.
package drawing

import (
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/annotation"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/inkdraw/stroke"
)

// State is the state of a [Manager].
type State int

// These are the possible states of a [Manager].
const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	default:
		return "invalid"
	}
}

// Manager converts stroke events into ink annotations.
type Manager struct {
	surface Surface
	opt     Options
	log     *slog.Logger
	color   color.Color

	state   State
	tracker stroke.Tracker

	// page is the page under the pointer at the start of the current
	// stroke, draft is the draft annotation on this page.  draft is nil
	// until the first pointer movement of the stroke.
	page  Page
	draft *annotation.Ink

	history History
}

// New returns a Manager which draws on the pages of s.
func New(s Surface, opt *Options) *Manager {
	o := opt.withDefaults()
	return &Manager{
		surface: s,
		opt:     o,
		log:     o.Logger,
		color:   o.Color.PDF(),
	}
}

// State returns the current state of the Manager.
func (m *Manager) State() State {
	return m.state
}

// History returns the list of committed annotations.
// The returned value must not be modified by the caller.
func (m *Manager) History() *History {
	return &m.history
}

// Draft returns the draft annotation of the stroke in progress, together
// with its page.  The result is nil until the first pointer movement of a
// stroke.
func (m *Manager) Draft() (*annotation.Ink, Page) {
	if m.draft == nil {
		return nil, nil
	}
	return m.draft, m.page
}

// StrokeBegin starts a new stroke at the device space location loc.
//
// The stroke belongs to the page under loc, or to the nearest page if loc
// is outside all pages.  If the surface has no pages, the event is ignored.
// A stroke which is still in progress is abandoned.
func (m *Manager) StrokeBegin(loc vec.Vec2) {
	p := m.surface.PageAt(loc, true)
	if p == nil {
		m.log.Debug("stroke begin ignored", "reason", "no page", "x", loc.X, "y", loc.Y)
		return
	}

	if m.state == Drawing {
		m.log.Debug("stroke abandoned", "reason", "new stroke")
		m.discardDraft()
	}

	m.page = p
	m.tracker.Begin(m.surface.ToPage(loc, p))
	m.state = Drawing
}

// StrokeMove extends the current stroke to the device space location loc.
//
// The first movement of a stroke places a draft annotation with line width
// w on the page.  Later movements update the draft and ask the page to
// redraw it; the line width of the draft does not change after the first
// movement.  The event is ignored if no stroke is in progress.
func (m *Manager) StrokeMove(loc vec.Vec2, w float64) {
	if m.state != Drawing || m.page == nil {
		m.log.Debug("stroke move ignored", "reason", "no stroke")
		return
	}

	pt := m.surface.ToPage(loc, m.page)
	m.tracker.Extend(pt)

	if m.draft == nil {
		m.draft = m.newDraft(w)
		m.page.AddAnnotation(m.draft)
	} else {
		// The tracker path is a single polyline, so new points can be
		// appended to the ink list directly.
		m.draft.InkList[0] = append(m.draft.InkList[0], pt.X, pt.Y)
	}
	m.page.Invalidate(m.draft)
}

// StrokeEnd finishes the current stroke at the device space location loc.
//
// The draft annotation is removed and replaced by an opaque ink annotation
// with line width w, which is also appended to the history.  A stroke
// without any pointer movement produces no annotation.  The event is
// ignored if no stroke is in progress.
func (m *Manager) StrokeEnd(loc vec.Vec2, w float64) {
	if m.state != Drawing {
		m.log.Debug("stroke end ignored", "reason", "no stroke")
		return
	}
	if m.draft == nil || m.page == nil {
		m.log.Debug("stroke end ignored", "reason", "empty stroke")
		m.reset()
		return
	}

	m.tracker.Extend(m.surface.ToPage(loc, m.page))
	m.page.RemoveAnnotation(m.draft)

	final := m.newFinal(w)
	m.page.AddAnnotation(final)
	m.history.push(Entry{Page: m.page, Annotation: final})
	m.log.Debug("stroke committed",
		"name", final.Name,
		"points", m.tracker.Len(),
		"rect", &final.Rect,
		"width", w)

	m.reset()
}

// Undo removes the most recently committed annotation from its page.
// If no annotations have been committed, Undo does nothing.
// A stroke in progress is not affected.
func (m *Manager) Undo() {
	e, ok := m.history.pop()
	if !ok {
		m.log.Debug("undo ignored", "reason", "empty history")
		return
	}
	m.log.Debug("stroke undone", "name", e.Annotation.Name)
}

// Clear removes all committed annotations from their pages.
// A stroke in progress is not affected.
func (m *Manager) Clear() {
	n := m.history.clear()
	if n > 0 {
		m.log.Debug("strokes cleared", "count", n)
	}
}

// discardDraft removes the draft annotation, if any, from its page.
func (m *Manager) discardDraft() {
	if m.draft != nil && m.page != nil {
		m.page.RemoveAnnotation(m.draft)
	}
	m.reset()
}

func (m *Manager) reset() {
	m.draft = nil
	m.page = nil
	m.state = Idle
}

// newDraft creates the draft annotation for the current stroke.
// The draft covers the whole page, so that it never needs to be resized
// while the stroke grows.
func (m *Manager) newDraft(w float64) *annotation.Ink {
	return &annotation.Ink{
		Common: annotation.Common{
			Rect:                 m.page.DisplayBox(),
			Color:                m.color,
			StrokingTransparency: 1 - m.opt.Alpha,
		},
		InkList:     stroke.InkList(m.tracker.Path()),
		BorderStyle: &annotation.BorderStyle{Width: w, Style: "S"},
	}
}

// newFinal creates the annotation for a completed stroke.  The rectangle
// is the bounding box of the path, enlarged by [Margin] on all sides, and
// the path is centered in the rectangle.
func (m *Manager) newFinal(w float64) *annotation.Ink {
	p := m.tracker.Path()
	bbox := stroke.Bounds(p)
	rect := pdf.Rectangle{
		LLx: bbox.LLx - Margin,
		LLy: bbox.LLy - Margin,
		URx: bbox.URx + Margin,
		URy: bbox.URy + Margin,
	}
	centered := stroke.Recenter(p, stroke.Center(rect))

	return &annotation.Ink{
		Common: annotation.Common{
			Rect:  rect,
			Color: m.color,
			Name:  m.opt.NewName(),
			Flags: annotation.FlagPrint,
		},
		InkList:     stroke.InkList(centered),
		BorderStyle: &annotation.BorderStyle{Width: w, Style: "S"},
	}
}

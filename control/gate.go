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

// Package control decides which pointer events reach the ink drawing code,
// and with which line width.
//
// A [Gate] sits between the gesture source of the host and a [Handler],
// normally a drawing.Manager.  Stroke events are only forwarded while edit
// mode is on and the line width is not being adjusted, so that dragging the
// width slider is never mistaken for a stroke.
package control

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Line widths are multiples of WidthStep in the range from MinWidth to
// MaxWidth.
const (
	MinWidth     = 10
	MaxWidth     = 60
	WidthStep    = 5
	DefaultWidth = 10
)

// Quantize rounds w to the nearest multiple of [WidthStep] and clamps the
// result to the range from [MinWidth] to [MaxWidth].
func Quantize(w float64) float64 {
	if math.IsNaN(w) {
		return DefaultWidth
	}
	w = math.Round(w/WidthStep) * WidthStep
	return max(MinWidth, min(w, MaxWidth))
}

// Handler receives the stroke events which pass a [Gate].
type Handler interface {
	StrokeBegin(loc vec.Vec2)
	StrokeMove(loc vec.Vec2, w float64)
	StrokeEnd(loc vec.Vec2, w float64)
}

// Gate forwards pointer events to a [Handler] while drawing is enabled.
type Gate struct {
	h     Handler
	width float64

	editMode bool

	// ready is cleared while the width is being adjusted.
	ready bool
}

// NewGate returns a Gate which forwards events to h.
// Edit mode is initially off and the width is [DefaultWidth].
func NewGate(h Handler) *Gate {
	return &Gate{
		h:     h,
		width: DefaultWidth,
	}
}

// Width returns the current line width.
func (g *Gate) Width() float64 {
	return g.width
}

// SetWidth sets the line width to the quantized value of w and returns the
// new width.  The new width applies to all following events, including
// those of a stroke which is already in progress.
func (g *Gate) SetWidth(w float64) float64 {
	g.width = Quantize(w)
	return g.width
}

// EditMode reports whether edit mode is on.
func (g *Gate) EditMode() bool {
	return g.editMode
}

// ToggleEdit switches edit mode on or off and returns the new setting.
// Switching edit mode on also ends any width adjustment.
func (g *Gate) ToggleEdit() bool {
	g.editMode = !g.editMode
	g.ready = g.editMode
	return g.editMode
}

// BeginAdjust marks the start of a width adjustment.
// Until the matching call to EndAdjust, no stroke events are forwarded.
func (g *Gate) BeginAdjust() {
	g.ready = false
}

// EndAdjust marks the end of a width adjustment.
func (g *Gate) EndAdjust() {
	g.ready = true
}

// Active reports whether stroke events are currently forwarded.
func (g *Gate) Active() bool {
	return g.editMode && g.ready
}

// Began reports the start of a pointer drag at the device space location
// loc.
func (g *Gate) Began(loc vec.Vec2) {
	if g.Active() {
		g.h.StrokeBegin(loc)
	}
}

// Moved reports a pointer movement to loc.
func (g *Gate) Moved(loc vec.Vec2) {
	if g.Active() {
		g.h.StrokeMove(loc, g.width)
	}
}

// Ended reports the end of a pointer drag at loc.
func (g *Gate) Ended(loc vec.Vec2) {
	if g.Active() {
		g.h.StrokeEnd(loc, g.width)
	}
}

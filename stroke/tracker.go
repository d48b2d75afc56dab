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

// Package stroke accumulates the points of a single pointer-drag gesture
// into a vector path.
//
// A [Tracker] builds the path one point at a time.  Every new point adds a
// straight line segment from the previous point, so the result is a
// polyline.  Points are recorded exactly as given, including duplicates.
// The functions in this package which operate on finished paths
// ([Bounds], [Recenter], [InkList]) are used when a stroke is turned into
// an ink annotation.
package stroke

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Tracker records the path of one stroke.
//
// The zero value is ready to use.  A Tracker owns no document state.
type Tracker struct {
	path *path.Data
}

// Begin discards any previous path and starts a new path at p.
func (t *Tracker) Begin(p vec.Vec2) {
	d := &path.Data{}
	d.MoveTo(p)
	t.path = d
}

// Extend adds a line segment from the current end of the path to p,
// and moves the current point to p.
//
// If Begin has not been called, Extend starts a new path at p.
func (t *Tracker) Extend(p vec.Vec2) {
	if t.path == nil {
		t.Begin(p)
		return
	}
	t.path.LineTo(p)
	t.path.MoveTo(p)
}

// Path returns the path accumulated so far, or nil before the first call to
// Begin.
//
// The returned path is shared with the tracker and must not be modified.
// It keeps growing until the next call to Begin.
func (t *Tracker) Path() *path.Data {
	return t.path
}

// Current returns the end point of the path.
// The second return value is false if no path has been started.
func (t *Tracker) Current() (vec.Vec2, bool) {
	if t.path == nil || len(t.path.Coords) == 0 {
		return vec.Vec2{}, false
	}
	return t.path.Coords[len(t.path.Coords)-1], true
}

// Len returns the number of points added since the last call to Begin,
// including the starting point.
func (t *Tracker) Len() int {
	if t.path == nil {
		return 0
	}
	return (len(t.path.Coords) + 1) / 2
}

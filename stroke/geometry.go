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

package stroke

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdf"
)

// Bounds returns the bounding box of the path.
// For an empty path the zero rectangle is returned.
func Bounds(p *path.Data) pdf.Rectangle {
	if p == nil || len(p.Coords) == 0 {
		return pdf.Rectangle{}
	}
	bbox := p.Iter().BBox()
	return pdf.Rectangle{LLx: bbox.LLx, LLy: bbox.LLy, URx: bbox.URx, URy: bbox.URy}
}

// Center returns the center point of a rectangle.
func Center(r pdf.Rectangle) vec.Vec2 {
	return vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
}

// Translate returns a copy of p, shifted by d.
func Translate(p *path.Data, d vec.Vec2) *path.Data {
	if p == nil {
		return nil
	}
	res := &path.Data{}
	for cmd, pts := range p.Iter().Transform(matrix.Translate(d.X, d.Y)) {
		res.Cmds = append(res.Cmds, cmd)
		res.Coords = append(res.Coords, pts...)
	}
	return res
}

// Recenter returns a copy of p which is shifted so that the center of its
// bounding box coincides with c.
func Recenter(p *path.Data, c vec.Vec2) *path.Data {
	return Translate(p, c.Sub(Center(Bounds(p))))
}

// Polylines splits a path into the vertex lists of its connected pieces.
//
// A move-to which does not change the current point is treated as part of
// the current piece, so that a path built by a [Tracker] always gives a
// single polyline.  Curve segments contribute their end points only.
func Polylines(p *path.Data) [][]vec.Vec2 {
	if p == nil {
		return nil
	}

	var res [][]vec.Vec2
	var cur []vec.Vec2
	var subpathStart vec.Vec2
	flush := func() {
		if len(cur) > 0 {
			res = append(res, cur)
		}
		cur = nil
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt := p.Coords[k]
			k++
			if len(cur) > 0 && cur[len(cur)-1] == pt {
				continue
			}
			flush()
			cur = append(cur, pt)
			subpathStart = pt
		case path.CmdLineTo:
			cur = append(cur, p.Coords[k])
			k++
		case path.CmdQuadTo:
			cur = append(cur, p.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			cur = append(cur, p.Coords[k+2])
			k += 3
		case path.CmdClose:
			if len(cur) > 0 && cur[len(cur)-1] != subpathStart {
				cur = append(cur, subpathStart)
			}
		}
	}
	flush()
	return res
}

// InkList converts a path into the format used by the /InkList entry
// of an ink annotation: one array of alternating x and y coordinates
// for each connected piece of the path.
func InkList(p *path.Data) [][]float64 {
	lines := Polylines(p)
	if len(lines) == 0 {
		return nil
	}
	res := make([][]float64, len(lines))
	for i, line := range lines {
		coords := make([]float64, 0, 2*len(line))
		for _, pt := range line {
			coords = append(coords, pt.X, pt.Y)
		}
		res[i] = coords
	}
	return res
}

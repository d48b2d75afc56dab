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

package gesture

import (
	"seehuhn.de/go/inkdraw/control"
)

// Editor receives the undo and clear commands of a script.
// This is implemented by drawing.Manager and drawing.Serial.
type Editor interface {
	Undo()
	Clear()
}

// Replay sends the commands of a script to a gate and an editor.
// Pointer events go through the gate, and are only forwarded to the
// gate's handler while drawing is enabled.  Undo and clear commands are
// always passed on.
func Replay(cmds []Command, g *control.Gate, e Editor) {
	for _, c := range cmds {
		switch c.Op {
		case OpEdit:
			g.ToggleEdit()
		case OpWidth:
			g.SetWidth(c.Width)
		case OpAdjustBegin:
			g.BeginAdjust()
		case OpAdjustEnd:
			g.EndAdjust()
		case OpBegin:
			g.Began(c.Loc)
		case OpMove:
			g.Moved(c.Loc)
		case OpEnd:
			g.Ended(c.Loc)
		case OpUndo:
			e.Undo()
		case OpClear:
			e.Clear()
		}
	}
}

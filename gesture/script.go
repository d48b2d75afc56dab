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

// Package gesture reads and replays recorded pointer gestures.
//
// A gesture script is a text file with one command per line.  Empty lines
// and lines starting with "#" are ignored.  The following commands are
// recognised:
//
//	edit              toggle edit mode
//	width W           set the stroke width (quantized)
//	adjust begin      start a width adjustment
//	adjust end        finish a width adjustment
//	begin X Y         pointer down, in device coordinates
//	move X Y          pointer drag
//	end X Y           pointer up
//	undo              remove the most recent annotation
//	clear             remove all annotations
package gesture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Op identifies a gesture script command.
type Op int

// These are the commands of a gesture script.
const (
	OpEdit Op = iota + 1
	OpWidth
	OpAdjustBegin
	OpAdjustEnd
	OpBegin
	OpMove
	OpEnd
	OpUndo
	OpClear
)

func (op Op) String() string {
	switch op {
	case OpEdit:
		return "edit"
	case OpWidth:
		return "width"
	case OpAdjustBegin:
		return "adjust begin"
	case OpAdjustEnd:
		return "adjust end"
	case OpBegin:
		return "begin"
	case OpMove:
		return "move"
	case OpEnd:
		return "end"
	case OpUndo:
		return "undo"
	case OpClear:
		return "clear"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Command is one line of a gesture script.
type Command struct {
	Op Op

	// Loc is the pointer location for OpBegin, OpMove and OpEnd.
	Loc vec.Vec2

	// Width is the requested width for OpWidth.
	Width float64

	// Line is the line number in the script, starting at 1.
	Line int
}

func (c Command) String() string {
	switch c.Op {
	case OpWidth:
		return fmt.Sprintf("width %g", c.Width)
	case OpBegin, OpMove, OpEnd:
		return fmt.Sprintf("%s %g %g", c.Op, c.Loc.X, c.Loc.Y)
	default:
		return c.Op.String()
	}
}

var (
	errUnknownCommand = errors.New("unknown command")
	errArgCount       = errors.New("wrong number of arguments")
	errNumber         = errors.New("invalid number")
)

// SyntaxError indicates that a line of a gesture script could not be parsed.
type SyntaxError struct {
	Line int
	Err  error
}

func (err *SyntaxError) Error() string {
	return "line " + strconv.Itoa(err.Line) + ": " + err.Err.Error()
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// Parse reads a gesture script.
func Parse(r io.Reader) ([]Command, error) {
	var res []Command

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := parseLine(strings.Fields(line))
		if err != nil {
			return nil, &SyntaxError{Line: lineNo, Err: err}
		}
		cmd.Line = lineNo
		res = append(res, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

var keywords = map[string]Op{
	"edit":  OpEdit,
	"undo":  OpUndo,
	"clear": OpClear,
	"begin": OpBegin,
	"move":  OpMove,
	"end":   OpEnd,
}

func parseLine(ff []string) (Command, error) {
	var cmd Command

	args := ff[1:]
	switch ff[0] {
	case "edit", "undo", "clear":
		if len(args) != 0 {
			return cmd, fmt.Errorf("%s: %w", ff[0], errArgCount)
		}
		cmd.Op = keywords[ff[0]]

	case "width":
		if len(args) != 1 {
			return cmd, fmt.Errorf("width: %w", errArgCount)
		}
		w, err := parseNumber(args[0])
		if err != nil {
			return cmd, err
		}
		cmd.Op = OpWidth
		cmd.Width = w

	case "adjust":
		if len(args) != 1 {
			return cmd, fmt.Errorf("adjust: %w", errArgCount)
		}
		switch args[0] {
		case "begin":
			cmd.Op = OpAdjustBegin
		case "end":
			cmd.Op = OpAdjustEnd
		default:
			return cmd, fmt.Errorf("adjust %q: %w", args[0], errUnknownCommand)
		}

	case "begin", "move", "end":
		if len(args) != 2 {
			return cmd, fmt.Errorf("%s: %w", ff[0], errArgCount)
		}
		x, err := parseNumber(args[0])
		if err != nil {
			return cmd, err
		}
		y, err := parseNumber(args[1])
		if err != nil {
			return cmd, err
		}
		cmd.Op = keywords[ff[0]]
		cmd.Loc = vec.Vec2{X: x, Y: y}

	default:
		return cmd, fmt.Errorf("%q: %w", ff[0], errUnknownCommand)
	}
	return cmd, nil
}

func parseNumber(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%q: %w", s, errNumber)
	}
	return x, nil
}

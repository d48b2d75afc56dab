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
	"context"
	"log/slog"

	"github.com/google/uuid"

	"seehuhn.de/go/pdf/graphics/color"
)

// Margin is the distance between the bounding box of a committed stroke
// and the rectangle of the resulting annotation, in PDF units.
const Margin = 5

// RGB is a colour in the DeviceRGB colour space.
// The components must be in the range from 0 to 1.
type RGB struct {
	R, G, B float64
}

// Red is the default drawing colour.
var Red = RGB{R: 1}

// PDF returns the colour as a PDF DeviceRGB colour.
func (c RGB) PDF() color.Color {
	return color.DeviceRGB{c.R, c.G, c.B}
}

// Options configure a [Manager].
// The zero value, or a nil pointer, selects the defaults.
type Options struct {
	// Color is the ink colour.  If this is nil, [Red] is used.
	Color *RGB

	// Alpha is the opacity of a stroke while it is being drawn, in the
	// range (0, 1].  Committed strokes are always opaque.
	// If this is zero, 0.3 is used.
	Alpha float64

	// NewName returns the annotation name (the /NM entry) for a committed
	// stroke.  If this is nil, random UUIDs are used.
	NewName func() string

	// Logger receives debug messages about ignored events and about
	// committed, undone and cleared annotations.  If this is nil, nothing
	// is logged.
	Logger *slog.Logger
}

const defaultAlpha = 0.3

func (opt *Options) withDefaults() Options {
	var res Options
	if opt != nil {
		res = *opt
	}
	if res.Color == nil {
		c := Red
		res.Color = &c
	}
	if res.Alpha <= 0 || res.Alpha > 1 {
		res.Alpha = defaultAlpha
	}
	if res.NewName == nil {
		res.NewName = uuid.NewString
	}
	if res.Logger == nil {
		res.Logger = slog.New(discardHandler{})
	}
	return res
}

// discardHandler is a slog.Handler which drops all records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

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

// Package preview renders the ink annotations of a page to a raster image.
//
// Only the ink is drawn, on a white background of the size of the page's
// display box.  The page contents are not rendered.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/annotation"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// MaxPixels is the largest number of pixels [Page] will allocate for one
// image.
const MaxPixels = 1 << 26

var (
	// ErrEmptyPage is returned by [Page] if the display box of a page has
	// zero area.
	ErrEmptyPage = errors.New("page has zero area")

	// ErrTooLarge is returned by [Page] if the image would have more than
	// [MaxPixels] pixels.
	ErrTooLarge = errors.New("image too large")
)

// Options control the rendering of a page.
type Options struct {
	// Scale is the number of pixels per PDF unit.
	// If this is zero, a scale of 1 is used.
	Scale float64

	// InkColor is the colour used for ink annotations which have no
	// DeviceRGB colour of their own.  If this is nil, red is used.
	InkColor color.Color

	// Background is the colour of the page.
	// If this is nil, white is used.
	Background color.Color
}

var defaultOptions = &Options{
	Scale:      1,
	InkColor:   color.RGBA{R: 255, A: 255},
	Background: color.White,
}

// Page renders the ink annotations in annots onto a canvas covering the
// rectangle box in default user space.
func Page(box pdf.Rectangle, annots []annotation.Annotation, opt *Options) (image.Image, error) {
	if opt == nil {
		opt = defaultOptions
	}
	scale := opt.Scale
	if !(scale > 0) {
		scale = defaultOptions.Scale
	}
	ink := opt.InkColor
	if ink == nil {
		ink = defaultOptions.InkColor
	}
	bg := opt.Background
	if bg == nil {
		bg = defaultOptions.Background
	}

	w := math.Ceil((box.URx - box.LLx) * scale)
	h := math.Ceil((box.URy - box.LLy) * scale)
	if !(w > 0 && h > 0) {
		return nil, ErrEmptyPage
	}
	if w*h > MaxPixels {
		return nil, fmt.Errorf("%gx%g pixels: %w", w, h, ErrTooLarge)
	}
	width, height := int(w), int(h)

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(toRGBA(bg, 1))

	r := &renderer{
		dc:    dc,
		box:   box,
		scale: scale,
		ink:   ink,
	}
	for _, a := range annots {
		a, ok := a.(*annotation.Ink)
		if !ok {
			continue
		}
		if err := r.drawInk(a); err != nil {
			return nil, err
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

type renderer struct {
	dc    *gg.Context
	box   pdf.Rectangle
	scale float64
	ink   color.Color
}

func (r *renderer) drawInk(a *annotation.Ink) error {
	width := 1.0
	if a.BorderStyle != nil {
		width = a.BorderStyle.Width
	}
	if width <= 0 {
		return nil
	}
	width *= r.scale

	alpha := 1 - a.StrokingTransparency
	var col gg.RGBA
	if rgb, ok := a.Color.(pdfcolor.DeviceRGB); ok {
		col = gg.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: min(max(alpha, 0), 1)}
	} else {
		col = toRGBA(r.ink, alpha)
	}
	r.dc.SetRGBA(col.R, col.G, col.B, col.A)
	r.dc.SetLineWidth(width)
	r.dc.SetLineCap(gg.LineCapRound)
	r.dc.SetLineJoin(gg.LineJoinRound)

	for _, stroke := range a.InkList {
		n := len(stroke) / 2
		if n == 0 {
			continue
		}
		x, y := r.toDevice(stroke[0], stroke[1])

		if isDot(stroke) {
			r.dc.DrawCircle(x, y, width/2)
			if err := r.dc.Fill(); err != nil {
				return err
			}
			continue
		}

		r.dc.MoveTo(x, y)
		for i := 1; i < n; i++ {
			x, y = r.toDevice(stroke[2*i], stroke[2*i+1])
			r.dc.LineTo(x, y)
		}
		if err := r.dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// toDevice maps a point in default user space to pixel coordinates.
func (r *renderer) toDevice(x, y float64) (float64, float64) {
	return (x - r.box.LLx) * r.scale, (r.box.URy - y) * r.scale
}

// isDot reports whether all points of an ink path coincide.
func isDot(stroke []float64) bool {
	for i := 2; i+1 < len(stroke); i += 2 {
		if stroke[i] != stroke[0] || stroke[i+1] != stroke[1] {
			return false
		}
	}
	return true
}

func toRGBA(c color.Color, alpha float64) gg.RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return gg.RGBA{}
	}
	// un-premultiply
	fa := float64(a)
	return gg.RGBA{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xffff * min(max(alpha, 0), 1),
	}
}

// Thumbnail scales img down such that neither side exceeds maxSide pixels.
// Images which are already small enough are copied unchanged.
func Thumbnail(img image.Image, maxSide int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if maxSide > 0 && (w > maxSide || h > maxSide) {
		scale := float64(maxSide) / float64(max(w, h))
		w = max(1, int(math.Round(float64(w)*scale)))
		h = max(1, int(math.Round(float64(h)*scale)))
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG writes img to w in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

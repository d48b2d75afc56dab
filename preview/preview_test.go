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

package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/annotation"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

var testBox = pdf.Rectangle{URx: 100, URy: 100}

// horizontal returns an ink annotation with a horizontal line at height y.
func horizontal(y, width, transparency float64) *annotation.Ink {
	a := &annotation.Ink{
		InkList:     [][]float64{{10, y, 90, y}},
		BorderStyle: &annotation.BorderStyle{Width: width, Style: "S"},
	}
	a.StrokingTransparency = transparency
	return a
}

func rgb8(img image.Image, x, y int) (r, g, b uint8) {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B
}

func TestPage(t *testing.T) {
	annots := []annotation.Annotation{
		horizontal(50, 10, 0),
		&annotation.Text{},
	}
	img, err := Page(testBox, annots, nil)
	if err != nil {
		t.Fatal(err)
	}

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("wrong image size %v", b)
	}

	r, g, b := rgb8(img, 50, 50)
	if r < 200 || g > 50 || b > 50 {
		t.Errorf("stroke pixel: got (%d, %d, %d), want red", r, g, b)
	}
	r, g, b = rgb8(img, 50, 10)
	if r < 250 || g < 250 || b < 250 {
		t.Errorf("background pixel: got (%d, %d, %d), want white", r, g, b)
	}
}

func TestPageFlipsY(t *testing.T) {
	// y = 80 in user space is 20 pixels from the top
	img, err := Page(testBox, []annotation.Annotation{horizontal(80, 6, 0)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, g, _ := rgb8(img, 50, 20); g > 50 {
		t.Errorf("no ink near the top of the image")
	}
	if _, g, _ := rgb8(img, 50, 80); g < 250 {
		t.Errorf("unexpected ink near the bottom of the image")
	}
}

func TestPageAnnotationColor(t *testing.T) {
	blue := horizontal(50, 10, 0)
	blue.Color = pdfcolor.DeviceRGB{0, 0, 1}

	// the annotation's own colour takes precedence over InkColor
	for _, opt := range []*Options{nil, {InkColor: color.Black}} {
		img, err := Page(testBox, []annotation.Annotation{blue}, opt)
		if err != nil {
			t.Fatal(err)
		}
		r, g, b := rgb8(img, 50, 50)
		if r > 50 || g > 50 || b < 200 {
			t.Errorf("got (%d, %d, %d), want blue", r, g, b)
		}
	}
}

func TestPageTransparency(t *testing.T) {
	opt := &Options{InkColor: color.Black}
	img, err := Page(testBox, []annotation.Annotation{horizontal(50, 10, 0.7)}, opt)
	if err != nil {
		t.Fatal(err)
	}
	// 30% black over white
	r, g, b := rgb8(img, 50, 50)
	for _, v := range []uint8{r, g, b} {
		if v < 150 || v > 210 {
			t.Errorf("got (%d, %d, %d), want light grey", r, g, b)
			break
		}
	}
}

func TestPageScale(t *testing.T) {
	box := pdf.Rectangle{LLx: 100, LLy: 100, URx: 150, URy: 120}
	a := &annotation.Ink{
		InkList:     [][]float64{{110, 110, 140, 110}},
		BorderStyle: &annotation.BorderStyle{Width: 4},
	}
	img, err := Page(box, []annotation.Annotation{a}, &Options{Scale: 2})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 40 {
		t.Fatalf("wrong image size %v", b)
	}
	if _, g, _ := rgb8(img, 50, 20); g > 50 {
		t.Errorf("stroke missing at the scaled location")
	}
}

func TestPageDot(t *testing.T) {
	a := &annotation.Ink{
		InkList:     [][]float64{{50, 50, 50, 50}},
		BorderStyle: &annotation.BorderStyle{Width: 10},
	}
	img, err := Page(testBox, []annotation.Annotation{a}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, g, _ := rgb8(img, 50, 50); g > 50 {
		t.Errorf("zero-length stroke not drawn")
	}
}

func TestPageEmpty(t *testing.T) {
	_, err := Page(pdf.Rectangle{URx: 100}, nil, nil)
	if !errors.Is(err, ErrEmptyPage) {
		t.Errorf("got %v, want %v", err, ErrEmptyPage)
	}
}

func TestPageTooLarge(t *testing.T) {
	a4 := pdf.Rectangle{URx: 595.276, URy: 841.890}
	_, err := Page(a4, nil, &Options{Scale: 100})
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("got %v, want %v", err, ErrTooLarge)
	}
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))

	cases := []struct {
		maxSide int
		w, h    int
	}{
		{50, 50, 25},
		{100, 100, 50},
		{200, 200, 100},
		{400, 200, 100},
		{0, 200, 100},
	}
	for _, c := range cases {
		img := Thumbnail(src, c.maxSide)
		b := img.Bounds()
		if b.Dx() != c.w || b.Dy() != c.h {
			t.Errorf("maxSide %d: got %dx%d, want %dx%d",
				c.maxSide, b.Dx(), b.Dy(), c.w, c.h)
		}
	}
}

func TestWritePNG(t *testing.T) {
	img, err := Page(testBox, []annotation.Annotation{horizontal(50, 10, 0)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := WritePNG(buf, img); err != nil {
		t.Fatal(err)
	}
	back, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.Bounds() != img.Bounds() {
		t.Errorf("got bounds %v, want %v", back.Bounds(), img.Bounds())
	}
}

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
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/page"
	"seehuhn.de/go/pdf/pagetree"
)

// ErrNoMediaBox is returned by [Read] and [Load] if a page has no valid
// media box.
var ErrNoMediaBox = errors.New("missing MediaBox")

// LoadOptions control how a PDF file is opened by [Load].
type LoadOptions struct {
	// Passwords are tried, in order, if the file is encrypted.
	Passwords []string

	// If Prompt is true and none of the passwords work, the user is asked
	// for a password on the terminal.
	Prompt bool

	// PromptOut is where the password prompt is written.
	// If this is nil, os.Stderr is used.
	PromptOut io.Writer
}

// Load reads the page geometry of a PDF file and returns a document with
// one page for every page of the file.  Existing annotations are not read.
func Load(fname string, opt *LoadOptions) (*Document, error) {
	if opt == nil {
		opt = &LoadOptions{}
	}

	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	r, err := pdf.NewReader(fd, &pdf.ReaderOptions{
		ReadPassword: opt.readPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	defer r.Close()

	doc, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return doc, nil
}

func (opt *LoadOptions) readPassword(_ []byte, try int) string {
	if try < len(opt.Passwords) {
		return opt.Passwords[try]
	}
	if !opt.Prompt || !term.IsTerminal(int(os.Stdin.Fd())) {
		return ""
	}

	out := opt.PromptOut
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprint(out, "password: ")
	passwd, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return ""
	}
	return string(passwd)
}

// Read returns a document with one page for every page of r.
func Read(r pdf.Getter) (*Document, error) {
	n, err := pagetree.NumPages(r)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for i := range n {
		_, dict, err := pagetree.GetPage(r, i)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		p, err := pageFromDict(r, dict)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		doc.Append(p)
	}
	return doc, nil
}

// pageFromDict extracts the page geometry from a page dictionary.
// Inherited attributes must already be present in dict.
func pageFromDict(r pdf.Getter, dict pdf.Dict) (*page.Page, error) {
	mediaBox, err := pdf.GetRectangle(r, dict["MediaBox"])
	if err != nil {
		return nil, err
	}
	if mediaBox == nil || mediaBox.IsZero() {
		return nil, ErrNoMediaBox
	}

	res := &page.Page{MediaBox: mediaBox}

	cropBox, err := pdf.GetRectangle(r, dict["CropBox"])
	if err == nil && cropBox != nil && !cropBox.IsZero() {
		res.CropBox = cropBox
	}

	rot, err := pdf.GetInteger(r, dict["Rotate"])
	if err == nil {
		res.Rotate = normalizeRotation(int(rot))
	}

	return res, nil
}

// normalizeRotation maps a /Rotate value to one of 0, 90, 180 or 270.
// Values which are not multiples of 90 are treated as 0.
func normalizeRotation(rot int) int {
	if rot%90 != 0 {
		return 0
	}
	rot %= 360
	if rot < 0 {
		rot += 360
	}
	return rot
}

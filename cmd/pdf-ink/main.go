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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/inkdraw/control"
	"seehuhn.de/go/inkdraw/drawing"
	"seehuhn.de/go/inkdraw/gesture"
	"seehuhn.de/go/inkdraw/internal/buildinfo"
	"seehuhn.de/go/inkdraw/internal/profile"
	"seehuhn.de/go/inkdraw/preview"
	"seehuhn.de/go/inkdraw/surface"
)

var (
	inArg      = flag.String("in", "", "read the page geometry from `file.pdf`")
	paperArg   = flag.String("paper", "a4", "paper size for blank pages (a4, a5, letter)")
	pagesArg   = flag.Int("pages", 1, "number of blank pages")
	passwdArg  = flag.String("p", "", "PDF password")
	zoomArg    = flag.Float64("zoom", 1, "device units per PDF unit")
	fitArg     = flag.Float64("fit", 0, "choose the zoom to fit a view of the given `width`")
	outArg     = flag.String("o", "", "write PNG previews to `prefix`-NNN.png")
	thumbArg   = flag.Int("thumb", 0, "limit previews to `n` pixels per side")
	verbose    = flag.Bool("v", false, "log debug messages")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pdf-ink - draw freehand ink annotations on PDF pages\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Describe("pdf-ink"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pdf-ink [options] <script.txt>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  script.txt   a gesture script, or - for standard input\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pdf-ink -paper letter -pages 2 -o out strokes.txt\n")
		fmt.Fprintf(os.Stderr, "  pdf-ink -in paper.pdf -fit 800 -o out -thumb 200 strokes.txt\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(scriptName string) (err error) {
	prof, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, prof.Stop())
	}()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cmds, err := readScript(scriptName)
	if err != nil {
		return err
	}

	doc, err := openDocument()
	if err != nil {
		return err
	}

	view := surface.NewView(doc, &surface.ViewOptions{Zoom: *zoomArg})
	if *fitArg > 0 {
		view.FitWidth(*fitArg)
	}
	logger.Debug("document ready", "pages", len(doc.Pages), "zoom", view.Zoom())

	mgr := drawing.New(view, &drawing.Options{Logger: logger})
	gate := control.NewGate(mgr)
	gesture.Replay(cmds, gate, mgr)

	if mgr.State() == drawing.Drawing {
		logger.Warn("script ends in the middle of a stroke")
	}

	printHistory(os.Stdout, mgr.History())

	if *outArg != "" {
		names, err := writePreviews(doc, *outArg, &preview.Options{Scale: view.Zoom()}, *thumbArg)
		if err != nil {
			return err
		}
		for _, name := range names {
			logger.Info("preview written", "file", name)
		}
	}
	return nil
}

func readScript(fname string) ([]gesture.Command, error) {
	var r io.Reader = os.Stdin
	if fname != "-" {
		fd, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		r = fd
	}

	cmds, err := gesture.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cmds, nil
}

func openDocument() (*surface.Document, error) {
	if *inArg != "" {
		opt := &surface.LoadOptions{Prompt: true}
		if *passwdArg != "" {
			opt.Passwords = []string{*passwdArg}
		}
		return surface.Load(*inArg, opt)
	}

	paper, err := paperSize(*paperArg)
	if err != nil {
		return nil, err
	}
	if *pagesArg < 1 {
		return nil, fmt.Errorf("invalid number of pages %d", *pagesArg)
	}
	return surface.NewBlank(paper, *pagesArg), nil
}

var errUnknownPaper = errors.New("unknown paper size")

func paperSize(name string) (*pdf.Rectangle, error) {
	switch strings.ToLower(name) {
	case "a4":
		return document.A4, nil
	case "a5":
		return document.A5, nil
	case "letter":
		return document.Letter, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, errUnknownPaper)
	}
}

// printHistory lists the committed annotations, one per line.
func printHistory(w io.Writer, h *drawing.History) {
	for _, e := range h.Entries() {
		page := 0
		if p, ok := e.Page.(*surface.Page); ok {
			page = p.Number
		}
		a := e.Annotation
		width := 0.0
		if a.BorderStyle != nil {
			width = a.BorderStyle.Width
		}
		fmt.Fprintf(w, "page %d: ink %s width %g name %s\n",
			page, a.Rect.String(), width, a.Name)
	}
}

// writePreviews writes a PNG image for every page which has ink annotations
// and returns the names of the files written.
func writePreviews(doc *surface.Document, prefix string, opt *preview.Options, thumb int) ([]string, error) {
	var names []string
	for _, p := range doc.Pages {
		if len(p.InkAnnotations()) == 0 {
			continue
		}

		img, err := preview.Page(p.DisplayBox(), p.Annotations(), opt)
		if err != nil {
			return names, fmt.Errorf("page %d: %w", p.Number, err)
		}
		if thumb > 0 {
			img = preview.Thumbnail(img, thumb)
		}

		name := fmt.Sprintf("%s-%03d.png", prefix, p.Number)
		if err := writePNG(name, img); err != nil {
			return names, err
		}
		names = append(names, name)
	}
	return names, nil
}

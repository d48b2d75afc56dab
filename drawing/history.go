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

import "seehuhn.de/go/pdf/annotation"

// Entry is a committed stroke, together with the page it was added to.
type Entry struct {
	Page       Page
	Annotation *annotation.Ink
}

// History is the list of committed strokes, in the order they were
// committed.  It spans all pages of a document view.
//
// The History does not own the pages; it only keeps the references needed
// to remove its annotations again.
type History struct {
	entries []Entry
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []Entry {
	res := make([]Entry, len(h.entries))
	copy(res, h.entries)
	return res
}

// Last returns the most recent entry.
// The second return value is false if the history is empty.
func (h *History) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

func (h *History) push(e Entry) {
	h.entries = append(h.entries, e)
}

// pop removes the most recent entry from its page and from the history.
func (h *History) pop() (Entry, bool) {
	n := len(h.entries)
	if n == 0 {
		return Entry{}, false
	}
	e := h.entries[n-1]
	h.entries[n-1] = Entry{}
	h.entries = h.entries[:n-1]
	if e.Page != nil {
		e.Page.RemoveAnnotation(e.Annotation)
	}
	return e, true
}

// clear removes all entries from their pages and empties the history.
// It returns the number of removed entries.
func (h *History) clear() int {
	n := len(h.entries)
	for _, e := range h.entries {
		if e.Page != nil {
			e.Page.RemoveAnnotation(e.Annotation)
		}
	}
	h.entries = nil
	return n
}

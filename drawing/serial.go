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
	"sync"

	"seehuhn.de/go/geom/vec"
)

// Serial wraps a [Manager] for hosts which deliver events from several
// goroutines.  All calls are serialized by a mutex, so that the ordering
// guarantees of the Manager hold for every goroutine.
type Serial struct {
	mu sync.Mutex
	m  *Manager
}

// NewSerial returns a Serial which forwards all calls to m.
// After this call, m must only be used through the Serial.
func NewSerial(m *Manager) *Serial {
	return &Serial{m: m}
}

// StrokeBegin calls [Manager.StrokeBegin].
func (s *Serial) StrokeBegin(loc vec.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.StrokeBegin(loc)
}

// StrokeMove calls [Manager.StrokeMove].
func (s *Serial) StrokeMove(loc vec.Vec2, w float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.StrokeMove(loc, w)
}

// StrokeEnd calls [Manager.StrokeEnd].
func (s *Serial) StrokeEnd(loc vec.Vec2, w float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.StrokeEnd(loc, w)
}

// Undo calls [Manager.Undo].
func (s *Serial) Undo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Undo()
}

// Clear calls [Manager.Clear].
func (s *Serial) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Clear()
}

// Do calls fn with the wrapped Manager while holding the lock.
// This can be used to inspect the state or the history of the Manager.
func (s *Serial) Do(fn func(m *Manager)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.m)
}

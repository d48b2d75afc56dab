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

// Package profile writes CPU and heap profiles for the commands of this
// module.
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler collects the profiles requested on the command line.
type Profiler struct {
	cpuFile    *os.File
	memProfile string
}

// Start begins CPU profiling if cpuProfile is non-empty.  If memProfile is
// non-empty, [Profiler.Stop] writes a heap profile to this file.
func Start(cpuProfile, memProfile string) (*Profiler, error) {
	p := &Profiler{memProfile: memProfile}
	if cpuProfile == "" {
		return p, nil
	}

	fd, err := os.Create(cpuProfile)
	if err != nil {
		return nil, fmt.Errorf("CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(fd); err != nil {
		fd.Close()
		return nil, fmt.Errorf("CPU profile: %w", err)
	}
	p.cpuFile = fd
	return p, nil
}

// Stop ends CPU profiling and writes the heap profile.
// Stop can be called on a nil Profiler.
func (p *Profiler) Stop() error {
	if p == nil {
		return nil
	}

	var errs []error
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		errs = append(errs, p.cpuFile.Close())
		p.cpuFile = nil
	}
	if p.memProfile != "" {
		errs = append(errs, writeHeap(p.memProfile))
		p.memProfile = ""
	}
	return errors.Join(errs...)
}

func writeHeap(fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("heap profile: %w", err)
	}
	runtime.GC()
	if err := pprof.Lookup("allocs").WriteTo(fd, 0); err != nil {
		fd.Close()
		return fmt.Errorf("heap profile: %w", err)
	}
	return fd.Close()
}

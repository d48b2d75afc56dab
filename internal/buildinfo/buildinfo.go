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

// Package buildinfo describes the version of a command and of the PDF and
// rendering libraries it was built with.
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// libraries lists the modules reported by [Describe].
var libraries = []string{
	"seehuhn.de/go/pdf",
	"seehuhn.de/go/geom",
	"github.com/gogpu/gg",
}

// Version returns the version of the main module, or a shortened VCS
// revision for development builds.  If no version information is embedded
// in the binary, the empty string is returned.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return mainVersion(info)
}

func mainVersion(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}

// Describe returns a one-line description of a command, for example
// "pdf-ink v0.1.0 (seehuhn.de/go/pdf v0.6.0, github.com/gogpu/gg v0.46.2)".
func Describe(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}
	return describe(toolName, info)
}

func describe(toolName string, info *debug.BuildInfo) string {
	b := &strings.Builder{}
	b.WriteString(toolName)
	if v := mainVersion(info); v != "" {
		b.WriteString(" ")
		b.WriteString(v)
	}

	var deps []string
	for _, lib := range libraries {
		for _, dep := range info.Deps {
			if dep.Path != lib {
				continue
			}
			if dep.Replace != nil {
				dep = dep.Replace
			}
			desc := dep.Path
			if dep.Version != "" {
				desc += " " + dep.Version
			}
			deps = append(deps, desc)
			break
		}
	}
	if len(deps) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(deps, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// seehuhn.de/go/resbake - embed resource files into C++ headers at build time
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

// Package buildinfo reports the version of a command line tool.
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// Version returns a version string for a command line tool, e.g.
// "resbake v0.2.0" for a released module or "resbake 1a2b3c4d+dirty (go1.24.3)"
// for a development build.  If no build information is embedded in the
// binary, the tool name is returned unchanged.
func Version(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}
	return format(toolName, info)
}

func format(toolName string, info *debug.BuildInfo) string {
	parts := []string{toolName}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return toolName + " " + v
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
	if rev != "" {
		if dirty {
			rev += "+dirty"
		}
		parts = append(parts, rev)
	}
	if info.GoVersion != "" {
		parts = append(parts, "("+info.GoVersion+")")
	}
	return strings.Join(parts, " ")
}

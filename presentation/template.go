// seehuhn.de/go/pptx - a library for reading and writing PowerPoint files
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

package presentation

import "embed"

// templateFS holds the parts of the default presentation template used
// by New: a blank slide master, a blank slide layout and the theme.
//
//go:embed templates
var templateFS embed.FS

func templatePart(name string) []byte {
	data, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		panic("template part missing: " + name)
	}
	return data
}

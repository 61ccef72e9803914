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

// Package fonts locates font files installed on the system.
//
// The package reads the name and head tables of TrueType and OpenType
// font files to determine the typeface family and the bold and italic
// flags of each font, and maintains an index mapping
// (family, bold, italic) triples to file paths.
package fonts

import (
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/sfnt/header"
)

// Info describes a single font file.
type Info struct {
	// Family is the typeface family name, e.g. "Calibri".  For fonts
	// which carry a typographic family name this is used in preference
	// to the legacy family name, so that all members of a family report
	// the same value.
	Family string

	// Bold indicates that the font is a bold variant.
	Bold bool

	// Italic indicates that the font is an italic variant.
	Italic bool
}

// ReadFile reads the font file at the given path and returns the family
// name and style flags of the font.
func ReadFile(fname string) (*Info, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	info, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return info, nil
}

// Read reads a font from r and returns the family name and style flags.
func Read(r io.ReaderAt) (*Info, error) {
	hdr, err := header.Read(r)
	if err != nil {
		return nil, err
	}

	nameData, err := hdr.ReadTableBytes(r, "name")
	if err != nil {
		return nil, err
	}
	family, err := decodeFamilyName(nameData)
	if err != nil {
		return nil, err
	}

	headData, err := hdr.ReadTableBytes(r, "head")
	if err != nil {
		return nil, err
	}
	bold, italic, err := decodeStyleFlags(headData)
	if err != nil {
		return nil, err
	}

	return &Info{Family: family, Bold: bold, Italic: italic}, nil
}

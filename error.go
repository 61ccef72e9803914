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

package pptx

import "errors"

var (
	// ErrNoPart indicates that a part requested from a Reader is not
	// present in the package.
	ErrNoPart = errors.New("part not found")

	// ErrPartExists indicates an attempt to add a part under a name which
	// is already taken.
	ErrPartExists = errors.New("part already present")

	errWriterClosed = errors.New("writer already closed")
)

// MalformedFileError indicates that the .pptx package could not be parsed.
type MalformedFileError struct {
	Part string
	Err  error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Part != "" {
		tail = " (in part " + err.Part + ")"
	}
	return "not a valid pptx file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

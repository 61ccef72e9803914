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

import "seehuhn.de/go/pptx/measure"

// SlideSize describes the dimensions of the slides in a presentation.
type SlideSize struct {
	Width  measure.Length
	Height measure.Length

	// Type is the value for the type attribute of the p:sldSz element,
	// or "" if the size has no standard name.
	Type string
}

// The slide sizes offered by PowerPoint.
var (
	// Screen4x3 is the traditional 10 by 7.5 inch slide size.
	Screen4x3 = SlideSize{
		Width:  measure.Inch(10),
		Height: measure.Inch(7.5),
		Type:   "screen4x3",
	}

	// Screen16x9 is the 10 by 5.63 inch on-screen 16:9 size.
	Screen16x9 = SlideSize{
		Width:  measure.Inch(10),
		Height: measure.Emu(5143500),
		Type:   "screen16x9",
	}

	// Widescreen is the 13.33 by 7.5 inch size used by default in
	// recent PowerPoint versions.
	Widescreen = SlideSize{
		Width:  measure.Emu(12192000),
		Height: measure.Inch(7.5),
	}

	// A4 is the size for printing on A4 paper.
	A4 = SlideSize{
		Width:  measure.Emu(9906000),
		Height: measure.Emu(6858000),
		Type:   "A4",
	}

	// Letter is the size for printing on US letter paper.
	Letter = SlideSize{
		Width:  measure.Inch(10),
		Height: measure.Inch(7.5),
		Type:   "letter",
	}
)

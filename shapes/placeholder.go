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

package shapes

import "seehuhn.de/go/pptx/oxml"

// PlaceholderType identifies the role of a placeholder on a slide, as
// given by the type attribute of the p:ph element.
type PlaceholderType string

// The placeholder types used on slides.
const (
	PlaceholderTitle       PlaceholderType = "title"
	PlaceholderCenterTitle PlaceholderType = "ctrTitle"
	PlaceholderSubtitle    PlaceholderType = "subTitle"
	PlaceholderBody        PlaceholderType = "body"
	PlaceholderPicture     PlaceholderType = "pic"
	PlaceholderChart       PlaceholderType = "chart"
	PlaceholderTable       PlaceholderType = "tbl"
	PlaceholderDate        PlaceholderType = "dt"
	PlaceholderFooter      PlaceholderType = "ftr"
	PlaceholderSlideNumber PlaceholderType = "sldNum"

	// PlaceholderObject is the default when the p:ph element carries no
	// type attribute.
	PlaceholderObject PlaceholderType = "obj"
)

// PlaceholderFormat gives access to the placeholder properties of a
// shape.  It is returned by the Placeholder method of a shape, for
// shapes which have a p:ph element.
type PlaceholderFormat struct {
	ph *oxml.CT_Placeholder
}

// Type returns the role of the placeholder.
func (p *PlaceholderFormat) Type() PlaceholderType {
	if p.ph.Type == "" {
		return PlaceholderObject
	}
	return PlaceholderType(p.ph.Type)
}

// Idx returns the placeholder index, used to match the placeholder with
// its counterpart on the slide layout.
func (p *PlaceholderFormat) Idx() uint32 {
	return p.ph.Idx
}

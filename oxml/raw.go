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

package oxml

import "encoding/xml"

// RawElement holds an XML element which the object model does not
// interpret.  The element content is kept as the raw bytes from the
// input, so that loading and saving a file does not lose information.
type RawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content []byte     `xml:",innerxml"`
}

// decodeRaw reads one element verbatim.  Namespace declarations are
// dropped from the attribute list; the encoder writes its own when the
// element is marshalled again.
func decodeRaw(d *xml.Decoder, start *xml.StartElement) (*RawElement, error) {
	raw := &RawElement{}
	err := d.DecodeElement(raw, start)
	if err != nil {
		return nil, err
	}
	attrs := raw.Attrs[:0]
	for _, a := range raw.Attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		attrs = append(attrs, a)
	}
	raw.Attrs = attrs
	return raw, nil
}

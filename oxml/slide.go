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

// CT_Slide is the p:sld element, the root of a slide part.
type CT_Slide struct {
	XMLName xml.Name           `xml:"http://schemas.openxmlformats.org/presentationml/2006/main sld"`
	CSld    CT_CommonSlideData `xml:"http://schemas.openxmlformats.org/presentationml/2006/main cSld"`
}

// CT_CommonSlideData is the p:cSld element.
type CT_CommonSlideData struct {
	Name   string        `xml:"name,attr,omitempty"`
	SpTree CT_GroupShape `xml:"http://schemas.openxmlformats.org/presentationml/2006/main spTree"`
}

// NewSlide returns the element tree of an empty slide.
func NewSlide() *CT_Slide {
	sld := &CT_Slide{}
	tree := &sld.CSld.SpTree
	tree.NvGrpSpPr.CNvPr.ID = 1
	tree.EnsureTransform()
	return sld
}

// EncodeSlide returns the XML payload of a slide part.
func EncodeSlide(sld *CT_Slide) ([]byte, error) {
	return encodePart(sld)
}

// DecodeSlide parses the XML payload of a slide part.
func DecodeSlide(data []byte) (*CT_Slide, error) {
	sld := &CT_Slide{}
	err := xml.Unmarshal(data, sld)
	if err != nil {
		return nil, err
	}
	return sld, nil
}

// EncodePresentation returns the XML payload of the presentation part.
func EncodePresentation(pres *CT_Presentation) ([]byte, error) {
	return encodePart(pres)
}

// DecodePresentation parses the XML payload of the presentation part.
func DecodePresentation(data []byte) (*CT_Presentation, error) {
	pres := &CT_Presentation{}
	err := xml.Unmarshal(data, pres)
	if err != nil {
		return nil, err
	}
	return pres, nil
}

func encodePart(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	res := make([]byte, 0, len(xml.Header)+len(body))
	res = append(res, xml.Header...)
	res = append(res, body...)
	return res, nil
}

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

// CT_Point2D is the a:off element, the position of a shape in EMU.
type CT_Point2D struct {
	X ST_Coordinate `xml:"x,attr"`
	Y ST_Coordinate `xml:"y,attr"`
}

// CT_PositiveSize2D is the a:ext element, the extents of a shape in EMU.
type CT_PositiveSize2D struct {
	CX ST_PositiveCoordinate `xml:"cx,attr"`
	CY ST_PositiveCoordinate `xml:"cy,attr"`
}

// CT_Transform2D is the a:xfrm element holding position, extents,
// rotation and flips of a shape.
type CT_Transform2D struct {
	Rot   ST_Angle `xml:"rot,attr,omitempty"`
	FlipH bool     `xml:"flipH,attr,omitempty"`
	FlipV bool     `xml:"flipV,attr,omitempty"`

	Off *CT_Point2D        `xml:"http://schemas.openxmlformats.org/drawingml/2006/main off"`
	Ext *CT_PositiveSize2D `xml:"http://schemas.openxmlformats.org/drawingml/2006/main ext"`

	// child offset/extents, present on group shapes only
	ChOff *CT_Point2D        `xml:"http://schemas.openxmlformats.org/drawingml/2006/main chOff"`
	ChExt *CT_PositiveSize2D `xml:"http://schemas.openxmlformats.org/drawingml/2006/main chExt"`
}

// CT_PresetGeometry is the a:prstGeom element naming a preset shape
// outline, e.g. "rect".
type CT_PresetGeometry struct {
	Prst  string         `xml:"prst,attr"`
	AvLst *CT_GeomGuides `xml:"http://schemas.openxmlformats.org/drawingml/2006/main avLst"`
}

// CT_GeomGuides is the a:avLst shape adjustment list.
type CT_GeomGuides struct {
	Gd []CT_GeomGuide `xml:"http://schemas.openxmlformats.org/drawingml/2006/main gd"`
}

// CT_GeomGuide is a single a:gd shape adjustment value.
type CT_GeomGuide struct {
	Name string `xml:"name,attr"`
	Fmla string `xml:"fmla,attr"`
}

// CT_ShapeProperties is the p:spPr element.
type CT_ShapeProperties struct {
	Xfrm     *CT_Transform2D    `xml:"http://schemas.openxmlformats.org/drawingml/2006/main xfrm"`
	PrstGeom *CT_PresetGeometry `xml:"http://schemas.openxmlformats.org/drawingml/2006/main prstGeom"`
}

// EnsureXfrm returns the a:xfrm child, creating it (with off and ext) if
// it is not present.
func (sp *CT_ShapeProperties) EnsureXfrm() *CT_Transform2D {
	if sp.Xfrm == nil {
		sp.Xfrm = &CT_Transform2D{}
	}
	if sp.Xfrm.Off == nil {
		sp.Xfrm.Off = &CT_Point2D{}
	}
	if sp.Xfrm.Ext == nil {
		sp.Xfrm.Ext = &CT_PositiveSize2D{}
	}
	return sp.Xfrm
}

// CT_TextBody is the p:txBody element.
type CT_TextBody struct {
	BodyPr CT_TextBodyProperties `xml:"http://schemas.openxmlformats.org/drawingml/2006/main bodyPr"`
	P      []CT_TextParagraph    `xml:"http://schemas.openxmlformats.org/drawingml/2006/main p"`
}

// CT_TextBodyProperties is the a:bodyPr element.  Formatting attributes
// are out of scope; the element itself is required by the schema.
type CT_TextBodyProperties struct {
	Wrap string `xml:"wrap,attr,omitempty"`
}

// CT_TextParagraph is the a:p element.
type CT_TextParagraph struct {
	R []CT_RegularTextRun `xml:"http://schemas.openxmlformats.org/drawingml/2006/main r"`
}

// CT_RegularTextRun is the a:r element.
type CT_RegularTextRun struct {
	T string `xml:"http://schemas.openxmlformats.org/drawingml/2006/main t"`
}

// Text returns the concatenated text of all runs in the paragraph.
func (p *CT_TextParagraph) Text() string {
	var s string
	for _, r := range p.R {
		s += r.T
	}
	return s
}

// CT_GraphicalObject is the a:graphic element of a graphic frame.
type CT_GraphicalObject struct {
	XMLName     xml.Name               `xml:"http://schemas.openxmlformats.org/drawingml/2006/main graphic"`
	GraphicData CT_GraphicalObjectData `xml:"http://schemas.openxmlformats.org/drawingml/2006/main graphicData"`
}

// CT_GraphicalObjectData is the a:graphicData element.  The uri attribute
// identifies the kind of payload (chart, table, ...); the payload itself
// is not modelled here.
type CT_GraphicalObjectData struct {
	URI string `xml:"uri,attr"`

	Raw []byte `xml:",innerxml"`
}

// Graphic-frame payload URIs.
const (
	GraphicDataURIChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	GraphicDataURITable = "http://schemas.openxmlformats.org/drawingml/2006/table"
)

// CT_Blip is the a:blip element referencing an image part through the
// r:embed relationship ID.
type CT_Blip struct {
	Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr,omitempty"`
}

// CT_StretchInfo is the a:stretch element.
type CT_StretchInfo struct {
	FillRect *struct{} `xml:"http://schemas.openxmlformats.org/drawingml/2006/main fillRect"`
}

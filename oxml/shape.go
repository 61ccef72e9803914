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

import (
	"encoding/xml"
	"fmt"
)

// ShapeElement is implemented by the element types which can appear as
// children of a p:spTree: CT_Shape, CT_Picture, CT_GraphicFrame and
// CT_GroupShape.
type ShapeElement interface {
	// NonVisual returns the cNvPr element holding shape ID and name.
	NonVisual() *CT_NonVisualDrawingProps

	// Ph returns the p:ph placeholder element, or nil if the shape is
	// not a placeholder.
	Ph() *CT_Placeholder

	// Transform returns the shape transform, or nil if the shape has no
	// explicit transform (placeholders inherit theirs from the layout).
	Transform() *CT_Transform2D

	// EnsureTransform returns the shape transform, creating an empty one
	// if the shape has none.
	EnsureTransform() *CT_Transform2D
}

// CT_NonVisualDrawingProps is the p:cNvPr element.
type CT_NonVisualDrawingProps struct {
	ID    ST_DrawingElementID `xml:"id,attr"`
	Name  string              `xml:"name,attr"`
	Descr string              `xml:"descr,attr,omitempty"`
}

// CT_Placeholder is the p:ph element marking a shape as a placeholder
// inherited from the slide layout.
type CT_Placeholder struct {
	Type string `xml:"type,attr,omitempty"`
	Idx  uint32 `xml:"idx,attr,omitempty"`
}

// CT_ApplicationNonVisualDrawingProps is the p:nvPr element.
type CT_ApplicationNonVisualDrawingProps struct {
	Ph *CT_Placeholder `xml:"http://schemas.openxmlformats.org/presentationml/2006/main ph"`
}

// CT_ShapeNonVisual is the p:nvSpPr element.
type CT_ShapeNonVisual struct {
	CNvPr   CT_NonVisualDrawingProps            `xml:"http://schemas.openxmlformats.org/presentationml/2006/main cNvPr"`
	CNvSpPr CT_NonVisualShapeDrawingProps       `xml:"http://schemas.openxmlformats.org/presentationml/2006/main cNvSpPr"`
	NvPr    CT_ApplicationNonVisualDrawingProps `xml:"http://schemas.openxmlformats.org/presentationml/2006/main nvPr"`
}

// CT_NonVisualShapeDrawingProps is the p:cNvSpPr element.
type CT_NonVisualShapeDrawingProps struct {
	TxBox bool `xml:"txBox,attr,omitempty"`
}

// CT_Shape is the p:sp element, an auto shape, text box or placeholder.
type CT_Shape struct {
	XMLName xml.Name           `xml:"http://schemas.openxmlformats.org/presentationml/2006/main sp"`
	NvSpPr  CT_ShapeNonVisual  `xml:"http://schemas.openxmlformats.org/presentationml/2006/main nvSpPr"`
	SpPr    CT_ShapeProperties `xml:"http://schemas.openxmlformats.org/presentationml/2006/main spPr"`
	TxBody  *CT_TextBody       `xml:"http://schemas.openxmlformats.org/presentationml/2006/main txBody"`
}

func (s *CT_Shape) NonVisual() *CT_NonVisualDrawingProps { return &s.NvSpPr.CNvPr }
func (s *CT_Shape) Ph() *CT_Placeholder                  { return s.NvSpPr.NvPr.Ph }
func (s *CT_Shape) Transform() *CT_Transform2D           { return s.SpPr.Xfrm }
func (s *CT_Shape) EnsureTransform() *CT_Transform2D     { return s.SpPr.EnsureXfrm() }

// IsTextBox reports whether the shape was inserted as a text box.
func (s *CT_Shape) IsTextBox() bool { return s.NvSpPr.CNvSpPr.TxBox }

// CT_PictureNonVisual is the p:nvPicPr element.
type CT_PictureNonVisual struct {
	CNvPr    CT_NonVisualDrawingProps            `xml:"http://schemas.openxmlformats.org/presentationml/2006/main cNvPr"`
	CNvPicPr struct{}                            `xml:"http://schemas.openxmlformats.org/presentationml/2006/main cNvPicPr"`
	NvPr     CT_ApplicationNonVisualDrawingProps `xml:"http://schemas.openxmlformats.org/presentationml/2006/main nvPr"`
}

// CT_BlipFill is the p:blipFill element of a picture.
type CT_BlipFill struct {
	Blip    *CT_Blip        `xml:"http://schemas.openxmlformats.org/drawingml/2006/main blip"`
	Stretch *CT_StretchInfo `xml:"http://schemas.openxmlformats.org/drawingml/2006/main stretch"`
}

// CT_Picture is the p:pic element.
type CT_Picture struct {
	XMLName  xml.Name            `xml:"http://schemas.openxmlformats.org/presentationml/2006/main pic"`
	NvPicPr  CT_PictureNonVisual `xml:"http://schemas.openxmlformats.org/presentationml/2006/main nvPicPr"`
	BlipFill CT_BlipFill         `xml:"http://schemas.openxmlformats.org/presentationml/2006/main blipFill"`
	SpPr     CT_ShapeProperties  `xml:"http://schemas.openxmlformats.org/presentationml/2006/main spPr"`
}

func (p *CT_Picture) NonVisual() *CT_NonVisualDrawingProps { return &p.NvPicPr.CNvPr }
func (p *CT_Picture) Ph() *CT_Placeholder                  { return p.NvPicPr.NvPr.Ph }
func (p *CT_Picture) Transform() *CT_Transform2D           { return p.SpPr.Xfrm }
func (p *CT_Picture) EnsureTransform() *CT_Transform2D     { return p.SpPr.EnsureXfrm() }

// CT_GraphicFrameNonVisual is the p:nvGraphicFramePr element.
type CT_GraphicFrameNonVisual struct {
	CNvPr             CT_NonVisualDrawingProps            `xml:"http://schemas.openxmlformats.org/presentationml/2006/main cNvPr"`
	CNvGraphicFramePr struct{}                            `xml:"http://schemas.openxmlformats.org/presentationml/2006/main cNvGraphicFramePr"`
	NvPr              CT_ApplicationNonVisualDrawingProps `xml:"http://schemas.openxmlformats.org/presentationml/2006/main nvPr"`
}

// CT_GraphicFrame is the p:graphicFrame element, the container for charts
// and tables.
type CT_GraphicFrame struct {
	XMLName          xml.Name                 `xml:"http://schemas.openxmlformats.org/presentationml/2006/main graphicFrame"`
	NvGraphicFramePr CT_GraphicFrameNonVisual `xml:"http://schemas.openxmlformats.org/presentationml/2006/main nvGraphicFramePr"`
	Xfrm             *CT_Transform2D          `xml:"http://schemas.openxmlformats.org/presentationml/2006/main xfrm"`
	Graphic          CT_GraphicalObject       `xml:"http://schemas.openxmlformats.org/drawingml/2006/main graphic"`
}

func (g *CT_GraphicFrame) NonVisual() *CT_NonVisualDrawingProps { return &g.NvGraphicFramePr.CNvPr }
func (g *CT_GraphicFrame) Ph() *CT_Placeholder                  { return g.NvGraphicFramePr.NvPr.Ph }
func (g *CT_GraphicFrame) Transform() *CT_Transform2D           { return g.Xfrm }

func (g *CT_GraphicFrame) EnsureTransform() *CT_Transform2D {
	if g.Xfrm == nil {
		g.Xfrm = &CT_Transform2D{}
	}
	if g.Xfrm.Off == nil {
		g.Xfrm.Off = &CT_Point2D{}
	}
	if g.Xfrm.Ext == nil {
		g.Xfrm.Ext = &CT_PositiveSize2D{}
	}
	return g.Xfrm
}

// CT_GroupShapeNonVisual is the p:nvGrpSpPr element.
type CT_GroupShapeNonVisual struct {
	CNvPr      CT_NonVisualDrawingProps            `xml:"http://schemas.openxmlformats.org/presentationml/2006/main cNvPr"`
	CNvGrpSpPr struct{}                            `xml:"http://schemas.openxmlformats.org/presentationml/2006/main cNvGrpSpPr"`
	NvPr       CT_ApplicationNonVisualDrawingProps `xml:"http://schemas.openxmlformats.org/presentationml/2006/main nvPr"`
}

// CT_GroupShapeProperties is the p:grpSpPr element.
type CT_GroupShapeProperties struct {
	Xfrm *CT_Transform2D `xml:"http://schemas.openxmlformats.org/drawingml/2006/main xfrm"`
}

// CT_GroupShape represents both the p:grpSp element and the p:spTree root
// of a slide.  Child shapes are kept in document order.
type CT_GroupShape struct {
	NvGrpSpPr CT_GroupShapeNonVisual
	GrpSpPr   CT_GroupShapeProperties
	Shapes    []ShapeElement

	// Extra holds child elements not modelled here, for example p:cxnSp
	// connectors.  They are preserved verbatim and written back after
	// the shapes.
	Extra []*RawElement
}

func (g *CT_GroupShape) NonVisual() *CT_NonVisualDrawingProps { return &g.NvGrpSpPr.CNvPr }
func (g *CT_GroupShape) Ph() *CT_Placeholder                  { return g.NvGrpSpPr.NvPr.Ph }
func (g *CT_GroupShape) Transform() *CT_Transform2D           { return g.GrpSpPr.Xfrm }

func (g *CT_GroupShape) EnsureTransform() *CT_Transform2D {
	if g.GrpSpPr.Xfrm == nil {
		g.GrpSpPr.Xfrm = &CT_Transform2D{}
	}
	if g.GrpSpPr.Xfrm.Off == nil {
		g.GrpSpPr.Xfrm.Off = &CT_Point2D{}
	}
	if g.GrpSpPr.Xfrm.Ext == nil {
		g.GrpSpPr.Xfrm.Ext = &CT_PositiveSize2D{}
	}
	return g.GrpSpPr.Xfrm
}

// UnmarshalXML implements the xml.Unmarshaler interface, keeping the
// shape children in document order.
func (g *CT_GroupShape) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "nvGrpSpPr":
				err = d.DecodeElement(&g.NvGrpSpPr, &t)
			case "grpSpPr":
				err = d.DecodeElement(&g.GrpSpPr, &t)
			case "sp":
				el := &CT_Shape{}
				err = d.DecodeElement(el, &t)
				g.Shapes = append(g.Shapes, el)
			case "pic":
				el := &CT_Picture{}
				err = d.DecodeElement(el, &t)
				g.Shapes = append(g.Shapes, el)
			case "graphicFrame":
				el := &CT_GraphicFrame{}
				err = d.DecodeElement(el, &t)
				g.Shapes = append(g.Shapes, el)
			case "grpSp":
				el := &CT_GroupShape{}
				err = d.DecodeElement(el, &t)
				g.Shapes = append(g.Shapes, el)
			default:
				var raw *RawElement
				raw, err = decodeRaw(d, &t)
				if err == nil {
					g.Extra = append(g.Extra, raw)
				}
			}
			if err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// MarshalXML implements the xml.Marshaler interface.
func (g *CT_GroupShape) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if start.Name.Local == "" {
		start.Name = xml.Name{Space: NSPresentation, Local: "grpSp"}
	}
	err := e.EncodeToken(start)
	if err != nil {
		return err
	}

	err = e.EncodeElement(&g.NvGrpSpPr, xml.StartElement{
		Name: xml.Name{Space: NSPresentation, Local: "nvGrpSpPr"},
	})
	if err != nil {
		return err
	}
	err = e.EncodeElement(&g.GrpSpPr, xml.StartElement{
		Name: xml.Name{Space: NSPresentation, Local: "grpSpPr"},
	})
	if err != nil {
		return err
	}

	for _, child := range g.Shapes {
		switch el := child.(type) {
		case *CT_GroupShape:
			err = e.EncodeElement(el, xml.StartElement{
				Name: xml.Name{Space: NSPresentation, Local: "grpSp"},
			})
		case *CT_Shape, *CT_Picture, *CT_GraphicFrame:
			err = e.Encode(el)
		default:
			err = fmt.Errorf("unexpected shape element type %T", child)
		}
		if err != nil {
			return err
		}
	}

	for _, raw := range g.Extra {
		err = e.Encode(raw)
		if err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

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

// Package shapes provides the shape objects appearing on a slide.
//
// Each shape is a thin facade over its XML element: property accessors
// read and write attributes of the underlying oxml structs, converting
// between EMU integers and measure.Length values as needed.  The Shape
// interface is implemented by AutoShape, Picture, GraphicFrame and Group.
package shapes

import (
	"seehuhn.de/go/pptx/measure"
	"seehuhn.de/go/pptx/oxml"
)

// Shape is the common interface of all shapes on a slide.
type Shape interface {
	// Element returns the underlying XML element of the shape.
	Element() oxml.ShapeElement

	// ID returns the shape ID, unique among all shapes on a slide.
	ID() uint32

	// Name returns the shape name, e.g. "Picture 7".
	Name() string

	// SetName changes the shape name.
	SetName(name string)

	// Left returns the distance of the left edge of the shape from the
	// left edge of the slide.  The zero value is returned if the shape
	// has no explicit position (e.g. a placeholder which inherits its
	// position from the slide layout).
	Left() measure.Length

	// Top returns the distance of the top edge of the shape from the
	// top edge of the slide.
	Top() measure.Length

	// Width returns the distance between the left and right extents of
	// the shape.
	Width() measure.Length

	// Height returns the distance between the top and bottom extents of
	// the shape.
	Height() measure.Length

	SetLeft(measure.Length)
	SetTop(measure.Length)
	SetWidth(measure.Length)
	SetHeight(measure.Length)

	// Rotation returns the clockwise rotation of the shape in degrees,
	// in the range [0, 360).
	Rotation() float64

	// SetRotation sets the clockwise rotation of the shape in degrees.
	// Negative values rotate counter-clockwise: assigning -45 results
	// in a rotation of 315.
	SetRotation(deg float64)

	// IsPlaceholder reports whether the shape is a placeholder, i.e.
	// whether it has a p:ph element.
	IsPlaceholder() bool

	// Placeholder returns the placeholder format of the shape, or nil
	// if the shape is not a placeholder.
	Placeholder() *PlaceholderFormat

	// HasTextFrame reports whether the shape can contain text.
	HasTextFrame() bool

	// HasChart reports whether the shape is a graphic frame containing
	// a chart.
	HasChart() bool

	// HasTable reports whether the shape is a graphic frame containing
	// a table.
	HasTable() bool

	// Type returns the category of the shape.
	Type() ShapeType
}

// BaseShape implements the properties shared by all shape types.  The
// concrete shape types embed it.
type BaseShape struct {
	el oxml.ShapeElement
}

// Element returns the underlying XML element of the shape.
func (s *BaseShape) Element() oxml.ShapeElement {
	return s.el
}

// ID returns the shape ID, unique among all shapes on a slide.
func (s *BaseShape) ID() uint32 {
	return uint32(s.el.NonVisual().ID)
}

// Name returns the shape name, e.g. "Picture 7".
func (s *BaseShape) Name() string {
	return s.el.NonVisual().Name
}

// SetName changes the shape name.
func (s *BaseShape) SetName(name string) {
	s.el.NonVisual().Name = name
}

// Left returns the distance of the left edge of the shape from the left
// edge of the slide.
func (s *BaseShape) Left() measure.Length {
	xfrm := s.el.Transform()
	if xfrm == nil || xfrm.Off == nil {
		return 0
	}
	return measure.Emu(int64(xfrm.Off.X))
}

// SetLeft moves the left edge of the shape.
func (s *BaseShape) SetLeft(x measure.Length) {
	s.el.EnsureTransform().Off.X = oxml.ST_Coordinate(x.Emu())
}

// Top returns the distance of the top edge of the shape from the top
// edge of the slide.
func (s *BaseShape) Top() measure.Length {
	xfrm := s.el.Transform()
	if xfrm == nil || xfrm.Off == nil {
		return 0
	}
	return measure.Emu(int64(xfrm.Off.Y))
}

// SetTop moves the top edge of the shape.
func (s *BaseShape) SetTop(y measure.Length) {
	s.el.EnsureTransform().Off.Y = oxml.ST_Coordinate(y.Emu())
}

// Width returns the distance between the left and right extents of the
// shape.
func (s *BaseShape) Width() measure.Length {
	xfrm := s.el.Transform()
	if xfrm == nil || xfrm.Ext == nil {
		return 0
	}
	return measure.Emu(int64(xfrm.Ext.CX))
}

// SetWidth changes the width of the shape.
func (s *BaseShape) SetWidth(cx measure.Length) {
	s.el.EnsureTransform().Ext.CX = oxml.ST_PositiveCoordinate(cx.Emu())
}

// Height returns the distance between the top and bottom extents of the
// shape.
func (s *BaseShape) Height() measure.Length {
	xfrm := s.el.Transform()
	if xfrm == nil || xfrm.Ext == nil {
		return 0
	}
	return measure.Emu(int64(xfrm.Ext.CY))
}

// SetHeight changes the height of the shape.
func (s *BaseShape) SetHeight(cy measure.Length) {
	s.el.EnsureTransform().Ext.CY = oxml.ST_PositiveCoordinate(cy.Emu())
}

// Rotation returns the clockwise rotation of the shape in degrees.
func (s *BaseShape) Rotation() float64 {
	xfrm := s.el.Transform()
	if xfrm == nil {
		return 0
	}
	return measure.Angle(xfrm.Rot).Degrees()
}

// SetRotation sets the clockwise rotation of the shape in degrees.
func (s *BaseShape) SetRotation(deg float64) {
	s.el.EnsureTransform().Rot = oxml.ST_Angle(measure.FromDegrees(deg))
}

// IsPlaceholder reports whether the shape is a placeholder.
func (s *BaseShape) IsPlaceholder() bool {
	return s.el.Ph() != nil
}

// Placeholder returns the placeholder format of the shape, or nil if the
// shape is not a placeholder.
func (s *BaseShape) Placeholder() *PlaceholderFormat {
	ph := s.el.Ph()
	if ph == nil {
		return nil
	}
	return &PlaceholderFormat{ph: ph}
}

// HasTextFrame reports whether the shape can contain text.  This is true
// for auto shapes and text boxes only.
func (s *BaseShape) HasTextFrame() bool {
	return false
}

// HasChart reports whether the shape is a graphic frame containing a
// chart.
func (s *BaseShape) HasChart() bool {
	return false
}

// HasTable reports whether the shape is a graphic frame containing a
// table.
func (s *BaseShape) HasTable() bool {
	return false
}

// AutoShape is a shape backed by a p:sp element: an auto shape, a text
// box, or a placeholder.
type AutoShape struct {
	BaseShape
	sp *oxml.CT_Shape
}

// HasTextFrame reports whether the shape can contain text.
func (s *AutoShape) HasTextFrame() bool {
	return true
}

// TextFrame returns the text frame of the shape, creating an empty one if
// the shape has none yet.
func (s *AutoShape) TextFrame() *TextFrame {
	if s.sp.TxBody == nil {
		s.sp.TxBody = &oxml.CT_TextBody{
			P: []oxml.CT_TextParagraph{{}},
		}
	}
	return &TextFrame{body: s.sp.TxBody}
}

// Type returns the category of the shape.
func (s *AutoShape) Type() ShapeType {
	switch {
	case s.IsPlaceholder():
		return TypePlaceholder
	case s.sp.IsTextBox():
		return TypeTextBox
	default:
		return TypeAutoShape
	}
}

// Picture is a shape backed by a p:pic element.
type Picture struct {
	BaseShape
	pic *oxml.CT_Picture
}

// Type returns the category of the shape.
func (p *Picture) Type() ShapeType {
	if p.IsPlaceholder() {
		return TypePlaceholder
	}
	return TypePicture
}

// ImageRelID returns the relationship ID under which the image part of
// the picture is linked, e.g. "rId3".
func (p *Picture) ImageRelID() string {
	if p.pic.BlipFill.Blip == nil {
		return ""
	}
	return p.pic.BlipFill.Blip.Embed
}

// GraphicFrame is a shape backed by a p:graphicFrame element, the
// container used for charts and tables.
type GraphicFrame struct {
	BaseShape
	gf *oxml.CT_GraphicFrame
}

// HasChart reports whether the frame contains a chart.
func (g *GraphicFrame) HasChart() bool {
	return g.gf.Graphic.GraphicData.URI == oxml.GraphicDataURIChart
}

// HasTable reports whether the frame contains a table.
func (g *GraphicFrame) HasTable() bool {
	return g.gf.Graphic.GraphicData.URI == oxml.GraphicDataURITable
}

// Type returns the category of the shape.
func (g *GraphicFrame) Type() ShapeType {
	switch g.gf.Graphic.GraphicData.URI {
	case oxml.GraphicDataURIChart:
		return TypeChart
	case oxml.GraphicDataURITable:
		return TypeTable
	default:
		return TypeGraphicFrame
	}
}

// Group is a shape backed by a p:grpSp element.
type Group struct {
	BaseShape
	grp *oxml.CT_GroupShape
}

// Type returns the category of the shape.
func (g *Group) Type() ShapeType {
	return TypeGroup
}

// Shapes returns the shapes contained in the group, in document order.
func (g *Group) Shapes() []Shape {
	res := make([]Shape, 0, len(g.grp.Shapes))
	for _, el := range g.grp.Shapes {
		res = append(res, wrap(el))
	}
	return res
}

// wrap returns the shape object for an XML shape element.
func wrap(el oxml.ShapeElement) Shape {
	switch e := el.(type) {
	case *oxml.CT_Shape:
		return &AutoShape{BaseShape{el}, e}
	case *oxml.CT_Picture:
		return &Picture{BaseShape{el}, e}
	case *oxml.CT_GraphicFrame:
		return &GraphicFrame{BaseShape{el}, e}
	case *oxml.CT_GroupShape:
		return &Group{BaseShape{el}, e}
	default:
		panic("unexpected shape element type")
	}
}

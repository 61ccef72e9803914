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

import (
	"testing"

	"seehuhn.de/go/pptx/measure"
	"seehuhn.de/go/pptx/oxml"
)

const testSlideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld>
    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr/>
      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="2" name="Title 1"/>
          <p:cNvSpPr/>
          <p:nvPr>
            <p:ph type="title"/>
          </p:nvPr>
        </p:nvSpPr>
        <p:spPr/>
        <p:txBody>
          <a:bodyPr/>
          <a:p><a:r><a:t>Spam and Eggs</a:t></a:r></a:p>
        </p:txBody>
      </p:sp>
      <p:pic>
        <p:nvPicPr>
          <p:cNvPr id="3" name="Picture 2"/>
          <p:cNvPicPr/>
          <p:nvPr/>
        </p:nvPicPr>
        <p:blipFill>
          <a:blip r:embed="rId2"/>
          <a:stretch><a:fillRect/></a:stretch>
        </p:blipFill>
        <p:spPr>
          <a:xfrm rot="2700000">
            <a:off x="914400" y="457200"/>
            <a:ext cx="1828800" cy="914400"/>
          </a:xfrm>
        </p:spPr>
      </p:pic>
      <p:graphicFrame>
        <p:nvGraphicFramePr>
          <p:cNvPr id="4" name="Table 3"/>
          <p:cNvGraphicFramePr/>
          <p:nvPr/>
        </p:nvGraphicFramePr>
        <p:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="914400" cy="914400"/>
        </p:xfrm>
        <a:graphic>
          <a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table"/>
        </a:graphic>
      </p:graphicFrame>
    </p:spTree>
  </p:cSld>
</p:sld>`

func decodeTestSlide(t *testing.T) *ShapeTree {
	t.Helper()
	sld, err := oxml.DecodeSlide([]byte(testSlideXML))
	if err != nil {
		t.Fatal(err)
	}
	return NewShapeTree(&sld.CSld.SpTree, nil)
}

func TestShapeIdentity(t *testing.T) {
	tree := decodeTestSlide(t)
	shapes := tree.Shapes()
	if len(shapes) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(shapes))
	}

	title := shapes[0]
	if title.ID() != 2 {
		t.Errorf("ID = %d", title.ID())
	}
	if title.Name() != "Title 1" {
		t.Errorf("Name = %q", title.Name())
	}
	title.SetName("Renamed")
	if title.Name() != "Renamed" {
		t.Errorf("Name after SetName = %q", title.Name())
	}
	if title.Element() == nil {
		t.Error("Element is nil")
	}
}

func TestShapeTypes(t *testing.T) {
	tree := decodeTestSlide(t)
	shapes := tree.Shapes()

	if got := shapes[0].Type(); got != TypePlaceholder {
		t.Errorf("shape 0 type = %v", got)
	}
	if got := shapes[1].Type(); got != TypePicture {
		t.Errorf("shape 1 type = %v", got)
	}
	if got := shapes[2].Type(); got != TypeTable {
		t.Errorf("shape 2 type = %v", got)
	}
}

func TestPlaceholder(t *testing.T) {
	tree := decodeTestSlide(t)
	shapes := tree.Shapes()

	title := shapes[0]
	if !title.IsPlaceholder() {
		t.Error("title is not a placeholder")
	}
	ph := title.Placeholder()
	if ph == nil {
		t.Fatal("no placeholder format")
	}
	if ph.Type() != PlaceholderTitle {
		t.Errorf("placeholder type = %q", ph.Type())
	}

	pic := shapes[1]
	if pic.IsPlaceholder() {
		t.Error("picture is a placeholder")
	}
	if pic.Placeholder() != nil {
		t.Error("picture has a placeholder format")
	}
}

func TestGeometry(t *testing.T) {
	tree := decodeTestSlide(t)
	shapes := tree.Shapes()

	// the placeholder inherits its position from the layout
	title := shapes[0]
	if title.Left() != 0 || title.Top() != 0 || title.Width() != 0 || title.Height() != 0 {
		t.Error("placeholder geometry not zero")
	}

	pic := shapes[1]
	if got := pic.Left(); got != measure.Inch(1) {
		t.Errorf("Left = %v", got)
	}
	if got := pic.Top(); got != measure.Inch(0.5) {
		t.Errorf("Top = %v", got)
	}
	if got := pic.Width(); got != measure.Inch(2) {
		t.Errorf("Width = %v", got)
	}
	if got := pic.Height(); got != measure.Inch(1) {
		t.Errorf("Height = %v", got)
	}

	pic.SetLeft(measure.Cm(3))
	if got := pic.Left(); got.Emu() != 3*360000 {
		t.Errorf("Left after SetLeft = %v", got)
	}

	// assigning a position to the placeholder creates the transform
	title.SetLeft(measure.Pt(10))
	title.SetTop(measure.Pt(20))
	if title.Left().Emu() != 127000 || title.Top().Emu() != 254000 {
		t.Errorf("placeholder position = (%v, %v)", title.Left(), title.Top())
	}
}

func TestRotation(t *testing.T) {
	tree := decodeTestSlide(t)
	shapes := tree.Shapes()

	pic := shapes[1]
	if got := pic.Rotation(); got != 45 {
		t.Errorf("Rotation = %v", got)
	}

	pic.SetRotation(-45)
	if got := pic.Rotation(); got != 315 {
		t.Errorf("Rotation after SetRotation(-45) = %v", got)
	}
	pic.SetRotation(540)
	if got := pic.Rotation(); got != 180 {
		t.Errorf("Rotation after SetRotation(540) = %v", got)
	}

	// shapes without a transform report zero rotation
	title := decodeTestSlide(t).Shapes()[0]
	if got := title.Rotation(); got != 0 {
		t.Errorf("Rotation = %v", got)
	}
}

func TestContentFlags(t *testing.T) {
	tree := decodeTestSlide(t)
	shapes := tree.Shapes()

	title := shapes[0]
	if !title.HasTextFrame() {
		t.Error("sp has no text frame")
	}
	if title.HasChart() || title.HasTable() {
		t.Error("sp claims graphic content")
	}

	pic := shapes[1]
	if pic.HasTextFrame() || pic.HasChart() || pic.HasTable() {
		t.Error("picture claims content it cannot have")
	}

	frame := shapes[2]
	if frame.HasChart() {
		t.Error("table frame claims to hold a chart")
	}
	if !frame.HasTable() {
		t.Error("table frame does not report its table")
	}
}

func TestTextFrame(t *testing.T) {
	tree := decodeTestSlide(t)
	title := tree.Shapes()[0].(*AutoShape)

	tf := title.TextFrame()
	if got := tf.Text(); got != "Spam and Eggs" {
		t.Errorf("Text = %q", got)
	}

	tf.SetText("first\nsecond")
	if got := tf.Text(); got != "first\nsecond" {
		t.Errorf("Text after SetText = %q", got)
	}
	paras := tf.Paragraphs()
	if len(paras) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paras))
	}
	if paras[1].Text() != "second" {
		t.Errorf("paragraph 1 = %q", paras[1].Text())
	}

	p := tf.AddParagraph()
	p.SetText("third")
	if got := tf.Text(); got != "first\nsecond\nthird" {
		t.Errorf("Text after AddParagraph = %q", got)
	}
}

func TestByName(t *testing.T) {
	tree := decodeTestSlide(t)
	if s := tree.ByName("Picture 2"); s == nil || s.ID() != 3 {
		t.Error("ByName failed to find the picture")
	}
	if s := tree.ByName("no such shape"); s != nil {
		t.Error("ByName invented a shape")
	}
}

func TestPictureRelID(t *testing.T) {
	tree := decodeTestSlide(t)
	pic := tree.Shapes()[1].(*Picture)
	if got := pic.ImageRelID(); got != "rId2" {
		t.Errorf("ImageRelID = %q", got)
	}
}

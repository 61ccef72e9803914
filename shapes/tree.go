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
	"bytes"
	"fmt"
	"image"

	"seehuhn.de/go/pptx/measure"
	"seehuhn.de/go/pptx/oxml"

	_ "seehuhn.de/go/pptx/internal/imgfmt" // register image decoders
)

// ImageStore registers image data as a part of the containing package.
// It is implemented by the slide objects of the presentation layer.
type ImageStore interface {
	// AddImage stores the image data as a package part and returns the
	// relationship ID under which the slide refers to it.  Format is
	// the image format name as reported by image.DecodeConfig, e.g.
	// "png" or "jpeg".
	AddImage(format string, data []byte) (string, error)
}

// ShapeTree is the collection of shapes on a slide, backed by the
// p:spTree element.
type ShapeTree struct {
	root  *oxml.CT_GroupShape
	store ImageStore
}

// NewShapeTree returns the shape tree for the given p:spTree element.
// The store is used to register image parts for AddPicture; it may be
// nil if no pictures are added.
func NewShapeTree(root *oxml.CT_GroupShape, store ImageStore) *ShapeTree {
	return &ShapeTree{root: root, store: store}
}

// Len returns the number of top-level shapes on the slide.
func (t *ShapeTree) Len() int {
	return len(t.root.Shapes)
}

// Shapes returns the shapes on the slide, in document order.  Shapes
// nested inside groups are not included; use the Shapes method of Group
// to descend.
func (t *ShapeTree) Shapes() []Shape {
	res := make([]Shape, 0, len(t.root.Shapes))
	for _, el := range t.root.Shapes {
		res = append(res, wrap(el))
	}
	return res
}

// ByName returns the first shape with the given name, or nil if there is
// no such shape.
func (t *ShapeTree) ByName(name string) Shape {
	for _, el := range t.root.Shapes {
		if el.NonVisual().Name == name {
			return wrap(el)
		}
	}
	return nil
}

// nextID returns the smallest shape ID larger than all IDs used in the
// tree, including inside nested groups.
func (t *ShapeTree) nextID() uint32 {
	max := uint32(t.root.NvGrpSpPr.CNvPr.ID)
	var walk func(shapes []oxml.ShapeElement)
	walk = func(shapes []oxml.ShapeElement) {
		for _, el := range shapes {
			if id := uint32(el.NonVisual().ID); id > max {
				max = id
			}
			if grp, ok := el.(*oxml.CT_GroupShape); ok {
				walk(grp.Shapes)
			}
		}
	}
	walk(t.root.Shapes)
	return max + 1
}

// AddTextBox adds a new, empty text box of the given position and size
// to the slide.
func (t *ShapeTree) AddTextBox(left, top, width, height measure.Length) *AutoShape {
	id := t.nextID()

	sp := &oxml.CT_Shape{}
	sp.NvSpPr.CNvPr.ID = oxml.ST_DrawingElementID(id)
	sp.NvSpPr.CNvPr.Name = fmt.Sprintf("TextBox %d", id-1)
	sp.NvSpPr.CNvSpPr.TxBox = true
	sp.SpPr.PrstGeom = &oxml.CT_PresetGeometry{
		Prst:  "rect",
		AvLst: &oxml.CT_GeomGuides{},
	}
	sp.TxBody = &oxml.CT_TextBody{
		BodyPr: oxml.CT_TextBodyProperties{Wrap: "none"},
		P:      []oxml.CT_TextParagraph{{}},
	}

	shape := &AutoShape{BaseShape{sp}, sp}
	shape.SetLeft(left)
	shape.SetTop(top)
	shape.SetWidth(width)
	shape.SetHeight(height)

	t.root.Shapes = append(t.root.Shapes, sp)
	return shape
}

// AddPicture adds a picture shape displaying the given image to the
// slide.  The image data must be in PNG, JPEG, GIF, BMP or TIFF format.
//
// If width and height are both zero, the native size of the image is
// used, at 72 pixels per inch.  If exactly one of them is zero, it is
// computed from the other so that the aspect ratio of the image is
// preserved.
func (t *ShapeTree) AddPicture(data []byte, left, top, width, height measure.Length) (*Picture, error) {
	if t.store == nil {
		return nil, errNoImageStore
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot determine image size: %w", err)
	}
	rID, err := t.store.AddImage(format, data)
	if err != nil {
		return nil, err
	}

	width, height = scaleToFit(cfg.Width, cfg.Height, width, height)

	id := t.nextID()
	pic := &oxml.CT_Picture{}
	pic.NvPicPr.CNvPr.ID = oxml.ST_DrawingElementID(id)
	pic.NvPicPr.CNvPr.Name = fmt.Sprintf("Picture %d", id-1)
	pic.BlipFill.Blip = &oxml.CT_Blip{Embed: rID}
	pic.BlipFill.Stretch = &oxml.CT_StretchInfo{FillRect: &struct{}{}}
	pic.SpPr.PrstGeom = &oxml.CT_PresetGeometry{
		Prst:  "rect",
		AvLst: &oxml.CT_GeomGuides{},
	}

	shape := &Picture{BaseShape{pic}, pic}
	shape.SetLeft(left)
	shape.SetTop(top)
	shape.SetWidth(width)
	shape.SetHeight(height)

	t.root.Shapes = append(t.root.Shapes, pic)
	return shape, nil
}

// scaleToFit fills in missing display dimensions from the pixel size of
// an image.
func scaleToFit(pxW, pxH int, width, height measure.Length) (measure.Length, measure.Length) {
	const dpi = 72
	nativeW := measure.Emu(int64(pxW) * measure.EmuPerInch.Emu() / dpi)
	nativeH := measure.Emu(int64(pxH) * measure.EmuPerInch.Emu() / dpi)
	switch {
	case width == 0 && height == 0:
		return nativeW, nativeH
	case width == 0:
		return measure.Length(int64(height) * int64(pxW) / int64(pxH)), height
	case height == 0:
		return width, measure.Length(int64(width) * int64(pxH) / int64(pxW))
	default:
		return width, height
	}
}

type treeError string

func (e treeError) Error() string { return string(e) }

const errNoImageStore treeError = "shape tree has no image store"

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

import (
	"fmt"
	"path"

	"seehuhn.de/go/pptx"
	"seehuhn.de/go/pptx/internal/imgfmt"
	"seehuhn.de/go/pptx/oxml"
	"seehuhn.de/go/pptx/shapes"
)

// Slide is a single slide of a presentation.
type Slide struct {
	pres *Presentation
	sld  *oxml.CT_Slide
	rels *pptx.Relationships
}

// Shapes returns the shape tree of the slide.
func (s *Slide) Shapes() *shapes.ShapeTree {
	return shapes.NewShapeTree(&s.sld.CSld.SpTree, s)
}

// Element returns the XML root element of the slide.
func (s *Slide) Element() *oxml.CT_Slide {
	return s.sld
}

// AddImage stores the image data as a media part of the package and
// links it to the slide.  It returns the relationship ID under which
// the slide refers to the image.  Format is the image format name as
// reported by image.DecodeConfig, e.g. "png" or "jpeg".
//
// AddImage implements the shapes.ImageStore interface; it is normally
// called through the AddPicture method of the shape tree.
func (s *Slide) AddImage(format string, data []byte) (string, error) {
	contentType := imgfmt.ContentType(format)
	if contentType == "" {
		return "", fmt.Errorf("unsupported image format %q", format)
	}

	name := s.pres.nextMediaName(imgfmt.Extension(format))
	s.pres.extra[name] = part{
		contentType: contentType,
		data:        data,
	}
	rID := s.rels.Add(pptx.RelImage, "../media/"+path.Base(name))
	return rID, nil
}

// nextMediaName returns an unused part name under ppt/media/ with the
// given file name extension.
func (p *Presentation) nextMediaName(ext string) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("ppt/media/image%d.%s", i, ext)
		if _, taken := p.extra[name]; !taken {
			return name
		}
	}
}

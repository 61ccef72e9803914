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

// CT_Presentation is the p:presentation element, the root of the
// ppt/presentation.xml part.  Child elements not modelled here, like
// p:notesMasterIdLst and p:defaultTextStyle, are preserved verbatim
// and written back in their original position.
type CT_Presentation struct {
	// Attrs holds the attributes of the p:presentation element,
	// e.g. saveSubsetFonts.
	Attrs []xml.Attr

	SldMasterIdLst *CT_SlideMasterIdList
	SldIdLst       *CT_SlideIdList
	SldSz          *CT_SlideSize
	NotesSz        *CT_PositiveSize2D

	// children records the document order of all child elements,
	// including the unmodelled ones.
	children []any // presChildKind or *RawElement
}

type presChildKind int

const (
	childSldMasterIdLst presChildKind = iota
	childSldIdLst
	childSldSz
	childNotesSz
)

// UnmarshalXML implements the xml.Unmarshaler interface.
func (p *CT_Presentation) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		p.Attrs = append(p.Attrs, a)
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "sldMasterIdLst":
				p.SldMasterIdLst = &CT_SlideMasterIdList{}
				err = d.DecodeElement(p.SldMasterIdLst, &t)
				p.children = append(p.children, childSldMasterIdLst)
			case "sldIdLst":
				p.SldIdLst = &CT_SlideIdList{}
				err = d.DecodeElement(p.SldIdLst, &t)
				p.children = append(p.children, childSldIdLst)
			case "sldSz":
				p.SldSz = &CT_SlideSize{}
				err = d.DecodeElement(p.SldSz, &t)
				p.children = append(p.children, childSldSz)
			case "notesSz":
				p.NotesSz = &CT_PositiveSize2D{}
				err = d.DecodeElement(p.NotesSz, &t)
				p.children = append(p.children, childNotesSz)
			default:
				var raw *RawElement
				raw, err = decodeRaw(d, &t)
				if err == nil {
					p.children = append(p.children, raw)
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

// MarshalXML implements the xml.Marshaler interface.  The children
// recorded during decoding keep their document position; children set
// programmatically are appended in schema order.
func (p *CT_Presentation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Space: NSPresentation, Local: "presentation"}
	start.Attr = p.Attrs
	err := e.EncodeToken(start)
	if err != nil {
		return err
	}

	emitted := make(map[presChildKind]bool)
	for _, child := range p.children {
		switch c := child.(type) {
		case presChildKind:
			err = p.encodeChild(e, c)
			emitted[c] = true
		case *RawElement:
			err = e.Encode(c)
		}
		if err != nil {
			return err
		}
	}
	for _, c := range []presChildKind{childSldMasterIdLst, childSldIdLst, childSldSz, childNotesSz} {
		if emitted[c] {
			continue
		}
		err = p.encodeChild(e, c)
		if err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

func (p *CT_Presentation) encodeChild(e *xml.Encoder, kind presChildKind) error {
	enc := func(v any, local string) error {
		return e.EncodeElement(v, xml.StartElement{
			Name: xml.Name{Space: NSPresentation, Local: local},
		})
	}
	switch kind {
	case childSldMasterIdLst:
		if p.SldMasterIdLst != nil {
			return enc(p.SldMasterIdLst, "sldMasterIdLst")
		}
	case childSldIdLst:
		if p.SldIdLst != nil {
			return enc(p.SldIdLst, "sldIdLst")
		}
	case childSldSz:
		if p.SldSz != nil {
			return enc(p.SldSz, "sldSz")
		}
	case childNotesSz:
		if p.NotesSz != nil {
			return enc(p.NotesSz, "notesSz")
		}
	}
	return nil
}

// CT_SlideMasterIdList is the p:sldMasterIdLst element.
type CT_SlideMasterIdList struct {
	SldMasterId []CT_SlideMasterIdListEntry `xml:"http://schemas.openxmlformats.org/presentationml/2006/main sldMasterId"`
}

// CT_SlideMasterIdListEntry is a p:sldMasterId element.
type CT_SlideMasterIdListEntry struct {
	ID  uint32 `xml:"id,attr,omitempty"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// CT_SlideIdList is the p:sldIdLst element.
type CT_SlideIdList struct {
	SldId []CT_SlideIdListEntry `xml:"http://schemas.openxmlformats.org/presentationml/2006/main sldId"`
}

// CT_SlideIdListEntry is a p:sldId element.  Slide IDs must be at least
// 256 and unique within the presentation.
type CT_SlideIdListEntry struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// MaxID returns the largest slide ID in the list, or 0 for an empty list.
func (l *CT_SlideIdList) MaxID() uint32 {
	var maxID uint32
	for _, e := range l.SldId {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID
}

// CT_SlideSize is the p:sldSz element.
type CT_SlideSize struct {
	CX   ST_PositiveCoordinate `xml:"cx,attr"`
	CY   ST_PositiveCoordinate `xml:"cy,attr"`
	Type string                `xml:"type,attr,omitempty"`
}

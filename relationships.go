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

package pptx

import (
	"encoding/xml"
	"path"
	"strconv"
	"strings"
)

// Relationship types used by presentation packages.
const (
	RelOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelNotesMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"
	RelPresProps      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	RelImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
)

// A Relationship links a source part to a target part or to an external
// resource.
type Relationship struct {
	ID         string
	Type       string
	Target     string
	TargetMode string // "" or "Internal" for package parts, "External" otherwise
}

// Relationships holds the relationships of one source part (or of the
// package itself, for the source part name "").
type Relationships struct {
	source string
	rels   []Relationship
	nextID int
}

// NewRelationships creates an empty relationship set for the given source
// part.  Use source "" for the package-level relationships.
func NewRelationships(source string) *Relationships {
	return &Relationships{
		source: source,
		nextID: 1,
	}
}

func decodeRelationships(source string, data []byte) (*Relationships, error) {
	var enc xmlRelationships
	err := xml.Unmarshal(data, &enc)
	if err != nil {
		return nil, &MalformedFileError{Part: relsPartName(source), Err: err}
	}

	rr := NewRelationships(source)
	for _, r := range enc.Relationship {
		rr.Put(Relationship(r))
	}
	return rr, nil
}

// Put appends a relationship under the ID stored in rel.  Later calls
// to Add allocate IDs clear of the IDs added this way.
func (rr *Relationships) Put(rel Relationship) {
	rr.rels = append(rr.rels, rel)
	if n, ok := strings.CutPrefix(rel.ID, "rId"); ok {
		if k, err := strconv.Atoi(n); err == nil && k >= rr.nextID {
			rr.nextID = k + 1
		}
	}
}

// Add appends an internal relationship and returns the allocated ID
// ("rId1", "rId2", ...).
func (rr *Relationships) Add(relType, target string) string {
	id := "rId" + strconv.Itoa(rr.nextID)
	rr.nextID++
	rr.rels = append(rr.rels, Relationship{
		ID:     id,
		Type:   relType,
		Target: target,
	})
	return id
}

// ByID returns the relationship with the given ID.
func (rr *Relationships) ByID(id string) (Relationship, bool) {
	for _, r := range rr.rels {
		if r.ID == id {
			return r, true
		}
	}
	return Relationship{}, false
}

// ByType returns all relationships of the given type, in document order.
func (rr *Relationships) ByType(relType string) []Relationship {
	var res []Relationship
	for _, r := range rr.rels {
		if r.Type == relType {
			res = append(res, r)
		}
	}
	return res
}

// All returns all relationships in document order.
func (rr *Relationships) All() []Relationship {
	return rr.rels
}

// Len returns the number of relationships.
func (rr *Relationships) Len() int {
	return len(rr.rels)
}

// TargetPart resolves the target of an internal relationship to a part
// name, relative to the source part of rr.
func (rr *Relationships) TargetPart(r Relationship) string {
	if path.IsAbs(r.Target) {
		return strings.TrimPrefix(r.Target, "/")
	}
	base := "" // package root
	if rr.source != "" {
		base = path.Dir(rr.source)
	}
	return path.Clean(path.Join(base, r.Target))
}

// Encode returns the XML representation of the relationship part.
func (rr *Relationships) Encode() ([]byte, error) {
	enc := &xmlRelationships{}
	for _, r := range rr.rels {
		enc.Relationship = append(enc.Relationship, xmlRelationship(r))
	}
	body, err := xml.Marshal(enc)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// relsPartName returns the name of the relationship part for the given
// source part.  The package-level relationship part is "_rels/.rels".
func relsPartName(source string) string {
	if source == "" {
		return "_rels/.rels"
	}
	return path.Dir(source) + "/_rels/" + path.Base(source) + ".rels"
}

type xmlRelationships struct {
	XMLName      xml.Name          `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Relationship []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

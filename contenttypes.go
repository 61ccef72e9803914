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
	"sort"
	"strings"
)

// Content types of the package parts this library deals with.
const (
	TypePresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	TypeSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	TypeSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	TypeSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	TypeNotesMaster   = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"
	TypePresProps     = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	TypeTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	TypeCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	TypeExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	TypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	TypeXML           = "application/xml"
)

const contentTypesName = "[Content_Types].xml"

// ContentTypes maps part names to content types, using the extension
// defaults and per-part overrides from [Content_Types].xml.
type ContentTypes struct {
	defaults  map[string]string // lower-case extension -> content type
	overrides map[string]string // part name -> content type
}

func newContentTypes() *ContentTypes {
	return &ContentTypes{
		defaults: map[string]string{
			"rels": TypeRelationships,
			"xml":  TypeXML,
		},
		overrides: make(map[string]string),
	}
}

func decodeContentTypes(data []byte) (*ContentTypes, error) {
	var enc xmlTypes
	err := xml.Unmarshal(data, &enc)
	if err != nil {
		return nil, &MalformedFileError{Part: contentTypesName, Err: err}
	}

	ct := &ContentTypes{
		defaults:  make(map[string]string, len(enc.Default)),
		overrides: make(map[string]string, len(enc.Override)),
	}
	for _, d := range enc.Default {
		ct.defaults[strings.ToLower(d.Extension)] = d.ContentType
	}
	for _, o := range enc.Override {
		ct.overrides[strings.TrimPrefix(o.PartName, "/")] = o.ContentType
	}
	return ct, nil
}

// SetDefault registers a content type for a file name extension.
// The extension is given without the leading dot.
func (ct *ContentTypes) SetDefault(ext, contentType string) {
	ct.defaults[strings.ToLower(ext)] = contentType
}

// SetOverride registers a content type for a single part.
func (ct *ContentTypes) SetOverride(partName, contentType string) {
	ct.overrides[strings.TrimPrefix(partName, "/")] = contentType
}

// TypeOf returns the content type for the given part name, or "" if the
// part name is covered neither by an override nor by an extension default.
func (ct *ContentTypes) TypeOf(partName string) string {
	partName = strings.TrimPrefix(partName, "/")
	if tp, ok := ct.overrides[partName]; ok {
		return tp
	}
	ext := strings.TrimPrefix(path.Ext(partName), ".")
	return ct.defaults[strings.ToLower(ext)]
}

// Encode returns the XML representation of the [Content_Types].xml part.
// Entries are sorted so that output is deterministic.
func (ct *ContentTypes) Encode() ([]byte, error) {
	enc := &xmlTypes{}

	exts := make([]string, 0, len(ct.defaults))
	for ext := range ct.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		enc.Default = append(enc.Default, xmlDefault{
			Extension:   ext,
			ContentType: ct.defaults[ext],
		})
	}

	parts := make([]string, 0, len(ct.overrides))
	for name := range ct.overrides {
		parts = append(parts, name)
	}
	sort.Strings(parts)
	for _, name := range parts {
		enc.Override = append(enc.Override, xmlOverride{
			PartName:    "/" + name,
			ContentType: ct.overrides[name],
		})
	}

	body, err := xml.Marshal(enc)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

type xmlTypes struct {
	XMLName  xml.Name      `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Default  []xmlDefault  `xml:"Default"`
	Override []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

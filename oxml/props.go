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
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"
)

// CoreProperties holds the Dublin Core document properties from the
// docProps/core.xml part.
type CoreProperties struct {
	Title          string
	Subject        string
	Creator        string
	Keywords       string
	Description    string
	Category       string
	LastModifiedBy string
	Revision       int
	Created        time.Time
	Modified       time.Time
}

type xmlCoreProps struct {
	XMLName        xml.Name `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties coreProperties"`
	Title          string   `xml:"http://purl.org/dc/elements/1.1/ title"`
	Subject        string   `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Creator        string   `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Keywords       string   `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties keywords"`
	Description    string   `xml:"http://purl.org/dc/elements/1.1/ description"`
	Category       string   `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties category"`
	LastModifiedBy string   `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties lastModifiedBy"`
	Revision       string   `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties revision"`
	Created        string   `xml:"http://purl.org/dc/terms/ created"`
	Modified       string   `xml:"http://purl.org/dc/terms/ modified"`
}

// DecodeCoreProperties parses the docProps/core.xml payload.
func DecodeCoreProperties(data []byte) (*CoreProperties, error) {
	var enc xmlCoreProps
	err := xml.Unmarshal(data, &enc)
	if err != nil {
		return nil, err
	}

	cp := &CoreProperties{
		Title:          enc.Title,
		Subject:        enc.Subject,
		Creator:        enc.Creator,
		Keywords:       enc.Keywords,
		Description:    enc.Description,
		Category:       enc.Category,
		LastModifiedBy: enc.LastModifiedBy,
	}
	if enc.Revision != "" {
		rev, err := strconv.Atoi(enc.Revision)
		if err == nil {
			cp.Revision = rev
		}
	}
	cp.Created = parseW3CDTF(enc.Created)
	cp.Modified = parseW3CDTF(enc.Modified)
	return cp, nil
}

// Encode returns the XML payload of the docProps/core.xml part.
//
// The part is written by hand rather than through xml.Marshal: the
// dcterms:created and dcterms:modified elements need an
// xsi:type="dcterms:W3CDTF" attribute whose value refers to a namespace
// prefix, so the prefixes must be spelled out.
func (cp *CoreProperties) Encode() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	fmt.Fprintf(buf,
		`<cp:coreProperties xmlns:cp=%q xmlns:dc=%q xmlns:dcterms=%q xmlns:xsi=%q>`,
		NSCoreProps, NSDC, NSDCTerms, NSXSI)

	writeProp := func(tag, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(buf, "<%s>", tag)
		xml.EscapeText(buf, []byte(value))
		fmt.Fprintf(buf, "</%s>", tag)
	}
	writeTime := func(tag string, t time.Time) {
		if t.IsZero() {
			return
		}
		fmt.Fprintf(buf, `<%s xsi:type="dcterms:W3CDTF">%s</%s>`,
			tag, t.UTC().Format("2006-01-02T15:04:05Z"), tag)
	}

	writeProp("dc:title", cp.Title)
	writeProp("dc:subject", cp.Subject)
	writeProp("dc:creator", cp.Creator)
	writeProp("cp:keywords", cp.Keywords)
	writeProp("dc:description", cp.Description)
	writeProp("cp:category", cp.Category)
	writeProp("cp:lastModifiedBy", cp.LastModifiedBy)
	if cp.Revision > 0 {
		writeProp("cp:revision", strconv.Itoa(cp.Revision))
	}
	writeTime("dcterms:created", cp.Created)
	writeTime("dcterms:modified", cp.Modified)

	buf.WriteString("</cp:coreProperties>")
	return buf.Bytes(), nil
}

func parseW3CDTF(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05Z",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ExtendedProperties holds the application-defined properties from the
// docProps/app.xml part.
type ExtendedProperties struct {
	XMLName     xml.Name `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Properties"`
	Application string   `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Application,omitempty"`
	Slides      int      `xml:"http://schemas.openxmlformats.org/officeDocument/2006/extended-properties Slides,omitempty"`
}

// DecodeExtendedProperties parses the docProps/app.xml payload.
func DecodeExtendedProperties(data []byte) (*ExtendedProperties, error) {
	props := &ExtendedProperties{}
	err := xml.Unmarshal(data, props)
	if err != nil {
		return nil, err
	}
	return props, nil
}

// Encode returns the XML payload of the docProps/app.xml part.
func (props *ExtendedProperties) Encode() ([]byte, error) {
	return encodePart(props)
}

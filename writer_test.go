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
	"bytes"
	"errors"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	presXML := []byte(`<?xml version="1.0"?><p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`)
	slideXML := []byte(`<?xml version="1.0"?><p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`)

	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	err := w.AddPart("ppt/presentation.xml", TypePresentation, presXML)
	if err != nil {
		t.Fatal(err)
	}
	err = w.AddPart("ppt/slides/slide1.xml", TypeSlide, slideXML)
	if err != nil {
		t.Fatal(err)
	}
	w.SetDefault("png", "image/png")
	err = w.AddPart("ppt/media/image1.png", "", []byte{0x89, 'P', 'N', 'G'})
	if err != nil {
		t.Fatal(err)
	}
	w.Rels("").Add(RelOfficeDocument, "ppt/presentation.xml")
	w.Rels("ppt/presentation.xml").Add(RelSlide, "slides/slide1.xml")
	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}

	if got := r.ContentType("ppt/presentation.xml"); got != TypePresentation {
		t.Errorf("presentation content type = %q", got)
	}
	if got := r.ContentType("ppt/media/image1.png"); got != "image/png" {
		t.Errorf("image content type = %q", got)
	}

	data, err := r.Part("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, slideXML) {
		t.Error("slide payload corrupted")
	}
	// second read comes from the cache
	data2, err := r.Part("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data2, slideXML) {
		t.Error("cached slide payload corrupted")
	}

	pkgRels, err := r.Relationships("")
	if err != nil {
		t.Fatal(err)
	}
	docs := pkgRels.ByType(RelOfficeDocument)
	if len(docs) != 1 {
		t.Fatalf("expected 1 officeDocument relationship, got %d", len(docs))
	}
	if got := pkgRels.TargetPart(docs[0]); got != "ppt/presentation.xml" {
		t.Errorf("officeDocument target = %q", got)
	}

	presRels, err := r.Relationships("ppt/presentation.xml")
	if err != nil {
		t.Fatal(err)
	}
	slides := presRels.ByType(RelSlide)
	if len(slides) != 1 {
		t.Fatalf("expected 1 slide relationship, got %d", len(slides))
	}
	if got := presRels.TargetPart(slides[0]); got != "ppt/slides/slide1.xml" {
		t.Errorf("slide target = %q", got)
	}

	// a part without a relationship part yields an empty set
	slideRels, err := r.Relationships("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatal(err)
	}
	if slideRels.Len() != 0 {
		t.Errorf("expected no slide relationships, got %d", slideRels.Len())
	}
}

func TestWriterErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	err := w.AddPart("ppt/presentation.xml", TypePresentation, nil)
	if err != nil {
		t.Fatal(err)
	}
	err = w.AddPart("/ppt/presentation.xml", TypePresentation, nil)
	if !errors.Is(err, ErrPartExists) {
		t.Errorf("expected ErrPartExists, got %v", err)
	}

	err = w.Close()
	if err != nil {
		t.Fatal(err)
	}
	err = w.AddPart("ppt/other.xml", TypeXML, nil)
	if err == nil {
		t.Error("expected error after Close")
	}
	err = w.Close()
	if err == nil {
		t.Error("expected error on second Close")
	}
}

func TestReaderMissingPart(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Part("ppt/presentation.xml")
	if !errors.Is(err, ErrNoPart) {
		t.Errorf("expected ErrNoPart, got %v", err)
	}
}

func TestReaderNotAZip(t *testing.T) {
	data := []byte("this is not a zip file")
	_, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err == nil {
		t.Error("expected error for non-zip input")
	}
}

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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRelationshipsDecode(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="theme/theme1.xml"/>
</Relationships>`)
	rr, err := decodeRelationships("ppt/presentation.xml", data)
	if err != nil {
		t.Fatal(err)
	}

	if rr.Len() != 3 {
		t.Fatalf("expected 3 relationships, got %d", rr.Len())
	}

	r, ok := rr.ByID("rId2")
	if !ok {
		t.Fatal("rId2 not found")
	}
	if r.Type != RelSlide {
		t.Errorf("wrong type %q", r.Type)
	}
	if got := rr.TargetPart(r); got != "ppt/slides/slide1.xml" {
		t.Errorf("TargetPart = %q", got)
	}

	slides := rr.ByType(RelSlide)
	if len(slides) != 1 || slides[0].ID != "rId2" {
		t.Errorf("ByType(RelSlide) = %v", slides)
	}

	// new IDs must not collide with decoded ones
	id := rr.Add(RelSlide, "slides/slide2.xml")
	if id != "rId4" {
		t.Errorf("allocated ID %q, expected rId4", id)
	}
}

func TestRelationshipsPut(t *testing.T) {
	rr := NewRelationships("ppt/presentation.xml")
	rr.Put(Relationship{ID: "rId7", Type: RelPresProps, Target: "presProps.xml"})

	r, ok := rr.ByID("rId7")
	if !ok || r.Target != "presProps.xml" {
		t.Fatalf("ByID(rId7) = %v, %t", r, ok)
	}

	// allocation must continue past the stored ID
	if id := rr.Add(RelSlide, "slides/slide1.xml"); id != "rId8" {
		t.Errorf("allocated ID %q, expected rId8", id)
	}

	// non-standard IDs are kept, but do not influence allocation
	rr.Put(Relationship{ID: "imageRel", Type: RelImage, Target: "media/image1.png"})
	if _, ok := rr.ByID("imageRel"); !ok {
		t.Error("imageRel not found")
	}
	if id := rr.Add(RelSlide, "slides/slide2.xml"); id != "rId9" {
		t.Errorf("allocated ID %q, expected rId9", id)
	}
}

func TestRelationshipsRoundTrip(t *testing.T) {
	rr := NewRelationships("")
	rr.Add(RelOfficeDocument, "ppt/presentation.xml")
	rr.Add(RelCoreProps, "docProps/core.xml")

	data, err := rr.Encode()
	if err != nil {
		t.Fatal(err)
	}
	rr2, err := decodeRelationships("", data)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(rr.All(), rr2.All()); d != "" {
		t.Errorf("relationships differ (-want +got):\n%s", d)
	}
}

func TestRelsPartName(t *testing.T) {
	cases := []struct {
		source   string
		expected string
	}{
		{"", "_rels/.rels"},
		{"ppt/presentation.xml", "ppt/_rels/presentation.xml.rels"},
		{"ppt/slides/slide1.xml", "ppt/slides/_rels/slide1.xml.rels"},
	}
	for _, test := range cases {
		if got := relsPartName(test.source); got != test.expected {
			t.Errorf("relsPartName(%q) = %q, expected %q",
				test.source, got, test.expected)
		}
	}
}

func TestTargetPartAbsolute(t *testing.T) {
	rr := NewRelationships("ppt/slides/slide1.xml")
	r := Relationship{ID: "rId1", Type: RelImage, Target: "/ppt/media/image1.png"}
	if got := rr.TargetPart(r); got != "ppt/media/image1.png" {
		t.Errorf("TargetPart = %q", got)
	}
	r2 := Relationship{ID: "rId2", Type: RelImage, Target: "../media/image2.png"}
	if got := rr.TargetPart(r2); got != "ppt/media/image2.png" {
		t.Errorf("TargetPart = %q", got)
	}
}

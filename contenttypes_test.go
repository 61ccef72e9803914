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

func TestContentTypesDecode(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Default Extension="PNG" ContentType="image/png"/>
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
  <Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
</Types>`)
	ct, err := decodeContentTypes(data)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		partName string
		expected string
	}{
		{"ppt/presentation.xml", TypePresentation},
		{"/ppt/presentation.xml", TypePresentation},
		{"ppt/slides/slide1.xml", TypeSlide},
		{"ppt/slides/slide2.xml", TypeXML},
		{"ppt/media/image1.png", "image/png"},
		{"ppt/media/image1.jpeg", ""},
		{"_rels/.rels", TypeRelationships},
	}
	for _, test := range cases {
		if got := ct.TypeOf(test.partName); got != test.expected {
			t.Errorf("TypeOf(%q) = %q, expected %q",
				test.partName, got, test.expected)
		}
	}
}

func TestContentTypesRoundTrip(t *testing.T) {
	ct := newContentTypes()
	ct.SetDefault("png", "image/png")
	ct.SetOverride("ppt/presentation.xml", TypePresentation)
	ct.SetOverride("/docProps/core.xml", TypeCoreProps)

	data, err := ct.Encode()
	if err != nil {
		t.Fatal(err)
	}
	ct2, err := decodeContentTypes(data)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(ct.defaults, ct2.defaults); d != "" {
		t.Errorf("defaults differ (-want +got):\n%s", d)
	}
	if d := cmp.Diff(ct.overrides, ct2.overrides); d != "" {
		t.Errorf("overrides differ (-want +got):\n%s", d)
	}
}

func TestContentTypesEncodeDeterministic(t *testing.T) {
	ct := newContentTypes()
	ct.SetOverride("ppt/slides/slide2.xml", TypeSlide)
	ct.SetOverride("ppt/slides/slide1.xml", TypeSlide)
	ct.SetOverride("ppt/presentation.xml", TypePresentation)

	first, err := ct.Encode()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		next, err := ct.Encode()
		if err != nil {
			t.Fatal(err)
		}
		if string(next) != string(first) {
			t.Fatal("Encode output is not deterministic")
		}
	}
}

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

// Package pptx implements the Open Packaging Conventions container used by
// PowerPoint presentations.
//
// A .pptx file is a zip archive holding XML "parts" together with a content
// type index ([Content_Types].xml) and relationship parts which link parts
// to each other.  This package gives access to the container level: reading
// and writing parts, content types and relationships.  The object model for
// the part payloads lives in the oxml package, and package presentation
// provides the high-level API for working with slides and shapes.
package pptx

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

// Package oxml contains the XML element types for the presentation parts
// of a .pptx package.
//
// Types named CT_* correspond to complex types of the OOXML schemas, and
// ST_* types to simple types.  Only the subset of the schemas needed for
// slides, shapes and document properties is covered.  Elements are bound
// with encoding/xml; on output, namespaces are declared per element rather
// than through prefixes, which is equivalent XML.
package oxml

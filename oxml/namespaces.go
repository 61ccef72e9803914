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

// Namespace URIs used by the presentation parts.
const (
	NSPresentation = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NSDrawing      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NSRel          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	NSCoreProps = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	NSDC        = "http://purl.org/dc/elements/1.1/"
	NSDCTerms   = "http://purl.org/dc/terms/"
	NSXSI       = "http://www.w3.org/2001/XMLSchema-instance"

	NSExtendedProps = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
)

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

package shapes

// ShapeType describes the category of a shape.
type ShapeType int

// The possible shape categories.
const (
	TypeUnknown ShapeType = iota
	TypeAutoShape
	TypeTextBox
	TypePlaceholder
	TypePicture
	TypeChart
	TypeTable
	TypeGraphicFrame
	TypeGroup
)

func (t ShapeType) String() string {
	switch t {
	case TypeAutoShape:
		return "AutoShape"
	case TypeTextBox:
		return "TextBox"
	case TypePlaceholder:
		return "Placeholder"
	case TypePicture:
		return "Picture"
	case TypeChart:
		return "Chart"
	case TypeTable:
		return "Table"
	case TypeGraphicFrame:
		return "GraphicFrame"
	case TypeGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

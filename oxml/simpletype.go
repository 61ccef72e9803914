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
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
)

// The ST_* types convert between XML attribute strings and Go values,
// validating on both directions.  Parsing is strict base 10: decimal
// fractions, hex forms and empty strings are rejected rather than
// accepted loosely.

var errEmptyAttr = errors.New("empty attribute value")

func parseInt(s string, bits int) (int64, error) {
	if s == "" {
		return 0, errEmptyAttr
	}
	return strconv.ParseInt(s, 10, bits)
}

func parseUint(s string, bits int) (uint64, error) {
	if s == "" {
		return 0, errEmptyAttr
	}
	return strconv.ParseUint(s, 10, bits)
}

// ST_Coordinate is a coordinate value in EMU.
type ST_Coordinate int64

// UnmarshalXMLAttr implements the xml.UnmarshalerAttr interface.
func (x *ST_Coordinate) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := parseInt(attr.Value, 64)
	if err != nil {
		return fmt.Errorf("%s=%q: invalid coordinate", attr.Name.Local, attr.Value)
	}
	*x = ST_Coordinate(v)
	return nil
}

// MarshalXMLAttr implements the xml.MarshalerAttr interface.
func (x ST_Coordinate) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: strconv.FormatInt(int64(x), 10)}, nil
}

// ST_PositiveCoordinate is a non-negative coordinate value in EMU.
type ST_PositiveCoordinate int64

// UnmarshalXMLAttr implements the xml.UnmarshalerAttr interface.
func (x *ST_PositiveCoordinate) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := parseInt(attr.Value, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("%s=%q: invalid positive coordinate", attr.Name.Local, attr.Value)
	}
	*x = ST_PositiveCoordinate(v)
	return nil
}

// MarshalXMLAttr implements the xml.MarshalerAttr interface.
func (x ST_PositiveCoordinate) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if x < 0 {
		return xml.Attr{}, fmt.Errorf("negative value %d for positive coordinate", int64(x))
	}
	return xml.Attr{Name: name, Value: strconv.FormatInt(int64(x), 10)}, nil
}

// ST_Angle is an angle in 60000ths of a degree.
type ST_Angle int32

// UnmarshalXMLAttr implements the xml.UnmarshalerAttr interface.
func (x *ST_Angle) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := parseInt(attr.Value, 32)
	if err != nil {
		return fmt.Errorf("%s=%q: invalid angle", attr.Name.Local, attr.Value)
	}
	*x = ST_Angle(v)
	return nil
}

// MarshalXMLAttr implements the xml.MarshalerAttr interface.
func (x ST_Angle) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if x == 0 {
		// rot="0" is the schema default and is left out
		return xml.Attr{}, nil
	}
	return xml.Attr{Name: name, Value: strconv.FormatInt(int64(x), 10)}, nil
}

// ST_DrawingElementID identifies a drawing element, unique within a slide.
type ST_DrawingElementID uint32

// UnmarshalXMLAttr implements the xml.UnmarshalerAttr interface.
func (x *ST_DrawingElementID) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := parseUint(attr.Value, 32)
	if err != nil {
		return fmt.Errorf("%s=%q: invalid drawing element ID", attr.Name.Local, attr.Value)
	}
	*x = ST_DrawingElementID(v)
	return nil
}

// MarshalXMLAttr implements the xml.MarshalerAttr interface.
func (x ST_DrawingElementID) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: strconv.FormatUint(uint64(x), 10)}, nil
}

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

package fonts

import (
	"bytes"
	"encoding/binary"
	"errors"
)

var errMalformedHead = errors.New("malformed head table")

// binaryHead is the binary layout of the head table.
type binaryHead struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64
	XMin               int16
	YMin               int16
	XMax               int16
	YMax               int16
	MacStyle           uint16
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   int16
	GlyphDataFormat    int16
}

const (
	headVersion = 0x00010000
	headMagic   = 0x5F0F3CF5
)

// decodeStyleFlags extracts the bold and italic flags from the data of
// an sfnt head table.
func decodeStyleFlags(data []byte) (bold, italic bool, err error) {
	var head binaryHead
	err = binary.Read(bytes.NewReader(data), binary.BigEndian, &head)
	if err != nil {
		return false, false, errMalformedHead
	}
	if head.Version != headVersion || head.MagicNumber != headMagic {
		return false, false, errMalformedHead
	}
	bold = head.MacStyle&(1<<0) != 0
	italic = head.MacStyle&(1<<1) != 0
	return bold, italic, nil
}

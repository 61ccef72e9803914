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
	"encoding/binary"
	"errors"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	errMalformedNames = errors.New("malformed name table")
	errNoFamilyName   = errors.New("no family name found in name table")
)

const (
	nameIDFamily            = 1
	nameIDTypographicFamily = 16
)

// decodeFamilyName extracts the typeface family name from the data of
// an sfnt name table.  The typographic family name (name ID 16) is
// preferred over the legacy family name (name ID 1), and Windows
// records over Macintosh ones.
func decodeFamilyName(data []byte) (string, error) {
	if len(data) < 6 {
		return "", errMalformedNames
	}
	numRec := int(binary.BigEndian.Uint16(data[2:]))
	storageOffset := int(binary.BigEndian.Uint16(data[4:]))

	const recBase = 6
	if recBase+12*numRec > len(data) {
		numRec = (len(data) - recBase) / 12
	}

	best := ""
	bestScore := -1
	for i := 0; i < numRec; i++ {
		rec := data[recBase+i*12:]
		platformID := binary.BigEndian.Uint16(rec)
		encodingID := binary.BigEndian.Uint16(rec[2:])
		languageID := binary.BigEndian.Uint16(rec[4:])
		nameID := binary.BigEndian.Uint16(rec[6:])
		length := int(binary.BigEndian.Uint16(rec[8:]))
		offset := int(binary.BigEndian.Uint16(rec[10:]))

		if nameID != nameIDFamily && nameID != nameIDTypographicFamily {
			continue
		}
		start := storageOffset + offset
		end := start + length
		if end > len(data) {
			continue
		}
		raw := data[start:end]

		var s string
		switch {
		case platformID == 3 && (encodingID == 1 || encodingID == 10):
			s = decodeUTF16(raw)
		case platformID == 0:
			// Unicode platform, always UTF-16BE
			s = decodeUTF16(raw)
		case platformID == 1 && encodingID == 0:
			s = decodeMacRoman(raw)
		default:
			continue
		}
		if s == "" {
			continue
		}

		score := 0
		if nameID == nameIDTypographicFamily {
			score += 8
		}
		switch platformID {
		case 3:
			score += 4
			if languageID == 0x0409 { // American English
				score++
			}
		case 0:
			score += 2
		}
		if score > bestScore {
			bestScore = score
			best = s
		}
	}

	if best == "" {
		return "", errNoFamilyName
	}
	return best, nil
}

func decodeUTF16(raw []byte) string {
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := dec.Bytes(raw)
	if err != nil {
		return ""
	}
	return string(s)
}

func decodeMacRoman(raw []byte) string {
	s, err := charmap.Macintosh.NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	return string(s)
}

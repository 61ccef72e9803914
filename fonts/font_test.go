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
	"testing"
	"unicode/utf16"
)

// nameRecord describes one entry for makeNameTable.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	value      string
}

// makeNameTable assembles a format 0 sfnt name table.
func makeNameTable(records ...nameRecord) []byte {
	storage := &bytes.Buffer{}
	recs := &bytes.Buffer{}
	for _, r := range records {
		var encoded []byte
		if r.platformID == 1 {
			encoded = []byte(r.value) // ASCII subset of Mac Roman
		} else {
			for _, u := range utf16.Encode([]rune(r.value)) {
				encoded = append(encoded, byte(u>>8), byte(u))
			}
		}
		offset := storage.Len()
		storage.Write(encoded)

		for _, v := range []uint16{
			r.platformID, r.encodingID, r.languageID, r.nameID,
			uint16(len(encoded)), uint16(offset),
		} {
			binary.Write(recs, binary.BigEndian, v)
		}
	}

	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint16(0)) // format
	binary.Write(buf, binary.BigEndian, uint16(len(records)))
	binary.Write(buf, binary.BigEndian, uint16(6+12*len(records)))
	buf.Write(recs.Bytes())
	buf.Write(storage.Bytes())
	return buf.Bytes()
}

// makeHeadTable assembles an sfnt head table with the given style bits.
func makeHeadTable(bold, italic bool) []byte {
	var macStyle uint16
	if bold {
		macStyle |= 1 << 0
	}
	if italic {
		macStyle |= 1 << 1
	}
	head := binaryHead{
		Version:       0x00010000,
		MagicNumber:   headMagic,
		UnitsPerEm:    1000,
		MacStyle:      macStyle,
		LowestRecPPEM: 8,
	}
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, head)
	return buf.Bytes()
}

// makeFont assembles a minimal TrueType font file containing only the
// head and name tables.
func makeFont(family string, bold, italic bool) []byte {
	tables := []struct {
		tag  string
		data []byte
	}{
		{"head", makeHeadTable(bold, italic)},
		{"name", makeNameTable(
			nameRecord{3, 1, 0x0409, nameIDFamily, family},
		)},
	}

	numTables := uint16(len(tables))
	entrySelector := uint16(0)
	for 1<<(entrySelector+1) <= numTables {
		entrySelector++
	}
	searchRange := uint16(16) << entrySelector

	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(0x00010000)) // scaler type
	binary.Write(buf, binary.BigEndian, numTables)
	binary.Write(buf, binary.BigEndian, searchRange)
	binary.Write(buf, binary.BigEndian, entrySelector)
	binary.Write(buf, binary.BigEndian, numTables*16-searchRange)

	offset := uint32(12 + 16*len(tables))
	body := &bytes.Buffer{}
	for _, tab := range tables {
		data := tab.data
		for len(data)%4 != 0 {
			data = append(data, 0)
		}
		var sum uint32
		for i := 0; i < len(data); i += 4 {
			sum += binary.BigEndian.Uint32(data[i:])
		}

		buf.WriteString(tab.tag)
		binary.Write(buf, binary.BigEndian, sum)
		binary.Write(buf, binary.BigEndian, offset)
		binary.Write(buf, binary.BigEndian, uint32(len(tab.data)))

		body.Write(data)
		offset += uint32(len(data))
	}
	buf.Write(body.Bytes())
	return buf.Bytes()
}

func TestDecodeFamilyName(t *testing.T) {
	cases := []struct {
		desc    string
		records []nameRecord
		want    string
	}{
		{
			desc: "windows record",
			records: []nameRecord{
				{3, 1, 0x0409, nameIDFamily, "Calibri"},
			},
			want: "Calibri",
		},
		{
			desc: "mac record",
			records: []nameRecord{
				{1, 0, 0, nameIDFamily, "Calibri"},
			},
			want: "Calibri",
		},
		{
			desc: "typographic family preferred",
			records: []nameRecord{
				{3, 1, 0x0409, nameIDFamily, "Calibri Light"},
				{3, 1, 0x0409, nameIDTypographicFamily, "Calibri"},
			},
			want: "Calibri",
		},
		{
			desc: "windows preferred over mac",
			records: []nameRecord{
				{1, 0, 0, nameIDFamily, "mac name"},
				{3, 1, 0x0409, nameIDFamily, "windows name"},
			},
			want: "windows name",
		},
		{
			desc: "other name IDs ignored",
			records: []nameRecord{
				{3, 1, 0x0409, 0, "copyright blurb"},
				{3, 1, 0x0409, nameIDFamily, "Calibri"},
				{3, 1, 0x0409, 4, "Calibri Regular"},
			},
			want: "Calibri",
		},
		{
			desc: "non-ASCII family name",
			records: []nameRecord{
				{3, 1, 0x0407, nameIDFamily, "Füßchen"},
			},
			want: "Füßchen",
		},
	}
	for _, test := range cases {
		data := makeNameTable(test.records...)
		got, err := decodeFamilyName(data)
		if err != nil {
			t.Errorf("%s: %v", test.desc, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %q, want %q", test.desc, got, test.want)
		}
	}
}

func TestDecodeFamilyNameErrors(t *testing.T) {
	if _, err := decodeFamilyName(nil); err == nil {
		t.Error("empty table accepted")
	}
	if _, err := decodeFamilyName([]byte{0, 0, 0, 0, 0, 0}); err == nil {
		t.Error("table without family name accepted")
	}

	// records pointing outside the table must be skipped
	data := makeNameTable(nameRecord{3, 1, 0x0409, nameIDFamily, "Calibri"})
	_, err := decodeFamilyName(data[:len(data)-2])
	if err != errNoFamilyName {
		t.Errorf("got %v", err)
	}
}

func TestDecodeStyleFlags(t *testing.T) {
	for _, bold := range []bool{false, true} {
		for _, italic := range []bool{false, true} {
			gotBold, gotItalic, err := decodeStyleFlags(makeHeadTable(bold, italic))
			if err != nil {
				t.Fatal(err)
			}
			if gotBold != bold || gotItalic != italic {
				t.Errorf("bold=%t italic=%t: got %t, %t",
					bold, italic, gotBold, gotItalic)
			}
		}
	}

	if _, _, err := decodeStyleFlags([]byte{1, 2, 3}); err == nil {
		t.Error("truncated head table accepted")
	}

	bad := makeHeadTable(false, false)
	bad[12] = 0 // corrupt the magic number
	if _, _, err := decodeStyleFlags(bad); err == nil {
		t.Error("corrupted head table accepted")
	}

	bad = makeHeadTable(false, false)
	bad[1] = 2 // version 2.0 does not exist
	if _, _, err := decodeStyleFlags(bad); err == nil {
		t.Error("unknown head table version accepted")
	}
}

func TestReadFont(t *testing.T) {
	data := makeFont("Test Family", true, false)
	info, err := Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if info.Family != "Test Family" {
		t.Errorf("Family = %q", info.Family)
	}
	if !info.Bold || info.Italic {
		t.Errorf("Bold = %t, Italic = %t", info.Bold, info.Italic)
	}
}

func TestReadNotAFont(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("this is not a font file")))
	if err == nil {
		t.Error("junk data accepted")
	}
}

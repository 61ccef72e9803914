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

package measure

import (
	"math"
	"testing"
)

func TestLengthConstructors(t *testing.T) {
	cases := []struct {
		got      Length
		expected int64
	}{
		{Emu(914400), 914400},
		{Inch(1), 914400},
		{Inch(0.5), 457200},
		{Pt(1), 12700},
		{Pt(72), 914400},
		{Cm(1), 360000},
		{Mm(1), 36000},
		{Mm(25.4), 914400},
	}
	for _, test := range cases {
		if test.got.Emu() != test.expected {
			t.Errorf("got %d EMU, expected %d", test.got.Emu(), test.expected)
		}
	}
}

func TestLengthAccessors(t *testing.T) {
	x := Inch(2)
	if got := x.Inches(); got != 2 {
		t.Errorf("Inches() = %g", got)
	}
	if got := x.Points(); got != 144 {
		t.Errorf("Points() = %g", got)
	}
	if got := x.Centimeters(); math.Abs(got-5.08) > 1e-9 {
		t.Errorf("Centimeters() = %g", got)
	}
	if got := x.Millimeters(); math.Abs(got-50.8) > 1e-9 {
		t.Errorf("Millimeters() = %g", got)
	}
}

func TestAngleNormalization(t *testing.T) {
	cases := []struct {
		deg      float64
		expected float64
	}{
		{0, 0},
		{45, 45},
		{-45, 315},
		{360, 0},
		{540, 180},
		{-360.5, 359.5},
	}
	for _, test := range cases {
		a := FromDegrees(test.deg)
		if got := a.Degrees(); math.Abs(got-test.expected) > 1e-9 {
			t.Errorf("FromDegrees(%g).Degrees() = %g, expected %g",
				test.deg, got, test.expected)
		}
	}
}

func TestAngleResolution(t *testing.T) {
	// the file format stores 60000ths of a degree exactly
	a := FromDegrees(33.4567)
	if int32(a) != 2007402 {
		t.Errorf("FromDegrees(33.4567) = %d units", int32(a))
	}
}

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

// Package measure provides the length and angle units used by the
// presentation file format.
//
// Coordinates and extents are stored in the XML as English Metric Units
// (EMU); there are 914400 EMU per inch.  Rotation angles are stored in
// 60000ths of a degree.
package measure

import (
	"fmt"
	"math"
)

// Length is a distance in English Metric Units.
type Length int64

// One inch, and its subdivisions, expressed in EMU.
const (
	EmuPerInch Length = 914400
	EmuPerCm   Length = 360000
	EmuPerMm   Length = 36000
	EmuPerPt   Length = 12700
)

// Emu returns x EMU as a Length.
func Emu(x int64) Length {
	return Length(x)
}

// Inch returns a length of x inches.
func Inch(x float64) Length {
	return Length(math.Round(x * float64(EmuPerInch)))
}

// Pt returns a length of x points (1/72 inch).
func Pt(x float64) Length {
	return Length(math.Round(x * float64(EmuPerPt)))
}

// Cm returns a length of x centimeters.
func Cm(x float64) Length {
	return Length(math.Round(x * float64(EmuPerCm)))
}

// Mm returns a length of x millimeters.
func Mm(x float64) Length {
	return Length(math.Round(x * float64(EmuPerMm)))
}

// Emu returns the length as an exact number of EMU.
func (x Length) Emu() int64 {
	return int64(x)
}

// Inches returns the length in inches.
func (x Length) Inches() float64 {
	return float64(x) / float64(EmuPerInch)
}

// Points returns the length in points.
func (x Length) Points() float64 {
	return float64(x) / float64(EmuPerPt)
}

// Centimeters returns the length in centimeters.
func (x Length) Centimeters() float64 {
	return float64(x) / float64(EmuPerCm)
}

// Millimeters returns the length in millimeters.
func (x Length) Millimeters() float64 {
	return float64(x) / float64(EmuPerMm)
}

func (x Length) String() string {
	return fmt.Sprintf("%demu", int64(x))
}

// Angle is a rotation in 60000ths of a degree, measured clockwise.
type Angle int32

const degreeUnits = 60000

// FromDegrees converts clockwise degrees to an Angle.  The value is
// normalized into the range [0°, 360°), so that assigning -45 yields the
// same angle as assigning 315.
func FromDegrees(deg float64) Angle {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return Angle(math.Round(deg * degreeUnits))
}

// Degrees returns the angle in clockwise degrees, in the range [0, 360).
func (a Angle) Degrees() float64 {
	return float64(a) / degreeUnits
}

func (a Angle) String() string {
	return fmt.Sprintf("%g°", a.Degrees())
}

// seehuhn.de/go/fontc - compile font sources into OpenType/CFF fonts
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

// Package maxp encodes "maxp" tables for fonts with CFF outlines.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
package maxp

import (
	"seehuhn.de/go/fontc/fonterror"
)

// Info contains information from the "maxp" table.
type Info struct {
	// NumGlyphs is number of glyphs in the font, in the range 1, ..., 65535.
	NumGlyphs int
}

// Encode returns the binary form of a version 0.5 "maxp" table.
// This is the version used by fonts with CFF outlines.
func (info *Info) Encode() ([]byte, error) {
	n := info.NumGlyphs
	if n < 1 || n > 65535 {
		return nil, &fonterror.InvalidFontError{
			SubSystem: "sfnt/maxp",
			Reason:    "invalid number of glyphs",
		}
	}
	return []byte{0x00, 0x00, 0x50, 0x00, byte(n >> 8), byte(n)}, nil
}

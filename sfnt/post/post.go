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

// Package post encodes the "post" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
//
// Only version 3.0 of the table is written.  This version contains no glyph
// names; in fonts with CFF outlines the names are stored in the CFF table.
package post

import (
	"bytes"
	"encoding/binary"
	"math"

	"seehuhn.de/go/postscript/funit"
)

// Info contains information for the "post" table.
type Info struct {
	ItalicAngle        float64     // Italic angle in degrees
	UnderlinePosition  funit.Int16 // Underline position (negative)
	UnderlineThickness funit.Int16 // Underline thickness
	IsFixedPitch       bool
}

// Encode encodes the "post" table.
func (info *Info) Encode() []byte {
	header := &postEnc{
		Version:            0x00030000,
		ItalicAngle:        int32(math.Floor(info.ItalicAngle*65536 + 0.5)),
		UnderlinePosition:  info.UnderlinePosition,
		UnderlineThickness: info.UnderlineThickness,
	}
	if info.IsFixedPitch {
		header.IsFixedPitch = 1
	}
	buf := bytes.NewBuffer(make([]byte, 0, postLength))
	_ = binary.Write(buf, binary.BigEndian, header)
	return buf.Bytes()
}

type postEnc struct {
	Version            uint32
	ItalicAngle        int32
	UnderlinePosition  funit.Int16
	UnderlineThickness funit.Int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}

const postLength = 32

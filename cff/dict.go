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

package cff

import (
	"bytes"
	"fmt"
	"math"
	"sort"
)

// cffDict maps DICT operators to their operands.  Operands are int32,
// float64 or string values; strings are replaced by their SIDs when the
// DICT is encoded.
type cffDict map[dictOp][]any

func (d cffDict) keys() []dictOp {
	keys := make([]dictOp, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func (d cffDict) setInt(op dictOp, x int32) {
	d[op] = []any{x}
}

func (d cffDict) setNumber(op dictOp, x float64) {
	d[op] = []any{x}
}

// setDelta stores an array of numbers in delta-encoded form.
func (d cffDict) setDelta(op dictOp, xx []float64) {
	args := make([]any, len(xx))
	prev := 0.0
	for i, x := range xx {
		args[i] = x - prev
		prev = x
	}
	d[op] = args
}

func (d cffDict) encode(ss *cffStrings) []byte {
	res := &bytes.Buffer{}
	for _, op := range d.keys() {
		for _, arg := range d[op] {
			switch a := arg.(type) {
			case int32:
				encodeDictInt(res, a)
			case float64:
				if a == math.Trunc(a) && math.Abs(a) < 1<<31 {
					encodeDictInt(res, int32(a))
				} else {
					encodeDictFloat(res, a)
				}
			case string:
				encodeDictInt(res, ss.lookup(a))
			case bool:
				var x int32
				if a {
					x = 1
				}
				encodeDictInt(res, x)
			}
		}
		if op > 255 {
			res.WriteByte(12)
		}
		res.WriteByte(byte(op))
	}
	return res.Bytes()
}

func encodeDictInt(res *bytes.Buffer, a int32) {
	switch {
	case a >= -107 && a <= 107:
		res.WriteByte(byte(a + 139))
	case a >= 108 && a <= 1131:
		// a = (b0–247)*256+b1+108
		a -= 108
		res.Write([]byte{byte(a>>8 + 247), byte(a)})
	case a >= -1131 && a <= -108:
		// a = -(b0–251)*256-b1-108
		a = -108 - a
		res.Write([]byte{byte(a>>8 + 251), byte(a)})
	case a >= -32768 && a <= 32767:
		a16 := uint16(a)
		res.Write([]byte{28, byte(a16 >> 8), byte(a16)})
	default:
		a32 := uint32(a)
		res.Write([]byte{29, byte(a32 >> 24), byte(a32 >> 16), byte(a32 >> 8), byte(a32)})
	}
}

// encodeDictFloat writes a real number operand, using the nibble
// encoding from section 4 of the CFF specification.
func encodeDictFloat(res *bytes.Buffer, a float64) {
	s := fmt.Sprintf("%g", a)

	var nibbles []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			nibbles = append(nibbles, c-'0')
		case c == '.':
			nibbles = append(nibbles, 0x0a)
		case c == 'e' && i+1 < len(s) && s[i+1] == '-':
			nibbles = append(nibbles, 0x0c)
			i++
		case c == 'e':
			nibbles = append(nibbles, 0x0b)
			if i+1 < len(s) && s[i+1] == '+' {
				i++
			}
		case c == '-':
			nibbles = append(nibbles, 0x0e)
		}
	}
	nibbles = append(nibbles, 0x0f)
	if len(nibbles)%2 != 0 {
		nibbles = append(nibbles, 0x0f)
	}

	res.WriteByte(30)
	for i := 0; i < len(nibbles); i += 2 {
		res.WriteByte(nibbles[i]<<4 | nibbles[i+1])
	}
}

type dictOp uint16

func (d dictOp) String() string {
	if name, ok := dictOpNames[d]; ok {
		return name
	}
	if d < 256 {
		return fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("%d %d", d>>8, d&0xff)
}

const (
	// top DICT operators
	opVersion            dictOp = 0x0000
	opNotice             dictOp = 0x0001
	opFullName           dictOp = 0x0002
	opFamilyName         dictOp = 0x0003
	opWeight             dictOp = 0x0004
	opFontBBox           dictOp = 0x0005
	opCharset            dictOp = 0x000F
	opCharStrings        dictOp = 0x0011
	opPrivate            dictOp = 0x0012
	opCopyright          dictOp = 0x0C00
	opIsFixedPitch       dictOp = 0x0C01
	opItalicAngle        dictOp = 0x0C02
	opUnderlinePosition  dictOp = 0x0C03
	opUnderlineThickness dictOp = 0x0C04
	opFontMatrix         dictOp = 0x0C07

	// private DICT operators
	opBlueValues    dictOp = 0x0006
	opOtherBlues    dictOp = 0x0007
	opStdHW         dictOp = 0x000A
	opStdVW         dictOp = 0x000B
	opDefaultWidthX dictOp = 0x0014
	opNominalWidthX dictOp = 0x0015
	opBlueScale     dictOp = 0x0C09
	opBlueShift     dictOp = 0x0C0A
	opBlueFuzz      dictOp = 0x0C0B
	opStemSnapH     dictOp = 0x0C0C
	opStemSnapV     dictOp = 0x0C0D
	opForceBold     dictOp = 0x0C0E
)

var dictOpNames = map[dictOp]string{
	opVersion:            "Version",
	opNotice:             "Notice",
	opFullName:           "FullName",
	opFamilyName:         "FamilyName",
	opWeight:             "Weight",
	opFontBBox:           "FontBBox",
	opCharset:            "charset",
	opCharStrings:        "CharStrings",
	opPrivate:            "Private",
	opCopyright:          "Copyright",
	opIsFixedPitch:       "isFixedPitch",
	opItalicAngle:        "ItalicAngle",
	opUnderlinePosition:  "UnderlinePosition",
	opUnderlineThickness: "UnderlineThickness",
	opFontMatrix:         "FontMatrix",
	opBlueValues:         "BlueValues",
	opOtherBlues:         "OtherBlues",
	opStdHW:              "StdHW",
	opStdVW:              "StdVW",
	opDefaultWidthX:      "defaultWidthX",
	opNominalWidthX:      "nominalWidthX",
	opBlueScale:          "BlueScale",
	opBlueShift:          "BlueShift",
	opBlueFuzz:           "BlueFuzz",
	opStemSnapH:          "StemSnapH",
	opStemSnapV:          "StemSnapV",
	opForceBold:          "ForceBold",
}

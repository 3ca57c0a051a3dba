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

// Package hmtx encodes the "hhea" and "hmtx" tables.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
//
// If a glyph has no contours, xMax/xMin are not defined. The left side
// bearing indicated in the 'hmtx' table for such glyphs should be zero.
//
// The right side bearing is always derived using advance width and left side
// bearing values from the 'hmtx' table, plus bounding-box information in the
// glyph description:
//
//	rsb = aw - (lsb + xMax - xMin)
package hmtx

import (
	"bytes"
	"encoding/binary"

	"seehuhn.de/go/postscript/funit"
)

// Metric is the horizontal metric of a single glyph.
type Metric struct {
	Advance uint16
	LSB     funit.Int16
}

// Hhea contains the information stored in the "hhea" table.
type Hhea struct {
	Ascent  funit.Int16
	Descent funit.Int16
	LineGap funit.Int16

	AdvanceWidthMax     uint16
	MinLeftSideBearing  funit.Int16
	MinRightSideBearing funit.Int16
	XMaxExtent          funit.Int16

	CaretSlopeRise int16
	CaretSlopeRun  int16
	CaretOffset    funit.Int16
}

// NumLongMetrics returns the number of entries in the hmtx table which
// store an advance width.  Trailing glyphs which repeat the last stored
// advance width only store their left side bearing.
func NumLongMetrics(metrics []Metric) int {
	n := len(metrics)
	for n > 1 && metrics[n-1].Advance == metrics[n-2].Advance {
		n--
	}
	return n
}

// Encode returns the binary representation of the "hhea" table.
// The argument is the number of long horizontal metrics, as returned by
// NumLongMetrics.
func (info *Hhea) Encode(numLongMetrics int) []byte {
	enc := &binaryHhea{
		Version:             0x00010000, // 1.0
		Ascent:              info.Ascent,
		Descent:             info.Descent,
		LineGap:             info.LineGap,
		AdvanceWidthMax:     info.AdvanceWidthMax,
		MinLeftSideBearing:  info.MinLeftSideBearing,
		MinRightSideBearing: info.MinRightSideBearing,
		XMaxExtent:          info.XMaxExtent,
		CaretSlopeRise:      info.CaretSlopeRise,
		CaretSlopeRun:       info.CaretSlopeRun,
		CaretOffset:         info.CaretOffset,
		NumOfLongHorMetrics: uint16(numLongMetrics),
	}
	buf := bytes.NewBuffer(make([]byte, 0, hheaLength))
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

// Encode returns the binary representation of the "hmtx" table.
func Encode(metrics []Metric) []byte {
	numGlyphs := len(metrics)
	numLong := NumLongMetrics(metrics)

	buf := bytes.NewBuffer(make([]byte, 0, 4*numLong+2*(numGlyphs-numLong)))
	for i, m := range metrics {
		if i < numLong {
			buf.Write([]byte{byte(m.Advance >> 8), byte(m.Advance)})
		}
		buf.Write([]byte{byte(m.LSB >> 8), byte(m.LSB)})
	}
	return buf.Bytes()
}

type binaryHhea struct {
	Version             uint32
	Ascent              funit.Int16
	Descent             funit.Int16
	LineGap             funit.Int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  funit.Int16
	MinRightSideBearing funit.Int16
	XMaxExtent          funit.Int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         funit.Int16
	_                   [4]int16 // reserved
	MetricDataFormat    int16
	NumOfLongHorMetrics uint16
}

const hheaLength = 36

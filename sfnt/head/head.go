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

// Package head encodes the OpenType "head" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"seehuhn.de/go/postscript/funit"
)

// Info contains the information stored in the "head" table.
type Info struct {
	FontRevision Version
	Flags        uint16
	UnitsPerEm   uint16
	Created      time.Time
	Modified     time.Time

	XMin, YMin, XMax, YMax funit.Int16

	MacStyle          MacStyle
	LowestRecPPEM     uint16 // smallest readable size in pixels
	FontDirectionHint int16
}

// MacStyle is the bit field stored in the macStyle field of the table.
type MacStyle uint16

// These are the bits used by the compiler.
const (
	MacStyleBold   MacStyle = 1 << 0
	MacStyleItalic MacStyle = 1 << 1
)

// Flags used by the compiler.
const (
	FlagBaselineAtY0 uint16 = 1 << 0
	FlagLSBAtX0      uint16 = 1 << 1
)

// Encode returns the binary representation of the head table.
// The checkSumAdjustment field is left as zero; it is filled in
// when the font file is written.
func (info *Info) Encode() []byte {
	enc := &binaryHead{
		Version:           0x00010000,
		FontRevision:      uint32(info.FontRevision),
		MagicNumber:       0x5F0F3CF5,
		Flags:             info.Flags,
		UnitsPerEm:        info.UnitsPerEm,
		Created:           encodeTime(info.Created),
		Modified:          encodeTime(info.Modified),
		XMin:              info.XMin,
		YMin:              info.YMin,
		XMax:              info.XMax,
		YMax:              info.YMax,
		MacStyle:          uint16(info.MacStyle),
		LowestRecPPEM:     info.LowestRecPPEM,
		FontDirectionHint: info.FontDirectionHint,
	}

	buf := bytes.NewBuffer(make([]byte, 0, headLength))
	_ = binary.Write(buf, binary.BigEndian, enc)
	return buf.Bytes()
}

// PatchChecksum updates the checkSumAdjustment field of an encoded head
// table.  The argument is the checksum of the entire font file, computed
// while the field was zero.
func PatchChecksum(head []byte, checksum uint32) {
	binary.BigEndian.PutUint32(head[8:12], 0xB1B0AFBA-checksum)
}

// ClearChecksum sets the checkSumAdjustment field of an encoded head table
// to zero.
func ClearChecksum(head []byte) {
	binary.BigEndian.PutUint32(head[8:12], 0)
}

type binaryHead struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64

	XMin funit.Int16
	YMin funit.Int16
	XMax funit.Int16
	YMax funit.Int16

	MacStyle uint16

	LowestRecPPEM     uint16
	FontDirectionHint int16

	IndexToLocFormat int16
	GlyphDataFormat  int16
}

const headLength = 54

// Version represents the font revision in 16.16 fixed point format.
type Version uint32

// VersionFromFloat converts a version number like 1.004 to 16.16 fixed
// point format, rounding to the nearest representable value.
func VersionFromFloat(x float64) Version {
	return Version(int32(math.Floor(x*65536 + 0.5)))
}

func (v Version) String() string {
	return fmt.Sprintf("%.03f", float64(v)/65536)
}

// encodeTime converts t to seconds since the start of 1904.
// The zero time is encoded as 0.
func encodeTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix() - zeroTime
}

var zeroTime int64 = -2082844800 // start of January 1904 in GMT/UTC time zone

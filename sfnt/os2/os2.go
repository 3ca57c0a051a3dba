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

// Package os2 encodes the "OS/2" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
package os2

import (
	"bytes"
	"encoding/binary"

	"seehuhn.de/go/postscript/funit"
)

// Info contains the information stored in a version 4 "OS/2" table.
type Info struct {
	AvgCharWidth funit.Int16
	WeightClass  Weight
	WidthClass   Width
	PermUse      Permissions

	SubscriptXSize     funit.Int16
	SubscriptYSize     funit.Int16
	SubscriptXOffset   funit.Int16
	SubscriptYOffset   funit.Int16
	SuperscriptXSize   funit.Int16
	SuperscriptYSize   funit.Int16
	SuperscriptXOffset funit.Int16
	SuperscriptYOffset funit.Int16
	StrikeoutSize      funit.Int16
	StrikeoutPosition  funit.Int16

	FamilyClass int16
	Panose      [10]byte

	// UnicodeRange holds the bits 0-127 of ulUnicodeRange1..4.
	UnicodeRange [4]uint32

	Vendor    string
	Selection Selection

	FirstCharIndex uint16
	LastCharIndex  uint16

	TypoAscender  funit.Int16
	TypoDescender funit.Int16
	TypoLineGap   funit.Int16
	WinAscent     uint16
	WinDescent    uint16 // positive

	// CodePageRange holds the bits 0-63 of ulCodePageRange1..2.
	CodePageRange [2]uint32

	XHeight     funit.Int16
	CapHeight   funit.Int16
	DefaultChar uint16
	BreakChar   uint16
	MaxContext  uint16
}

// Weight indicates the visual weight of the characters in a font.
type Weight uint16

// Pre-defined weight classes.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Width indicates the aspect ratio of the characters in a font.
type Width uint16

// WidthNormal is the width class of fonts with normal aspect ratio.
const WidthNormal Width = 5

// Permissions describes the rights to embed and use a font.
type Permissions uint16

// These are the fsType values the compiler can produce.
const (
	PermInstall    Permissions = 0      // bits 0-3 unset
	PermRestricted Permissions = 1 << 1 // must not be modified, embedded or exchanged
	PermView       Permissions = 1 << 2 // may be embedded for preview and printing
	PermEdit       Permissions = 1 << 3 // may be embedded and temporarily loaded on other systems
)

// Selection is the fsSelection bit field.
type Selection uint16

// These are the fsSelection bits used by the compiler.
const (
	SelectionItalic         Selection = 1 << 0
	SelectionBold           Selection = 1 << 5
	SelectionRegular        Selection = 1 << 6
	SelectionUseTypoMetrics Selection = 1 << 7
)

// Encode returns the binary representation of the table.
func (info *Info) Encode() []byte {
	vendor := [4]byte{' ', ' ', ' ', ' '}
	copy(vendor[:], info.Vendor)

	buf := bytes.NewBuffer(make([]byte, 0, os2Length))
	v0 := &v0Data{
		Version:            4,
		AvgCharWidth:       info.AvgCharWidth,
		WeightClass:        uint16(info.WeightClass),
		WidthClass:         uint16(info.WidthClass),
		Type:               uint16(info.PermUse),
		SubscriptXSize:     info.SubscriptXSize,
		SubscriptYSize:     info.SubscriptYSize,
		SubscriptXOffset:   info.SubscriptXOffset,
		SubscriptYOffset:   info.SubscriptYOffset,
		SuperscriptXSize:   info.SuperscriptXSize,
		SuperscriptYSize:   info.SuperscriptYSize,
		SuperscriptXOffset: info.SuperscriptXOffset,
		SuperscriptYOffset: info.SuperscriptYOffset,
		StrikeoutSize:      info.StrikeoutSize,
		StrikeoutPosition:  info.StrikeoutPosition,
		FamilyClass:        info.FamilyClass,
		Panose:             info.Panose,
		UnicodeRange:       info.UnicodeRange,
		VendID:             vendor,
		Selection:          uint16(info.Selection),
		FirstCharIndex:     info.FirstCharIndex,
		LastCharIndex:      info.LastCharIndex,
	}
	_ = binary.Write(buf, binary.BigEndian, v0)

	v0ms := &v0MsData{
		TypoAscender:  info.TypoAscender,
		TypoDescender: info.TypoDescender,
		TypoLineGap:   info.TypoLineGap,
		WinAscent:     info.WinAscent,
		WinDescent:    info.WinDescent,
	}
	_ = binary.Write(buf, binary.BigEndian, v0ms)

	_ = binary.Write(buf, binary.BigEndian, info.CodePageRange)

	v2 := &v2Data{
		XHeight:     info.XHeight,
		CapHeight:   info.CapHeight,
		DefaultChar: info.DefaultChar,
		BreakChar:   info.BreakChar,
		MaxContext:  info.MaxContext,
	}
	_ = binary.Write(buf, binary.BigEndian, v2)

	return buf.Bytes()
}

type v0Data struct {
	Version            uint16
	AvgCharWidth       funit.Int16
	WeightClass        uint16
	WidthClass         uint16
	Type               uint16
	SubscriptXSize     funit.Int16
	SubscriptYSize     funit.Int16
	SubscriptXOffset   funit.Int16
	SubscriptYOffset   funit.Int16
	SuperscriptXSize   funit.Int16
	SuperscriptYSize   funit.Int16
	SuperscriptXOffset funit.Int16
	SuperscriptYOffset funit.Int16
	StrikeoutSize      funit.Int16
	StrikeoutPosition  funit.Int16
	FamilyClass        int16
	Panose             [10]byte
	UnicodeRange       [4]uint32
	VendID             [4]byte
	Selection          uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16
}

type v0MsData struct {
	TypoAscender  funit.Int16
	TypoDescender funit.Int16
	TypoLineGap   funit.Int16
	WinAscent     uint16
	WinDescent    uint16
}

type v2Data struct {
	XHeight     funit.Int16
	CapHeight   funit.Int16
	DefaultChar uint16
	BreakChar   uint16
	MaxContext  uint16
}

const os2Length = 96

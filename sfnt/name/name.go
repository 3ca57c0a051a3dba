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

// Package name encodes OpenType "name" tables.
// These tables contain localized strings associated with a font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"sort"
	"strconv"

	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/fontc/fonterror"
)

// ID identifies a string in the name table.
type ID uint16

// These are the name IDs written by the compiler.
const (
	Copyright            ID = 0
	Family               ID = 1
	Subfamily            ID = 2
	UniqueID             ID = 3
	FullName             ID = 4
	Version              ID = 5
	PostScriptName       ID = 6
	Trademark            ID = 7
	Manufacturer         ID = 8
	Designer             ID = 9
	Description          ID = 10
	VendorURL            ID = 11
	DesignerURL          ID = 12
	License              ID = 13
	LicenseURL           ID = 14
	TypographicFamily    ID = 16
	TypographicSubfamily ID = 17
)

// Platform, encoding and language IDs used by the compiler.
const (
	PlatformUnicode = 0
	PlatformWindows = 3

	EncodingWindowsBMP  = 1  // Unicode BMP
	EncodingWindowsFull = 10 // Unicode full repertoire

	LanguageEnUS = 0x0409
)

// Record is one entry of the name table.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     ID
	Value      string
}

// Info contains the records of a name table.
type Info struct {
	Records []Record
}

// Encode converts a "name" table into its binary form.
// Records are sorted as required by the OpenType format; the strings of
// platform 0 and 3 records are encoded as UTF-16BE.
func (info *Info) Encode() ([]byte, error) {
	type recInfo struct {
		Record
		offset uint16
		length uint16
	}
	records := make([]*recInfo, 0, len(info.Records))

	b := newNameBuilder()
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	for _, r := range info.Records {
		var data []byte
		switch r.PlatformID {
		case PlatformUnicode, PlatformWindows:
			var err error
			data, err = enc.Bytes([]byte(r.Value))
			if err != nil {
				return nil, err
			}
		default:
			return nil, &fonterror.NotSupportedError{
				SubSystem: "sfnt/name",
				Feature:   "platform ID " + strconv.Itoa(int(r.PlatformID)),
			}
		}
		offset, length, err := b.Add(data)
		if err != nil {
			return nil, err
		}
		records = append(records, &recInfo{Record: r, offset: offset, length: length})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].PlatformID != records[j].PlatformID {
			return records[i].PlatformID < records[j].PlatformID
		}
		if records[i].EncodingID != records[j].EncodingID {
			return records[i].EncodingID < records[j].EncodingID
		}
		if records[i].LanguageID != records[j].LanguageID {
			return records[i].LanguageID < records[j].LanguageID
		}
		return records[i].NameID < records[j].NameID
	})

	numRec := len(records)
	startOfRecords := 6
	startOfStrings := startOfRecords + numRec*12
	res := make([]byte, startOfStrings+len(b.data))

	res[2] = byte(numRec >> 8)
	res[3] = byte(numRec)
	res[4] = byte(startOfStrings >> 8)
	res[5] = byte(startOfStrings)
	for i, rec := range records {
		base := startOfRecords + i*12
		res[base] = byte(rec.PlatformID >> 8)
		res[base+1] = byte(rec.PlatformID)
		res[base+2] = byte(rec.EncodingID >> 8)
		res[base+3] = byte(rec.EncodingID)
		res[base+4] = byte(rec.LanguageID >> 8)
		res[base+5] = byte(rec.LanguageID)
		res[base+6] = byte(rec.NameID >> 8)
		res[base+7] = byte(rec.NameID)
		res[base+8] = byte(rec.length >> 8)
		res[base+9] = byte(rec.length)
		res[base+10] = byte(rec.offset >> 8)
		res[base+11] = byte(rec.offset)
	}
	copy(res[startOfStrings:], b.data)

	return res, nil
}

// nameBuilder collects the string storage of the table.
// Identical strings are stored only once.
type nameBuilder struct {
	data []byte
	idx  map[string]uint16
}

func newNameBuilder() *nameBuilder {
	return &nameBuilder{
		idx: make(map[string]uint16),
	}
}

func (nb *nameBuilder) Add(b []byte) (offs, length uint16, err error) {
	if len(b) > 0xFFFF {
		return 0, 0, errTooLong
	}
	key := string(b)
	if idx, ok := nb.idx[key]; ok {
		return idx, uint16(len(b)), nil
	}
	if len(nb.data) > 0xFFFF {
		return 0, 0, errTooLong
	}
	idx := uint16(len(nb.data))
	nb.idx[key] = idx
	nb.data = append(nb.data, b...)
	return idx, uint16(len(b)), nil
}

var errTooLong = &fonterror.InvalidFontError{
	SubSystem: "sfnt/name",
	Reason:    "too much string data",
}

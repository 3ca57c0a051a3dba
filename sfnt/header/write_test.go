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

package header

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChecksum(t *testing.T) {
	type testCase struct {
		data []byte
		sum  uint32
	}
	testCases := []testCase{
		{nil, 0},
		{[]byte{0, 0, 0, 1}, 1},
		{[]byte{0, 0, 0, 1, 0, 0, 0, 2}, 3},
		{[]byte{1}, 0x01000000},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 2}, 1},
	}
	for i, test := range testCases {
		if sum := Checksum(test.data); sum != test.sum {
			t.Errorf("%d: checksum = %08x, want %08x", i, sum, test.sum)
		}
	}
}

func TestWrite(t *testing.T) {
	head := make([]byte, 54)
	binary.BigEndian.PutUint32(head[8:], 0xDEADBEEF)
	tables := map[string][]byte{
		"head": head,
		"CFF ": {1, 2, 3},
		"name": {},
		"cmap": {4, 5, 6, 7, 8},
		"xxxx": nil,
	}
	buf := &bytes.Buffer{}
	n, err := Write(buf, ScalerTypeCFF, tables)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	if n != int64(len(data)) {
		t.Errorf("reported size %d, wrote %d bytes", n, len(data))
	}

	if v := binary.BigEndian.Uint32(data); v != ScalerTypeCFF {
		t.Errorf("scaler type %08x", v)
	}
	numTables := int(binary.BigEndian.Uint16(data[4:]))
	if numTables != 4 {
		t.Fatalf("numTables = %d, want 4", numTables)
	}
	if v := binary.BigEndian.Uint16(data[6:]); v != 64 {
		t.Errorf("searchRange = %d", v)
	}
	if v := binary.BigEndian.Uint16(data[8:]); v != 2 {
		t.Errorf("entrySelector = %d", v)
	}
	if v := binary.BigEndian.Uint16(data[10:]); v != 0 {
		t.Errorf("rangeShift = %d", v)
	}

	var tags []string
	var offs []uint32
	for i := 0; i < numTables; i++ {
		rec := data[12+16*i:]
		tags = append(tags, string(rec[:4]))
		offs = append(offs, binary.BigEndian.Uint32(rec[8:]))
	}
	if d := cmp.Diff([]string{"CFF ", "cmap", "head", "name"}, tags); d != "" {
		t.Errorf("directory order (-want +got):\n%s", d)
	}

	// table data follows the recommended order for CFF fonts
	if d := cmp.Diff([]uint32{140, 132, 76, 132}, offs); d != "" {
		t.Errorf("offsets (-want +got):\n%s", d)
	}

	if len(data)%4 != 0 {
		t.Errorf("file length %d is not a multiple of 4", len(data))
	}
	if sum := Checksum(data); sum != 0xB1B0AFBA {
		t.Errorf("whole file checksum = %08x, want B1B0AFBA", sum)
	}
}

func TestWriteEmpty(t *testing.T) {
	_, err := Write(&bytes.Buffer{}, ScalerTypeCFF, map[string][]byte{"head": nil})
	if err != errNoTables {
		t.Errorf("got error %v", err)
	}
}

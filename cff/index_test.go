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
	"errors"
	"testing"
)

// readIndex decodes a CFF INDEX and returns the items together with the
// remaining data.
func readIndex(buf []byte) (cffIndex, []byte, error) {
	errShort := errors.New("INDEX too short")
	if len(buf) < 2 {
		return nil, nil, errShort
	}
	count := int(buf[0])<<8 | int(buf[1])
	if count == 0 {
		return nil, buf[2:], nil
	}
	if len(buf) < 3 {
		return nil, nil, errShort
	}
	offSize := int(buf[2])
	buf = buf[3:]
	if len(buf) < (count+1)*offSize {
		return nil, nil, errShort
	}
	offs := make([]int, count+1)
	for i := range offs {
		for j := 0; j < offSize; j++ {
			offs[i] = offs[i]<<8 | int(buf[i*offSize+j])
		}
		offs[i]--
	}
	buf = buf[(count+1)*offSize:]
	if len(buf) < offs[count] {
		return nil, nil, errShort
	}
	res := make(cffIndex, count)
	for i := range res {
		res[i] = buf[offs[i]:offs[i+1]]
	}
	return res, buf[offs[count]:], nil
}

func TestIndex(t *testing.T) {
	blob := make([]byte, 1+127)
	for i := range blob {
		blob[i] = byte(i + 1)
	}

	for _, count := range []int{0, 1, 2, 3, 517, 1000} {
		data := make(cffIndex, count)
		for i := 0; i < count; i++ {
			d := i % 2
			data[i] = blob[d : d+127]
		}

		buf, err := data.encode()
		if err != nil {
			t.Error(err)
			continue
		}

		if count == 0 && len(buf) != 2 {
			t.Error("wrong length for empty INDEX")
		}

		out, rest, err := readIndex(buf)
		if err != nil {
			t.Error(err)
			continue
		}
		if len(rest) != 0 {
			t.Errorf("%d: %d bytes left over", count, len(rest))
		}
		if len(out) != len(data) {
			t.Errorf("%d: wrong length %d", count, len(out))
			continue
		}
		for i, blob := range out {
			if !bytes.Equal(blob, data[i]) {
				t.Errorf("%d: wrong data for item %d", count, i)
				break
			}
		}
	}
}

func TestIndexOffSize(t *testing.T) {
	type testCase struct {
		size    int
		offSize byte
	}
	testCases := []testCase{
		{1, 1},
		{254, 1},
		{255, 2},
		{65534, 2},
		{65535, 3},
	}
	for _, test := range testCases {
		buf, err := cffIndex{make([]byte, test.size)}.encode()
		if err != nil {
			t.Fatal(err)
		}
		if buf[2] != test.offSize {
			t.Errorf("size %d: offSize = %d, want %d", test.size, buf[2], test.offSize)
		}
	}
}

// get returns the string with the given SID.
func (ss *cffStrings) get(sid int32) (string, bool) {
	switch {
	case sid < 0:
		return "", false
	case sid < nStdStrings:
		return stdStrings[sid], true
	case int(sid-nStdStrings) < len(ss.data):
		return ss.data[sid-nStdStrings], true
	default:
		return "", false
	}
}

func TestStrings(t *testing.T) {
	ss := &cffStrings{}
	if sid := ss.lookup(".notdef"); sid != 0 {
		t.Errorf(".notdef has SID %d", sid)
	}
	if sid := ss.lookup("A"); sid != 34 {
		t.Errorf("A has SID %d, want 34", sid)
	}
	if sid := ss.lookup("Semibold"); sid != 390 {
		t.Errorf("Semibold has SID %d, want 390", sid)
	}
	a := ss.lookup("A.alt")
	b := ss.lookup("uni0411")
	if a != nStdStrings || b != nStdStrings+1 {
		t.Errorf("got SIDs %d, %d", a, b)
	}
	if again := ss.lookup("A.alt"); again != a {
		t.Errorf("second lookup gave SID %d", again)
	}
	if s, ok := ss.get(b); !ok || s != "uni0411" {
		t.Errorf("get(%d) = %q, %t", b, s, ok)
	}
	if _, ok := ss.get(nStdStrings + 2); ok {
		t.Error("get accepted an unused SID")
	}

	buf, err := ss.encode()
	if err != nil {
		t.Fatal(err)
	}
	items, _, err := readIndex(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || string(items[0]) != "A.alt" || string(items[1]) != "uni0411" {
		t.Errorf("wrong String INDEX %q", items)
	}
}

func TestStandardStrings(t *testing.T) {
	if len(stdStrings) != nStdStrings {
		t.Fatalf("%d standard strings, want %d", len(stdStrings), nStdStrings)
	}
	for i, s := range stdStrings {
		if stdSID[s] != int32(i) {
			t.Errorf("%q: SID %d, want %d", s, stdSID[s], i)
		}
	}
}

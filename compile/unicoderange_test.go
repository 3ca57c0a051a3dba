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

package compile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnicodeRanges(t *testing.T) {
	type testCase struct {
		codes []rune
		want  []int
	}
	testCases := []testCase{
		{nil, []int{}},
		{[]rune{'A', 'z'}, []int{0}},
		{[]rune{'A', 'é', 'Б', 0x1F600}, []int{0, 1, 9, 57}},
		{[]rune{0x0E01}, []int{24}},
		{[]rune{0x1F000}, []int{57, 122}},
	}
	for _, test := range testCases {
		cmap := make(map[rune]string)
		for _, r := range test.codes {
			cmap[r] = "x"
		}
		if d := cmp.Diff(test.want, UnicodeRanges(cmap)); d != "" {
			t.Errorf("%U (-want +got):\n%s", test.codes, d)
		}
	}
}

func TestUnicodeBlocks(t *testing.T) {
	for i, b := range unicodeBlocks {
		if b.first > b.last {
			t.Errorf("block %d: %04X > %04X", i, b.first, b.last)
		}
		if b.bit < 0 || b.bit >= 128 {
			t.Errorf("block %d: invalid bit %d", i, b.bit)
		}
		if i > 0 && unicodeBlocks[i-1].last >= b.first {
			t.Errorf("blocks %04X and %04X overlap", unicodeBlocks[i-1].first, b.first)
		}
	}
}

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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/sfnt/cmap"

	"seehuhn.de/go/fontc/model"
	"seehuhn.de/go/fontc/sfnt/hmtx"
)

func TestBuildCMap(t *testing.T) {
	d := &Derived{
		Glyphs: &GlyphSet{Order: []string{".notdef", "A", "u1F600", "u1F601"}},
		CMap: map[rune]string{
			'A':     "A",
			0x1F600: "u1F600",
			0x1F601: "u1F601",
		},
	}
	table := buildCMap(d)

	keys := []cmap.Key{
		{PlatformID: 0, EncodingID: 3},
		{PlatformID: 3, EncodingID: 1},
		{PlatformID: 0, EncodingID: 4},
		{PlatformID: 3, EncodingID: 10},
	}
	for _, key := range keys {
		if _, ok := table[key]; !ok {
			t.Errorf("missing subtable %v", key)
		}
	}
	if len(table) != len(keys) {
		t.Errorf("%d subtables, want %d", len(table), len(keys))
	}

	want := []byte{
		0, 12, 0, 0, // format, reserved
		0, 0, 0, 40, // length
		0, 0, 0, 0, // language
		0, 0, 0, 2, // numGroups
		0, 0, 0, 0x41, 0, 0, 0, 0x41, 0, 0, 0, 1,
		0, 1, 0xF6, 0x00, 0, 1, 0xF6, 0x01, 0, 0, 0, 2,
	}
	if d := cmp.Diff(want, table[cmap.Key{PlatformID: 3, EncodingID: 10}]); d != "" {
		t.Errorf("format 12 subtable (-want +got):\n%s", d)
	}

	// without characters outside the BMP, only format 4 is written
	delete(d.CMap, 0x1F600)
	delete(d.CMap, 0x1F601)
	table = buildCMap(d)
	if len(table) != 2 {
		t.Errorf("%d subtables for a BMP-only font, want 2", len(table))
	}
}

func TestBuildHheaLargeAdvance(t *testing.T) {
	ctx := testContext()
	d := &Derived{
		GlyphBounds: []model.Rect{
			model.EmptyRect(),
			{XMin: 10, YMin: 0, XMax: 110, YMax: 100},
		},
	}
	metrics := []hmtx.Metric{
		{Advance: 500},
		{Advance: 40000, LSB: 10},
	}
	info := ctx.buildHhea(d, metrics)
	if info.AdvanceWidthMax != 40000 {
		t.Errorf("advanceWidthMax = %d", info.AdvanceWidthMax)
	}
	if info.MinRightSideBearing != math.MaxInt16 {
		t.Errorf("minRightSideBearing = %d, want %d", info.MinRightSideBearing, math.MaxInt16)
	}
	if info.MinLeftSideBearing != 10 || info.XMaxExtent != 110 {
		t.Errorf("minLeftSideBearing = %d, xMaxExtent = %d",
			info.MinLeftSideBearing, info.XMaxExtent)
	}
}

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

	"seehuhn.de/go/fontc/model"
	"seehuhn.de/go/fontc/sfnt/name"
)

func TestNameTable(t *testing.T) {
	type testCase struct {
		master string
		want   map[name.ID]string
	}
	testCases := []testCase{
		{
			master: "Regular",
			want: map[name.ID]string{
				name.Copyright:      "© 2024 Test",
				name.Family:         "Test Sans",
				name.Subfamily:      "Regular",
				name.UniqueID:       "1.002;UKWN;TestSans-Regular",
				name.FullName:       "Test Sans Regular",
				name.Version:        "Version 1.002",
				name.PostScriptName: "TestSans-Regular",
				name.Designer:       "A. Designer",
			},
		},
		{
			master: "Light",
			want: map[name.ID]string{
				name.Copyright:            "© 2024 Test",
				name.Family:               "Test Sans",
				name.Subfamily:            "Regular",
				name.UniqueID:             "1.002;UKWN;TestSans-Light",
				name.FullName:             "Test Sans Light",
				name.Version:              "Version 1.002",
				name.PostScriptName:       "TestSans-Light",
				name.Designer:             "A. Designer",
				name.TypographicSubfamily: "Light",
			},
		},
		{
			master: "Bold Italic",
			want: map[name.ID]string{
				name.Copyright:      "© 2024 Test",
				name.Family:         "Test Sans",
				name.Subfamily:      "Bold Italic",
				name.UniqueID:       "1.002;UKWN;TestSans-BoldItalic",
				name.FullName:       "Test Sans Bold Italic",
				name.Version:        "Version 1.002",
				name.PostScriptName: "TestSans-BoldItalic",
				name.Designer:       "A. Designer",
			},
		},
	}
	for _, test := range testCases {
		ctx := NewContext(testFont(), model.NewMaster(test.master))
		info := ctx.NameTable(DefaultVendor)

		got := make(map[name.ID]string)
		for _, rec := range info.Records {
			if rec.PlatformID != name.PlatformWindows ||
				rec.EncodingID != name.EncodingWindowsBMP ||
				rec.LanguageID != name.LanguageEnUS {
				t.Errorf("%s: unexpected record %+v", test.master, rec)
			}
			got[rec.NameID] = rec.Value
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("%s (-want +got):\n%s", test.master, d)
		}
	}
}

func TestNameTableNonBMP(t *testing.T) {
	ctx := testContext()
	ctx.Font.Designer = "\U0001F600 Studio"
	info := ctx.NameTable(DefaultVendor)
	for _, rec := range info.Records {
		want := uint16(name.EncodingWindowsBMP)
		if rec.NameID == name.Designer {
			want = name.EncodingWindowsFull
		}
		if rec.EncodingID != want {
			t.Errorf("name %d: encoding %d, want %d", rec.NameID, rec.EncodingID, want)
		}
	}
	if _, err := info.Encode(); err != nil {
		t.Error(err)
	}
}

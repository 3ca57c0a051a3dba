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
)

func TestMessage(t *testing.T) {
	type testCase struct {
		entry Entry
		want  string
	}
	testCases := []testCase{
		{
			entry: Entry{SeverityError, DuplicateEncoding,
				Fields{"unicode": "0041", "name": "B", "oldName": "A"}},
			want: "error: U+0041 in glyph 'B' is already mapped to 'A'",
		},
		{
			entry: Entry{SeverityError, DuplicateGlyphs,
				Fields{"duplicates": []string{"a", "b"}}},
			want: "error: Glyph names 'a', 'b' appear multiple times in the font",
		},
		{
			entry: Entry{SeverityError, NegativeWidth,
				Fields{"name": "x", "width": -12.5}},
			want: "error: Glyph 'x' has negative width '-12.5'",
		},
		{
			entry: Entry{SeverityWarning, MissingHmtx, Fields{}},
			want:  "warning: Missing 'hmtx' table when computing '{target}'",
		},
		{
			entry: Entry{SeverityWarning, MessageID(99), nil},
			want:  "warning: MessageID(99)",
		},
	}
	for i, test := range testCases {
		if got := test.entry.String(); got != test.want {
			t.Errorf("%d: got %q, want %q", i, got, test.want)
		}
	}
}

func TestLog(t *testing.T) {
	l := &Log{}
	if l.HasErrors() {
		t.Error("empty log has errors")
	}
	l.Warning(AttrTruncated, Fields{"attr": "versionMinor", "result": "123"})
	if l.HasErrors() {
		t.Error("warning counted as error")
	}
	l.Error(NegativeWidth, Fields{"name": "a", "width": -1})
	if !l.HasErrors() {
		t.Error("error not recorded")
	}
	if len(l.Errors()) != 1 || len(l.Warnings()) != 1 || len(l.Entries) != 2 {
		t.Errorf("unexpected log contents: %v", l.Entries)
	}
}

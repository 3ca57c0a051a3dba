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

func TestFilters(t *testing.T) {
	type testCase struct {
		in                 string
		glyph, name, strng string
	}
	testCases := []testCase{
		{"Regular", "Regular", "Regular", "Regular"},
		{"Open Sans", "OpenSans", "OpenSans", "Open Sans"},
		{"Café", "Cafe", "Cafe", "Cafe"},
		{"a/b[c]", "abc", "abc", "abc"},
		{"uni00C0.sc", "uni00C0.sc", "uni00C0.sc", "uni00C0.sc"},
		{"© 2024 Ẑ", "2024Z", "2024Z", "Copyright 2024 Z"},
		{"ﬁ", "f", "f", "f"},
		{"中文", "", "", ""},
		{"a-b", "ab", "a-b", "a-b"},
	}
	for _, test := range testCases {
		if got := GlyphName(test.in); got != test.glyph {
			t.Errorf("GlyphName(%q) = %q, want %q", test.in, got, test.glyph)
		}
		if got := PostScriptName(test.in); got != test.name {
			t.Errorf("PostScriptName(%q) = %q, want %q", test.in, got, test.name)
		}
		if got := PostScriptString(test.in); got != test.strng {
			t.Errorf("PostScriptString(%q) = %q, want %q", test.in, got, test.strng)
		}
	}
}

func TestPostScriptStringWarning(t *testing.T) {
	ctx := testContext()
	if s := ctx.postScriptString("copyright", "plain"); s != "plain" {
		t.Errorf("got %q", s)
	}
	if len(ctx.Log.Entries) != 0 {
		t.Fatalf("unexpected log entries: %v", ctx.Log.Entries)
	}

	s := ctx.postScriptString("copyright", "(c) Me")
	if s != "c Me" {
		t.Errorf("got %q", s)
	}
	w := ctx.Log.Warnings()
	if len(w) != 1 || w[0].ID != AttrTruncated {
		t.Fatalf("log = %v", ctx.Log.Entries)
	}
	want := "'copyright' attribute was truncated to 'c Me'"
	if msg := w[0].Message(); msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

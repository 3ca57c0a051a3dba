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

	"seehuhn.de/go/fontc/model"
	"seehuhn.de/go/fontc/sfnt/head"
	"seehuhn.de/go/fontc/sfnt/os2"
)

func TestVersion(t *testing.T) {
	type testCase struct {
		major, minor int
		want         string
		truncated    string
	}
	testCases := []testCase{
		{1, 0, "1.000", ""},
		{1, 2, "1.002", ""},
		{0, 500, "0.500", ""},
		{2, 123, "2.123", ""},
		{2, 12345, "2.123", "123"},
	}
	for _, test := range testCases {
		ctx := testContext()
		ctx.Font.VersionMajor = test.major
		ctx.Font.VersionMinor = test.minor

		if got := ctx.Version(); got != test.want {
			t.Errorf("%d.%d: got %q, want %q", test.major, test.minor, got, test.want)
		}
		if got := ctx.VersionString(); got != "Version "+test.want {
			t.Errorf("%d.%d: got %q", test.major, test.minor, got)
		}

		w := ctx.Log.Warnings()
		if test.truncated == "" {
			if len(w) != 0 {
				t.Errorf("%d.%d: unexpected warnings %v", test.major, test.minor, w)
			}
			continue
		}
		if len(w) != 1 || w[0].Fields["result"] != test.truncated {
			t.Errorf("%d.%d: warnings %v", test.major, test.minor, w)
		}
	}
}

func TestFontRevision(t *testing.T) {
	ctx := testContext()
	if got, want := ctx.FontRevision(), head.VersionFromFloat(1.002); got != want {
		t.Errorf("got %08x, want %08x", uint32(got), uint32(want))
	}
}

func TestStyles(t *testing.T) {
	type testCase struct {
		master   string
		style    string
		sel      os2.Selection
		macStyle head.MacStyle
	}
	testCases := []testCase{
		{"Regular", "regular", os2.SelectionRegular, 0},
		{"Bold", "bold", os2.SelectionBold, head.MacStyleBold},
		{"Italic", "italic", os2.SelectionItalic, head.MacStyleItalic},
		{"Bold Italic", "bold italic", os2.SelectionBold | os2.SelectionItalic,
			head.MacStyleBold | head.MacStyleItalic},
		{"Light", "regular", os2.SelectionRegular, 0},
		{"Semibold Italic", "regular", os2.SelectionRegular, 0},
	}
	for _, test := range testCases {
		ctx := NewContext(testFont(), model.NewMaster(test.master))
		if got := ctx.StyleMapStyleName(); got != test.style {
			t.Errorf("%s: style %q, want %q", test.master, got, test.style)
		}
		if got := ctx.FsSelection(); got != test.sel|os2.SelectionUseTypoMetrics {
			t.Errorf("%s: fsSelection %d", test.master, got)
		}
		if got := ctx.MacStyle(); got != test.macStyle {
			t.Errorf("%s: macStyle %d", test.master, got)
		}
	}
}

func TestNames(t *testing.T) {
	ctx := NewContext(testFont(), model.NewMaster("Bold Italic"))
	if got := ctx.FullName(); got != "Test Sans Bold Italic" {
		t.Errorf("full name %q", got)
	}
	if got := ctx.PostScriptFontName(); got != "TestSans-BoldItalic" {
		t.Errorf("PostScript name %q", got)
	}
	if got := ctx.UniqueID("ABCD"); got != "1.002;ABCD;TestSans-BoldItalic" {
		t.Errorf("unique ID %q", got)
	}
}

func TestCaretSlope(t *testing.T) {
	ctx := testContext()
	if rise, run := ctx.CaretSlope(); rise != 1 || run != 0 {
		t.Errorf("upright: %d/%d", rise, run)
	}
	ctx.Master.ItalicAngle = 12
	if rise, run := ctx.CaretSlope(); rise != 1000 || run != -213 {
		t.Errorf("italic: %d/%d", rise, run)
	}
}

func TestVerticalMetrics(t *testing.T) {
	ctx := testContext()
	asc, desc, gap := ctx.TypoMetrics()
	if d := cmp.Diff([]float64{800, -200, 200}, []float64{asc, desc, gap}); d != "" {
		t.Errorf("typo metrics (-want +got):\n%s", d)
	}

	winAsc, winDesc := ctx.WinMetrics(model.Rect{XMin: 0, YMin: -100, XMax: 500, YMax: 900})
	if winAsc != 900 || winDesc != 200 {
		t.Errorf("win metrics %g %g", winAsc, winDesc)
	}
	winAsc, winDesc = ctx.WinMetrics(model.Rect{XMin: 0, YMin: -300, XMax: 500, YMax: 700})
	if winAsc != 800 || winDesc != 300 {
		t.Errorf("win metrics %g %g", winAsc, winDesc)
	}

	// The line gap is never negative.
	ctx.Master.Ascender = 1000
	ctx.Master.Descender = -300
	if _, _, gap := ctx.TypoMetrics(); gap != 0 {
		t.Errorf("line gap %g", gap)
	}
}

func TestScriptMetrics(t *testing.T) {
	ctx := testContext()

	x, y := ctx.SubscriptOffset()
	if x != 0 || y != 75 {
		t.Errorf("subscript offset %g %g", x, y)
	}
	x, y = ctx.SuperscriptOffset()
	if x != 0 || y != 350 {
		t.Errorf("superscript offset %g %g", x, y)
	}
	x, y = ctx.ScriptSize()
	if x != 650 || y != 600 {
		t.Errorf("script size %g %g", x, y)
	}

	ctx.Master.ItalicAngle = 12
	tan := math.Tan(12 * math.Pi / 180)
	x, _ = ctx.SubscriptOffset()
	if math.Abs(x-75*tan) > 1e-9 {
		t.Errorf("italic subscript x offset %g", x)
	}
	x, _ = ctx.SuperscriptOffset()
	if math.Abs(x+350*tan) > 1e-9 {
		t.Errorf("italic superscript x offset %g", x)
	}

	if got := ctx.UnderlinePosition(); got != -75 {
		t.Errorf("underline position %g", got)
	}
	if got := ctx.UnderlineThickness(); got != 50 {
		t.Errorf("underline thickness %g", got)
	}
	if got := ctx.StrikeoutPosition(); got != 300 {
		t.Errorf("strikeout position %g", got)
	}
}

func TestLayerWidth(t *testing.T) {
	ctx := testContext()
	if w := ctx.LayerWidth("a", &model.Layer{Width: 480}); w != 480 {
		t.Errorf("width %g", w)
	}
	if ctx.Log.HasErrors() {
		t.Fatal("unexpected error")
	}

	if w := ctx.LayerWidth("a", &model.Layer{Width: -5}); w != 0 {
		t.Errorf("negative width replaced by %g", w)
	}
	e := ctx.Log.Errors()
	if len(e) != 1 {
		t.Fatalf("errors: %v", e)
	}
	if msg := e[0].Message(); msg != "Glyph 'a' has negative width '-5'" {
		t.Errorf("message %q", msg)
	}
}

func TestBlues(t *testing.T) {
	ctx := testContext()
	if ctx.BlueValues() != nil || ctx.OtherBlues() != nil {
		t.Error("unexpected alignment zones")
	}
	if got := ctx.BlueScale(); got != defaultBlueScale {
		t.Errorf("default blue scale %g", got)
	}

	ctx.Master.AlignmentZones = []model.AlignmentZone{
		{Position: 0, Size: -15},
		{Position: 700, Size: 15},
		{Position: -200, Size: -10},
	}
	if d := cmp.Diff([]float64{0, -15, 700, 715}, ctx.BlueValues()); d != "" {
		t.Errorf("BlueValues (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{-200, -210}, ctx.OtherBlues()); d != "" {
		t.Errorf("OtherBlues (-want +got):\n%s", d)
	}
	if got := ctx.BlueScale(); got != 0.05 {
		t.Errorf("blue scale %g, want 0.05", got)
	}
}

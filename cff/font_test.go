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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
)

// decodeDictInts decodes a DICT, keeping only integer operands.
// Real numbers are represented by the value 9999.
func decodeDictInts(buf []byte) map[dictOp][]int32 {
	res := map[dictOp][]int32{}
	var stack []int32
	for len(buf) > 0 {
		b0 := buf[0]
		switch {
		case b0 == 12:
			res[dictOp(b0)<<8|dictOp(buf[1])] = stack
			stack = nil
			buf = buf[2:]
		case b0 <= 21:
			res[dictOp(b0)] = stack
			stack = nil
			buf = buf[1:]
		case b0 == 28:
			stack = append(stack, int32(int16(uint16(buf[1])<<8|uint16(buf[2]))))
			buf = buf[3:]
		case b0 == 29:
			stack = append(stack, int32(uint32(buf[1])<<24|uint32(buf[2])<<16|uint32(buf[3])<<8|uint32(buf[4])))
			buf = buf[5:]
		case b0 == 30:
			buf = buf[1:]
			for buf[0]&0x0f != 0x0f && buf[0]&0xf0 != 0xf0 {
				buf = buf[1:]
			}
			buf = buf[1:]
			stack = append(stack, 9999)
		case b0 <= 246:
			stack = append(stack, int32(b0)-139)
			buf = buf[1:]
		case b0 <= 250:
			stack = append(stack, (int32(b0)-247)*256+int32(buf[1])+108)
			buf = buf[2:]
		default:
			stack = append(stack, -(int32(b0)-251)*256-int32(buf[1])-108)
			buf = buf[2:]
		}
	}
	return res
}

func makeTestFont() *Font {
	notdef := NewGlyph(".notdef", 500)
	notdef.MoveTo(50, 0)
	notdef.LineTo(450, 0)
	notdef.LineTo(450, 700)
	notdef.LineTo(50, 700)
	notdef.ClosePath()

	space := NewGlyph("space", 250)

	a := NewGlyph("A", 600)
	a.MoveTo(0, 0)
	a.LineTo(300, 700)
	a.QCurveTo(450, 350, 600, 0)
	a.ClosePath()

	private := NewPrivate()
	private.BlueValues = []float64{-15, 0, 500, 515}
	private.BlueScale = 0.05
	private.BlueFuzz = 0
	private.DefaultWidthX = 600
	private.NominalWidthX = 400

	return &Font{
		FontName:           "Test-Regular",
		Version:            "1.000",
		FullName:           "Test Regular",
		FamilyName:         "Test",
		Weight:             "Regular",
		UnderlinePosition:  -75,
		UnderlineThickness: 50,
		FontMatrix:         matrix.Matrix{0.001, 0, 0, 0.001, 0, 0},
		FontBBox:           funit.Rect16{LLx: 0, LLy: 0, URx: 600, URy: 700},
		Private:            private,
		Glyphs:             []*Glyph{notdef, space, a},
		Optimize:           true,
	}
}

func TestEncodeStructure(t *testing.T) {
	font := makeTestFont()
	buf := &bytes.Buffer{}
	err := font.Encode(buf)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	if d := cmp.Diff([]byte{1, 0, 4}, data[:3]); d != "" {
		t.Errorf("header (-want +got):\n%s", d)
	}

	names, rest, err := readIndex(data[4:])
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || string(names[0]) != "Test-Regular" {
		t.Errorf("wrong Name INDEX %q", names)
	}
	topDicts, rest, err := readIndex(rest)
	if err != nil {
		t.Fatal(err)
	}
	if len(topDicts) != 1 {
		t.Fatalf("%d top DICTs", len(topDicts))
	}
	strings, rest, err := readIndex(rest)
	if err != nil {
		t.Fatal(err)
	}
	gsubrs, _, err := readIndex(rest)
	if err != nil {
		t.Fatal(err)
	}
	if len(gsubrs) != 0 {
		t.Errorf("%d global subroutines", len(gsubrs))
	}

	ss := &cffStrings{}
	for _, s := range strings {
		ss.data = append(ss.data, string(s))
	}
	if d := cmp.Diff([]string{"1.000", "Test Regular", "Test"}, ss.data); d != "" {
		t.Errorf("String INDEX (-want +got):\n%s", d)
	}

	top := decodeDictInts(topDicts[0])
	getString := func(op dictOp) string {
		s, _ := ss.get(top[op][0])
		return s
	}
	if s := getString(opFullName); s != "Test Regular" {
		t.Errorf("FullName = %q", s)
	}
	if s := getString(opWeight); s != "Regular" {
		t.Errorf("Weight = %q", s)
	}
	if _, ok := top[opFontMatrix]; ok {
		t.Error("default FontMatrix written")
	}
	if _, ok := top[opUnderlineThickness]; ok {
		t.Error("default UnderlineThickness written")
	}
	if d := cmp.Diff([]int32{-75}, top[opUnderlinePosition]); d != "" {
		t.Errorf("UnderlinePosition (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]int32{0, 0, 600, 700}, top[opFontBBox]); d != "" {
		t.Errorf("FontBBox (-want +got):\n%s", d)
	}

	charset := decodeCharset(data[top[opCharset][0]:], 3)
	var glyphNames []string
	for _, sid := range charset {
		name, ok := ss.get(sid)
		if !ok {
			t.Errorf("invalid SID %d in charset", sid)
		}
		glyphNames = append(glyphNames, name)
	}
	if d := cmp.Diff([]string{".notdef", "space", "A"}, glyphNames); d != "" {
		t.Errorf("charset (-want +got):\n%s", d)
	}

	charStrings, _, err := readIndex(data[top[opCharStrings][0]:])
	if err != nil {
		t.Fatal(err)
	}
	if len(charStrings) != 3 {
		t.Fatalf("%d charstrings", len(charStrings))
	}
	wantWidths := []int32{500, 250, 600}
	for i, cs := range charStrings {
		width, hasWidth, _, err := decodeCharString(cs, 400)
		if err != nil {
			t.Errorf("glyph %d: %v", i, err)
			continue
		}
		if !hasWidth {
			width = 600
		}
		if width != wantWidths[i] {
			t.Errorf("glyph %d: width %d, want %d", i, width, wantWidths[i])
		}
	}

	pd := top[opPrivate]
	private := decodeDictInts(data[pd[1] : pd[1]+pd[0]])
	if d := cmp.Diff([]int32{-15, 15, 500, 15}, private[opBlueValues]); d != "" {
		t.Errorf("BlueValues (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]int32{0}, private[opBlueFuzz]); d != "" {
		t.Errorf("BlueFuzz (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]int32{9999}, private[opBlueScale]); d != "" {
		t.Errorf("BlueScale (-want +got):\n%s", d)
	}
	if _, ok := private[opBlueShift]; ok {
		t.Error("default BlueShift written")
	}
	if d := cmp.Diff([]int32{600}, private[opDefaultWidthX]); d != "" {
		t.Errorf("defaultWidthX (-want +got):\n%s", d)
	}
	if int(pd[0]+pd[1]) != len(data) {
		t.Errorf("Private DICT ends at %d, file length %d", pd[0]+pd[1], len(data))
	}
}

func TestQCurveTo(t *testing.T) {
	g := NewGlyph("q", 0)
	g.MoveTo(0, 0)
	g.QCurveTo(300, 600, 600, 0)
	want := []float64{200, 400, 400, 400, 600, 0}
	if d := cmp.Diff(want, g.Cmds[1].Args, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("control points (-want +got):\n%s", d)
	}
}

func TestEncodeErrors(t *testing.T) {
	font := makeTestFont()
	font.Glyphs = font.Glyphs[1:]
	if err := font.Encode(&bytes.Buffer{}); err != errNoNotdef {
		t.Errorf("got %v, want %v", err, errNoNotdef)
	}
	font.Glyphs = nil
	if err := font.Encode(&bytes.Buffer{}); err != errNoGlyphs {
		t.Errorf("got %v, want %v", err, errNoGlyphs)
	}
	font.FontName = ""
	if err := font.Encode(&bytes.Buffer{}); err != errNoFontName {
		t.Errorf("got %v, want %v", err, errNoFontName)
	}
}

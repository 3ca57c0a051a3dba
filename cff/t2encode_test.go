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
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// decodeCharString interprets the subset of Type 2 operators written by
// the encoder.  It returns the glyph width (or ok=false if the width was
// omitted) and the drawing commands with absolute coordinates.
func decodeCharString(code []byte, nominalWidth int32) (width int32, hasWidth bool, cmds []GlyphOp, err error) {
	var stack []int32
	var x, y int32
	first := true

	takeWidth := func(nArgs int) {
		if first && len(stack) > nArgs {
			width = stack[0] + nominalWidth
			hasWidth = true
			stack = stack[1:]
		}
		first = false
	}
	lineTo := func(dx, dy int32) {
		x += dx
		y += dy
		cmds = append(cmds, GlyphOp{Op: OpLineTo, Args: []float64{float64(x), float64(y)}})
	}
	curveTo := func(dxa, dya, dxb, dyb, dxc, dyc int32) {
		x1, y1 := x+dxa, y+dya
		x2, y2 := x1+dxb, y1+dyb
		x, y = x2+dxc, y2+dyc
		cmds = append(cmds, GlyphOp{
			Op:   OpCurveTo,
			Args: []float64{float64(x1), float64(y1), float64(x2), float64(y2), float64(x), float64(y)},
		})
	}

	for len(code) > 0 {
		b0 := code[0]
		switch {
		case b0 >= 32 && b0 <= 246:
			stack = append(stack, int32(b0)-139)
			code = code[1:]
			continue
		case b0 >= 247 && b0 <= 250:
			stack = append(stack, (int32(b0)-247)*256+int32(code[1])+108)
			code = code[2:]
			continue
		case b0 >= 251 && b0 <= 254:
			stack = append(stack, -(int32(b0)-251)*256-int32(code[1])-108)
			code = code[2:]
			continue
		case b0 == 28:
			stack = append(stack, int32(int16(uint16(code[1])<<8|uint16(code[2]))))
			code = code[3:]
			continue
		}

		op := t2op(b0)
		code = code[1:]
		switch op {
		case t2rmoveto, t2hmoveto, t2vmoveto:
			n := 2
			if op != t2rmoveto {
				n = 1
			}
			takeWidth(n)
			switch op {
			case t2rmoveto:
				x += stack[0]
				y += stack[1]
			case t2hmoveto:
				x += stack[0]
			case t2vmoveto:
				y += stack[0]
			}
			cmds = append(cmds, GlyphOp{Op: OpMoveTo, Args: []float64{float64(x), float64(y)}})
		case t2rlineto:
			for i := 0; i+1 < len(stack); i += 2 {
				lineTo(stack[i], stack[i+1])
			}
		case t2hlineto, t2vlineto:
			horizontal := op == t2hlineto
			for _, d := range stack {
				if horizontal {
					lineTo(d, 0)
				} else {
					lineTo(0, d)
				}
				horizontal = !horizontal
			}
		case t2rrcurveto, t2rcurveline:
			i := 0
			for ; i+5 < len(stack); i += 6 {
				curveTo(stack[i], stack[i+1], stack[i+2], stack[i+3], stack[i+4], stack[i+5])
			}
			if op == t2rcurveline {
				lineTo(stack[i], stack[i+1])
			}
		case t2rlinecurve:
			i := 0
			for ; i+6 < len(stack); i += 2 {
				lineTo(stack[i], stack[i+1])
			}
			curveTo(stack[i], stack[i+1], stack[i+2], stack[i+3], stack[i+4], stack[i+5])
		case t2hhcurveto, t2vvcurveto:
			var d1 int32
			if len(stack)%4 == 1 {
				d1, stack = stack[0], stack[1:]
			}
			for i := 0; i+3 < len(stack); i += 4 {
				if op == t2hhcurveto {
					curveTo(stack[i], d1, stack[i+1], stack[i+2], stack[i+3], 0)
				} else {
					curveTo(d1, stack[i], stack[i+1], stack[i+2], 0, stack[i+3])
				}
				d1 = 0
			}
		case t2hvcurveto, t2vhcurveto:
			horizontal := op == t2hvcurveto
			for len(stack) >= 4 {
				var extra int32
				if len(stack) == 5 {
					extra = stack[4]
				}
				if horizontal {
					curveTo(stack[0], 0, stack[1], stack[2], extra, stack[3])
				} else {
					curveTo(0, stack[0], stack[1], stack[2], stack[3], extra)
				}
				stack = stack[4:]
				if len(stack) == 1 {
					stack = nil
				}
				horizontal = !horizontal
			}
		case t2endchar:
			takeWidth(0)
			if len(code) > 0 {
				return 0, false, nil, fmt.Errorf("data after endchar")
			}
			return width, hasWidth, cmds, nil
		default:
			return 0, false, nil, fmt.Errorf("unexpected operator %d", b0)
		}
		if len(stack) > maxStack {
			return 0, false, nil, fmt.Errorf("stack overflow")
		}
		stack = stack[:0]
		first = false
	}
	return 0, false, nil, fmt.Errorf("missing endchar")
}

// roundCmds rounds all coordinates, the way the encoder does.
func roundCmds(cmds []GlyphOp) []GlyphOp {
	res := make([]GlyphOp, len(cmds))
	for i, cmd := range cmds {
		args := make([]float64, len(cmd.Args))
		for j, a := range cmd.Args {
			args[j] = math.Floor(a + 0.5)
		}
		res[i] = GlyphOp{Op: cmd.Op, Args: args}
	}
	return res
}

func testGlyphs() []*Glyph {
	var res []*Glyph

	g := NewGlyph("empty", 500)
	res = append(res, g)

	g = NewGlyph("square", 600)
	g.MoveTo(100, 0)
	g.LineTo(500, 0)
	g.LineTo(500, 400)
	g.LineTo(100, 400)
	g.LineTo(100, 0)
	g.ClosePath()
	res = append(res, g)

	g = NewGlyph("o", 550.4)
	g.MoveTo(275, 0)
	g.CurveTo(400, 0, 500, 100, 500, 250)
	g.CurveTo(500, 400, 400, 500, 275, 500)
	g.CurveTo(150, 500, 50, 400, 50, 250)
	g.CurveTo(50, 100, 150, 0, 275, 0)
	g.ClosePath()
	g.MoveTo(275.4, 100.6)
	g.CurveTo(200, 100, 150, 170, 150, 250)
	g.LineTo(150.2, 260)
	g.CurveTo(160, 330, 200, 400, 275, 400)
	g.LineTo(275, 100)
	g.ClosePath()
	res = append(res, g)

	g = NewGlyph("mixed", -10)
	g.MoveTo(0, 10)
	g.LineTo(10, 20)
	g.LineTo(30, 40)
	g.CurveTo(40, 40, 50, 50, 60, 70)
	g.CurveTo(60, 80, 70, 90, 80, 90)
	g.LineTo(80, 100)
	g.LineTo(2000, 100)
	g.CurveTo(2000, 200, 1000, 300, -3000, 310)
	g.ClosePath()
	res = append(res, g)

	g = NewGlyph("many", 1000)
	g.MoveTo(0, 0)
	for i := 1; i <= 60; i++ {
		if i%2 == 0 {
			g.LineTo(float64(10*i), 0)
		} else {
			g.LineTo(float64(10*i), 5)
		}
	}
	for i := 0; i < 30; i++ {
		x := float64(600 - 20*i)
		g.CurveTo(x, 50, x-10, 60, x-20, 60)
	}
	g.ClosePath()
	res = append(res, g)

	return res
}

func TestCharStringRoundTrip(t *testing.T) {
	for _, optimize := range []bool{false, true} {
		for _, g := range testGlyphs() {
			const defaultWidth, nominalWidth = 500, 550
			code, err := g.encodeCharString(defaultWidth, nominalWidth, optimize)
			if err != nil {
				t.Errorf("%s: %v", g.Name, err)
				continue
			}
			width, hasWidth, cmds, err := decodeCharString(code, nominalWidth)
			if err != nil {
				t.Errorf("%s/%t: %v", g.Name, optimize, err)
				continue
			}

			wantWidth := otRound(g.Width)
			if wantWidth == defaultWidth {
				if hasWidth {
					t.Errorf("%s/%t: default width stored", g.Name, optimize)
				}
			} else if !hasWidth || width != wantWidth {
				t.Errorf("%s/%t: width %d (%t), want %d", g.Name, optimize, width, hasWidth, wantWidth)
			}

			if d := cmp.Diff(roundCmds(g.Cmds), cmds); d != "" {
				t.Errorf("%s/%t: commands (-want +got):\n%s", g.Name, optimize, d)
			}
		}
	}
}

func TestCharStringOptimize(t *testing.T) {
	for _, g := range testGlyphs() {
		plain, err := g.encodeCharString(0, 0, false)
		if err != nil {
			t.Fatal(err)
		}
		opt, err := g.encodeCharString(0, 0, true)
		if err != nil {
			t.Fatal(err)
		}
		if len(opt) > len(plain) {
			t.Errorf("%s: optimized charstring is longer (%d > %d)", g.Name, len(opt), len(plain))
		}
	}
}

func TestCharStringSquare(t *testing.T) {
	g := testGlyphs()[1]
	code, err := g.encodeCharString(600, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		239, 22, // 100 hmoveto
		0xf8, 0x24, 0xf8, 0x24, 0xfc, 0x24, 0xfc, 0x24, 6, // 400 400 -400 -400 hlineto
		14, // endchar
	}
	if d := cmp.Diff(want, code); d != "" {
		t.Errorf("charstring (-want +got):\n%s", d)
	}
}

func TestEncodeIntRange(t *testing.T) {
	for _, x := range []int32{-32768, -1131, -108, -107, 0, 107, 108, 1131, 1132, 32767} {
		code, err := encodeInt(x)
		if err != nil {
			t.Errorf("%d: %v", x, err)
			continue
		}
		_, _, _, err = decodeCharString(append(code, 14), 0)
		if err != nil {
			t.Errorf("%d: %v", x, err)
		}
	}
	if _, err := encodeInt(40000); err == nil {
		t.Error("out of range value not detected")
	}
}

func TestMissingMoveTo(t *testing.T) {
	g := NewGlyph("bad", 0)
	g.LineTo(1, 1)
	_, err := g.encodeCharString(0, 0, true)
	if err == nil {
		t.Error("missing moveto not detected")
	}
}

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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/fontc/dijkstra"
)

// encodeCharString returns the Type 2 charstring for the glyph.  If the
// rounded glyph width equals defaultWidth, the width is omitted.
// If optimize is set, the shortest sequence of charstring operators is
// searched for each sub-path.  Otherwise every drawing command is written
// as one rmoveto, rlineto or rrcurveto operator.
func (g *Glyph) encodeCharString(defaultWidth, nominalWidth int32, optimize bool) ([]byte, error) {
	var code [][]byte
	if w := otRound(g.Width); w != defaultWidth {
		x, err := encodeInt(w - nominalWidth)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: width: %w", g.Name, err)
		}
		code = append(code, x)
	}

	cmds, err := encodeArgs(g.Cmds)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %w", g.Name, err)
	}
	if len(cmds) > 0 && cmds[0].Op != OpMoveTo {
		return nil, fmt.Errorf("glyph %q: %w", g.Name, errMissingMoveTo)
	}

	for len(cmds) > 0 {
		if cmds[0].Op == OpMoveTo {
			mov := cmds[0]
			switch {
			case optimize && mov.Args[0] == 0:
				code = append(code, mov.code(1), t2vmoveto.Bytes())
			case optimize && mov.Args[1] == 0:
				code = append(code, mov.code(0), t2hmoveto.Bytes())
			default:
				code = append(code, mov.code(0), mov.code(1), t2rmoveto.Bytes())
			}
			cmds = cmds[1:]
			continue
		}

		k := 1
		for k < len(cmds) && cmds[k].Op != OpMoveTo {
			k++
		}
		path := cmds[:k]
		cmds = cmds[k:]

		if optimize {
			pathCode, err := encodeSubPath(path)
			if err != nil {
				return nil, fmt.Errorf("glyph %q: %w", g.Name, err)
			}
			code = append(code, pathCode...)
		} else {
			for _, cmd := range path {
				op := t2rlineto
				if cmd.Op == OpCurveTo {
					op = t2rrcurveto
				}
				code = copyOp(cmd.appendArgs(code), op)
			}
		}
	}
	code = append(code, t2endchar.Bytes())

	total := 0
	for _, b := range code {
		total += len(b)
	}
	res := make([]byte, 0, total)
	for _, b := range code {
		res = append(res, b...)
	}
	return res, nil
}

// encodeArgs converts the drawing commands to relative, integer
// coordinates.  Absolute coordinates are rounded before the differences
// are taken, so that rounding errors do not accumulate.
func encodeArgs(cmds []GlyphOp) ([]enCmd, error) {
	res := make([]enCmd, len(cmds))

	var posX, posY int32
	for i, cmd := range cmds {
		var want int
		switch cmd.Op {
		case OpMoveTo, OpLineTo:
			want = 2
		case OpCurveTo:
			want = 6
		default:
			return nil, fmt.Errorf("unexpected drawing command %s", cmd.Op)
		}
		if len(cmd.Args) != want {
			return nil, fmt.Errorf("%s: expected %d arguments, got %d", cmd.Op, want, len(cmd.Args))
		}

		args := make([]int32, want)
		for j := 0; j < want; j += 2 {
			x, y := otRound(cmd.Args[j]), otRound(cmd.Args[j+1])
			args[j], args[j+1] = x-posX, y-posY
			posX, posY = x, y
		}
		res[i] = enCmd{Op: cmd.Op, Args: args}
		if err := res[i].prepare(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func encodeSubPath(cmds []enCmd) ([][]byte, error) {
	enc := encoder(cmds)

	// For every pair of vertices, keep only the shortest operator.
	best := make(map[[2]int]edge)
	for from := range cmds {
		for _, e := range enc.Edges(from) {
			key := [2]int{from, e.to}
			if old, ok := best[key]; !ok || e.length() < old.length() {
				best[key] = e
			}
		}
	}
	cost := func(k, l int) (int, bool) {
		e, ok := best[[2]int{k, l}]
		return e.length(), ok
	}

	_, path, err := dijkstra.ShortestPath(cost, len(cmds))
	if err != nil {
		return nil, err
	}

	var res [][]byte
	for i := 1; i < len(path); i++ {
		res = append(res, best[[2]int{path[i-1], path[i]}].code...)
	}
	return res, nil
}

// encoder is the graph searched by encodeSubPath.  Vertex i means that the
// first i commands of the sub-path have been encoded, edges are charstring
// operators together with their arguments.
type encoder []enCmd

type edge struct {
	code [][]byte
	to   int
}

// Edges returns all ways to encode a prefix of the remaining commands
// using a single charstring operator.
func (enc encoder) Edges(from int) []edge {
	if from >= len(enc) {
		return nil
	}
	cmds := enc[from:]

	var edges []edge
	add := func(code [][]byte, op t2op, n int) {
		edges = append(edges, edge{code: copyOp(code, op), to: from + n})
	}

	// Args: 0=dxa 1=dya   2=dxb 3=dyb   4=dxc 5=dyc
	if cmds[0].Op == OpLineTo {
		// {dx dy}+  rlineto
		// {dx dy}+ xb yb xc yc xd yd  rlinecurve
		var code [][]byte
		pos := 0
		for pos < len(cmds) && cmds[pos].Op == OpLineTo && len(code)+2 <= maxStack {
			code = cmds[pos].appendArgs(code)
			pos++
			add(code, t2rlineto, pos)
			if pos < len(cmds) && cmds[pos].Op == OpCurveTo && len(code)+6 <= maxStack {
				add(cmds[pos].appendArgs(code), t2rlinecurve, pos+1)
			}
		}

		// dx {dy dx}* dy?  hlineto
		// dy {dx dy}* dx?  vlineto
		for _, op := range []t2op{t2hlineto, t2vlineto} {
			horizontal := op == t2hlineto
			code = nil
			pos = 0
			for pos < len(cmds) && cmds[pos].Op == OpLineTo && len(code)+1 <= maxStack {
				cmd := cmds[pos]
				if horizontal && cmd.Args[1] != 0 || !horizontal && cmd.Args[0] != 0 {
					break
				}
				if horizontal {
					code = append(code, cmd.code(0))
				} else {
					code = append(code, cmd.code(1))
				}
				pos++
				add(code, op, pos)
				horizontal = !horizontal
			}
		}
		return edges
	}

	// (dxa dya dxb dyb dxc dyc)+ rrcurveto
	// (dxa dya dxb dyb dxc dyc)+ dxd dyd rcurveline
	var code [][]byte
	pos := 0
	for pos < len(cmds) && cmds[pos].Op == OpCurveTo && len(code)+6 <= maxStack {
		code = cmds[pos].appendArgs(code)
		pos++
		add(code, t2rrcurveto, pos)
		if pos < len(cmds) && cmds[pos].Op == OpLineTo && len(code)+2 <= maxStack {
			add(cmds[pos].appendArgs(code), t2rcurveline, pos+1)
		}
	}

	// dy1? {dxa dxb dyb dxc}+ hhcurveto
	// dx1? {dya dxb dyb dyc}+ vvcurveto
	hhvv := []struct {
		op   t2op
		offs int
	}{
		{t2hhcurveto, 1},
		{t2vvcurveto, 0},
	}
	for _, hv := range hhvv {
		code = nil
		pos = 0
		for pos < len(cmds) && cmds[pos].Op == OpCurveTo {
			cmd := cmds[pos]
			if cmd.Args[4+hv.offs] != 0 {
				break
			}
			n := 4
			if cmd.Args[hv.offs] != 0 {
				if pos > 0 {
					break
				}
				n = 5
			}
			if len(code)+n > maxStack {
				break
			}
			if n == 5 {
				code = append(code, cmd.code(hv.offs))
			}
			code = append(code,
				cmd.code(1-hv.offs),
				cmd.code(2),
				cmd.code(3),
				cmd.code(5-hv.offs))
			pos++
			add(code, hv.op, pos)
		}
	}

	// dx1 dx2 dy2 dy3 {dya dxb dyb dxc dxd dxe dye dyf}* dxf?  hvcurveto
	// dy1 dx2 dy2 dx3 {dxa dxb dyb dyc dyd dxe dye dxf}* dyf?  vhcurveto
	for _, op := range []t2op{t2hvcurveto, t2vhcurveto} {
		// offs is 0 for curves starting horizontally, 1 for vertical starts
		offs := 0
		if op == t2vhcurveto {
			offs = 1
		}
		code = nil
		pos = 0
		for pos < len(cmds) && cmds[pos].Op == OpCurveTo {
			cmd := cmds[pos]
			if cmd.Args[1-offs] != 0 {
				break
			}
			endAligned := cmd.Args[4+offs] == 0
			n := 4
			if !endAligned {
				n = 5
			}
			if len(code)+n > maxStack {
				break
			}
			code = append(code,
				cmd.code(offs),
				cmd.code(2),
				cmd.code(3),
				cmd.code(5-offs))
			if !endAligned {
				code = append(code, cmd.code(4+offs))
			}
			pos++
			add(code, op, pos)
			if !endAligned {
				break
			}
			offs = 1 - offs
		}
	}

	return edges
}

func (e edge) length() int {
	l := 0
	for _, b := range e.code {
		l += len(b)
	}
	return l
}

const maxStack = 48

var errMissingMoveTo = errors.New("path does not start with a moveto")

// enCmd is a drawing command with relative, integer arguments, together
// with the charstring encoding of each argument.
type enCmd struct {
	Op    GlyphOpType
	Args  []int32
	codes [][]byte
}

func (c *enCmd) prepare() error {
	c.codes = make([][]byte, len(c.Args))
	for i, a := range c.Args {
		code, err := encodeInt(a)
		if err != nil {
			return err
		}
		c.codes[i] = code
	}
	return nil
}

func (c enCmd) code(i int) []byte {
	return c.codes[i]
}

func (c enCmd) appendArgs(code [][]byte) [][]byte {
	return append(code[:len(code):len(code)], c.codes...)
}

func (c enCmd) String() string {
	return fmt.Sprint(c.Args, " ", c.Op)
}

// encodeInt returns the charstring encoding of an integer operand.
func encodeInt(x int32) ([]byte, error) {
	switch {
	case x >= -107 && x <= 107:
		return []byte{byte(x + 139)}, nil
	case x > 107 && x <= 1131:
		x -= 108
		return []byte{byte(x>>8 + 247), byte(x)}, nil
	case x < -107 && x >= -1131:
		x = -108 - x
		return []byte{byte(x>>8 + 251), byte(x)}, nil
	case x >= -32768 && x <= 32767:
		return []byte{28, byte(x >> 8), byte(x)}, nil
	default:
		return nil, fmt.Errorf("value %d out of range", x)
	}
}

// otRound rounds half-way values towards positive infinity.
func otRound(x float64) int32 {
	return int32(math.Floor(x + 0.5))
}

func copyOp(data [][]byte, op t2op) [][]byte {
	res := make([][]byte, len(data)+1)
	copy(res, data)
	res[len(data)] = op.Bytes()
	return res
}

type t2op uint16

// Bytes returns the charstring encoding of the operator.
func (op t2op) Bytes() []byte {
	if op > 255 {
		return []byte{byte(op >> 8), byte(op)}
	}
	return []byte{byte(op)}
}

func (op t2op) String() string {
	switch op {
	case t2vmoveto:
		return "vmoveto"
	case t2rlineto:
		return "rlineto"
	case t2hlineto:
		return "hlineto"
	case t2vlineto:
		return "vlineto"
	case t2rrcurveto:
		return "rrcurveto"
	case t2endchar:
		return "endchar"
	case t2rmoveto:
		return "rmoveto"
	case t2hmoveto:
		return "hmoveto"
	case t2rcurveline:
		return "rcurveline"
	case t2rlinecurve:
		return "rlinecurve"
	case t2vvcurveto:
		return "vvcurveto"
	case t2hhcurveto:
		return "hhcurveto"
	case t2vhcurveto:
		return "vhcurveto"
	case t2hvcurveto:
		return "hvcurveto"
	}
	return fmt.Sprintf("t2op(%d)", op)
}

const (
	t2vmoveto    t2op = 0x0004
	t2rlineto    t2op = 0x0005
	t2hlineto    t2op = 0x0006
	t2vlineto    t2op = 0x0007
	t2rrcurveto  t2op = 0x0008
	t2endchar    t2op = 0x000e
	t2rmoveto    t2op = 0x0015
	t2hmoveto    t2op = 0x0016
	t2rcurveline t2op = 0x0018
	t2rlinecurve t2op = 0x0019
	t2vvcurveto  t2op = 0x001a
	t2hhcurveto  t2op = 0x001b
	t2vhcurveto  t2op = 0x001e
	t2hvcurveto  t2op = 0x001f
)

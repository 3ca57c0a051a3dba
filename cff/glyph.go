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
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Glyph represents a glyph in a CFF font.
//
// Glyph implements the drawing operations of an outline pen.  Coordinates
// are stored unrounded; they are rounded to integers when the charstring is
// encoded.
type Glyph struct {
	Name  string
	Width float64
	Cmds  []GlyphOp

	start, current vec.Vec2
}

// NewGlyph allocates a new glyph.
func NewGlyph(name string, width float64) *Glyph {
	return &Glyph{
		Name:  name,
		Width: width,
	}
}

func (g *Glyph) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Glyph %q (width %g):\n", g.Name, g.Width)
	for i, cmd := range g.Cmds {
		fmt.Fprintf(b, "  - Cmds[%d]: %s\n", i, cmd)
	}
	return b.String()
}

// MoveTo starts a new sub-path and moves the current point to (x, y).
// The previous sub-path, if any, is closed.
func (g *Glyph) MoveTo(x, y float64) {
	g.Cmds = append(g.Cmds, GlyphOp{
		Op:   OpMoveTo,
		Args: []float64{x, y},
	})
	g.start = vec.Vec2{X: x, Y: y}
	g.current = g.start
}

// LineTo adds a straight line to the current sub-path.
func (g *Glyph) LineTo(x, y float64) {
	g.Cmds = append(g.Cmds, GlyphOp{
		Op:   OpLineTo,
		Args: []float64{x, y},
	})
	g.current = vec.Vec2{X: x, Y: y}
}

// CurveTo adds a cubic Bezier curve to the current sub-path.
func (g *Glyph) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	g.Cmds = append(g.Cmds, GlyphOp{
		Op:   OpCurveTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
	g.current = vec.Vec2{X: x3, Y: y3}
}

// QCurveTo adds a quadratic Bezier curve to the current sub-path.
// The curve is stored as the equivalent cubic curve.
func (g *Glyph) QCurveTo(x1, y1, x2, y2 float64) {
	p0 := g.current
	q := vec.Vec2{X: x1, Y: y1}
	p := vec.Vec2{X: x2, Y: y2}
	c1 := p0.Add(q.Sub(p0).Mul(2.0 / 3.0))
	c2 := p.Add(q.Sub(p).Mul(2.0 / 3.0))
	g.CurveTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

// ClosePath ends the current sub-path.  CFF sub-paths are closed
// implicitly, so this only resets the current point.
func (g *Glyph) ClosePath() {
	g.current = g.start
}

// GlyphOp is a CFF glyph drawing command.
type GlyphOp struct {
	Op   GlyphOpType
	Args []float64
}

func (c GlyphOp) String() string {
	return fmt.Sprint(c.Args, " ", c.Op)
}

// GlyphOpType is the type of a CFF glyph drawing command.
type GlyphOpType byte

const (
	// OpMoveTo closes the previous subpath and starts a new one at the given point.
	OpMoveTo GlyphOpType = iota + 1

	// OpLineTo appends a straight line segment from the previous point to the given point.
	OpLineTo

	// OpCurveTo appends a Bezier curve segment from the previous point to the given point.
	OpCurveTo
)

func (op GlyphOpType) String() string {
	switch op {
	case OpMoveTo:
		return "moveto"
	case OpLineTo:
		return "lineto"
	case OpCurveTo:
		return "curveto"
	default:
		return fmt.Sprintf("GlyphOpType(%d)", op)
	}
}

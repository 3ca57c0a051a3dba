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
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/fontc/cff"
	"seehuhn.de/go/fontc/model"
	"seehuhn.de/go/fontc/sfnt/header"
)

// OutlineTable is an encoded-on-demand outline table.
type OutlineTable interface {
	Encode(w io.Writer) error
}

// OutlineCompiler adds the glyph outlines to a table set.  It is called
// after all other tables have been built, and can use their contents.
type OutlineCompiler interface {
	// ScalerType returns the sfnt version tag for fonts using these
	// outlines.
	ScalerType() uint32

	// CompileOutlines returns the table tag and the outline table.
	CompileOutlines(ctx *Context, d *Derived, ts *TableSet) (string, OutlineTable, error)
}

// CFFOutlines compiles the glyph outlines into a "CFF " table.
type CFFOutlines struct {
	// Optimize enables the search for the shortest charstring operators.
	Optimize bool
}

// ScalerType implements the [OutlineCompiler] interface.
func (c *CFFOutlines) ScalerType() uint32 {
	return header.ScalerTypeCFF
}

// CompileOutlines implements the [OutlineCompiler] interface.
func (c *CFFOutlines) CompileOutlines(ctx *Context, d *Derived, ts *TableSet) (string, OutlineTable, error) {
	upm := ctx.UnitsPerEm()
	if upm <= 0 {
		return "", nil, fmt.Errorf("invalid unitsPerEm %d", upm)
	}
	q := 1 / float64(upm)

	font := &cff.Font{
		FontName:           ctx.PostScriptFontName(),
		Version:            ctx.Version(),
		Notice:             ctx.postScriptString("trademark", ""),
		Copyright:          ctx.postScriptString("copyright", ctx.Font.Copyright),
		FullName:           ctx.FullName(),
		FamilyName:         ctx.PreferredFamilyName(),
		Weight:             ctx.PreferredSubfamilyName(),
		ItalicAngle:        ctx.Master.ItalicAngle,
		UnderlinePosition:  float64(otRound(ctx.UnderlinePosition())),
		UnderlineThickness: float64(otRound(ctx.UnderlineThickness())),
		FontMatrix:         matrix.Matrix{q, 0, 0, q, 0, 0},
		Private:            ctx.privateDict(ts),
		Optimize:           c.Optimize,
	}
	if b := d.FontBounds; !b.IsEmpty() {
		font.FontBBox = funit.Rect16{
			LLx: toInt16(b.XMin),
			LLy: toInt16(b.YMin),
			URx: toInt16(b.XMax),
			URy: toInt16(b.YMax),
		}
	}

	for gid, name := range d.Glyphs.Order {
		width := 0.0
		if ts.Hmtx != nil {
			width = float64(ts.Hmtx[gid].Advance)
		}
		g := cff.NewGlyph(name, width)
		layer := d.Glyphs.ByName[name].LayerForMaster(ctx.Master)
		ctx.drawLayer(name, layer, g)
		font.Glyphs = append(font.Glyphs, g)
	}

	return "CFF ", font, nil
}

// drawLayer draws the paths of a layer.  Malformed paths are left out,
// and an error is logged for each of them.
func (ctx *Context) drawLayer(name string, layer *model.Layer, pen Pen) {
	for i, p := range layer.Paths {
		err := DrawPath(p, pen)
		if err != nil {
			ctx.Log.Error(InvalidPath, Fields{"name": name, "path": i, "reason": err.Error()})
		}
	}
}

// privateDict collects the hinting parameters and the width statistics
// for the Private DICT.
func (ctx *Context) privateDict(ts *TableSet) *cff.Private {
	private := cff.NewPrivate()

	defaultWidth, nominalWidth := ctx.WidthStats(glyphAdvances(ts.Hmtx))
	private.DefaultWidthX = int32(defaultWidth)
	private.NominalWidthX = int32(nominalWidth)

	blues := ctx.BlueValues()
	otherBlues := ctx.OtherBlues()
	if len(blues) > 0 || len(otherBlues) > 0 {
		private.BlueFuzz = 0
		private.BlueShift = 7
		private.BlueScale = ctx.BlueScale()
		private.ForceBold = false
		private.BlueValues = roundAll(blues)
		private.OtherBlues = roundAll(otherBlues)
	}

	hStems := ctx.Master.HStems
	vStems := ctx.Master.VStems
	if len(hStems) > 0 && len(vStems) > 0 {
		private.StemSnapH = roundAll(hStems)
		private.StemSnapV = roundAll(vStems)
		private.StdHW = private.StemSnapH[0]
		private.StdVW = private.StemSnapV[0]
	}

	return private
}

func roundAll(xx []float64) []float64 {
	res := make([]float64, len(xx))
	for i, x := range xx {
		res[i] = float64(otRound(x))
	}
	return res
}

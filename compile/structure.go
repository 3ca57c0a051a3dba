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

	"golang.org/x/exp/slices"

	"seehuhn.de/go/fontc/model"
)

// GlyphSet is the list of glyphs written to the font, in glyph ID order.
// The first glyph is always .notdef and every name occurs only once.
type GlyphSet struct {
	Order  []string
	ByName map[string]*model.Glyph
}

// Glyph returns the glyph with the given glyph ID.
func (gs *GlyphSet) Glyph(gid int) *model.Glyph {
	return gs.ByName[gs.Order[gid]]
}

// Len returns the number of glyphs in the set.
func (gs *GlyphSet) Len() int {
	return len(gs.Order)
}

// ProductionGlyphs determines the glyph order of the compiled font.
//
// Glyph names are restricted to the characters allowed by GlyphName; a
// warning is logged for every name which changes.  If a name is used by
// more than one glyph, an error is logged.  The name keeps the position of
// its first occurrence, and the definition of its last occurrence.  If the
// font has no .notdef glyph, one is synthesized.
func (ctx *Context) ProductionGlyphs() *GlyphSet {
	gs := &GlyphSet{
		Order:  []string{notdefName},
		ByName: make(map[string]*model.Glyph, len(ctx.Font.Glyphs)+1),
	}

	var duplicates []string
	for i, g := range ctx.Font.Glyphs {
		name := ctx.productionName(i, g.Name)
		if _, seen := gs.ByName[name]; seen {
			duplicates = append(duplicates, name)
		} else if name != notdefName {
			gs.Order = append(gs.Order, name)
		}
		gs.ByName[name] = g
	}
	if len(duplicates) > 0 {
		ctx.Log.Error(DuplicateGlyphs, Fields{"duplicates": duplicates})
	}

	if _, ok := gs.ByName[notdefName]; !ok {
		gs.ByName[notdefName] = ctx.makeNotdef()
	}
	return gs
}

const notdefName = ".notdef"

// productionName returns the name under which the i-th glyph of the font
// is stored.  Names which contain no allowed characters at all are
// replaced by "glyph" followed by the index.
func (ctx *Context) productionName(i int, name string) string {
	res := GlyphName(name)
	if res == "" {
		res = fmt.Sprintf("glyph%d", i)
	}
	if res != name {
		ctx.Log.Warning(GlyphRenamed, Fields{"name": name, "result": res})
	}
	return res
}

// GlyphBounds returns the rounded bounding box of every glyph in the set,
// in glyph ID order, together with the union of all these boxes.  Glyphs
// without outlines have empty bounds.
func (ctx *Context) GlyphBounds(gs *GlyphSet) ([]model.Rect, model.Rect) {
	bounds := make([]model.Rect, gs.Len())
	font := model.EmptyRect()
	for i := range gs.Order {
		layer := gs.Glyph(i).LayerForMaster(ctx.Master)
		bounds[i] = layer.Bounds().Round()
		font.Union(bounds[i])
	}
	return bounds, font
}

// UnicodeMap maps every code point of the font to a glyph name.  If a code
// point is claimed by more than one glyph, the first glyph in glyph order
// keeps it and an error is logged for each of the others.
func (ctx *Context) UnicodeMap(gs *GlyphSet) map[rune]string {
	res := make(map[rune]string)
	for _, name := range gs.Order {
		g := gs.ByName[name]
		for _, r := range g.Unicodes {
			if old, ok := res[r]; ok {
				ctx.Log.Error(DuplicateEncoding, Fields{
					"unicode": fmt.Sprintf("%04X", r),
					"name":    name,
					"oldName": old,
				})
				continue
			}
			res[r] = name
		}
	}
	return res
}

// sortedCodePoints returns the keys of the unicode map in increasing order.
func sortedCodePoints(cmap map[rune]string) []rune {
	res := make([]rune, 0, len(cmap))
	for r := range cmap {
		res = append(res, r)
	}
	slices.Sort(res)
	return res
}

// MinMaxCharIndex returns the smallest and largest code point of the font,
// for use in the OS/2 table.  Both values are limited to 0xFFFF.
func MinMaxCharIndex(cmap map[rune]string) (uint16, uint16) {
	if len(cmap) == 0 {
		return 0xFFFF, 0xFFFF
	}
	cc := sortedCodePoints(cmap)
	return clampBMP(cc[0]), clampBMP(cc[len(cc)-1])
}

func clampBMP(r rune) uint16 {
	if r > 0xFFFF {
		return 0xFFFF
	}
	return uint16(r)
}

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
	"time"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontc/model"
	"seehuhn.de/go/fontc/sfnt/head"
	"seehuhn.de/go/fontc/sfnt/hmtx"
	"seehuhn.de/go/fontc/sfnt/maxp"
	"seehuhn.de/go/fontc/sfnt/os2"
	"seehuhn.de/go/fontc/sfnt/post"
)

// Derived holds the whole-font structures which are computed before the
// tables are built.
type Derived struct {
	Glyphs      *GlyphSet
	GlyphBounds []model.Rect // in glyph ID order, rounded
	FontBounds  model.Rect
	CMap        map[rune]string
}

// Derive computes the glyph order, the glyph bounds and the character map.
func (ctx *Context) Derive() *Derived {
	gs := ctx.ProductionGlyphs()
	glyphBounds, fontBounds := ctx.GlyphBounds(gs)
	return &Derived{
		Glyphs:      gs,
		GlyphBounds: glyphBounds,
		FontBounds:  fontBounds,
		CMap:        ctx.UnicodeMap(gs),
	}
}

func (ctx *Context) buildHead(d *Derived, modified time.Time) *head.Info {
	info := &head.Info{
		FontRevision:      ctx.FontRevision(),
		Flags:             head.FlagBaselineAtY0 | head.FlagLSBAtX0,
		UnitsPerEm:        uint16(ctx.UnitsPerEm()),
		Created:           ctx.Font.Date,
		Modified:          modified,
		MacStyle:          ctx.MacStyle(),
		LowestRecPPEM:     6,
		FontDirectionHint: 2,
	}
	if b := d.FontBounds; !b.IsEmpty() {
		info.XMin = toInt16(b.XMin)
		info.YMin = toInt16(b.YMin)
		info.XMax = toInt16(b.XMax)
		info.YMax = toInt16(b.YMax)
	}
	return info
}

// buildHmtx returns the advance width and left side bearing of every
// glyph.  Glyphs without outlines have a left side bearing of 0.
func (ctx *Context) buildHmtx(d *Derived) []hmtx.Metric {
	metrics := make([]hmtx.Metric, d.Glyphs.Len())
	for gid, name := range d.Glyphs.Order {
		layer := d.Glyphs.ByName[name].LayerForMaster(ctx.Master)
		width := otRound(ctx.LayerWidth(name, layer))
		if width > math.MaxUint16 {
			width = math.MaxUint16
		}
		metrics[gid].Advance = uint16(width)
		if b := d.GlyphBounds[gid]; !b.IsEmpty() {
			metrics[gid].LSB = toInt16(b.XMin)
		}
	}
	return metrics
}

// buildHhea computes the hhea table.  The side bearing and extent
// statistics only include glyphs which have outlines.
func (ctx *Context) buildHhea(d *Derived, metrics []hmtx.Metric) *hmtx.Hhea {
	asc, desc, gap := ctx.TypoMetrics()
	rise, run := ctx.CaretSlope()
	info := &hmtx.Hhea{
		Ascent:         toInt16(asc),
		Descent:        toInt16(desc),
		LineGap:        toInt16(gap),
		CaretSlopeRise: int16(rise),
		CaretSlopeRun:  int16(run),
	}

	if metrics == nil {
		ctx.Log.Warning(MissingHmtx, Fields{"target": "hhea"})
		return info
	}

	first := true
	for gid, m := range metrics {
		if m.Advance > info.AdvanceWidthMax {
			info.AdvanceWidthMax = m.Advance
		}
		b := d.GlyphBounds[gid]
		if b.IsEmpty() {
			continue
		}
		lsb := m.LSB
		rsb := toInt16(float64(m.Advance) - float64(lsb) - b.Dx())
		extent := toInt16(float64(lsb) + b.Dx())
		if first || lsb < info.MinLeftSideBearing {
			info.MinLeftSideBearing = lsb
		}
		if first || rsb < info.MinRightSideBearing {
			info.MinRightSideBearing = rsb
		}
		if first || extent > info.XMaxExtent {
			info.XMaxExtent = extent
		}
		first = false
	}
	return info
}

func buildMaxp(d *Derived) *maxp.Info {
	return &maxp.Info{NumGlyphs: d.Glyphs.Len()}
}

// buildCMap constructs format 4 subtables for the BMP characters, and in
// case the font contains characters outside the BMP, also format 12
// subtables covering all characters.
func buildCMap(d *Derived) cmap.Table {
	gid := make(map[string]glyph.ID, d.Glyphs.Len())
	for i, name := range d.Glyphs.Order {
		gid[name] = glyph.ID(i)
	}

	bmp := cmap.Format4{}
	full := cmap.Format12{}
	hasNonBMP := false
	for r, name := range d.CMap {
		full[uint32(r)] = gid[name]
		if r > 0xFFFF {
			hasNonBMP = true
			continue
		}
		bmp[uint16(r)] = gid[name]
	}
	bmpData := bmp.Encode(0)

	table := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: bmpData,
		{PlatformID: 3, EncodingID: 1}: bmpData,
	}
	if hasNonBMP {
		fullData := full.Encode(0)
		table[cmap.Key{PlatformID: 0, EncodingID: 4}] = fullData
		table[cmap.Key{PlatformID: 3, EncodingID: 10}] = fullData
	}
	return table
}

func (ctx *Context) buildOS2(d *Derived, metrics []hmtx.Metric, vendor string) *os2.Info {
	advances := glyphAdvances(metrics)
	subX, subY := ctx.SubscriptOffset()
	superX, superY := ctx.SuperscriptOffset()
	sizeX, sizeY := ctx.ScriptSize()
	asc, desc, gap := ctx.TypoMetrics()
	winAsc, winDesc := ctx.WinMetrics(d.FontBounds)
	first, last := MinMaxCharIndex(d.CMap)

	info := &os2.Info{
		AvgCharWidth: toInt16(float64(ctx.AverageCharWidth(advances))),
		WeightClass:  os2.WeightNormal,
		WidthClass:   os2.WidthNormal,
		PermUse:      os2.PermView,

		SubscriptXSize:     toInt16(sizeX),
		SubscriptYSize:     toInt16(sizeY),
		SubscriptXOffset:   toInt16(subX),
		SubscriptYOffset:   toInt16(subY),
		SuperscriptXSize:   toInt16(sizeX),
		SuperscriptYSize:   toInt16(sizeY),
		SuperscriptXOffset: toInt16(superX),
		SuperscriptYOffset: toInt16(superY),
		StrikeoutSize:      toInt16(ctx.UnderlineThickness()),
		StrikeoutPosition:  toInt16(ctx.StrikeoutPosition()),

		Vendor:    vendor,
		Selection: ctx.FsSelection(),

		FirstCharIndex: first,
		LastCharIndex:  last,

		TypoAscender:  toInt16(asc),
		TypoDescender: toInt16(desc),
		TypoLineGap:   toInt16(gap),
		WinAscent:     toUint16(winAsc),
		WinDescent:    toUint16(winDesc),

		XHeight:   toInt16(ctx.Master.XHeight),
		CapHeight: toInt16(ctx.Master.CapHeight),
		BreakChar: ' ',
	}
	packBits(info.UnicodeRange[:], UnicodeRanges(d.CMap))
	packBits(info.CodePageRange[:], CodePageRanges(d.CMap))
	return info
}

func (ctx *Context) buildPost() *post.Info {
	return &post.Info{
		ItalicAngle:        ctx.Master.ItalicAngle,
		UnderlinePosition:  toInt16(ctx.UnderlinePosition()),
		UnderlineThickness: toInt16(ctx.UnderlineThickness()),
	}
}

// toInt16 rounds x and clamps it to the range of a 16-bit integer.
func toInt16(x float64) funit.Int16 {
	v := otRound(x)
	switch {
	case v < math.MinInt16:
		return math.MinInt16
	case v > math.MaxInt16:
		return math.MaxInt16
	}
	return funit.Int16(v)
}

func toUint16(x float64) uint16 {
	v := otRound(x)
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(v)
}

// glyphAdvances returns the advance widths from the hmtx metrics, or nil
// if there are no metrics.
func glyphAdvances(metrics []hmtx.Metric) []int {
	if metrics == nil {
		return nil
	}
	res := make([]int, len(metrics))
	for i, m := range metrics {
		res[i] = int(m.Advance)
	}
	return res
}

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
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/fontc/model"
	"seehuhn.de/go/fontc/sfnt/head"
	"seehuhn.de/go/fontc/sfnt/os2"
)

// otRound rounds half-way values towards positive infinity.
func otRound(x float64) int {
	return int(model.RoundHalfUp(x))
}

// Version returns the font version in the form "major.minor", where the
// minor version always has three digits.  Longer minor versions are
// truncated, with a warning.
func (ctx *Context) Version() string {
	if ctx.version != "" {
		return ctx.version
	}

	minor := strconv.Itoa(ctx.Font.VersionMinor)
	padded := minor
	for len(padded) < 3 {
		padded = "0" + padded
	}
	actual := padded[:3]
	if len(minor) > 3 {
		ctx.Log.Warning(AttrTruncated, Fields{"attr": "versionMinor", "result": actual})
	}
	ctx.version = fmt.Sprintf("%d.%s", ctx.Font.VersionMajor, actual)
	return ctx.version
}

// VersionString returns the version string for the name table.
func (ctx *Context) VersionString() string {
	return "Version " + ctx.Version()
}

// FontRevision returns the font version in the format of the head table.
func (ctx *Context) FontRevision() head.Version {
	v, _ := strconv.ParseFloat(ctx.Version(), 64)
	return head.VersionFromFloat(v)
}

// UnitsPerEm returns the rounded size of the em square.
func (ctx *Context) UnitsPerEm() int {
	return otRound(float64(ctx.Font.UnitsPerEm))
}

func (ctx *Context) upm() float64 {
	return float64(ctx.Font.UnitsPerEm)
}

// StyleMapStyleName returns the lower-case style used for style linking.
// This is the master name if it is one of "regular", "bold", "italic" and
// "bold italic", and "regular" otherwise.
func (ctx *Context) StyleMapStyleName() string {
	name := strings.ToLower(ctx.Master.Name)
	switch name {
	case "regular", "bold", "italic", "bold italic":
		return name
	}
	return "regular"
}

// StyleMapFamilyName returns the family name used for style linking.
func (ctx *Context) StyleMapFamilyName() string {
	return ctx.Font.FamilyName
}

// PreferredFamilyName returns the typographic family name.
func (ctx *Context) PreferredFamilyName() string {
	return ctx.Font.FamilyName
}

// PreferredSubfamilyName returns the typographic subfamily name.
func (ctx *Context) PreferredSubfamilyName() string {
	return ctx.Master.Name
}

// FullName returns the full font name, "family subfamily".
func (ctx *Context) FullName() string {
	return ctx.PreferredFamilyName() + " " + ctx.PreferredSubfamilyName()
}

// PostScriptFontName returns the PostScript name of the font, for example
// "OpenSans-BoldItalic".
func (ctx *Context) PostScriptFontName() string {
	return PostScriptName(ctx.PreferredFamilyName() + "-" + ctx.PreferredSubfamilyName())
}

// UniqueID returns the unique font identifier for the name table.
func (ctx *Context) UniqueID(vendor string) string {
	version := strings.TrimPrefix(ctx.VersionString(), "Version ")
	return version + ";" + vendor + ";" + ctx.PostScriptFontName()
}

// MacStyle returns the macStyle bits of the head table.
func (ctx *Context) MacStyle() head.MacStyle {
	var style head.MacStyle
	name := ctx.StyleMapStyleName()
	if strings.HasPrefix(name, "bold") {
		style |= head.MacStyleBold
	}
	if strings.HasSuffix(name, "italic") {
		style |= head.MacStyleItalic
	}
	return style
}

// FsSelection returns the fsSelection bits of the OS/2 table.
func (ctx *Context) FsSelection() os2.Selection {
	var sel os2.Selection
	name := ctx.StyleMapStyleName()
	if name == "regular" {
		sel |= os2.SelectionRegular
	} else {
		if strings.HasPrefix(name, "bold") {
			sel |= os2.SelectionBold
		}
		if strings.HasSuffix(name, "italic") {
			sel |= os2.SelectionItalic
		}
	}
	sel |= os2.SelectionUseTypoMetrics
	return sel
}

// CaretSlope returns the rise and run of the caret slope.
func (ctx *Context) CaretSlope() (rise, run int) {
	angle := ctx.Master.ItalicAngle
	if angle == 0 {
		return 1, 0
	}
	return 1000, otRound(math.Tan(radians(-angle)) * 1000)
}

// TypoMetrics returns the typographic ascender, descender and line gap.
// The line gap makes the line height 120% of the em size.
func (ctx *Context) TypoMetrics() (ascender, descender, lineGap float64) {
	ascender = ctx.Master.Ascender
	descender = ctx.Master.Descender
	lineGap = math.Max(float64(otRound(ctx.upm()*1.2))-ascender+descender, 0)
	return ascender, descender, lineGap
}

// WinMetrics returns the Windows clipping ascent and descent.  The descent
// is returned as a positive number.
func (ctx *Context) WinMetrics(fontBounds model.Rect) (ascent, descent float64) {
	asc, desc, _ := ctx.TypoMetrics()
	ascent = math.Max(asc, fontBounds.YMax)
	descent = math.Abs(math.Min(desc, fontBounds.YMin))
	return ascent, descent
}

// SubscriptOffset returns the offset of subscript glyphs.  The horizontal
// offset follows the slant of italic fonts.
func (ctx *Context) SubscriptOffset() (x, y float64) {
	y = ctx.upm() * 0.075
	return adjustOffset(-y, ctx.Master.ItalicAngle), y
}

// SuperscriptOffset returns the offset of superscript glyphs.
func (ctx *Context) SuperscriptOffset() (x, y float64) {
	y = ctx.upm() * 0.35
	return adjustOffset(y, ctx.Master.ItalicAngle), y
}

// ScriptSize returns the size of sub- and superscript glyphs.
func (ctx *Context) ScriptSize() (x, y float64) {
	return ctx.upm() * 0.65, ctx.upm() * 0.6
}

func adjustOffset(offset, angle float64) float64 {
	if angle == 0 {
		return 0
	}
	return offset * math.Tan(radians(-angle))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// UnderlinePosition returns the position of the underline.
func (ctx *Context) UnderlinePosition() float64 {
	return ctx.upm() * -0.075
}

// UnderlineThickness returns the thickness of the underline, which is
// also used for the strikeout.
func (ctx *Context) UnderlineThickness() float64 {
	return ctx.upm() * 0.05
}

// StrikeoutPosition returns the position of the strikeout stroke.
func (ctx *Context) StrikeoutPosition() float64 {
	return ctx.Master.XHeight * 0.6
}

// LayerWidth returns the advance width of a glyph layer.  Negative widths
// are logged as errors and replaced by 0.
func (ctx *Context) LayerWidth(glyphName string, layer *model.Layer) float64 {
	if layer.Width < 0 {
		ctx.Log.Error(NegativeWidth, Fields{"name": glyphName, "width": layer.Width})
		return 0
	}
	return layer.Width
}

// BlueValues returns the top alignment zones as a flat list of pairs.
func (ctx *Context) BlueValues() []float64 {
	return collectBlues(ctx.Master.AlignmentZones, true)
}

// OtherBlues returns the bottom alignment zones as a flat list of pairs.
func (ctx *Context) OtherBlues() []float64 {
	return collectBlues(ctx.Master.AlignmentZones, false)
}

func collectBlues(zones []model.AlignmentZone, top bool) []float64 {
	var res []float64
	for _, z := range zones {
		if (z.Position >= 0) != top {
			continue
		}
		res = append(res, z.Position, z.Position+z.Size)
	}
	return res
}

// BlueScale returns the BlueScale value of the private DICT.  The value is
// chosen such that overshoot suppression is active for the largest zone at
// all sizes where the zone is less than 3/4 pixel high.
func (ctx *Context) BlueScale() float64 {
	maxZoneHeight := 0.0
	for _, blues := range [][]float64{ctx.BlueValues(), ctx.OtherBlues()} {
		for i := 0; i+1 < len(blues); i += 2 {
			maxZoneHeight = math.Max(maxZoneHeight, math.Abs(blues[i+1]-blues[i]))
		}
	}
	if maxZoneHeight > 0 {
		return 3 / (4 * maxZoneHeight)
	}
	return defaultBlueScale
}

const defaultBlueScale = 0.039625

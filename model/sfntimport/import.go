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

// Package sfntimport reads TrueType and OpenType font files into the font
// object model.
//
// Only the information used by the compiler is imported: the names, the
// vertical metrics, the advance widths, the glyph outlines and the
// character map.  The font becomes a single master, named after the
// subfamily of the font.
package sfntimport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/fontc/model"
)

// Import parses a TrueType or OpenType font file.
func Import(data []byte) (*model.Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return FromFont(f)
}

// FromFont converts a parsed font into the font object model.
func FromFont(f *sfnt.Font) (*model.Font, error) {
	b := &sfnt.Buffer{}
	upm := int(f.UnitsPerEm())
	if upm <= 0 {
		return nil, errors.New("sfntimport: invalid unitsPerEm")
	}
	// At this size, one font unit is one pixel.
	ppem := fixed.I(upm)

	res := model.NewFont()
	res.UnitsPerEm = upm
	res.FamilyName = getName(f, b, sfnt.NameIDTypographicFamily, sfnt.NameIDFamily)
	res.Copyright = getName(f, b, sfnt.NameIDCopyright)
	res.Designer = getName(f, b, sfnt.NameIDDesigner)
	res.DesignerURL = getName(f, b, sfnt.NameIDDesignerURL)
	res.Manufacturer = getName(f, b, sfnt.NameIDManufacturer)
	res.ManufacturerURL = getName(f, b, sfnt.NameIDVendorURL)
	res.VersionMajor, res.VersionMinor = parseVersion(getName(f, b, sfnt.NameIDVersion))

	masterName := getName(f, b, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily)
	if masterName == "" {
		masterName = "Regular"
	}
	master, err := readMaster(f, b, masterName, ppem)
	if err != nil {
		return nil, err
	}
	res.Masters = []*model.Master{master}

	numGlyphs := f.NumGlyphs()
	unicodes, err := readCMap(f, b, numGlyphs)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool, numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		gid := sfnt.GlyphIndex(i)

		name, err := f.GlyphName(b, gid)
		if err != nil && err != sfnt.ErrNotFound {
			return nil, err
		}
		if i == 0 {
			name = ".notdef"
		} else if name == "" || used[name] {
			name = "gid" + strconv.Itoa(i)
		}
		used[name] = true

		layer, err := readLayer(f, b, gid, ppem)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}
		layer.MasterName = masterName

		res.Glyphs = append(res.Glyphs, &model.Glyph{
			Name:     name,
			Unicodes: unicodes[gid],
			Layers:   []*model.Layer{layer},
		})
	}
	return res, nil
}

// getName returns the first of the given names which is present in the
// font, or the empty string.
func getName(f *sfnt.Font, b *sfnt.Buffer, ids ...sfnt.NameID) string {
	for _, id := range ids {
		s, err := f.Name(b, id)
		if err == nil && s != "" {
			return s
		}
	}
	return ""
}

// parseVersion extracts major and minor version from a version string
// like "Version 2.010".  The minor version is the decimal value of the
// digits after the period, so that "2.010" becomes 2, 10.
func parseVersion(s string) (major, minor int) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "Version"))
	if i := strings.IndexFunc(s, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	}); i >= 0 {
		s = s[:i]
	}
	majorStr, minorStr, _ := strings.Cut(s, ".")
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return 1, 0
	}
	minor, _ = strconv.Atoi(minorStr)
	return major, minor
}

func readMaster(f *sfnt.Font, b *sfnt.Buffer, name string, ppem fixed.Int26_6) (*model.Master, error) {
	m, err := f.Metrics(b, ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}

	master := model.NewMaster(name)
	master.Ascender = toUnits(m.Ascent)
	master.Descender = -toUnits(m.Descent)
	if m.CapHeight > 0 {
		master.CapHeight = toUnits(m.CapHeight)
	}
	if m.XHeight > 0 {
		master.XHeight = toUnits(m.XHeight)
	}
	if post := f.PostTable(); post != nil {
		master.ItalicAngle = post.ItalicAngle
	}
	return master, nil
}

// readCMap finds the code points of all glyphs, by looking up every
// character in the first two planes of Unicode.
func readCMap(f *sfnt.Font, b *sfnt.Buffer, numGlyphs int) (map[sfnt.GlyphIndex][]rune, error) {
	res := make(map[sfnt.GlyphIndex][]rune)
	for r := rune(0); r < 0x20000; r++ {
		if r >= 0xD800 && r < 0xE000 {
			continue // surrogates
		}
		gid, err := f.GlyphIndex(b, r)
		if err != nil {
			return nil, err
		}
		if gid == 0 || int(gid) >= numGlyphs {
			continue
		}
		res[gid] = append(res[gid], r)
	}
	return res, nil
}

// readLayer converts the outlines of a glyph into closed paths.
func readLayer(f *sfnt.Font, b *sfnt.Buffer, gid sfnt.GlyphIndex, ppem fixed.Int26_6) (*model.Layer, error) {
	adv, err := f.GlyphAdvance(b, gid, ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}
	segs, err := f.LoadGlyph(b, gid, ppem, nil)
	if err != nil {
		return nil, err
	}

	layer := &model.Layer{Width: toUnits(adv)}
	var cur *pathBuilder
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			layer.Paths = cur.appendTo(layer.Paths)
			cur = &pathBuilder{start: toPoint(seg.Args[0], model.PointLine)}
		case sfnt.SegmentOpLineTo:
			cur.add(toPoint(seg.Args[0], model.PointLine))
		case sfnt.SegmentOpQuadTo:
			cur.add(toPoint(seg.Args[0], model.PointOff))
			cur.add(toPoint(seg.Args[1], model.PointCurve))
		case sfnt.SegmentOpCubeTo:
			cur.add(toPoint(seg.Args[0], model.PointOff))
			cur.add(toPoint(seg.Args[1], model.PointOff))
			cur.add(toPoint(seg.Args[2], model.PointCurve))
		}
	}
	layer.Paths = cur.appendTo(layer.Paths)
	return layer, nil
}

// pathBuilder collects the points of a closed contour.  In the font model,
// the start point of a closed path is stored last.
type pathBuilder struct {
	start  model.Point
	points []model.Point
}

func (pb *pathBuilder) add(p model.Point) {
	if pb == nil {
		return
	}
	pb.points = append(pb.points, p)
}

func (pb *pathBuilder) appendTo(paths []*model.Path) []*model.Path {
	if pb == nil || len(pb.points) == 0 {
		return paths
	}
	points := pb.points
	last := points[len(points)-1]
	if last.X != pb.start.X || last.Y != pb.start.Y {
		points = append(points, pb.start)
	}
	return append(paths, &model.Path{Points: points})
}

// toPoint undoes the flip of the y-axis done by LoadGlyph.
func toPoint(p fixed.Point26_6, tp string) model.Point {
	return model.Point{X: toUnits(p.X), Y: -toUnits(p.Y), Type: tp}
}

func toUnits(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

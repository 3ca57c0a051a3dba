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

// Package model contains the font object model read by the compiler.
//
// The types in this package describe a font the way a font editor sees it:
// a font has one or more masters, and every glyph has one layer per master.
// A layer holds the advance width and the outlines of the glyph, and
// outlines are lists of points with "move", "line" or "curve" tags.
//
// The compiler never modifies values of these types.
package model

import (
	"strconv"
	"strings"
	"time"
)

// Font is the root of the font object model.
type Font struct {
	FamilyName      string
	Copyright       string
	Designer        string
	DesignerURL     string
	Manufacturer    string
	ManufacturerURL string

	UnitsPerEm   int
	VersionMajor int
	VersionMinor int

	// Date is the creation date of the font.
	Date time.Time

	Masters []*Master
	Glyphs  []*Glyph

	// SelectedMasterName names the master which is compiled by default.
	// If this is empty, the first master is used.
	SelectedMasterName string
}

// NewFont returns a new font with the default settings of the font editor.
func NewFont() *Font {
	return &Font{
		FamilyName:   "New Font",
		UnitsPerEm:   1000,
		VersionMajor: 1,
		VersionMinor: 0,
		Date:         time.Now().UTC().Truncate(time.Second),
	}
}

// SelectedMaster returns the master which should be compiled by default.
// If the font has no masters, a detached default master named "Regular" is
// returned.
func (f *Font) SelectedMaster() *Master {
	if f.SelectedMasterName != "" {
		if m := f.MasterForName(f.SelectedMasterName); m != nil {
			return m
		}
	}
	if len(f.Masters) > 0 {
		return f.Masters[0]
	}
	return NewMaster("Regular")
}

// MasterForName returns the master with the given name,
// or nil if there is no such master.
func (f *Font) MasterForName(name string) *Master {
	for _, m := range f.Masters {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Master holds the per-master design parameters of a font.
type Master struct {
	Name string

	Ascender    float64
	CapHeight   float64
	Descender   float64 // negative
	XHeight     float64
	ItalicAngle float64 // degrees, counterclockwise from vertical

	AlignmentZones []AlignmentZone
	HStems         []float64
	VStems         []float64
}

// NewMaster returns a master with the default metrics of the font editor.
func NewMaster(name string) *Master {
	return &Master{
		Name:      name,
		Ascender:  800,
		CapHeight: 700,
		Descender: -200,
		XHeight:   500,
	}
}

// AlignmentZone is a vertical band used for hinting.
// Zones with Position >= 0 are top zones, the others are bottom zones.
type AlignmentZone struct {
	Position float64
	Size     float64
}

// Glyph is a single glyph of a font.
type Glyph struct {
	Name     string
	Unicodes []rune
	Layers   []*Layer
}

// LayerForMaster returns the layer of g which belongs to the master m.
// If g has no such layer, an empty layer with the default width is
// returned.  The returned layer is not attached to the glyph.
func (g *Glyph) LayerForMaster(m *Master) *Layer {
	for _, l := range g.Layers {
		if l.MasterName == m.Name {
			return l
		}
	}
	return &Layer{
		MasterName: m.Name,
		Width:      DefaultWidth,
	}
}

// DefaultWidth is the advance width of newly created layers.
const DefaultWidth = 600

// Layer holds the outlines and metrics of a glyph for one master.
type Layer struct {
	MasterName string
	Width      float64
	Height     float64
	Paths      []*Path
}

// Bounds returns the bounding box of all points on all paths of the layer.
// Off-curve points are included.
func (l *Layer) Bounds() Rect {
	r := EmptyRect()
	for _, p := range l.Paths {
		for _, pt := range p.Points {
			r.UnionPoint(pt.X, pt.Y)
		}
	}
	return r
}

// Path is a contour of a glyph.
//
// If the first point is tagged "move", the path is open.  Otherwise the path
// is closed and the last point, which must carry a tag, is the start point.
type Path struct {
	Points []Point
}

// Closed reports whether the path is a closed contour.
func (p *Path) Closed() bool {
	return len(p.Points) > 0 && p.Points[0].Type != PointMove
}

// Point is a point on a path.
type Point struct {
	X, Y   float64
	Type   string
	Smooth bool
}

// These are the valid values for Point.Type.  Untagged points are off-curve
// control points.
const (
	PointMove  = "move"
	PointLine  = "line"
	PointCurve = "curve"
	PointOff   = ""
)

// ParseUnicode parses a hexadecimal code point like "0041" or "U+0041".
func ParseUnicode(s string) (rune, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	x, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(x), nil
}

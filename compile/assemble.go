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
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"seehuhn.de/go/sfnt/cmap"

	"seehuhn.de/go/fontc/model"
	"seehuhn.de/go/fontc/sfnt/head"
	"seehuhn.de/go/fontc/sfnt/header"
	"seehuhn.de/go/fontc/sfnt/hmtx"
	"seehuhn.de/go/fontc/sfnt/maxp"
	"seehuhn.de/go/fontc/sfnt/name"
	"seehuhn.de/go/fontc/sfnt/os2"
	"seehuhn.de/go/fontc/sfnt/post"
)

// Compiler holds the options for compiling fonts.
// A Compiler can be used for several compilations, also concurrently.
type Compiler struct {
	// Outlines compiles the glyph outlines.  If this is nil, CFF outlines
	// are used.
	Outlines OutlineCompiler

	// Now returns the modification time stored in the head table.
	// If this is nil, time.Now is used.
	Now func() time.Time

	// Optimize enables the search for the shortest charstring operators,
	// when the default CFF outline compiler is used.
	Optimize bool

	// Vendor is the four-character vendor ID stored in the OS/2 table.
	Vendor string
}

// NewCompiler returns a compiler with the default options.
func NewCompiler() *Compiler {
	return &Compiler{
		Now:      time.Now,
		Optimize: true,
		Vendor:   DefaultVendor,
	}
}

// DefaultVendor is the vendor ID used for fonts from unknown vendors.
const DefaultVendor = "UKWN"

// TableSet is the result of a compilation.
type TableSet struct {
	Head *head.Info
	Hmtx []hmtx.Metric
	Hhea *hmtx.Hhea
	Name *name.Info
	Maxp *maxp.Info
	CMap cmap.Table
	OS2  *os2.Info
	Post *post.Info

	// OutlineTag is the tag of the outline table, for example "CFF ".
	OutlineTag string
	Outlines   OutlineTable
	ScalerType uint32

	// GlyphOrder lists the glyph names in glyph ID order.
	GlyphOrder []string

	// Log contains the diagnostics of the compilation.
	Log *Log

	// Force allows to encode a table set, even if the log contains errors.
	Force bool
}

// Compile compiles one master of a font.  If masterName is empty, the
// selected master of the font is used.
//
// Problems with the font data are recorded in the log of the returned
// table set.  An error is only returned if the compilation could not be
// completed at all.
func (c *Compiler) Compile(font *model.Font, masterName string) (*TableSet, error) {
	master := font.SelectedMaster()
	if masterName != "" {
		master = font.MasterForName(masterName)
		if master == nil {
			return nil, fmt.Errorf("font has no master %q", masterName)
		}
	}

	outlines := c.Outlines
	if outlines == nil {
		outlines = &CFFOutlines{Optimize: c.Optimize}
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}
	vendor := c.Vendor
	if vendor == "" {
		vendor = DefaultVendor
	}

	ctx := NewContext(font, master)
	tracer().Debugf("compiling master %q of %q", master.Name, font.FamilyName)

	d := ctx.Derive()
	tracer().Debugf("%d glyphs, %d code points", d.Glyphs.Len(), len(d.CMap))

	ts := &TableSet{
		GlyphOrder: d.Glyphs.Order,
		Log:        ctx.Log,
		ScalerType: outlines.ScalerType(),
	}
	ts.Head = ctx.buildHead(d, now().UTC())
	ts.Hmtx = ctx.buildHmtx(d)
	ts.Hhea = ctx.buildHhea(d, ts.Hmtx)
	ts.Name = ctx.NameTable(vendor)
	ts.Maxp = buildMaxp(d)
	ts.CMap = buildCMap(d)
	ts.OS2 = ctx.buildOS2(d, ts.Hmtx, vendor)
	ts.Post = ctx.buildPost()

	tag, table, err := outlines.CompileOutlines(ctx, d, ts)
	if err != nil {
		return nil, err
	}
	ts.OutlineTag = tag
	ts.Outlines = table

	tracer().Debugf("compiled with %d errors and %d warnings",
		len(ctx.Log.Errors()), len(ctx.Log.Warnings()))
	return ts, nil
}

// ErrHasErrors is returned when encoding a table set whose log contains
// errors, unless the Force field is set.
var ErrHasErrors = errors.New("font has errors")

// Encode returns the binary form of all tables, indexed by table tag.
func (ts *TableSet) Encode() (map[string][]byte, error) {
	if ts.Log != nil && ts.Log.HasErrors() && !ts.Force {
		return nil, ErrHasErrors
	}

	tables := map[string][]byte{
		"head": ts.Head.Encode(),
		"hhea": ts.Hhea.Encode(hmtx.NumLongMetrics(ts.Hmtx)),
		"hmtx": hmtx.Encode(ts.Hmtx),
		"cmap": ts.CMap.Encode(),
		"OS/2": ts.OS2.Encode(),
		"post": ts.Post.Encode(),
	}

	var err error
	tables["maxp"], err = ts.Maxp.Encode()
	if err != nil {
		return nil, err
	}
	tables["name"], err = ts.Name.Encode()
	if err != nil {
		return nil, err
	}

	if ts.Outlines != nil {
		buf := &bytes.Buffer{}
		err = ts.Outlines.Encode(buf)
		if err != nil {
			return nil, fmt.Errorf("%q table: %w", ts.OutlineTag, err)
		}
		tables[ts.OutlineTag] = buf.Bytes()
	}
	return tables, nil
}

// WriteTo writes the font file to w.
func (ts *TableSet) WriteTo(w io.Writer) (int64, error) {
	tables, err := ts.Encode()
	if err != nil {
		return 0, err
	}
	return header.Write(w, ts.ScalerType, tables)
}

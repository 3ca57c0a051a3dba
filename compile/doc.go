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

// Package compile turns a font description from package model into the
// tables of an OpenType font with CFF outlines.
//
// Compilation runs in a fixed sequence of steps.  First the whole-font
// structures are derived: the glyph order (with .notdef first), the glyph
// bounding boxes and the character to glyph mapping.  Then the tables
// "head", "hmtx", "hhea", "name", "maxp", "cmap", "OS/2" and "post" are
// built, in this order, and finally the outline tables are added by an
// [OutlineCompiler].
//
// Problems with the font data do not stop the compilation.  They are
// recorded in a [Log], which is returned together with the tables.
// A table set whose log contains error entries should be considered
// unusable.
package compile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontc.compile'.
func tracer() tracing.Trace {
	return tracing.Select("fontc.compile")
}

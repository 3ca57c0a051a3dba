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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/fontc/sfnt/name"
)

// NameTable collects the strings of the name table.  The typographic
// family and subfamily names are only included if they differ from the
// style-linking names.  Empty strings are omitted.
func (ctx *Context) NameTable(vendor string) *name.Info {
	styleName := cases.Title(language.Und).String(ctx.StyleMapStyleName())

	type entry struct {
		id    name.ID
		value string
	}
	entries := []entry{
		{name.Copyright, ctx.Font.Copyright},
		{name.Family, ctx.StyleMapFamilyName()},
		{name.Subfamily, styleName},
		{name.UniqueID, ctx.UniqueID(vendor)},
		{name.FullName, ctx.FullName()},
		{name.Version, ctx.VersionString()},
		{name.PostScriptName, ctx.PostScriptFontName()},
		{name.Trademark, ""},
		{name.Manufacturer, ctx.Font.Manufacturer},
		{name.Designer, ctx.Font.Designer},
		{name.VendorURL, ctx.Font.ManufacturerURL},
		{name.DesignerURL, ctx.Font.DesignerURL},
	}
	if family := ctx.PreferredFamilyName(); family != ctx.StyleMapFamilyName() {
		entries = append(entries, entry{name.TypographicFamily, family})
	}
	if subfamily := ctx.PreferredSubfamilyName(); subfamily != styleName {
		entries = append(entries, entry{name.TypographicSubfamily, subfamily})
	}

	info := &name.Info{}
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		encoding := uint16(name.EncodingWindowsBMP)
		if isNonBMP(e.value) {
			encoding = name.EncodingWindowsFull
		}
		info.Records = append(info.Records, name.Record{
			PlatformID: name.PlatformWindows,
			EncodingID: encoding,
			LanguageID: name.LanguageEnUS,
			NameID:     e.id,
			Value:      e.value,
		})
	}
	return info
}

func isNonBMP(s string) bool {
	for _, r := range s {
		if r > 0xFFFF {
			return true
		}
	}
	return false
}

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
	"strings"

	"golang.org/x/text/unicode/norm"
)

// GlyphName restricts s to the characters allowed in glyph names, A-Z,
// a-z, 0-9, period and underscore.
func GlyphName(s string) string {
	return filterString(s, func(r rune, b *strings.Builder) bool {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' ||
			r == '.' || r == '_' {
			b.WriteRune(r)
			return true
		}
		return false
	})
}

// PostScriptName restricts s to the characters allowed in PostScript
// names: the printable ASCII characters except for the delimiters.
func PostScriptName(s string) string {
	return filterString(s, func(r rune, b *strings.Builder) bool {
		if r >= '!' && r <= '~' && !strings.ContainsRune(psDelimiters, r) {
			b.WriteRune(r)
			return true
		}
		return false
	})
}

// PostScriptString restricts s to the characters allowed in the string
// entries of a CFF font.  This is the same set as for PostScript names
// plus the space character.  The copyright sign is spelled out.
func PostScriptString(s string) string {
	return filterString(s, func(r rune, b *strings.Builder) bool {
		switch {
		case r == '©':
			b.WriteString("Copyright")
		case r >= ' ' && r <= '~' && !strings.ContainsRune(psDelimiters, r):
			b.WriteRune(r)
		default:
			return false
		}
		return true
	})
}

const psDelimiters = "[](){}<>/%"

// filterString passes every rune of s to accept.  If a rune is rejected,
// the first rune of its compatibility decomposition is tried instead, so
// that for example "é" becomes "e".  Runes which are rejected in both
// forms are dropped.
func filterString(s string, accept func(rune, *strings.Builder) bool) string {
	b := &strings.Builder{}
	for _, r := range s {
		if accept(r, b) {
			continue
		}
		for _, d := range norm.NFKD.String(string(r)) {
			if d != r {
				accept(d, b)
			}
			break
		}
	}
	return b.String()
}

// postScriptString applies PostScriptString to the font attribute attr
// and logs a warning if this changed the value.
func (ctx *Context) postScriptString(attr, s string) string {
	res := PostScriptString(s)
	if res != s {
		ctx.Log.Warning(AttrTruncated, Fields{"attr": attr, "result": res})
	}
	return res
}

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

package cff

import (
	"errors"
)

// encodeCharset returns the charset for the given glyph name SIDs,
// choosing the shortest of the three formats.  The first glyph must
// be .notdef, which is not stored.
func encodeCharset(names []int32) ([]byte, error) {
	if len(names) == 0 || names[0] != sidNotdef {
		return nil, errors.New("cff: invalid charset")
	}
	names = names[1:]

	// find runs of consecutive glyph names
	var runs []int
	for i := range names {
		if i == 0 || names[i] != names[i-1]+1 {
			runs = append(runs, i)
		}
	}
	runs = append(runs, len(names))

	length0 := 1 + 2*len(names)

	// Format 1 stores at most 256 glyphs per range.
	length1 := 1
	for i := 0; i < len(runs)-1; i++ {
		d := runs[i+1] - runs[i]
		length1 += 3 * ((d + 255) / 256)
	}

	length2 := 1 + 4*(len(runs)-1)

	var buf []byte
	switch {
	case length0 <= length1 && length0 <= length2:
		buf = make([]byte, 0, length0)
		buf = append(buf, 0)
		for _, name := range names {
			buf = append(buf, byte(name>>8), byte(name))
		}
	case length1 < length2:
		buf = make([]byte, 0, length1)
		buf = append(buf, 1)
		for i := 0; i < len(runs)-1; i++ {
			name := names[runs[i]]
			remaining := runs[i+1] - runs[i]
			for remaining > 0 {
				nLeft := min(remaining-1, 255)
				buf = append(buf, byte(name>>8), byte(name), byte(nLeft))
				name += int32(nLeft + 1)
				remaining -= nLeft + 1
			}
		}
	default:
		buf = make([]byte, 0, length2)
		buf = append(buf, 2)
		for i := 0; i < len(runs)-1; i++ {
			name := names[runs[i]]
			nLeft := runs[i+1] - runs[i] - 1
			buf = append(buf, byte(name>>8), byte(name), byte(nLeft>>8), byte(nLeft))
		}
	}
	return buf, nil
}

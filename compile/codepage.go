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

// CodePageRanges guesses which legacy code pages the font supports, by
// looking for characters which are typical for each code page.  The
// result is a list of bit numbers for the ulCodePageRange fields of the
// OS/2 table.  If no code page is detected, bit 0 (Latin 1) is returned,
// since some applications refuse to use fonts without any code page.
func CodePageRanges(cmap map[rune]string) []int {
	has := func(r rune) bool {
		_, ok := cmap[r]
		return ok
	}

	hasASCII := true
	for r := rune(0x20); r < 0x7E; r++ {
		if !has(r) {
			hasASCII = false
			break
		}
	}
	hasLineart := has('┤')

	bits := make(map[int]bool)
	for _, r := range sortedCodePoints(cmap) {
		switch {
		case r == 'Þ' && hasASCII:
			bits[0] = true // Latin 1
		case r == 'Ľ' && hasASCII:
			bits[1] = true // Latin 2: Eastern Europe
			if hasLineart {
				bits[58] = true // Latin 2
			}
		case r == 'Б':
			bits[2] = true // Cyrillic
			if has('Ѕ') && hasLineart {
				bits[57] = true // IBM Cyrillic
			}
			if has('╜') && hasLineart {
				bits[49] = true // MS-DOS Russian
			}
		case r == 'Ά':
			bits[3] = true // Greek
			if hasLineart && has('½') {
				bits[48] = true // IBM Greek
			}
			if hasLineart && has('√') {
				bits[60] = true // Greek, former 437 G
			}
		case r == 'İ' && hasASCII:
			bits[4] = true // Turkish
			if hasLineart {
				bits[56] = true // IBM Turkish
			}
		case r == 'א':
			bits[5] = true // Hebrew
			if hasLineart && has('√') {
				bits[53] = true // Hebrew
			}
		case r == 'ر':
			bits[6] = true // Arabic
			if has('√') {
				bits[51] = true // Arabic
			}
			if hasLineart {
				bits[61] = true // Arabic, ASMO 708
			}
		case r == 'ŗ' && hasASCII:
			bits[7] = true // Windows Baltic
			if hasLineart {
				bits[59] = true // MS-DOS Baltic
			}
		case r == '₫' && hasASCII:
			bits[8] = true // Vietnamese
		case r == 'ๅ':
			bits[16] = true // Thai
		case r == 'エ':
			bits[17] = true // JIS/Japan
		case r == 'ㄅ':
			bits[18] = true // Chinese, simplified
		case r == 'ㄱ':
			bits[19] = true // Korean Wansung
		case r == '央':
			bits[20] = true // Chinese, traditional
		case r == '곴':
			bits[21] = true // Korean Johab
		case r == '♥' && hasASCII:
			bits[30] = true // OEM character set
		case r == 'þ' && hasASCII && hasLineart:
			bits[54] = true // MS-DOS Icelandic
		case r == '╚' && hasASCII:
			bits[62] = true // WE/Latin 1
			bits[63] = true // US
		case hasASCII && hasLineart && has('√'):
			switch r {
			case 'Å':
				bits[50] = true // MS-DOS Nordic
			case 'é':
				bits[52] = true // MS-DOS Canadian French
			case 'õ':
				bits[55] = true // MS-DOS Portuguese
			}
		}
	}

	if hasASCII && has('‰') && has('∑') {
		bits[29] = true // Macintosh character set (US Roman)
	}

	if len(bits) == 0 {
		bits[0] = true
	}

	res := make([]int, 0, len(bits))
	for bit := 0; bit < 64; bit++ {
		if bits[bit] {
			res = append(res, bit)
		}
	}
	return res
}

// packBits sets the given bit numbers in a little-endian array of 32-bit
// words.  Bits outside the array are ignored.
func packBits(words []uint32, bits []int) {
	for _, bit := range bits {
		if bit >= 0 && bit/32 < len(words) {
			words[bit/32] |= 1 << (bit % 32)
		}
	}
}

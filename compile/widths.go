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
	"golang.org/x/exp/slices"
)

// OptimizeWidths chooses the defaultWidthX and nominalWidthX values of a
// CFF private DICT, such that the total size of the width operands in the
// charstrings is minimal.  Glyphs with the default width need no width
// operand, all other glyphs store the difference to the nominal width.
//
// The algorithm is the one used by fontTools: a width difference d costs
// one byte if |d| <= 107, two bytes if |d| <= 1131 and five bytes
// otherwise.
func OptimizeWidths(widths []int) (defaultWidth, nominalWidth int) {
	if len(widths) == 0 {
		return 0, 0
	}

	freq := make(map[int]int)
	for _, w := range widths {
		freq[w]++
	}
	keys := make([]int, 0, len(freq))
	for w := range freq {
		keys = append(keys, w)
	}
	slices.Sort(keys)
	minW, maxW := keys[0], keys[len(keys)-1]

	add := func(a, b int) int { return a + b }
	cumFrqU := newCumTable(freq, minW, maxW, add, false)
	cumMaxU := newCumTable(freq, minW, maxW, maxInt, false)
	cumFrqD := newCumTable(freq, minW, maxW, add, true)
	cumMaxD := newCumTable(freq, minW, maxW, maxInt, true)

	// cost of all widths for a given nominal width, if there were no
	// default width
	nomnCostU := func(x int) int {
		return cumFrqU.at(x) + cumFrqU.at(x-108) + 3*cumFrqU.at(x-1132)
	}
	nomnCostD := func(x int) int {
		return cumFrqD.at(x) + cumFrqD.at(x+108) + 3*cumFrqD.at(x+1132)
	}
	nomnCost := func(x int) int {
		return nomnCostU(x) + nomnCostD(x) - freq[x]
	}

	// savings from the best default width, on either side of the nominal
	dfltCostU := func(x int) int {
		return maxInt(cumMaxU.at(x), maxInt(2*cumMaxU.at(x-108), 5*cumMaxU.at(x-1132)))
	}
	dfltCostD := func(x int) int {
		return maxInt(cumMaxD.at(x), maxInt(2*cumMaxD.at(x+108), 5*cumMaxD.at(x+1132)))
	}
	bestCost := func(x int) int {
		return nomnCost(x) - maxInt(dfltCostU(x), dfltCostD(x))
	}

	nominalWidth = minW
	best := bestCost(minW)
	for x := minW + 1; x <= maxW; x++ {
		if c := bestCost(x); c < best {
			nominalWidth, best = x, c
		}
	}

	// Work back which default width gave the savings.
	var ends []int
	if nomnCost(nominalWidth)-best == dfltCostU(nominalWidth) {
		for _, start := range []int{nominalWidth, nominalWidth - 108, nominalWidth - 1132} {
			for cumMaxU.at(start) != 0 && cumMaxU.at(start) == cumMaxU.at(start-1) {
				start--
			}
			ends = append(ends, start)
		}
	} else {
		for _, start := range []int{nominalWidth, nominalWidth + 108, nominalWidth + 1132} {
			for cumMaxD.at(start) != 0 && cumMaxD.at(start) == cumMaxD.at(start+1) {
				start++
			}
			ends = append(ends, start)
		}
	}

	defaultWidth = ends[0]
	bestBytes := widthBytes(freq, ends[0], nominalWidth)
	for _, w := range ends[1:] {
		if b := widthBytes(freq, w, nominalWidth); b < bestBytes {
			defaultWidth, bestBytes = w, b
		}
	}
	return defaultWidth, nominalWidth
}

// widthBytes returns the number of bytes needed to store the width
// operands of all glyphs.
func widthBytes(freq map[int]int, defaultWidth, nominalWidth int) int {
	total := 0
	for w, n := range freq {
		if w == defaultWidth {
			continue
		}
		d := w - nominalWidth
		if d < 0 {
			d = -d
		}
		switch {
		case d <= 107:
			total += n
		case d <= 1131:
			total += 2 * n
		default:
			total += 5 * n
		}
	}
	return total
}

// cumTable holds the running sum or maximum of a histogram, taken either
// in increasing or in decreasing order of the widths.
type cumTable struct {
	vals       []int
	min, max   int
	total      int
	decreasing bool
}

func newCumTable(freq map[int]int, minW, maxW int, op func(int, int) int, decreasing bool) *cumTable {
	t := &cumTable{
		vals:       make([]int, maxW-minW+1),
		min:        minW,
		max:        maxW,
		decreasing: decreasing,
	}
	for _, n := range freq {
		t.total = op(t.total, n)
	}

	v := 0
	if decreasing {
		for x := maxW; x >= minW; x-- {
			v = op(v, freq[x])
			t.vals[x-minW] = v
		}
	} else {
		for x := minW; x <= maxW; x++ {
			v = op(v, freq[x])
			t.vals[x-minW] = v
		}
	}
	return t
}

func (t *cumTable) at(x int) int {
	if t.decreasing {
		switch {
		case x > t.max:
			return 0
		case x < t.min:
			return t.total
		}
	} else {
		switch {
		case x < t.min:
			return 0
		case x > t.max:
			return t.total
		}
	}
	return t.vals[x-t.min]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// WidthStats returns the default and nominal width for the CFF private
// DICT, computed from the advance widths of all glyphs.  If no advance
// widths are available, a warning is logged and 0, 0 is returned.
func (ctx *Context) WidthStats(advances []int) (defaultWidth, nominalWidth int) {
	if advances == nil {
		ctx.Log.Warning(MissingHmtx, Fields{"target": "defaultWidthX/nominalWidthX"})
		return 0, 0
	}
	return OptimizeWidths(advances)
}

// AverageCharWidth returns the rounded mean of all positive advance
// widths.  If no advance widths are available, a warning is logged and
// 0 is returned.
func (ctx *Context) AverageCharWidth(advances []int) int {
	if advances == nil {
		ctx.Log.Warning(MissingHmtx, Fields{"target": "avgCharWidth"})
		return 0
	}
	sum, n := 0, 0
	for _, w := range advances {
		if w > 0 {
			sum += w
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return otRound(float64(sum) / float64(n))
}

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

package model

import "math"

// Rect is an axis-aligned rectangle.
//
// The zero value is a rectangle of size zero at the origin.  Use EmptyRect
// to obtain a rectangle which contains no points at all.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// EmptyRect returns the empty rectangle.
// The union of the empty rectangle with any other rectangle r is r.
func EmptyRect() Rect {
	return Rect{
		XMin: math.Inf(+1),
		YMin: math.Inf(+1),
		XMax: math.Inf(-1),
		YMax: math.Inf(-1),
	}
}

// IsEmpty reports whether r contains no points.
func (r Rect) IsEmpty() bool {
	return r.XMin > r.XMax || r.YMin > r.YMax
}

// Union enlarges r to include o.
func (r *Rect) Union(o Rect) {
	if o.IsEmpty() {
		return
	}
	if r.IsEmpty() {
		*r = o
		return
	}
	r.XMin = math.Min(r.XMin, o.XMin)
	r.YMin = math.Min(r.YMin, o.YMin)
	r.XMax = math.Max(r.XMax, o.XMax)
	r.YMax = math.Max(r.YMax, o.YMax)
}

// UnionPoint enlarges r to include the point (x, y).
func (r *Rect) UnionPoint(x, y float64) {
	r.Union(Rect{XMin: x, YMin: y, XMax: x, YMax: y})
}

// Round rounds all coordinates of a non-empty rectangle to the nearest
// integer, with halves rounded up.  The empty rectangle is returned
// unchanged.
func (r Rect) Round() Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{
		XMin: RoundHalfUp(r.XMin),
		YMin: RoundHalfUp(r.YMin),
		XMax: RoundHalfUp(r.XMax),
		YMax: RoundHalfUp(r.YMax),
	}
}

// Dx returns the width of r, or 0 if r is empty.
func (r Rect) Dx() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.XMax - r.XMin
}

// RoundHalfUp rounds x to the nearest integer, rounding halves towards
// positive infinity.  This is the rounding rule used for all values stored
// in OpenType tables.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

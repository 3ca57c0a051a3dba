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
	"seehuhn.de/go/fontc/model"
)

// makeNotdef constructs a .notdef glyph for fonts which do not have one.
// The glyph is a rectangle with a rectangular hole, half an em wide and
// as high as the ascender.
func (ctx *Context) makeNotdef() *model.Glyph {
	upm := ctx.upm()
	width := model.RoundHalfUp(0.5 * upm)
	margin := model.RoundHalfUp(0.05 * upm)
	stroke := model.RoundHalfUp(0.03 * upm)
	ascender := model.RoundHalfUp(ctx.Master.Ascender)

	xMin, xMax := margin, width-margin
	yMin, yMax := 0.0, ascender
	outer := &model.Path{Points: []model.Point{
		{X: xMin, Y: yMin, Type: model.PointLine},
		{X: xMax, Y: yMin, Type: model.PointLine},
		{X: xMax, Y: yMax, Type: model.PointLine},
		{X: xMin, Y: yMax, Type: model.PointLine},
	}}

	xMin += stroke
	xMax -= stroke
	yMin += stroke
	yMax -= stroke
	inner := &model.Path{Points: []model.Point{
		{X: xMin, Y: yMin, Type: model.PointLine},
		{X: xMin, Y: yMax, Type: model.PointLine},
		{X: xMax, Y: yMax, Type: model.PointLine},
		{X: xMax, Y: yMin, Type: model.PointLine},
	}}

	return &model.Glyph{
		Name: notdefName,
		Layers: []*model.Layer{{
			MasterName: ctx.Master.Name,
			Width:      width,
			Paths:      []*model.Path{outer, inner},
		}},
	}
}

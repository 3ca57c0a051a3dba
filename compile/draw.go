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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fontc/model"
)

// Pen receives the outlines of a glyph.
type Pen interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	QCurveTo(x1, y1, x2, y2 float64)
	ClosePath()
}

// DrawPath draws a single path.
//
// An open path starts at its first point, which carries the "move" tag.
// A closed path starts at its last point, which must be on-curve, and is
// closed explicitly after the last segment.  Off-curve points are
// collected until the next "curve" point.
//
// If the path is malformed, an error is returned and nothing is drawn.
func DrawPath(p *model.Path, pen Pen) error {
	err := CheckPath(p)
	if err != nil {
		return err
	}
	points := p.Points
	if len(points) == 0 {
		return nil
	}

	closed := p.Closed()
	if closed {
		last := points[len(points)-1]
		pen.MoveTo(last.X, last.Y)
	} else {
		pen.MoveTo(points[0].X, points[0].Y)
		points = points[1:]
	}

	var stack []vec.Vec2
	for _, pt := range points {
		pos := vec.Vec2{X: pt.X, Y: pt.Y}
		switch pt.Type {
		case model.PointLine:
			pen.LineTo(pos.X, pos.Y)
		case model.PointCurve:
			curveTo(pen, stack, pos)
			stack = stack[:0]
		case model.PointOff:
			stack = append(stack, pos)
		}
	}

	if closed {
		pen.ClosePath()
	}
	return nil
}

// CheckPath reports whether DrawPath can draw p.
func CheckPath(p *model.Path) error {
	points := p.Points
	if len(points) == 0 {
		return nil
	}
	if p.Closed() {
		if points[len(points)-1].Type == model.PointOff {
			return errOffCurveStart
		}
	} else {
		points = points[1:]
	}

	offCurve := 0
	for _, pt := range points {
		switch pt.Type {
		case model.PointLine:
			if offCurve > 0 {
				return errLineAfterOffCurve
			}
		case model.PointCurve:
			offCurve = 0
		case model.PointOff:
			offCurve++
		default:
			return fmt.Errorf("unexpected point type %q", pt.Type)
		}
	}
	return nil
}

var (
	errOffCurveStart     = errors.New("closed path ends with an off-curve point")
	errLineAfterOffCurve = errors.New("line segment after off-curve points")
)

// curveTo draws a curve from the current point to end, using the given
// off-curve control points.  One control point gives a quadratic curve,
// two give a cubic curve.  Curves with more control points are split into
// a sequence of cubic curves.
func curveTo(pen Pen, ctrl []vec.Vec2, end vec.Vec2) {
	switch len(ctrl) {
	case 0:
		pen.LineTo(end.X, end.Y)
	case 1:
		pen.QCurveTo(ctrl[0].X, ctrl[0].Y, end.X, end.Y)
	case 2:
		pen.CurveTo(ctrl[0].X, ctrl[0].Y, ctrl[1].X, ctrl[1].Y, end.X, end.Y)
	default:
		pts := make([]vec.Vec2, 0, len(ctrl)+1)
		pts = append(pts, ctrl...)
		pts = append(pts, end)
		for _, seg := range decomposeSuperBezier(pts) {
			pen.CurveTo(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y, seg[2].X, seg[2].Y)
		}
	}
}

// decomposeSuperBezier splits a curve with n-1 >= 2 off-curve points,
// followed by the end point, into cubic Bézier segments.  Each segment
// is returned as two control points and an end point.
func decomposeSuperBezier(points []vec.Vec2) [][3]vec.Vec2 {
	n := len(points) - 1
	var res [][3]vec.Vec2

	pt1 := points[0]
	var pt2 vec.Vec2
	havePt2 := false
	for i := 2; i <= n; i++ {
		nDiv := min(i, 3, n-i+2)
		for j := 1; j < nDiv; j++ {
			factor := float64(j) / float64(nDiv)
			temp := points[i-2].Add(points[i-1].Sub(points[i-2]).Mul(factor))
			if !havePt2 {
				pt2 = temp
				havePt2 = true
				continue
			}
			pt3 := pt2.Add(temp).Mul(0.5)
			res = append(res, [3]vec.Vec2{pt1, pt2, pt3})
			pt1 = temp
			havePt2 = false
		}
	}
	res = append(res, [3]vec.Vec2{pt1, points[n-1], points[n]})
	return res
}

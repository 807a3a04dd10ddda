// seehuhn.de/go/linegeom - hatch fills and segment edits for line drawings
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

package linegeom

import (
	"iter"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ClipSpans restricts a sequence of fill lines to the rectangle r.
// Lines outside r are dropped, lines crossing the border are shortened.
func ClipSpans(spans iter.Seq2[vec.Vec2, vec.Vec2], r rect.Rect) iter.Seq2[vec.Vec2, vec.Vec2] {
	return func(yield func(vec.Vec2, vec.Vec2) bool) {
		for a, b := range spans {
			a, b, ok := clipLine(a, b, r)
			if !ok || a == b {
				continue
			}
			if !yield(a, b) {
				return
			}
		}
	}
}

type outcode uint8

const (
	inside outcode = 0
	left   outcode = 1
	right  outcode = 2
	bottom outcode = 4
	top    outcode = 8
)

func computeOutcode(v vec.Vec2, r rect.Rect) outcode {
	var c outcode
	if v.X < r.LLx {
		c |= left
	} else if v.X > r.URx {
		c |= right
	}
	if v.Y < r.LLy {
		c |= bottom
	} else if v.Y > r.URy {
		c |= top
	}
	return c
}

// clipLine clips the line v0-v1 to r using the Cohen-Sutherland algorithm.
func clipLine(v0, v1 vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	c0 := computeOutcode(v0, r)
	c1 := computeOutcode(v1, r)
	for {
		if c0|c1 == inside {
			return v0, v1, true
		} else if c0&c1 != 0 {
			return v0, v1, false
		}

		out := max(c0, c1)
		var v vec.Vec2
		switch {
		case out&top != 0:
			v = vec.Vec2{X: v0.X + (v1.X-v0.X)*(r.URy-v0.Y)/(v1.Y-v0.Y), Y: r.URy}
		case out&bottom != 0:
			v = vec.Vec2{X: v0.X + (v1.X-v0.X)*(r.LLy-v0.Y)/(v1.Y-v0.Y), Y: r.LLy}
		case out&right != 0:
			v = vec.Vec2{X: r.URx, Y: v0.Y + (v1.Y-v0.Y)*(r.URx-v0.X)/(v1.X-v0.X)}
		default:
			v = vec.Vec2{X: r.LLx, Y: v0.Y + (v1.Y-v0.Y)*(r.LLx-v0.X)/(v1.X-v0.X)}
		}

		if out == c0 {
			v0 = v
			c0 = computeOutcode(v0, r)
		} else {
			v1 = v
			c1 = computeOutcode(v1, r)
		}
	}
}

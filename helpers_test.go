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
	"math"

	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func near(a, b vec.Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// loop returns the closed polygon through pts as segments with IDs
// firstID, firstID+1, ....
func loop(firstID ID, pts ...vec.Vec2) []Segment {
	segs := make([]Segment, len(pts))
	for i := range pts {
		segs[i] = Segment{
			ID: firstID + ID(i),
			P1: pts[i],
			P2: pts[(i+1)%len(pts)],
		}
	}
	return segs
}

func square(firstID ID, x0, y0, size float64) []Segment {
	return loop(firstID,
		pt(x0, y0), pt(x0+size, y0), pt(x0+size, y0+size), pt(x0, y0+size))
}

// evenOdd reports whether p lies inside the region bounded by segs,
// using a horizontal ray towards +x.
func evenOdd(p vec.Vec2, segs []Segment) bool {
	inside := false
	for _, s := range segs {
		a, b := s.P1, s.P2
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if p.X < x {
			inside = !inside
		}
	}
	return inside
}

// boundaryDist returns the distance from p to the closest segment.
func boundaryDist(p vec.Vec2, segs []Segment) float64 {
	d := math.Inf(1)
	for _, s := range segs {
		d = min(d, s.DistTo(p))
	}
	return d
}

type span struct {
	A, B vec.Vec2
}

func collectSpans(segs []Segment, p HatchParams) []span {
	var res []span
	for a, b := range Hatch(segs, p) {
		res = append(res, span{a, b})
	}
	return res
}

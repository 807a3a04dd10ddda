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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Reduce simplifies a dense polyline in a single pass.
//
// The first and last points are always kept. An interior point is kept if
// it is further than lengthThreshold from the last kept point. A point
// closer than lengthThreshold/10 is dropped. In between, the point is kept
// only if the polyline bends there by more than angleThresholdDeg degrees,
// measured at the last kept point between the directions back to the
// kept point before it and on to the current point.
//
// The input is not modified.
func Reduce(points []vec.Vec2, angleThresholdDeg, lengthThreshold float64) []vec.Vec2 {
	if len(points) <= 2 {
		return slices.Clone(points)
	}

	out := make([]vec.Vec2, 0, len(points))
	out = append(out, points[0])

	for _, cur := range points[1 : len(points)-1] {
		prev := out[len(out)-1]
		d := Dist(prev, cur)
		if d > lengthThreshold {
			out = append(out, cur)
			continue
		}

		if d > lengthThreshold/10 && len(out) >= 2 {
			angle := vertexAngle(out[len(out)-2], prev, cur)
			if 180-angle > angleThresholdDeg {
				out = append(out, cur)
			}
		}
	}

	if last := points[len(points)-1]; out[len(out)-1] != last {
		out = append(out, last)
	}
	return out
}

// vertexAngle returns the angle at b between the directions b->a and b->c,
// in degrees, folded into [0, 180]. A straight continuation gives 180.
// If either direction is undefined the result is 180.
func vertexAngle(a, b, c vec.Vec2) float64 {
	ba := a.Sub(b)
	bc := c.Sub(b)
	l := ba.Length() * bc.Length()
	if l == 0 {
		return 180
	}

	cos := max(-1, min(1, ba.Dot(bc)/l))
	angle := normalizeDegrees(math.Acos(cos) * (180 / math.Pi))
	if angle > 180 {
		angle = 360 - angle
	}
	return angle
}

// normalizeDegrees maps an angle into the range [0, 360).
func normalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// Smooth applies one step of corner cutting.
//
// Each pair of consecutive points is replaced by the points at 1/4 and 3/4
// of the way between them. The first and last points are kept.
func Smooth(points []vec.Vec2) []vec.Vec2 {
	if len(points) == 0 {
		return nil
	}

	out := make([]vec.Vec2, 0, 2*len(points))
	out = append(out, points[0])
	for i := 0; i+1 < len(points); i++ {
		p0, p1 := points[i], points[i+1]
		out = append(out,
			Lerp(p0, p1, 0.25),
			Lerp(p0, p1, 0.75),
		)
	}
	if len(points) > 1 {
		out = append(out, points[len(points)-1])
	}
	return out
}

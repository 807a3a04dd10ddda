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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linegeom/curve"
)

// MinLineLength returns the shortest line worth keeping at the given zoom
// factor. Non-positive zoom factors are treated as 1.
func MinLineLength(zoom float64) float64 {
	if !(zoom > 0) {
		zoom = 1
	}
	return max(4/zoom, 0.1)
}

// SmoothStroke turns the raw points of a freehand stroke into a smoothed,
// simplified polyline. Two rounds of corner cutting are followed by
// Reduce with PencilAngleThreshold and 4*minLen.
func SmoothStroke(points []vec.Vec2, minLen float64) []vec.Vec2 {
	return Reduce(Smooth(Smooth(points)), PencilAngleThreshold, 4*minLen)
}

// QuadraticCurve returns a polyline approximating the quadratic Bézier
// from p1 via the control point c to p2. The curve is sampled at
// QuadraticSamples steps and then reduced with PencilAngleThreshold and
// 2*minLen.
func QuadraticCurve(p1, c, p2 vec.Vec2, minLen float64) []vec.Vec2 {
	pts := curve.QuadraticPoints(p1, c, p2, QuadraticSamples)
	return Reduce(pts, PencilAngleThreshold, 2*minLen)
}

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

// Package curve approximates Bézier curves by polylines.
package curve

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the default flattening tolerance in drawing units.
// Values of 0.25-1.0 are typical.
const DefaultFlatness = 0.25

// maxSegments bounds the number of line segments emitted for one curve.
const maxSegments = 1 << 16

// A Flattener converts curves into line segments.
type Flattener struct {
	// Flatness is the maximal distance between the curve and its
	// approximation. Must be positive.
	Flatness float64
}

// NewFlattener returns a Flattener using DefaultFlatness.
func NewFlattener() *Flattener {
	return &Flattener{Flatness: DefaultFlatness}
}

// Quadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point, p1 is the control point, p2 is the end point.
func (f *Flattener) Quadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if err := e.Length(); err > f.Flatness {
		n = segmentCount(math.Sqrt(err / f.Flatness))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		pt := QuadraticAt(p0, p1, p2, float64(i)/float64(n))
		if i == n {
			pt = p2
		}
		emit(prev, pt)
		prev = pt
	}
}

// Cubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is the start point, p1 and p2 are the control points, p3 is the end
// point.
func (f *Flattener) Cubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		n = segmentCount(math.Sqrt(3 * m / (4 * f.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		pt := CubicAt(p0, p1, p2, p3, float64(i)/float64(n))
		if i == n {
			pt = p3
		}
		emit(prev, pt)
		prev = pt
	}
}

func segmentCount(x float64) int {
	if !(x > 1) {
		return 1
	}
	if x >= maxSegments {
		return maxSegments
	}
	return int(math.Ceil(x))
}

// QuadraticAt evaluates the quadratic Bézier at t.
func QuadraticAt(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
}

// CubicAt evaluates the cubic Bézier at t.
func CubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).
		Add(p1.Mul(3 * omt2 * t)).
		Add(p2.Mul(3 * omt * t2)).
		Add(p3.Mul(t2 * t))
}

// QuadraticPoints samples the quadratic Bézier from p1 via c to p2 at n
// equal parameter steps. The result has n+1 points, starting at p1 and
// ending at p2. For n < 1 a single step is used.
func QuadraticPoints(p1, c, p2 vec.Vec2, n int) []vec.Vec2 {
	n = max(n, 1)
	pts := make([]vec.Vec2, 0, n+1)
	pts = append(pts, p1)
	for i := 1; i < n; i++ {
		pts = append(pts, QuadraticAt(p1, c, p2, float64(i)/float64(n)))
	}
	return append(pts, p2)
}

// CubicPoints samples the cubic Bézier at n equal parameter steps, like
// QuadraticPoints.
func CubicPoints(p0, p1, p2, p3 vec.Vec2, n int) []vec.Vec2 {
	n = max(n, 1)
	pts := make([]vec.Vec2, 0, n+1)
	pts = append(pts, p0)
	for i := 1; i < n; i++ {
		pts = append(pts, CubicAt(p0, p1, p2, p3, float64(i)/float64(n)))
	}
	return append(pts, p3)
}

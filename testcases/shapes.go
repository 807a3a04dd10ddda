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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498307936

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[0]}) {
			return
		}
		for _, p := range pts[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{pts[0]}) {
			return
		}
		for _, p := range pts[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// concat joins several paths into one.
func concat(parts ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range parts {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) path.Path {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}

// regularPolygon builds a polygon with n corners on a circle.
func regularPolygon(cx, cy, r float64, n int) path.Path {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) path.Path {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		Close().
		Iter()
}

// lens builds a closed shape from two quadratic curves.
func lens(x1, y1, x2, y2, bulge float64) path.Path {
	mx, my := (x1+x2)/2, (y1+y2)/2
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(mx, my-bulge), pt(x2, y2)).
		QuadTo(pt(mx, my+bulge), pt(x1, y1)).
		Close().
		Iter()
}

// ringShape builds a square with a square hole. Both loops run in the
// same direction.
func ringShape(cx, cy, outerSize, innerSize float64) path.Path {
	return concat(
		rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize),
		rectangle(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize),
	)
}

// gridLines builds n horizontal and n vertical open lines covering the
// square from (x0, y0) with the given size.
func gridLines(x0, y0, size float64, n int) path.Path {
	parts := make([]path.Path, 0, 2*n)
	for i := range n {
		c := (float64(i) + 0.5) * size / float64(n)
		parts = append(parts,
			polyline(pt(x0, y0+c), pt(x0+size, y0+c)),
			polyline(pt(x0+c, y0), pt(x0+c, y0+size)),
		)
	}
	return concat(parts...)
}

// dashes builds short horizontal lines of length l on a grid of points
// with the given step, covering the square from (x0, y0) with the given
// size.
func dashes(x0, y0, size, step, l float64) path.Path {
	var parts []path.Path
	for y := y0 + step/2; y < y0+size; y += step {
		for x := x0 + step/2; x < x0+size; x += step {
			parts = append(parts, polyline(pt(x-l/2, y), pt(x+l/2, y)))
		}
	}
	return concat(parts...)
}

// spiralPath builds an open spiral from line segments.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) path.Path {
	steps := max(int(turns*32), 8) // 32 segments per turn
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	pts := make([]vec.Vec2, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return polyline(pts...)
}

// zigzagPath builds an open zigzag line with the given number of teeth.
func zigzagPath(x1, cy, x2, amplitude float64, segments int) path.Path {
	segWidth := (x2 - x1) / float64(segments)
	pts := []vec.Vec2{pt(x1, cy)}
	for i := 1; i <= segments; i++ {
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		pts = append(pts, pt(x1+float64(i)*segWidth, y))
	}
	return polyline(pts...)
}

// straightLine builds an open line from n+1 evenly spaced points.
func straightLine(x1, y1, x2, y2 float64, n int) path.Path {
	pts := make([]vec.Vec2, n+1)
	for i := range pts {
		t := float64(i) / float64(n)
		pts[i] = pt(x1+t*(x2-x1), y1+t*(y2-y1))
	}
	return polyline(pts...)
}

// sineWave builds a densely sampled sine wave, as recorded by a freehand
// stroke.
func sineWave(x1, cy, x2, amplitude, period float64, n int) path.Path {
	pts := make([]vec.Vec2, n+1)
	for i := range pts {
		x := x1 + float64(i)/float64(n)*(x2-x1)
		pts[i] = pt(x, cy+amplitude*math.Sin(2*math.Pi*(x-x1)/period))
	}
	return polyline(pts...)
}

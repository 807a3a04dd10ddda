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

var sliceCases = []TestCase{
	{
		Name:     "crossing",
		Boundary: polyline(pt(0, 0), pt(10, 10)),
		Track:    polyline(pt(0, 10), pt(10, 0)),
		Op:       Slice{},
	},
	{
		Name:     "touching",
		Boundary: polyline(pt(0, 0), pt(10, 0)),
		Track: concat(
			polyline(pt(5, 0), pt(5, 10)),
			polyline(pt(10, 0), pt(20, 5)),
		),
		Op: Slice{},
	},
	{
		Name:     "collinear",
		Boundary: polyline(pt(0, 0), pt(10, 0)),
		Track:    polyline(pt(5, 0), pt(15, 0)),
		Op:       Slice{},
	},
	{
		Name:     "square_over_grid",
		Boundary: rectangle(20, 20, 80, 80),
		Track:    gridLines(0, 0, 100, 7),
		Op:       Slice{Remove: true},
	},
	{
		Name:     "triangle_over_grid",
		Boundary: triangle(10, 90, 50, 10, 90, 90),
		Track:    gridLines(0, 0, 100, 9),
		Op:       Slice{Remove: true, Angle: 30},
	},
	{
		Name:     "star_over_grid",
		Boundary: fivePointStar(50, 50, 45),
		Track:    gridLines(0, 0, 100, 11),
		Op:       Slice{Remove: true, Angle: 15},
	},
	{
		Name:     "circle_over_spiral",
		Boundary: circle(50, 50, 30),
		Track:    spiralPath(50, 50, 2, 48, 4),
		Op:       Slice{},
	},
}

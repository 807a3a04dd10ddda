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

var hatchCases = []TestCase{
	{
		Name:     "square",
		Boundary: rectangle(0, 0, 10, 10),
		Op:       Hatch{BaseWidth: 2},
	},
	{
		Name:     "square_spaced",
		Boundary: rectangle(0, 0, 40, 40),
		Op:       Hatch{Spacing: 1.5, Offset: 0.25, BaseWidth: 2},
	},
	{
		Name:     "square_rotated",
		Boundary: rectangle(0, 0, 40, 40),
		Op:       Hatch{Angle: 90, Spacing: 1, Offset: 0.5},
	},
	{
		Name:     "triangle_30deg",
		Boundary: triangle(10, 50, 32, 10, 54, 50),
		Op:       Hatch{Angle: 30, Spacing: 0.5, Offset: 0.3},
	},
	{
		Name:     "star",
		Boundary: fivePointStar(32, 32, 25),
		Op:       Hatch{Spacing: 0.5, Offset: 0.3},
	},
	{
		Name:     "ring",
		Boundary: ringShape(32, 32, 25, 10),
		Op:       Hatch{Angle: 45, Spacing: 1, Offset: 0.3},
	},
	{
		Name:     "circle",
		Boundary: circle(32, 32, 25),
		Op:       Hatch{Angle: -20, Spacing: 0.5, Offset: 0.1},
	},
	{
		Name:     "lens",
		Boundary: lens(8, 32, 56, 32, 30),
		Op:       Hatch{Angle: 60, Offset: 0.7},
	},
	{
		Name: "shared_edge",
		Boundary: concat(
			rectangle(0, 0, 20, 20),
			rectangle(20, 0, 40, 20),
		),
		Op: Hatch{Spacing: 1, Offset: 0.3},
	},
	{
		Name:     "open_zigzag",
		Boundary: zigzagPath(0, 32, 64, 20, 5),
		Op:       Hatch{Spacing: 1, Offset: 0.3},
	},
	{
		Name:     "large_polygon",
		Boundary: regularPolygon(500, 500, 480, 200),
		Op:       Hatch{Angle: 15, Spacing: 2, Offset: 0.3},
	},
}

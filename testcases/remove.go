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

var removeCases = []TestCase{
	{
		Name:     "square_dashes",
		Boundary: rectangle(20, 20, 80, 80),
		Track:    dashes(0, 0, 100, 7, 2),
		Op:       Remove{},
	},
	{
		Name:     "triangle_dashes",
		Boundary: triangle(10, 90, 50, 10, 90, 90),
		Track:    dashes(0, 0, 100, 6, 1),
		Op:       Remove{Angle: 30},
	},
	{
		Name:     "hexagon_dashes",
		Boundary: regularPolygon(50, 50, 40, 6),
		Track:    dashes(0, 0, 100, 5, 1),
		Op:       Remove{Angle: 75},
	},
	{
		Name:     "ring_dashes",
		Boundary: ringShape(50, 50, 40, 15),
		Track:    dashes(0, 0, 100, 5, 1),
		Op:       Remove{},
	},
}

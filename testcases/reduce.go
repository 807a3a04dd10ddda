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

var reduceCases = []TestCase{
	{
		Name:     "straight_line",
		Boundary: straightLine(0, 0, 100, 50, 100),
		Op:       Reduce{AngleThreshold: 5, LengthThreshold: 200},
	},
	{
		Name:     "zigzag",
		Boundary: zigzagPath(0, 50, 100, 20, 8),
		Op:       Reduce{AngleThreshold: 5, LengthThreshold: 2},
	},
	{
		Name:     "sine_stroke",
		Boundary: sineWave(0, 50, 200, 30, 80, 400),
		Op:       Reduce{AngleThreshold: 5, LengthThreshold: 8, Smooth: 2},
	},
	{
		Name:     "spiral_stroke",
		Boundary: spiralPath(50, 50, 2, 45, 3),
		Op:       Reduce{AngleThreshold: 5, LengthThreshold: 4, Smooth: 2},
	},
}

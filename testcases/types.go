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

// Package testcases holds named geometry scenarios shared by the tests,
// the benchmarks and the developer commands.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single geometry test.
type TestCase struct {
	Name string // lowercase a-z, 0-9 and _ only

	// Boundary is the fill boundary, the selection, or the stroke to
	// reduce, depending on Op.
	Boundary path.Path

	// Track is the drawing the operation works on, in addition to the
	// boundary itself. It may be nil.
	Track path.Path

	Op Operation
}

// Operation is the geometry operation to apply.
type Operation interface {
	isOperation()
}

// Hatch fills the boundary with parallel lines.
type Hatch struct {
	Angle     float64 // direction of the fill lines in degrees
	Spacing   float64 // gap relative to the line width
	Offset    float64 // fraction of the line distance, in [0, 1)
	BaseWidth float64 // zero means the default line width
}

func (Hatch) isOperation() {}

// Slice splits the drawing where it crosses the boundary.
type Slice struct {
	// Remove also deletes the pieces inside the boundary.
	Remove bool

	// Angle is the sweep direction used for the removal, in degrees.
	Angle float64
}

func (Slice) isOperation() {}

// Remove deletes the segments of the drawing inside the boundary,
// without slicing.
type Remove struct {
	Angle float64
}

func (Remove) isOperation() {}

// Reduce simplifies the vertices of the boundary, read as one polyline.
type Reduce struct {
	AngleThreshold  float64 // in degrees
	LengthThreshold float64

	// Smooth is the number of corner cutting rounds applied first.
	Smooth int
}

func (Reduce) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

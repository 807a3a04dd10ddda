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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Basis is a rotated coordinate frame in which hatch lines are vertical.
//
// To maps drawing coordinates into the frame, From maps them back.
// Both matrices are pure rotations, so translation entries are zero.
type Basis struct {
	To   matrix.Matrix
	From matrix.Matrix
}

// NewBasis returns the frame for hatch lines at the given angle in degrees.
func NewBasis(angleDeg float64) Basis {
	return Basis{
		To:   matrix.RotateDeg(-angleDeg),
		From: matrix.RotateDeg(angleDeg),
	}
}

// ToBasis maps p from drawing coordinates into the frame.
func (b Basis) ToBasis(p vec.Vec2) vec.Vec2 {
	return apply(b.To, p)
}

// FromBasis maps p from the frame back to drawing coordinates.
func (b Basis) FromBasis(p vec.Vec2) vec.Vec2 {
	return apply(b.From, p)
}

// apply transforms p by the affine map M.
func apply(M matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: M[0]*p.X + M[2]*p.Y + M[4],
		Y: M[1]*p.X + M[3]*p.Y + M[5],
	}
}

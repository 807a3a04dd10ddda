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

// TransformSelection rotates the segments by rotateDeg degrees and scales
// them by the factor scale, both about the centre of their bounding
// rectangle. The results keep the IDs and payloads of the inputs.
func TransformSelection(segs []Segment, scale, rotateDeg float64) []Segment {
	if len(segs) == 0 {
		return nil
	}

	b := Bounds(segs)
	c := vec.Vec2{X: (b.LLx + b.URx) / 2, Y: (b.LLy + b.URy) / 2}

	M := matrix.RotateDeg(rotateDeg)
	for i := range 4 {
		M[i] *= scale
	}

	res := make([]Segment, len(segs))
	for i, s := range segs {
		s.P1 = apply(M, s.P1.Sub(c)).Add(c)
		s.P2 = apply(M, s.P2.Sub(c)).Add(c)
		res[i] = s
	}
	return res
}

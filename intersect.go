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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Crossing describes the outcome of an intersection test.
type Crossing int

const (
	// NoCrossing means the segments do not meet.
	NoCrossing Crossing = iota

	// Crosses means the segments meet at a single point. The returned
	// parameter locates it along the first segment.
	Crosses

	// Collinear means the segments are parallel or collinear and the test
	// was inclusive. The position of the intersection is undefined.
	Collinear
)

func (c Crossing) String() string {
	switch c {
	case NoCrossing:
		return "NoCrossing"
	case Crosses:
		return "Crosses"
	case Collinear:
		return "Collinear"
	}
	return fmt.Sprintf("Crossing(%d)", int(c))
}

// Intersect tests whether the segment a0-a1 meets the segment b0-b1.
//
// If the segments cross, the result is (t, Crosses) where the crossing
// point is a0 + t*(a1-a0) and 0 <= t <= 1.
//
// If inclusive is false, only proper crossings count: an end point
// touching the other segment, and parallel segments, give NoCrossing.
// If inclusive is true, touching end points count as crossings and
// parallel segments give Collinear.
//
// Only signs of cross products are compared, no angles are computed.
func Intersect(a0, a1, b0, b1 vec.Vec2, inclusive bool) (float64, Crossing) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)

	denom := cross(da, db)
	if denom == 0 {
		if inclusive {
			return 0, Collinear
		}
		return 0, NoCrossing
	}
	positive := denom > 0

	d0 := b0.Sub(a0)

	// sa is proportional to the position of the crossing along b,
	// sb to the position along a.
	sa := cross(d0, da)
	if rejects(sa, 0, positive, inclusive) {
		return 0, NoCrossing
	}
	sb := cross(d0, db)
	if rejects(sb, 0, positive, inclusive) {
		return 0, NoCrossing
	}
	if rejects(denom, sa, positive, inclusive) {
		return 0, NoCrossing
	}
	if rejects(denom, sb, positive, inclusive) {
		return 0, NoCrossing
	}

	return sb / denom, Crosses
}

// rejects reports whether hi < lo in the orientation given by positive,
// i.e. whether a parameter scaled by the denominator lies outside [0, 1].
// Equality is a touching configuration and is rejected unless inclusive.
func rejects(hi, lo float64, positive, inclusive bool) bool {
	if hi == lo {
		return !inclusive
	}
	return (hi < lo) == positive
}

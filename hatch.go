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
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
)

// HatchParams describes a family of parallel fill lines.
type HatchParams struct {
	// Angle is the direction of the fill lines in degrees.
	// At angle 0 the fill lines are parallel to the y axis.
	Angle float64

	// Spacing is the gap between fill lines, relative to BaseWidth.
	// The distance between neighbouring lines is BaseWidth*(1+Spacing).
	Spacing float64

	// Offset shifts the first fill line by this fraction of the line
	// distance. Values are normally in [0, 1).
	Offset float64

	// BaseWidth is the width of a drawn line.
	// Zero selects DefaultLineWidth.
	BaseWidth float64
}

// LineDistance returns the distance between neighbouring fill lines.
func (p HatchParams) LineDistance() float64 {
	w := p.BaseWidth
	if w == 0 {
		w = DefaultLineWidth
	}
	return w * (1 + p.Spacing)
}

// Hatch returns the fill lines covering the region bounded by segs.
//
// The region is determined by the even-odd rule: a fill line is drawn
// between the first and second boundary crossing along each sweep
// position, between the third and fourth, and so on. The boundary does
// not need to be closed. Each element of the sequence is one fill line
// given by its two end points.
//
// The sequence is computed lazily and can be iterated several times.
// It is empty if segs is empty or if the line distance is not positive.
func Hatch(segs []Segment, p HatchParams) iter.Seq2[vec.Vec2, vec.Vec2] {
	return func(yield func(vec.Vec2, vec.Vec2) bool) {
		spacing := p.LineDistance()
		if !(spacing > 0) || math.IsInf(spacing, 0) {
			return
		}

		s := newSweep(segs, NewBasis(p.Angle))
		if len(s.events) == 0 {
			return
		}
		s.sortEvents()

		Logger().Debug("hatch",
			"segments", len(s.lines),
			"events", len(s.events),
			"spacing", spacing)

		x := s.events[0].x + p.Offset*spacing
		for i := range s.events {
			ev := &s.events[i]

			// step through the x range up to this event
			for x < ev.x {
				if !s.emitSpans(x, yield) {
					return
				}
				next := x + spacing
				if next == x {
					// spacing below the float64 resolution at x
					x = ev.x
					break
				}
				x = next
			}

			s.toggle(ev.line)
		}
	}
}

// emitSpans yields the fill lines along the vertical line through x.
// Crossings are paired in order. A pair of equal crossings, as caused
// by coincident boundary segments, is skipped without disturbing the
// pairing of the crossings above it.
func (s *sweep) emitSpans(x float64, yield func(vec.Vec2, vec.Vec2) bool) bool {
	ys := s.crossings(x)
	for j := 0; j+1 < len(ys); j += 2 {
		ya, yb := ys[j], ys[j+1]
		if ya == yb {
			continue
		}
		a := s.basis.FromBasis(vec.Vec2{X: x, Y: ya})
		b := s.basis.FromBasis(vec.Vec2{X: x, Y: yb})
		if !yield(a, b) {
			return false
		}
	}
	return true
}

// HatchSegments collects the fill lines for segs as new segments which
// carry the given payload.
func HatchSegments(segs []Segment, p HatchParams, payload any) []Segment {
	var res []Segment
	for a, b := range Hatch(segs, p) {
		res = append(res, Segment{P1: a, P2: b, Payload: payload})
	}
	return res
}

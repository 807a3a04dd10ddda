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
	"slices"
)

// ClassifyForRemoval returns the IDs of the segments which lie inside the
// region bounded by selection.
//
// Candidates are found by calling query with the bounding rectangle of the
// selection. Members of the selection and uncommitted candidates are
// ignored. A candidate is inside if its midpoint is inside under the
// even-odd rule, evaluated along a sweep in the frame of the given angle:
// the midpoint is ranked among the sorted crossings of the selection with
// the sweep line through it, and an odd rank means inside. A midpoint
// exactly on a crossing ranks at that crossing.
func ClassifyForRemoval(selection []Segment, query RangeQuery, angleDeg float64) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		if len(selection) == 0 {
			return
		}
		members := NewIDSet(selection)

		s := newSweep(selection, NewBasis(angleDeg))
		for _, cand := range query(Bounds(selection)) {
			if cand.ID == NoID || members.Has(cand.ID) {
				continue
			}
			s.addProbe(s.basis.ToBasis(cand.Midpoint()), cand.ID)
		}
		s.sortEvents()

		Logger().Debug("classify",
			"selection", len(s.lines),
			"events", len(s.events))

		for i := range s.events {
			ev := &s.events[i]
			if ev.kind != eventProbe {
				s.toggle(ev.line)
				continue
			}

			ys := s.crossings(ev.x)
			rank, _ := slices.BinarySearch(ys, ev.y)
			if rank < len(ys) && rank%2 == 1 {
				if !yield(ev.id) {
					return
				}
			}
		}
	}
}

// RemovalEdits collects the result of ClassifyForRemoval into a batch.
func RemovalEdits(selection []Segment, query RangeQuery, angleDeg float64) Edits {
	return Edits{
		Remove: slices.Collect(ClassifyForRemoval(selection, query, angleDeg)),
	}
}

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
	"seehuhn.de/go/geom/rect"
)

// Slice splits every segment which properly crosses one of the cuts.
//
// The cuts are processed in order. For each cut, query is called with the
// bounding rectangle of the cut, so that the result reflects all splits
// made for earlier cuts. Candidates whose ID belongs to one of the cuts are
// skipped. For a candidate which crosses the cut at X, replace receives the
// candidate shortened to end at X, and insert receives a new segment from X
// to the former end point, with the candidate's payload and ID NoID.
// Touching end points and collinear overlaps are not split.
//
// Uncommitted cuts (ID NoID) cannot be recognised in the query results;
// such cuts must not be part of the drawing searched by query.
//
// The return value reports whether any segment was split.
func Slice(cuts []Segment, query RangeQuery, replace, insert func(Segment)) bool {
	cutIDs := NewIDSet(cuts)

	changed := false
	for _, cut := range cuts {
		for _, cand := range query(cut.Bounds()) {
			if cutIDs.Has(cand.ID) {
				continue
			}
			head, tail, ok := split(cut, cand)
			if !ok {
				continue
			}
			replace(head)
			insert(tail)
			changed = true
		}
	}
	return changed
}

// split cuts cand at its crossing with cut.
func split(cut, cand Segment) (head, tail Segment, ok bool) {
	t, c := Intersect(cut.P1, cut.P2, cand.P1, cand.P2, false)
	if c != Crosses {
		return Segment{}, Segment{}, false
	}
	x := cut.At(t)

	head = cand
	head.P2 = x
	tail = Segment{
		ID:      NoID,
		P1:      x,
		P2:      cand.P2,
		Payload: cand.Payload,
	}
	return head, tail, true
}

// SliceEdits is like Slice, but collects the changes into a single batch
// instead of applying them one at a time. Later cuts see the effect of
// earlier ones, exactly as if the edits had been applied in between.
//
// A committed segment split by several cuts appears once in Replace, with
// its final geometry. Pieces created by the batch are listed in Add.
func SliceEdits(cuts []Segment, query RangeQuery) (Edits, bool) {
	o := &sliceOverlay{
		replaced: make(map[ID]int),
		added:    make(map[ID]int),
	}
	changed := Slice(cuts, o.wrap(query), o.replace, o.insert)

	e := Edits{
		Replace: o.replacements,
		Add:     o.additions,
	}
	for i := range e.Add {
		e.Add[i].ID = NoID
	}

	Logger().Debug("slice",
		"cuts", len(cuts),
		"replaced", len(e.Replace),
		"added", len(e.Add))
	return e, changed
}

// sliceOverlay records pending edits on top of a range query.
//
// Pieces created during the batch get provisional negative IDs, so that
// they can be split again by later cuts.
type sliceOverlay struct {
	replacements []Segment
	replaced     map[ID]int // ID -> index into replacements

	additions []Segment
	added     map[ID]int // provisional ID -> index into additions

	nextID ID
}

func (o *sliceOverlay) replace(s Segment) {
	if idx, ok := o.added[s.ID]; ok {
		o.additions[idx] = s
		return
	}
	if idx, ok := o.replaced[s.ID]; ok {
		o.replacements[idx] = s
		return
	}
	if s.ID != NoID {
		o.replaced[s.ID] = len(o.replacements)
	}
	o.replacements = append(o.replacements, s)
}

func (o *sliceOverlay) insert(s Segment) {
	o.nextID--
	s.ID = o.nextID
	o.added[s.ID] = len(o.additions)
	o.additions = append(o.additions, s)
}

// wrap returns a query which sees the pending edits.
func (o *sliceOverlay) wrap(query RangeQuery) RangeQuery {
	return func(r rect.Rect) []Segment {
		base := query(r)
		res := make([]Segment, 0, len(base))
		for _, s := range base {
			if idx, ok := o.replaced[s.ID]; ok && s.ID != NoID {
				s = o.replacements[idx]
				if !Overlaps(s.Bounds(), r) {
					continue
				}
			}
			res = append(res, s)
		}
		for _, s := range o.additions {
			if Overlaps(s.Bounds(), r) {
				res = append(res, s)
			}
		}
		return res
	}
}

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

// Package track provides an in-memory drawing with commit and revert.
//
// A Track answers the range and radius queries used by the geometry
// functions and applies the edits they return. Pending edits can be
// committed or discarded as a whole. Queries scan all segments; the
// package is meant for tests, tools and small drawings.
package track

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linegeom"
)

// ErrNotFound is returned when an edit refers to a segment which is not
// part of the track.
var ErrNotFound = errors.New("segment not found")

// Track is a set of segments with stable IDs.
//
// A Track is not safe for concurrent use.
type Track struct {
	segs   map[linegeom.ID]linegeom.Segment
	nextID linegeom.ID

	committed     map[linegeom.ID]linegeom.Segment
	committedNext linegeom.ID
}

// New returns a track containing the given segments, with fresh IDs.
// The initial state is committed.
func New(segs ...linegeom.Segment) *Track {
	t := &Track{
		segs: make(map[linegeom.ID]linegeom.Segment, len(segs)),
	}
	for _, s := range segs {
		t.Insert(s)
	}
	t.Commit()
	return t
}

// Len returns the number of segments.
func (t *Track) Len() int {
	return len(t.segs)
}

// All iterates over the segments in order of increasing ID.
func (t *Track) All() iter.Seq[linegeom.Segment] {
	return func(yield func(linegeom.Segment) bool) {
		for _, id := range slices.Sorted(maps.Keys(t.segs)) {
			if !yield(t.segs[id]) {
				return
			}
		}
	}
}

// Segments returns all segments in order of increasing ID.
func (t *Track) Segments() []linegeom.Segment {
	return slices.Collect(t.All())
}

// Get returns the segment with the given ID.
func (t *Track) Get(id linegeom.ID) (linegeom.Segment, bool) {
	s, ok := t.segs[id]
	return s, ok
}

// QueryRect returns the segments whose bounding rectangle overlaps r,
// in order of increasing ID.
func (t *Track) QueryRect(r rect.Rect) []linegeom.Segment {
	var res []linegeom.Segment
	for s := range t.All() {
		if linegeom.Overlaps(s.Bounds(), r) {
			res = append(res, s)
		}
	}
	return res
}

// QueryRadius returns the segments which come within radius of center,
// in order of increasing ID.
func (t *Track) QueryRadius(center vec.Vec2, radius float64) []linegeom.Segment {
	var res []linegeom.Segment
	for s := range t.All() {
		if s.DistTo(center) <= radius {
			res = append(res, s)
		}
	}
	return res
}

// Insert adds s to the track under a fresh ID and returns the stored
// segment.
func (t *Track) Insert(s linegeom.Segment) linegeom.Segment {
	t.nextID++
	s.ID = t.nextID
	t.segs[s.ID] = s
	return s
}

// Replace stores s in place of the segment with the same ID.
func (t *Track) Replace(s linegeom.Segment) error {
	if _, ok := t.segs[s.ID]; !ok {
		return fmt.Errorf("replace %d: %w", s.ID, ErrNotFound)
	}
	t.segs[s.ID] = s
	return nil
}

// Remove deletes the segment with the given ID.
func (t *Track) Remove(id linegeom.ID) error {
	if _, ok := t.segs[id]; !ok {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	delete(t.segs, id)
	return nil
}

// Apply performs a batch of edits: removals first, then replacements,
// then additions. The IDs assigned to the added segments are returned.
//
// If any removal or replacement refers to an unknown segment, the track
// is left unchanged and an error wrapping ErrNotFound is returned.
func (t *Track) Apply(e linegeom.Edits) ([]linegeom.ID, error) {
	removed := make(linegeom.IDSet, len(e.Remove))
	for _, id := range e.Remove {
		if _, ok := t.segs[id]; !ok {
			return nil, fmt.Errorf("remove %d: %w", id, ErrNotFound)
		}
		removed[id] = struct{}{}
	}
	for _, s := range e.Replace {
		if _, ok := t.segs[s.ID]; !ok || removed.Has(s.ID) {
			return nil, fmt.Errorf("replace %d: %w", s.ID, ErrNotFound)
		}
	}

	for id := range removed {
		delete(t.segs, id)
	}
	for _, s := range e.Replace {
		t.segs[s.ID] = s
	}
	ids := make([]linegeom.ID, 0, len(e.Add))
	for _, s := range e.Add {
		ids = append(ids, t.Insert(s).ID)
	}

	linegeom.Logger().Debug("apply edits",
		"removed", len(e.Remove),
		"replaced", len(e.Replace),
		"added", len(e.Add))
	return ids, nil
}

// Changed reports whether the track differs from the last committed state.
func (t *Track) Changed() bool {
	return t.nextID != t.committedNext || !maps.EqualFunc(t.segs, t.committed, sameSegment)
}

// Commit makes the current state the one restored by Revert.
func (t *Track) Commit() {
	t.committed = maps.Clone(t.segs)
	t.committedNext = t.nextID
}

// Revert discards all changes since the last commit.
func (t *Track) Revert() {
	t.segs = maps.Clone(t.committed)
	if t.segs == nil {
		t.segs = make(map[linegeom.ID]linegeom.Segment)
	}
	t.nextID = t.committedNext
}

// sameSegment compares geometry and identity. Payloads are not compared,
// since they need not be comparable.
func sameSegment(a, b linegeom.Segment) bool {
	return a.ID == b.ID && a.P1 == b.P1 && a.P2 == b.P2
}

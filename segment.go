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
	"seehuhn.de/go/geom/vec"
)

// ID is the stable identity of a committed segment.
type ID int64

// NoID marks a segment which has not been committed yet.
const NoID ID = 0

// Segment is a straight line from P1 to P2.
//
// Segments are values. An edit of a committed segment is expressed as a
// new Segment with the same ID.
type Segment struct {
	ID     ID
	P1, P2 vec.Vec2

	// Payload carries caller-defined attributes, for example the line type.
	// It is copied unchanged when a segment is split.
	Payload any
}

// Bounds returns the axis-aligned bounding rectangle of s.
func (s Segment) Bounds() rect.Rect {
	return rect.Rect{
		LLx: min(s.P1.X, s.P2.X),
		LLy: min(s.P1.Y, s.P2.Y),
		URx: max(s.P1.X, s.P2.X),
		URy: max(s.P1.Y, s.P2.Y),
	}
}

// Length returns the distance between the two end points.
func (s Segment) Length() float64 {
	return Dist(s.P1, s.P2)
}

// Midpoint returns the point half way between P1 and P2.
func (s Segment) Midpoint() vec.Vec2 {
	return s.P1.Add(s.P2).Mul(0.5)
}

// At returns the point P1 + t*(P2-P1).
func (s Segment) At(t float64) vec.Vec2 {
	return Lerp(s.P1, s.P2, t)
}

// DistTo returns the distance from p to the closest point of s.
func (s Segment) DistTo(p vec.Vec2) float64 {
	d := s.P2.Sub(s.P1)
	l2 := d.Dot(d)
	if l2 == 0 {
		return Dist(s.P1, p)
	}
	t := max(0, min(1, p.Sub(s.P1).Dot(d)/l2))
	return Dist(s.At(t), p)
}

// Bounds returns the smallest rectangle containing all segments.
// The zero rectangle is returned for an empty list.
func Bounds(segs []Segment) rect.Rect {
	if len(segs) == 0 {
		return rect.Rect{}
	}
	b := segs[0].Bounds()
	for _, s := range segs[1:] {
		b.LLx = min(b.LLx, s.P1.X, s.P2.X)
		b.LLy = min(b.LLy, s.P1.Y, s.P2.Y)
		b.URx = max(b.URx, s.P1.X, s.P2.X)
		b.URy = max(b.URy, s.P1.Y, s.P2.Y)
	}
	return b
}

// Overlaps reports whether the closed rectangles a and b intersect.
func Overlaps(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx &&
		a.LLy <= b.URy && b.LLy <= a.URy
}

// IDSet is a set of segment identities.
type IDSet map[ID]struct{}

// NewIDSet returns the set of IDs of the given segments.
// Uncommitted segments are not included.
func NewIDSet(segs []Segment) IDSet {
	set := make(IDSet, len(segs))
	for _, s := range segs {
		if s.ID != NoID {
			set[s.ID] = struct{}{}
		}
	}
	return set
}

// Has reports whether id is in the set. NoID is never a member.
func (set IDSet) Has(id ID) bool {
	if id == NoID {
		return false
	}
	_, ok := set[id]
	return ok
}

// RangeQuery returns all segments whose geometry overlaps r.
// The order of the result is not significant.
type RangeQuery func(r rect.Rect) []Segment

// LinearQuery returns a RangeQuery which scans segs.
func LinearQuery(segs []Segment) RangeQuery {
	return func(r rect.Rect) []Segment {
		var res []Segment
		for _, s := range segs {
			if Overlaps(s.Bounds(), r) {
				res = append(res, s)
			}
		}
		return res
	}
}

// Edits is a batch of changes to a drawing.
type Edits struct {
	// Remove lists committed segments to delete.
	Remove []ID

	// Replace lists new values for committed segments.
	Replace []Segment

	// Add lists new segments. Their IDs are NoID.
	Add []Segment
}

// IsEmpty reports whether e contains no changes.
func (e *Edits) IsEmpty() bool {
	return len(e.Remove) == 0 && len(e.Replace) == 0 && len(e.Add) == 0
}

// Polyline returns the segments connecting consecutive points.
// All segments carry the given payload.
func Polyline(points []vec.Vec2, payload any) []Segment {
	if len(points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segs = append(segs, Segment{
			P1:      points[i-1],
			P2:      points[i],
			Payload: payload,
		})
	}
	return segs
}

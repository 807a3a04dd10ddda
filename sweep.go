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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// sweepLine is a boundary segment in the rotated frame, with x0 <= x1.
type sweepLine struct {
	x0, y0 float64 // left end point
	x1, y1 float64 // right end point
}

// crossing returns the y coordinate where the line meets the vertical
// line through x. Lines with zero horizontal extent never cross.
func (l *sweepLine) crossing(x float64) (float64, bool) {
	dx := l.x1 - l.x0
	if dx == 0 {
		return 0, false
	}
	t := (x - l.x0) / dx
	return t*(l.y1-l.y0) + l.y0, true
}

// eventKind orders events which share the same x coordinate.
type eventKind uint8

const (
	eventEnter eventKind = iota // left end point of a line
	eventExit                   // right end point of a line
	eventProbe                  // point to classify, sees all toggles at its x
)

// event is a stop of the sweep.
type event struct {
	x, y float64
	kind eventKind
	line int // index into sweep.lines, unused for probes
	id   ID  // probe only
}

// sweep holds the state of a left-to-right sweep over a set of segments
// in a rotated frame.
//
// The active set lists the lines currently spanned by the sweep position.
// Lines are toggled in and out as their end point events are visited.
type sweep struct {
	basis Basis

	lines  []sweepLine
	events []event

	activeIdx []int     // indices of active lines
	activePos []int     // position of each line in activeIdx, or -1
	ys        []float64 // crossing buffer, reused between stops
}

// newSweep transforms the segments into the frame b and records two end
// point events per segment. Segments with non-finite coordinates are
// skipped.
func newSweep(segs []Segment, b Basis) *sweep {
	s := &sweep{
		basis:  b,
		lines:  make([]sweepLine, 0, len(segs)),
		events: make([]event, 0, 2*len(segs)),
	}
	for _, seg := range segs {
		p1 := b.ToBasis(seg.P1)
		p2 := b.ToBasis(seg.P2)
		if !isFinite(p1) || !isFinite(p2) {
			continue
		}
		if p2.X < p1.X {
			p1, p2 = p2, p1
		}

		idx := len(s.lines)
		s.lines = append(s.lines, sweepLine{
			x0: p1.X, y0: p1.Y,
			x1: p2.X, y1: p2.Y,
		})
		s.events = append(s.events,
			event{x: p1.X, y: p1.Y, kind: eventEnter, line: idx},
			event{x: p2.X, y: p2.Y, kind: eventExit, line: idx},
		)
	}

	s.activePos = make([]int, len(s.lines))
	for i := range s.activePos {
		s.activePos[i] = -1
	}
	return s
}

// addProbe adds a probe at the point p, given in the rotated frame.
func (s *sweep) addProbe(p vec.Vec2, id ID) {
	if !isFinite(p) {
		return
	}
	s.events = append(s.events, event{x: p.X, y: p.Y, kind: eventProbe, id: id})
}

// sortEvents orders the events by x. At equal x, enter events come
// before exit events, and probes come last. Otherwise the input order
// is kept.
func (s *sweep) sortEvents() {
	slices.SortStableFunc(s.events, func(a, b event) int {
		if c := cmp.Compare(a.x, b.x); c != 0 {
			return c
		}
		return cmp.Compare(a.kind, b.kind)
	})
}

// toggle inserts the line into the active set if it is absent and
// removes it otherwise.
func (s *sweep) toggle(line int) {
	pos := s.activePos[line]
	if pos < 0 {
		s.activePos[line] = len(s.activeIdx)
		s.activeIdx = append(s.activeIdx, line)
		return
	}

	// swap with last
	last := len(s.activeIdx) - 1
	moved := s.activeIdx[last]
	s.activeIdx[pos] = moved
	s.activePos[moved] = pos
	s.activeIdx = s.activeIdx[:last]
	s.activePos[line] = -1
}

// crossings returns the sorted y coordinates where the active lines meet
// the vertical line through x. The returned slice is only valid until
// the next call.
func (s *sweep) crossings(x float64) []float64 {
	s.ys = s.ys[:0]
	for _, idx := range s.activeIdx {
		if y, ok := s.lines[idx].crossing(x); ok {
			s.ys = append(s.ys, y)
		}
	}
	slices.Sort(s.ys)
	return s.ys
}

func isFinite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linegeom/curve"
	"seehuhn.de/go/linegeom/testcases"
)

// ExampleResult is the outcome of running a test case.
type ExampleResult struct {
	// Boundary holds the boundary segments. For slice and remove cases
	// they are part of the drawing and have IDs 1, 2, ....
	Boundary []Segment

	// Before and After hold the drawing before and after the operation.
	// The boundary is not included.
	Before []Segment
	After  []Segment

	// Added lists the segments created by the operation, Removed the IDs
	// of the deleted ones.
	Added   []Segment
	Removed []ID

	// Points is the output of a reduce case.
	Points []vec.Vec2
}

// RunExample applies the operation of tc to its geometry.
func RunExample(tc testcases.TestCase) (*ExampleResult, error) {
	f := curve.NewFlattener()
	boundary := SegmentsFromPath(tc.Boundary, f)
	var track []Segment
	if tc.Track != nil {
		track = SegmentsFromPath(tc.Track, f)
	}

	res := &ExampleResult{}
	switch op := tc.Op.(type) {
	case testcases.Hatch:
		p := HatchParams{
			Angle:     op.Angle,
			Spacing:   op.Spacing,
			Offset:    op.Offset,
			BaseWidth: op.BaseWidth,
		}
		res.Boundary = boundary
		res.Before = track
		res.Added = HatchSegments(boundary, p, nil)
		res.After = append(slices.Clone(track), res.Added...)

	case testcases.Slice:
		d := newDrawing(boundary, track)
		res.Boundary = d.boundary
		res.Before = d.others()

		e, _ := SliceEdits(d.boundary, d.query())
		res.Added = d.apply(e)
		if op.Remove {
			res.Removed = slices.Collect(ClassifyForRemoval(d.boundary, d.query(), op.Angle))
			d.apply(Edits{Remove: res.Removed})
		}
		res.After = d.others()

	case testcases.Remove:
		d := newDrawing(boundary, track)
		res.Boundary = d.boundary
		res.Before = d.others()
		res.Removed = slices.Collect(ClassifyForRemoval(d.boundary, d.query(), op.Angle))
		d.apply(Edits{Remove: res.Removed})
		res.After = d.others()

	case testcases.Reduce:
		pts := vertices(tc.Boundary)
		for range op.Smooth {
			pts = Smooth(pts)
		}
		res.Points = Reduce(pts, op.AngleThreshold, op.LengthThreshold)

	default:
		return nil, fmt.Errorf("%s: unsupported operation %T", tc.Name, tc.Op)
	}
	return res, nil
}

// vertices returns the end points of all path segments, in order.
// Curves contribute their end point only.
func vertices(p path.Path) []vec.Vec2 {
	var pts []vec.Vec2
	for cmd, cmdPts := range p {
		if cmd == path.CmdClose || len(cmdPts) == 0 {
			continue
		}
		pts = append(pts, cmdPts[len(cmdPts)-1])
	}
	return pts
}

// drawing is a committed set of segments, with the boundary first.
type drawing struct {
	boundary []Segment
	segs     []Segment // in order of increasing ID
	nextID   ID
}

func newDrawing(boundary, track []Segment) *drawing {
	d := &drawing{}
	for _, s := range boundary {
		d.nextID++
		s.ID = d.nextID
		d.boundary = append(d.boundary, s)
		d.segs = append(d.segs, s)
	}
	for _, s := range track {
		d.nextID++
		s.ID = d.nextID
		d.segs = append(d.segs, s)
	}
	return d
}

func (d *drawing) query() RangeQuery {
	return LinearQuery(d.segs)
}

// others returns the segments which are not part of the boundary.
func (d *drawing) others() []Segment {
	return slices.Clone(d.segs[len(d.boundary):])
}

// apply performs the edits and returns the added segments with their
// new IDs.
func (d *drawing) apply(e Edits) []Segment {
	removed := make(IDSet, len(e.Remove))
	for _, id := range e.Remove {
		removed[id] = struct{}{}
	}
	replaced := make(map[ID]Segment, len(e.Replace))
	for _, s := range e.Replace {
		replaced[s.ID] = s
	}

	segs := d.segs[:0:0]
	for _, s := range d.segs {
		if removed.Has(s.ID) {
			continue
		}
		if r, ok := replaced[s.ID]; ok {
			s = r
		}
		segs = append(segs, s)
	}

	var added []Segment
	for _, s := range e.Add {
		d.nextID++
		s.ID = d.nextID
		segs = append(segs, s)
		added = append(added, s)
	}
	d.segs = segs
	return added
}

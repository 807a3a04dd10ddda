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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linegeom/curve"
)

// SegmentsFromPath converts a path into straight segments.
// A *path.Data value can be passed using its Iter method.
//
// Curves are flattened using f; if f is nil, curve.NewFlattener is used.
// Closed subpaths get a closing segment. Segments shorter than a small
// tolerance are skipped. All segments have ID NoID and no payload.
func SegmentsFromPath(p path.Path, f *curve.Flattener) []Segment {
	if p == nil {
		return nil
	}
	if f == nil {
		f = curve.NewFlattener()
	}

	var segs []Segment
	add := func(a, b vec.Vec2) {
		if Dist(a, b) < zeroLengthThreshold {
			return
		}
		segs = append(segs, Segment{P1: a, P2: b})
	}

	var currentPt, subpathStartPt vec.Vec2
	inSubpath := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			currentPt = pts[0]
			subpathStartPt = currentPt
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			add(currentPt, pts[0])
			currentPt = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			f.Quadratic(currentPt, pts[0], pts[1], add)
			currentPt = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			f.Cubic(currentPt, pts[0], pts[1], pts[2], add)
			currentPt = pts[2]

		case path.CmdClose:
			if inSubpath {
				add(currentPt, subpathStartPt)
				currentPt = subpathStartPt
				inSubpath = false
			}
		}
	}
	return segs
}

// PathFromSegments returns a path with one open subpath per segment.
func PathFromSegments(segs []Segment) *path.Data {
	p := &path.Data{}
	for _, s := range segs {
		p = p.MoveTo(s.P1).LineTo(s.P2)
	}
	return p
}

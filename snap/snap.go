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

// Package snap implements end point snapping for the drawing tools.
//
// A tool position close to the end point of a committed segment is moved
// onto that end point. Optionally the direction of the snapped segment is
// reported, so that a tool can lock the next point onto the continuation
// of the segment.
package snap

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linegeom"
)

// Default values for a Snapper.
const (
	// DefaultMaxDistance is the snap radius in screen units.
	DefaultMaxDistance = 6.0

	// DefaultMaxZoom is the largest zoom factor of the editor.
	DefaultMaxZoom = 32.0
)

// RadiusQuery returns all segments within radius of center.
// The order of the result is not significant.
type RadiusQuery func(center vec.Vec2, radius float64) []linegeom.Segment

// A Snapper moves positions onto nearby segment end points.
type Snapper struct {
	// MaxDistance is the snap radius in screen units.
	MaxDistance float64

	// MaxZoom is the largest zoom factor of the editor. Beyond a zoom of
	// MaxZoom/10 the snap radius in drawing units stops shrinking.
	MaxZoom float64
}

// NewSnapper returns a Snapper with the default settings.
func NewSnapper() *Snapper {
	return &Snapper{
		MaxDistance: DefaultMaxDistance,
		MaxZoom:     DefaultMaxZoom,
	}
}

// Point is the result of a snap.
type Point struct {
	Pos vec.Vec2

	// Snapped is true if Pos is the end point of a segment.
	Snapped bool

	// Facing is the unit vector pointing from the other end point of the
	// snapped segment towards Pos. It is only set if HasFacing is true.
	Facing    vec.Vec2
	HasFacing bool
}

// Radius returns the snap radius in drawing units at the given zoom.
func (s *Snapper) Radius(zoom float64) float64 {
	return s.MaxDistance / min(zoom, s.MaxZoom/10)
}

// Snap returns the end point closest to pos, among the segments returned
// by query within the snap radius. If no end point is closer than the snap
// radius, pos is returned unchanged.
//
// Segments whose ID is in ignore are skipped, and so is an end point equal
// to *ignorePoint if ignorePoint is not nil. If withFacing is set, the
// direction of the snapped segment is reported in the result.
func (s *Snapper) Snap(pos vec.Vec2, zoom float64, query RadiusQuery, ignore linegeom.IDSet, ignorePoint *vec.Vec2, withFacing bool) Point {
	closest := s.Radius(zoom)
	res := Point{Pos: pos}

	var other vec.Vec2
	consider := func(p, q vec.Vec2) {
		if ignorePoint != nil && p == *ignorePoint {
			return
		}
		if d := linegeom.Dist(pos, p); d < closest {
			closest = d
			res.Pos = p
			res.Snapped = true
			other = q
		}
	}

	for _, seg := range query(pos, closest) {
		if ignore.Has(seg.ID) {
			continue
		}
		consider(seg.P1, seg.P2)
		consider(seg.P2, seg.P1)
	}

	if res.Snapped && withFacing {
		res.Facing = linegeom.Normalize(res.Pos.Sub(other))
		res.HasFacing = true
	}

	linegeom.Logger().Debug("snap",
		"snapped", res.Snapped,
		"radius", s.Radius(zoom))
	return res
}

// AngleLock projects pos onto the line through start in the direction
// facing. The vector facing must have unit length.
func AngleLock(pos, start, facing vec.Vec2) vec.Vec2 {
	delta := pos.Sub(start)
	return facing.Mul(delta.Dot(facing)).Add(start)
}

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

// Package bezier implements the state machine of an interactive cubic
// Bézier tool.
//
// A curve is created by two press-drag-release gestures: the first one
// places the start point and drags out its control point, the second one
// does the same for the end point. Afterwards the tool is in edit mode,
// where each of the four points can be grabbed and moved.
//
// States are immutable values. The transition methods of Tool return the
// next state and leave their argument unchanged.
package bezier

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linegeom"
	"seehuhn.de/go/linegeom/curve"
	"seehuhn.de/go/linegeom/snap"
)

// DefaultPointRadius is the size of a grab handle in screen units.
const DefaultPointRadius = 10.0

// State is one of Init, ControlOne, ControlTwo and Edit.
type State interface {
	isState()
}

// Init is the state before the first point is placed.
type Init struct{}

// ControlOne is the state while the control point of the start point is
// being dragged.
type ControlOne struct {
	P1 snap.Point
	C1 vec.Vec2
}

// ControlTwo is the state while the control point of the end point is
// being dragged.
type ControlTwo struct {
	P1 snap.Point
	C1 vec.Vec2
	P2 snap.Point
	C2 vec.Vec2
}

// Edit is the state after the curve has been placed.
type Edit struct {
	P1 snap.Point
	C1 vec.Vec2
	P2 snap.Point
	C2 vec.Vec2

	// Active is the point being dragged, if any.
	Active Handle

	// Grab is the offset from the pointer to the active point.
	Grab vec.Vec2
}

func (Init) isState()       {}
func (ControlOne) isState() {}
func (ControlTwo) isState() {}
func (Edit) isState()       {}

// Handle identifies one of the points of the curve in edit mode.
type Handle int

// These are the valid values for Handle.
const (
	HandleNone Handle = iota
	HandleP1
	HandleP2
	HandleC1
	HandleC2
)

func (h Handle) String() string {
	switch h {
	case HandleNone:
		return "none"
	case HandleP1:
		return "p1"
	case HandleP2:
		return "p2"
	case HandleC1:
		return "c1"
	case HandleC2:
		return "c2"
	}
	return "invalid"
}

// Tool holds the settings which drive the state transitions.
type Tool struct {
	// Snapper and Query are used to snap end points to the committed
	// drawing. If Query is nil, points are never snapped.
	Snapper *snap.Snapper
	Query   snap.RadiusQuery

	// Zoom is the current zoom factor of the editor.
	// Zero is treated as 1.
	Zoom float64

	// PointSnap enables snapping of end points.
	PointSnap bool

	// AngleLock keeps a control point on the continuation of the segment
	// its end point was snapped to.
	AngleLock bool

	// PointRadius is the size of a grab handle in screen units.
	PointRadius float64

	// Flattener is used to approximate the curve.
	Flattener *curve.Flattener
}

// NewTool returns a Tool with point snapping enabled and default settings.
func NewTool(query snap.RadiusQuery) *Tool {
	return &Tool{
		Snapper:     snap.NewSnapper(),
		Query:       query,
		Zoom:        1,
		PointSnap:   true,
		PointRadius: DefaultPointRadius,
		Flattener:   curve.NewFlattener(),
	}
}

func (t *Tool) zoom() float64 {
	if t.Zoom > 0 {
		return t.Zoom
	}
	return 1
}

func (t *Tool) snap(pos vec.Vec2) snap.Point {
	if !t.PointSnap || t.Query == nil {
		return snap.Point{Pos: pos}
	}
	s := t.Snapper
	if s == nil {
		s = snap.NewSnapper()
	}
	return s.Snap(pos, t.zoom(), t.Query, nil, nil, true)
}

func (t *Tool) lock(pos vec.Vec2, anchor snap.Point) vec.Vec2 {
	if !t.AngleLock || !anchor.HasFacing {
		return pos
	}
	return snap.AngleLock(pos, anchor.Pos, anchor.Facing)
}

// Down handles a pointer press at pos, given in drawing coordinates.
func (t *Tool) Down(s State, pos vec.Vec2) State {
	switch s := s.(type) {
	case Init:
		p1 := t.snap(pos)
		return ControlOne{P1: p1, C1: p1.Pos}
	case ControlOne:
		p2 := t.snap(pos)
		return ControlTwo{P1: s.P1, C1: s.C1, P2: p2, C2: p2.Pos}
	case Edit:
		r := t.PointRadius / t.zoom() / 2
		next := s
		switch {
		case inBounds(pos, s.P1.Pos, r):
			next.Active, next.Grab = HandleP1, s.P1.Pos.Sub(pos)
		case inBounds(pos, s.P2.Pos, r):
			next.Active, next.Grab = HandleP2, s.P2.Pos.Sub(pos)
		case inBounds(pos, s.C1, r):
			next.Active, next.Grab = HandleC1, s.C1.Sub(pos)
		case inBounds(pos, s.C2, r):
			next.Active, next.Grab = HandleC2, s.C2.Sub(pos)
		}
		return next
	}
	return s
}

// Drag handles pointer movement to pos while the button is pressed.
func (t *Tool) Drag(s State, pos vec.Vec2) State {
	switch s := s.(type) {
	case ControlOne:
		s.C1 = t.lock(pos, s.P1)
		return s
	case ControlTwo:
		s.C2 = t.lock(pos, s.P2)
		return s
	case Edit:
		return t.dragEdit(s, pos)
	}
	return s
}

func (t *Tool) dragEdit(s Edit, pos vec.Vec2) Edit {
	target := s.Grab.Add(pos)
	switch s.Active {
	case HandleP1:
		p := t.snap(target)
		s.C1 = s.C1.Add(p.Pos.Sub(s.P1.Pos))
		s.P1 = p
	case HandleP2:
		p := t.snap(target)
		s.C2 = s.C2.Add(p.Pos.Sub(s.P2.Pos))
		s.P2 = p
	case HandleC1:
		s.C1 = t.lock(target, s.P1)
	case HandleC2:
		s.C2 = t.lock(target, s.P2)
	}
	return s
}

// Up handles the release of the pointer button.
func (t *Tool) Up(s State) State {
	switch s := s.(type) {
	case ControlTwo:
		return Edit{P1: s.P1, C1: s.C1, P2: s.P2, C2: s.C2}
	case Edit:
		s.Active = HandleNone
		return s
	}
	return s
}

// Curve returns a polyline approximating the curve of s, or nil if s does
// not yet describe a curve.
func (t *Tool) Curve(s State) []vec.Vec2 {
	var p1, c1, c2, p2 vec.Vec2
	switch s := s.(type) {
	case ControlTwo:
		p1, c1, c2, p2 = s.P1.Pos, s.C1, s.C2, s.P2.Pos
	case Edit:
		p1, c1, c2, p2 = s.P1.Pos, s.C1, s.C2, s.P2.Pos
	default:
		return nil
	}

	f := t.Flattener
	if f == nil {
		f = curve.NewFlattener()
	}
	pts := []vec.Vec2{p1}
	f.Cubic(p1, c1, c2, p2, func(_, to vec.Vec2) {
		pts = append(pts, to)
	})
	return pts
}

// Segments returns the segments of the curve of s, carrying the given
// payload.
func (t *Tool) Segments(s State, payload any) []linegeom.Segment {
	return linegeom.Polyline(t.Curve(s), payload)
}

// inBounds reports whether p lies in the square of half width r around q.
func inBounds(p, q vec.Vec2, r float64) bool {
	return math.Abs(p.X-q.X) < r && math.Abs(p.Y-q.Y) < r
}

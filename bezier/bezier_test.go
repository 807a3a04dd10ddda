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

package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linegeom"
	"seehuhn.de/go/linegeom/track"
)

func newTestTool() *Tool {
	tr := track.New(linegeom.Segment{P1: vec.Vec2{X: 0, Y: 0}, P2: vec.Vec2{X: 10, Y: 0}})
	tool := NewTool(tr.QueryRadius)
	tool.AngleLock = true
	return tool
}

// place runs the two gestures which create a curve.
func place(t *testing.T, tool *Tool) Edit {
	t.Helper()

	var s State = Init{}
	s = tool.Down(s, vec.Vec2{X: 10.5, Y: 0.3})
	s = tool.Drag(s, vec.Vec2{X: 15, Y: 4})
	s = tool.Up(s)
	s = tool.Down(s, vec.Vec2{X: 30, Y: 10})
	s = tool.Drag(s, vec.Vec2{X: 35, Y: 10})
	s = tool.Up(s)

	edit, ok := s.(Edit)
	require.True(t, ok, "got state %T", s)
	return edit
}

func TestPlace(t *testing.T) {
	assert := assert.New(t)
	tool := newTestTool()

	var s State = Init{}
	s = tool.Down(s, vec.Vec2{X: 10.5, Y: 0.3})
	one, ok := s.(ControlOne)
	require.True(t, ok)
	assert.True(one.P1.Snapped)
	assert.Equal(vec.Vec2{X: 10, Y: 0}, one.P1.Pos)
	assert.Equal(one.P1.Pos, one.C1)

	// the control point is locked to the continuation of the segment
	s = tool.Drag(s, vec.Vec2{X: 15, Y: 4})
	one = s.(ControlOne)
	assert.InDelta(15, one.C1.X, 1e-12)
	assert.InDelta(0, one.C1.Y, 1e-12)

	// releasing after the first gesture keeps the state
	s = tool.Up(s)
	assert.IsType(ControlOne{}, s)

	s = tool.Down(s, vec.Vec2{X: 30, Y: 10})
	two, ok := s.(ControlTwo)
	require.True(t, ok)
	assert.False(two.P2.Snapped)
	assert.Equal(vec.Vec2{X: 30, Y: 10}, two.P2.Pos)

	s = tool.Drag(s, vec.Vec2{X: 35, Y: 11})
	two = s.(ControlTwo)
	assert.Equal(vec.Vec2{X: 35, Y: 11}, two.C2)

	s = tool.Up(s)
	edit, ok := s.(Edit)
	require.True(t, ok)
	assert.Equal(HandleNone, edit.Active)
	assert.Equal(two.C2, edit.C2)
	assert.Equal(two.P1, edit.P1)
}

func TestEditMoveEndPoint(t *testing.T) {
	assert := assert.New(t)
	tool := newTestTool()
	edit := place(t, tool)

	// grab the start point slightly off centre
	s := tool.Down(edit, vec.Vec2{X: 11, Y: 1})
	grabbed := s.(Edit)
	assert.Equal(HandleP1, grabbed.Active)
	assert.Equal(vec.Vec2{X: -1, Y: -1}, grabbed.Grab)

	// the control point moves along with its end point
	s = tool.Drag(s, vec.Vec2{X: 21, Y: 21})
	moved := s.(Edit)
	assert.Equal(vec.Vec2{X: 20, Y: 20}, moved.P1.Pos)
	assert.False(moved.P1.Snapped)
	assert.InDelta(edit.C1.X+10, moved.C1.X, 1e-12)
	assert.InDelta(edit.C1.Y+20, moved.C1.Y, 1e-12)
	assert.Equal(edit.P2, moved.P2)
	assert.Equal(edit.C2, moved.C2)

	s = tool.Up(s)
	assert.Equal(HandleNone, s.(Edit).Active)

	// the original state is unchanged
	assert.Equal(vec.Vec2{X: 10, Y: 0}, edit.P1.Pos)
}

func TestEditMoveControlPoint(t *testing.T) {
	assert := assert.New(t)
	tool := newTestTool()
	edit := place(t, tool)

	s := tool.Down(edit, edit.C2.Add(vec.Vec2{X: 2, Y: 0}))
	assert.Equal(HandleC2, s.(Edit).Active)

	s = tool.Drag(s, vec.Vec2{X: 40, Y: 0})
	moved := s.(Edit)
	assert.Equal(vec.Vec2{X: 38, Y: 0}, moved.C2)
	assert.Equal(edit.P2, moved.P2)
}

func TestEditMiss(t *testing.T) {
	tool := newTestTool()
	edit := place(t, tool)

	s := tool.Down(edit, vec.Vec2{X: 100, Y: 100})
	assert.Equal(t, HandleNone, s.(Edit).Active)

	// dragging without a grabbed point changes nothing
	assert.Equal(t, s, tool.Drag(s, vec.Vec2{X: 50, Y: 50}))
}

func TestCurve(t *testing.T) {
	assert := assert.New(t)
	tool := newTestTool()

	assert.Nil(tool.Curve(Init{}))
	assert.Nil(tool.Segments(ControlOne{}, nil))

	edit := place(t, tool)
	pts := tool.Curve(edit)
	require.GreaterOrEqual(t, len(pts), 2)
	assert.Equal(edit.P1.Pos, pts[0])
	assert.Equal(edit.P2.Pos, pts[len(pts)-1])

	segs := tool.Segments(edit, "curve")
	assert.Len(segs, len(pts)-1)
	for _, s := range segs {
		assert.Equal(linegeom.NoID, s.ID)
		assert.Equal("curve", s.Payload)
	}
}

func TestNoSnap(t *testing.T) {
	tool := newTestTool()
	tool.PointSnap = false

	s := tool.Down(Init{}, vec.Vec2{X: 10.5, Y: 0.3})
	one := s.(ControlOne)
	assert.False(t, one.P1.Snapped)
	assert.Equal(t, vec.Vec2{X: 10.5, Y: 0.3}, one.P1.Pos)

	// without a snapped segment there is no direction to lock to
	s = tool.Drag(s, vec.Vec2{X: 15, Y: 4})
	assert.Equal(t, vec.Vec2{X: 15, Y: 4}, s.(ControlOne).C1)
}

func TestHandleString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("none", HandleNone.String())
	assert.Equal("p1", HandleP1.String())
	assert.Equal("c2", HandleC2.String())
	assert.Equal("invalid", Handle(17).String())
}

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
	"image"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linegeom/testcases"
)

func TestExamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				res, err := RunExample(tc)
				if err != nil {
					t.Fatal(err)
				}

				switch op := tc.Op.(type) {
				case testcases.Hatch:
					checkHatch(t, tc, res)
				case testcases.Slice:
					checkSlice(t, res, op.Remove)
				case testcases.Remove:
					checkRemove(t, res)
				case testcases.Reduce:
					checkReduce(t, tc, res)
				}
			})
		}
	}
}

func checkHatch(t *testing.T, tc testcases.TestCase, res *ExampleResult) {
	t.Helper()

	closed := false
	for cmd := range tc.Boundary {
		if cmd == path.CmdClose {
			closed = true
			break
		}
	}
	if !closed {
		if len(res.Added) != 0 {
			t.Errorf("open boundary gave %d fill lines", len(res.Added))
		}
		return
	}
	if len(res.Added) == 0 {
		t.Fatal("no fill lines")
	}

	m := newMask(tc.Boundary, Bounds(res.Boundary), 256)
	for _, s := range res.Added {
		if s.Length() == 0 {
			t.Errorf("zero length fill line at %v", s.P1)
		}
		mid := s.Midpoint()
		if !m.covers(mid) {
			t.Errorf("fill line %v-%v outside the filled area", s.P1, s.P2)
		}
		if boundaryDist(mid, res.Boundary) > 1e-6 && !evenOdd(mid, res.Boundary) {
			t.Errorf("fill line %v-%v outside the boundary", s.P1, s.P2)
		}
	}
}

func checkSlice(t *testing.T, res *ExampleResult, remove bool) {
	t.Helper()

	if n := len(res.Before) + len(res.Added) - len(res.Removed); len(res.After) != n {
		t.Errorf("got %d segments after slicing, want %d", len(res.After), n)
	}
	for _, s := range res.Added {
		if d := boundaryDist(s.P1, res.Boundary); d > 1e-6 {
			t.Errorf("piece %v-%v starts %g away from the boundary", s.P1, s.P2, d)
		}
	}

	if !remove {
		before, after := totalLength(res.Before), totalLength(res.After)
		if math.Abs(before-after) > 1e-9*before {
			t.Errorf("total length changed from %g to %g", before, after)
		}
		return
	}

	for _, s := range res.After {
		mid := s.Midpoint()
		if boundaryDist(mid, res.Boundary) > 1e-6 && evenOdd(mid, res.Boundary) {
			t.Errorf("segment %d inside the boundary was kept", s.ID)
		}
	}
}

func checkRemove(t *testing.T, res *ExampleResult) {
	t.Helper()

	if len(res.Removed) == 0 {
		t.Error("nothing removed")
	}
	if len(res.Added) != 0 {
		t.Errorf("%d segments added", len(res.Added))
	}

	removed := make(IDSet)
	for _, id := range res.Removed {
		removed[id] = struct{}{}
	}
	for _, s := range res.Before {
		inside := evenOdd(s.Midpoint(), res.Boundary)
		if inside != removed.Has(s.ID) {
			t.Errorf("segment %d: inside=%t, removed=%t", s.ID, inside, removed.Has(s.ID))
		}
	}
	if len(res.After) != len(res.Before)-len(res.Removed) {
		t.Errorf("got %d segments after removal", len(res.After))
	}
}

func checkReduce(t *testing.T, tc testcases.TestCase, res *ExampleResult) {
	t.Helper()

	in := vertices(tc.Boundary)
	out := res.Points
	if len(out) < 2 || len(out) > len(in)*4 {
		t.Fatalf("got %d points from %d", len(out), len(in))
	}
	if out[0] != in[0] || out[len(out)-1] != in[len(in)-1] {
		t.Errorf("end points not kept")
	}
	if tc.Name == "straight_line" && len(out) != 2 {
		t.Errorf("straight line reduced to %d points", len(out))
	}
}

func totalLength(segs []Segment) float64 {
	total := 0.0
	for _, s := range segs {
		total += s.Length()
	}
	return total
}

// mask is an anti-aliased rendering of a path, filled with the nonzero
// winding rule.
type mask struct {
	img   *image.Alpha
	bbox  rect.Rect
	scale float64
}

func newMask(p path.Path, bbox rect.Rect, size int) *mask {
	w := max(bbox.URx-bbox.LLx, bbox.URy-bbox.LLy)
	m := &mask{
		img:   image.NewAlpha(image.Rect(0, 0, size, size)),
		bbox:  bbox,
		scale: float64(size-2) / w,
	}

	r := vector.NewRasterizer(size, size)
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.ClosePath()
			}
			x, y := m.toPixel(pts[0])
			r.MoveTo(x, y)
			open = true
		case path.CmdLineTo:
			x, y := m.toPixel(pts[0])
			r.LineTo(x, y)
		case path.CmdQuadTo:
			bx, by := m.toPixel(pts[0])
			cx, cy := m.toPixel(pts[1])
			r.QuadTo(bx, by, cx, cy)
		case path.CmdCubeTo:
			bx, by := m.toPixel(pts[0])
			cx, cy := m.toPixel(pts[1])
			dx, dy := m.toPixel(pts[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		case path.CmdClose:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
	r.Draw(m.img, m.img.Bounds(), image.Opaque, image.Point{})
	return m
}

func (m *mask) toPixel(p vec.Vec2) (float32, float32) {
	x := 1 + (p.X-m.bbox.LLx)*m.scale
	y := 1 + (p.Y-m.bbox.LLy)*m.scale
	return float32(x), float32(y)
}

// covers reports whether the pixel containing p, or one of its
// neighbours, is at least partially covered.
func (m *mask) covers(p vec.Vec2) bool {
	x, y := m.toPixel(p)
	px, py := int(math.Floor(float64(x))), int(math.Floor(float64(y)))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			q := image.Point{X: px + dx, Y: py + dy}
			if !q.In(m.img.Rect) {
				continue
			}
			if m.img.AlphaAt(q.X, q.Y).A > 0 {
				return true
			}
		}
	}
	return false
}

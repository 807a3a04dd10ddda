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
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestHatchSquare(t *testing.T) {
	segs := square(1, 0, 0, 10)
	spans := collectSpans(segs, HatchParams{BaseWidth: 2})

	if len(spans) != 5 {
		t.Fatalf("got %d spans, want 5: %v", len(spans), spans)
	}
	for i, s := range spans {
		x := 2 * float64(i)
		if !near(s.A, pt(x, 0), eps) || !near(s.B, pt(x, 10), eps) {
			t.Errorf("span %d: got %v, want (%g,0)-(%g,10)", i, s, x, x)
		}
	}
}

func TestHatchDefaultWidth(t *testing.T) {
	segs := square(1, 0, 0, 10)
	a := collectSpans(segs, HatchParams{})
	b := collectSpans(segs, HatchParams{BaseWidth: DefaultLineWidth})
	if !slices.Equal(a, b) {
		t.Errorf("zero BaseWidth differs from DefaultLineWidth")
	}
}

func TestHatchOffset(t *testing.T) {
	segs := square(1, 0, 0, 10)
	spans := collectSpans(segs, HatchParams{BaseWidth: 2, Offset: 0.5})

	want := []float64{1, 3, 5, 7, 9}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d", len(spans), len(want))
	}
	for i, s := range spans {
		if math.Abs(s.A.X-want[i]) > eps || math.Abs(s.B.X-want[i]) > eps {
			t.Errorf("span %d at x=%g, want %g", i, s.A.X, want[i])
		}
	}
}

func TestHatchHorizontal(t *testing.T) {
	segs := square(1, 0, 0, 10)
	spans := collectSpans(segs, HatchParams{Angle: 90, BaseWidth: 2, Offset: 0.25})
	if len(spans) != 5 {
		t.Fatalf("got %d spans, want 5", len(spans))
	}
	for _, s := range spans {
		if math.Abs(s.A.Y-s.B.Y) > 1e-9 {
			t.Errorf("span %v is not horizontal", s)
		}
		if math.Abs(math.Abs(s.A.X-s.B.X)-10) > 1e-9 {
			t.Errorf("span %v does not cross the square", s)
		}
	}
}

// TestHatchParity checks that the spans on each hatch line alternate
// between the inside and the outside of a ring.
func TestHatchParity(t *testing.T) {
	segs := append(square(1, 7, 7, 50), square(5, 22, 22, 20)...)

	for _, angle := range []float64{0, 30, 90} {
		spans := collectSpans(segs, HatchParams{Angle: angle, Spacing: 1, Offset: 0.3})
		if len(spans) == 0 {
			t.Fatalf("angle %g: no spans", angle)
		}

		for i, s := range spans {
			mid := Lerp(s.A, s.B, 0.5)
			if boundaryDist(mid, segs) > 1e-6 && !evenOdd(mid, segs) {
				t.Errorf("angle %g: span %v outside", angle, s)
			}

			// the gap to the next span on the same line is outside
			if i+1 < len(spans) {
				next := spans[i+1]
				dir := s.B.Sub(s.A)
				if math.Abs(cross(dir, next.A.Sub(s.A))) > 1e-6 {
					continue // next hatch line
				}
				gap := Lerp(s.B, next.A, 0.5)
				if boundaryDist(gap, segs) > 1e-6 && evenOdd(gap, segs) {
					t.Errorf("angle %g: gap %v-%v inside", angle, s.B, next.A)
				}
			}
		}
	}
}

func TestHatchDeterministic(t *testing.T) {
	segs := loop(1, pt(3, 1), pt(40, 7), pt(22, 19), pt(31, 35), pt(2, 28))
	p := HatchParams{Angle: 23, Spacing: 0.5, Offset: 0.4}

	seq := Hatch(segs, p)
	var first, second []span
	for a, b := range seq {
		first = append(first, span{a, b})
	}
	for a, b := range seq {
		second = append(second, span{a, b})
	}
	third := collectSpans(segs, p)

	if len(first) == 0 {
		t.Fatal("no spans")
	}
	if !slices.Equal(first, second) || !slices.Equal(first, third) {
		t.Error("repeated iterations differ")
	}
}

func TestHatchSpacingLaw(t *testing.T) {
	segs := loop(1, pt(0, 0), pt(100, 10), pt(90, 80), pt(10, 95))
	for _, angle := range []float64{0, 45, 100} {
		n1 := len(collectSpans(segs, HatchParams{Angle: angle, BaseWidth: 1, Spacing: 1}))
		n2 := len(collectSpans(segs, HatchParams{Angle: angle, BaseWidth: 1, Spacing: 3}))
		if n2 == 0 || n1 == 0 {
			t.Fatalf("angle %g: no spans", angle)
		}
		if d := n1 - 2*n2; d < -2 || d > 2 {
			t.Errorf("angle %g: %d spans at distance 2, %d at distance 4", angle, n1, n2)
		}
	}
}

// TestHatchCoincident checks that a doubled segment neither produces a
// span nor disturbs the pairing of the crossings above it.
func TestHatchCoincident(t *testing.T) {
	segs := square(1, 0, 0, 10)
	segs = append(segs,
		Segment{ID: 10, P1: pt(0, 15), P2: pt(10, 15)},
		Segment{ID: 11, P1: pt(10, 15), P2: pt(0, 15)},
	)
	segs = append(segs, square(20, 0, 20, 10)...)

	spans := collectSpans(segs, HatchParams{BaseWidth: 2, Offset: 0.5})
	if len(spans) != 10 {
		t.Fatalf("got %d spans, want 10", len(spans))
	}
	for _, s := range spans {
		lo, hi := min(s.A.Y, s.B.Y), max(s.A.Y, s.B.Y)
		ok := (math.Abs(lo) < eps && math.Abs(hi-10) < eps) ||
			(math.Abs(lo-20) < eps && math.Abs(hi-30) < eps)
		if !ok {
			t.Errorf("unexpected span %v", s)
		}
	}
}

func TestHatchDegenerate(t *testing.T) {
	base := collectSpans(square(1, 0, 0, 10), HatchParams{Offset: 0.3})

	segs := square(1, 0, 0, 10)
	segs = append(segs,
		Segment{ID: 10, P1: pt(5, 5), P2: pt(5, 5)},            // zero length
		Segment{ID: 11, P1: pt(4, 2), P2: pt(4, 8)},            // vertical in the frame
		Segment{ID: 12, P1: pt(math.NaN(), 0), P2: pt(3, 3)},   // not finite
		Segment{ID: 13, P1: pt(0, math.Inf(1)), P2: pt(3, 3)},  // not finite
		Segment{ID: 14, P1: pt(1, 1), P2: pt(math.Inf(-1), 1)}, // not finite
	)
	got := collectSpans(segs, HatchParams{Offset: 0.3})
	if !slices.Equal(base, got) {
		t.Errorf("degenerate segments changed the result:\n%v\n%v", base, got)
	}
}

func TestHatchEmpty(t *testing.T) {
	if n := len(collectSpans(nil, HatchParams{})); n != 0 {
		t.Errorf("empty input gave %d spans", n)
	}

	// an open line has no inside
	zigzag := Polyline([]vec.Vec2{pt(0, 0), pt(10, 10), pt(20, 0), pt(30, 10)}, nil)
	if n := len(collectSpans(zigzag, HatchParams{Offset: 0.3})); n != 0 {
		t.Errorf("open line gave %d spans", n)
	}
}

func TestHatchInvalidSpacing(t *testing.T) {
	segs := square(1, 0, 0, 10)
	cases := []HatchParams{
		{BaseWidth: -1},
		{Spacing: -1},
		{Spacing: -3},
		{Spacing: math.NaN()},
		{BaseWidth: math.Inf(1)},
	}
	for _, p := range cases {
		if n := len(collectSpans(segs, p)); n != 0 {
			t.Errorf("%+v: got %d spans", p, n)
		}
	}
}

func TestHatchTinySpacing(t *testing.T) {
	// the spacing is below the resolution of float64 at x = 1e6
	segs := square(1, 1e6, 0, 10)
	spans := collectSpans(segs, HatchParams{BaseWidth: 1e-20})
	if len(spans) > 4 {
		t.Errorf("got %d spans", len(spans))
	}
}

func TestHatchEarlyStop(t *testing.T) {
	segs := square(1, 0, 0, 100)
	n := 0
	for range Hatch(segs, HatchParams{}) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d spans", n)
	}
}

func TestHatchSegments(t *testing.T) {
	segs := square(1, 0, 0, 10)
	res := HatchSegments(segs, HatchParams{BaseWidth: 2}, "fill")
	if len(res) != 5 {
		t.Fatalf("got %d segments, want 5", len(res))
	}
	for _, s := range res {
		if s.ID != NoID || s.Payload != "fill" {
			t.Errorf("unexpected segment %+v", s)
		}
	}
}

func TestClipSpans(t *testing.T) {
	segs := square(1, 0, 0, 10)
	r := rect.Rect{LLx: 3, LLy: 2, URx: 7, URy: 12}
	var spans []span
	for a, b := range ClipSpans(Hatch(segs, HatchParams{BaseWidth: 2}), r) {
		spans = append(spans, span{a, b})
	}

	// lines at x = 4 and 6 survive, shortened to y in [2, 10]
	if len(spans) != 2 {
		t.Fatalf("got %d spans: %v", len(spans), spans)
	}
	for i, s := range spans {
		x := 4 + 2*float64(i)
		if !near(s.A, pt(x, 2), eps) || !near(s.B, pt(x, 10), eps) {
			t.Errorf("span %d: got %v", i, s)
		}
	}
}

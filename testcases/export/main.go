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

// Command export writes all test cases, together with the results of the
// geometry operations, to testdata/testcases.json.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/linegeom"
	"seehuhn.de/go/linegeom/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Boundary []jsonPathCmd `json:"boundary"`
	Track    []jsonPathCmd `json:"track,omitempty"`
	Op       string        `json:"op"`

	Angle           float64 `json:"angle,omitempty"`
	Spacing         float64 `json:"spacing,omitempty"`
	Offset          float64 `json:"offset,omitempty"`
	BaseWidth       float64 `json:"base_width,omitempty"`
	Remove          bool    `json:"remove,omitempty"`
	AngleThreshold  float64 `json:"angle_threshold,omitempty"`
	LengthThreshold float64 `json:"length_threshold,omitempty"`
	Smooth          int     `json:"smooth,omitempty"`

	Result jsonResult `json:"result"`
}

type jsonPathCmd struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonSegment struct {
	ID int64      `json:"id,omitempty"`
	P1 [2]float64 `json:"p1"`
	P2 [2]float64 `json:"p2"`
}

type jsonResult struct {
	Added   []jsonSegment `json:"added,omitempty"`
	After   []jsonSegment `json:"after,omitempty"`
	Removed []int64       `json:"removed,omitempty"`
	Points  [][2]float64  `json:"points,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Boundary: pathToJSON(tc.Boundary),
		Track:    pathToJSON(tc.Track),
	}

	switch op := tc.Op.(type) {
	case testcases.Hatch:
		jtc.Op = "hatch"
		jtc.Angle = op.Angle
		jtc.Spacing = op.Spacing
		jtc.Offset = op.Offset
		jtc.BaseWidth = op.BaseWidth
	case testcases.Slice:
		jtc.Op = "slice"
		jtc.Angle = op.Angle
		jtc.Remove = op.Remove
	case testcases.Remove:
		jtc.Op = "remove"
		jtc.Angle = op.Angle
	case testcases.Reduce:
		jtc.Op = "reduce"
		jtc.AngleThreshold = op.AngleThreshold
		jtc.LengthThreshold = op.LengthThreshold
		jtc.Smooth = op.Smooth
	}

	res, err := linegeom.RunExample(tc)
	if err != nil {
		return jtc, fmt.Errorf("%s: %w", jtc.Name, err)
	}
	jtc.Result = jsonResult{
		Added:  segmentsToJSON(res.Added),
		Points: pointsToJSON(res.Points),
	}
	if _, isHatch := tc.Op.(testcases.Hatch); !isHatch {
		jtc.Result.After = segmentsToJSON(res.After)
	}
	for _, id := range res.Removed {
		jtc.Result.Removed = append(jtc.Result.Removed, int64(id))
	}
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonPathCmd {
	if p == nil {
		return nil
	}
	var cmds []jsonPathCmd
	for cmd, pts := range p {
		seg := jsonPathCmd{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		cmds = append(cmds, seg)
	}
	return cmds
}

func segmentsToJSON(segs []linegeom.Segment) []jsonSegment {
	res := make([]jsonSegment, 0, len(segs))
	for _, s := range segs {
		res = append(res, jsonSegment{
			ID: int64(s.ID),
			P1: [2]float64{s.P1.X, s.P1.Y},
			P2: [2]float64{s.P2.X, s.P2.Y},
		})
	}
	return res
}

func pointsToJSON(pts []vec.Vec2) [][2]float64 {
	res := make([][2]float64, 0, len(pts))
	for _, p := range pts {
		res = append(res, [2]float64{p.X, p.Y})
	}
	return res
}

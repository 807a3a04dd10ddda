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

// Command genpdf draws every test case, together with the result of its
// geometry operation, into a PDF file and renders it to PNG using
// Ghostscript.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/linegeom"
	"seehuhn.de/go/linegeom/testcases"
)

const (
	refDir = "testdata/preview"
	margin = 8.0
	width  = 256.0 // page width in points
)

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	res, err := linegeom.RunExample(tc)
	if err != nil {
		return err
	}

	var bbox rect.Rect
	if len(res.Points) > 0 {
		bbox = linegeom.Bounds(linegeom.Polyline(res.Points, nil))
	} else {
		all := slices.Concat(res.Boundary, res.Before, res.After)
		bbox = linegeom.Bounds(all)
	}
	w := max(bbox.URx-bbox.LLx, 1)
	h := max(bbox.URy-bbox.LLy, 1)
	scale := (width - 2*margin) / max(w, h)

	paper := &pdf.Rectangle{
		URx: w*scale + 2*margin,
		URy: h*scale + 2*margin,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// The drawings use a y axis pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, paper.URy})
	page.Transform(matrix.Matrix{scale, 0, 0, scale, margin - bbox.LLx*scale, margin - bbox.LLy*scale})

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	lw := 1 / scale

	if _, isReduce := tc.Op.(testcases.Reduce); isReduce {
		// input stroke in grey, reduced polyline in white
		page.SetLineWidth(3 * lw)
		page.SetStrokeColor(color.DeviceGray(0.4))
		drawPath(page, tc.Boundary)
		page.Stroke()

		page.SetLineWidth(lw)
		page.SetStrokeColor(color.DeviceGray(1))
		drawSegments(page, linegeom.Polyline(res.Points, nil))
		page.Stroke()
		return page.Close()
	}

	// unchanged drawing in dark grey, boundary in mid grey, output in white
	page.SetLineWidth(lw)
	page.SetStrokeColor(color.DeviceGray(0.3))
	drawSegments(page, res.Before)
	page.Stroke()

	page.SetLineWidth(2 * lw)
	page.SetStrokeColor(color.DeviceGray(0.6))
	drawSegments(page, res.Boundary)
	page.Stroke()

	page.SetLineWidth(lw)
	page.SetStrokeColor(color.DeviceGray(1))
	if _, isHatch := tc.Op.(testcases.Hatch); isHatch {
		drawSegments(page, res.Added)
	} else {
		drawSegments(page, res.After)
	}
	page.Stroke()

	return page.Close()
}

type pathDrawer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

func drawSegments(page pathDrawer, segs []linegeom.Segment) {
	for _, s := range segs {
		page.MoveTo(s.P1.X, s.P1.Y)
		page.LineTo(s.P2.X, s.P2.Y)
	}
}

// drawPath draws p, converting quadratic curves to cubic ones (PDF has
// no quadratic curves).
func drawPath(page pathDrawer, p path.Path) {
	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r144: 2 pixels per point
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

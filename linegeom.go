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

// Package linegeom implements the geometry behind a set of line-drawing
// editing tools: hatch fills bounded by arbitrary segments, slicing of
// segments at their crossings with a selection, classification of
// segments inside a selection, and simplification of dense polylines.
//
// All functions are pure. The caller supplies segments, usually from a
// spatial index over a drawing, and applies the returned edits.
package linegeom

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Default values for tool parameters.
const (
	// DefaultLineWidth is the base width used to derive hatch spacing
	// when HatchParams.BaseWidth is zero.
	DefaultLineWidth = 2.0

	// PencilAngleThreshold is the bend, in degrees, below which the
	// smoothing pencil and the curve tools drop short points.
	PencilAngleThreshold = 5.0

	// QuadraticSamples is the number of intervals used to sample a
	// quadratic curve before reduction.
	QuadraticSamples = 128
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum length for a segment taken from
	// a path. Shorter segments are skipped.
	zeroLengthThreshold = 1e-10
)

// nopHandler is a slog.Handler that discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by linegeom and its sub-packages.
// By default nothing is logged. Passing nil restores the default.
//
// The package only logs at [slog.LevelDebug]: sizes of event lists,
// effective spacings and counts of emitted edits.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// recordingCanvas implements Canvas by logging every call.
type recordingCanvas struct {
	ops   []string
	depth int
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{}
}

func (r *recordingCanvas) log(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recordingCanvas) Push() {
	r.depth++
	r.log("push")
}

func (r *recordingCanvas) Pop() {
	r.depth--
	r.log("pop")
}

func (r *recordingCanvas) Translate(x, y float64)     { r.log("translate %.3f %.3f", x, y) }
func (r *recordingCanvas) Clear()                     { r.log("clear") }
func (r *recordingCanvas) SetColor(col color.Color)   { r.log("color %v", col) }
func (r *recordingCanvas) SetLineWidth(width float64) { r.log("linewidth %.3f", width) }
func (r *recordingCanvas) SetFont(face text.Face)     { r.log("font") }
func (r *recordingCanvas) MoveTo(x, y float64)        { r.log("move %.3f %.3f", x, y) }
func (r *recordingCanvas) LineTo(x, y float64)        { r.log("line %.3f %.3f", x, y) }
func (r *recordingCanvas) QuadraticTo(cx, cy, x, y float64) {
	r.log("quad %.3f %.3f %.3f %.3f", cx, cy, x, y)
}
func (r *recordingCanvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.log("cubic %.3f %.3f %.3f %.3f %.3f %.3f", c1x, c1y, c2x, c2y, x, y)
}
func (r *recordingCanvas) ClosePath()                       { r.log("close") }
func (r *recordingCanvas) DrawRectangle(x, y, w, h float64) { r.log("rect %.3f %.3f %.3f %.3f", x, y, w, h) }
func (r *recordingCanvas) DrawCircle(x, y, rad float64)     { r.log("circle %.3f %.3f %.3f", x, y, rad) }
func (r *recordingCanvas) Fill() error                      { r.log("fill"); return nil }
func (r *recordingCanvas) Stroke() error                    { r.log("stroke"); return nil }

func (r *recordingCanvas) MeasureString(s string) (w, h float64) {
	return float64(len(s)) * 8, 16
}

func (r *recordingCanvas) DrawStringAnchored(s string, x, y, ax, ay float64) {
	r.log("text %q %.3f %.3f %.1f %.1f", s, x, y, ax, ay)
}

// count returns how many logged operations start with prefix.
func (r *recordingCanvas) count(prefix string) int {
	n := 0
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

// index returns the position of the first operation starting with prefix,
// or -1.
func (r *recordingCanvas) index(prefix string) int {
	for i, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			return i
		}
	}
	return -1
}

// lastIndex returns the position of the last operation starting with
// prefix, or -1.
func (r *recordingCanvas) lastIndex(prefix string) int {
	for i := len(r.ops) - 1; i >= 0; i-- {
		if strings.HasPrefix(r.ops[i], prefix) {
			return i
		}
	}
	return -1
}

func quarterEntries() []Entry {
	return []Entry{
		{Value: 1, Color: gg.Hex("#266489"), Label: "a"},
		{Value: 1, Color: gg.Hex("#68B9C0"), Label: "b"},
		{Value: 1, Color: gg.Hex("#90D585"), Label: "c"},
		{Value: 1, Color: gg.Hex("#F3C151"), Label: "d"},
	}
}

func valuesEntries(values ...float64) []Entry {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Value: v, Color: gg.HSL(float64(i)*60, 0.6, 0.5)}
	}
	return entries
}

// ringPoint returns the canvas point at turn fraction f and radius r
// around center.
func ringPoint(center gg.Point, f, r float64) gg.Point {
	return center.Add(PolarPoint(f, r))
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

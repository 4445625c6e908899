// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the drawing surface a chart renders onto.
// *gg.Context implements Canvas; gg fills are always anti-aliased.
type Canvas interface {
	// Push and Pop save and restore the transform and clip state.
	Push()
	Pop()
	Translate(x, y float64)

	// Clear fills the whole surface with transparent pixels.
	Clear()

	SetColor(col color.Color)
	SetLineWidth(width float64)
	SetFont(face text.Face)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)

	Fill() error
	Stroke() error

	MeasureString(s string) (w, h float64)
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

var _ Canvas = (*gg.Context)(nil)

// appendPath replays the elements of p onto the current path of c.
func appendPath(c Canvas, p *gg.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			c.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			c.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			c.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			c.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			c.ClosePath()
		}
	}
}

// FillPath fills p with col on c.
func FillPath(c Canvas, p *gg.Path, col gg.RGBA) error {
	c.SetColor(col.Color())
	appendPath(c, p)
	return c.Fill()
}

// StrokePath strokes the outline of p with col on c.
func StrokePath(c Canvas, p *gg.Path, col gg.RGBA, width float64) error {
	c.SetColor(col.Color())
	c.SetLineWidth(width)
	appendPath(c, p)
	return c.Stroke()
}

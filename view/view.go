// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

// Common errors returned by View operations.
var (
	// ErrViewClosed is returned when operations are attempted on a closed view.
	ErrViewClosed = errors.New("view: view is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("view: invalid dimensions")

	// ErrNotGPU is returned by RenderTo on a software view.
	ErrNotGPU = errors.New("view: not a GPU view")
)

// surface is the drawing target behind a View.
type surface interface {
	Context() *gg.Context
	Resize(width, height int) error
	MarkDirty()
	Close() error
}

// softwareSurface draws into an in-memory gg.Context.
type softwareSurface struct {
	dc *gg.Context
}

func (s *softwareSurface) Context() *gg.Context { return s.dc }
func (s *softwareSurface) MarkDirty()           {}

func (s *softwareSurface) Resize(width, height int) error {
	return s.dc.Resize(width, height)
}

func (s *softwareSurface) Close() error {
	return s.dc.Close()
}

// View shows one chart and forwards paint and touch events to it.
type View struct {
	surface surface
	width   int
	height  int
	density float64

	chart       *ggchart.Donut
	unsubscribe func()

	needsDisplay bool
	resized      bool // since the last Paint
	onInvalidate func()
	closed       bool
}

// New creates a software view of the given size in pixels.
func New(width, height int) (*View, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return newView(&softwareSurface{dc: gg.NewContext(width, height)}, width, height), nil
}

func newView(s surface, width, height int) *View {
	return &View{
		surface:      s,
		width:        width,
		height:       height,
		density:      1,
		needsDisplay: true,
	}
}

// Chart returns the chart shown by the view, or nil.
func (v *View) Chart() *ggchart.Donut {
	return v.chart
}

// SetChart shows c, which may be nil. The view stops listening to the
// previous chart and starts listening to c.
func (v *View) SetChart(c *ggchart.Donut) {
	if c == v.chart {
		return
	}
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}

	v.chart = c
	v.invalidate()

	if c != nil {
		v.unsubscribe = c.OnInvalidate(v.invalidate)
	}
}

// OnInvalidate sets the host callback run whenever the view needs to be
// repainted. Pass nil to remove it.
func (v *View) OnInvalidate(fn func()) {
	v.onInvalidate = fn
}

func (v *View) invalidate() {
	v.needsDisplay = true
	if v.onInvalidate != nil {
		v.onInvalidate()
	}
}

// NeedsDisplay reports whether the view changed since the last Paint.
func (v *View) NeedsDisplay() bool {
	return v.needsDisplay
}

// SetDensity sets the number of pixels per touch unit. Touch coordinates
// are multiplied by it before hit-testing. Non-positive values are ignored.
func (v *View) SetDensity(d float64) {
	if d > 0 {
		v.density = d
	}
}

// Size returns the view size in pixels.
func (v *View) Size() (width, height int) {
	return v.width, v.height
}

// Paint clears the surface to transparent and draws the chart, if any,
// from scratch.
func (v *View) Paint() error {
	if v.closed {
		return ErrViewClosed
	}

	dc := v.surface.Context()
	dc.Clear()
	if v.chart != nil {
		v.chart.Draw(dc, v.width, v.height)
	}
	v.surface.MarkDirty()
	v.needsDisplay = false
	v.resized = false

	ggchart.Logger().Debug("view: paint", "width", v.width, "height", v.height, "chart", v.chart != nil)
	return nil
}

// Touch forwards a touch at (x, y), in touch units, to the chart and
// returns the entry index that was hit, or ggchart.NoSector. A view resized
// since its last Paint is painted first so the chart hit-tests sectors of
// the current size.
func (v *View) Touch(x, y float64) int {
	if v.closed || v.chart == nil {
		return ggchart.NoSector
	}
	if v.resized {
		if err := v.Paint(); err != nil {
			ggchart.Logger().Warn("view: paint before touch failed", "err", err)
		}
	}
	return v.chart.Touch(gg.Pt(x*v.density, y*v.density))
}

// Resize changes the view size and schedules a repaint.
func (v *View) Resize(width, height int) error {
	if v.closed {
		return ErrViewClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width == v.width && height == v.height {
		return nil
	}

	if err := v.surface.Resize(width, height); err != nil {
		return fmt.Errorf("view: resize failed: %w", err)
	}
	v.width = width
	v.height = height
	v.resized = true
	v.invalidate()
	return nil
}

// Image returns the pixels of the last Paint, or nil once closed.
func (v *View) Image() image.Image {
	if v.closed {
		return nil
	}
	return v.surface.Context().Image()
}

// Close releases the surface and stops listening to the chart.
// Close is idempotent.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true

	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
	v.chart = nil

	if err := v.surface.Close(); err != nil {
		return fmt.Errorf("view: close surface: %w", err)
	}
	return nil
}

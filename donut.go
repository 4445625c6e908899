// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Donut is a donut chart.
//
// A Donut keeps its entries, the animation progress, the sectors of the
// last Draw call and the touched sector. Every state change notifies the
// functions registered with OnInvalidate so the host can schedule a repaint.
//
// Donut is NOT safe for concurrent use.
type Donut struct {
	entries  []Entry
	progress float64

	holeRatio     float64
	margin        float64
	labelTextSize float64
	face          text.Face
	labelColor    gg.RGBA
	markerColor   gg.RGBA
	format        *ValueFormatter

	// Rebuilt by every Draw.
	sectors Sectors

	active int
	marker gg.Point

	observers []observer
	nextID    uint64
}

type observer struct {
	id uint64
	fn func()
}

// NewDonut creates a chart over a copy of entries, fully revealed
// (animation progress 1).
func NewDonut(entries []Entry, opts ...Option) *Donut {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.face == nil {
		face, err := DefaultFace(o.labelTextSize)
		if err != nil {
			Logger().Warn("ggchart: captions disabled", "err", err)
		} else {
			o.face = face
		}
	}

	return &Donut{
		entries:       slices.Clone(entries),
		progress:      1,
		holeRatio:     o.holeRatio,
		margin:        o.margin,
		labelTextSize: o.labelTextSize,
		face:          o.face,
		labelColor:    o.labelColor,
		markerColor:   o.markerColor,
		format:        NewValueFormatter(o.locale),
		active:        NoSector,
	}
}

// Entries returns a copy of the chart entries.
func (d *Donut) Entries() []Entry {
	return slices.Clone(d.entries)
}

// SetEntries replaces the chart entries and clears the touched sector.
func (d *Donut) SetEntries(entries []Entry) {
	d.entries = slices.Clone(entries)
	d.active = NoSector
	d.marker = gg.Point{}
	d.invalidate()
}

// AnimationProgress returns the current animation progress in [0, 1].
func (d *Donut) AnimationProgress() float64 {
	return d.progress
}

// SetAnimationProgress sets the fraction of every sector that is drawn.
// The value is clamped to [0, 1].
func (d *Donut) SetAnimationProgress(p float64) {
	p = clamp01(p)
	if p == d.progress {
		return
	}
	d.progress = p
	d.invalidate()
}

// HoleRatio returns the hole radius as a fraction of the outer radius.
func (d *Donut) HoleRatio() float64 {
	return d.holeRatio
}

// SetHoleRatio changes the hole size. Values outside [0, 1) are ignored.
func (d *Donut) SetHoleRatio(r float64) {
	if !validHoleRatio(r) {
		Logger().Warn("ggchart: hole ratio out of range, keeping previous", "ratio", r, "previous", d.holeRatio)
		return
	}
	d.holeRatio = r
	d.invalidate()
}

// OnInvalidate registers fn to be called whenever the chart needs to be
// repainted. The returned function unregisters fn; calling it more than
// once has no effect. A host showing a different chart must unregister
// from the previous one.
func (d *Donut) OnInvalidate(fn func()) (unsubscribe func()) {
	d.nextID++
	id := d.nextID
	d.observers = append(d.observers, observer{id: id, fn: fn})

	return func() {
		d.observers = slices.DeleteFunc(d.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

func (d *Donut) invalidate() {
	for _, o := range slices.Clone(d.observers) {
		o.fn()
	}
}

// RingFor returns the ring geometry used on a width x height canvas: centered,
// with an outer radius of half the smaller dimension minus the margin on
// each side.
func (d *Donut) RingFor(width, height int) Ring {
	side := math.Min(float64(width), float64(height))
	return Ring{
		Center:    gg.Pt(float64(width)/2, float64(height)/2),
		Radius:    (side - 2*d.margin) / 2,
		HoleRatio: d.holeRatio,
	}
}

// Draw renders the chart: captions first, then the ring, then the marker
// of the touched sector. Without entries the canvas is cleared instead.
//
// The sectors built here replace those of the previous call and are used
// by Touch until the next Draw.
func (d *Donut) Draw(c Canvas, width, height int) {
	if len(d.entries) == 0 {
		d.sectors = nil
		c.Clear()
		return
	}

	d.drawCaptions(c, width, height)

	c.Push()
	ring := d.RingFor(width, height)
	d.sectors = BuildSectors(d.entries, d.progress, ring)
	for _, s := range d.sectors {
		if err := FillPath(c, s.Path, d.entries[s.Index].Color); err != nil {
			Logger().Warn("ggchart: sector fill failed", "index", s.Index, "err", err)
		}
	}
	c.Pop()

	Logger().Debug("ggchart: sectors built",
		"entries", len(d.entries),
		"sectors", len(d.sectors),
		"radius", ring.Radius,
		"progress", d.progress,
	)

	d.drawMarker(c)
}

// Sectors returns the sectors built by the last Draw call.
func (d *Donut) Sectors() Sectors {
	return d.sectors
}

// Touch hit-tests pt, in canvas coordinates, against the sectors of the
// last Draw call. A hit makes that sector active, with its marker at the
// center of the sector bounds; a miss clears the active sector. Either way
// the chart is invalidated.
//
// The sectors keep the geometry of the canvas size passed to that Draw.
// After the canvas is resized, Draw again before calling Touch.
//
// Touch returns the entry index that was hit, or NoSector.
func (d *Donut) Touch(pt gg.Point) int {
	d.active = NoSector
	d.marker = gg.Point{}

	if i := Locate(pt, d.sectors); i != NoSector {
		b := d.sectors[i].Path.BoundingBox()
		d.active = i
		d.marker = b.Min.Lerp(b.Max, 0.5)
	}

	Logger().Debug("ggchart: touch", "x", pt.X, "y", pt.Y, "index", d.active)
	d.invalidate()
	return d.active
}

// Active returns the touched sector and its marker point.
func (d *Donut) Active() (index int, marker gg.Point, ok bool) {
	if d.active == NoSector {
		return NoSector, gg.Point{}, false
	}
	return d.active, d.marker, true
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"github.com/gogpu/gg"
)

// Marker overlay geometry.
const (
	markerLineWidth  = 3.0
	markerDotRadius  = 4.0
	tooltipPadding   = 6.0
	tooltipOffset    = 12.0
	tooltipFillAlpha = 0.85
)

// drawCaptions draws both caption columns.
func (d *Donut) drawCaptions(c Canvas, width, height int) {
	if d.face == nil {
		return
	}
	c.SetFont(d.face)

	right, left := SplitCaptions(d.entries)
	d.drawCaptionColumn(c, right, SideRight, width, height)
	d.drawCaptionColumn(c, left, SideLeft, width, height)
}

func (d *Donut) drawCaptionColumn(c Canvas, indices []int, side Side, width, height int) {
	slots := LayoutCaptions(len(indices), side, width, height, d.margin, d.labelTextSize)
	for i, slot := range slots {
		e := d.entries[indices[i]]

		m := slot.Marker
		c.SetColor(e.Color.Color())
		c.DrawRectangle(m.Min.X, m.Min.Y, m.Width(), m.Height())
		_ = c.Fill()

		value := d.format.Format(e)
		valueColor := e.Color
		valueColor.A *= d.progress

		if e.Label == "" {
			c.SetColor(valueColor.Color())
			c.DrawStringAnchored(value, slot.Text.X, slot.Text.Y, slot.Align, 0.5)
			continue
		}

		half := d.labelTextSize / 2
		c.SetColor(d.labelColor.Color())
		c.DrawStringAnchored(e.Label, slot.Text.X, slot.Text.Y-half, slot.Align, 0.5)
		c.SetColor(valueColor.Color())
		c.DrawStringAnchored(value, slot.Text.X, slot.Text.Y+half, slot.Align, 0.5)
	}
}

// drawMarker outlines the touched sector and shows its tooltip.
func (d *Donut) drawMarker(c Canvas) {
	if d.active == NoSector || d.active >= len(d.sectors) {
		return
	}
	s := d.sectors[d.active]
	e := d.entries[s.Index]

	if err := StrokePath(c, s.Path, d.markerColor, markerLineWidth); err != nil {
		Logger().Warn("ggchart: marker stroke failed", "index", s.Index, "err", err)
	}

	c.SetColor(d.markerColor.Color())
	c.DrawCircle(d.marker.X, d.marker.Y, markerDotRadius)
	_ = c.Fill()

	if d.face == nil {
		return
	}
	c.SetFont(d.face)

	tip := d.format.Tooltip(e)
	w, h := c.MeasureString(tip)
	x := d.marker.X - w/2 - tooltipPadding
	y := d.marker.Y - tooltipOffset - h - 2*tooltipPadding

	bg := gg.Black
	bg.A = tooltipFillAlpha
	c.SetColor(bg.Color())
	c.DrawRectangle(x, y, w+2*tooltipPadding, h+2*tooltipPadding)
	_ = c.Fill()

	c.SetColor(gg.White.Color())
	c.DrawStringAnchored(tip, d.marker.X, y+tooltipPadding+h/2, 0.5, 0.5)
}

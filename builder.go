// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
)

// Ring describes where and how large the donut is drawn.
type Ring struct {
	Center    gg.Point
	Radius    float64 // outer radius
	HoleRatio float64 // inner radius as a fraction of Radius
}

// InnerRadius returns the radius of the hole.
func (r Ring) InnerRadius() float64 {
	return r.Radius * r.HoleRatio
}

// Sector is the drawn region of one entry.
type Sector struct {
	Index int     // position of the entry
	Start float64 // turn fraction
	End   float64 // turn fraction
	Ring  Ring    // ring the sector was built on
	Path  *gg.Path
}

// Span returns the turn fraction covered by the sector.
func (s Sector) Span() float64 {
	return s.End - s.Start
}

// Sectors is the ordered result of one BuildSectors call.
type Sectors []Sector

// Span returns the total turn fraction covered by all sectors.
func (s Sectors) Span() float64 {
	var sum float64
	for _, sec := range s {
		sum += sec.Span()
	}
	return sum
}

// Locate is shorthand for Locate(pt, s).
func (s Sectors) Locate(pt gg.Point) int {
	return Locate(pt, s)
}

// BuildSectors computes one sector per entry, in entry order, in canvas
// coordinates. Each entry spans its share of the total value multiplied by
// progress, which is clamped to [0, 1].
//
// Nil is returned when there are no entries, when the total value is zero,
// or when the ring radius is not positive.
func BuildSectors(entries []Entry, progress float64, ring Ring) Sectors {
	total := Total(entries)
	if len(entries) == 0 || total == 0 || ring.Radius <= 0 {
		return nil
	}
	progress = clamp01(progress)

	inner := ring.InnerRadius()
	toCanvas := gg.Translate(ring.Center.X, ring.Center.Y)

	sectors := make(Sectors, 0, len(entries))
	start := 0.0
	for i, e := range entries {
		end := start + e.Weight()/total*progress
		if progress == 1 && i == len(entries)-1 {
			end = 1
		}

		sectors = append(sectors, Sector{
			Index: i,
			Start: start,
			End:   end,
			Ring:  ring,
			Path:  SectorPath(start, end, ring.Radius, inner).Transform(toCanvas),
		})
		start = end
	}
	return sectors
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

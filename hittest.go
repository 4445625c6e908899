// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "github.com/gogpu/gg"

// NoSector is returned by Locate when no sector contains the point.
const NoSector = -1

// hitEpsilon widens every sector by this many pixels radially and this
// fraction of a turn angularly, so points on an edge count as inside.
const hitEpsilon = 1e-6

// Locate returns the entry index of the first sector containing pt, in draw
// order, or NoSector.
//
// Sectors are closed: a point on an arc or on a radial edge is inside. A
// point on the edge shared by two sectors belongs to the earlier one.
// Sectors with an empty span contain nothing.
func Locate(pt gg.Point, sectors Sectors) int {
	for _, s := range sectors {
		if s.Contains(pt) {
			return s.Index
		}
	}
	return NoSector
}

// Contains reports whether pt, in canvas coordinates, lies in the sector
// or on its boundary.
func (s Sector) Contains(pt gg.Point) bool {
	if s.End <= s.Start || s.Ring.Radius <= 0 {
		return false
	}

	f, r := PolarOf(pt.Sub(s.Ring.Center))
	if r < s.Ring.InnerRadius()-hitEpsilon || r > s.Ring.Radius+hitEpsilon {
		return false
	}

	// The fraction wraps at 12 o'clock; also test the adjacent turns so
	// a point just left of the top still matches a sector ending at 1.
	for _, ff := range [...]float64{f, f + 1, f - 1} {
		if ff >= s.Start-hitEpsilon && ff <= s.End+hitEpsilon {
			return true
		}
	}
	return false
}

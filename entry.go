// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
)

// Entry is one weighted slice of a chart.
// Only the magnitude of Value contributes to the sector size.
type Entry struct {
	Value float64
	Color gg.RGBA

	// Label is the caption title. Optional.
	Label string

	// ValueLabel overrides the formatted value in captions. Optional.
	ValueLabel string
}

// Weight returns the absolute value of the entry.
func (e Entry) Weight() float64 {
	return math.Abs(e.Value)
}

// Total returns the sum of absolute entry values.
func Total(entries []Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Weight()
	}
	return sum
}

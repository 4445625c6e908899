// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
)

// Side selects the caption column.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

// String returns "right" or "left".
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// captionGap is the space between a caption marker and its text,
// relative to the label text size.
const captionGap = 0.6

// SplitCaptions divides entry indices between the two caption columns.
//
// The right column takes entries from the start until their accumulated
// absolute value reaches half of the total; the first entry always goes
// right. The remaining entries go left in reverse order, so both columns
// read top to bottom the way the ring sweeps past them. When the total is
// zero every entry goes right.
//
// A dominant first entry leaves the left column empty; the split is not
// rebalanced.
func SplitCaptions(entries []Entry) (right, left []int) {
	if len(entries) == 0 {
		return nil, nil
	}

	total := Total(entries)
	if total == 0 {
		right = make([]int, len(entries))
		for i := range entries {
			right[i] = i
		}
		return right, nil
	}

	half := total / 2
	i := 0
	var acc float64
	for i < len(entries) && (i == 0 || acc < half) {
		right = append(right, i)
		acc += entries[i].Weight()
		i++
	}
	for j := len(entries) - 1; j >= i; j-- {
		left = append(left, j)
	}
	return right, left
}

// CaptionSlot is the pixel placement of one caption.
type CaptionSlot struct {
	// Marker is the colored square identifying the entry.
	Marker gg.Rect

	// Text is the anchor point of the caption text, vertically centered on
	// the marker.
	Text gg.Point

	// Align is the horizontal text anchor: 0 for left aligned text,
	// 1 for right aligned text.
	Align float64
}

// LayoutCaptions places n captions in one column along the edge of a
// width x height canvas. Captions are spread evenly over the height left
// after a top and bottom inset of twice the margin; a single caption is
// centered vertically. Text sits beside the marker on the ring side.
func LayoutCaptions(n int, side Side, width, height int, margin, textSize float64) []CaptionSlot {
	if n <= 0 {
		return nil
	}

	inset := 2 * margin
	available := float64(height) - 2*inset
	step := (available - textSize) / math.Max(float64(n-1), 1)

	x := float64(width) - margin - textSize
	textX, align := x-textSize*captionGap, 1.0
	if side == SideLeft {
		x = margin
		textX, align = x+textSize*(1+captionGap), 0.0
	}

	slots := make([]CaptionSlot, n)
	for i := range slots {
		y := inset + float64(i)*step
		if n == 1 {
			y += (available - textSize) / 2
		}
		slots[i] = CaptionSlot{
			Marker: gg.NewRect(gg.Pt(x, y), gg.Pt(x+textSize, y+textSize)),
			Text:   gg.Pt(textX, y+textSize/2),
			Align:  align,
		}
	}
	return slots
}

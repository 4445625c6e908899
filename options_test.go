// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"testing"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// TestNewDonutDefaults tests that NewDonut applies the default options.
func TestNewDonutDefaults(t *testing.T) {
	d := NewDonut(nil)

	if d.holeRatio != DefaultHoleRatio {
		t.Errorf("holeRatio = %v, want %v", d.holeRatio, DefaultHoleRatio)
	}
	if d.margin != DefaultMargin {
		t.Errorf("margin = %v, want %v", d.margin, DefaultMargin)
	}
	if d.labelTextSize != DefaultLabelTextSize {
		t.Errorf("labelTextSize = %v, want %v", d.labelTextSize, DefaultLabelTextSize)
	}
	if d.face == nil {
		t.Error("face is nil, expected built-in Go Regular")
	}
	if d.markerColor != gg.White {
		t.Errorf("markerColor = %v, want white", d.markerColor)
	}
	if got := d.format.Format(Entry{Value: 1234.5}); got != "1,234.5" {
		t.Errorf("default locale formats %q, want %q", got, "1,234.5")
	}
}

// TestNewDonutWithOptions tests that every option reaches the chart.
func TestNewDonutWithOptions(t *testing.T) {
	face, err := DefaultFace(10)
	if err != nil {
		t.Fatal(err)
	}
	red := gg.RGB(1, 0, 0)

	d := NewDonut(nil,
		WithHoleRatio(0.25),
		WithMargin(4),
		WithLabelTextSize(12),
		WithFont(face),
		WithLocale(language.German),
		WithLabelColor(red),
		WithMarkerColor(gg.Black),
	)

	if d.holeRatio != 0.25 || d.margin != 4 || d.labelTextSize != 12 {
		t.Errorf("geometry options = %v, %v, %v", d.holeRatio, d.margin, d.labelTextSize)
	}
	if d.face != face {
		t.Error("face is not the injected face")
	}
	if d.labelColor != red || d.markerColor != gg.Black {
		t.Errorf("colors = %v, %v", d.labelColor, d.markerColor)
	}
	if got := d.format.Format(Entry{Value: 1234.5}); got != "1.234,5" {
		t.Errorf("German locale formats %q, want %q", got, "1.234,5")
	}
}

// TestOptionsIgnoreInvalid tests that out-of-range values keep the defaults.
func TestOptionsIgnoreInvalid(t *testing.T) {
	d := NewDonut(nil,
		WithMargin(-1),
		WithLabelTextSize(0),
		WithHoleRatio(2),
	)
	if d.margin != DefaultMargin {
		t.Errorf("margin = %v, want default", d.margin)
	}
	if d.labelTextSize != DefaultLabelTextSize {
		t.Errorf("labelTextSize = %v, want default", d.labelTextSize)
	}
	if d.holeRatio != DefaultHoleRatio {
		t.Errorf("holeRatio = %v, want default", d.holeRatio)
	}
}

// TestOptionsOrder tests that later options win.
func TestOptionsOrder(t *testing.T) {
	d := NewDonut(nil, WithMargin(5), WithMargin(7))
	if d.margin != 7 {
		t.Errorf("margin = %v, want 7", d.margin)
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"
)

// Default chart settings.
const (
	DefaultHoleRatio     = 0.5
	DefaultMargin        = 20.0
	DefaultLabelTextSize = 16.0
)

// Option configures a Donut during creation.
//
// Example:
//
//	chart := ggchart.NewDonut(entries,
//		ggchart.WithHoleRatio(0.6),
//		ggchart.WithLocale(language.German),
//	)
type Option func(*options)

// options holds optional configuration for Donut creation.
type options struct {
	holeRatio     float64
	margin        float64
	labelTextSize float64
	face          text.Face
	locale        language.Tag
	labelColor    gg.RGBA
	markerColor   gg.RGBA
}

// defaultOptions returns the default chart options.
func defaultOptions() options {
	return options{
		holeRatio:     DefaultHoleRatio,
		margin:        DefaultMargin,
		labelTextSize: DefaultLabelTextSize,
		face:          nil, // goregular at labelTextSize, loaded by NewDonut
		locale:        language.English,
		labelColor:    gg.Hex("#333333"),
		markerColor:   gg.White,
	}
}

// WithHoleRatio sets the hole radius as a fraction of the outer radius.
// Values outside [0, 1) are ignored; 0 draws a pie.
func WithHoleRatio(r float64) Option {
	return func(o *options) {
		if validHoleRatio(r) {
			o.holeRatio = r
		} else {
			Logger().Warn("ggchart: hole ratio out of range, keeping previous", "ratio", r, "previous", o.holeRatio)
		}
	}
}

// WithMargin sets the space kept free around the ring and captions.
// Negative values are ignored.
func WithMargin(m float64) Option {
	return func(o *options) {
		if m >= 0 {
			o.margin = m
		}
	}
}

// WithLabelTextSize sets the caption text size in pixels.
// Non-positive values are ignored.
func WithLabelTextSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.labelTextSize = size
		}
	}
}

// WithFont sets the caption font face, replacing the built-in Go Regular.
func WithFont(face text.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithLocale sets the locale used to format entry values.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithLabelColor sets the caption label color.
func WithLabelColor(c gg.RGBA) Option {
	return func(o *options) {
		o.labelColor = c
	}
}

// WithMarkerColor sets the outline color of the touched sector.
func WithMarkerColor(c gg.RGBA) Option {
	return func(o *options) {
		o.markerColor = c
	}
}

func validHoleRatio(r float64) bool {
	return !math.IsNaN(r) && r >= 0 && r < 1
}

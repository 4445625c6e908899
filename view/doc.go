// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package view hosts a ggchart.Donut on a drawing surface.
//
// A View forwards paint and touch events to its chart and tracks whether a
// repaint is needed. The data flow is:
//
//	host paint event -> View.Paint -> Donut.Draw -> gg.Context (-> GPU texture)
//	host touch event -> View.Touch -> Donut.Touch -> invalidate -> NeedsDisplay
//
// # Surfaces
//
// New creates a software view backed by a plain gg.Context; the pixels are
// available through Image. NewGPU creates a view backed by a ggcanvas.Canvas
// attached to a gogpu device, which RenderTo draws into a gogpu window.
//
// # Invalidation
//
// SetChart subscribes the view to the chart's invalidate notifications and
// unsubscribes from the previous chart, so a chart that is no longer shown
// cannot schedule repaints. Hosts that need a callback register it with
// OnInvalidate.
//
// # Thread Safety
//
// View is NOT safe for concurrent use. Paint and Touch must run on the
// host's UI goroutine.
package view

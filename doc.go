// Package ggchart draws donut charts with the gg 2D graphics library.
//
// # Overview
//
// ggchart turns an ordered set of weighted, colored entries into annular
// sectors, lays out captions on both sides of the ring, and maps a touch
// point back to the sector under it. Drawing goes through the [Canvas]
// interface, which *gg.Context satisfies directly.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/gogpu/ggchart"
//	)
//
//	chart := ggchart.NewDonut([]ggchart.Entry{
//		{Value: 212, Color: gg.Hex("#266489"), Label: "UWP"},
//		{Value: 248, Color: gg.Hex("#68B9C0"), Label: "Android"},
//		{Value: 128, Color: gg.Hex("#90D585"), Label: "iOS"},
//	})
//
//	dc := gg.NewContext(600, 400)
//	chart.Draw(dc, dc.Width(), dc.Height())
//	dc.SavePNG("donut.png")
//
// # Geometry
//
// Sector fractions are measured in whole turns. Fraction 0 sits at
// 12 o'clock ([StartAngle]) and sectors sweep clockwise on screen, so the
// first half of the total value always covers the right side of the ring.
// Caption splitting relies on this: see [SplitCaptions].
//
// # Hit testing
//
// [BuildSectors] returns the sector paths in canvas coordinates together
// with the ring they were built on. [Locate] scans them in draw order and
// returns the index of the first sector that contains a point, or
// [NoSector]. Sectors are closed, so a point on an edge shared by two
// sectors belongs to the earlier one. [Donut] keeps the sectors of its last
// Draw call so that [Donut.Touch] works between frames.
//
// # Animation
//
// The animation progress scales every sector span uniformly. It is driven
// by the host: compute it with [Animation.Progress] on each frame tick and
// pass it to [Donut.SetAnimationProgress].
//
// # Concurrency
//
// A Donut is owned by the UI goroutine that paints it and is not safe for
// concurrent use. [SetLogger] and [Logger] are safe for concurrent use.
package ggchart

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
)

// StartAngle is the angle, in radians, of sector fraction 0.
// It points to 12 o'clock; fractions grow clockwise on screen.
const StartAngle = -math.Pi / 2

// maxArcSegment is the largest sweep approximated by a single cubic.
const maxArcSegment = math.Pi / 2

// FractionAngle converts a fraction of a full turn to an angle in radians.
func FractionAngle(fraction float64) float64 {
	return StartAngle + fraction*2*math.Pi
}

// PolarPoint returns the point at the given turn fraction and radius,
// relative to the ring center.
func PolarPoint(fraction, radius float64) gg.Point {
	a := FractionAngle(fraction)
	return gg.Pt(radius*math.Cos(a), radius*math.Sin(a))
}

// PolarOf is the inverse of PolarPoint: it returns the turn fraction, in
// [0, 1), and the distance of p from the ring center at the origin.
func PolarOf(p gg.Point) (fraction, radius float64) {
	radius = p.Length()
	f := (math.Atan2(p.Y, p.X) - StartAngle) / (2 * math.Pi)
	f -= math.Floor(f)
	if f >= 1 {
		f = 0
	}
	return f, radius
}

// SectorPath builds the closed outline of one annular sector centered on
// the origin. start and end are fractions of a full turn.
//
// The outline runs along the outer arc from start to end, steps inward to
// innerRadius, and returns along the inner arc. When innerRadius is zero
// the sector degenerates to a pie wedge meeting at the center.
//
// An empty path is returned when end <= start, when outerRadius is not
// positive, or when innerRadius >= outerRadius.
func SectorPath(start, end, outerRadius, innerRadius float64) *gg.Path {
	p := gg.NewPath()
	if end <= start || outerRadius <= 0 || innerRadius >= outerRadius {
		return p
	}

	a0 := FractionAngle(start)
	a1 := FractionAngle(end)

	p.MoveTo(outerRadius*math.Cos(a0), outerRadius*math.Sin(a0))
	appendArc(p, outerRadius, a0, a1)

	if innerRadius <= 0 {
		p.LineTo(0, 0)
	} else {
		p.LineTo(innerRadius*math.Cos(a1), innerRadius*math.Sin(a1))
		appendArc(p, innerRadius, a1, a0)
	}
	p.Close()
	return p
}

// appendArc continues p along a circle of radius r around the origin from
// angle a1 to a2. The sweep may be negative. p must already have a current
// point at angle a1.
func appendArc(p *gg.Path, r, a1, a2 float64) {
	sweep := a2 - a1
	if sweep == 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweep) / maxArcSegment))
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		appendArcSegment(p, r, s, s+step)
	}
}

// appendArcSegment adds one cubic Bezier approximating an arc of at most
// 90 degrees in either direction.
func appendArcSegment(p *gg.Path, r, a1, a2 float64) {
	d := a2 - a1
	t := math.Tan(d / 2)
	alpha := math.Sin(d) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := r*cos1, r*sin1
	x2, y2 := r*cos2, r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

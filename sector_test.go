// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestPolarPointOrientation(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		want     gg.Point
	}{
		{"twelve o'clock", 0, gg.Pt(0, -10)},
		{"three o'clock", 0.25, gg.Pt(10, 0)},
		{"six o'clock", 0.5, gg.Pt(0, 10)},
		{"nine o'clock", 0.75, gg.Pt(-10, 0)},
		{"full turn", 1, gg.Pt(0, -10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolarPoint(tt.fraction, 10)
			if !near(got.X, tt.want.X, 1e-9) || !near(got.Y, tt.want.Y, 1e-9) {
				t.Errorf("PolarPoint(%v, 10) = %v, want %v", tt.fraction, got, tt.want)
			}
		})
	}
}

func TestSectorPathEmpty(t *testing.T) {
	tests := []struct {
		name         string
		start, end   float64
		outer, inner float64
	}{
		{"end before start", 0.5, 0.25, 100, 50},
		{"zero span", 0.3, 0.3, 100, 50},
		{"zero radius", 0, 0.5, 0, 0},
		{"negative radius", 0, 0.5, -10, 0},
		{"hole swallows ring", 0, 0.5, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := SectorPath(tt.start, tt.end, tt.outer, tt.inner)
			if p == nil {
				t.Fatal("SectorPath returned nil, want empty path")
			}
			if n := len(p.Elements()); n != 0 {
				t.Errorf("SectorPath elements = %d, want 0", n)
			}
		})
	}
}

func TestSectorPathOutline(t *testing.T) {
	p := SectorPath(0, 0.25, 100, 50)
	elems := p.Elements()
	if len(elems) == 0 {
		t.Fatal("empty path")
	}

	move, ok := elems[0].(gg.MoveTo)
	if !ok {
		t.Fatalf("first element = %T, want MoveTo", elems[0])
	}
	if !near(move.Point.X, 0, 1e-9) || !near(move.Point.Y, -100, 1e-9) {
		t.Errorf("outline starts at %v, want (0,-100)", move.Point)
	}

	if _, ok := elems[len(elems)-1].(gg.Close); !ok {
		t.Errorf("last element = %T, want Close", elems[len(elems)-1])
	}

	// A quarter turn needs one cubic per arc.
	var cubics, lines int
	for _, e := range elems {
		switch e.(type) {
		case gg.CubicTo:
			cubics++
		case gg.LineTo:
			lines++
		}
	}
	if cubics != 2 {
		t.Errorf("cubic segments = %d, want 2", cubics)
	}
	if lines != 1 {
		t.Errorf("line segments = %d, want 1", lines)
	}
}

func TestSectorPathAnnulusContains(t *testing.T) {
	origin := gg.Point{}
	p := SectorPath(0, 0.25, 100, 50)

	tests := []struct {
		name string
		pt   gg.Point
		want bool
	}{
		{"middle of sector", ringPoint(origin, 0.125, 75), true},
		{"near outer edge", ringPoint(origin, 0.125, 97), true},
		{"near inner edge", ringPoint(origin, 0.125, 53), true},
		{"inside hole", ringPoint(origin, 0.125, 25), false},
		{"center", origin, false},
		{"outside ring", ringPoint(origin, 0.125, 120), false},
		{"other quadrant", ringPoint(origin, 0.5, 75), false},
		{"before start", ringPoint(origin, 0.98, 75), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestSectorPathPieWedge(t *testing.T) {
	p := SectorPath(0.25, 0.5, 100, 0)

	var toCenter bool
	for _, e := range p.Elements() {
		if l, ok := e.(gg.LineTo); ok && l.Point == (gg.Point{}) {
			toCenter = true
		}
	}
	if !toCenter {
		t.Error("pie wedge does not meet at the center")
	}

	if !p.Contains(PolarPoint(0.375, 10)) {
		t.Error("wedge should contain points close to the center")
	}
	if p.Contains(PolarPoint(0.125, 10)) {
		t.Error("wedge should not contain points of another quadrant")
	}
}

func TestSectorPathFullTurn(t *testing.T) {
	p := SectorPath(0, 1, 100, 50)

	for _, f := range []float64{0.05, 0.3, 0.55, 0.8, 0.95} {
		if !p.Contains(PolarPoint(f, 75)) {
			t.Errorf("full ring should contain fraction %v", f)
		}
	}
	if p.Contains(gg.Point{}) {
		t.Error("full ring should not contain its center")
	}
	if p.Contains(PolarPoint(0.3, 20)) {
		t.Error("full ring should not contain points in the hole")
	}

	// Each arc of a full turn is split into four quarter segments.
	var cubics int
	for _, e := range p.Elements() {
		if _, ok := e.(gg.CubicTo); ok {
			cubics++
		}
	}
	if cubics != 8 {
		t.Errorf("cubic segments = %d, want 8", cubics)
	}
}

func TestAppendArcStaysOnCircle(t *testing.T) {
	for _, sweep := range []float64{math.Pi / 3, -math.Pi / 3, 1.5 * math.Pi, -2 * math.Pi} {
		p := gg.NewPath()
		p.MoveTo(100, 0)
		appendArc(p, 100, 0, sweep)

		for _, pt := range p.Flatten(0.1) {
			if r := pt.Length(); !near(r, 100, 0.1) {
				t.Errorf("sweep %.3f: point %v at radius %.4f, want 100", sweep, pt, r)
				break
			}
		}
		end := p.CurrentPoint()
		want := gg.Pt(100*math.Cos(sweep), 100*math.Sin(sweep))
		if !near(end.X, want.X, 1e-9) || !near(end.Y, want.Y, 1e-9) {
			t.Errorf("sweep %.3f: arc ends at %v, want %v", sweep, end, want)
		}
	}
}

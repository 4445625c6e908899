// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"math"
	"time"
)

// DefaultAnimationDuration is the length of the entrance animation.
const DefaultAnimationDuration = 1500 * time.Millisecond

// Easing maps linear time t in [0, 1] to animation progress in [0, 1].
type Easing func(t float64) float64

// EaseLinear returns t unchanged.
func EaseLinear(t float64) float64 { return t }

// EaseSinOut starts fast and decelerates along a quarter sine wave.
func EaseSinOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// EaseCubicOut starts fast and decelerates cubically.
func EaseCubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// ParseEasing returns the easing with the given name:
// "linear", "sin-out" or "cubic-out".
func ParseEasing(name string) (Easing, error) {
	switch name {
	case "linear":
		return EaseLinear, nil
	case "sin-out", "":
		return EaseSinOut, nil
	case "cubic-out":
		return EaseCubicOut, nil
	default:
		return nil, fmt.Errorf("ggchart: unknown easing %q", name)
	}
}

// Animation computes the entrance animation progress over time.
// The zero value runs for DefaultAnimationDuration with EaseSinOut.
type Animation struct {
	Duration time.Duration
	Easing   Easing
}

func (a Animation) duration() time.Duration {
	if a.Duration <= 0 {
		return DefaultAnimationDuration
	}
	return a.Duration
}

func (a Animation) ease(t float64) float64 {
	if a.Easing == nil {
		return EaseSinOut(t)
	}
	return clamp01(a.Easing(t))
}

// Progress returns the progress after elapsed time. It is 0 before the
// start and exactly 1 once the duration has passed.
func (a Animation) Progress(elapsed time.Duration) float64 {
	d := a.duration()
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= d:
		return 1
	}
	return a.ease(float64(elapsed) / float64(d))
}

// Frames returns the progress of each frame of the animation at fps
// frames per second. The first frame is at time zero and the last frame
// is exactly 1.
func (a Animation) Frames(fps int) []float64 {
	if fps <= 0 {
		return []float64{1}
	}
	d := a.duration()
	n := int(math.Ceil(d.Seconds() * float64(fps)))

	frames := make([]float64, n+1)
	for i := range n {
		elapsed := time.Duration(float64(d) * float64(i) / float64(n))
		frames[i] = a.Progress(elapsed)
	}
	frames[n] = 1
	return frames
}

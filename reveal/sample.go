package reveal

import (
	"math"
	"time"
)

// ease is the CSS "ease" timing function, cubic-bezier(0.25, 0.1, 0.25, 1).
var ease = cubicBezier(0.25, 0.1, 0.25, 1.0)

// Frame is the on-screen opacity and offset at one instant.
type Frame struct {
	Opacity float64
	OffsetY float64
}

// Sample returns what the browser paints elapsed after the reveal fired for
// content with the given delay. Before the delay has passed, and for content
// that was never visible, it is the hidden frame.
func Sample(hasBeenVisible bool, delay, elapsed time.Duration) Frame {
	if !hasBeenVisible || elapsed <= max(delay, 0) {
		return Frame{Opacity: 0, OffsetY: Offset}
	}
	t := float64(elapsed-max(delay, 0)) / float64(Duration)
	if t >= 1 {
		return Frame{Opacity: 1, OffsetY: 0}
	}
	p := ease(t)
	return Frame{Opacity: p, OffsetY: Offset * (1 - p)}
}

// Settled reports whether the transition has finished elapsed after the reveal fired.
func Settled(delay, elapsed time.Duration) bool {
	return elapsed >= max(delay, 0)+Duration
}

// cubicBezier returns the timing function with control points (x1,y1) and
// (x2,y2), matching CSS cubic-bezier(). x is solved for the curve parameter
// with Newton's method, falling back to bisection.
func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	sample := func(a1, a2, u float64) float64 {
		// B(u) for a curve from 0 to 1 with inner control values a1, a2.
		v := 1 - u
		return 3*v*v*u*a1 + 3*v*u*u*a2 + u*u*u
	}
	slope := func(a1, a2, u float64) float64 {
		v := 1 - u
		return 3*v*v*a1 + 6*v*u*(a2-a1) + 3*u*u*(1-a2)
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			dx := sample(x1, x2, u) - t
			if math.Abs(dx) < 1e-7 {
				return sample(y1, y2, u)
			}
			d := slope(x1, x2, u)
			if math.Abs(d) < 1e-7 {
				break
			}
			u -= dx / d
		}

		lo, hi := 0.0, 1.0
		u = min(max(u, 0), 1)
		for range 24 {
			dx := sample(x1, x2, u) - t
			if math.Abs(dx) < 1e-7 {
				break
			}
			if dx > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return sample(y1, y2, u)
	}
}

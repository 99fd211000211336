package vela

import "time"

// Animation describes how a value change is interpolated over time.
type Animation struct {
	Duration time.Duration
	Curve    Curve
}

// Curve maps elapsed time to an animation factor in 0..255.
type Curve uint8

const (
	Linear Curve = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseOutBounce
)

// LinearAnimation returns a constant-speed animation.
func LinearAnimation(duration time.Duration) Animation {
	return Animation{Duration: duration, Curve: Linear}
}

// EaseInAnimation starts slow and speeds up (quadratic).
func EaseInAnimation(duration time.Duration) Animation {
	return Animation{Duration: duration, Curve: EaseIn}
}

// EaseOutAnimation starts fast and slows down (quadratic).
func EaseOutAnimation(duration time.Duration) Animation {
	return Animation{Duration: duration, Curve: EaseOut}
}

// EaseInOutAnimation begins and ends slowly with a fast middle section.
func EaseInOutAnimation(duration time.Duration) Animation {
	return Animation{Duration: duration, Curve: EaseInOut}
}

// EaseOutBounceAnimation bounces at the end, staying within the start and
// end points.
func EaseOutBounceAnimation(duration time.Duration) Animation {
	return Animation{Duration: duration, Curve: EaseOutBounce}
}

// WithDuration returns the animation with a replacement duration.
func (a Animation) WithDuration(duration time.Duration) Animation {
	return Animation{Duration: duration, Curve: a.Curve}
}

// Factor computes the animation factor for the elapsed time. All curves
// use fixed-point math so the factor is reproducible across runs. A zero
// or exceeded duration yields the settled factor 255.
func (c Curve) Factor(elapsed, duration time.Duration) uint8 {
	t := elapsed.Milliseconds()
	d := duration.Milliseconds()
	if d <= 0 || t >= d {
		return 255
	}
	switch c {
	case EaseIn:
		x := scaled(t, d, 256)
		return clamp255((x * x) >> 8)
	case EaseOut:
		x := scaled(d-t, d, 256)
		return 255 - clamp255((x*x)>>8)
	case EaseInOut:
		x := scaled(t, d, 256)
		if x < 128 {
			return clamp255((x * x) >> 7)
		}
		return clamp255(255 - (((256-x)*(256-x))>>7))
	case EaseOutBounce:
		return bounceFactor(t, d)
	default:
		return clamp255(scaled(t, d, 255))
	}
}

// scaled returns t*scale/d clamped to [0, scale]. d is positive here.
func scaled(t, d, scale int64) int64 {
	if t >= d {
		return scale
	}
	if t <= 0 {
		return 0
	}
	return t * scale / d
}

func clamp255(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// bounceFactor evaluates the standard ease-out-bounce piecewise quadratic
// at 1024-scale for precision, then converts to 256-scale.
// n1 = 7.5625 (7744/1024), d1 = 2.75; segment boundaries 1/d1, 2/d1 and
// 2.5/d1 scale to 372, 745 and 931.
func bounceFactor(t, d int64) uint8 {
	x := scaled(t, d, 1024)
	var result int64
	switch {
	case x < 372:
		xsq := (x * x) >> 10
		result = ((7744 * xsq) >> 10) >> 2
	case x < 745:
		ax := x - 559 // 1.5/d1 * 1024
		xsq := (ax * ax) >> 10
		result = 192 + (((7744*xsq)>>10)>>2) // 0.75 * 256
	case x < 931:
		ax := x - 838 // 2.25/d1 * 1024
		xsq := (ax * ax) >> 10
		result = 240 + (((7744*xsq)>>10)>>2) // 0.9375 * 256
	default:
		ax := x - 977 // 2.625/d1 * 1024
		xsq := (ax * ax) >> 10
		result = 252 + (((7744*xsq)>>10)>>2) // 0.984375 * 256
	}
	return clamp255(result)
}

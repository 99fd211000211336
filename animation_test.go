package vela

import (
	"testing"
	"time"
)

func TestCurveEndpoints(t *testing.T) {
	curves := []Curve{Linear, EaseIn, EaseOut, EaseInOut, EaseOutBounce}
	d := time.Second
	for _, c := range curves {
		if got := c.Factor(0, d); got != 0 {
			t.Errorf("curve %d at t=0: factor = %d, want 0", c, got)
		}
		if got := c.Factor(d, d); got != 255 {
			t.Errorf("curve %d at t=d: factor = %d, want 255", c, got)
		}
		if got := c.Factor(2*d, d); got != 255 {
			t.Errorf("curve %d past end: factor = %d, want 255", c, got)
		}
	}
}

func TestCurveZeroDurationSettles(t *testing.T) {
	for _, c := range []Curve{Linear, EaseIn, EaseOut, EaseInOut, EaseOutBounce} {
		if got := c.Factor(0, 0); got != 255 {
			t.Errorf("curve %d with zero duration: factor = %d, want 255", c, got)
		}
	}
}

func TestLinearMidpoint(t *testing.T) {
	if got := Linear.Factor(500*time.Millisecond, time.Second); got != 127 {
		t.Errorf("linear midpoint = %d, want 127", got)
	}
}

func TestEaseInSlowStart(t *testing.T) {
	quarter := Linear.Factor(250*time.Millisecond, time.Second)
	eased := EaseIn.Factor(250*time.Millisecond, time.Second)
	if eased >= quarter {
		t.Errorf("ease-in at quarter = %d, should trail linear %d", eased, quarter)
	}
}

func TestEaseOutFastStart(t *testing.T) {
	quarter := Linear.Factor(250*time.Millisecond, time.Second)
	eased := EaseOut.Factor(250*time.Millisecond, time.Second)
	if eased <= quarter {
		t.Errorf("ease-out at quarter = %d, should lead linear %d", eased, quarter)
	}
}

func TestCurvesMonotonicNonDecreasing(t *testing.T) {
	// Bounce overshoots within segments but never reverses; every curve
	// must be reproducible and non-decreasing sample to sample.
	d := time.Second
	for _, c := range []Curve{Linear, EaseIn, EaseOut, EaseInOut} {
		prev := uint8(0)
		for ms := 0; ms <= 1000; ms += 10 {
			got := c.Factor(time.Duration(ms)*time.Millisecond, d)
			if got < prev {
				t.Errorf("curve %d decreased at %dms: %d -> %d", c, ms, prev, got)
			}
			prev = got
		}
	}
}

func TestCurveDeterministic(t *testing.T) {
	d := 700 * time.Millisecond
	for _, c := range []Curve{Linear, EaseIn, EaseOut, EaseInOut, EaseOutBounce} {
		for ms := 0; ms <= 700; ms += 7 {
			e := time.Duration(ms) * time.Millisecond
			first := c.Factor(e, d)
			for i := 0; i < 3; i++ {
				if again := c.Factor(e, d); again != first {
					t.Fatalf("curve %d at %v: %d then %d", c, e, first, again)
				}
			}
		}
	}
}

func TestWithDuration(t *testing.T) {
	a := EaseInAnimation(time.Second).WithDuration(200 * time.Millisecond)
	if a.Duration != 200*time.Millisecond {
		t.Errorf("duration = %v, want 200ms", a.Duration)
	}
	if a.Curve != EaseIn {
		t.Errorf("curve = %d, want EaseIn preserved", a.Curve)
	}
}

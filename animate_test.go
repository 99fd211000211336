package vela

import (
	"testing"
	"time"
)

func animNode(origin Point, value any, frameTime time.Duration, animation Animation) *AnimateRender {
	font := FixedFont{CharWidth: 1, Height: 1}
	return NewAnimateRender(
		&TextRender{Origin: origin, Size: Dim(2, 1), Text: "ab", Font: font},
		animation,
		frameTime,
		value,
	)
}

func joinAt(src, tgt *AnimateRender, appTime time.Duration) *AnimateRender {
	domain := TopLevelDomain(appTime)
	return tgt.Join(src, &domain).(*AnimateRender)
}

func TestJoinValueChangeStartsCountdown(t *testing.T) {
	anim := LinearAnimation(time.Second)
	src := animNode(Pt(0, 0), 1, 0, anim)
	tgt := animNode(Pt(10, 0), 2, 2*time.Second, anim)

	joined := joinAt(src, tgt, 2*time.Second)
	if !joined.IsPartial {
		t.Error("fresh countdown should be partial")
	}
	// Countdown just started: the subtree still sits at the source.
	text := joined.Subtree.(*TextRender)
	if text.Origin.X != 0 {
		t.Errorf("origin X = %d, want source 0 at countdown start", text.Origin.X)
	}
	if joined.Animation.Duration != time.Second {
		t.Errorf("remaining = %v, want full 1s", joined.Animation.Duration)
	}
}

func TestJoinMidwayInterpolates(t *testing.T) {
	anim := LinearAnimation(time.Second)
	src := animNode(Pt(0, 0), 1, 0, anim)
	tgt := animNode(Pt(10, 0), 2, 0, anim)

	// The countdown starts at the first join; a continuation join 300ms
	// later observes the interpolated origin.
	started := joinAt(src, tgt, 0)
	next := animNode(Pt(10, 0), 2, 300*time.Millisecond, anim)
	joined := joinAt(started, next, 300*time.Millisecond)

	text := joined.Subtree.(*TextRender)
	if text.Origin.X != 2 {
		t.Errorf("origin X = %d, want 2 (factor 76 of 10)", text.Origin.X)
	}
	if joined.Animation.Duration != 700*time.Millisecond {
		t.Errorf("remaining = %v, want 700ms", joined.Animation.Duration)
	}
}

func TestJoinEqualSettledValues(t *testing.T) {
	anim := LinearAnimation(time.Second)
	src := animNode(Pt(0, 0), 1, 0, anim)
	tgt := animNode(Pt(10, 0), 1, time.Second, anim)

	joined := joinAt(src, tgt, time.Second)
	if joined.IsPartial {
		t.Error("equal settled values should not be partial")
	}
	// Settled join snaps the subtree to the target.
	text := joined.Subtree.(*TextRender)
	if text.Origin.X != 10 {
		t.Errorf("origin X = %d, want target 10", text.Origin.X)
	}
}

func TestJoinPartialSourceContinuesCountdown(t *testing.T) {
	anim := LinearAnimation(time.Second)
	src := animNode(Pt(0, 0), 1, 0, anim)
	tgt := animNode(Pt(10, 0), 2, 0, anim)

	// First join at 400ms starts the countdown ending at 1.4s.
	first := joinAt(src, tgt, 400*time.Millisecond)
	if !first.IsPartial {
		t.Fatal("first join should be partial")
	}

	// A fresh target with the same value 300ms later must continue the
	// original countdown, still ending at 1.4s.
	next := animNode(Pt(10, 0), 2, 700*time.Millisecond, anim)
	second := joinAt(first, next, 700*time.Millisecond)
	if !second.IsPartial {
		t.Fatal("continued countdown should still be partial")
	}
	if second.Animation.Duration != 700*time.Millisecond {
		t.Errorf("remaining = %v, want 700ms to the original end", second.Animation.Duration)
	}

	// Joining again at the original end time settles it.
	final := animNode(Pt(10, 0), 2, 1400*time.Millisecond, anim)
	third := joinAt(second, final, 1400*time.Millisecond)
	if third.IsPartial {
		t.Error("countdown should settle at its original end time")
	}
	text := third.Subtree.(*TextRender)
	if text.Origin.X != 10 {
		t.Errorf("settled origin X = %d, want 10", text.Origin.X)
	}
}

func TestJoinZeroDurationSettlesImmediately(t *testing.T) {
	anim := LinearAnimation(0)
	src := animNode(Pt(0, 0), 1, 0, anim)
	tgt := animNode(Pt(10, 0), 2, time.Second, anim)

	joined := joinAt(src, tgt, time.Second)
	if joined.IsPartial {
		t.Error("zero duration animation should settle immediately")
	}
	text := joined.Subtree.(*TextRender)
	if text.Origin.X != 10 {
		t.Errorf("origin X = %d, want target 10", text.Origin.X)
	}
}

func TestJoinIdempotentWhenSettled(t *testing.T) {
	anim := LinearAnimation(time.Second)
	base := animNode(Pt(5, 5), 1, 0, anim)
	settled := joinAt(animNode(Pt(5, 5), 1, 0, anim), base, 2*time.Second)

	again := joinAt(settled, animNode(Pt(5, 5), 1, 2*time.Second, anim), 2*time.Second)
	if again.IsPartial {
		t.Error("re-joining a settled tree should stay settled")
	}
	a := settled.Subtree.(*TextRender)
	b := again.Subtree.(*TextRender)
	if a.Origin != b.Origin {
		t.Errorf("settled origins differ: %v vs %v", a.Origin, b.Origin)
	}
}

func TestContainerJoinLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("joining containers of different arity should panic")
		}
	}()
	domain := TopLevelDomain(0)
	tgt := &ContainerRender{Children: []Render{EmptyRender{}}}
	src := &ContainerRender{Children: []Render{EmptyRender{}, EmptyRender{}}}
	tgt.Join(src, &domain)
}

func TestEitherJoinBranchFlipPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("joining across a branch change should panic")
		}
	}()
	domain := TopLevelDomain(0)
	tgt := &EitherRender{First: true, Subtree: EmptyRender{}}
	src := &EitherRender{First: false, Subtree: EmptyRender{}}
	tgt.Join(src, &domain)
}

func TestStyledJoinBlendsColor(t *testing.T) {
	domain := AnimationDomain{Factor: 128}
	tgt := &StyledRender{Color: RGB(255, 0, 0), Subtree: EmptyRender{}}
	src := &StyledRender{Color: RGB(0, 0, 255), Subtree: EmptyRender{}}
	joined := tgt.Join(src, &domain).(*StyledRender)
	if joined.Color.R != 128 || joined.Color.B != 127 {
		t.Errorf("blended color = %v, want half red half blue", joined.Color)
	}
}

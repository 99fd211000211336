package vela

import "time"

// AnimateRender scopes an animation over a subtree. Value decides whether
// the source and target frames differ enough to need interpolation;
// IsPartial marks a countdown carried forward from an interrupted join, so
// back-to-back joins before a frame renders continue the original
// countdown instead of restarting it.
type AnimateRender struct {
	Subtree   Render
	Animation Animation
	// FrameTime is the application time at which this tree was generated.
	FrameTime time.Duration
	// Value must be comparable. A change between source and target
	// starts a new countdown.
	Value     any
	IsPartial bool
}

// NewAnimateRender wraps a subtree in a fresh, settled animation node.
func NewAnimateRender(subtree Render, animation Animation, frameTime time.Duration, value any) *AnimateRender {
	return &AnimateRender{
		Subtree:   subtree,
		Animation: animation,
		FrameTime: frameTime,
		Value:     value,
	}
}

// countdown resolves the transition table shared by Join and DrawAnimated:
// the end time, duration and curve of whichever animation applies at this
// join.
func (a *AnimateRender) countdown(src *AnimateRender, domain *AnimationDomain) (endTime, duration time.Duration, curve Curve) {
	switch {
	case src.Value != a.Value:
		// Value changed: start a new countdown from the join's time.
		duration = a.Animation.Duration
		endTime = domain.AppTime + duration
		curve = a.Animation.Curve
	case src.IsPartial:
		// Interrupted mid-flight with values now equal: continue the
		// original countdown to avoid a visual pop.
		duration = src.Animation.Duration
		endTime = src.FrameTime + duration
		curve = src.Animation.Curve
	default:
		// Settled.
		endTime = domain.AppTime
	}
	return endTime, duration, curve
}

// subdomain derives the re-scoped domain for the subtree from a resolved
// countdown. The factor saturates at 255 once the countdown elapses.
func subdomain(endTime, duration time.Duration, curve Curve, domain *AnimationDomain) AnimationDomain {
	if endTime == 0 || domain.AppTime >= endTime {
		return AnimationDomain{Factor: 255, AppTime: domain.AppTime}
	}
	elapsed := duration - (endTime - domain.AppTime)
	return AnimationDomain{
		Factor:  curve.Factor(elapsed, duration),
		AppTime: domain.AppTime,
	}
}

func (a *AnimateRender) Draw(target DrawTarget, style Style) {
	a.Subtree.Draw(target, style)
}

func (a *AnimateRender) Join(source Render, domain *AnimationDomain) Render {
	src, ok := source.(*AnimateRender)
	if !ok {
		joinMismatch(a, source)
	}
	endTime, duration, curve := a.countdown(src, domain)
	sub := subdomain(endTime, duration, curve, domain)

	remaining := time.Duration(0)
	partial := false
	if endTime != 0 && domain.AppTime < endTime {
		remaining = endTime - domain.AppTime
		partial = true
	}
	return &AnimateRender{
		Subtree:   a.Subtree.Join(src.Subtree, &sub),
		Animation: Animation{Duration: remaining, Curve: curve},
		FrameTime: domain.AppTime,
		Value:     a.Value,
		IsPartial: partial,
	}
}

func (a *AnimateRender) DrawAnimated(target DrawTarget, source Render, style Style, domain *AnimationDomain) {
	src, ok := source.(*AnimateRender)
	if !ok {
		joinMismatch(a, source)
	}
	endTime, duration, curve := a.countdown(src, domain)
	sub := subdomain(endTime, duration, curve, domain)
	a.Subtree.DrawAnimated(target, src.Subtree, style, &sub)
}

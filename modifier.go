package vela

// PriorityView overrides the layout priority a stack sees for its child.
type PriorityView struct {
	child    View
	priority int8
}

// WithPriority raises or lowers a child's claim during flexible
// distribution. Higher priorities size first.
func WithPriority(child View, priority int8) *PriorityView {
	return &PriorityView{child: child, priority: priority}
}

func (p *PriorityView) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	return p.child.Layout(offer, env)
}

func (p *PriorityView) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	return p.child.RenderTree(layout, origin, env)
}

func (p *PriorityView) Priority() int8 { return p.priority }
func (p *PriorityView) Empty() bool    { return p.child.Empty() }

// OffsetView shifts its child's rendered position without affecting
// layout; the child still occupies its original slot.
type OffsetView struct {
	child  View
	dx, dy int
}

// Offset shifts the child by dx, dy at render time.
func Offset(child View, dx, dy int) *OffsetView {
	return &OffsetView{child: child, dx: dx, dy: dy}
}

func (o *OffsetView) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	return o.child.Layout(offer, env)
}

func (o *OffsetView) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	return o.child.RenderTree(layout, Pt(origin.X+o.dx, origin.Y+o.dy), env)
}

func (o *OffsetView) Priority() int8 { return o.child.Priority() }
func (o *OffsetView) Empty() bool    { return o.child.Empty() }

// ForegroundView sets the foreground color for its subtree. The color
// rides the render tree, so joins interpolate it.
type ForegroundView struct {
	child View
	color Color
}

// ForegroundColor colors the child's subtree.
func ForegroundColor(child View, color Color) *ForegroundView {
	return &ForegroundView{child: child, color: color}
}

func (f *ForegroundView) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	return f.child.Layout(offer, env)
}

func (f *ForegroundView) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	env.Foreground = f.color
	return &StyledRender{
		Color:   f.color,
		Subtree: f.child.RenderTree(layout, origin, env),
	}
}

func (f *ForegroundView) Priority() int8 { return f.child.Priority() }
func (f *ForegroundView) Empty() bool    { return f.child.Empty() }

// AnimatedView scopes an animation over its subtree. The render node
// captures the frame time and the watched value; the join protocol uses
// both to decide when a countdown starts, continues or settles.
type AnimatedView struct {
	child     View
	animation Animation
	value     any
}

// Animated animates the subtree whenever value changes between frames.
// Value must be comparable.
func Animated(child View, animation Animation, value any) *AnimatedView {
	return &AnimatedView{child: child, animation: animation, value: value}
}

func (a *AnimatedView) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	return a.child.Layout(offer, env)
}

func (a *AnimatedView) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	return NewAnimateRender(
		a.child.RenderTree(layout, origin, env),
		a.animation,
		env.AppTime,
		a.value,
	)
}

func (a *AnimatedView) Priority() int8 { return a.child.Priority() }
func (a *AnimatedView) Empty() bool    { return a.child.Empty() }

package vela

// FixedFrame forces one or both axes of its child to an exact length. The
// child is laid out against the overridden offer and positioned within
// the frame by alignment; an axis left unset passes the offer through and
// adopts the child's size.
type FixedFrame struct {
	viewDefaults
	child     View
	width     *Dimension
	height    *Dimension
	alignment Alignment
}

// NewFixedFrame wraps a child in an exact-size frame. Call WithWidth or
// WithHeight to pin an axis.
func NewFixedFrame(child View) *FixedFrame {
	return &FixedFrame{child: child, alignment: CenterAlignment}
}

// WithWidth pins the frame's width.
func (f *FixedFrame) WithWidth(w Dimension) *FixedFrame {
	f.width = &w
	return f
}

// WithHeight pins the frame's height.
func (f *FixedFrame) WithHeight(h Dimension) *FixedFrame {
	f.height = &h
	return f
}

// WithAlignment sets how the child sits inside the frame.
func (f *FixedFrame) WithAlignment(a Alignment) *FixedFrame {
	f.alignment = a
	return f
}

func (f *FixedFrame) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	childOffer := offer
	if f.width != nil {
		childOffer.Width = Exact(*f.width)
	}
	if f.height != nil {
		childOffer.Height = Exact(*f.height)
	}
	sub := f.child.Layout(childOffer, env)
	size := sub.ResolvedSize
	if f.width != nil {
		size.Width = *f.width
	}
	if f.height != nil {
		size.Height = *f.height
	}
	return ResolvedLayout{
		Sublayouts:   []ResolvedLayout{sub},
		ResolvedSize: size,
	}
}

func (f *FixedFrame) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	sub := &layout.Sublayouts[0]
	childOrigin := Point{
		X: origin.X + f.alignment.Horizontal.Align(int(layout.ResolvedSize.Width), int(sub.ResolvedSize.Width)),
		Y: origin.Y + f.alignment.Vertical.Align(int(layout.ResolvedSize.Height), int(sub.ResolvedSize.Height)),
	}
	return f.child.RenderTree(sub, childOrigin, env)
}

func (f *FixedFrame) Priority() int8 { return f.child.Priority() }
func (f *FixedFrame) Empty() bool    { return f.child.Empty() }

// FlexFrame clamps its child between per-axis minimum and maximum
// lengths. The child sees the clamped offer; the frame resolves to the
// child's size clamped to the same bounds, so it stretches past a small
// child when a minimum demands it.
type FlexFrame struct {
	viewDefaults
	child     View
	minWidth  *Dimension
	maxWidth  *Dimension
	minHeight *Dimension
	maxHeight *Dimension
	alignment Alignment
}

// NewFlexFrame wraps a child in a min/max clamped frame.
func NewFlexFrame(child View) *FlexFrame {
	return &FlexFrame{child: child, alignment: CenterAlignment}
}

// WithMinWidth sets the frame's minimum width.
func (f *FlexFrame) WithMinWidth(w Dimension) *FlexFrame {
	f.minWidth = &w
	return f
}

// WithMaxWidth sets the frame's maximum width.
func (f *FlexFrame) WithMaxWidth(w Dimension) *FlexFrame {
	f.maxWidth = &w
	return f
}

// WithMinHeight sets the frame's minimum height.
func (f *FlexFrame) WithMinHeight(h Dimension) *FlexFrame {
	f.minHeight = &h
	return f
}

// WithMaxHeight sets the frame's maximum height.
func (f *FlexFrame) WithMaxHeight(h Dimension) *FlexFrame {
	f.maxHeight = &h
	return f
}

// WithAlignment sets how the child sits inside the frame.
func (f *FlexFrame) WithAlignment(a Alignment) *FlexFrame {
	f.alignment = a
	return f
}

// clampOffer bounds one axis of the offer. An unconstrained offer with a
// maximum becomes exact at the maximum, so greedy children stop there.
func clampOffer(p ProposedDimension, min, max *Dimension) ProposedDimension {
	if v, ok := p.Exact(); ok {
		if min != nil {
			v = v.Max(*min)
		}
		if max != nil {
			v = v.Min(*max)
		}
		return Exact(v)
	}
	if p.IsInfinite() && max != nil {
		return Exact(*max)
	}
	return p
}

func clampLength(v Dimension, min, max *Dimension) Dimension {
	if min != nil {
		v = v.Max(*min)
	}
	if max != nil {
		v = v.Min(*max)
	}
	return v
}

func (f *FlexFrame) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	childOffer := ProposedDimensions{
		Width:  clampOffer(offer.Width, f.minWidth, f.maxWidth),
		Height: clampOffer(offer.Height, f.minHeight, f.maxHeight),
	}
	sub := f.child.Layout(childOffer, env)
	size := Dimensions{
		Width:  clampLength(sub.ResolvedSize.Width, f.minWidth, f.maxWidth),
		Height: clampLength(sub.ResolvedSize.Height, f.minHeight, f.maxHeight),
	}
	return ResolvedLayout{
		Sublayouts:   []ResolvedLayout{sub},
		ResolvedSize: size,
	}
}

func (f *FlexFrame) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	sub := &layout.Sublayouts[0]
	childOrigin := Point{
		X: origin.X + f.alignment.Horizontal.Align(int(layout.ResolvedSize.Width), int(sub.ResolvedSize.Width)),
		Y: origin.Y + f.alignment.Vertical.Align(int(layout.ResolvedSize.Height), int(sub.ResolvedSize.Height)),
	}
	return f.child.RenderTree(sub, childOrigin, env)
}

func (f *FlexFrame) Priority() int8 { return f.child.Priority() }
func (f *FlexFrame) Empty() bool    { return f.child.Empty() }

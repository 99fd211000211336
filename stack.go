package vela

// HStack arranges children left to right, distributing the offered width
// by priority and splitting evenly within each priority group. Children
// are aligned on the vertical axis.
type HStack struct {
	viewDefaults
	children  []View
	spacing   Dimension
	alignment VerticalAlignment
}

// NewHStack creates a horizontal stack.
func NewHStack(children ...View) *HStack {
	return &HStack{children: children}
}

// WithSpacing sets the gap between adjacent non-empty children.
func (h *HStack) WithSpacing(spacing Dimension) *HStack {
	h.spacing = spacing
	return h
}

// WithAlignment sets the cross-axis alignment.
func (h *HStack) WithAlignment(a VerticalAlignment) *HStack {
	h.alignment = a
	return h
}

func (h *HStack) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	return stackLayout(h.children, offer, h.spacing, Horizontal, env)
}

func (h *HStack) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	env.Direction = Horizontal
	renders := make([]Render, len(h.children))
	pos := 0
	for i, child := range h.children {
		sub := &layout.Sublayouts[i]
		childOrigin := Point{
			X: origin.X + pos,
			Y: origin.Y + h.alignment.Align(int(layout.ResolvedSize.Height), int(sub.ResolvedSize.Height)),
		}
		renders[i] = child.RenderTree(sub, childOrigin, env)
		if !child.Empty() {
			pos += int(sub.ResolvedSize.Width.Add(h.spacing))
		}
	}
	return &ContainerRender{Children: renders}
}

// VStack arranges children top to bottom, distributing the offered height
// by priority and splitting evenly within each priority group. Children
// are aligned on the horizontal axis.
type VStack struct {
	viewDefaults
	children  []View
	spacing   Dimension
	alignment HorizontalAlignment
}

// NewVStack creates a vertical stack.
func NewVStack(children ...View) *VStack {
	return &VStack{children: children}
}

// WithSpacing sets the gap between adjacent non-empty children.
func (v *VStack) WithSpacing(spacing Dimension) *VStack {
	v.spacing = spacing
	return v
}

// WithAlignment sets the cross-axis alignment.
func (v *VStack) WithAlignment(a HorizontalAlignment) *VStack {
	v.alignment = a
	return v
}

func (v *VStack) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	return stackLayout(v.children, offer, v.spacing, Vertical, env)
}

func (v *VStack) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	env.Direction = Vertical
	renders := make([]Render, len(v.children))
	pos := 0
	for i, child := range v.children {
		sub := &layout.Sublayouts[i]
		childOrigin := Point{
			X: origin.X + v.alignment.Align(int(layout.ResolvedSize.Width), int(sub.ResolvedSize.Width)),
			Y: origin.Y + pos,
		}
		renders[i] = child.RenderTree(sub, childOrigin, env)
		if !child.Empty() {
			pos += int(sub.ResolvedSize.Height.Add(v.spacing))
		}
	}
	return &ContainerRender{Children: renders}
}

// stackLayout runs the shared distribution and records one sublayout per
// child. The last layout call a child receives is the one that produced
// its final size, so the recorded sublayouts match the distribution's
// decisions.
func stackLayout(children []View, offer ProposedDimensions, spacing Dimension, axis LayoutDirection, env Environment) ResolvedLayout {
	env.Direction = axis
	sublayouts := make([]ResolvedLayout, len(children))
	flex := make([]flexChild, len(children))
	for i, child := range children {
		flex[i] = flexChild{
			layout: func(o ProposedDimensions) Dimensions {
				sublayouts[i] = child.Layout(o, env)
				return sublayouts[i].ResolvedSize
			},
			priority: child.Priority(),
			empty:    child.Empty(),
		}
	}
	size := distribute(flex, offer, spacing, axis)
	return ResolvedLayout{Sublayouts: sublayouts, ResolvedSize: size}
}

// ZStack overlays children back to front, each offered the full size. The
// stack resolves to the union of child sizes and positions every child
// within itself by alignment.
type ZStack struct {
	viewDefaults
	children  []View
	alignment Alignment
}

// NewZStack creates an overlay stack. The first child is drawn furthest
// back.
func NewZStack(children ...View) *ZStack {
	return &ZStack{children: children, alignment: CenterAlignment}
}

// WithAlignment sets how children are positioned within the stack.
func (z *ZStack) WithAlignment(a Alignment) *ZStack {
	z.alignment = a
	return z
}

func (z *ZStack) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	sublayouts := make([]ResolvedLayout, len(z.children))
	var size Dimensions
	for i, child := range z.children {
		sublayouts[i] = child.Layout(offer, env)
		size = size.Union(sublayouts[i].ResolvedSize)
	}
	return ResolvedLayout{Sublayouts: sublayouts, ResolvedSize: size.ConstrainedBy(offer)}
}

func (z *ZStack) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	renders := make([]Render, len(z.children))
	for i, child := range z.children {
		sub := &layout.Sublayouts[i]
		childOrigin := Point{
			X: origin.X + z.alignment.Horizontal.Align(int(layout.ResolvedSize.Width), int(sub.ResolvedSize.Width)),
			Y: origin.Y + z.alignment.Vertical.Align(int(layout.ResolvedSize.Height), int(sub.ResolvedSize.Height)),
		}
		renders[i] = child.RenderTree(sub, childOrigin, env)
	}
	return &ContainerRender{Children: renders}
}

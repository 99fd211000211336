package vela

// EdgeInsets is per-edge padding.
type EdgeInsets struct {
	Top, Trailing, Bottom, Leading Dimension
}

// UniformInsets pads every edge by the same amount.
func UniformInsets(amount Dimension) EdgeInsets {
	return EdgeInsets{Top: amount, Trailing: amount, Bottom: amount, Leading: amount}
}

func (e EdgeInsets) horizontal() Dimension { return e.Leading.Add(e.Trailing) }
func (e EdgeInsets) vertical() Dimension   { return e.Top.Add(e.Bottom) }

// Padding insets its child: the child sees the offer shrunk by the
// insets and the resolved size grows back by the same amount, saturating
// in both directions.
type Padding struct {
	child  View
	insets EdgeInsets
}

// NewPadding pads a child uniformly.
func NewPadding(child View, amount Dimension) *Padding {
	return &Padding{child: child, insets: UniformInsets(amount)}
}

// WithInsets replaces the uniform insets with per-edge values.
func (p *Padding) WithInsets(insets EdgeInsets) *Padding {
	p.insets = insets
	return p
}

func (p *Padding) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	childOffer := ProposedDimensions{
		Width:  offer.Width.Sub(p.insets.horizontal()),
		Height: offer.Height.Sub(p.insets.vertical()),
	}
	sub := p.child.Layout(childOffer, env)
	size := Dimensions{
		Width:  sub.ResolvedSize.Width.Add(p.insets.horizontal()),
		Height: sub.ResolvedSize.Height.Add(p.insets.vertical()),
	}
	return ResolvedLayout{
		Sublayouts:   []ResolvedLayout{sub},
		ResolvedSize: size,
	}
}

func (p *Padding) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	childOrigin := Point{
		X: origin.X + int(p.insets.Leading),
		Y: origin.Y + int(p.insets.Top),
	}
	return p.child.RenderTree(&layout.Sublayouts[0], childOrigin, env)
}

func (p *Padding) Priority() int8 { return p.child.Priority() }
func (p *Padding) Empty() bool    { return p.child.Empty() }

package vela

import "math"

// Spacer claims leftover room along a stack's layout axis. It carries the
// lowest possible priority so every sibling sizes first, then absorbs
// whatever remains. Along the cross axis it occupies nothing.
type Spacer struct {
	minLength Dimension
}

// NewSpacer creates a spacer with no minimum length.
func NewSpacer() *Spacer {
	return &Spacer{}
}

// WithMinLength sets a floor on the spacer's extent along the layout axis,
// honored even when the offer is smaller.
func (s *Spacer) WithMinLength(min Dimension) *Spacer {
	s.minLength = min
	return s
}

func (s *Spacer) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	var size Dimensions
	if env.Direction == Horizontal {
		size.Width = offer.Width.Resolve(s.minLength, s.minLength)
	} else {
		size.Height = offer.Height.Resolve(s.minLength, s.minLength)
	}
	return ResolvedLayout{ResolvedSize: size}
}

func (s *Spacer) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	return EmptyRender{}
}

// Priority is the minimum so spacers are offered space last.
func (s *Spacer) Priority() int8 { return math.MinInt8 }

func (s *Spacer) Empty() bool { return false }

// Divider draws a full-extent line across a stack's cross axis: one cell
// thick along the layout axis, filling the cross offer. It carries the
// highest priority so it claims its thickness before flexible siblings.
type Divider struct {
	viewDefaults
	weight Dimension
}

// NewDivider creates a divider one unit thick.
func NewDivider() *Divider {
	return &Divider{weight: 1}
}

// WithWeight sets the divider's thickness along the layout axis.
func (d *Divider) WithWeight(weight Dimension) *Divider {
	d.weight = weight
	return d
}

func (d *Divider) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	var size Dimensions
	if env.Direction == Horizontal {
		size.Width = d.weight
		size.Height = offer.Height.Resolve(0, 10)
	} else {
		size.Width = offer.Width.Resolve(0, 10)
		size.Height = d.weight
	}
	return ResolvedLayout{ResolvedSize: size}
}

func (d *Divider) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	glyph := '-'
	if env.Direction == Horizontal {
		glyph = '|'
	}
	return &BlockRender{
		Origin: origin,
		Size:   layout.ResolvedSize,
		Glyph:  glyph,
	}
}

// Priority is the maximum so dividers size before any flexible sibling.
func (d *Divider) Priority() int8 { return math.MaxInt8 }

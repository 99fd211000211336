package vela

// Block is a filled rectangle that greedily accepts whatever it is
// offered: exact offers resolve as offered, compact offers to a small
// ideal, and unconstrained offers stay unbounded. It is the canvas
// primitive other decorations build on.
type Block struct {
	viewDefaults
	glyph rune
}

// NewBlock creates a block filled with the given glyph.
func NewBlock(glyph rune) *Block {
	return &Block{glyph: glyph}
}

func (b *Block) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	return ResolvedLayout{ResolvedSize: offer.Resolve(0, 10)}
}

func (b *Block) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	return &BlockRender{
		Origin: origin,
		Size:   layout.ResolvedSize,
		Glyph:  b.glyph,
	}
}

// BlockRender fills a rectangle with a single glyph. Origin and size both
// interpolate during a join; the glyph jumps at the midpoint.
type BlockRender struct {
	Origin Point
	Size   Dimensions
	Glyph  rune
}

func (r *BlockRender) Draw(target DrawTarget, style Style) {
	if r.Size.Area() == 0 || r.Size.Width.IsInfinite() || r.Size.Height.IsInfinite() {
		return
	}
	cell := NewCell(r.Glyph, style)
	for dy := 0; dy < int(r.Size.Height); dy++ {
		for dx := 0; dx < int(r.Size.Width); dx++ {
			target.Set(r.Origin.X+dx, r.Origin.Y+dy, cell)
		}
	}
}

func (r *BlockRender) Join(source Render, domain *AnimationDomain) Render {
	src, ok := source.(*BlockRender)
	if !ok {
		joinMismatch(r, source)
	}
	return &BlockRender{
		Origin: InterpolatePoint(src.Origin, r.Origin, domain.Factor),
		Size:   InterpolateDimensions(src.Size, r.Size, domain.Factor),
		Glyph:  InterpolateRune(src.Glyph, r.Glyph, domain.Factor),
	}
}

func (r *BlockRender) DrawAnimated(target DrawTarget, source Render, style Style, domain *AnimationDomain) {
	r.Join(source, domain).Draw(target, style)
}

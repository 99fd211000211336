package vela

// Either renders one of two subtrees based on a condition captured at
// construction. The selected branch is recorded in the render node, so a
// branch flip between frames reads as a shape change rather than an
// animatable transition.
type Either struct {
	first     bool
	whenTrue  View
	whenFalse View
}

// NewEither selects whenTrue if condition holds, whenFalse otherwise.
func NewEither(condition bool, whenTrue, whenFalse View) *Either {
	return &Either{first: condition, whenTrue: whenTrue, whenFalse: whenFalse}
}

// When renders the child only while the condition holds.
func When(condition bool, child View) *Either {
	return NewEither(condition, child, EmptyView{})
}

func (e *Either) selected() View {
	if e.first {
		return e.whenTrue
	}
	return e.whenFalse
}

func (e *Either) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	return e.selected().Layout(offer, env)
}

func (e *Either) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	return &EitherRender{
		First:   e.first,
		Subtree: e.selected().RenderTree(layout, origin, env),
	}
}

func (e *Either) Priority() int8 { return e.selected().Priority() }
func (e *Either) Empty() bool    { return e.selected().Empty() }

// EmptyView occupies no space and draws nothing. Stacks skip it when
// placing spacing.
type EmptyView struct{}

func (EmptyView) Layout(ProposedDimensions, Environment) ResolvedLayout {
	return ResolvedLayout{}
}

func (EmptyView) RenderTree(*ResolvedLayout, Point, Environment) Render {
	return EmptyRender{}
}

func (EmptyView) Priority() int8 { return 0 }
func (EmptyView) Empty() bool    { return true }

package vela

import "errors"

// ErrCapacityExceeded reports that a dynamic view produced more children
// than its configured capacity.
var ErrCapacityExceeded = errors.New("vela: foreach capacity exceeded")

// DefaultForEachCapacity bounds dynamic children when no explicit
// capacity is configured. Capping the child count keeps layout scratch
// space bounded on constrained targets.
const DefaultForEachCapacity = 64

// ForEachView lays out children built from a data slice, stacked along
// the ambient layout direction with the same distribution rules as an
// explicit stack.
type ForEachView struct {
	viewDefaults
	children []View
	spacing  Dimension
}

// ForEach builds one child per item. It fails with ErrCapacityExceeded
// when the item count exceeds DefaultForEachCapacity; use
// ForEachCapacity for a different bound.
func ForEach[T any](items []T, build func(item T) View) (*ForEachView, error) {
	return ForEachCapacity(items, DefaultForEachCapacity, build)
}

// ForEachCapacity is ForEach with an explicit child capacity.
func ForEachCapacity[T any](items []T, capacity int, build func(item T) View) (*ForEachView, error) {
	if len(items) > capacity {
		return nil, ErrCapacityExceeded
	}
	children := make([]View, len(items))
	for i, item := range items {
		children[i] = build(item)
	}
	return &ForEachView{children: children}, nil
}

// WithSpacing sets the gap between adjacent non-empty children.
func (f *ForEachView) WithSpacing(spacing Dimension) *ForEachView {
	f.spacing = spacing
	return f
}

func (f *ForEachView) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	return stackLayout(f.children, offer, f.spacing, env.Direction, env)
}

func (f *ForEachView) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	renders := make([]Render, len(f.children))
	pos := 0
	for i, child := range f.children {
		sub := &layout.Sublayouts[i]
		childOrigin := origin
		if env.Direction == Horizontal {
			childOrigin.X += pos
		} else {
			childOrigin.Y += pos
		}
		renders[i] = child.RenderTree(sub, childOrigin, env)
		if !child.Empty() {
			pos += int(majorOf(sub.ResolvedSize, env.Direction).Add(f.spacing))
		}
	}
	return &ContainerRender{Children: renders}
}

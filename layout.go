package vela

// View is the contract every element of the view tree implements. Layout
// must be a pure function of (offer, env): the distribution algorithm may
// call it speculatively several times for one frame before committing.
type View interface {
	// Layout resolves the view's size for the given offer. The returned
	// layout is valid for a single pass only.
	Layout(offer ProposedDimensions, env Environment) ResolvedLayout

	// RenderTree converts an already-resolved layout into a render tree
	// rooted at the given absolute origin.
	RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render

	// Priority is the layout priority. Higher priority siblings are sized
	// first and may claim space before lower-priority ones. Default 0;
	// the extremes are reserved for always-natural-size views (dividers)
	// and take-remaining-space views (spacers).
	Priority() int8

	// Empty reports whether the view occupies no space at all, so stacks
	// skip it when inserting spacing.
	Empty() bool
}

// ResolvedLayout is the per-frame result of a layout pass: the view's
// resolved size plus the resolved layouts of its children, by index.
type ResolvedLayout struct {
	Sublayouts   []ResolvedLayout
	ResolvedSize Dimensions
}

// viewDefaults supplies the default priority and emptiness for views that
// don't override them.
type viewDefaults struct{}

func (viewDefaults) Priority() int8 { return 0 }
func (viewDefaults) Empty() bool    { return false }

// LayoutDirection is the axis along which a container arranges children.
type LayoutDirection uint8

const (
	Horizontal LayoutDirection = iota
	Vertical
)

// HorizontalAlignment positions content of a known width within a wider box.
type HorizontalAlignment uint8

const (
	Leading HorizontalAlignment = iota
	HCenter
	Trailing
)

// Align returns the leading offset of content within the available width.
func (a HorizontalAlignment) Align(available, content int) int {
	switch a {
	case HCenter:
		return (available - content) / 2
	case Trailing:
		return available - content
	default:
		return 0
	}
}

// VerticalAlignment positions content of a known height within a taller box.
type VerticalAlignment uint8

const (
	Top VerticalAlignment = iota
	VCenter
	Bottom
)

// Align returns the top offset of content within the available height.
func (a VerticalAlignment) Align(available, content int) int {
	switch a {
	case VCenter:
		return (available - content) / 2
	case Bottom:
		return available - content
	default:
		return 0
	}
}

// Alignment pairs one alignment per axis.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// CenterAlignment centers on both axes.
var CenterAlignment = Alignment{Horizontal: HCenter, Vertical: VCenter}

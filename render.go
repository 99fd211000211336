package vela

import (
	"fmt"
	"time"
)

// Render is one node of the per-frame render tree: absolute geometry plus
// a draw description, mirroring the view tree's shape. Nodes have no
// behavior besides drawing and joining; the tree is rebuilt every frame
// and only animation timing state survives, threaded explicitly through
// Join by the caller.
type Render interface {
	// Draw paints the node to the target with the ambient style.
	Draw(target DrawTarget, style Style)

	// Join merges a source tree into this (target) tree, producing the
	// interpolated tree for the domain's point in time. Joining trees of
	// mismatched shape is a programmer error and panics.
	Join(source Render, domain *AnimationDomain) Render

	// DrawAnimated paints the interpolation between a source tree and
	// this tree without materializing the joined tree where that is
	// cheaper.
	DrawAnimated(target DrawTarget, source Render, style Style, domain *AnimationDomain)
}

// AnimationDomain scopes one animation's progress: a factor in 0..255 and
// the frame's application time. Interior nodes may re-scope the domain for
// a subtree.
type AnimationDomain struct {
	Factor  uint8
	AppTime time.Duration
}

// TopLevelDomain is the settled domain used at the root of a frame.
func TopLevelDomain(appTime time.Duration) AnimationDomain {
	return AnimationDomain{Factor: 255, AppTime: appTime}
}

// IsComplete reports whether the domain's animation has fully settled.
func (d *AnimationDomain) IsComplete() bool {
	return d.Factor == 255
}

// JoinTrees merges the previous frame's render tree into the current one
// at the given application time. The caller owns the returned tree and
// passes it back as the source of the next frame's join.
func JoinTrees(source, target Render, appTime time.Duration) Render {
	domain := TopLevelDomain(appTime)
	return target.Join(source, &domain)
}

func joinMismatch(target, source Render) {
	panic(fmt.Sprintf("vela: render tree shape mismatch: cannot join %T into %T", source, target))
}

// ContainerRender is an interior node holding the ordered render trees of
// a container's children.
type ContainerRender struct {
	Children []Render
}

func (c *ContainerRender) Draw(target DrawTarget, style Style) {
	for _, child := range c.Children {
		child.Draw(target, style)
	}
}

func (c *ContainerRender) Join(source Render, domain *AnimationDomain) Render {
	src, ok := source.(*ContainerRender)
	if !ok || len(src.Children) != len(c.Children) {
		joinMismatch(c, source)
	}
	joined := make([]Render, len(c.Children))
	for i, child := range c.Children {
		joined[i] = child.Join(src.Children[i], domain)
	}
	return &ContainerRender{Children: joined}
}

func (c *ContainerRender) DrawAnimated(target DrawTarget, source Render, style Style, domain *AnimationDomain) {
	src, ok := source.(*ContainerRender)
	if !ok || len(src.Children) != len(c.Children) {
		joinMismatch(c, source)
	}
	for i, child := range c.Children {
		child.DrawAnimated(target, src.Children[i], style, domain)
	}
}

// EitherRender is the render node of a conditional view. The branch tag
// records which subtree was selected; joining across a branch change is a
// shape mismatch, since render tree shape derives from the view tree.
type EitherRender struct {
	First   bool
	Subtree Render
}

func (e *EitherRender) Draw(target DrawTarget, style Style) {
	e.Subtree.Draw(target, style)
}

func (e *EitherRender) Join(source Render, domain *AnimationDomain) Render {
	src, ok := source.(*EitherRender)
	if !ok || src.First != e.First {
		joinMismatch(e, source)
	}
	return &EitherRender{First: e.First, Subtree: e.Subtree.Join(src.Subtree, domain)}
}

func (e *EitherRender) DrawAnimated(target DrawTarget, source Render, style Style, domain *AnimationDomain) {
	src, ok := source.(*EitherRender)
	if !ok || src.First != e.First {
		joinMismatch(e, source)
	}
	e.Subtree.DrawAnimated(target, src.Subtree, style, domain)
}

// StyledRender overrides the foreground color for its subtree. Colors
// interpolate by the domain factor.
type StyledRender struct {
	Color   Color
	Subtree Render
}

func (s *StyledRender) Draw(target DrawTarget, style Style) {
	s.Subtree.Draw(target, style.Foreground(s.Color))
}

func (s *StyledRender) Join(source Render, domain *AnimationDomain) Render {
	src, ok := source.(*StyledRender)
	if !ok {
		joinMismatch(s, source)
	}
	return &StyledRender{
		Color:   InterpolateColor(src.Color, s.Color, domain.Factor),
		Subtree: s.Subtree.Join(src.Subtree, domain),
	}
}

func (s *StyledRender) DrawAnimated(target DrawTarget, source Render, style Style, domain *AnimationDomain) {
	src, ok := source.(*StyledRender)
	if !ok {
		joinMismatch(s, source)
	}
	blended := InterpolateColor(src.Color, s.Color, domain.Factor)
	s.Subtree.DrawAnimated(target, src.Subtree, style.Foreground(blended), domain)
}

// EmptyRender draws nothing.
type EmptyRender struct{}

func (EmptyRender) Draw(DrawTarget, Style) {}

func (e EmptyRender) Join(source Render, domain *AnimationDomain) Render {
	if _, ok := source.(EmptyRender); !ok {
		joinMismatch(e, source)
	}
	return e
}

func (e EmptyRender) DrawAnimated(target DrawTarget, source Render, style Style, domain *AnimationDomain) {
	if _, ok := source.(EmptyRender); !ok {
		joinMismatch(e, source)
	}
}

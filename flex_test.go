package vela

import "testing"

func layoutStack(t *testing.T, children []View, width, height uint32) ResolvedLayout {
	t.Helper()
	stack := NewHStack(children...)
	return stack.Layout(Exactly(width, height), DefaultEnvironment(0))
}

func TestDistributionEvenSplitWithRemainder(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	children := []View{
		NewText("aaa", font),
		NewText("bbb", font),
		NewText("ccc", font),
	}
	layout := layoutStack(t, children, 7, 1)

	// 7 across 3 children: first child gets the extra unit, the others
	// wrap to their 2-wide share.
	widths := []Dimension{3, 2, 2}
	for i, want := range widths {
		if got := layout.Sublayouts[i].ResolvedSize.Width; got != want {
			t.Errorf("child %d width = %d, want %d", i, got, want)
		}
	}
	if layout.ResolvedSize.Width != 7 {
		t.Errorf("stack width = %d, want 7", layout.ResolvedSize.Width)
	}
	if layout.ResolvedSize.Height != 1 {
		t.Errorf("stack height = %d, want cross offer 1", layout.ResolvedSize.Height)
	}
}

func TestDistributionRendersClippedWrap(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	stack := NewHStack(
		NewText("aaa", font),
		NewText("bbb", font),
		NewText("ccc", font),
	)
	buf := NewBuffer(7, 1)
	env := DefaultEnvironment(0)
	layout := stack.Layout(Exactly(7, 1), env)
	tree := stack.RenderTree(&layout, Pt(0, 0), env)
	tree.Draw(buf, DefaultStyle())

	if got := buf.String(); got != "aaabbcc" {
		t.Errorf("rendered %q, want %q", got, "aaabbcc")
	}
}

func TestDistributionUnderusedPool(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	children := []View{
		NewText("aaa", font),
		NewText("bbb", font),
		NewText("ccc", font),
	}
	layout := layoutStack(t, children, 10, 1)

	for i := range children {
		if got := layout.Sublayouts[i].ResolvedSize.Width; got != 3 {
			t.Errorf("child %d width = %d, want natural 3", i, got)
		}
	}
	// The container reports what the children used, not the full offer.
	if layout.ResolvedSize.Width != 9 {
		t.Errorf("stack width = %d, want 9", layout.ResolvedSize.Width)
	}
}

func TestDistributionPinsRefusingChild(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	fixed := NewFixedFrame(NewText("aaaaa", font)).WithWidth(5).WithHeight(1)
	layout := layoutStack(t, []View{fixed}, 2, 1)

	if got := layout.Sublayouts[0].ResolvedSize.Width; got != 5 {
		t.Errorf("pinned child width = %d, want its own 5", got)
	}
	// The stack never reports more than it was offered.
	if got := layout.ResolvedSize.Width; got != 2 {
		t.Errorf("stack width = %d, want clamped 2", got)
	}
}

func TestDistributionSpacerClaimsRemainder(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	stack := NewHStack(
		NewText("ab", font),
		NewSpacer(),
		NewText("cd", font),
	)
	buf := NewBuffer(10, 1)
	env := DefaultEnvironment(0)
	layout := stack.Layout(Exactly(10, 1), env)
	tree := stack.RenderTree(&layout, Pt(0, 0), env)
	tree.Draw(buf, DefaultStyle())

	if got := buf.String(); got != "ab      cd" {
		t.Errorf("rendered %q, want %q", got, "ab      cd")
	}
	if got := layout.Sublayouts[1].ResolvedSize.Width; got != 6 {
		t.Errorf("spacer width = %d, want 6", got)
	}
}

func TestDistributionPriorityGroups(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	// The high-priority child is sized before the default-priority text
	// and takes its full natural width from the pool first.
	stack := NewHStack(
		NewText("aaaa", font),
		WithPriority(NewFixedFrame(NewText("xx", font)).WithWidth(2).WithHeight(1), 10),
	)
	layout := stack.Layout(Exactly(5, 1), DefaultEnvironment(0))

	if got := layout.Sublayouts[1].ResolvedSize.Width; got != 2 {
		t.Errorf("priority child width = %d, want 2", got)
	}
	if got := layout.Sublayouts[0].ResolvedSize.Width; got != 3 {
		t.Errorf("text width = %d, want leftover 3", got)
	}
}

func TestDistributionSpacingBetweenNonEmpty(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	stack := NewHStack(
		NewText("a", font),
		EmptyView{},
		NewText("b", font),
	).WithSpacing(1)
	buf := NewBuffer(3, 1)
	env := DefaultEnvironment(0)
	layout := stack.Layout(Exactly(3, 1), env)
	tree := stack.RenderTree(&layout, Pt(0, 0), env)
	tree.Draw(buf, DefaultStyle())

	// One gap between the two visible children; the empty view neither
	// occupies space nor adds spacing.
	if got := buf.String(); got != "a b" {
		t.Errorf("rendered %q, want %q", got, "a b")
	}
}

func TestDistributionCompactOffer(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	stack := NewHStack(
		NewText("abc", font),
		NewText("de", font),
	).WithSpacing(2)
	layout := stack.Layout(CompactSize, DefaultEnvironment(0))

	if got := layout.ResolvedSize.Width; got != 7 {
		t.Errorf("compact width = %d, want 3+2+spacing 2 = 7", got)
	}
	if got := layout.ResolvedSize.Height; got != 1 {
		t.Errorf("compact height = %d, want 1", got)
	}
}

func TestDistributionDeterministic(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	children := []View{
		NewText("one", font),
		NewText("two", font),
		NewText("three", font),
		NewSpacer(),
		NewText("four", font),
	}
	first := layoutStack(t, children, 23, 1)
	for i := 0; i < 10; i++ {
		again := layoutStack(t, children, 23, 1)
		if again.ResolvedSize != first.ResolvedSize {
			t.Fatalf("run %d size = %v, want %v", i, again.ResolvedSize, first.ResolvedSize)
		}
		for j := range first.Sublayouts {
			if again.Sublayouts[j].ResolvedSize != first.Sublayouts[j].ResolvedSize {
				t.Fatalf("run %d child %d = %v, want %v",
					i, j, again.Sublayouts[j].ResolvedSize, first.Sublayouts[j].ResolvedSize)
			}
		}
	}
}

func TestVStackDividerFillsCross(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	stack := NewVStack(
		NewText("top", font),
		NewDivider(),
		NewText("bot", font),
	)
	buf := NewBuffer(5, 3)
	env := DefaultEnvironment(0)
	layout := stack.Layout(Exactly(5, 3), env)
	tree := stack.RenderTree(&layout, Pt(0, 0), env)
	tree.Draw(buf, DefaultStyle())

	want := "top  \n-----\nbot  "
	if got := buf.String(); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

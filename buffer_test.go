package vela

import (
	"strings"
	"testing"
)

func TestBufferClipsOutOfBounds(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.Set(-1, 0, NewCell('x', DefaultStyle()))
	buf.Set(2, 0, NewCell('x', DefaultStyle()))
	buf.Set(0, 5, NewCell('x', DefaultStyle()))
	if got := buf.String(); got != "  \n  " {
		t.Errorf("buffer = %q, want untouched blanks", got)
	}
}

func TestBufferBorderMerging(t *testing.T) {
	buf := NewBuffer(5, 3)
	style := DefaultStyle()
	buf.DrawBorder(0, 0, 3, 3, BorderSingle, style)
	buf.DrawBorder(2, 0, 3, 3, BorderSingle, style)

	// Shared edge cells become junctions.
	if got := buf.Get(2, 0).Rune; got != BoxTeeDown {
		t.Errorf("top junction = %c, want %c", got, BoxTeeDown)
	}
	if got := buf.Get(2, 2).Rune; got != BoxTeeUp {
		t.Errorf("bottom junction = %c, want %c", got, BoxTeeUp)
	}
}

func TestBufferStringTrimmed(t *testing.T) {
	buf := NewBuffer(5, 3)
	buf.WriteString(0, 0, "ab", DefaultStyle())
	want := "ab"
	if got := buf.StringTrimmed(); got != want {
		t.Errorf("trimmed = %q, want %q", got, want)
	}
}

func TestBufferResizePreservesContent(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.WriteString(0, 0, "abcd", DefaultStyle())
	buf.Resize(2, 2)
	if got := buf.Get(1, 0).Rune; got != 'b' {
		t.Errorf("cell (1,0) = %c, want b", got)
	}
	buf.Resize(6, 2)
	if got := buf.Get(5, 0).Rune; got != ' ' {
		t.Errorf("grown cell = %c, want blank", got)
	}
}

func TestRegionClipsAndOffsets(t *testing.T) {
	buf := NewBuffer(6, 3)
	region := buf.Region(2, 1, 3, 1)
	region.Set(0, 0, NewCell('a', DefaultStyle()))
	region.Set(3, 0, NewCell('x', DefaultStyle())) // outside the region
	region.Set(0, 1, NewCell('x', DefaultStyle())) // outside the region

	if got := buf.Get(2, 1).Rune; got != 'a' {
		t.Errorf("cell (2,1) = %c, want a", got)
	}
	if strings.ContainsRune(buf.String(), 'x') {
		t.Error("clipped writes leaked into the buffer")
	}
}

func TestRegionAsDrawTarget(t *testing.T) {
	font := FixedFont{CharWidth: 1, Height: 1}
	buf := NewBuffer(6, 1)
	region := buf.Region(2, 0, 4, 1)

	text := NewText("hi", font)
	env := DefaultEnvironment(0)
	layout := text.Layout(Exactly(4, 1), env)
	tree := text.RenderTree(&layout, Pt(0, 0), env)
	tree.Draw(region, DefaultStyle())

	if got := buf.String(); got != "  hi  " {
		t.Errorf("rendered %q, want %q", got, "  hi  ")
	}
}

func TestANSIContainsGlyphs(t *testing.T) {
	buf := NewBuffer(2, 1)
	buf.Set(0, 0, NewCell('h', DefaultStyle().Foreground(RGB(255, 0, 0))))
	buf.Set(1, 0, NewCell('i', DefaultStyle()))
	out := buf.ANSI()
	if !strings.Contains(out, "h") || !strings.Contains(out, "i") {
		t.Errorf("ANSI output %q lost glyphs", out)
	}
}

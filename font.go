package vela

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Font is the text-metrics capability used to size and place text. The
// core never rasterizes glyphs; it only needs advance widths and a line
// height.
type Font interface {
	// Advance is the horizontal advance of a single rune.
	Advance(r rune) Dimension
	// LineHeight is the vertical advance between lines.
	LineHeight() Dimension
}

// FixedFont has a constant advance per glyph, in the manner of bitmap
// fonts on embedded displays.
type FixedFont struct {
	CharWidth uint32
	Height    uint32
}

func (f FixedFont) Advance(rune) Dimension { return Dimension(f.CharWidth) }
func (f FixedFont) LineHeight() Dimension  { return Dimension(f.Height) }

// TerminalFont measures in character cells: east-asian-aware advance
// widths and one cell per line.
type TerminalFont struct{}

func (TerminalFont) Advance(r rune) Dimension {
	return Dimension(runewidth.RuneWidth(r))
}

func (TerminalFont) LineHeight() Dimension { return 1 }

// textAdvance measures a string by iterating grapheme clusters, so
// multi-rune clusters advance once rather than per rune.
func textAdvance(s string, font Font) Dimension {
	var total Dimension
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		total = total.Add(font.Advance(gr.Runes()[0]))
	}
	return total
}

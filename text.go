package vela

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Text lays out a string using a font's metrics, wrapping on single
// spaces when the offered width is exact. Words wider than one line are
// force split, and a line always holds at least one grapheme cluster, so
// text refuses to shrink below one glyph per line.
type Text struct {
	viewDefaults
	content   string
	font      Font
	alignment HorizontalAlignment
}

// NewText creates a text view measured with the given font.
func NewText(content string, font Font) *Text {
	return &Text{content: content, font: font}
}

// WithAlignment sets the multiline text alignment.
func (t *Text) WithAlignment(a HorizontalAlignment) *Text {
	t.alignment = a
	return t
}

func (t *Text) Layout(offer ProposedDimensions, env Environment) ResolvedLayout {
	lines := wrapText(t.content, offer.Width, t.font)
	var maxWidth Dimension
	for _, line := range lines {
		maxWidth = maxWidth.Max(textAdvance(line, t.font))
	}
	height := t.font.LineHeight().Mul(Dimension(len(lines)))
	return ResolvedLayout{ResolvedSize: Dimensions{Width: maxWidth, Height: height}}
}

func (t *Text) RenderTree(layout *ResolvedLayout, origin Point, env Environment) Render {
	return &TextRender{
		Origin:    origin,
		Size:      layout.ResolvedSize,
		Text:      t.content,
		Font:      t.font,
		Alignment: t.alignment,
	}
}

// wrapText breaks text into lines no wider than the offered width.
// Compact and infinite offers break on newlines only. Trailing spaces at
// a break point are consumed; interior runs of spaces are preserved.
func wrapText(s string, width ProposedDimension, font Font) []string {
	var lines []string
	w, exact := width.Exact()
	for _, para := range strings.Split(s, "\n") {
		if !exact {
			lines = append(lines, para)
			continue
		}

		var cur strings.Builder
		var curWidth Dimension
		for wi, word := range strings.Split(para, " ") {
			wordWidth := textAdvance(word, font)
			spaceWidth := Dimension(0)
			if wi > 0 && cur.Len() > 0 {
				spaceWidth = font.Advance(' ')
			}
			if cur.Len() > 0 && curWidth.Add(spaceWidth).Add(wordWidth) > w {
				lines = append(lines, cur.String())
				cur.Reset()
				curWidth = 0
				spaceWidth = 0
			}
			if cur.Len() == 0 && wordWidth > w {
				parts := splitWord(word, w, font)
				for _, p := range parts[:len(parts)-1] {
					lines = append(lines, p)
				}
				last := parts[len(parts)-1]
				cur.WriteString(last)
				curWidth = textAdvance(last, font)
				continue
			}
			if spaceWidth > 0 {
				cur.WriteByte(' ')
			}
			cur.WriteString(word)
			curWidth = curWidth.Add(spaceWidth).Add(wordWidth)
		}
		lines = append(lines, cur.String())
	}
	return lines
}

// splitWord force-splits a word into chunks of at most the given width.
// Each chunk holds at least one grapheme cluster so splitting always
// makes progress, even when a single glyph exceeds the width.
func splitWord(word string, w Dimension, font Font) []string {
	var parts []string
	var cur strings.Builder
	var curWidth Dimension
	gr := uniseg.NewGraphemes(word)
	for gr.Next() {
		adv := font.Advance(gr.Runes()[0])
		if cur.Len() > 0 && curWidth.Add(adv) > w {
			parts = append(parts, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteString(gr.Str())
		curWidth = curWidth.Add(adv)
	}
	parts = append(parts, cur.String())
	return parts
}

// TextRender draws text wrapped to its resolved size. Only the origin
// interpolates during a join; glyph content has no meaningful in-between,
// so it jumps discretely at the animation midpoint.
type TextRender struct {
	Origin    Point
	Size      Dimensions
	Text      string
	Font      Font
	Alignment HorizontalAlignment
}

func (r *TextRender) Draw(target DrawTarget, style Style) {
	if r.Size.Area() == 0 {
		return
	}
	lineHeight := int(r.Font.LineHeight())
	height := 0
	for _, line := range wrapText(r.Text, Exact(r.Size.Width), r.Font) {
		lineWidth := textAdvance(line, r.Font)
		x := r.Origin.X + r.Alignment.Align(int(r.Size.Width), int(lineWidth))
		y := r.Origin.Y + height
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			first := gr.Runes()[0]
			target.Set(x, y, NewCell(first, style))
			x += int(r.Font.Advance(first))
		}
		height += lineHeight
		if Dimension(height) >= r.Size.Height {
			break
		}
	}
}

func (r *TextRender) Join(source Render, domain *AnimationDomain) Render {
	src, ok := source.(*TextRender)
	if !ok {
		joinMismatch(r, source)
	}
	out := *r
	out.Origin = InterpolatePoint(src.Origin, r.Origin, domain.Factor)
	return &out
}

func (r *TextRender) DrawAnimated(target DrawTarget, source Render, style Style, domain *AnimationDomain) {
	src, ok := source.(*TextRender)
	if !ok {
		joinMismatch(r, source)
	}
	var moved TextRender
	if domain.Factor < 128 {
		moved = *src
	} else {
		moved = *r
	}
	moved.Origin = InterpolatePoint(src.Origin, r.Origin, domain.Factor)
	moved.Draw(target, style)
}

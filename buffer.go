package vela

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DrawTarget is the surface render trees draw into. Implementations clip
// out-of-bounds writes; render nodes never bounds-check themselves.
type DrawTarget interface {
	// Set writes one cell. Writes outside the target are discarded.
	Set(x, y int, c Cell)
	// Size returns the drawable width and height.
	Size() (width, height int)
}

// Buffer is a 2D grid of cells, the canonical in-memory draw target.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of empty cells.
func NewBuffer(width, height int) *Buffer {
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *Buffer) Height() int { return b.height }

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates, or an empty cell when
// out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set writes the cell at the given coordinates, clipping out-of-bounds
// writes. Box-drawing runes merge with box-drawing runes already in the
// cell so adjacent borders form junctions.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	idx := b.index(x, y)
	if merged, ok := mergeBorders(b.cells[idx].Rune, c.Rune); ok {
		c.Rune = merged
	}
	b.cells[idx] = c
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear resets the buffer to empty cells.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// FillRect fills a rectangular region with the given cell.
func (b *Buffer) FillRect(x, y, width, height int, c Cell) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, c)
		}
	}
}

// HLine draws a horizontal line of the given rune.
func (b *Buffer) HLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, NewCell(r, style))
	}
}

// VLine draws a vertical line of the given rune.
func (b *Buffer) VLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		b.Set(x, y+i, NewCell(r, style))
	}
}

// WriteString writes a string left to right with the given style,
// clipping at the buffer edge. Returns the number of cells written.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	written := 0
	for _, r := range s {
		if !b.InBounds(x, y) {
			break
		}
		b.Set(x, y, NewCell(r, style))
		x++
		written++
	}
	return written
}

// Resize grows or shrinks the buffer, preserving content where it fits.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	newCells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range newCells {
		newCells[i] = empty
	}
	minWidth := min(width, b.width)
	minHeight := min(height, b.height)
	for y := 0; y < minHeight; y++ {
		copy(newCells[y*width:y*width+minWidth], b.cells[y*b.width:y*b.width+minWidth])
	}
	b.cells = newCells
	b.width = width
	b.height = height
}

// String returns the buffer runes row by row, trailing spaces preserved.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.Get(x, y).Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces and trailing empty lines
// removed, the form used by rendering fixtures.
func (b *Buffer) StringTrimmed() string {
	var lines []string
	for y := 0; y < b.height; y++ {
		var sb strings.Builder
		lastNonSpace := 0
		for x := 0; x < b.width; x++ {
			r := b.Get(x, y).Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
			if r != ' ' {
				lastNonSpace = sb.Len()
			}
		}
		lines = append(lines, sb.String()[:lastNonSpace])
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// ANSI renders the buffer as ANSI-styled terminal output, one styled run
// per cell, rows joined by newlines.
func (b *Buffer) ANSI() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.Get(x, y)
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			sb.WriteString(ansiStyle(c.Style).Render(string(r)))
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func ansiStyle(s Style) lipgloss.Style {
	st := lipgloss.NewStyle().
		Foreground(lipglossColor(s.FG)).
		Background(lipglossColor(s.BG))
	if s.Attr.Has(AttrBold) {
		st = st.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		st = st.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attr.Has(AttrBlink) {
		st = st.Blink(true)
	}
	if s.Attr.Has(AttrInverse) {
		st = st.Reverse(true)
	}
	if s.Attr.Has(AttrStrikethrough) {
		st = st.Strikethrough(true)
	}
	return st
}

func lipglossColor(c Color) lipgloss.TerminalColor {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.Color(fmt.Sprintf("%d", c.Index))
	case ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	default:
		return lipgloss.NoColor{}
	}
}

// Region is an offset, clipped view into a buffer. It shares cells with
// the parent and implements DrawTarget, so a subtree can be drawn into a
// sub-rectangle without translating its coordinates.
type Region struct {
	buf    *Buffer
	x, y   int
	width  int
	height int
}

// Region creates a clipped view into a rectangle of the buffer.
func (b *Buffer) Region(x, y, width, height int) *Region {
	return &Region{buf: b, x: x, y: y, width: width, height: height}
}

// Size returns the region dimensions.
func (r *Region) Size() (width, height int) {
	return r.width, r.height
}

// Set writes a cell at region-relative coordinates, clipping to the
// region before the parent buffer clips again.
func (r *Region) Set(x, y int, c Cell) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.buf.Set(r.x+x, r.y+y, c)
}

// Get returns the cell at region-relative coordinates.
func (r *Region) Get(x, y int) Cell {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return EmptyCell()
	}
	return r.buf.Get(r.x+x, r.y+y)
}

// Box drawing runes.
const (
	BoxHorizontal         = '─'
	BoxVertical           = '│'
	BoxTopLeft            = '┌'
	BoxTopRight           = '┐'
	BoxBottomLeft         = '└'
	BoxBottomRight        = '┘'
	BoxRoundedTopLeft     = '╭'
	BoxRoundedTopRight    = '╮'
	BoxRoundedBottomLeft  = '╰'
	BoxRoundedBottomRight = '╯'
)

// Box junction runes produced by border merging.
const (
	BoxTeeDown  = '┬'
	BoxTeeUp    = '┴'
	BoxTeeRight = '├'
	BoxTeeLeft  = '┤'
	BoxCross    = '┼'
)

// borderEdges maps border runes to the edges they connect.
// Bits: 1=top, 2=right, 4=bottom, 8=left.
var borderEdges = map[rune]uint8{
	BoxHorizontal:         0b1010,
	BoxVertical:           0b0101,
	BoxTopLeft:            0b0110,
	BoxTopRight:           0b1100,
	BoxBottomLeft:         0b0011,
	BoxBottomRight:        0b1001,
	BoxTeeDown:            0b1110,
	BoxTeeUp:              0b1011,
	BoxTeeRight:           0b0111,
	BoxTeeLeft:            0b1101,
	BoxCross:              0b1111,
	BoxRoundedTopLeft:     0b0110,
	BoxRoundedTopRight:    0b1100,
	BoxRoundedBottomLeft:  0b0011,
	BoxRoundedBottomRight: 0b1001,
}

var edgesToBorder = map[uint8]rune{
	0b1010: BoxHorizontal,
	0b0101: BoxVertical,
	0b0110: BoxTopLeft,
	0b1100: BoxTopRight,
	0b0011: BoxBottomLeft,
	0b1001: BoxBottomRight,
	0b1110: BoxTeeDown,
	0b1011: BoxTeeUp,
	0b0111: BoxTeeRight,
	0b1101: BoxTeeLeft,
	0b1111: BoxCross,
}

// mergeBorders combines two border runes into the junction covering both
// sets of edges. Returns false when either rune is not a border rune or
// no junction exists.
func mergeBorders(existing, incoming rune) (rune, bool) {
	existingEdges, ok1 := borderEdges[existing]
	incomingEdges, ok2 := borderEdges[incoming]
	if !ok1 || !ok2 {
		return incoming, false
	}
	if result, ok := edgesToBorder[existingEdges|incomingEdges]; ok {
		return result, true
	}
	return incoming, false
}

// BorderStyle defines the runes used for drawing borders.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard border styles.
var (
	BorderSingle = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxTopLeft,
		TopRight:    BoxTopRight,
		BottomLeft:  BoxBottomLeft,
		BottomRight: BoxBottomRight,
	}
	BorderRounded = BorderStyle{
		Horizontal:  BoxHorizontal,
		Vertical:    BoxVertical,
		TopLeft:     BoxRoundedTopLeft,
		TopRight:    BoxRoundedTopRight,
		BottomLeft:  BoxRoundedBottomLeft,
		BottomRight: BoxRoundedBottomRight,
	}
)

// DrawBorder draws a border just inside the given rectangle.
func (b *Buffer) DrawBorder(x, y, width, height int, border BorderStyle, style Style) {
	if width < 2 || height < 2 {
		return
	}
	b.Set(x, y, NewCell(border.TopLeft, style))
	b.Set(x+width-1, y, NewCell(border.TopRight, style))
	b.Set(x, y+height-1, NewCell(border.BottomLeft, style))
	b.Set(x+width-1, y+height-1, NewCell(border.BottomRight, style))
	for i := 1; i < width-1; i++ {
		b.Set(x+i, y, NewCell(border.Horizontal, style))
		b.Set(x+i, y+height-1, NewCell(border.Horizontal, style))
	}
	for i := 1; i < height-1; i++ {
		b.Set(x, y+i, NewCell(border.Vertical, style))
		b.Set(x+width-1, y+i, NewCell(border.Vertical, style))
	}
}

package vela

import "time"

// Display owns a draw buffer and the previous frame's render tree, and
// runs the full per-frame pipeline: layout against the buffer size, build
// the frame's render tree, join it with the previous tree, draw the
// joined tree. Keeping the joined tree as the next join's source is what
// makes interrupted animations continue smoothly.
type Display struct {
	buf      *Buffer
	previous Render
	start    time.Time
	now      func() time.Time
}

// NewDisplay creates a display drawing into a buffer of the given size.
func NewDisplay(width, height int) *Display {
	return &Display{
		buf:   NewBuffer(width, height),
		start: time.Now(),
		now:   time.Now,
	}
}

// Buffer exposes the display's buffer for output conversion.
func (d *Display) Buffer() *Buffer {
	return d.buf
}

// Resize adjusts the buffer. The previous tree is dropped, since joined
// geometry from another size would animate from stale positions.
func (d *Display) Resize(width, height int) {
	d.buf.Resize(width, height)
	d.previous = nil
}

// AppTime is the time elapsed since the display was created.
func (d *Display) AppTime() time.Duration {
	return d.now().Sub(d.start)
}

// Frame renders one frame of the view and returns the buffer. The buffer
// is cleared first; the joined tree is retained as the source for the
// next frame.
func (d *Display) Frame(view View) *Buffer {
	return d.FrameAt(view, d.AppTime())
}

// FrameAt is Frame with an explicit application time, for deterministic
// tests and externally clocked drivers.
func (d *Display) FrameAt(view View, appTime time.Duration) *Buffer {
	env := DefaultEnvironment(appTime)
	w, h := d.buf.Size()
	layout := view.Layout(Exactly(uint32(w), uint32(h)), env)
	tree := view.RenderTree(&layout, Pt(0, 0), env)

	if d.previous != nil {
		tree = JoinTrees(d.previous, tree, appTime)
	}
	d.previous = tree

	d.buf.Clear()
	tree.Draw(d.buf, DefaultStyle())
	return d.buf
}

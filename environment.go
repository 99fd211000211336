package vela

import "time"

// Environment is the read-only context threaded down through layout and
// render tree construction. It is passed by value: a container that needs
// to override a field for its subtree copies the environment and passes
// the copy down, leaving the ambient environment untouched.
type Environment struct {
	// Direction is the layout direction the nearest container imposes.
	Direction LayoutDirection
	// Alignment used by framing views that position a child inside a
	// larger box.
	Alignment Alignment
	// Foreground is the default foreground color for the subtree.
	Foreground Color
	// AppTime is the time elapsed since the application started, sampled
	// once per frame. Animated views capture it as their frame time.
	AppTime time.Duration
}

// DefaultEnvironment returns the environment used at the root of a frame.
func DefaultEnvironment(appTime time.Duration) Environment {
	return Environment{
		Direction:  Vertical,
		Alignment:  CenterAlignment,
		Foreground: DefaultColor(),
		AppTime:    appTime,
	}
}

package vela

// Flexible size distribution shared by every multi-child container.
//
// Children are processed in priority groups, highest first. Each group
// splits the remaining pool evenly, with the first remainder children (by
// index) receiving one extra unit. A child that refuses to shrink below
// its content size is pinned at that size, deducted from the pool, and the
// group is re-sliced. The exact remainder policy and left-to-right order
// are load-bearing: output must be pixel-reproducible between frames.

// DebugChecks enables invariant panics that are too costly for release
// builds, such as a child reporting an unbounded size during distribution.
var DebugChecks bool

// flexChild is one sibling as seen by the distribution algorithm: a size
// query plus the precomputed priority and emptiness. The layout callback
// may be invoked several times per frame and must be pure for a given
// offer, since it is speculatively re-invoked before a decision commits.
type flexChild struct {
	layout   func(offer ProposedDimensions) Dimensions
	priority int8
	empty    bool
}

type childStage uint8

const (
	stageUnsized childStage = iota
	stageCandidate
	stageFinal
)

type childState struct {
	stage childStage
	size  Dimensions
}

func majorOffer(offer ProposedDimensions, axis LayoutDirection) ProposedDimension {
	if axis == Horizontal {
		return offer.Width
	}
	return offer.Height
}

func crossOffer(offer ProposedDimensions, axis LayoutDirection) ProposedDimension {
	if axis == Horizontal {
		return offer.Height
	}
	return offer.Width
}

func withMajorOffer(offer ProposedDimensions, axis LayoutDirection, m ProposedDimension) ProposedDimensions {
	if axis == Horizontal {
		offer.Width = m
	} else {
		offer.Height = m
	}
	return offer
}

func majorOf(size Dimensions, axis LayoutDirection) Dimension {
	if axis == Horizontal {
		return size.Width
	}
	return size.Height
}

func crossOf(size Dimensions, axis LayoutDirection) Dimension {
	if axis == Horizontal {
		return size.Height
	}
	return size.Width
}

func composeSize(major, cross Dimension, axis LayoutDirection) Dimensions {
	if axis == Horizontal {
		return Dimensions{Width: major, Height: cross}
	}
	return Dimensions{Width: cross, Height: major}
}

// distribute partitions the offered length along the given axis among the
// children and returns the composite size. The cross axis is maxed
// independently. Every child's layout callback is invoked at least once.
func distribute(children []flexChild, offer ProposedDimensions, spacing Dimension, axis LayoutDirection) Dimensions {
	nonEmpty := 0
	for _, c := range children {
		if !c.empty {
			nonEmpty++
		}
	}
	totalSpacing := Dimension(0)
	if nonEmpty > 1 {
		totalSpacing = spacing.Mul(Dimension(nonEmpty - 1))
	}

	length, exact := majorOffer(offer, axis).Exact()
	if !exact {
		// Compact or infinite offer: there is no pool to share, so each
		// child is laid out once with the offer and the results summed.
		var total, maxCross Dimension
		for _, c := range children {
			size := c.layout(offer)
			if c.empty {
				continue
			}
			total = total.Add(majorOf(size, axis))
			maxCross = maxCross.Max(crossOf(size, axis))
		}
		return composeSize(total.Add(totalSpacing), maxCross, axis)
	}

	remaining := length.Sub(totalSpacing)
	state := make([]childState, len(children))
	var maxCross Dimension

	// Empty children resolve to zero immediately. They still get exactly
	// one layout call so composite views record a sublayout per child.
	for i, c := range children {
		if c.empty {
			c.layout(withMajorOffer(offer, axis, Exact(0)))
			state[i] = childState{stage: stageFinal}
		}
	}

	group := make([]int, 0, len(children))
	for {
		// Collect the unsized children sharing the highest remaining
		// priority.
		group = group[:0]
		var groupPriority int8
		for i, c := range children {
			if state[i].stage != stageUnsized {
				continue
			}
			if len(group) == 0 || c.priority > groupPriority {
				groupPriority = c.priority
				group = group[:0]
			}
			if c.priority == groupPriority {
				group = append(group, i)
			}
		}
		if len(group) == 0 {
			break
		}

		// Slice the pool evenly across the group. A child that resolves
		// larger than its slice is pinned at its own size, deducted, and
		// the group re-sliced; candidates computed under the old slicing
		// are discarded and retried.
		for {
			unsized := 0
			for _, i := range group {
				if state[i].stage != stageFinal {
					unsized++
				}
			}
			if unsized == 0 {
				break
			}
			base := remaining.Div(Dimension(unsized))
			extra := remaining % Dimension(unsized)

			pinned := false
			seen := Dimension(0)
			for _, i := range group {
				if state[i].stage == stageFinal {
					continue
				}
				share := base
				if seen < extra {
					share = share.Add(1)
				}
				seen++

				size := children[i].layout(withMajorOffer(offer, axis, Exact(share)))
				if DebugChecks && majorOf(size, axis).IsInfinite() {
					panic("vela: child reported an unbounded size for a finite offer")
				}
				if majorOf(size, axis) > share {
					state[i] = childState{stage: stageFinal, size: size}
					remaining = remaining.Sub(majorOf(size, axis))
					maxCross = maxCross.Max(crossOf(size, axis))
					for _, j := range group {
						if state[j].stage == stageCandidate {
							state[j].stage = stageUnsized
						}
					}
					pinned = true
					break
				}
				state[i] = childState{stage: stageCandidate, size: size}
			}
			if !pinned {
				break
			}
		}

		// The group underused its pool if candidates sum below the
		// remaining length. Offer each candidate its own size plus the
		// whole leftover exactly once, then finalize without iterating.
		var used Dimension
		for _, i := range group {
			if state[i].stage == stageCandidate {
				used = used.Add(majorOf(state[i].size, axis))
			}
		}
		leftover := remaining.Sub(used)
		for _, i := range group {
			if state[i].stage != stageCandidate {
				continue
			}
			size := state[i].size
			if leftover > 0 {
				grown := majorOf(size, axis).Add(leftover)
				size = children[i].layout(withMajorOffer(offer, axis, Exact(grown)))
			}
			state[i] = childState{stage: stageFinal, size: size}
			remaining = remaining.Sub(majorOf(size, axis))
			maxCross = maxCross.Max(crossOf(size, axis))
		}
	}

	// Children may refuse to shrink past the offer; the container still
	// never reports more than it was offered.
	total := length.Sub(remaining)
	if c, ok := crossOffer(offer, axis).Exact(); ok {
		maxCross = maxCross.Min(c)
	}
	return composeSize(total, maxCross, axis)
}

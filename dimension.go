package vela

import "math"

// Dimension is a non-negative length along one axis. All arithmetic
// saturates rather than wrapping, and the maximum value is reserved as an
// infinity sentinel that propagates through every operation.
type Dimension uint32

// DimensionInfinite marks an unbounded length.
const DimensionInfinite Dimension = math.MaxUint32

// IsInfinite returns true if the dimension is the infinity sentinel.
func (d Dimension) IsInfinite() bool {
	return d == DimensionInfinite
}

// Add returns d+other, saturating at infinity.
func (d Dimension) Add(other Dimension) Dimension {
	if d.IsInfinite() || other.IsInfinite() {
		return DimensionInfinite
	}
	sum := d + other
	if sum < d {
		return DimensionInfinite
	}
	return sum
}

// Sub returns d-other, saturating at zero. Infinity minus any finite
// length is still infinity.
func (d Dimension) Sub(other Dimension) Dimension {
	if d.IsInfinite() {
		return DimensionInfinite
	}
	if other >= d {
		return 0
	}
	return d - other
}

// Mul returns d*other, saturating at infinity.
func (d Dimension) Mul(other Dimension) Dimension {
	if d.IsInfinite() || other.IsInfinite() {
		return DimensionInfinite
	}
	product := uint64(d) * uint64(other)
	if product >= uint64(DimensionInfinite) {
		return DimensionInfinite
	}
	return Dimension(product)
}

// Div returns d/other. Division by zero yields infinity.
func (d Dimension) Div(other Dimension) Dimension {
	if other == 0 || d.IsInfinite() {
		return DimensionInfinite
	}
	return d / other
}

// Min returns the smaller of two dimensions.
func (d Dimension) Min(other Dimension) Dimension {
	if other < d {
		return other
	}
	return d
}

// Max returns the larger of two dimensions.
func (d Dimension) Max(other Dimension) Dimension {
	if other > d {
		return other
	}
	return d
}

// Dimensions is a width/height pair.
type Dimensions struct {
	Width  Dimension
	Height Dimension
}

// Dim constructs a Dimensions value.
func Dim(width, height uint32) Dimensions {
	return Dimensions{Width: Dimension(width), Height: Dimension(height)}
}

// ZeroDimensions is the zero size.
var ZeroDimensions = Dimensions{}

// Union returns the per-axis maximum of two sizes.
func (d Dimensions) Union(other Dimensions) Dimensions {
	return Dimensions{
		Width:  d.Width.Max(other.Width),
		Height: d.Height.Max(other.Height),
	}
}

// Intersection returns the per-axis minimum of two sizes.
func (d Dimensions) Intersection(other Dimensions) Dimensions {
	return Dimensions{
		Width:  d.Width.Min(other.Width),
		Height: d.Height.Min(other.Height),
	}
}

// Area returns width*height, saturating at infinity.
func (d Dimensions) Area() Dimension {
	return d.Width.Mul(d.Height)
}

// ConstrainedBy clamps the size to the exact axes of an offer. Compact
// and infinite axes leave the size untouched.
func (d Dimensions) ConstrainedBy(offer ProposedDimensions) Dimensions {
	out := d
	if w, ok := offer.Width.Exact(); ok {
		out.Width = out.Width.Min(w)
	}
	if h, ok := offer.Height.Exact(); ok {
		out.Height = out.Height.Min(h)
	}
	return out
}

type proposalKind uint8

const (
	proposalExact proposalKind = iota
	proposalCompact
	proposalInfinite
)

// ProposedDimension is a layout offer along one axis: an exact length, a
// request for the most compact size the view can manage, or no constraint
// at all. Ordering is Exact(n) < Compact < Infinite so sizing logic can
// compare offers without branching on the variant.
type ProposedDimension struct {
	kind  proposalKind
	value Dimension
}

// Exact constructs an exactly sized offer.
func Exact(length Dimension) ProposedDimension {
	return ProposedDimension{kind: proposalExact, value: length}
}

// Compact is the offer asking a view for its smallest natural size.
var Compact = ProposedDimension{kind: proposalCompact}

// Infinite is the unconstrained offer.
var Infinite = ProposedDimension{kind: proposalInfinite}

// Exact returns the exact length and true when the offer is exact.
func (p ProposedDimension) Exact() (Dimension, bool) {
	return p.value, p.kind == proposalExact
}

// IsCompact returns true for the compact offer.
func (p ProposedDimension) IsCompact() bool {
	return p.kind == proposalCompact
}

// IsInfinite returns true for the unconstrained offer.
func (p ProposedDimension) IsInfinite() bool {
	return p.kind == proposalInfinite
}

// Cmp orders offers: Exact(n) < Compact < Infinite, exact offers by
// length. Returns -1, 0 or 1.
func (p ProposedDimension) Cmp(other ProposedDimension) int {
	if p.kind != other.kind {
		if p.kind < other.kind {
			return -1
		}
		return 1
	}
	if p.kind == proposalExact {
		if p.value < other.value {
			return -1
		}
		if p.value > other.value {
			return 1
		}
	}
	return 0
}

// Add offsets an exact offer, saturating. Compact and infinite offers
// pass through untouched.
func (p ProposedDimension) Add(length Dimension) ProposedDimension {
	if p.kind == proposalExact {
		p.value = p.value.Add(length)
	}
	return p
}

// Sub shrinks an exact offer, saturating at zero.
func (p ProposedDimension) Sub(length Dimension) ProposedDimension {
	if p.kind == proposalExact {
		p.value = p.value.Sub(length)
	}
	return p
}

// Mul scales an exact offer, saturating.
func (p ProposedDimension) Mul(length Dimension) ProposedDimension {
	if p.kind == proposalExact {
		p.value = p.value.Mul(length)
	}
	return p
}

// Div divides an exact offer. Division by zero yields an infinite length.
func (p ProposedDimension) Div(length Dimension) ProposedDimension {
	if p.kind == proposalExact {
		p.value = p.value.Div(length)
	}
	return p
}

// Resolve picks the most flexible length within the offer: exact offers
// resolve to at least minimum, compact offers to the ideal size, and
// infinite offers stay unbounded.
func (p ProposedDimension) Resolve(minimum, ideal Dimension) Dimension {
	switch p.kind {
	case proposalCompact:
		return ideal
	case proposalInfinite:
		return DimensionInfinite
	default:
		return p.value.Max(minimum)
	}
}

// ProposedDimensions pairs one offer per axis.
type ProposedDimensions struct {
	Width  ProposedDimension
	Height ProposedDimension
}

// Exactly constructs an offer exact on both axes.
func Exactly(width, height uint32) ProposedDimensions {
	return ProposedDimensions{
		Width:  Exact(Dimension(width)),
		Height: Exact(Dimension(height)),
	}
}

// CompactSize is the offer asking for the smallest natural size on both axes.
var CompactSize = ProposedDimensions{Width: Compact, Height: Compact}

// InfiniteSize is the unconstrained offer on both axes.
var InfiniteSize = ProposedDimensions{Width: Infinite, Height: Infinite}

// OfferOf converts a resolved size back into an exact offer.
func OfferOf(size Dimensions) ProposedDimensions {
	return ProposedDimensions{
		Width:  Exact(size.Width),
		Height: Exact(size.Height),
	}
}

// Contains reports whether a size fits within the offer along the checked
// axes. Compact and infinite offers accept any size.
func (p ProposedDimensions) Contains(size Dimensions, checkWidth, checkHeight bool) bool {
	if checkWidth {
		if w, ok := p.Width.Exact(); ok && size.Width > w {
			return false
		}
	}
	if checkHeight {
		if h, ok := p.Height.Exact(); ok && size.Height > h {
			return false
		}
	}
	return true
}

// Resolve applies ProposedDimension.Resolve on both axes.
func (p ProposedDimensions) Resolve(minimum, ideal Dimension) Dimensions {
	return Dimensions{
		Width:  p.Width.Resolve(minimum, ideal),
		Height: p.Height.Resolve(minimum, ideal),
	}
}

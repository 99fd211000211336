package vela

// Fixed-point interpolation between two frames of a value, weighted by an
// animation factor in 0..255. 0 yields from, 255 yields to. Integer math
// keeps frame output bit-for-bit reproducible.

// InterpolateInt linearly interpolates between two ints.
func InterpolateInt(from, to int, amount uint8) int {
	return (int(amount)*to + int(255-amount)*from) / 255
}

// InterpolateDimension linearly interpolates between two lengths. An
// infinite endpoint snaps at the midpoint rather than averaging with the
// sentinel.
func InterpolateDimension(from, to Dimension, amount uint8) Dimension {
	if from.IsInfinite() || to.IsInfinite() {
		if amount < 128 {
			return from
		}
		return to
	}
	return Dimension((uint64(amount)*uint64(to) + uint64(255-amount)*uint64(from)) / 255)
}

// InterpolateDimensions interpolates both axes.
func InterpolateDimensions(from, to Dimensions, amount uint8) Dimensions {
	return Dimensions{
		Width:  InterpolateDimension(from.Width, to.Width, amount),
		Height: InterpolateDimension(from.Height, to.Height, amount),
	}
}

// InterpolatePoint interpolates both coordinates.
func InterpolatePoint(from, to Point, amount uint8) Point {
	return Point{
		X: InterpolateInt(from.X, to.X, amount),
		Y: InterpolateInt(from.Y, to.Y, amount),
	}
}

// InterpolateRune jumps discretely at the midpoint; glyphs have no
// meaningful in-between.
func InterpolateRune(from, to rune, amount uint8) rune {
	if amount < 128 {
		return from
	}
	return to
}

func interpolateChannel(from, to uint8, amount uint8) uint8 {
	return uint8((int(amount)*int(to) + int(255-amount)*int(from)) / 255)
}

// InterpolateColor blends two colors. RGB pairs interpolate per channel;
// mixed or paletted modes jump discretely at the midpoint.
func InterpolateColor(from, to Color, amount uint8) Color {
	if from.Mode == ColorRGB && to.Mode == ColorRGB {
		return Color{
			Mode: ColorRGB,
			R:    interpolateChannel(from.R, to.R, amount),
			G:    interpolateChannel(from.G, to.G, amount),
			B:    interpolateChannel(from.B, to.B, amount),
		}
	}
	if amount < 128 {
		return from
	}
	return to
}

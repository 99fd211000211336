package vela

// Point is an absolute position in the draw target's coordinate space.
type Point struct {
	X int
	Y int
}

// Pt constructs a point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

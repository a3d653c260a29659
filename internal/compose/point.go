package compose

// Point is a 2D pixel coordinate on the display, origin top-left.
// Coordinates are never negative; template validation rejects any
// geometry that would translate a point past zero.
type Point struct {
	X int
	Y int
}

// Translate returns a new Point shifted by (dx, dy).
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// TranslateBy shifts the point in place by (dx, dy).
func (p *Point) TranslateBy(dx, dy int) {
	p.X += dx
	p.Y += dy
}

package input

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) lies inside the rectangle. Both edges are
// inclusive, so a Rect covers Width+1 by Height+1 pixels.
func (r Rect) Contains(x, y int) bool {
	dx := x - r.X
	dy := y - r.Y
	return 0 <= dx && dx <= r.Width &&
		0 <= dy && dy <= r.Height
}

// containsTouch truncates touch coordinates towards zero before testing.
func (r Rect) containsTouch(t Touch) bool {
	return r.Contains(int(t.X), int(t.Y))
}

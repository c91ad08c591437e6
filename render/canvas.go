package render

// Vec2 is a point in world pixels
type Vec2 struct {
	X, Y float32
}

// Add returns the component-wise sum
func (v Vec2) Add(dx, dy float32) Vec2 {
	return Vec2{v.X + dx, v.Y + dy}
}

// Rect is an axis-aligned rectangle in world pixels
type Rect struct {
	X, Y, W, H float32
}

// Canvas receives drawing primitives in world pixels
// Drawing with the background color erases
type Canvas interface {
	Clear(bg RGB)
	Triangle(a, b, c Vec2, color RGB)
	RectLines(r Rect, thick float32, color RGB)
	Line(a, b Vec2, thick float32, color RGB)
	Circle(center Vec2, radius float32, color RGB)

	// Text writes a label in terminal cell coordinates, above all primitives
	Text(col, row int, s string, color RGB)
}

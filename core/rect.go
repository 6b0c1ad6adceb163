package core

import "fmt"

// Rect represents an axis-aligned region of grid cells
// TL is inclusive, BR is exclusive; TL.X <= BR.X and TL.Y <= BR.Y
type Rect struct {
	TL Point // Top-left corner
	BR Point // Bottom-right corner
}

// RectFromXYWH builds a rectangle from its top-left corner and dimensions
// Dimensions are assumed non-negative, no overflow check
func RectFromXYWH(x, y, w, h int) Rect {
	return Rect{
		TL: Point{X: x, Y: y},
		BR: Point{X: x + w, Y: y + h},
	}
}

// RectFromPoints builds the minimal rectangle spanned by two corner points in any order
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{
		TL: TopLeft(p1, p2),
		BR: BottomRight(p1, p2),
	}
}

// W returns the width in cells
func (r Rect) W() int {
	return r.BR.X - r.TL.X
}

// H returns the height in cells
func (r Rect) H() int {
	return r.BR.Y - r.TL.Y
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.W() <= 0 || r.H() <= 0
}

// Area returns the number of covered cells
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W() * r.H()
}

// String formats as "<x>,<y>: <w>x<h>"
func (r Rect) String() string {
	return fmt.Sprintf("%d,%d: %dx%d", r.TL.X, r.TL.Y, r.W(), r.H())
}

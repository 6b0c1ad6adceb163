package vmath

import "github.com/lixenwraith/claimgrid/core"

// Bounding returns the smallest rectangle containing both inputs
func Bounding(r1, r2 core.Rect) core.Rect {
	return core.Rect{
		TL: core.TopLeft(r1.TL, r2.TL),
		BR: core.BottomRight(r1.BR, r2.BR),
	}
}

// Intersect returns the overlap of two rectangles
// BR is compared directly, so rectangles touching along an edge intersect with zero width or height
func Intersect(r1, r2 core.Rect) (core.Rect, bool) {
	if r1.TL.X > r2.BR.X ||
		r1.BR.X < r2.TL.X ||
		r1.TL.Y > r2.BR.Y ||
		r1.BR.Y < r2.TL.Y {
		return core.Rect{}, false
	}

	return core.Rect{
		TL: core.BottomRight(r1.TL, r2.TL),
		BR: core.TopLeft(r1.BR, r2.BR),
	}, true
}

// RectContains checks if the cell (x, y) is covered by the rectangle
func RectContains(r core.Rect, x, y int) bool {
	return x >= r.TL.X && x < r.BR.X && y >= r.TL.Y && y < r.BR.Y
}

// RectCells calls fn for every covered cell, column by column
func RectCells(r core.Rect, fn func(p core.Point)) {
	for x := r.TL.X; x < r.BR.X; x++ {
		for y := r.TL.Y; y < r.BR.Y; y++ {
			fn(core.Point{X: x, Y: y})
		}
	}
}

package core

// Point represents a grid cell coordinate, comparable and usable as a map key
type Point struct {
	X, Y int
}

// TopLeft returns the componentwise minimum of two points
func TopLeft(a, b Point) Point {
	return Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
}

// BottomRight returns the componentwise maximum of two points
func BottomRight(a, b Point) Point {
	return Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}
